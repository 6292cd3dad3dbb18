// Package htmldoc extracts plain text from HTML documents for chunking.
//
// Block-level elements (headings, paragraphs, list items, table cells,
// preformatted blocks) become text blocks joined with blank lines, so the
// splitter's paragraph separator sees real structural boundaries. Script,
// style, and other non-content elements are skipped.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to the text content of an HTML document.
type Reader struct {
	title  string
	blocks []string
}

// Open parses an HTML file.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{}
	reader.extractTitle(doc)

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	reader.collectBlocks(body)

	return reader, nil
}

// Title returns the document title, if any.
func (r *Reader) Title() string {
	return r.title
}

// Text returns the document text with blocks separated by blank lines.
func (r *Reader) Text() string {
	return strings.Join(r.blocks, "\n\n")
}

// Extract parses HTML from r and returns its plain text in one call.
func Extract(r io.Reader) (string, error) {
	reader, err := OpenReader(r)
	if err != nil {
		return "", err
	}
	return reader.Text(), nil
}

// blockElements are elements whose text forms a standalone block.
var blockElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "blockquote": true, "pre": true, "figcaption": true,
}

// skipElements are elements whose content never contributes text.
var skipElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
	"svg": true, "head": true, "nav": true,
}

// extractTitle finds the document title in the head element.
func (r *Reader) extractTitle(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "title" {
		r.title = strings.TrimSpace(textContent(n))
		return
	}
	for c := n.FirstChild; c != nil && r.title == ""; c = c.NextSibling {
		r.extractTitle(c)
	}
}

// collectBlocks walks the DOM and appends one text block per block-level
// element encountered.
func (r *Reader) collectBlocks(n *html.Node) {
	if n.Type == html.ElementNode {
		if skipElements[n.Data] {
			return
		}

		switch {
		case blockElements[n.Data]:
			if text := strings.TrimSpace(textContent(n)); text != "" {
				r.blocks = append(r.blocks, text)
			}
			return

		case n.Data == "li":
			if text := strings.TrimSpace(directTextContent(n)); text != "" {
				r.blocks = append(r.blocks, "- "+text)
			}
			// Nested lists become their own blocks.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
					r.collectBlocks(c)
				}
			}
			return

		case n.Data == "tr":
			if text := rowText(n); text != "" {
				r.blocks = append(r.blocks, text)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectBlocks(c)
	}
}

// rowText joins the cell texts of a table row with tabs.
func rowText(n *html.Node) string {
	var cells []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			if text := strings.TrimSpace(textContent(c)); text != "" {
				cells = append(cells, text)
			}
		}
	}
	return strings.Join(cells, "\t")
}

// textContent returns the concatenated text of a node and its descendants,
// with runs of whitespace collapsed to single spaces.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && skipElements[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// directTextContent returns the text of a node excluding nested lists,
// so list items do not swallow their sublists.
func directTextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol" || skipElements[n.Data]) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
