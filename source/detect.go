package source

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates a plain text document.
	Text
	// Markdown indicates a markdown document (chunked as plain text).
	Markdown
	// HTML indicates an HTML document.
	HTML
	// Image indicates a raster image (requires OCR to obtain text).
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Markdown:
		return "markdown"
	case HTML:
		return "html"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// Detect determines the input format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text", ".log":
		return Text
	case ".md", ".markdown":
		return Markdown
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".webp", ".gif":
		return Image
	default:
		return Unknown
	}
}

// imageMagic maps leading byte signatures to the Image format.
var imageMagic = [][]byte{
	{0x89, 'P', 'N', 'G'},       // PNG
	{0xFF, 0xD8, 0xFF},          // JPEG
	{'I', 'I', 0x2A, 0x00},      // TIFF little-endian
	{'M', 'M', 0x00, 0x2A},      // TIFF big-endian
	{'B', 'M'},                  // BMP
	{'G', 'I', 'F', '8'},        // GIF
	{'R', 'I', 'F', 'F'},        // WebP (RIFF container)
}

// DetectContent determines the input format from leading content bytes.
// It recognizes image signatures and HTML markers; everything else that
// looks like text is reported as Text. This is more reliable than
// extension-based detection for extensionless files.
func DetectContent(data []byte) Format {
	for _, magic := range imageMagic {
		if bytes.HasPrefix(data, magic) {
			return Image
		}
	}

	if detectHTML(data) {
		return HTML
	}

	if len(data) == 0 {
		return Unknown
	}
	return Text
}

// detectHTML checks whether the data looks like HTML content.
func detectHTML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}

	upper := strings.ToUpper(string(trimmed[:min(512, len(trimmed))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML.
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
