package segmenta

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/segmenta/segmenta/chunk"
	"github.com/segmenta/segmenta/htmldoc"
	"github.com/segmenta/segmenta/ocr"
	"github.com/segmenta/segmenta/source"
	"github.com/segmenta/segmenta/splitter"
)

// Pipeline provides a fluent interface for chunking document text.
// Each configuration method returns a new Pipeline instance, making it
// safe for concurrent use and allowing method chaining.
type Pipeline struct {
	// Source (exactly one is used)
	filename string
	reader   io.Reader
	text     string
	hasText  bool

	// Format override; source.Unknown means auto-detect
	format source.Format

	// Configuration
	options SplitOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Pipeline with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename: p.filename,
		reader:   p.reader,
		text:     p.text,
		hasText:  p.hasText,
		format:   p.format,
		options:  p.options.clone(),
		err:      p.err,
		warnings: append([]Warning(nil), p.warnings...),
	}
}

// ChunkSize sets the maximum chunk length in characters.
// The recommended range is 200-500; values outside it are accepted with
// a warning. Non-positive values fail when a terminal operation runs.
func (p *Pipeline) ChunkSize(n int) *Pipeline {
	newP := p.clone()
	newP.options.chunkSize = n
	return newP
}

// ChunkOverlap sets the maximum overlap between consecutive chunks in
// characters. The recommended range is 50-100; values outside it are
// accepted with a warning. An overlap that is negative or not smaller
// than the chunk size fails when a terminal operation runs.
func (p *Pipeline) ChunkOverlap(n int) *Pipeline {
	newP := p.clone()
	newP.options.chunkOverlap = n
	return newP
}

// Separators replaces the default separator priority list
// ("\n\n", "\n", " ", ""). An empty-string entry splits between every
// character and guarantees chunks can always be reduced to the size bound.
func (p *Pipeline) Separators(seps ...string) *Pipeline {
	newP := p.clone()
	newP.options.separators = append([]string(nil), seps...)
	return newP
}

// KeepWhitespace disables trimming of leading and trailing whitespace
// from emitted chunks.
func (p *Pipeline) KeepWhitespace() *Pipeline {
	newP := p.clone()
	newP.options.keepWhitespace = true
	return newP
}

// Format overrides input format auto-detection.
func (p *Pipeline) Format(f source.Format) *Pipeline {
	newP := p.clone()
	newP.format = f
	return newP
}

// OCRLanguage sets the Tesseract language(s) used for image sources
// (e.g. "eng+fra"). It has no effect on text sources.
func (p *Pipeline) OCRLanguage(lang string) *Pipeline {
	newP := p.clone()
	newP.options.ocrLanguage = lang
	return newP
}

// Text acquires, decodes, and (for HTML and image sources) extracts the
// source text without chunking it. Warnings indicate non-fatal issues
// such as a legacy-encoding fallback.
func (p *Pipeline) Text() (string, []Warning, error) {
	if p.err != nil {
		return "", p.warnings, p.err
	}

	newP := p.clone()
	text, err := newP.acquire()
	if err != nil {
		return "", newP.warnings, err
	}
	return text, newP.warnings, nil
}

// Strings validates the chunking parameters, acquires the source text,
// and returns the ordered chunk strings. Parameter values outside the
// recommended ranges produce warnings; hard invariant violations
// (size <= 0, overlap < 0, overlap >= size) produce an error before any
// splitting work is done.
func (p *Pipeline) Strings() ([]string, []Warning, error) {
	if p.err != nil {
		return nil, p.warnings, p.err
	}

	newP := p.clone()
	newP.warnings = append(newP.warnings, advisories(newP.options)...)

	s, err := newP.buildSplitter()
	if err != nil {
		return nil, newP.warnings, err
	}

	text, err := newP.acquire()
	if err != nil {
		return nil, newP.warnings, err
	}

	chunks := s.Split(text)
	if len(chunks) == 0 {
		newP.warnings = append(newP.warnings, Warning{
			Code:    WarnEmptySource,
			Message: "source contained no text; no chunks produced",
		})
	}
	return chunks, newP.warnings, nil
}

// Chunks is like Strings but returns a chunk collection with per-chunk
// character and word counts and summary statistics.
func (p *Pipeline) Chunks() (*chunk.Collection, []Warning, error) {
	texts, warnings, err := p.Strings()
	if err != nil {
		return nil, warnings, err
	}
	return chunk.NewCollection(texts), warnings, nil
}

// buildSplitter constructs the configured splitter, surfacing fatal
// parameter errors.
func (p *Pipeline) buildSplitter() (*splitter.Splitter, error) {
	config := splitter.DefaultConfig()
	config.ChunkSize = p.options.chunkSize
	config.ChunkOverlap = p.options.chunkOverlap
	config.KeepWhitespace = p.options.keepWhitespace
	if p.options.separators != nil {
		config.Separators = p.options.separators
	}
	return splitter.NewWithConfig(config)
}

// acquire obtains the decoded source text, extracting it from HTML or
// recognizing it from an image when needed. Decode fallbacks append
// warnings to the pipeline.
func (p *Pipeline) acquire() (string, error) {
	if p.hasText {
		return p.text, nil
	}

	var data []byte
	var err error
	switch {
	case p.reader != nil:
		data, err = io.ReadAll(p.reader)
		if err != nil {
			return "", fmt.Errorf("reading source: %w", err)
		}
	case p.filename != "":
		data, err = os.ReadFile(p.filename)
		if err != nil {
			return "", fmt.Errorf("reading source %s: %w", p.filename, err)
		}
	default:
		return "", fmt.Errorf("no source specified")
	}

	format := p.format
	if format == source.Unknown && p.filename != "" {
		format = source.Detect(p.filename)
	}
	if format == source.Unknown {
		format = source.DetectContent(data)
	}

	switch format {
	case source.HTML:
		text, err := htmldoc.Extract(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("extracting HTML text: %w", err)
		}
		return text, nil

	case source.Image:
		return p.recognize(data)

	default:
		text, enc, err := source.Decode(data)
		if err != nil {
			return "", err
		}
		if enc == source.Windows1252 {
			p.warnings = append(p.warnings, Warning{
				Code:    WarnDecodeFallback,
				Message: "source is not valid UTF-8; decoded as Windows-1252",
			})
		}
		return text, nil
	}
}

// recognize runs OCR on an image source. Without the ocr build tag this
// fails with ocr.ErrOCRNotEnabled.
func (p *Pipeline) recognize(data []byte) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", fmt.Errorf("image source requires OCR: %w", err)
	}
	defer client.Close()

	if p.options.ocrLanguage != "" {
		if err := client.SetLanguage(p.options.ocrLanguage); err != nil {
			return "", fmt.Errorf("setting OCR language: %w", err)
		}
	}

	text, err := client.Recognize(data)
	if err != nil {
		return "", fmt.Errorf("recognizing image text: %w", err)
	}
	return text, nil
}

// advisories returns warnings for parameter values outside the
// recommended ranges. These never stop processing.
func advisories(opts SplitOptions) []Warning {
	var warnings []Warning
	if opts.chunkSize < RecommendedChunkSizeMin || opts.chunkSize > RecommendedChunkSizeMax {
		warnings = append(warnings, Warning{
			Code: WarnChunkSizeRange,
			Message: fmt.Sprintf("chunk size %d is outside the recommended range (%d-%d); using anyway",
				opts.chunkSize, RecommendedChunkSizeMin, RecommendedChunkSizeMax),
		})
	}
	if opts.chunkOverlap < RecommendedChunkOverlapMin || opts.chunkOverlap > RecommendedChunkOverlapMax {
		warnings = append(warnings, Warning{
			Code: WarnChunkOverlapRange,
			Message: fmt.Sprintf("chunk overlap %d is outside the recommended range (%d-%d); using anyway",
				opts.chunkOverlap, RecommendedChunkOverlapMin, RecommendedChunkOverlapMax),
		})
	}
	return warnings
}
