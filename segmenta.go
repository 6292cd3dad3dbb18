// Package segmenta provides a fluent API for splitting document text into
// bounded, overlapping chunks suitable for indexing and retrieval.
//
// Basic usage:
//
//	chunks, warnings, err := segmenta.Open("document.txt").Strings()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", segmenta.FormatWarnings(warnings))
//	}
//
// With options:
//
//	col, _, err := segmenta.Open("notes.md").
//	    ChunkSize(300).
//	    ChunkOverlap(50).
//	    Chunks()
//
// Plain text, markdown, HTML, and (with the ocr build tag) image sources
// are supported; the input format is detected from the filename and
// content. For direct access to the splitting engine, the lower-level
// splitter package is also available.
package segmenta

import (
	"io"

	"github.com/segmenta/segmenta/source"
)

// Open creates a Pipeline reading from the named file. The input format
// is detected from the extension and, failing that, the content.
//
// Example:
//
//	chunks, warnings, err := segmenta.Open("document.txt").Strings()
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString creates a Pipeline over already-decoded text.
//
// Example:
//
//	chunks, _, err := segmenta.FromString(text).ChunkSize(300).Strings()
func FromString(text string) *Pipeline {
	return &Pipeline{
		text:    text,
		hasText: true,
		options: defaultOptions(),
	}
}

// FromReader creates a Pipeline reading from r. The input format is
// detected from the content unless overridden with Format.
func FromReader(r io.Reader) *Pipeline {
	return &Pipeline{
		reader:  r,
		options: defaultOptions(),
	}
}

// Split chunks already-decoded text with the given parameters and
// otherwise default configuration. It mirrors the core contract:
// ordered chunk strings, advisory warnings for out-of-range parameters,
// and an error only for hard parameter violations.
func Split(text string, chunkSize, chunkOverlap int) ([]string, []Warning, error) {
	return FromString(text).
		ChunkSize(chunkSize).
		ChunkOverlap(chunkOverlap).
		Strings()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustChunks is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	chunks := segmenta.MustChunks(segmenta.Open("document.txt").Strings())
func MustChunks[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// DetectFormat reports the input format segmenta would assume for the
// named file, based on its extension alone.
func DetectFormat(filename string) source.Format {
	return source.Detect(filename)
}
