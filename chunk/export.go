package chunk

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format identifies a chunk export format.
type Format int

const (
	// FormatText writes numbered plain-text blocks with length annotations.
	FormatText Format = iota
	// FormatJSON writes a single indented JSON document with chunks and stats.
	FormatJSON
	// FormatJSONL writes one JSON object per chunk, one per line.
	FormatJSONL
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name ("text", "json", "jsonl") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	default:
		return FormatText, fmt.Errorf("unknown export format %q", name)
	}
}

// Write exports the collection to w in the given format.
func Write(w io.Writer, col *Collection, format Format) error {
	switch format {
	case FormatText:
		return WritePlain(w, col)
	case FormatJSON:
		return WriteJSON(w, col)
	case FormatJSONL:
		return WriteJSONL(w, col)
	default:
		return fmt.Errorf("unknown export format %d", format)
	}
}

// WritePlain writes the collection as numbered text blocks:
//
//	=== Chunk 1/3 ===
//	Length: 482 characters
//	--------------------------------------------------
//	<chunk text>
//
// Each block is followed by a blank line.
func WritePlain(w io.Writer, col *Collection) error {
	total := len(col.Chunks)
	rule := strings.Repeat("-", 50)

	for _, chunk := range col.Chunks {
		_, err := fmt.Fprintf(w, "=== Chunk %d/%d ===\nLength: %d characters\n%s\n%s\n\n",
			chunk.Index+1, total, chunk.CharCount, rule, chunk.Text)
		if err != nil {
			return fmt.Errorf("writing chunk %d: %w", chunk.Index, err)
		}
	}
	return nil
}

// WriteJSON writes the whole collection, including statistics, as one
// indented JSON document.
func WriteJSON(w io.Writer, col *Collection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(col); err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}
	return nil
}

// WriteJSONL writes one JSON object per chunk, one per line. Statistics
// are omitted; the format is intended for streaming ingestion.
func WriteJSONL(w io.Writer, col *Collection) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, chunk := range col.Chunks {
		if err := enc.Encode(chunk); err != nil {
			return fmt.Errorf("encoding chunk %d: %w", chunk.Index, err)
		}
	}
	return nil
}
