// Package chunk provides the chunk model, statistics, and export formats
// for chunked document text.
package chunk

import (
	"unicode"
	"unicode/utf8"
)

// Chunk represents one bounded segment of the source text.
type Chunk struct {
	// Index is the position of this chunk in the sequence (0-indexed).
	Index int `json:"index"`

	// Text is the chunk content.
	Text string `json:"text"`

	// CharCount is the number of characters (runes) in the chunk text.
	CharCount int `json:"char_count"`

	// WordCount is the number of whitespace-delimited words in the chunk text.
	WordCount int `json:"word_count"`
}

// New creates a chunk from its position and text, populating the
// derived counts.
func New(index int, text string) Chunk {
	return Chunk{
		Index:     index,
		Text:      text,
		CharCount: utf8.RuneCountInString(text),
		WordCount: countWords(text),
	}
}

// Stats summarizes a chunk collection.
type Stats struct {
	TotalChunks     int `json:"total_chunks"`
	TotalCharacters int `json:"total_characters"`
	TotalWords      int `json:"total_words"`
	AvgChunkSize    int `json:"avg_chunk_size"`
	MinChunkSize    int `json:"min_chunk_size"`
	MaxChunkSize    int `json:"max_chunk_size"`
}

// Collection holds an ordered chunk sequence with summary statistics.
type Collection struct {
	Chunks []Chunk `json:"chunks"`
	Stats  Stats   `json:"stats"`
}

// NewCollection builds a Collection from raw chunk strings in order.
func NewCollection(texts []string) *Collection {
	col := &Collection{
		Chunks: make([]Chunk, 0, len(texts)),
	}
	for i, text := range texts {
		col.Chunks = append(col.Chunks, New(i, text))
	}
	col.Stats = calculateStats(col.Chunks)
	return col
}

// Strings returns the raw chunk texts in order.
func (c *Collection) Strings() []string {
	out := make([]string, len(c.Chunks))
	for i, chunk := range c.Chunks {
		out[i] = chunk.Text
	}
	return out
}

// Len returns the number of chunks in the collection.
func (c *Collection) Len() int {
	return len(c.Chunks)
}

// calculateStats computes summary statistics for a chunk sequence.
func calculateStats(chunks []Chunk) Stats {
	stats := Stats{
		TotalChunks:  len(chunks),
		MinChunkSize: -1,
	}

	for _, chunk := range chunks {
		stats.TotalCharacters += chunk.CharCount
		stats.TotalWords += chunk.WordCount

		if stats.MinChunkSize < 0 || chunk.CharCount < stats.MinChunkSize {
			stats.MinChunkSize = chunk.CharCount
		}
		if chunk.CharCount > stats.MaxChunkSize {
			stats.MaxChunkSize = chunk.CharCount
		}
	}

	if len(chunks) > 0 {
		stats.AvgChunkSize = stats.TotalCharacters / len(chunks)
	}
	if stats.MinChunkSize < 0 {
		stats.MinChunkSize = 0
	}

	return stats
}

// countWords counts whitespace-delimited words in text.
func countWords(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			words++
		}
	}
	return words
}
