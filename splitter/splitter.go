package splitter

import (
	"strings"
	"unicode/utf8"
)

// DefaultSeparators is the separator priority list used when none is
// configured: paragraph break, line break, word break, and finally the
// empty separator, which splits between every character and guarantees
// that recursion always terminates.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// Config holds configuration options for the splitter.
type Config struct {
	// ChunkSize is the maximum length of an emitted chunk.
	// A piece that cannot be split any further may still exceed it;
	// the bound is a target, never a truncation.
	// Default: 500
	ChunkSize int

	// ChunkOverlap is the maximum length of content shared between
	// consecutive chunks. Must be smaller than ChunkSize.
	// Default: 100
	ChunkOverlap int

	// Separators is the split priority list, highest priority first.
	// An empty-string entry splits between every character.
	// Default: DefaultSeparators
	Separators []string

	// LenFunc measures text length. The default counts runes, so sizes
	// are in characters rather than bytes.
	LenFunc func(string) int

	// KeepWhitespace disables trimming of leading and trailing
	// whitespace from emitted chunks.
	// Default: false
	KeepWhitespace bool
}

// DefaultConfig returns the default splitter configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    500,
		ChunkOverlap: 100,
		Separators:   DefaultSeparators,
		LenFunc:      utf8.RuneCountInString,
	}
}

// Splitter splits text into bounded, overlapping chunks.
// A Splitter is immutable after construction and safe for concurrent use.
type Splitter struct {
	config Config
}

// New creates a splitter with the default configuration.
func New() *Splitter {
	s, _ := NewWithConfig(DefaultConfig())
	return s
}

// NewWithConfig creates a splitter with custom configuration.
// It returns a *ParameterError (wrapping ErrInvalidParameter) if
// ChunkSize is not positive, ChunkOverlap is negative, or ChunkOverlap
// is not smaller than ChunkSize. Zero-value fields other than the size
// parameters fall back to their defaults.
func NewWithConfig(config Config) (*Splitter, error) {
	if config.ChunkSize <= 0 {
		return nil, &ParameterError{Param: "chunk size", Value: config.ChunkSize, Reason: "must be positive"}
	}
	if config.ChunkOverlap < 0 {
		return nil, &ParameterError{Param: "chunk overlap", Value: config.ChunkOverlap, Reason: "must not be negative"}
	}
	if config.ChunkOverlap >= config.ChunkSize {
		return nil, &ParameterError{Param: "chunk overlap", Value: config.ChunkOverlap, Reason: "must be smaller than chunk size"}
	}
	if len(config.Separators) == 0 {
		config.Separators = DefaultSeparators
	}
	if config.LenFunc == nil {
		config.LenFunc = utf8.RuneCountInString
	}
	return &Splitter{config: config}, nil
}

// Split is a convenience wrapper that splits text with the given chunk
// size and overlap and otherwise default configuration.
func Split(text string, chunkSize, chunkOverlap int) ([]string, error) {
	config := DefaultConfig()
	config.ChunkSize = chunkSize
	config.ChunkOverlap = chunkOverlap

	s, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}
	return s.Split(text), nil
}

// Split splits text into an ordered sequence of chunks. Every chunk
// respects the configured ChunkSize except pieces that contain no
// separator at all and cannot be reduced further, which are emitted
// oversized rather than truncated. Empty input yields no chunks.
func (s *Splitter) Split(text string) []string {
	return s.split(text, s.config.Separators)
}

// split decomposes text using the highest-priority separator that occurs
// in it and recurses into parts that still exceed the chunk size with the
// remaining, lower-priority separators.
func (s *Splitter) split(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var remaining []string
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	var chunks []string

	// Pieces already within budget accumulate here until an oversized
	// piece (or the end of input) forces a merge.
	var fitting []string

	for _, piece := range splitOn(text, separator) {
		if s.length(piece) < s.config.ChunkSize {
			fitting = append(fitting, piece)
			continue
		}

		if len(fitting) > 0 {
			chunks = append(chunks, s.merge(fitting, separator)...)
			fitting = nil
		}

		if len(remaining) == 0 {
			// Nothing finer to split on. Emit the oversized piece
			// as-is rather than truncating it.
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.split(piece, remaining)...)
		}
	}

	if len(fitting) > 0 {
		chunks = append(chunks, s.merge(fitting, separator)...)
	}

	return chunks
}

// splitOn splits text on separator, or into individual characters when
// the separator is empty. Empty parts are dropped; the separator itself
// is reinserted later when pieces are joined back into chunks.
func splitOn(text, separator string) []string {
	var parts []string
	if separator == "" {
		parts = make([]string, 0, utf8.RuneCountInString(text))
		for _, r := range text {
			parts = append(parts, string(r))
		}
		return parts
	}

	split := strings.Split(text, separator)
	parts = make([]string, 0, len(split))
	for _, p := range split {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// length measures text with the configured length function.
func (s *Splitter) length(text string) int {
	return s.config.LenFunc(text)
}

// join recombines pieces with the separator that produced them and
// applies whitespace trimming unless disabled.
func (s *Splitter) join(pieces []string, separator string) string {
	joined := strings.Join(pieces, separator)
	if !s.config.KeepWhitespace {
		joined = strings.TrimSpace(joined)
	}
	return joined
}
