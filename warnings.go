package segmenta

import "strings"

// WarningCode identifies a class of non-fatal condition encountered
// while acquiring or chunking a source.
type WarningCode int

const (
	// WarnChunkSizeRange indicates a chunk size outside the recommended
	// range. Processing continues with the supplied value.
	WarnChunkSizeRange WarningCode = iota
	// WarnChunkOverlapRange indicates a chunk overlap outside the
	// recommended range. Processing continues with the supplied value.
	WarnChunkOverlapRange
	// WarnDecodeFallback indicates the source was not valid UTF-8 and
	// was decoded with the legacy Windows-1252 fallback.
	WarnDecodeFallback
	// WarnEmptySource indicates the source contained no text, so no
	// chunks were produced.
	WarnEmptySource
)

// Recommended parameter ranges. Values outside these ranges are accepted
// with a warning, never rejected; only the hard invariants (positive
// size, overlap smaller than size) are fatal.
const (
	RecommendedChunkSizeMin = 200
	RecommendedChunkSizeMax = 500

	RecommendedChunkOverlapMin = 50
	RecommendedChunkOverlapMax = 100
)

// Warning describes a non-fatal issue encountered during processing.
type Warning struct {
	// Code classifies the warning.
	Code WarningCode

	// Message is a human-readable description.
	Message string
}

// String returns the warning message.
func (w Warning) String() string {
	return w.Message
}

// FormatWarnings joins warning messages into a single string for display.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}
