// Package splitter implements hierarchical, separator-aware text splitting
// with bounded chunk sizes and controlled overlap between consecutive chunks.
//
// The strategy follows the recursive character splitting approach popularized
// by LangChain: text is decomposed at the most "natural" boundary available
// (paragraph, then line, then word, then individual character), and the
// resulting pieces are greedily recombined into chunks that respect a maximum
// size, with each chunk seeded from the tail of its predecessor to provide
// overlap.
//
// Basic usage:
//
//	chunks, err := splitter.Split(text, 500, 100)
//
// With configuration:
//
//	s, err := splitter.NewWithConfig(splitter.Config{
//	    ChunkSize:    300,
//	    ChunkOverlap: 50,
//	    Separators:   []string{"\n\n", "\n", " ", ""},
//	})
//	if err != nil {
//	    // invalid parameters
//	}
//	chunks := s.Split(text)
//
// Splitting is a pure computation: the same input and configuration always
// produce the same chunk sequence, no state is shared between calls, and a
// single Splitter is safe for concurrent use by multiple goroutines.
package splitter
