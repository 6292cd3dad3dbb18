package splitter

// merge greedily recombines pieces that individually fit within the
// chunk size into chunks, seeding each new chunk with trailing pieces
// of its predecessor to provide overlap.
//
// The overlap window is piece-aligned: when a chunk is emitted, whole
// leading pieces are dropped from the accumulator until the carried
// tail is within ChunkOverlap and leaves room for the incoming piece.
// Because the rune-level fallback produces single-character pieces,
// the window degrades to an exact character count when no separator
// boundary falls inside it.
func (s *Splitter) merge(pieces []string, separator string) []string {
	sepLen := s.length(separator)

	var chunks []string

	// The accumulating window of pieces for the current chunk, and the
	// running length of joining them with the separator.
	var window []string
	total := 0

	for _, piece := range pieces {
		pieceLen := s.length(piece)

		projected := total + pieceLen
		if len(window) > 0 {
			projected += sepLen
		}

		if projected > s.config.ChunkSize && len(window) > 0 {
			if chunk := s.join(window, separator); chunk != "" {
				chunks = append(chunks, chunk)
			}

			for s.shouldShrink(total, pieceLen, sepLen, len(window)) {
				total -= s.length(window[0])
				if len(window) > 1 {
					total -= sepLen
				}
				window = window[1:]
			}
		}

		window = append(window, piece)
		total += pieceLen
		if len(window) > 1 {
			total += sepLen
		}
	}

	if chunk := s.join(window, separator); chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}

// shouldShrink reports whether the overlap window must drop its leading
// piece: either the carried tail still exceeds the overlap budget, or
// appending the incoming piece would overflow the chunk size while the
// window is non-empty.
func (s *Splitter) shouldShrink(total, pieceLen, sepLen, windowLen int) bool {
	if total > s.config.ChunkOverlap {
		return true
	}
	joint := 0
	if windowLen > 0 {
		joint = sepLen
	}
	return total+pieceLen+joint > s.config.ChunkSize && total > 0
}
