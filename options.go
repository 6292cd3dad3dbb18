package segmenta

// SplitOptions holds configuration for a chunking pipeline.
type SplitOptions struct {
	// Chunking parameters
	chunkSize    int
	chunkOverlap int
	separators   []string

	// Processing options
	keepWhitespace bool
	ocrLanguage    string
}

// defaultOptions returns the default pipeline options.
func defaultOptions() SplitOptions {
	return SplitOptions{
		chunkSize:    500,
		chunkOverlap: 100,
		separators:   nil, // nil means the splitter's default priority list
		ocrLanguage:  "eng",
	}
}

// clone creates a deep copy of SplitOptions.
func (o SplitOptions) clone() SplitOptions {
	newOpts := SplitOptions{
		chunkSize:      o.chunkSize,
		chunkOverlap:   o.chunkOverlap,
		keepWhitespace: o.keepWhitespace,
		ocrLanguage:    o.ocrLanguage,
	}

	// Deep copy separators slice
	if o.separators != nil {
		newOpts.separators = make([]string, len(o.separators))
		copy(newOpts.separators, o.separators)
	}

	return newOpts
}
