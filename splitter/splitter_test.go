package splitter

import (
	"errors"
	"strings"
	"testing"
)

func TestNewWithConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"minimal valid", Config{ChunkSize: 1}, false},
		{"zero size", Config{ChunkSize: 0, ChunkOverlap: 0}, true},
		{"negative size", Config{ChunkSize: -10}, true},
		{"negative overlap", Config{ChunkSize: 100, ChunkOverlap: -1}, true},
		{"overlap equals size", Config{ChunkSize: 100, ChunkOverlap: 100}, true},
		{"overlap exceeds size", Config{ChunkSize: 100, ChunkOverlap: 150}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWithConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error %v does not match ErrInvalidParameter", err)
			}
		})
	}
}

func TestNewWithConfig_ParameterError(t *testing.T) {
	_, err := Split("text", 100, 150)
	if err == nil {
		t.Fatal("expected error for overlap >= size")
	}

	var paramErr *ParameterError
	if !errors.As(err, &paramErr) {
		t.Fatalf("expected *ParameterError, got %T", err)
	}
	if paramErr.Param != "chunk overlap" {
		t.Errorf("Param = %q, want %q", paramErr.Param, "chunk overlap")
	}
	if paramErr.Value != 150 {
		t.Errorf("Value = %d, want 150", paramErr.Value)
	}
}

func TestNewWithConfig_FillsDefaults(t *testing.T) {
	s, err := NewWithConfig(Config{ChunkSize: 50, ChunkOverlap: 10})
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	if got := len(s.config.Separators); got != len(DefaultSeparators) {
		t.Errorf("Separators length = %d, want %d", got, len(DefaultSeparators))
	}
	if s.config.LenFunc == nil {
		t.Error("LenFunc not defaulted")
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	chunks, err := Split("", 500, 100)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("Split(\"\") = %v, want empty", chunks)
	}
}

func TestSplit_InputShorterThanSize(t *testing.T) {
	chunks, err := Split("hello world", 500, 100)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{"hello world"}
	if !equalStrings(chunks, want) {
		t.Errorf("Split() = %v, want %v", chunks, want)
	}
}

func TestSplit_NoSeparators(t *testing.T) {
	// A run with no natural boundaries falls through to the rune-level
	// fallback and is windowed with exact character overlap.
	text := strings.Repeat("A", 1000)
	chunks, err := Split(text, 500, 100)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	wantLens := []int{500, 500, 200}
	if len(chunks) != len(wantLens) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(wantLens))
	}
	for i, want := range wantLens {
		if got := len(chunks[i]); got != want {
			t.Errorf("chunk %d length = %d, want %d", i, got, want)
		}
	}

	// Consecutive chunks share exactly the overlap budget.
	for i := 1; i < len(chunks); i++ {
		if got := sharedOverlap(chunks[i-1], chunks[i]); got < 100 {
			t.Errorf("chunks %d/%d share %d characters, want >= 100", i-1, i, got)
		}
	}
}

func TestSplit_ParagraphBoundaries(t *testing.T) {
	chunks, err := Split("para1\n\npara2\n\npara3", 10, 0)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{"para1", "para2", "para3"}
	if !equalStrings(chunks, want) {
		t.Errorf("Split() = %v, want %v", chunks, want)
	}
}

func TestSplit_WordBoundaries(t *testing.T) {
	chunks, err := Split("The quick brown fox jumps over the lazy dog", 15, 5)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{
		"The quick brown",
		"brown fox jumps",
		"jumps over the",
		"the lazy dog",
	}
	if !equalStrings(chunks, want) {
		t.Errorf("Split() = %v, want %v", chunks, want)
	}
}

func TestSplit_ParagraphAlignedOverlap(t *testing.T) {
	// The overlap seed cuts at the paragraph boundary inside the window
	// rather than at an exact character count.
	chunks, err := Split("p1p1p1\n\np2p2p2\n\np3p3p3", 16, 8)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{
		"p1p1p1\n\np2p2p2",
		"p2p2p2\n\np3p3p3",
	}
	if !equalStrings(chunks, want) {
		t.Errorf("Split() = %v, want %v", chunks, want)
	}
}

func TestSplit_MixedOversizedRun(t *testing.T) {
	text := "short " + strings.Repeat("B", 1200) + " tail"
	chunks, err := Split(text, 500, 100)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	wantLens := []int{5, 500, 500, 400, 4}
	if len(chunks) != len(wantLens) {
		t.Fatalf("got %d chunks (%v lengths), want %d", len(chunks), chunkLens(chunks), len(wantLens))
	}
	for i, want := range wantLens {
		if got := len(chunks[i]); got != want {
			t.Errorf("chunk %d length = %d, want %d", i, got, want)
		}
	}
	if chunks[0] != "short" {
		t.Errorf("chunk 0 = %q, want %q", chunks[0], "short")
	}
	if chunks[len(chunks)-1] != "tail" {
		t.Errorf("last chunk = %q, want %q", chunks[len(chunks)-1], "tail")
	}
}

func TestSplit_OversizedAtomicPiece(t *testing.T) {
	// Without the empty separator the run cannot be reduced, so it is
	// emitted oversized rather than truncated.
	s, err := NewWithConfig(Config{
		ChunkSize:    500,
		ChunkOverlap: 100,
		Separators:   []string{"\n\n", "\n", " "},
	})
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	text := strings.Repeat("X", 10000)
	chunks := s.Split(text)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if len(chunks[0]) != 10000 {
		t.Errorf("chunk length = %d, want 10000 (emitted, not truncated)", len(chunks[0]))
	}
}

func TestSplit_RuneCounting(t *testing.T) {
	// Sizes are measured in characters, not bytes.
	chunks, err := Split("ααα βββ γγγ", 7, 3)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{"ααα βββ", "βββ γγγ"}
	if !equalStrings(chunks, want) {
		t.Errorf("Split() = %v, want %v", chunks, want)
	}
}

func TestSplit_KeepWhitespace(t *testing.T) {
	text := " a\nb "

	s, err := NewWithConfig(Config{ChunkSize: 10, ChunkOverlap: 0})
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	if got := s.Split(text); !equalStrings(got, []string{"a\nb"}) {
		t.Errorf("trimmed Split() = %q, want [%q]", got, "a\nb")
	}

	s, err = NewWithConfig(Config{ChunkSize: 10, ChunkOverlap: 0, KeepWhitespace: true})
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	if got := s.Split(text); !equalStrings(got, []string{" a\nb "}) {
		t.Errorf("kept Split() = %q, want [%q]", got, " a\nb ")
	}
}

func TestSplit_Determinism(t *testing.T) {
	text := strings.Repeat("some words here\n\nand a second paragraph with more text\n", 40)

	first, err := Split(text, 120, 30)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Split(text, 120, 30)
		if err != nil {
			t.Fatalf("Split() error = %v", err)
		}
		if !equalStrings(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestSplitter_ConcurrentUse(t *testing.T) {
	s := New()
	text := strings.Repeat("concurrent access to a shared splitter instance ", 100)
	want := s.Split(text)

	done := make(chan []string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- s.Split(text)
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; !equalStrings(got, want) {
			t.Fatal("concurrent result differs")
		}
	}
}

// equalStrings reports whether two string slices are identical.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// chunkLens returns the lengths of each chunk, for failure messages.
func chunkLens(chunks []string) []int {
	lens := make([]int, len(chunks))
	for i, c := range chunks {
		lens[i] = len(c)
	}
	return lens
}

// sharedOverlap returns the length of the longest suffix of a that is
// also a prefix of b.
func sharedOverlap(a, b string) int {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for k := max; k > 0; k-- {
		if a[len(a)-k:] == b[:k] {
			return k
		}
	}
	return 0
}
