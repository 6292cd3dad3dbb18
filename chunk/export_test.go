package chunk

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"txt", FormatText, false},
		{"JSON", FormatJSON, false},
		{"jsonl", FormatJSONL, false},
		{"ndjson", FormatJSONL, false},
		{"xml", FormatText, true},
		{"", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestWritePlain(t *testing.T) {
	col := NewCollection([]string{"first chunk", "second"})

	var buf bytes.Buffer
	if err := WritePlain(&buf, col); err != nil {
		t.Fatalf("WritePlain() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"=== Chunk 1/2 ===",
		"=== Chunk 2/2 ===",
		"Length: 11 characters",
		"Length: 6 characters",
		"first chunk",
		"second",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	col := NewCollection([]string{"alpha beta", "gamma"})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, col); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded Collection
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Chunks) != 2 {
		t.Fatalf("decoded %d chunks, want 2", len(decoded.Chunks))
	}
	if decoded.Chunks[0].Text != "alpha beta" {
		t.Errorf("chunk 0 text = %q, want %q", decoded.Chunks[0].Text, "alpha beta")
	}
	if decoded.Stats.TotalChunks != 2 {
		t.Errorf("decoded TotalChunks = %d, want 2", decoded.Stats.TotalChunks)
	}
}

func TestWriteJSON_NoHTMLEscaping(t *testing.T) {
	col := NewCollection([]string{"a < b && c > d"})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, col); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if strings.Contains(buf.String(), `\u003c`) {
		t.Error("output HTML-escapes angle brackets")
	}
}

func TestWriteJSONL(t *testing.T) {
	col := NewCollection([]string{"one", "two", "three"})

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, col); err != nil {
		t.Fatalf("WriteJSONL() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		var c Chunk
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if c.Index != i {
			t.Errorf("line %d has Index %d", i, c.Index)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, NewCollection([]string{"x"}), Format(42)); err == nil {
		t.Error("expected error for unknown format")
	}
}
