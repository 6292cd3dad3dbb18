package segmenta

import "testing"

func TestFormatWarnings(t *testing.T) {
	tests := []struct {
		name     string
		warnings []Warning
		want     string
	}{
		{"none", nil, ""},
		{"one", []Warning{{Message: "first"}}, "first"},
		{
			"several",
			[]Warning{{Message: "first"}, {Message: "second"}},
			"first; second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWarnings(tt.warnings); got != tt.want {
				t.Errorf("FormatWarnings() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: WarnChunkSizeRange, Message: "out of range"}
	if got := w.String(); got != "out of range" {
		t.Errorf("String() = %q, want %q", got, "out of range")
	}
}
