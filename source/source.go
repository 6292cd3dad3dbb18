package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies the character encoding a source was decoded from.
type Encoding int

const (
	// UTF8 indicates plain UTF-8 with no byte order mark.
	UTF8 Encoding = iota
	// UTF8BOM indicates UTF-8 with a leading byte order mark (stripped).
	UTF8BOM
	// UTF16LE indicates little-endian UTF-16 (detected by BOM).
	UTF16LE
	// UTF16BE indicates big-endian UTF-16 (detected by BOM).
	UTF16BE
	// Windows1252 indicates the legacy single-byte fallback used when
	// the content is not valid UTF-8.
	Windows1252
)

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF8BOM:
		return "UTF-8 (BOM)"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case Windows1252:
		return "Windows-1252"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts raw file bytes to a UTF-8 string.
//
// Detection order: UTF-8 BOM, UTF-16 BOMs, valid UTF-8 passthrough, and
// finally a Windows-1252 fallback so legacy text never fails outright.
// UTF-16 content that cannot be transformed (e.g. truncated code units)
// returns a decode error.
func Decode(data []byte) (string, Encoding, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), UTF8BOM, nil

	case bytes.HasPrefix(data, bomUTF16LE):
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", UTF16LE, fmt.Errorf("decoding UTF-16LE content: %w", err)
		}
		return string(decoded), UTF16LE, nil

	case bytes.HasPrefix(data, bomUTF16BE):
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", UTF16BE, fmt.Errorf("decoding UTF-16BE content: %w", err)
		}
		return string(decoded), UTF16BE, nil

	case utf8.Valid(data):
		return string(data), UTF8, nil

	default:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", Windows1252, fmt.Errorf("decoding legacy content: %w", err)
		}
		return string(decoded), Windows1252, nil
	}
}

// ReadFile reads and decodes a source file. A missing file surfaces the
// underlying os error, so callers can distinguish "source not found"
// with errors.Is(err, os.ErrNotExist).
func ReadFile(filename string) (string, Encoding, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", UTF8, fmt.Errorf("reading source %s: %w", filename, err)
	}
	return Decode(data)
}

// ReadAll reads and decodes all content from r.
func ReadAll(r io.Reader) (string, Encoding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", UTF8, fmt.Errorf("reading source: %w", err)
	}
	return Decode(data)
}
