package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	// Register decoders for formats Tesseract does not accept directly.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	tiffLE    = []byte{'I', 'I', 0x2A, 0x00}
	tiffBE    = []byte{'M', 'M', 0x00, 0x2A}
)

// NormalizeImage converts image data to a format Tesseract accepts.
// PNG, JPEG, and TIFF pass through untouched; BMP, WebP, and GIF are
// decoded and re-encoded as PNG. Unrecognized data returns an error.
func NormalizeImage(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngMagic) ||
		bytes.HasPrefix(data, jpegMagic) ||
		bytes.HasPrefix(data, tiffLE) ||
		bytes.HasPrefix(data, tiffBE) {
		return data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("re-encoding %s image as PNG: %w", format, err)
	}
	return buf.Bytes(), nil
}
