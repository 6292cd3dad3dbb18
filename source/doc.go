// Package source acquires and decodes document text for chunking.
//
// It detects the input format (plain text, markdown, HTML, or image) from
// the filename and content, and decodes file bytes to a UTF-8 string with
// BOM-aware UTF-8/UTF-16 handling and a Windows-1252 fallback for legacy
// text files.
//
// The package produces a single decoded string; structure-aware extraction
// for HTML and OCR for images live in the htmldoc and ocr packages.
package source
