// Command segmenta chunks document text for indexing and retrieval.
//
// It reads a text, markdown, HTML, or image source, splits it into
// bounded overlapping chunks, and writes the result as annotated text
// blocks, JSON, or JSON Lines.
//
// Usage:
//
//	segmenta document.txt                        # chunk to output/chunks_<epoch>.txt
//	segmenta document.txt -o chunks.txt          # chunk to a named file
//	segmenta report.html -o - --format jsonl     # chunk HTML to stdout as JSON Lines
//	segmenta scan.png --ocr-lang eng+fra         # OCR an image (requires -tags ocr)
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
