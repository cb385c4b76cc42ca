// Package source reads taskbook documents into an ordered stream of
// paragraph lines. Sources hand lines over exactly as the document
// carries them; whitespace normalization belongs to the extraction
// engine, not here.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Source converts raw document bytes into paragraph lines in reading order.
type Source interface {
	Lines(r io.Reader, filename string) ([]string, error)
}

// SupportedExtensions lists file extensions this tool can handle.
// DOCX is the canonical taskbook container; the rest cover taskbooks
// that arrive as exported or scanned text.
var SupportedExtensions = map[string]bool{
	".docx":     true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXSource{}, nil
	case ".txt":
		return &TextSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".pdf":
		return &PDFSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
