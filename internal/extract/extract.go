// Package extract pulls plain text out of document files.
//
// Supported formats:
//   - .pdf        — page-by-page text extraction
//   - .txt, .csv  — read verbatim
//   - .md         — read verbatim
//
// The result is the concatenated text of every page or the raw file body,
// with leading/trailing whitespace trimmed. A page that yields no text
// contributes an empty string; only I/O and parse-level failures are errors.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for file extensions the extractor does not handle.
var ErrUnsupported = errors.New("unsupported document format")

// Text extracts the full plain-text content of the document at path.
// Calling it twice on an unchanged file yields identical text.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return pdfText(path)
	case ".txt", ".csv", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}
