package extract

import (
	"fmt"
	"os"
	"strings"

	rpdf "rsc.io/pdf"
)

// pdfText extracts text from a PDF, page by page in document order.
// The rsc.io/pdf reader is tried first; PDFs it cannot parse fall back to
// raw content-stream extraction via pdfcpu.
func pdfText(path string) (string, error) {
	text, rerr := readerText(path)
	if rerr == nil && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text), nil
	}

	stext, serr := streamText(path)
	if serr == nil {
		return strings.TrimSpace(stext), nil
	}
	if rerr == nil {
		// A readable PDF with no extractable text is not a failure.
		return strings.TrimSpace(text), nil
	}
	return "", fmt.Errorf("extract pdf %s: %w", path, rerr)
}

// readerText walks every page with rsc.io/pdf and concatenates the text
// runs in content order. The library panics on malformed files, so the
// whole walk runs behind a recover.
func readerText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", err
	}

	doc, err := rpdf.NewReader(f, fi.Size())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			// Pages without content contribute nothing, not a failure.
			continue
		}
		var prevY float64
		for _, t := range page.Content().Text {
			if prevY != 0 && t.Y != prevY {
				sb.WriteByte('\n')
			}
			sb.WriteString(t.S)
			prevY = t.Y
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
