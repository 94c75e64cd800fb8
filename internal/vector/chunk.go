// Package vector is the similarity-search collaborator: it chunks document
// text, embeds the chunks, and ranks them against a query by cosine
// similarity. Everything lives in memory for the lifetime of one request.
package vector

// Chunk splits text into slices of at most size characters, with overlap
// characters repeated between consecutive chunks. Empty text yields nil.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = 1024
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{text}
	}

	step := size - overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
