package vector

import (
	"context"
	"math"
	"sort"
	"sync"
)

// Index is a session-scoped in-memory similarity index. It holds the
// fragments of a single document for the duration of one request; nothing
// is persisted.
type Index struct {
	embedder Embedder

	mu        sync.RWMutex
	fragments []fragment
}

type fragment struct {
	text string
	vec  []float32
}

func NewIndex(embedder Embedder) *Index {
	return &Index{embedder: embedder}
}

// Add embeds the given texts and stores them in insertion order.
// Empty fragments are skipped.
func (ix *Index) Add(ctx context.Context, texts []string) error {
	kept := texts[:0:0]
	for _, t := range texts {
		if t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	vecs, err := ix.embedder.EmbedBatch(ctx, kept)
	if err != nil {
		return err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	for i, t := range kept {
		ix.fragments = append(ix.fragments, fragment{text: t, vec: vecs[i]})
	}
	return nil
}

// Search returns up to k fragment texts ranked by cosine similarity to the
// query, most similar first.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}
	queryVec, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	type scored struct {
		text  string
		score float64
	}
	ranked := make([]scored, 0, len(ix.fragments))
	for _, f := range ix.fragments {
		ranked = append(ranked, scored{text: f.text, score: Cosine(queryVec, f.vec)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.text
	}
	return out, nil
}

// Len reports the number of stored fragments.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.fragments)
}

// Cosine computes the cosine similarity between two vectors. Mismatched
// lengths are compared over the shorter prefix; zero vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
