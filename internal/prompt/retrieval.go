package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/shivendra/docanalyzer/internal/vector"
)

// Retrieval is the richer strategy: instead of the head of the document it
// embeds only the top-k chunks most similar to the task's query. The index
// is built fresh for each call and discarded with it; nothing is cached
// across requests.
type Retrieval struct {
	Embedder     vector.Embedder
	TopK         int
	ChunkSize    int
	ChunkOverlap int
}

// Defaults matching the original pipeline: top-3 retrieval over 1024-char chunks.
const (
	DefaultTopK      = 3
	DefaultChunkSize = 1024
)

func (r *Retrieval) Build(ctx context.Context, text string, task Task) (Prompt, error) {
	topK := r.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	size := r.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	// vector.Chunk normalizes a negative or oversized overlap itself.
	chunks := vector.Chunk(text, size, r.ChunkOverlap)
	index := vector.NewIndex(r.Embedder)
	if err := index.Add(ctx, chunks); err != nil {
		return Prompt{}, fmt.Errorf("index document: %w", err)
	}

	fragments, err := index.Search(ctx, queryFor(task), topK)
	if err != nil {
		return Prompt{}, fmt.Errorf("search document: %w", err)
	}
	contextText := strings.Join(fragments, "\n")

	if task.Kind == Answer {
		// Question answering keeps the retrieval pipeline's own shape:
		// question first, context after.
		return Prompt{
			System: "Use the context to answer.",
			User:   task.Question + "\n\nContext:\n" + contextText,
		}, nil
	}
	return Prompt{
		System: task.Kind.Instruction(),
		User:   userPrompt(head(contextText, task.Kind.Budget()), task),
	}, nil
}

// queryFor picks the similarity query for a task: the user's question where
// one exists, otherwise the kind's own instruction.
func queryFor(task Task) string {
	if task.Kind == Answer && task.Question != "" {
		return task.Question
	}
	return task.Kind.Instruction()
}
