package task

import (
	"context"
	"fmt"

	"github.com/shivendra/docanalyzer/internal/prompt"
)

// Request is one UI-triggered task invocation.
type Request struct {
	Kind     prompt.Kind
	Path     string
	Question string // Answer only
	Count    int    // MCQ only
	Options
}

// Result is what the caller displays. Either Text or Blocks is set, never
// both; a failed task carries the tagged error string in Text.
type Result struct {
	Text   string
	Blocks []string
	Failed bool
}

// Export renders the result as a plain-text artifact: the verbatim text, or
// the blocks joined on blank lines.
func (r Result) Export() string {
	if len(r.Blocks) > 0 {
		return JoinBlocks(r.Blocks)
	}
	return r.Text
}

// Run executes the request and converts any failure into a task-tagged
// display string. This is the single error-to-string boundary: callers
// never see an error value and the process stays healthy for the next
// request.
func (r *Runner) Run(ctx context.Context, req Request) Result {
	switch req.Kind {
	case prompt.Summary:
		text, err := r.Summarize(ctx, req.Path, req.Options)
		return asResult(req.Kind, text, err)
	case prompt.Insights:
		text, err := r.Insights(ctx, req.Path, req.Options)
		return asResult(req.Kind, text, err)
	case prompt.MCQ:
		blocks, err := r.MCQ(ctx, req.Path, req.Count, req.Options)
		if err != nil {
			return failure(req.Kind, err)
		}
		return Result{Blocks: blocks}
	case prompt.Answer:
		text, err := r.Answer(ctx, req.Path, req.Question, req.Options)
		return asResult(req.Kind, text, err)
	default:
		return Result{Text: fmt.Sprintf("[Task error: unknown kind %v]", req.Kind), Failed: true}
	}
}

func asResult(kind prompt.Kind, text string, err error) Result {
	if err != nil {
		return failure(kind, err)
	}
	return Result{Text: text}
}

func failure(kind prompt.Kind, err error) Result {
	return Result{
		Text:   fmt.Sprintf("[%s: %v]", errorTag(kind), err),
		Failed: true,
	}
}

// errorTag names the task in its failure string.
func errorTag(kind prompt.Kind) string {
	switch kind {
	case prompt.Summary:
		return "Summary generation error"
	case prompt.Insights:
		return "Insight generation error"
	case prompt.MCQ:
		return "MCQ generation error"
	case prompt.Answer:
		return "Answer generation error"
	default:
		return "Task error"
	}
}
