// Package prompt turns extracted document text plus a task selection into
// the system instruction and user prompt sent to the completion service.
package prompt

import (
	"context"
	"fmt"
)

// Kind selects one of the four supported tasks. Each kind owns its system
// instruction, its character budget, and its default sampling temperature.
type Kind int

const (
	Summary Kind = iota
	Insights
	MCQ
	Answer
)

func (k Kind) String() string {
	switch k {
	case Summary:
		return "summary"
	case Insights:
		return "insights"
	case MCQ:
		return "mcq"
	case Answer:
		return "answer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Instruction returns the fixed system instruction for the kind. It depends
// on the kind alone, never on document content.
func (k Kind) Instruction() string {
	switch k {
	case Summary:
		return "You are an expert financial data summarizer."
	case Insights:
		return "You are a financial analyst who identifies trends, risks, and opportunities."
	case MCQ:
		return "You are a teacher creating concept-checking MCQs."
	case Answer:
		return "You are an expert assistant that answers accurately from context."
	default:
		return ""
	}
}

// Budget returns the maximum number of characters of document text embedded
// in the prompt, taken from the start of the text. The budgets are fixed to
// stay under the completion service's context limits.
func (k Kind) Budget() int {
	switch k {
	case Summary, Answer:
		return 6000
	case Insights, MCQ:
		return 8000
	default:
		return 6000
	}
}

// DefaultTemperature returns the sampling temperature used when the caller
// does not supply one.
func (k Kind) DefaultTemperature() float64 {
	switch k {
	case Summary:
		return 0.3
	case Insights:
		return 0.4
	case MCQ:
		return 0.5
	case Answer:
		return 0.2
	default:
		return 0.3
	}
}

// Task is one prompt-construction request.
type Task struct {
	Kind      Kind
	Question  string // Answer only: the user's free-text question, embedded verbatim
	Questions int    // MCQ only: requested question count
}

// Prompt is the pair handed to the completion client: exactly one system
// message and one user message.
type Prompt struct {
	System string
	User   string
}

// Builder composes a Prompt from extracted text and a task.
// Two strategies exist: Direct embeds the head of the document itself,
// Retrieval embeds only the chunks most similar to the task's query.
type Builder interface {
	Build(ctx context.Context, text string, task Task) (Prompt, error)
}

// Direct is the simple strategy: pure string composition over the
// head-truncated document text. It never fails.
type Direct struct{}

func (Direct) Build(_ context.Context, text string, task Task) (Prompt, error) {
	return Prompt{
		System: task.Kind.Instruction(),
		User:   userPrompt(head(text, task.Kind.Budget()), task),
	}, nil
}

// userPrompt renders the per-kind template around the (already truncated)
// document fragment.
func userPrompt(fragment string, task Task) string {
	switch task.Kind {
	case Summary:
		return "Summarize this financial or technical document in bullet points:\n\n" + fragment
	case Insights:
		return "From the following financial document, derive deep insights, patterns, and anomalies:\n\n" + fragment
	case MCQ:
		return fmt.Sprintf(
			"Generate %d multiple choice questions with 4 options each, "+
				"and provide the correct answer at the end. Use this document:\n\n%s",
			task.Questions, fragment)
	case Answer:
		return "Use the following document to answer the question:\n\nDocument:\n" +
			fragment + "\n\nQuestion: " + task.Question
	default:
		return fragment
	}
}

// head returns the first n characters of text. Text at or under the budget
// passes through verbatim.
func head(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
