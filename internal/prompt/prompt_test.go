package prompt

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestInstruction_PureFunctionOfKind(t *testing.T) {
	want := map[Kind]string{
		Summary:  "You are an expert financial data summarizer.",
		Insights: "You are a financial analyst who identifies trends, risks, and opportunities.",
		MCQ:      "You are a teacher creating concept-checking MCQs.",
		Answer:   "You are an expert assistant that answers accurately from context.",
	}
	for kind, instruction := range want {
		if got := kind.Instruction(); got != instruction {
			t.Errorf("%s instruction: got %q", kind, got)
		}
	}

	// Independent of document content: Build returns the same system
	// instruction whatever the text.
	for _, text := range []string{"", "short", strings.Repeat("x", 20000)} {
		for kind := range want {
			p, err := Direct{}.Build(context.Background(), text, Task{Kind: kind, Questions: 5})
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if p.System != want[kind] {
				t.Errorf("%s system drifted with content: %q", kind, p.System)
			}
		}
	}
}

func TestBudgets(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Summary, 6000},
		{Insights, 8000},
		{MCQ, 8000},
		{Answer, 6000},
	}
	for _, tt := range tests {
		if got := tt.kind.Budget(); got != tt.want {
			t.Errorf("%s budget: got %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestBuild_TruncatesToExactBudget(t *testing.T) {
	long := strings.Repeat("é", 10000) // multi-byte, budgets count characters
	for _, kind := range []Kind{Summary, Insights, MCQ, Answer} {
		p, err := Direct{}.Build(context.Background(), long, Task{Kind: kind, Questions: 3})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		fragment := strings.Repeat("é", kind.Budget())
		if !strings.Contains(p.User, fragment) {
			t.Errorf("%s: prompt missing exact-budget fragment", kind)
		}
		if strings.Contains(p.User, fragment+"é") {
			t.Errorf("%s: prompt embeds more than the budget", kind)
		}
	}
}

func TestBuild_ShortTextVerbatim(t *testing.T) {
	text := "A small document.\nWith two lines."
	for _, kind := range []Kind{Summary, Insights, MCQ, Answer} {
		p, err := Direct{}.Build(context.Background(), text, Task{Kind: kind, Questions: 3})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if !strings.Contains(p.User, text) {
			t.Errorf("%s: short text not embedded verbatim:\n%s", kind, p.User)
		}
	}
}

func TestHead(t *testing.T) {
	if got := head("abcdef", 4); got != "abcd" {
		t.Errorf("head: got %q", got)
	}
	if got := head("abc", 10); got != "abc" {
		t.Errorf("head under budget: got %q", got)
	}
	if got := head("ééé", 2); utf8.RuneCountInString(got) != 2 {
		t.Errorf("head runes: got %q", got)
	}
}

func TestBuild_MCQEmbedsCount(t *testing.T) {
	p, err := Direct{}.Build(context.Background(), "doc", Task{Kind: MCQ, Questions: 7})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(p.User, "Generate 7 multiple choice questions with 4 options each") {
		t.Errorf("mcq prompt: %q", p.User)
	}
	if !strings.Contains(p.User, "provide the correct answer at the end") {
		t.Errorf("mcq prompt missing answer indicator instruction: %q", p.User)
	}
}

func TestBuild_AnswerEmbedsQuestionVerbatim(t *testing.T) {
	question := "What was Q2 revenue (in $M)?"
	p, err := Direct{}.Build(context.Background(), "doc text", Task{Kind: Answer, Question: question})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.HasSuffix(p.User, "Question: "+question) {
		t.Errorf("answer prompt: %q", p.User)
	}
	if !strings.Contains(p.User, "Document:\ndoc text") {
		t.Errorf("answer prompt missing document: %q", p.User)
	}
}
