package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shivendra/docanalyzer/internal/llm"
	"github.com/shivendra/docanalyzer/internal/prompt"
)

func TestRun_Success(t *testing.T) {
	r := testRunner(llm.Static{Reply: "a fine summary"}, "doc text", nil)
	res := r.Run(context.Background(), Request{Kind: prompt.Summary, Path: "doc.pdf"})
	if res.Failed {
		t.Fatalf("unexpected failure: %q", res.Text)
	}
	if res.Text != "a fine summary" {
		t.Errorf("text: %q", res.Text)
	}
	if res.Export() != "a fine summary" {
		t.Errorf("export: %q", res.Export())
	}
}

func TestRun_MCQBlocksExport(t *testing.T) {
	r := testRunner(llm.Static{Reply: "Q1 block\n\nQ2 block"}, "doc text", nil)
	res := r.Run(context.Background(), Request{Kind: prompt.MCQ, Path: "doc.pdf", Count: 2})
	if res.Failed {
		t.Fatalf("unexpected failure: %q", res.Text)
	}
	if len(res.Blocks) != 2 {
		t.Fatalf("blocks: %v", res.Blocks)
	}
	if res.Export() != "Q1 block\n\nQ2 block" {
		t.Errorf("export: %q", res.Export())
	}
}

func TestRun_ExtractionFailureTaggedPerKind(t *testing.T) {
	tests := []struct {
		kind prompt.Kind
		tag  string
	}{
		{prompt.Summary, "[Summary generation error:"},
		{prompt.Insights, "[Insight generation error:"},
		{prompt.MCQ, "[MCQ generation error:"},
		{prompt.Answer, "[Answer generation error:"},
	}
	for _, tt := range tests {
		r := testRunner(llm.Static{Reply: "ok"}, "", errors.New("no such file"))
		res := r.Run(context.Background(), Request{Kind: tt.kind, Path: "nope.pdf", Question: "q", Count: 1})
		if !res.Failed {
			t.Fatalf("%s: expected failure", tt.kind)
		}
		if !strings.HasPrefix(res.Text, tt.tag) {
			t.Errorf("%s: tag missing: %q", tt.kind, res.Text)
		}
		if !strings.Contains(res.Text, "no such file") {
			t.Errorf("%s: cause missing: %q", tt.kind, res.Text)
		}
	}
}

func TestRun_CompletionFailureThenRecovery(t *testing.T) {
	// A failed completion is converted to a tagged string and the runner
	// stays usable for the next request.
	flaky := &flakyClient{err: errors.New("request timed out")}
	r := testRunner(flaky, "doc text", nil)
	ctx := context.Background()

	res := r.Run(ctx, Request{Kind: prompt.Answer, Path: "doc.pdf", Question: "q"})
	if !res.Failed || !strings.HasPrefix(res.Text, "[Answer generation error:") {
		t.Fatalf("first run: %+v", res)
	}
	if !strings.Contains(res.Text, "request timed out") {
		t.Errorf("cause missing: %q", res.Text)
	}

	flaky.err = nil
	res = r.Run(ctx, Request{Kind: prompt.Answer, Path: "doc.pdf", Question: "q"})
	if res.Failed || res.Text != "recovered" {
		t.Fatalf("second run: %+v", res)
	}
}

type flakyClient struct {
	err error
}

func (c *flakyClient) Complete(context.Context, llm.Request) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return "recovered", nil
}
