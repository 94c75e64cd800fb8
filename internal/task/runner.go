// Package task composes extraction, prompt building, and completion into
// the four document tasks, and owns the boundary where failures become
// displayable strings.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shivendra/docanalyzer/internal/extract"
	"github.com/shivendra/docanalyzer/internal/llm"
	"github.com/shivendra/docanalyzer/internal/prompt"
)

// Runner executes one task at a time: extract, build, complete. It holds no
// per-document state; every invocation re-extracts the file and nothing is
// cached or retried.
type Runner struct {
	client  llm.Client
	builder prompt.Builder
	model   string
	log     *slog.Logger

	// extractText is swappable so tests can skip real files.
	extractText func(path string) (string, error)
}

// NewRunner wires a runner. model is the default model identifier used when
// a call does not supply one.
func NewRunner(client llm.Client, builder prompt.Builder, model string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		client:      client,
		builder:     builder,
		model:       model,
		log:         logger,
		extractText: extract.Text,
	}
}

// Options are per-call overrides. A nil Temperature selects the task kind's
// default.
type Options struct {
	Model       string
	Temperature *float64
}

// Summarize produces a bullet-point summary of the document.
func (r *Runner) Summarize(ctx context.Context, path string, opts Options) (string, error) {
	return r.generate(ctx, path, prompt.Task{Kind: prompt.Summary}, opts,
		"No text extracted from the document.")
}

// Insights derives trends, risks, and anomalies from the document.
func (r *Runner) Insights(ctx context.Context, path string, opts Options) (string, error) {
	return r.generate(ctx, path, prompt.Task{Kind: prompt.Insights}, opts,
		"No text extracted.")
}

// MCQ generates n multiple-choice questions and splits the raw completion
// into one block per blank-line boundary. Blocks are preserved byte for
// byte, well formed or not; downstream export round-trips edited blocks.
func (r *Runner) MCQ(ctx context.Context, path string, n int, opts Options) ([]string, error) {
	out, err := r.generate(ctx, path, prompt.Task{Kind: prompt.MCQ, Questions: n}, opts,
		"No text extracted.")
	if err != nil {
		return nil, err
	}
	return SplitBlocks(out), nil
}

// Answer responds to a free-text question about the document.
func (r *Runner) Answer(ctx context.Context, path, question string, opts Options) (string, error) {
	return r.generate(ctx, path, prompt.Task{Kind: prompt.Answer, Question: question}, opts,
		"No text available to answer from.")
}

// generate is the shared pipeline: ExtractingText → BuildingPrompt →
// Completing. Extraction and completion failures return as errors for the
// Run boundary to render; empty text short-circuits to the placeholder
// without calling the service.
func (r *Runner) generate(ctx context.Context, path string, task prompt.Task, opts Options, emptyMsg string) (string, error) {
	text, err := r.extractText(path)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	if text == "" {
		return emptyMsg, nil
	}

	p, err := r.builder.Build(ctx, text, task)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = r.model
	}
	temperature := task.Kind.DefaultTemperature()
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	r.log.Debug("completing", "task", task.Kind.String(), "model", model, "prompt_chars", len(p.User))

	out, err := r.client.Complete(ctx, llm.Request{
		Model:       model,
		Temperature: temperature,
		System:      p.System,
		User:        p.User,
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// SplitBlocks cuts completion text into blocks on blank-line boundaries.
// It is the exact left-inverse of JoinBlocks.
func SplitBlocks(s string) []string {
	return strings.Split(s, "\n\n")
}

// JoinBlocks reassembles blocks for display or export.
func JoinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n\n")
}
