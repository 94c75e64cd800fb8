// Package llm wraps external text-generation services behind a single
// completion interface: one system message, one user message, one text
// choice back. Calls are single-turn and stateless.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Request is one completion call. Model and Temperature are passed through
// to the service unvalidated; invalid values surface as its errors.
type Request struct {
	Model       string
	Temperature float64
	System      string
	User        string
}

// Client is the completion interface implemented per provider.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrNoChoices is returned when the service answers without any generated text.
var ErrNoChoices = errors.New("no completion choices returned")

// New builds the client for the named provider.
func New(ctx context.Context, provider, apiKey string) (Client, error) {
	switch provider {
	case "openai":
		return NewOpenAI(apiKey), nil
	case "gemini", "google":
		return NewGemini(ctx, apiKey)
	case "anthropic", "claude":
		return NewAnthropic(apiKey), nil
	case "static":
		return Static{}, nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", provider)
	}
}
