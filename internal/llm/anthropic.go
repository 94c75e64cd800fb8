package llm

import (
	"context"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic implements Client on the Anthropic Messages API.
type Anthropic struct {
	client    *anthropic.Client
	maxTokens int
}

func NewAnthropic(apiKey string) *Anthropic {
	cl := anthropic.NewClient(anthropicopt.WithAPIKey(apiKey))
	return &Anthropic{client: &cl, maxTokens: 2048}
}

func (a *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   int64(a.maxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrNoChoices
	}
	return text, nil
}

var _ Client = (*Anthropic)(nil)
