package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// Gemini implements Client on Google's GenAI API.
type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &Gemini{client: c}, nil
}

func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	res, err := g.client.Models.GenerateContent(ctx, req.Model, []*genai.Content{
		genai.NewContentFromText(req.User, genai.RoleUser),
	}, cfg)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", ErrNoChoices
	}
	return text, nil
}

var _ Client = (*Gemini)(nil)
