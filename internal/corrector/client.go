package corrector

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// TextCorrector is the external correction capability: it consumes a full
// prompt and returns the corrected text. Implementations must be safe for
// concurrent use.
type TextCorrector interface {
	Correct(ctx context.Context, prompt string) (string, error)
}

// Client adapts the Anthropic Messages API to TextCorrector.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewClient builds the Claude-backed corrector. An empty API key is a
// configuration error and is rejected here, before any lesson is dispatched.
func NewClient(apiKey, model string, maxTokens int64) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("corrector: API key is not set")
	}
	if model == "" {
		return nil, fmt.Errorf("corrector: model is not set")
	}
	if maxTokens <= 0 {
		maxTokens = 8000
	}
	return &Client{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Correct sends one prompt to Claude and returns the response text.
func (c *Client) Correct(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return msg.Content[0].Text, nil
}

var _ TextCorrector = (*Client)(nil)
