package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"replygen/internal/models"
)

const (
	TemperatureSummary float32 = 0.5
	TemperatureReply   float32 = 0.7
)

// ErrEmptyCompletion is reported when the provider answers without any content.
var ErrEmptyCompletion = errors.New("empty completion response")

// Client sends single-message completions through a chat model shared by all requests.
type Client struct {
	chatModel model.BaseChatModel
}

func NewClient(chatModel model.BaseChatModel) (*Client, error) {
	if chatModel == nil {
		return nil, errors.New("chat model required")
	}
	return &Client{chatModel: chatModel}, nil
}

// Complete sends prompt as one user message. It never returns a Go error; failures are
// carried in the returned Completion.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float32) models.Completion {
	resp, err := c.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)},
		model.WithTemperature(temperature))
	if err != nil {
		return models.CompletionError(fmt.Errorf("generate completion: %w", err))
	}
	if resp == nil || resp.Content == "" {
		return models.CompletionError(ErrEmptyCompletion)
	}
	return models.CompletionText(strings.TrimSpace(resp.Content))
}
