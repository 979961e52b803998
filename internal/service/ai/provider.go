package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"replygen/internal/config"
)

const claudeMaxTokens = 3000

var ErrUnsupportedProvider = errors.New("unsupported provider")

// NewChatModel builds the chat model for the configured provider.
func NewChatModel(ctx context.Context, cfg config.ProviderConfig) (model.BaseChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s api key missing", cfg.Name)
	}

	var (
		chatModel model.BaseChatModel
		err       error
	)
	switch cfg.Name {
	case "openai":
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			APIKey:  cfg.APIKey,
		})
	case "gemini":
		client, clientErr := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if clientErr != nil {
			return nil, fmt.Errorf("new gemini client: %w", clientErr)
		}
		chatModel, err = gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  cfg.Model,
		})
	case "claude":
		var baseURLPtr *string
		if cfg.BaseURL != "" {
			baseURLPtr = &cfg.BaseURL
		}
		chatModel, err = claude.NewChatModel(ctx, &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: claudeMaxTokens,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", cfg.Name, err)
	}
	return chatModel, nil
}
