package ai

import (
	"context"
	"fmt"

	"amorago/internal/config"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

const companionPersona = "You are a warm, attentive companion on a dating platform. " +
	"Keep replies personal, kind, and conversational. Never claim to be a real person."

// ModelGenerator produces replies through a hosted chat model. It is the
// real-service implementation behind the chat generator seam.
type ModelGenerator struct {
	chatModel model.BaseChatModel
}

// NewModelGenerator builds a generator for the configured provider, one of
// openai, gemini, or claude.
func NewModelGenerator(ctx context.Context, provider string, provCfg config.ProviderConfig) (*ModelGenerator, error) {
	if provCfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s has no api key", provider)
	}

	var (
		chatModel model.BaseChatModel
		err       error
	)
	switch provider {
	case "openai":
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: provCfg.BaseURL,
			Model:   provCfg.Model,
			APIKey:  provCfg.APIKey,
		})
	case "gemini":
		var client *genai.Client
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: provCfg.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		chatModel, err = gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  provCfg.Model,
		})
	case "claude":
		var baseURLPtr *string
		if provCfg.BaseURL != "" {
			baseURLPtr = &provCfg.BaseURL
		}
		chatModel, err = claude.NewChatModel(ctx, &claude.Config{
			APIKey:    provCfg.APIKey,
			Model:     provCfg.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: 1000,
		})
	default:
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", provider, err)
	}

	return &ModelGenerator{chatModel: chatModel}, nil
}

// Generate sends the message to the model with the companion persona. seq is
// accepted to satisfy the generator contract; model output is not a pure
// function of it.
func (g *ModelGenerator) Generate(ctx context.Context, message string, seq int) (string, error) {
	out, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(companionPersona),
		schema.UserMessage(message),
	})
	if err != nil {
		return "", fmt.Errorf("model generate: %w", err)
	}
	return out.Content, nil
}
