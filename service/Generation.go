package service

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ChatCompleter answers a single free-form prompt.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ClientFactory interface {
	NewClient() (ChatCompleter, error)
}

type ChatConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ChatClientFactory builds go-openai clients from injected configuration.
type ChatClientFactory struct {
	cfg ChatConfig
	log *zap.Logger
}

func NewChatClientFactory(cfg ChatConfig, log *zap.Logger) *ChatClientFactory {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4o
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatClientFactory{cfg: cfg, log: log}
}

// NewClient fails without touching the network when the API key is missing.
func (f *ChatClientFactory) NewClient() (ChatCompleter, error) {
	if f.cfg.APIKey == "" {
		f.log.Error("API key not found in environment variables")
		return nil, &ConfigurationError{Err: ErrMissingAPIKey}
	}

	clientCfg := openai.DefaultConfig(f.cfg.APIKey)
	if f.cfg.BaseURL != "" {
		clientCfg.BaseURL = f.cfg.BaseURL
	}

	return &openAIChat{
		client: openai.NewClientWithConfig(clientCfg),
		model:  f.cfg.Model,
		log:    f.log,
	}, nil
}

type openAIChat struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

func (c *openAIChat) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		c.log.Error("ChatCompletion error", zap.String("model", c.model), zap.Error(err))
		return "", &TransportError{Op: opChatCompletion, Err: err}
	}

	if len(resp.Choices) == 0 {
		c.log.Error("ChatCompletion returned no choices", zap.String("model", c.model))
		return "", &TransportError{Op: opChatCompletion, Err: errors.New("no response from AI")}
	}

	return resp.Choices[0].Message.Content, nil
}
