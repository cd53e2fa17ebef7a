package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/contract-review/internal/domain/ai"
	"github.com/bryanwahyu/contract-review/internal/infra/ai/prompt"
)

const DefaultModel = openai.GPT4oMini

// Options configures the long-lived completion client.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Client is built once at startup and shared by all requests.
type Client struct {
	*openai.Client
	Model string
}

var _ ai.Analyzer = (*Client)(nil)

func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// AnalyzeContract issues a single chat completion and returns the message content unmodified.
func (c *Client) AnalyzeContract(ctx context.Context, contractText string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.UserPrompt(contractText)},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ai.ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

// Ping checks that the completion service is reachable with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.ListModels(ctx); err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	return nil
}
