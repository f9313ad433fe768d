// Package openrouter provides a client for AI-powered content rewriting
// through the OpenRouter chat-completion API.
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/issuemgr/issuemgr/internal/config"
	"github.com/issuemgr/issuemgr/internal/logging"
)

// baseURL is the OpenRouter endpoint. OpenRouter speaks the OpenAI
// chat-completion wire format.
const baseURL = "https://openrouter.ai/api/v1"

// requestTimeout bounds every completion request.
const requestTimeout = 60 * time.Second

// Client wraps the OpenRouter chat-completion API.
type Client struct {
	api    *openai.Client
	apiKey string
	model  string
}

// NewClient creates a new OpenRouter client. It returns an error when no
// API key is configured.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenRouter.APIKey == "" {
		return nil, fmt.Errorf("openrouter api key is required")
	}

	model := cfg.OpenRouter.Model
	if model == "" {
		model = config.DefaultModel
	}

	clientConfig := openai.DefaultConfig(cfg.OpenRouter.APIKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = &http.Client{Timeout: requestTimeout}

	return &Client{
		api:    openai.NewClientWithConfig(clientConfig),
		apiKey: cfg.OpenRouter.APIKey,
		model:  model,
	}, nil
}

// newClientWithAPI constructs a client around an explicit API client.
// Used by tests to point at a local server.
func newClientWithAPI(api *openai.Client, apiKey, model string) *Client {
	return &Client{api: api, apiKey: apiKey, model: model}
}

// RewriteContent sends the prompt as a single user message and returns
// the first choice's message text. All failures (timeout, transport or
// HTTP error, malformed response) are logged and returned as errors.
func (c *Client) RewriteContent(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: temperature,
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			logging.Error("openrouter request timed out")
		case errors.As(err, &apiErr):
			logging.Error("openrouter api error",
				"status_code", apiErr.HTTPStatusCode,
				"detail", apiErr.Message)
		default:
			logging.Error("openrouter request failed", "error", err)
		}
		return "", fmt.Errorf("failed to rewrite content: %v", err)
	}

	if len(resp.Choices) == 0 {
		logging.Error("openrouter response contained no choices", "model", c.model)
		return "", fmt.Errorf("malformed openrouter response: no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the model used for completion requests.
func (c *Client) Model() string {
	return c.model
}

// SetModel changes the model used for subsequent requests.
func (c *Client) SetModel(model string) {
	c.model = model
}

// IsAvailable reports whether the client holds an API key. It performs
// no network I/O.
func (c *Client) IsAvailable() bool {
	return c.apiKey != ""
}
