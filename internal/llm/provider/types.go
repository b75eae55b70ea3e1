package provider

import (
	"context"
	"net/http"

	"github.com/openai/openai-go/v2"
)

const DefaultModel = "gpt-4o"

// Provider defines the minimal interface for LLM completion.
type Provider interface {
	Complete(ctx context.Context, req ProviderResponseFormat) (string, error)
	Validate() error
}

// OpenAIProvider implements Provider using the official openai-go client.
type OpenAIProvider struct {
	apiKey     string
	baseURL    string
	model      string
	maxRetries int
	httpClient *http.Client

	Client openai.Client
}

type OpenAIProviderOption func(*OpenAIProvider)

func WithAPIKey(apiKey string) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.apiKey = apiKey
	}
}

func WithModel(model string) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.baseURL = url
	}
}

// WithMaxRetries sets how many times the SDK retries a failed request.
// The default is 0.
func WithMaxRetries(n int) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		if n >= 0 {
			p.maxRetries = n
		}
	}
}

func WithHTTPClient(c *http.Client) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.httpClient = c
	}
}

// ProviderResponseFormat is one completion request: a system and a user
// message, plus an optional JSON schema the reply must follow. An empty
// Schema requests free text.
type ProviderResponseFormat struct {
	Name         string
	Description  string
	Schema       string
	SystemPrompt string
	UserPrompt   string
}
