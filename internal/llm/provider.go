// Package llm constructs the chat model client from configuration.
// Two providers are supported: the OpenAI API and GitHub Models, which
// exposes the same wire protocol under a different endpoint.
package llm

import (
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"maitred/internal/config"
)

const githubModelsBaseURL = "https://models.inference.ai.azure.com"

// New builds the model client for the configured provider
func New(cfg *config.Config) (llms.Model, error) {
	switch cfg.LLM.Provider {
	case "", "openai":
		return newOpenAI(cfg)
	case "github":
		return newGitHubModels(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

func newOpenAI(cfg *config.Config) (llms.Model, error) {
	opts := []openai.Option{
		openai.WithModel(cfg.LLM.Model),
		openai.WithToken(cfg.LLM.APIKey),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.LLM.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return client, nil
}

// newGitHubModels targets the GitHub Models endpoint, which speaks the
// OpenAI protocol and authenticates with a GitHub token.
func newGitHubModels(cfg *config.Config) (llms.Model, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is required for GitHub Models")
	}

	baseURL := cfg.LLM.BaseURL
	if baseURL == "" {
		baseURL = githubModelsBaseURL
	}

	client, err := openai.New(
		openai.WithModel(cfg.LLM.Model),
		openai.WithToken(token),
		openai.WithBaseURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub Models client: %w", err)
	}
	return client, nil
}
