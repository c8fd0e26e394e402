// Package ai provides factory functions for creating model backend adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	anthropicllm "github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/llm/anthropic"
	ollamallm "github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/llm/ollama"
	openaillm "github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/llm/openai"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateModelBackend creates the model backend selected by settings.
// Returns nil if the provider is not configured. A positive
// RequestsPerSecond wraps the backend in a rate limiter.
func CreateModelBackend(settings *domain.LLMSettings) (driven.ModelBackend, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	var (
		backend driven.ModelBackend
		err     error
	)
	switch settings.Provider {
	case domain.AIProviderOllama:
		backend = createOllamaLLM(settings)

	case domain.AIProviderOpenAI:
		backend, err = createOpenAILLM(settings)

	case domain.AIProviderAnthropic:
		backend, err = createAnthropicLLM(settings)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
	if err != nil {
		return nil, err
	}

	if settings.RequestsPerSecond > 0 {
		backend = NewRateLimitedBackend(backend, settings.RequestsPerSecond)
	}
	return backend, nil
}

// CreateAndValidateModelBackend creates a model backend and validates connectivity.
// Returns the backend if successful, or an error with guidance.
func CreateAndValidateModelBackend(settings *domain.LLMSettings) (driven.ModelBackend, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, domain.ErrLLMUnavailable
	}

	backend, err := CreateModelBackend(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'docchat settings set llm.provider <name>' to fix",
			domain.ErrLLMUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := backend.Ping(ctx); err != nil {
		backend.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)", domain.ErrLLMUnavailable, err)
	}

	return backend, nil
}

// createOllamaLLM creates an Ollama backend.
func createOllamaLLM(settings *domain.LLMSettings) driven.ModelBackend {
	return ollamallm.NewLLMService(ollamallm.LLMConfig{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

// createOpenAILLM creates an OpenAI backend.
func createOpenAILLM(settings *domain.LLMSettings) (driven.ModelBackend, error) {
	return openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

// createAnthropicLLM creates an Anthropic backend.
func createAnthropicLLM(settings *domain.LLMSettings) (driven.ModelBackend, error) {
	return anthropicllm.NewLLMService(anthropicllm.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}
