// Package anthropic provides a streaming chat backend using the Anthropic API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/llm/apierror"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/llm/sse"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.ModelBackend = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL       = "https://api.anthropic.com"
	DefaultModel         = "claude-3-5-sonnet-latest"
	DefaultMaxTokens     = 1024
	DefaultHeaderTimeout = 60 * time.Second

	// AnthropicVersion is the required API version header.
	anthropicVersion = "2023-06-01"
)

// Streamed event types.
const (
	eventContentBlockDelta = "content_block_delta"
	eventError             = "error"
)

// Config holds configuration for the Anthropic LLM service.
type Config struct {
	// APIKey is the Anthropic API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.anthropic.com).
	BaseURL string

	// Model is the LLM model to use (default: claude-3-5-sonnet-latest).
	Model string

	// MaxTokens caps the reply length (default: 1024).
	MaxTokens int

	// HeaderTimeout bounds the wait for the response headers (default: 60s).
	HeaderTimeout time.Duration
}

// LLMService streams chat replies from the Anthropic messages API.
type LLMService struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
}

// messagesRequest is the Anthropic /v1/messages request format.
type messagesRequest struct {
	Model     string            `json:"model"`
	Messages  []messagesMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens"`
	System    string            `json:"system,omitempty"`
	Stream    bool              `json:"stream"`
}

// messagesMessage is the Anthropic message format.
type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// streamEvent is the data payload of one streamed event.
type streamEvent struct {
	Type  string `json:"type"`
	Delta *struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta,omitempty"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewLLMService creates a new Anthropic LLM service.
func NewLLMService(cfg Config) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.HeaderTimeout == 0 {
		cfg.HeaderTimeout = DefaultHeaderTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.HeaderTimeout

	return &LLMService{
		client:    &http.Client{Transport: transport},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// StreamChat requests a streamed message and returns the event-stream body.
func (s *LLMService) StreamChat(ctx context.Context, messages []domain.Message) (io.ReadCloser, error) {
	jsonBody, err := json.Marshal(s.buildRequest(messages))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/v1/messages",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	if err := apierror.Check("anthropic", resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp.Body, nil
}

// buildRequest moves system messages into the top-level system prompt.
// The API needs at least one conversational message, so a conversation made
// only of system messages is sent as a single user message instead.
func (s *LLMService) buildRequest(messages []domain.Message) messagesRequest {
	var (
		system  []string
		apiMsgs []messagesMessage
	)
	for _, msg := range messages {
		if msg.Role == domain.RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		apiMsgs = append(apiMsgs, messagesMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}

	req := messagesRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Stream:    true,
	}
	if len(apiMsgs) == 0 {
		req.Messages = []messagesMessage{{Role: domain.RoleUser.String(), Content: strings.Join(system, "\n\n")}}
		return req
	}
	req.System = strings.Join(system, "\n\n")
	req.Messages = apiMsgs
	return req
}

// ParseFrame returns the text of a content_block_delta event.
// Event name lines, pings and lifecycle events yield "".
func (s *LLMService) ParseFrame(line []byte) (string, error) {
	payload, ok := sse.Data(line)
	if !ok {
		return "", nil
	}

	var event streamEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return "", fmt.Errorf("decode frame: %w", err)
	}

	switch event.Type {
	case eventContentBlockDelta:
		if event.Delta == nil {
			return "", nil
		}
		return event.Delta.Text, nil
	case eventError:
		if event.Error != nil {
			return "", fmt.Errorf("anthropic error: %s", event.Error.Message)
		}
		return "", errors.New("anthropic error")
	default:
		return "", nil
	}
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /v1/models endpoint.
// This is a lightweight check that validates the API key without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("anthropic: failed to create ping request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("anthropic: ping failed: %w", err)
	}
	defer resp.Body.Close()

	return apierror.Check("anthropic", resp)
}

// Close releases resources.
func (s *LLMService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
