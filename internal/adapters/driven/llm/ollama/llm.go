// Package ollama provides a streaming chat backend using Ollama.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/llm/apierror"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.ModelBackend = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL       = "http://localhost:11434"
	DefaultLLMModel      = "llama2"
	DefaultHeaderTimeout = 60 * time.Second
)

// LLMConfig holds configuration for the Ollama LLM service.
type LLMConfig struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the LLM model to use (default: llama2).
	Model string

	// HeaderTimeout bounds the wait for the response headers (default: 60s).
	// The streamed body itself is bounded by the request context.
	HeaderTimeout time.Duration
}

// LLMService streams chat replies from Ollama's /api/chat endpoint.
type LLMService struct {
	client  *http.Client
	baseURL string
	model   string
}

// chatRequest is the Ollama /api/chat request format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatMessage is the Ollama chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatFrame is one line of the streamed /api/chat response.
type chatFrame struct {
	Message *chatMessage `json:"message"`
	Done    bool         `json:"done"`
	Error   string       `json:"error"`
}

// NewLLMService creates a new Ollama LLM service.
func NewLLMService(cfg LLMConfig) *LLMService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.HeaderTimeout == 0 {
		cfg.HeaderTimeout = DefaultHeaderTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.HeaderTimeout

	return &LLMService{
		client:  &http.Client{Transport: transport},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// StreamChat posts the conversation with streaming enabled and returns the
// newline-delimited JSON body.
func (s *LLMService) StreamChat(ctx context.Context, messages []domain.Message) (io.ReadCloser, error) {
	chatMessages := make([]chatMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = chatMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		}
	}

	jsonBody, err := json.Marshal(chatRequest{
		Model:    s.model,
		Messages: chatMessages,
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	if err := apierror.Check("ollama", resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp.Body, nil
}

// ParseFrame returns message.content from one NDJSON line.
// The final "done" record carries no message and yields "".
func (s *LLMService) ParseFrame(line []byte) (string, error) {
	var frame chatFrame
	if err := json.Unmarshal(line, &frame); err != nil {
		return "", fmt.Errorf("decode frame: %w", err)
	}
	if frame.Error != "" {
		return "", fmt.Errorf("ollama: %s", frame.Error)
	}
	if frame.Message == nil {
		return "", nil
	}
	return frame.Message.Content, nil
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /api/tags endpoint.
// This is a lightweight check that validates connectivity without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	return apierror.Check("ollama", resp)
}

// Close releases resources.
func (s *LLMService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
