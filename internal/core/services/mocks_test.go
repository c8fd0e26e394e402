package services

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// mockModelBackend is a mock implementation of driven.ModelBackend.
// It replays body as an NDJSON stream.
type mockModelBackend struct {
	mu       sync.Mutex
	body     string
	reader   io.ReadCloser
	err      error
	received [][]domain.Message
	closed   bool
}

func (m *mockModelBackend) ParseFrame(line []byte) (string, error) {
	return ndjsonParser.ParseFrame(line)
}

func (m *mockModelBackend) StreamChat(_ context.Context, messages []domain.Message) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.received = append(m.received, messages)
	if m.err != nil {
		return nil, m.err
	}
	if m.reader != nil {
		return m.reader, nil
	}
	return io.NopCloser(strings.NewReader(m.body)), nil
}

func (m *mockModelBackend) ModelName() string { return "mock-model" }

func (m *mockModelBackend) Ping(_ context.Context) error { return nil }

func (m *mockModelBackend) Close() error {
	m.closed = true
	return nil
}

func (m *mockModelBackend) lastMessages() []domain.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.received) == 0 {
		return nil
	}
	return m.received[len(m.received)-1]
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	texts map[string]string
	err   error
	calls int
}

func (m *mockDocumentService) GetText(_ context.Context, id string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	text, ok := m.texts[id]
	if !ok {
		return "", domain.ErrDocumentNotFound
	}
	return text, nil
}

// ndjsonStream renders reply fragments as Ollama-style frames.
func ndjsonStream(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		line, _ := json.Marshal(map[string]any{"message": map[string]string{"role": "assistant", "content": p}})
		b.Write(line)
		b.WriteByte('\n')
	}
	b.WriteString(`{"done":true}` + "\n")
	return b.String()
}
