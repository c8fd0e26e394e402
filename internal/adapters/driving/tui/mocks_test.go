package tui

import (
	"context"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// MockChatService implements driving.ChatService for testing.
type MockChatService struct {
	reply    *domain.Reply
	err      error
	question string
}

func (m *MockChatService) HandleTurn(
	_ context.Context,
	_ *string,
	_ []domain.Message,
	newUserText string,
) (*domain.Reply, error) {
	m.question = newUserText
	return m.reply, m.err
}

func (m *MockChatService) Summarize(context.Context, *string) (*domain.Reply, error) {
	return m.reply, m.err
}

func (m *MockChatService) Complete(context.Context, []domain.Message) (*domain.Reply, error) {
	return m.reply, m.err
}

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	text string
	err  error
}

func (m *MockDocumentService) GetText(context.Context, string) (string, error) {
	return m.text, m.err
}

func newTestPorts() *Ports {
	return &Ports{
		Chat:     &MockChatService{reply: &domain.Reply{Text: "reply"}},
		Document: &MockDocumentService{text: "document text"},
	}
}

func strPtr(s string) *string { return &s }
