package mcp

import (
	"context"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	reply *domain.Reply
	err   error

	documentID *string
	prior      []domain.Message
	question   string
}

func (m *mockChatService) HandleTurn(
	_ context.Context,
	documentID *string,
	prior []domain.Message,
	newUserText string,
) (*domain.Reply, error) {
	m.documentID = documentID
	m.prior = prior
	m.question = newUserText
	return m.reply, m.err
}

func (m *mockChatService) Summarize(_ context.Context, documentID *string) (*domain.Reply, error) {
	m.documentID = documentID
	if documentID == nil || *documentID == "" {
		return nil, domain.ErrNoDocument
	}
	return m.reply, m.err
}

func (m *mockChatService) Complete(_ context.Context, _ []domain.Message) (*domain.Reply, error) {
	return m.reply, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	text string
	err  error
	id   string
}

func (m *mockDocumentService) GetText(_ context.Context, documentID string) (string, error) {
	m.id = documentID
	return m.text, m.err
}

func newTestServer(chat *mockChatService, docs *mockDocumentService) *Server {
	server, err := NewServer(&Ports{Chat: chat, Document: docs})
	if err != nil {
		panic(err)
	}
	return server
}
