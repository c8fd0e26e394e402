package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService runs conversation turns against a model backend.
// Turns are independent; the service keeps no conversation state.
type ChatService struct {
	documents driving.DocumentService
	backend   driven.ModelBackend
	timeout   time.Duration
}

// NewChatService creates a new chat service.
// backend may be nil, in which case every turn fails with domain.ErrLLMUnavailable.
// A zero timeout lets a streamed reply run until the caller's context ends.
func NewChatService(
	documents driving.DocumentService,
	backend driven.ModelBackend,
	timeout time.Duration,
) *ChatService {
	return &ChatService{
		documents: documents,
		backend:   backend,
		timeout:   timeout,
	}
}

// HandleTurn answers one user message, grounded in the document when given.
func (s *ChatService) HandleTurn(
	ctx context.Context,
	documentID *string,
	prior []domain.Message,
	newUserText string,
) (*domain.Reply, error) {
	logger.Section("Turn")

	var documentText *string
	if documentID != nil && *documentID != "" {
		text, err := s.documents.GetText(ctx, *documentID)
		if err != nil {
			return nil, err
		}
		documentText = &text
	}

	return s.stream(ctx, BuildContext(documentText, prior, newUserText))
}

// Summarize asks the model for a concise summary of the document.
func (s *ChatService) Summarize(ctx context.Context, documentID *string) (*domain.Reply, error) {
	logger.Section("Summarize")

	if documentID == nil || *documentID == "" {
		return nil, domain.ErrNoDocument
	}

	text, err := s.documents.GetText(ctx, *documentID)
	if err != nil {
		return nil, err
	}

	return s.stream(ctx, buildSummaryContext(text))
}

// Complete sends an already assembled conversation to the model.
func (s *ChatService) Complete(ctx context.Context, messages []domain.Message) (*domain.Reply, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: no messages", domain.ErrInvalidInput)
	}
	for i, m := range messages {
		if !m.Role.IsValid() {
			return nil, fmt.Errorf("%w: message %d has role %q", domain.ErrInvalidInput, i, m.Role)
		}
	}
	return s.stream(ctx, messages)
}

// stream dispatches messages to the backend and aggregates the reply.
func (s *ChatService) stream(ctx context.Context, messages []domain.Message) (*domain.Reply, error) {
	if s.backend == nil {
		return nil, domain.ErrLLMUnavailable
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger.Debug("sending %d messages to %s", len(messages), s.backend.ModelName())
	body, err := s.backend.StreamChat(ctx, messages)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamStream) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: open stream: %w", domain.ErrUpstreamStream, err)
	}
	defer body.Close()

	text, err := Aggregate(ctx, body, s.backend)
	if err != nil {
		return nil, err
	}

	return &domain.Reply{Text: text}, nil
}
