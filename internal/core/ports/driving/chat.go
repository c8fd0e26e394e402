package driving

import (
	"context"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// ChatService answers user turns grounded in an uploaded document.
type ChatService interface {
	// HandleTurn answers newUserText. When documentID is non-nil the
	// document's text is injected as grounding context.
	HandleTurn(ctx context.Context, documentID *string, prior []domain.Message, newUserText string) (*domain.Reply, error)

	// Summarize asks the model for a concise summary of the document.
	// Fails with domain.ErrNoDocument when documentID is nil or empty.
	Summarize(ctx context.Context, documentID *string) (*domain.Reply, error)

	// Complete streams an already assembled conversation to the model.
	Complete(ctx context.Context, messages []domain.Message) (*domain.Reply, error)
}
