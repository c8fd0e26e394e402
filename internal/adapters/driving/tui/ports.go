// Package tui provides an interactive terminal chat for DocChat.
// It is a driving adapter: every turn goes through the core chat service.
package tui

import (
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Chat answers questions and writes summaries.
	Chat driving.ChatService

	// Document exposes extracted document text for the document view.
	Document driving.DocumentService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(chat driving.ChatService, document driving.DocumentService) *Ports {
	return &Ports{
		Chat:     chat,
		Document: document,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
