package mcp

import (
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
)

// Ports are the core services behind the MCP tools and resources.
type Ports struct {
	// Chat answers questions and writes summaries.
	Chat driving.ChatService

	// Document exposes extracted document text.
	Document driving.DocumentService
}

// Validate reports the first missing service.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
