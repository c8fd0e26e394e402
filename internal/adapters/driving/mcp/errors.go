// Package mcp provides an MCP (Model Context Protocol) server adapter for DocChat.
// It lets AI assistants read uploaded documents and ask questions about them.
package mcp

import (
	"errors"
	"fmt"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

var (
	// ErrMissingChatService is returned when the chat service is not provided.
	ErrMissingChatService = errors.New("mcp: chat service is required")

	// ErrMissingDocumentService is returned when the document service is not provided.
	ErrMissingDocumentService = errors.New("mcp: document service is required")
)

// toolError keeps the cause for errors.Is while leading with the message a
// user should see.
func toolError(err error) error {
	return fmt.Errorf("%s (%w)", domain.UserMessage(err), err)
}
