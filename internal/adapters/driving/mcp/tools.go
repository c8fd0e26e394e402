package mcp

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// MessageInput is one earlier message of the conversation.
type MessageInput struct {
	Role    string `json:"role" jsonschema:"who wrote the message: user or assistant"`
	Content string `json:"content" jsonschema:"the message text"`
}

// AskInput is the input schema for the ask_document tool.
type AskInput struct {
	DocumentID string         `json:"document_id" jsonschema:"the key returned when the document was uploaded"`
	Question   string         `json:"question" jsonschema:"the question to answer from the document"`
	History    []MessageInput `json:"history,omitempty" jsonschema:"earlier messages of the conversation, oldest first"`
}

// AskOutput is the output schema for the ask_document tool.
type AskOutput struct {
	Reply string `json:"reply"`
}

// DocumentInput names a single document.
type DocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the key returned when the document was uploaded"`
}

// SummaryOutput is the output schema for the summarize_document tool.
type SummaryOutput struct {
	Summary string `json:"summary"`
}

// TextOutput is the output schema for the extract_text tool.
type TextOutput struct {
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Answer a question using the content of an uploaded document",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize_document",
		Description: "Summarize an uploaded document concisely",
	}, s.handleSummarize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_text",
		Description: "Return the plain text extracted from an uploaded document",
	}, s.handleExtractText)
}

// handleAsk handles the ask_document tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if input.DocumentID == "" || input.Question == "" {
		return nil, AskOutput{}, toolError(fmt.Errorf("%w: document_id and question are required", domain.ErrInvalidInput))
	}

	prior := make([]domain.Message, len(input.History))
	for i, m := range input.History {
		prior[i] = domain.Message{Role: domain.Role(m.Role), Content: m.Content}
	}

	reply, err := s.ports.Chat.HandleTurn(ctx, &input.DocumentID, prior, input.Question)
	if err != nil {
		return nil, AskOutput{}, toolError(err)
	}

	return nil, AskOutput{Reply: reply.Text}, nil
}

// handleSummarize handles the summarize_document tool invocation.
func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	reply, err := s.ports.Chat.Summarize(ctx, &input.DocumentID)
	if err != nil {
		return nil, SummaryOutput{}, toolError(err)
	}

	return nil, SummaryOutput{Summary: reply.Text}, nil
}

// handleExtractText handles the extract_text tool invocation.
func (s *Server) handleExtractText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, TextOutput, error) {
	if input.DocumentID == "" {
		return nil, TextOutput{}, toolError(domain.ErrNoDocument)
	}

	text, err := s.ports.Document.GetText(ctx, input.DocumentID)
	if err != nil {
		return nil, TextOutput{}, toolError(err)
	}

	return nil, TextOutput{Text: text, Characters: utf8.RuneCountInString(text)}, nil
}
