package services

import "github.com/topgunprogrammer/DocChat-AI/internal/core/domain"

// Prompt templates. The document text is appended after the blank line.
const (
	groundingPrompt = "You have access to the following document. Use it to answer questions:\n\n"
	summaryPrompt   = "You have access to the following document. Summarize it concisely:\n\n"
)

// BuildContext assembles the messages sent to the model for one turn.
//
// The result is [system?, prior..., user]. The system message is present only
// when documentText is non-nil and carries the whole document. Prior messages
// keep their order; any sender other than the user is replayed as the
// assistant. Nothing is deduplicated or truncated.
func BuildContext(documentText *string, prior []domain.Message, newUserText string) []domain.Message {
	size := len(prior) + 1
	if documentText != nil {
		size++
	}

	messages := make([]domain.Message, 0, size)
	if documentText != nil {
		messages = append(messages, domain.Message{
			Role:    domain.RoleSystem,
			Content: groundingPrompt + *documentText,
		})
	}

	for _, m := range prior {
		role := domain.RoleAssistant
		if m.Role == domain.RoleUser {
			role = domain.RoleUser
		}
		messages = append(messages, domain.Message{Role: role, Content: m.Content})
	}

	return append(messages, domain.Message{Role: domain.RoleUser, Content: newUserText})
}

// buildSummaryContext returns the single system message asking for a summary.
func buildSummaryContext(documentText string) []domain.Message {
	return []domain.Message{{
		Role:    domain.RoleSystem,
		Content: summaryPrompt + documentText,
	}}
}
