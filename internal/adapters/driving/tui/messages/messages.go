// Package messages defines the tea.Msg types exchanged between TUI views.
package messages

import "github.com/topgunprogrammer/DocChat-AI/internal/core/domain"

// ViewType identifies which view is active.
type ViewType int

const (
	// ViewChat is the conversation view.
	ViewChat ViewType = iota

	// ViewDocument shows the open document's extracted text.
	ViewDocument
)

// String returns the view name.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewDocument:
		return "document"
	default:
		return "unknown"
	}
}

// ViewChanged requests a switch to another view.
type ViewChanged struct {
	View ViewType
}

// ReplyReceived carries the outcome of one chat turn or summary request.
// Question is empty for summaries.
type ReplyReceived struct {
	Question string
	Reply    *domain.Reply
	Err      error
}

// DocumentTextLoaded carries the extracted text of the open document.
type DocumentTextLoaded struct {
	DocumentID string
	Text       string
	Err        error
}

// ErrorOccurred reports an error to the active view.
type ErrorOccurred struct {
	Err error
}

// Quit requests application exit.
type Quit struct{}
