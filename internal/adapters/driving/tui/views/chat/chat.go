// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/components/input"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/components/status"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/keymap"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/messages"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/styles"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
)

type entryKind int

const (
	entryUser entryKind = iota
	entryAssistant
	entryError
)

// entry is one rendered line group of the transcript.
type entry struct {
	kind entryKind
	text string
}

// View is the conversation view: transcript, question input and status bar.
type View struct {
	ctx         context.Context
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	chatService driving.ChatService

	documentID *string
	history    []domain.Message
	transcript []entry

	input *input.ChatInput
	bar   *status.Bar

	pending bool
	width   int
	height  int
}

// NewView creates a chat view. documentID may be nil for an ungrounded chat.
func NewView(s *styles.Styles, chatService driving.ChatService, documentID *string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	if documentID != nil {
		bar.SetDocument(*documentID)
	}

	return &View{
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		chatService: chatService,
		documentID:  documentID,
		input:       input.NewChatInput(s),
		bar:         bar,
		width:       80,
		height:      24,
	}
}

// WithContext sets the context used for model calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if cmd, handled := v.handleKeyMsg(msg); handled {
			return v, cmd
		}

	case messages.ReplyReceived:
		v.handleReply(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.pending = false
		v.fail(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg reports whether the key was consumed by the view itself.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Send):
		return v.send(), true

	case keymap.Matches(k, v.keymap.Summarize):
		return v.summarize(), true

	case keymap.Matches(k, v.keymap.Document):
		if !v.HasDocument() {
			return nil, true
		}
		return func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocument}
		}, true

	case keymap.Matches(k, v.keymap.Clear):
		if v.pending {
			return nil, true
		}
		v.history = nil
		v.transcript = nil
		v.bar.Clear()
		return nil, true
	}
	return nil, false
}

// send starts a turn for the typed question. Empty input and a turn already
// in flight are ignored.
func (v *View) send() tea.Cmd {
	question := strings.TrimSpace(v.input.Value())
	if question == "" || v.pending {
		return nil
	}
	v.input.Reset()
	v.transcript = append(v.transcript, entry{kind: entryUser, text: question})
	v.startPending()

	ctx := v.ctx
	svc := v.chatService
	documentID := v.documentID
	prior := append([]domain.Message(nil), v.history...)
	return func() tea.Msg {
		reply, err := svc.HandleTurn(ctx, documentID, prior, question)
		return messages.ReplyReceived{Question: question, Reply: reply, Err: err}
	}
}

func (v *View) summarize() tea.Cmd {
	if v.pending || !v.HasDocument() {
		return nil
	}
	v.startPending()

	ctx := v.ctx
	svc := v.chatService
	documentID := v.documentID
	return func() tea.Msg {
		reply, err := svc.Summarize(ctx, documentID)
		return messages.ReplyReceived{Reply: reply, Err: err}
	}
}

func (v *View) startPending() {
	v.pending = true
	v.bar.SetState(status.StateThinking)
	v.bar.SetMessage("")
}

// handleReply records a finished turn. Only successful question turns join
// the history sent with later questions; summaries and failures are shown
// but not replayed.
func (v *View) handleReply(msg messages.ReplyReceived) {
	v.pending = false
	if msg.Err != nil {
		v.fail(msg.Err)
		return
	}

	text := ""
	if msg.Reply != nil {
		text = msg.Reply.Text
	}
	v.transcript = append(v.transcript, entry{kind: entryAssistant, text: text})
	if msg.Question != "" {
		v.history = append(v.history,
			domain.Message{Role: domain.RoleUser, Content: msg.Question},
			domain.Message{Role: domain.RoleAssistant, Content: text},
		)
	}
	v.bar.SetState(status.StateReady)
	v.bar.SetTurns(len(v.history) / 2)
}

func (v *View) fail(err error) {
	message := domain.UserMessage(err)
	v.transcript = append(v.transcript, entry{kind: entryError, text: message})
	v.bar.SetState(status.StateError)
	v.bar.SetMessage(message)
}

// View renders the chat view.
func (v *View) View() string {
	var b strings.Builder

	title := "DocChat"
	if v.HasDocument() {
		title += " · " + *v.documentID
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	lines := v.transcriptLines()
	visible := v.transcriptHeight()
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	for i := len(lines); i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(v.bar.View())
	return b.String()
}

// transcriptHeight reserves rows for the title, the bordered input and the
// status bar.
func (v *View) transcriptHeight() int {
	return max(v.height-7, 1)
}

func (v *View) transcriptLines() []string {
	if len(v.transcript) == 0 {
		hint := "Type a question and press enter."
		if v.HasDocument() {
			hint = "Ask anything about the document, or press ctrl+s for a summary."
		}
		return []string{v.styles.Muted.Render(hint)}
	}

	width := max(v.width-2, 20)
	var lines []string
	for _, e := range v.transcript {
		var rendered string
		switch e.kind {
		case entryUser:
			label, style := v.styles.Speaker(domain.RoleUser)
			rendered = style.Render(label) + e.text
		case entryAssistant:
			label, style := v.styles.Speaker(domain.RoleAssistant)
			rendered = style.Render(label) + e.text
		case entryError:
			rendered = v.styles.Error.Render(e.text)
		}
		wrapped := v.styles.Normal.Width(width).Render(rendered)
		lines = append(lines, strings.Split(wrapped, "\n")...)
		lines = append(lines, "")
	}
	if v.pending {
		lines = append(lines, v.styles.Muted.Render("Assistant is thinking..."))
	}
	return lines
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.bar.SetWidth(width)
}

// HasDocument reports whether the chat is grounded in a document.
func (v *View) HasDocument() bool {
	return v.documentID != nil && *v.documentID != ""
}

// History returns the messages replayed with the next question.
func (v *View) History() []domain.Message {
	return v.history
}

// Pending reports whether a turn is in flight.
func (v *View) Pending() bool {
	return v.pending
}

// Input returns the question input.
func (v *View) Input() *input.ChatInput {
	return v.input
}

// Bar returns the status bar.
func (v *View) Bar() *status.Bar {
	return v.bar
}
