// Package doccontent provides the extracted-text view for the TUI.
package doccontent

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/messages"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/styles"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
)

// View shows a document's extracted text with scrolling.
type View struct {
	ctx             context.Context
	styles          *styles.Styles
	documentService driving.DocumentService

	documentID   string
	text         string
	lines        []string
	scrollOffset int
	width        int
	height       int
	err          error
	loading      bool
}

// NewView creates a new document text view.
func NewView(s *styles.Styles, documentService driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:             context.Background(),
		styles:          s,
		documentService: documentService,
		width:           80,
		height:          24,
	}
}

// WithContext sets the context used for loading text.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetDocument sets the document and returns a command that loads its text.
// Loading the same document again is a no-op once its text is present.
func (v *View) SetDocument(documentID string) tea.Cmd {
	if documentID == v.documentID && v.text != "" && v.err == nil {
		return nil
	}
	v.documentID = documentID
	v.text = ""
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.loading = true
	return v.loadText()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) loadText() tea.Cmd {
	ctx := v.ctx
	id := v.documentID
	svc := v.documentService
	return func() tea.Msg {
		if id == "" || svc == nil {
			return messages.DocumentTextLoaded{DocumentID: id, Err: domain.ErrNoDocument}
		}
		text, err := svc.GetText(ctx, id)
		return messages.DocumentTextLoaded{DocumentID: id, Text: text, Err: err}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentTextLoaded:
		if msg.DocumentID != v.documentID {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.text = msg.Text
			v.wrapText()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset = max(v.scrollOffset-v.visibleLines(), 0)
	case "pgdown", "ctrl+d":
		v.scrollOffset = min(v.scrollOffset+v.visibleLines(), v.maxScrollOffset())
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "esc", "ctrl+o":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewChat}
		}
	}

	return v, nil
}

// wrapText splits the text into display lines no wider than the view.
// Wrapping counts runes so multi-byte characters are never split.
func (v *View) wrapText() {
	if v.text == "" {
		v.lines = nil
		return
	}

	contentWidth := max(v.width-4, 20)

	rawLines := strings.Split(v.text, "\n")
	v.lines = make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		runes := []rune(line)
		for len(runes) > contentWidth {
			v.lines = append(v.lines, string(runes[:contentWidth]))
			runes = runes[contentWidth:]
		}
		v.lines = append(v.lines, string(runes))
	}
	v.scrollOffset = min(v.scrollOffset, v.maxScrollOffset())
}

// visibleLines reserves rows for the title, separator, position and help.
func (v *View) visibleLines() int {
	return max(v.height-6, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// View renders the document text.
func (v *View) View() string {
	var b strings.Builder

	title := "Document"
	if v.documentID != "" {
		title = v.documentID
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Extracting text..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(domain.UserMessage(v.err)))
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(No text)"))
	default:
		v.renderLines(&b)
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back to chat"))
	return b.String()
}

func (v *View) renderLines(b *strings.Builder) {
	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(v.lines))
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.styles.Normal.Render(v.lines[i]))
		b.WriteString("\n")
	}

	if len(v.lines) > visible {
		percentage := 0
		if m := v.maxScrollOffset(); m > 0 {
			percentage = v.scrollOffset * 100 / m
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage, v.scrollOffset+1, end, len(v.lines))))
	}
}

// SetDimensions sets the view dimensions and rewraps the text.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.wrapText()
}

// DocumentID returns the open document id.
func (v *View) DocumentID() string {
	return v.documentID
}

// Text returns the loaded text.
func (v *View) Text() string {
	return v.text
}

// Lines returns the wrapped display lines.
func (v *View) Lines() []string {
	return v.lines
}

// ScrollOffset returns the first visible line index.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Loading reports whether text is being extracted.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
