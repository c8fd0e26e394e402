package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/messages"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/styles"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/views/chat"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui/views/doccontent"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	// documentID is the document the conversation is grounded in, if any.
	documentID *string

	chatView       *chat.View
	docContentView *doccontent.View

	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application. documentID may be nil for an
// ungrounded chat.
func NewApp(ports *Ports, documentID *string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		documentID:     documentID,
		chatView:       chat.NewView(s, ports.Chat, documentID),
		docContentView: doccontent.NewView(s, ports.Document),
		currentView:    messages.ViewChat,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	a.docContentView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("docchat"),
		a.chatView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewDocument && a.documentID != nil {
			return a, a.docContentView.SetDocument(*a.documentID)
		}
		return a, nil

	case messages.ReplyReceived:
		// Replies always belong to the chat, even if the user is reading
		// the document when they arrive.
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.DocumentTextLoaded:
		a.docContentView, cmd = a.docContentView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewDocument:
		a.docContentView, cmd = a.docContentView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewDocument {
		return a.docContentView.View()
	}
	return a.chatView.View()
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// ChatView returns the conversation view.
func (a *App) ChatView() *chat.View {
	return a.chatView
}

// DocContentView returns the document text view.
func (a *App) DocContentView() *doccontent.View {
	return a.docContentView
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.chatView.SetDimensions(width, height)
	a.docContentView.SetDimensions(width, height)
}
