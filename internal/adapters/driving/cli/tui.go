package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/tui"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Chat with a document in an interactive terminal UI",
	Long: `Launch a full-screen chat. With --document the conversation is grounded
in that document's text.

Controls:
  Enter    - Send the question
  Ctrl+S   - Summarize the document
  Ctrl+O   - Show the extracted text (↑/k, ↓/j to scroll, Esc to return)
  Ctrl+L   - Clear the conversation
  Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiDocument string

func init() {
	tuiCmd.Flags().StringVarP(&tuiDocument, "document", "d", "", "document id to ground the chat in")
	rootCmd.AddCommand(tuiCmd)
}

// newTUIApp builds the TUI from the shared services without starting it.
func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	if err := ensureServices(); err != nil {
		return nil, err
	}

	var documentID *string
	if tuiDocument != "" {
		documentID = &tuiDocument
	}

	app, err := tui.NewApp(tui.NewPorts(chatService, documentService), documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.WithContext(cmd.Context()), nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in TUI: %v\n%s", r, debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
