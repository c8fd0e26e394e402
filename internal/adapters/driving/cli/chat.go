package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a document",
	Long: `Sends a question to the configured language model. With --document the
document's text is given to the model as context.

With --interactive the question argument is optional and further questions
are read from stdin, one per line, keeping the conversation so far. An empty
line or end of input ends the session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [doc-id]",
	Short: "Summarize a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

var (
	askDocument    string
	askInteractive bool
)

func init() {
	askCmd.Flags().StringVarP(&askDocument, "document", "d", "", "document id to ground the answer in")
	askCmd.Flags().BoolVarP(&askInteractive, "interactive", "i", false, "keep asking questions read from stdin")
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(summarizeCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !askInteractive {
		return cmd.Help()
	}
	if err := ensureServices(); err != nil {
		return err
	}

	var documentID *string
	if askDocument != "" {
		documentID = &askDocument
	}

	var history []domain.Message
	ask := func(question string) error {
		reply, err := chatService.HandleTurn(cmd.Context(), documentID, history, question)
		if err != nil {
			return userError(err)
		}
		cmd.Println(reply.Text)
		history = append(history,
			domain.Message{Role: domain.RoleUser, Content: question},
			domain.Message{Role: domain.RoleAssistant, Content: reply.Text},
		)
		return nil
	}

	if len(args) == 1 {
		if err := ask(args[0]); err != nil {
			return err
		}
	}
	if !askInteractive {
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			return nil
		}
		if err := ask(question); err != nil {
			// Keep the session going after a failed turn.
			cmd.PrintErrln("Error:", err)
		}
	}
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	reply, err := chatService.Summarize(cmd.Context(), &args[0])
	if err != nil {
		return userError(err)
	}

	cmd.Println(reply.Text)
	return nil
}
