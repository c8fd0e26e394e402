package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API used by the browser client.

The listen address defaults to server.addr from the settings (":8080").
Locally stored uploads are served under /files/.`,
	RunE: runServe,
}

// serveAddr is a flag for the serve command.
var serveAddr string

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		addr = settings.Server.Addr
	}

	server := web.NewServer(addr, web.Services{
		Chat:      chatService,
		Documents: documentService,
		Uploads:   uploadService,
	})

	cmd.Printf("DocChat API listening on %s\n", addr)
	return server.Run(cmd.Context())
}
