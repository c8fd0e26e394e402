package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Tools:
  ask_document        Answer a question from a document
  summarize_document  Summarize a document
  extract_text        Return a document's plain text

Resources:
  docchat://documents/{documentId}
  docchat://formats

Use --port or --addr to serve the streamable HTTP transport instead, for
MCP Inspector or remote clients.

Examples:
  # Stdio mode (default, for desktop assistants)
  docchat mcp serve

  # HTTP mode on all interfaces
  docchat mcp serve --port 8081

  # HTTP mode on a specific interface
  docchat mcp serve --addr 127.0.0.1:8081

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "docchat": {
        "command": "/path/to/docchat",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

// mcpAddr is the HTTP listen address for the serve command.
var mcpAddr string

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port on all interfaces (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpAddr, "addr", "", "HTTP listen address (overrides --port)")
	mcpServeCmd.MarkFlagsMutuallyExclusive("port", "addr")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// mcpListenAddr resolves the HTTP address from the flags. An empty result
// means stdio.
func mcpListenAddr(cmd *cobra.Command) (string, error) {
	if mcpAddr != "" {
		return mcpAddr, nil
	}
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return "", fmt.Errorf("getting port flag: %w", err)
	}
	if port < 0 || port > 65535 {
		return "", fmt.Errorf("invalid port %d", port)
	}
	if port == 0 {
		return "", nil
	}
	return fmt.Sprintf(":%d", port), nil
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	addr, err := mcpListenAddr(cmd)
	if err != nil {
		return err
	}

	if err := ensureServices(); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Chat:     chatService,
		Document: documentService,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	if addr == "" {
		return server.Run(cmd.Context())
	}
	// Stdout is reserved for JSON-RPC in stdio mode only.
	cmd.Printf("MCP server listening on %s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
