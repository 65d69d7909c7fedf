package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/mcp"
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

The server offers two tools: search (query, start_year, end_year, types)
and like (document_id, query). Documents returned by search can be read
back as libsearch://documents/{id} resources.

Edits to the settings file take effect for the next tool call.

By default the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  libsearch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  libsearch mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	_, svc, err := buildServices()
	if err != nil {
		return err
	}

	live := newLiveServices(svc)
	live.watch(cmd.Context())

	server, err := mcp.NewServer(&mcp.Ports{
		Sessions:  live.Sessions,
		Likes:     live,
		Formatter: live.Formatter(),
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
