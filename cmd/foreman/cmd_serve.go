package main

import (
	"context"

	"github.com/spf13/cobra"

	"foreman/internal/assistant"
	"foreman/internal/logging"
	mcpserver "foreman/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing classify_response,
export_artifact, and (when an assistant backend is configured) ask_assistant.

The server monitors for parent process death: when the MCP host disconnects
or restarts, the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// The assistant client is optional here: with no backend configured the
	// server still serves the offline tools.
	var client *assistant.Client
	if cfg.Assistant.BaseURL != "" {
		c, err := newAssistantClient()
		if err != nil {
			return err
		}
		client = c
	}

	srv := mcpserver.NewServer(client)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting foreman MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
