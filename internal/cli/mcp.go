package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ppiankov/jorfcheck/internal/pipeline"
	"github.com/ppiankov/jorfcheck/internal/web"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the verification as an MCP tool over stdio",
	Long: `MCP exposes the verify_naturalisation tool (surname, given_name, year) to
Model Context Protocol clients over stdin/stdout. Logs go to stderr.

Example client configuration:
  {"command": "jorfcheck", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	verifier, err := pipeline.NewVerifierFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.NewMCPServer("jorfcheck", Version, server.WithToolCapabilities(false))
	web.NewServer(verifier, cfg.Gazette, logger).RegisterMCPTools(srv)

	logger.Info("serving MCP over stdio")
	return server.ServeStdio(srv)
}
