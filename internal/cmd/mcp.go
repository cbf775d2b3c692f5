package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tracwiki-cli/internal/logging"
	"github.com/salmonumbrella/tracwiki-cli/internal/mcp"
)

func newMCPCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Expose the converter over the MCP protocol",
		Long: `Run a Model Context Protocol (MCP) server exposing the Markdown
to wiki conversion as tools, so MCP-capable clients can convert and
inspect documents without shelling out.`,
	}
	cmd.AddCommand(newMCPServeCmd(app))
	return cmd
}

func newMCPServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long: `Serve the MCP protocol on stdin/stdout. Intended to be launched
by an MCP client; logs go to stderr as JSON since stdout carries the
protocol stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			logging.SetupJSON(debug, app.Stderr)
			return mcp.ServeStdio(app.Version)
		},
	}
}
