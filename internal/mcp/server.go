// Package mcp serves the converter over the Model Context Protocol, so agent
// hosts can turn Markdown into wiki markup without shelling out per call.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/salmonumbrella/tracwiki-cli/internal/doctree"
	"github.com/salmonumbrella/tracwiki-cli/internal/markdown"
	"github.com/salmonumbrella/tracwiki-cli/internal/tracwiki"
)

// NewServer builds the MCP server with the converter tools registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer("tracwiki-cli", version,
		server.WithToolCapabilities(false),
	)

	convertTool := mcp.NewTool("convert_markdown",
		mcp.WithDescription("Convert a Markdown document to Trac-style wiki markup."),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("The Markdown source to convert"),
		),
		mcp.WithBoolean("preserve_breaks",
			mcp.Description("Keep source line breaks instead of reflowing paragraphs"),
		),
	)
	s.AddTool(convertTool, handleConvert)

	inspectTool := mcp.NewTool("inspect_document",
		mcp.WithDescription("Parse a Markdown document and return its node tree as JSON."),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("The Markdown source to inspect"),
		),
	)
	s.AddTool(inspectTool, handleInspect)

	return s
}

// ServeStdio runs the server over stdin/stdout until the host disconnects.
func ServeStdio(version string) error {
	return server.ServeStdio(NewServer(version))
}

func handleConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var opts []tracwiki.Option
	if req.GetBool("preserve_breaks", false) {
		opts = append(opts, tracwiki.WithPreserveBreaks(true))
	}

	doc := markdown.Parse([]byte(source))
	out := tracwiki.New(opts...).Render(doc)
	slog.Debug("converted document over MCP", "bytes_in", len(source), "bytes_out", len(out))
	return mcp.NewToolResultText(out), nil
}

func handleInspect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc := markdown.Parse([]byte(source))
	tree, err := json.MarshalIndent(doctree.Summary(doc), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(tree)), nil
}
