// Package mcp exposes the report pipeline over the Model Context Protocol.
package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server instance.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with registered tools.
func NewServer(version string) *Server {
	s := server.NewMCPServer("shiftrep", version, server.WithLogging())

	registerTools(s)

	return &Server{
		mcpServer: s,
	}
}

// Start runs the server in stdio mode (blocking).
func (s *Server) Start(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

// registerTools adds all supported tools to the server.
func registerTools(s *server.MCPServer) {
	// Tool: generate_report
	generateTool := mcp.NewTool("generate_report",
		mcp.WithDescription("Generate the plain-text Zabbix shift report from one or two CSV export files. Deduplicates events, drops problems shorter than 1 hour, and groups by category and follow-up bucket."),
		mcp.WithString("csv_path",
			mcp.Required(),
			mcp.Description("Path to the first Zabbix CSV export"),
		),
		mcp.WithString("csv_path2",
			mcp.Description("Optional path to a second export; duplicates across files are collapsed first-seen-wins"),
		),
		mcp.WithString("shift",
			mcp.Required(),
			mcp.Description("Shift code"),
			mcp.Enum("A", "C", "M", "D"),
		),
		mcp.WithString("date",
			mcp.Description("Report date as YYYY-MM-DD (defaults to today)"),
		),
		mcp.WithString("operator",
			mcp.Description("Operator name for the report signature"),
		),
	)
	s.AddTool(generateTool, handleGenerateReport)

	// Tool: shift_window
	windowTool := mcp.NewTool("shift_window",
		mcp.WithDescription("Compute the absolute start/end timestamps and display range for a shift on a given date."),
		mcp.WithString("shift",
			mcp.Required(),
			mcp.Description("Shift code"),
			mcp.Enum("A", "C", "M", "D"),
		),
		mcp.WithString("date",
			mcp.Description("Date as YYYY-MM-DD (defaults to today)"),
		),
	)
	s.AddTool(windowTool, handleShiftWindow)

	// Tool: parse_duration
	durationTool := mcp.NewTool("parse_duration",
		mcp.WithDescription("Parse a compact Zabbix duration string (e.g. '1d 2h 30m') into milliseconds and the report's human-readable form."),
		mcp.WithString("duration",
			mcp.Required(),
			mcp.Description("Compact duration string using M/d/h/m/s units"),
		),
	)
	s.AddTool(durationTool, handleParseDuration)
}
