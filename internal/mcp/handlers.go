package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fdsmon/shiftrep/internal/duration"
	"github.com/fdsmon/shiftrep/internal/ingest"
	"github.com/fdsmon/shiftrep/internal/output"
	"github.com/fdsmon/shiftrep/internal/pipeline"
	"github.com/fdsmon/shiftrep/internal/shift"
)

// generateTimeout bounds a report run; file reads are local, so this only
// guards against pathological inputs.
const generateTimeout = 30 * time.Second

// handleGenerateReport runs the full pipeline and returns the text report.
func handleGenerateReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	args := getArgs(request)

	paths := []string{}
	if p := stringArg(args, "csv_path", ""); p != "" {
		paths = append(paths, p)
	}
	if p := stringArg(args, "csv_path2", ""); p != "" {
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return errResult("csv_path is required"), nil
	}

	shiftCode := stringArg(args, "shift", "")
	operator := stringArg(args, "operator", "")

	date, err := dateArg(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	sources, err := ingest.ReadSources(ctx, paths)
	if err != nil {
		return errResult(fmt.Sprintf("reading exports failed: %v", err)), nil
	}

	report, err := pipeline.Build(sources, shiftCode, date, operator)
	if err != nil {
		return errResult(fmt.Sprintf("report generation failed: %v", err)), nil
	}

	return newTextResult(output.RenderText(report)), nil
}

// handleShiftWindow computes the window for a shift code and date.
func handleShiftWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)

	code := stringArg(args, "shift", "")
	date, err := dateArg(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	start, end, err := shift.Window(code, date)
	if err != nil {
		return errResult(err.Error()), nil
	}
	display, err := shift.Range(code, date)
	if err != nil {
		return errResult(err.Error()), nil
	}

	result := map[string]interface{}{
		"shift":   code,
		"start":   start.Format(time.RFC3339),
		"end":     end.Format(time.RFC3339),
		"display": display,
	}
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}
	return newTextResult(string(jsonData)), nil
}

// handleParseDuration parses a compact duration string.
func handleParseDuration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)

	s := stringArg(args, "duration", "")
	if s == "" {
		return errResult("duration is required"), nil
	}

	ms := duration.Parse(s)
	result := map[string]interface{}{
		"input":        s,
		"milliseconds": ms,
		"formatted":    duration.Format(ms),
	}
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}
	return newTextResult(string(jsonData)), nil
}

// dateArg parses the optional "date" argument, defaulting to today.
func dateArg(args map[string]interface{}) (time.Time, error) {
	s := stringArg(args, "date", "")
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// getArgs safely extracts the arguments map from a CallToolRequest.
// Returns an empty map if Arguments is nil or not a map.
func getArgs(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

// stringArg extracts a string argument with a default value.
func stringArg(args map[string]interface{}, key, defaultVal string) string {
	val, ok := args[key]
	if !ok || val == nil {
		return defaultVal
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return defaultVal
	}
	return s
}

// newTextResult creates a successful MCP tool result with text content.
func newTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// errResult creates an MCP tool error result (IsError=true).
// This is returned as a tool-level error, not a transport-level JSON-RPC error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: msg,
			},
		},
	}
}
