package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/modkraft/internal/application"
	"github.com/abdidvp/modkraft/internal/domain"
)

// registerTools registers all modkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.ScanService, projectPath string) {
	s.AddTool(
		mcplib.NewTool("modkraft_scan",
			mcplib.WithDescription("Scan the project and return every flagged file with its verdict, analysis and split plan as JSON"),
		),
		handleScan(svc, projectPath),
	)

	s.AddTool(
		mcplib.NewTool("modkraft_check_file",
			mcplib.WithDescription("Return the structural analysis and verdict for a single file"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file, relative to the project root"),
			),
			mcplib.WithString("kind",
				mcplib.Description("Override the inferred file kind (model, admin, view, unknown)"),
			),
		),
		handleCheckFile(svc, projectPath),
	)

	s.AddTool(
		mcplib.NewTool("modkraft_plan_file",
			mcplib.WithDescription("Return the proposed file layout and migration steps for a single file. The plan is null when the file is within limits."),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file, relative to the project root"),
			),
		),
		handlePlanFile(svc, projectPath),
	)
}

func handleScan(svc *application.ScanService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := svc.ScanProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleCheckFile(svc *application.ScanService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		kind, _ := request.GetArguments()["kind"].(string)
		fk := domain.FileKind(kind)
		if kind != "" && !fk.Valid() {
			return errorResult(fmt.Sprintf("unknown file kind %q (valid: model, admin, view, unknown)", kind)), nil
		}

		fr, err := svc.CheckFile(resolve(projectPath, file), fk)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(fr)
	}
}

func handlePlanFile(svc *application.ScanService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		fr, err := svc.CheckFile(resolve(projectPath, file), "")
		if err != nil {
			return errorResult(fmt.Sprintf("plan failed: %v", err)), nil
		}
		return jsonResult(fr.Plan)
	}
}

func resolve(projectPath, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(projectPath, file)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
