package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/modkraft/internal/application"
	"github.com/abdidvp/modkraft/internal/domain/modularity"
)

const (
	summaryURI = "modkraft://summary"
	domainsURI = "modkraft://domains"
)

// registerResources registers all modkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.ScanService, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			summaryURI,
			"Scan Summary",
			mcplib.WithResourceDescription("Aggregate counts, file type and business domain distribution, and overall effort for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSummaryResource(svc, projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			domainsURI,
			"Business Domains",
			mcplib.WithResourceDescription("Business domain tags that class names are classified into, in match order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleDomainsResource(),
	)
}

func handleDomainsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(modularity.Domains(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling domains: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      domainsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSummaryResource(svc *application.ScanService, projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		result, err := svc.ScanProject(projectPath)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		data, err := json.MarshalIndent(result.Summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling summary: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      summaryURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
