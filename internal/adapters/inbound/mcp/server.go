package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/modkraft/internal/adapters/outbound/cache"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/source"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/walker"
	"github.com/abdidvp/modkraft/internal/application"
)

// NewModkraftMCPServer creates an MCP server with all modkraft tools and
// resources registered. projectPath is the root directory of the Django
// project to analyze. Tool calls share one analysis cache, so repeated
// scans of unchanged files skip re-analysis.
func NewModkraftMCPServer(projectPath string) (*server.MCPServer, error) {
	store, err := cache.New(cache.DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("creating analysis cache: %w", err)
	}

	svc := application.NewScanService(
		walker.New(),
		source.New(),
		config.New(),
		application.WithCache(store),
		application.WithGitInfo(gitinfo.New()),
	)

	s := server.NewMCPServer(
		"modkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, projectPath)
	registerResources(s, svc, projectPath)

	return s, nil
}
