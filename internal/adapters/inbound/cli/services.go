package cli

import (
	"os"
	"strings"

	"github.com/abdidvp/modkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/source"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/walker"
	"github.com/abdidvp/modkraft/internal/application"
)

func newScanService() *application.ScanService {
	return application.NewScanService(
		walker.New(),
		source.New(),
		config.New(),
		application.WithGitInfo(gitinfo.New()),
	)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
