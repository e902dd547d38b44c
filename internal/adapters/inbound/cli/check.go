package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/abdidvp/modkraft/internal/adapters/outbound/history"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/report"
	"github.com/abdidvp/modkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/abdidvp/modkraft/internal/logger"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		output     string
		verbose    bool
		jsonOutput bool
		ciMode     bool
		maxFlagged int
		noHistory  bool
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Scan a project and report files that need splitting",
		Long:  "Scan every app directory under path, score models.py, admin.py and views.py, and write a Markdown report with split plans for the files over the limits.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			if verbose {
				logger.Init("info")
			}

			svc := newScanService()

			result, err := svc.ScanProject(path)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			cfg, err := svc.LoadConfig(result.RootPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			reportPath := output
			if reportPath == "" && result.FilesFlagged > 0 {
				reportPath = cfg.EffectiveReportPath(result.RootPath)
			}
			if reportPath != "" {
				abs, err := filepath.Abs(reportPath)
				if err != nil {
					return fmt.Errorf("resolving report path: %w", err)
				}
				if err := report.WriteFile(abs, result); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to: %s\n", abs)
			}

			if cfg.HistoryEnabled() && !noHistory {
				entry := domain.NewScanEntry(result, result.ScannedAt.Format(time.RFC3339))
				if err := history.New().Save(result.RootPath, entry); err != nil {
					logger.Warnf("saving history: %v", err)
				}
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderScanSummary(result))
				if verbose && reportPath == "" {
					fmt.Fprint(cmd.OutOrStdout(), report.RenderMarkdown(result))
				}
			}

			if ciMode {
				limit := 0
				if cmd.Flags().Changed("max-flagged") {
					limit = maxFlagged
				} else if cfg.MaxFlagged != nil {
					limit = *cfg.MaxFlagged
				}
				if result.FilesFlagged > limit {
					return fmt.Errorf("%d files need refactoring (allowed: %d)", result.FilesFlagged, limit)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file progress and print the full report when it is not written to a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the scan result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if more files are flagged than --max-flagged")
	cmd.Flags().IntVar(&maxFlagged, "max-flagged", 0, "Maximum flagged files allowed in CI mode")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not append this scan to the project history")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
