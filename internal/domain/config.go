package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultReportName is the report written when files are flagged and no
// output path was given.
const DefaultReportName = "modularization_report.md"

// ProjectConfig holds project-level configuration loaded from .modkraft.yaml.
type ProjectConfig struct {
	ExcludeDirs []string `yaml:"exclude_dirs" json:"exclude_dirs,omitempty"`
	ReportPath  string   `yaml:"report_path"  json:"report_path,omitempty"`
	MaxFlagged  *int     `yaml:"max_flagged"  json:"max_flagged,omitempty"`
	History     *bool    `yaml:"history"      json:"history,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// HistoryEnabled reports whether scans should be appended to history.
// History is on unless explicitly disabled.
func (c ProjectConfig) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// EffectiveReportPath resolves where a report goes when the caller gave no
// explicit output path.
func (c ProjectConfig) EffectiveReportPath(rootPath string) string {
	if c.ReportPath == "" {
		return filepath.Join(rootPath, DefaultReportName)
	}
	if filepath.IsAbs(c.ReportPath) {
		return c.ReportPath
	}
	return filepath.Join(rootPath, c.ReportPath)
}

// IsExcluded reports whether a directory name is excluded from walking.
func (c ProjectConfig) IsExcluded(dir string) bool {
	for _, d := range c.ExcludeDirs {
		if strings.TrimSuffix(d, "/") == dir {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for i, d := range c.ExcludeDirs {
		d = strings.TrimSuffix(d, "/")
		if d == "" {
			return fmt.Errorf("exclude_dirs[%d] must not be empty", i)
		}
		if strings.ContainsAny(d, `/\`) {
			return fmt.Errorf("exclude_dirs[%d] = %q must be a directory name, not a path", i, d)
		}
	}

	if c.MaxFlagged != nil && *c.MaxFlagged < 0 {
		return fmt.Errorf("max_flagged must be >= 0 (got %d)", *c.MaxFlagged)
	}

	if c.ReportPath != "" && !strings.HasSuffix(strings.ToLower(c.ReportPath), ".md") {
		return fmt.Errorf("report_path %q must point to a .md file", c.ReportPath)
	}

	return nil
}
