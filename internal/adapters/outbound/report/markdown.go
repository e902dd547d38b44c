package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdidvp/modkraft/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// RenderMarkdown turns a scan result into the report document. Apart from
// the timestamp line the output depends only on the result.
func RenderMarkdown(r *domain.ScanResult) string {
	var b strings.Builder
	s := r.Summary

	b.WriteString("# Modularization Check Report\n\n")
	fmt.Fprintf(&b, "Scanned at: %s\n", r.ScannedAt.Format(timeLayout))
	fmt.Fprintf(&b, "Project path: %s\n", r.RootPath)
	if r.CommitHash != "" {
		commit := r.CommitHash
		if r.Branch != "" {
			commit += " (" + r.Branch + ")"
		}
		fmt.Fprintf(&b, "Commit: %s\n", commit)
	}

	b.WriteString("\n## Scan Summary\n\n")
	fmt.Fprintf(&b, "- Files checked: %d\n", s.TotalFiles)
	fmt.Fprintf(&b, "- Files needing refactor: %d\n", s.FilesFlagged)
	fmt.Fprintf(&b, "- Refactor rate: %.1f%%\n", s.RefactorRate)
	fmt.Fprintf(&b, "- Estimated total effort: %s\n", s.EstimatedEffort)

	b.WriteString("\n### File Type Distribution\n\n")
	if len(s.FileTypes) == 0 {
		b.WriteString("- none\n")
	}
	for _, kc := range s.FileTypes {
		fmt.Fprintf(&b, "- %s: %d %s\n", kc.Kind, kc.Count, plural(kc.Count, "file", "files"))
	}

	b.WriteString("\n### Business Domain Distribution\n\n")
	if len(s.BusinessDomains) == 0 {
		b.WriteString("- none\n")
	}
	for _, d := range s.BusinessDomains {
		fmt.Fprintf(&b, "- %s\n", d)
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n## Detailed Recommendations\n")
		for i, rec := range r.Recommendations {
			renderRecommendation(&b, i+1, relPath(r.RootPath, rec.Path), rec)
		}
	} else {
		b.WriteString("\n## All Clear\n\n")
		b.WriteString("Every checked file is within the modularity limits. No refactoring needed.\n")
	}

	if len(r.Errors) > 0 {
		b.WriteString("\n## Scan Errors\n\n")
		b.WriteString("These files could not be read and are excluded from the counts above.\n\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "- `%s`: %s\n", relPath(r.RootPath, e.Path), e.Message)
		}
	}

	b.WriteString("\n---\n\n")
	b.WriteString("Generated by modkraft. Plans are proposals; apply them with a separate tool.\n")

	return b.String()
}

func renderRecommendation(b *strings.Builder, n int, path string, rec domain.Recommendation) {
	a := rec.Analysis

	fmt.Fprintf(b, "\n### %d. %s\n\n", n, path)
	fmt.Fprintf(b, "**Problem**: %s (severity %d/10)\n\n", rec.Reason, rec.Verdict.Score)

	b.WriteString("**Analysis**:\n")
	fmt.Fprintf(b, "- Lines: %d\n", a.LineCount)
	fmt.Fprintf(b, "- Classes: %d\n", a.ClassCount)
	fmt.Fprintf(b, "- Functions: %d\n", a.FunctionCount)
	fmt.Fprintf(b, "- Imports: %d\n", a.ImportCount)
	domains := "none identified"
	if len(a.BusinessDomains) > 0 {
		domains = strings.Join(a.BusinessDomains, ", ")
	}
	fmt.Fprintf(b, "- Business domains: %s\n", domains)
	fmt.Fprintf(b, "- File type: %s\n", a.FileKind)
	if len(a.ComplexityIndicators) > 0 {
		fmt.Fprintf(b, "- Complexity indicators: %s\n", strings.Join(a.ComplexityIndicators, "; "))
	}

	if rec.Plan == nil {
		return
	}

	b.WriteString("\n**Proposed Structure**:\n")
	for _, f := range rec.Plan.Structure {
		fmt.Fprintf(b, "- `%s`: %s\n", f.Name, f.Description)
	}

	b.WriteString("\n**Migration Steps**:\n")
	for _, step := range rec.Plan.MigrationSteps {
		fmt.Fprintf(b, "- %s\n", step)
	}

	fmt.Fprintf(b, "\n**Estimated Effort**: %s\n", rec.Plan.Effort)
}

// WriteFile renders the report to path, creating parent directories.
func WriteFile(path string, r *domain.ScanResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(RenderMarkdown(r)), 0644)
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return path
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
