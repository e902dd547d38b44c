package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	effortColors = map[domain.Effort]lipgloss.Color{
		domain.EffortLow:    success,
		domain.EffortMedium: warning,
		domain.EffortHigh:   danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderScanSummary formats a scan result for the terminal.
func RenderScanSummary(r *domain.ScanResult) string {
	var b strings.Builder
	s := r.Summary

	title := headerStyle.Render("modkraft")
	subtitle := dimStyle.Render("Modularization Check")
	counts := fmt.Sprintf("%d / %d files need refactoring", s.FilesFlagged, s.TotalFiles)
	countsStyled := lipgloss.NewStyle().Bold(true).Foreground(rateColor(s.RefactorRate)).Render(counts)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + countsStyled))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", padRight("Refactor rate", 20), rateBar(s.RefactorRate, 20)+" "+dimStyle.Render(fmt.Sprintf("%.1f%%", s.RefactorRate)))
	fmt.Fprintf(&b, "  %s %s\n", padRight("Estimated effort", 20), effortText(s.EstimatedEffort))
	if len(s.BusinessDomains) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", padRight("Business domains", 20), dimStyle.Render(strings.Join(s.BusinessDomains, ", ")))
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(r.Recommendations) == 0 {
		b.WriteString("  " + passStyle.Render("Every checked file is within the modularity limits.") + "\n")
	} else {
		b.WriteString("  " + titleStyle.Render("Files to split") + "\n\n")
		for _, rec := range r.Recommendations {
			icon := failStyle.Render("●")
			if rec.Verdict.Score <= 5 {
				icon = warnStyle.Render("●")
			}
			fmt.Fprintf(&b, "    %s %s  %s\n", icon, fileStyle.Render(shortenPath(r.RootPath, rec.Path)),
				dimStyle.Render(fmt.Sprintf("%s · %d/10", rec.Reason, rec.Verdict.Score)))
		}
	}

	if len(r.Errors) > 0 {
		b.WriteString("\n  " + errorTagStyle.Render(fmt.Sprintf("%d unreadable", len(r.Errors))) + "\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "    %s %s\n", fileStyle.Render(shortenPath(r.RootPath, e.Path)), dimStyle.Render(e.Message))
		}
	}

	b.WriteString("\n")
	return b.String()
}

// RenderPlan formats a single file's verdict and plan.
func RenderPlan(path string, v domain.Verdict, plan *domain.ModularizationPlan) string {
	var b strings.Builder

	status := passStyle.Render("ok")
	if v.NeedsRefactor {
		status = failStyle.Render("split")
	}
	fmt.Fprintf(&b, "  %s  %s  %s\n", titleStyle.Render(path), status, dimStyle.Render(fmt.Sprintf("%s · %d/10", v.Reason, v.Score)))

	if plan == nil {
		return b.String()
	}

	b.WriteString("\n  " + titleStyle.Render("Proposed structure") + "\n")
	for _, f := range plan.Structure {
		fmt.Fprintf(&b, "    %s %s\n", padRight(f.Name, 26), dimStyle.Render(f.Description))
	}

	b.WriteString("\n  " + titleStyle.Render("Migration steps") + "\n")
	for _, step := range plan.MigrationSteps {
		fmt.Fprintf(&b, "    %s\n", step)
	}

	fmt.Fprintf(&b, "\n  %s %s\n", padRight("Estimated effort", 20), effortText(plan.Effort))
	return b.String()
}

// RenderHistory formats scan history for terminal output.
func RenderHistory(entries []domain.ScanEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No scan history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Scan History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		flagged := lipgloss.NewStyle().
			Foreground(rateColor(e.RefactorRate)).
			Render(fmt.Sprintf("%d/%d flagged", e.FilesFlagged, e.FilesChecked))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			flagged,
			effortText(e.Effort),
		)

		if i > 0 {
			diff := e.FilesFlagged - entries[i-1].FilesFlagged
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func effortText(e domain.Effort) string {
	c, ok := effortColors[e]
	if !ok {
		c = fg
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(string(e))
}

func rateBar(rate float64, width int) string {
	filled := max(0, min(int(rate)*width/100, width))
	empty := width - filled

	color := rateColor(rate)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func rateColor(rate float64) lipgloss.Color {
	switch {
	case rate == 0:
		return success
	case rate < 25:
		return lipgloss.Color("#A3E635") // lime
	case rate < 50:
		return warning
	default:
		return danger
	}
}

func shortenPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
