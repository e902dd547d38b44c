package tui_test

import (
	"testing"

	"github.com/abdidvp/modkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *domain.ScanResult {
	plan := &domain.ModularizationPlan{
		FileKind: domain.KindModel,
		Structure: []domain.PlannedFile{
			{Name: "__init__.py", Description: "unified import entry point"},
			{Name: "brand_models.py", Description: "Brand domain models: Brand"},
		},
		MigrationSteps: []string{"1. Back up the original models.py"},
		Effort:         domain.EffortMedium,
	}
	return &domain.ScanResult{
		RootPath:     "/proj",
		FilesChecked: 3,
		FilesFlagged: 1,
		Recommendations: []domain.Recommendation{
			{
				Path:     "/proj/shop/models.py",
				Reason:   "too many classes",
				Verdict:  domain.Verdict{NeedsRefactor: true, Reason: "too many classes", Score: 6},
				Analysis: domain.StructuralAnalysis{FileKind: domain.KindModel, BusinessDomains: []string{"Brand"}},
				Plan:     plan,
			},
		},
		Errors: []domain.FileError{{Path: "/proj/blog/views.py", Message: "permission denied"}},
		Summary: domain.Summary{
			TotalFiles:      3,
			FilesFlagged:    1,
			RefactorRate:    33.3,
			BusinessDomains: []string{"Brand"},
			EstimatedEffort: domain.EffortLow,
		},
	}
}

func TestRenderScanSummary_ContainsCounts(t *testing.T) {
	out := tui.RenderScanSummary(sampleResult())
	assert.Contains(t, out, "1 / 3 files need refactoring")
	assert.Contains(t, out, "33.3%")
	assert.Contains(t, out, "low")
}

func TestRenderScanSummary_ListsFlaggedFilesRelative(t *testing.T) {
	out := tui.RenderScanSummary(sampleResult())
	assert.Contains(t, out, "shop/models.py")
	assert.Contains(t, out, "too many classes")
	assert.NotContains(t, out, "/proj/shop")
}

func TestRenderScanSummary_ShowsErrors(t *testing.T) {
	out := tui.RenderScanSummary(sampleResult())
	assert.Contains(t, out, "1 unreadable")
	assert.Contains(t, out, "blog/views.py")
	assert.Contains(t, out, "permission denied")
}

func TestRenderScanSummary_AllClear(t *testing.T) {
	r := &domain.ScanResult{RootPath: "/proj", Summary: domain.Summary{TotalFiles: 2, EstimatedEffort: domain.EffortLow}}
	out := tui.RenderScanSummary(r)
	assert.Contains(t, out, "within the modularity limits")
}

func TestRenderPlan_FlaggedFile(t *testing.T) {
	r := sampleResult().Recommendations[0]
	out := tui.RenderPlan("shop/models.py", r.Verdict, r.Plan)
	assert.Contains(t, out, "split")
	assert.Contains(t, out, "brand_models.py")
	assert.Contains(t, out, "Back up the original models.py")
	assert.Contains(t, out, "medium")
}

func TestRenderPlan_NoPlan(t *testing.T) {
	out := tui.RenderPlan("shop/admin.py", domain.Verdict{Reason: "complexity within limits", Score: 1}, nil)
	assert.Contains(t, out, "ok")
	assert.NotContains(t, out, "Proposed structure")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No scan history found.")
}

func TestRenderHistory_ShowsTrend(t *testing.T) {
	entries := []domain.ScanEntry{
		{Timestamp: "2026-01-01T10:00:00Z", CommitHash: "abcdef1234", FilesChecked: 6, FilesFlagged: 4, Effort: domain.EffortHigh},
		{Timestamp: "2026-01-08T10:00:00Z", FilesChecked: 6, FilesFlagged: 1, Effort: domain.EffortLow},
	}
	out := tui.RenderHistory(entries)
	assert.Contains(t, out, "2026-01-01")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "4/6 flagged")
	assert.Contains(t, out, "↓3")
}
