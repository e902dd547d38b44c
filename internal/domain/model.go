package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// FileKind classifies a candidate file by the role it plays in an app.
type FileKind string

const (
	KindModel   FileKind = "model"
	KindAdmin   FileKind = "admin"
	KindView    FileKind = "view"
	KindUnknown FileKind = "unknown"
)

// KindForPath infers the file kind from the file name and its parent
// directory, so that "app/models.py" and "app/models/sku.py" are both
// model files while directories higher up are ignored.
func KindForPath(path string) FileKind {
	p := strings.ToLower(filepath.Base(filepath.Dir(path)) + "/" + filepath.Base(path))
	switch {
	case strings.Contains(p, "models"):
		return KindModel
	case strings.Contains(p, "admin"):
		return KindAdmin
	case strings.Contains(p, "view"):
		return KindView
	default:
		return KindUnknown
	}
}

// Valid reports whether k is one of the four known kinds.
func (k FileKind) Valid() bool {
	switch k {
	case KindModel, KindAdmin, KindView, KindUnknown:
		return true
	default:
		return false
	}
}

// Stem is the module name used when naming split files for this kind.
func (k FileKind) Stem() string {
	switch k {
	case KindModel:
		return "models"
	case KindAdmin:
		return "admin"
	case KindView:
		return "views"
	default:
		return "module"
	}
}

// Effort is a coarse three-level estimate of refactoring work.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Weight maps an effort level onto the scale used when summing estimates.
func (e Effort) Weight() int {
	switch e {
	case EffortMedium:
		return 2
	case EffortHigh:
		return 3
	default:
		return 1
	}
}

// FileRecord is the raw input for one analysis. It is not modified after creation.
type FileRecord struct {
	Path      string   `json:"path"`
	Kind      FileKind `json:"kind"`
	LineCount int      `json:"line_count"`
	Text      string   `json:"-"`
}

// NewFileRecord builds a record from file content, counting physical lines.
// An empty kind is inferred from the path.
func NewFileRecord(path string, kind FileKind, content []byte) FileRecord {
	if kind == "" {
		kind = KindForPath(path)
	}
	text := string(content)
	return FileRecord{
		Path:      path,
		Kind:      kind,
		LineCount: CountLines(text),
		Text:      text,
	}
}

// CountLines counts physical lines; a final line without a newline still counts.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// StructuralAnalysis is derived once from a FileRecord.
type StructuralAnalysis struct {
	FileKind             FileKind `json:"file_kind"                    yaml:"file_kind"`
	LineCount            int      `json:"line_count"                   yaml:"line_count"`
	ClassCount           int      `json:"class_count"                  yaml:"class_count"`
	FunctionCount        int      `json:"function_count"               yaml:"function_count"`
	ImportCount          int      `json:"import_count"                 yaml:"import_count"`
	BusinessDomains      []string `json:"business_domains"             yaml:"business_domains"`
	ModelClasses         []string `json:"model_classes,omitempty"      yaml:"model_classes,omitempty"`
	AdminClasses         []string `json:"admin_classes,omitempty"      yaml:"admin_classes,omitempty"`
	ViewClasses          []string `json:"view_classes,omitempty"       yaml:"view_classes,omitempty"`
	ComplexityIndicators []string `json:"complexity_indicators"        yaml:"complexity_indicators"`
}

// DomainCount returns the number of distinct business domains observed.
func (a StructuralAnalysis) DomainCount() int { return len(a.BusinessDomains) }

// Declarations returns the declaration list relevant to the file kind.
func (a StructuralAnalysis) Declarations() []string {
	switch a.FileKind {
	case KindModel:
		return a.ModelClasses
	case KindAdmin:
		return a.AdminClasses
	case KindView:
		return a.ViewClasses
	default:
		return nil
	}
}

// Rule identifies which threshold tripped a verdict.
type Rule string

const (
	RuleNone       Rule = ""
	RuleLineCount  Rule = "line_count"
	RuleClassCount Rule = "class_count"
	RuleDomains    Rule = "business_domains"
	RuleComposite  Rule = "composite_score"
)

// Verdict is the scorer's decision for one file.
type Verdict struct {
	NeedsRefactor bool   `json:"needs_refactor" yaml:"needs_refactor"`
	Rule          Rule   `json:"rule,omitempty" yaml:"rule,omitempty"`
	Reason        string `json:"reason"         yaml:"reason"`
	Score         int    `json:"score"          yaml:"score"`
}

// PlannedFile is one entry of a plan's target layout.
type PlannedFile struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ModularizationPlan is the split proposal for a flagged file. Structure
// keeps generation order.
type ModularizationPlan struct {
	FileKind       FileKind      `json:"file_kind"       yaml:"file_kind"`
	Structure      []PlannedFile `json:"structure"       yaml:"structure"`
	MigrationSteps []string      `json:"migration_steps" yaml:"migration_steps"`
	Effort         Effort        `json:"effort"          yaml:"effort"`
}

// FileNames lists the planned file names in order.
func (p ModularizationPlan) FileNames() []string {
	names := make([]string, len(p.Structure))
	for i, f := range p.Structure {
		names[i] = f.Name
	}
	return names
}

// Recommendation ties a flagged file to its analysis and plan.
type Recommendation struct {
	Path     string              `json:"path"`
	Reason   string              `json:"reason"`
	Verdict  Verdict             `json:"verdict"`
	Analysis StructuralAnalysis  `json:"analysis"`
	Plan     *ModularizationPlan `json:"plan"`
}

// FileScore records the verdict of every checked file, flagged or not.
type FileScore struct {
	Path          string   `json:"path"`
	Kind          FileKind `json:"kind"`
	Score         int      `json:"score"`
	NeedsRefactor bool     `json:"needs_refactor"`
}

// FileError is a non-fatal per-file failure.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// KindCount is one row of the file type distribution.
type KindCount struct {
	Kind  FileKind `json:"kind"`
	Count int      `json:"count"`
}

// Summary aggregates a scan for reports and orchestration layers.
type Summary struct {
	TotalFiles      int         `json:"total_files"`
	FilesFlagged    int         `json:"files_flagged"`
	RefactorRate    float64     `json:"refactor_rate"`
	FileTypes       []KindCount `json:"file_types"`
	BusinessDomains []string    `json:"business_domains"`
	EstimatedEffort Effort      `json:"estimated_effort"`
}

// ScanResult is the aggregate output of one scan pass.
type ScanResult struct {
	RootPath        string           `json:"root_path"`
	ScannedAt       time.Time        `json:"scanned_at"`
	CommitHash      string           `json:"commit_hash,omitempty"`
	Branch          string           `json:"branch,omitempty"`
	FilesChecked    int              `json:"files_checked"`
	FilesFlagged    int              `json:"files_flagged"`
	Recommendations []Recommendation `json:"recommendations"`
	Scores          []FileScore      `json:"scores"`
	Errors          []FileError      `json:"errors,omitempty"`
	Summary         Summary          `json:"summary"`
}
