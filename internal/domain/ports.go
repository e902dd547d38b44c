package domain

import "errors"

// ErrRootNotFound is returned when the project root does not exist.
var ErrRootNotFound = errors.New("project root does not exist")

// Candidate is a file the walker selected for analysis.
type Candidate struct {
	Path string   `json:"path"`
	Kind FileKind `json:"kind"`
}

// ProjectWalker enumerates candidate files under a project root.
type ProjectWalker interface {
	Walk(rootPath string, excludeDirs ...string) ([]Candidate, error)
}

// SourceReader loads a file's content into a FileRecord. An empty kind is
// inferred from the path.
type SourceReader interface {
	Read(path string, kind FileKind) (FileRecord, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// AnalysisCache memoizes structural analyses by file content.
type AnalysisCache interface {
	Get(rec FileRecord) (StructuralAnalysis, bool)
	Put(rec FileRecord, analysis StructuralAnalysis)
}

// ScanHistory persists scan snapshots for trend tracking.
type ScanHistory interface {
	Save(projectPath string, entry ScanEntry) error
	Load(projectPath string) ([]ScanEntry, error)
}

// GitInfo reports repository metadata.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	Branch(projectPath string) (string, error)
}

// ScanEntry is one stored history snapshot.
type ScanEntry struct {
	Timestamp    string      `json:"timestamp"`
	CommitHash   string      `json:"commit_hash,omitempty"`
	FilesChecked int         `json:"files_checked"`
	FilesFlagged int         `json:"files_flagged"`
	RefactorRate float64     `json:"refactor_rate"`
	Effort       Effort      `json:"effort"`
	Scores       []FileScore `json:"scores,omitempty"`
}

// NewScanEntry snapshots a scan result for history.
func NewScanEntry(r *ScanResult, timestamp string) ScanEntry {
	return ScanEntry{
		Timestamp:    timestamp,
		CommitHash:   r.CommitHash,
		FilesChecked: r.FilesChecked,
		FilesFlagged: r.FilesFlagged,
		RefactorRate: r.Summary.RefactorRate,
		Effort:       r.Summary.EstimatedEffort,
		Scores:       r.Scores,
	}
}
