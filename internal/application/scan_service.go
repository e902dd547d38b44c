package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/abdidvp/modkraft/internal/domain/modularity"
	"github.com/abdidvp/modkraft/internal/logger"
)

// ScanService orchestrates one scan pass:
// load config → walk → read → analyze → score → plan flagged files → summarize.
type ScanService struct {
	walker       domain.ProjectWalker
	reader       domain.SourceReader
	configLoader domain.ConfigLoader
	cache        domain.AnalysisCache
	git          domain.GitInfo
	now          func() time.Time
}

// Option customizes a ScanService.
type Option func(*ScanService)

// WithCache memoizes analyses across calls.
func WithCache(c domain.AnalysisCache) Option {
	return func(s *ScanService) { s.cache = c }
}

// WithGitInfo attaches repository metadata to scan results.
func WithGitInfo(g domain.GitInfo) Option {
	return func(s *ScanService) { s.git = g }
}

// WithClock overrides the time source used for ScannedAt.
func WithClock(now func() time.Time) Option {
	return func(s *ScanService) { s.now = now }
}

func NewScanService(
	walker domain.ProjectWalker,
	reader domain.SourceReader,
	configLoader domain.ConfigLoader,
	opts ...Option,
) *ScanService {
	s := &ScanService{
		walker:       walker,
		reader:       reader,
		configLoader: configLoader,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadConfig loads project configuration for rootPath.
func (s *ScanService) LoadConfig(rootPath string) (domain.ProjectConfig, error) {
	return s.configLoader.Load(rootPath)
}

// ScanProject scans every candidate under rootPath in walker order. A
// missing root is fatal; unreadable files are recorded and skipped.
func (s *ScanService) ScanProject(rootPath string) (*domain.ScanResult, error) {
	absPath, err := checkRoot(rootPath)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configLoader.Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	candidates, err := s.walker.Walk(absPath, cfg.ExcludeDirs...)
	if err != nil {
		return nil, fmt.Errorf("walking project: %w", err)
	}

	result := &domain.ScanResult{
		RootPath:        absPath,
		ScannedAt:       s.now(),
		Recommendations: []domain.Recommendation{},
		Scores:          []domain.FileScore{},
	}
	s.attachGitInfo(result)

	for _, c := range candidates {
		rec, err := s.reader.Read(c.Path, c.Kind)
		if err != nil {
			logger.WithFields(map[string]any{"path": c.Path}).Warnf("skipping file: %v", err)
			result.Errors = append(result.Errors, domain.FileError{Path: c.Path, Message: err.Error()})
			continue
		}

		in := modularity.Inspect(s.analyze(rec))
		result.FilesChecked++
		result.Scores = append(result.Scores, domain.FileScore{
			Path:          rec.Path,
			Kind:          rec.Kind,
			Score:         in.Verdict.Score,
			NeedsRefactor: in.Verdict.NeedsRefactor,
		})
		logger.Debugf("%s: score %d, %s", rec.Path, in.Verdict.Score, in.Verdict.Reason)

		if !in.Verdict.NeedsRefactor {
			continue
		}
		result.FilesFlagged++
		result.Recommendations = append(result.Recommendations, domain.Recommendation{
			Path:     rec.Path,
			Reason:   in.Verdict.Reason,
			Verdict:  in.Verdict,
			Analysis: in.Analysis,
			Plan:     in.Plan,
		})
	}

	result.Summary = modularity.Summarize(result.FilesChecked, result.Recommendations)
	return result, nil
}

// FileReport is the outcome of checking a single file.
type FileReport struct {
	Path     string                     `json:"path"     yaml:"path"`
	Analysis domain.StructuralAnalysis  `json:"analysis" yaml:"analysis"`
	Verdict  domain.Verdict             `json:"verdict"  yaml:"verdict"`
	Plan     *domain.ModularizationPlan `json:"plan"     yaml:"plan"`
}

// CheckFile analyzes one file outside of a project walk. An empty kind is
// inferred from the path.
func (s *ScanService) CheckFile(path string, kind domain.FileKind) (*FileReport, error) {
	rec, err := s.reader.Read(path, kind)
	if err != nil {
		return nil, err
	}

	in := modularity.Inspect(s.analyze(rec))
	return &FileReport{
		Path:     rec.Path,
		Analysis: in.Analysis,
		Verdict:  in.Verdict,
		Plan:     in.Plan,
	}, nil
}

func (s *ScanService) analyze(rec domain.FileRecord) domain.StructuralAnalysis {
	if s.cache != nil {
		if a, ok := s.cache.Get(rec); ok {
			return a
		}
	}
	a := modularity.Analyze(rec)
	if s.cache != nil {
		s.cache.Put(rec, a)
	}
	return a
}

func (s *ScanService) attachGitInfo(result *domain.ScanResult) {
	if s.git == nil || !s.git.IsGitRepo(result.RootPath) {
		return
	}
	if hash, err := s.git.CommitHash(result.RootPath); err == nil {
		result.CommitHash = hash
	} else {
		logger.Debugf("no commit hash: %v", err)
	}
	if branch, err := s.git.Branch(result.RootPath); err == nil {
		result.Branch = branch
	}
}

func checkRoot(rootPath string) (string, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrRootNotFound, absPath)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", absPath)
	}
	return absPath, nil
}
