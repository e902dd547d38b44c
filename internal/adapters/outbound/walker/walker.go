package walker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdidvp/modkraft/internal/domain"
)

// candidateFiles are checked in this order inside every app directory.
var candidateFiles = []struct {
	name string
	kind domain.FileKind
}{
	{"models.py", domain.KindModel},
	{"admin.py", domain.KindAdmin},
	{"views.py", domain.KindView},
}

// DirWalker implements domain.ProjectWalker with a two-level walk: the
// immediate subdirectories of the root, never deeper.
type DirWalker struct{}

func New() *DirWalker {
	return &DirWalker{}
}

func (w *DirWalker) Walk(rootPath string, excludeDirs ...string) ([]domain.Candidate, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, absPath)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", absPath)
	}

	cfg := domain.ProjectConfig{ExcludeDirs: excludeDirs}

	// os.ReadDir returns entries sorted by name.
	entries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", absPath, err)
	}

	var candidates []domain.Candidate
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") || cfg.IsExcluded(e.Name()) {
			continue
		}

		appDir := filepath.Join(absPath, e.Name())
		for _, cf := range candidateFiles {
			p := filepath.Join(appDir, cf.name)
			if _, err := os.Stat(p); err == nil {
				candidates = append(candidates, domain.Candidate{Path: p, Kind: cf.kind})
			}
		}
	}

	return candidates, nil
}
