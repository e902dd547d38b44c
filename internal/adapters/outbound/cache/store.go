package cache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abdidvp/modkraft/internal/domain"
)

// DefaultSize bounds the number of analyses kept in memory.
const DefaultSize = 1024

// Store is an in-memory implementation of domain.AnalysisCache keyed by
// file kind and content hash, so an edited file is never served stale.
// It is safe for concurrent use.
type Store struct {
	entries *lru.Cache[string, domain.StructuralAnalysis]
}

// New creates a cache holding up to size analyses.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, domain.StructuralAnalysis](size)
	if err != nil {
		return nil, err
	}
	return &Store{entries: entries}, nil
}

func (s *Store) Get(rec domain.FileRecord) (domain.StructuralAnalysis, bool) {
	return s.entries.Get(key(rec))
}

func (s *Store) Put(rec domain.FileRecord, analysis domain.StructuralAnalysis) {
	s.entries.Add(key(rec), analysis)
}

// Len reports how many analyses are cached.
func (s *Store) Len() int {
	return s.entries.Len()
}

func key(rec domain.FileRecord) string {
	sum := sha256.Sum256([]byte(rec.Text))
	return string(rec.Kind) + ":" + hex.EncodeToString(sum[:])
}
