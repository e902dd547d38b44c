package source

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/abdidvp/modkraft/internal/domain"
)

// FileReader implements domain.SourceReader by reading from the local filesystem.
type FileReader struct{}

func New() *FileReader {
	return &FileReader{}
}

func (r *FileReader) Read(path string, kind domain.FileKind) (domain.FileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FileRecord{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return domain.FileRecord{}, fmt.Errorf("reading %s: not valid UTF-8", path)
	}
	return domain.NewFileRecord(path, kind, data), nil
}
