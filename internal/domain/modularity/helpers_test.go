package modularity_test

import (
	"fmt"
	"strings"

	"github.com/abdidvp/modkraft/internal/domain"
)

func record(kind domain.FileKind, lines ...string) domain.FileRecord {
	return domain.NewFileRecord("/proj/shop/file.py", kind, []byte(strings.Join(lines, "\n")+"\n"))
}

// padded appends comment lines until the source has total lines.
func padded(total int, lines ...string) []string {
	out := append([]string(nil), lines...)
	for i := len(out); i < total; i++ {
		out = append(out, fmt.Sprintf("# filler %d", i))
	}
	return out
}

func repeat(n int, format string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(format, i)
	}
	return out
}
