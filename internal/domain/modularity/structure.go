package modularity

import (
	"regexp"
	"strings"

	"github.com/abdidvp/modkraft/internal/domain"
)

var (
	classDecl    = regexp.MustCompile(`^class\s+(\w+)`)
	functionDecl = regexp.MustCompile(`^(?:async\s+)?def\s+\w+`)
	importStmt   = regexp.MustCompile(`^(?:from|import)\s+`)
)

// Analyze runs the structural scan over one file record. It never fails:
// text that matches nothing yields zero counts.
func Analyze(rec domain.FileRecord) domain.StructuralAnalysis {
	a := domain.StructuralAnalysis{
		FileKind:        rec.Kind,
		LineCount:       rec.LineCount,
		BusinessDomains: []string{},
	}
	seen := make(map[string]bool)

	lines := splitLines(rec.Text)
	for _, line := range lines {
		if m := classDecl.FindStringSubmatch(line); m != nil {
			name := m[1]
			a.ClassCount++

			if d, ok := ClassifyDomain(name); ok && !seen[d] {
				seen[d] = true
				a.BusinessDomains = append(a.BusinessDomains, d)
			}
			fileDeclaration(&a, name)
			continue
		}

		if functionDecl.MatchString(line) {
			a.FunctionCount++
			continue
		}

		if importStmt.MatchString(line) {
			a.ImportCount++
		}
	}

	a.ComplexityIndicators = FindIndicators(lines)
	return a
}

// fileDeclaration files a class name under the list matching the file kind.
func fileDeclaration(a *domain.StructuralAnalysis, name string) {
	switch a.FileKind {
	case domain.KindModel:
		if !hasAdminSuffix(name) {
			a.ModelClasses = append(a.ModelClasses, name)
		}
	case domain.KindAdmin:
		if hasAdminSuffix(name) {
			a.AdminClasses = append(a.AdminClasses, name)
		}
	case domain.KindView:
		a.ViewClasses = append(a.ViewClasses, name)
	}
}

// splitLines splits on '\n' and drops a trailing empty element so the
// result length agrees with domain.CountLines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
