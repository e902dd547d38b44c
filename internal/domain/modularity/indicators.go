package modularity

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxMethodBodyLines  = 20
	deepNestingColumns  = 16
	maxFieldLines       = 15
	maxRepeatedSettings = 5
	tabWidth            = 4
)

const (
	IndicatorLongMethod       = "long method (>20 lines)"
	IndicatorDeepNesting      = "deep nesting (>4 levels)"
	IndicatorRepeatedConfig   = "repeated configuration pattern"
	indicatorTooManyFieldsFmt = "too many fields (%d)"
)

var (
	anyDefLine   = regexp.MustCompile(`^\s*(?:async\s+)?def\s+\w+`)
	anyClassLine = regexp.MustCompile(`^\s*class\s+\w+`)
	fieldDecl    = regexp.MustCompile(`\w+\s*=\s*(?:\w+\.)?\w+Field\s*\(`)

	repeatedSettings = []*regexp.Regexp{
		regexp.MustCompile(`list_display\s*=`),
		regexp.MustCompile(`list_filter\s*=`),
		regexp.MustCompile(`search_fields\s*=`),
		regexp.MustCompile(`verbose_name\s*=`),
	}
)

// FindIndicators returns complexity smell tags in a fixed order.
func FindIndicators(lines []string) []string {
	indicators := []string{}

	if hasLongMethod(lines) {
		indicators = append(indicators, IndicatorLongMethod)
	}
	if hasDeepNesting(lines) {
		indicators = append(indicators, IndicatorDeepNesting)
	}
	if n := countFields(lines); n > maxFieldLines {
		indicators = append(indicators, fmt.Sprintf(indicatorTooManyFieldsFmt, n))
	}
	if hasRepeatedSettings(lines) {
		indicators = append(indicators, IndicatorRepeatedConfig)
	}

	return indicators
}

// hasLongMethod reports whether any def body runs past maxMethodBodyLines.
// A body ends at the next def or class line at any indentation.
func hasLongMethod(lines []string) bool {
	start := -1
	for i, line := range lines {
		if anyDefLine.MatchString(line) || anyClassLine.MatchString(line) {
			if start >= 0 && i-start-1 > maxMethodBodyLines {
				return true
			}
			start = -1
			if anyDefLine.MatchString(line) {
				start = i
			}
		}
	}
	return start >= 0 && len(lines)-start-1 > maxMethodBodyLines
}

func hasDeepNesting(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if indentWidth(line) >= deepNestingColumns {
			return true
		}
	}
	return false
}

func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			return width
		}
	}
	return width
}

func countFields(lines []string) int {
	n := 0
	for _, line := range lines {
		n += len(fieldDecl.FindAllStringIndex(line, -1))
	}
	return n
}

func hasRepeatedSettings(lines []string) bool {
	text := strings.Join(lines, "\n")
	for _, re := range repeatedSettings {
		if len(re.FindAllStringIndex(text, -1)) > maxRepeatedSettings {
			return true
		}
	}
	return false
}
