package modularity

import "github.com/abdidvp/modkraft/internal/domain"

// Thresholds. A value equal to a limit does not trip it.
const (
	MaxFileLines      = 500
	MaxClasses        = 10
	MaxDomains        = 3
	MaxCompositeScore = 7
	MaxSeverityScore  = 10
)

const (
	ReasonLineCount  = "line-count over limit"
	ReasonClassCount = "too many classes"
	ReasonDomains    = "too many mixed business domains"
	ReasonComposite  = "high composite complexity score"
	ReasonWithin     = "complexity within limits"
)

// Evaluate decides whether a file needs refactoring. The first rule that
// trips names the reason; the score is always computed in full.
func Evaluate(a domain.StructuralAnalysis) domain.Verdict {
	score := SeverityScore(a)
	v := domain.Verdict{Score: score}

	switch {
	case a.LineCount > MaxFileLines:
		v.NeedsRefactor, v.Rule, v.Reason = true, domain.RuleLineCount, ReasonLineCount
	case a.ClassCount > MaxClasses:
		v.NeedsRefactor, v.Rule, v.Reason = true, domain.RuleClassCount, ReasonClassCount
	case a.DomainCount() > MaxDomains:
		v.NeedsRefactor, v.Rule, v.Reason = true, domain.RuleDomains, ReasonDomains
	case score > MaxCompositeScore:
		v.NeedsRefactor, v.Rule, v.Reason = true, domain.RuleComposite, ReasonComposite
	default:
		v.Reason = ReasonWithin
	}

	return v
}

// SeverityScore combines line, class, domain and indicator bands into a
// score clamped to [0, MaxSeverityScore].
func SeverityScore(a domain.StructuralAnalysis) int {
	score := 0

	switch {
	case a.LineCount > 1000:
		score += 3
	case a.LineCount > 500:
		score += 2
	}

	switch {
	case a.ClassCount > 15:
		score += 3
	case a.ClassCount > 10:
		score += 2
	case a.ClassCount > 5:
		score += 1
	}

	switch n := a.DomainCount(); {
	case n > 5:
		score += 2
	case n > 3:
		score += 1
	}

	score += distinctCount(a.ComplexityIndicators)

	return min(max(score, 0), MaxSeverityScore)
}

func distinctCount(items []string) int {
	seen := make(map[string]bool, len(items))
	for _, s := range items {
		seen[s] = true
	}
	return len(seen)
}
