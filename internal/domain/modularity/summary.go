package modularity

import "github.com/abdidvp/modkraft/internal/domain"

// Inspection is the full result of checking one file.
type Inspection struct {
	Analysis domain.StructuralAnalysis
	Verdict  domain.Verdict
	Plan     *domain.ModularizationPlan
}

// Inspect analyzes, scores and, when flagged, plans one file. A plan is
// present exactly when the verdict flags the file.
func Inspect(a domain.StructuralAnalysis) Inspection {
	in := Inspection{Analysis: a, Verdict: Evaluate(a)}
	if in.Verdict.NeedsRefactor {
		p := Synthesize(a)
		in.Plan = &p
	}
	return in
}

// Overall effort bands over summed per-file weights.
const (
	highEffortWeight   = 6
	mediumEffortWeight = 3
)

// Summarize aggregates flagged recommendations in scan order.
func Summarize(checked int, recs []domain.Recommendation) domain.Summary {
	s := domain.Summary{
		TotalFiles:      checked,
		FilesFlagged:    len(recs),
		FileTypes:       []domain.KindCount{},
		BusinessDomains: []string{},
		EstimatedEffort: domain.EffortLow,
	}
	if checked > 0 {
		s.RefactorRate = float64(len(recs)) / float64(checked) * 100
	}

	kindIndex := make(map[domain.FileKind]int)
	seenDomain := make(map[string]bool)
	total := 0

	for _, rec := range recs {
		kind := rec.Analysis.FileKind
		if i, ok := kindIndex[kind]; ok {
			s.FileTypes[i].Count++
		} else {
			kindIndex[kind] = len(s.FileTypes)
			s.FileTypes = append(s.FileTypes, domain.KindCount{Kind: kind, Count: 1})
		}

		for _, d := range rec.Analysis.BusinessDomains {
			if !seenDomain[d] {
				seenDomain[d] = true
				s.BusinessDomains = append(s.BusinessDomains, d)
			}
		}

		if rec.Plan != nil {
			total += rec.Plan.Effort.Weight()
		} else {
			total += domain.EffortLow.Weight()
		}
	}

	switch {
	case total > highEffortWeight:
		s.EstimatedEffort = domain.EffortHigh
	case total > mediumEffortWeight:
		s.EstimatedEffort = domain.EffortMedium
	}

	return s
}
