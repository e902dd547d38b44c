package modularity

import (
	"fmt"
	"strings"

	"github.com/abdidvp/modkraft/internal/domain"
)

// Effort bands per kind. Models and admin deliberately use different cut-offs.
const (
	modelHighEffortClasses   = 15
	adminMediumEffortClasses = 10
)

var boilerplate = map[domain.FileKind][]domain.PlannedFile{
	domain.KindModel: {
		{Name: "__init__.py", Description: "unified import entry point"},
		{Name: "base.py", Description: "shared abstract base classes and shared configuration"},
		{Name: "mixins.py", Description: "reusable cross-cutting model behavior"},
		{Name: "managers.py", Description: "custom model managers"},
	},
	domain.KindAdmin: {
		{Name: "__init__.py", Description: "unified registration entry point"},
		{Name: "base.py", Description: "shared base admin classes and shared configuration"},
		{Name: "mixins.py", Description: "reusable cross-cutting admin behavior"},
		{Name: "filters.py", Description: "custom list filters"},
	},
	domain.KindView: {
		{Name: "__init__.py", Description: "unified import entry point"},
		{Name: "base.py", Description: "shared base view classes"},
		{Name: "mixins.py", Description: "reusable cross-cutting view behavior"},
	},
	domain.KindUnknown: {
		{Name: "__init__.py", Description: "unified import entry point"},
		{Name: "base.py", Description: "shared base classes and shared configuration"},
		{Name: "mixins.py", Description: "reusable cross-cutting behavior"},
	},
}

var migrationSteps = map[domain.FileKind][]string{
	domain.KindModel: {
		"1. Back up the original models.py",
		"2. Create the models/ package directory",
		"3. Create base.py and mixins.py with the shared building blocks",
		"4. Move model classes into their domain files",
		"5. Update models/__init__.py to import every model",
		"6. Replace the original models.py with a compatibility import shim",
		"7. Run the test suite to verify behavior is unchanged",
	},
	domain.KindAdmin: {
		"1. Back up the original admin.py",
		"2. Create the admin/ package directory",
		"3. Create base.py and mixins.py with the shared building blocks",
		"4. Move admin classes into their domain files",
		"5. Update admin/__init__.py to register every admin class",
		"6. Replace the original admin.py with a compatibility import shim",
		"7. Verify the admin site still lists and edits every model",
	},
	domain.KindView: {
		"1. Back up the original views.py",
		"2. Create the views/ package directory",
		"3. Create base.py and mixins.py with the shared building blocks",
		"4. Move view classes into their domain files",
		"5. Update views/__init__.py to import every view",
		"6. Replace the original views.py with a compatibility import shim",
		"7. Run the test suite and check URL routing resolves every view",
	},
	domain.KindUnknown: {
		"1. Back up the original file",
		"2. Create a package directory named after the file",
		"3. Create base.py and mixins.py with the shared building blocks",
		"4. Move declarations into their domain files",
		"5. Update __init__.py to re-export every declaration",
		"6. Replace the original file with a compatibility import shim",
		"7. Run the test suite to verify behavior is unchanged",
	},
}

var declarationLabel = map[domain.FileKind]string{
	domain.KindModel:   "models",
	domain.KindAdmin:   "admin classes",
	domain.KindView:    "views",
	domain.KindUnknown: "declarations",
}

type declarationGroup struct {
	domain string
	names  []string
}

// Synthesize builds the split plan for a flagged file. Output is a pure
// function of the analysis.
func Synthesize(a domain.StructuralAnalysis) domain.ModularizationPlan {
	kind := a.FileKind
	if _, ok := boilerplate[kind]; !ok {
		kind = domain.KindUnknown
	}

	plan := domain.ModularizationPlan{
		FileKind:       a.FileKind,
		Structure:      append([]domain.PlannedFile(nil), boilerplate[kind]...),
		MigrationSteps: append([]string(nil), migrationSteps[kind]...),
		Effort:         estimateEffort(a),
	}

	groups, misc := groupByDomain(a.Declarations(), kind)
	stem := a.FileKind.Stem()
	label := declarationLabel[kind]

	for _, g := range groups {
		plan.Structure = append(plan.Structure, domain.PlannedFile{
			Name:        fmt.Sprintf("%s_%s.py", strings.ToLower(g.domain), stem),
			Description: fmt.Sprintf("%s domain %s: %s", g.domain, label, strings.Join(g.names, ", ")),
		})
	}
	if len(misc) > 0 {
		plan.Structure = append(plan.Structure, domain.PlannedFile{
			Name:        fmt.Sprintf("%s_%s.py", MiscGroup, stem),
			Description: fmt.Sprintf("other %s: %s", label, strings.Join(misc, ", ")),
		})
	}

	return plan
}

// groupByDomain buckets names by domain in first-seen order. Admin names are
// classified without their Admin suffix.
func groupByDomain(names []string, kind domain.FileKind) ([]declarationGroup, []string) {
	var groups []declarationGroup
	index := make(map[string]int)
	var misc []string

	for _, name := range names {
		key := name
		if kind == domain.KindAdmin {
			key = modelNameOf(name)
		}
		d, ok := ClassifyDomain(key)
		if !ok {
			misc = append(misc, name)
			continue
		}
		i, exists := index[d]
		if !exists {
			i = len(groups)
			index[d] = i
			groups = append(groups, declarationGroup{domain: d})
		}
		groups[i].names = append(groups[i].names, name)
	}

	return groups, misc
}

func estimateEffort(a domain.StructuralAnalysis) domain.Effort {
	switch a.FileKind {
	case domain.KindModel:
		if len(a.ModelClasses) > modelHighEffortClasses {
			return domain.EffortHigh
		}
		return domain.EffortMedium
	case domain.KindAdmin:
		if len(a.AdminClasses) > adminMediumEffortClasses {
			return domain.EffortMedium
		}
		return domain.EffortLow
	default:
		return domain.EffortMedium
	}
}
