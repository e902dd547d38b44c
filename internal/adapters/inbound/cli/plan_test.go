package cli_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var catalogModels = filepath.Join(fixtureDir, "catalog", "models.py")

func TestPlanCommand_Text(t *testing.T) {
	out, _, err := run(t, "plan", catalogModels)
	require.NoError(t, err)
	assert.Contains(t, out, "too many classes")
	assert.Contains(t, out, "category_models.py")
	assert.Contains(t, out, "Migration steps")
}

func TestPlanCommand_YAML(t *testing.T) {
	out, _, err := run(t, "plan", catalogModels, "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Verdict struct {
			NeedsRefactor bool   `yaml:"needs_refactor"`
			Reason        string `yaml:"reason"`
		} `yaml:"verdict"`
		Plan struct {
			Structure []struct {
				Name string `yaml:"name"`
			} `yaml:"structure"`
			Effort string `yaml:"effort"`
		} `yaml:"plan"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.Verdict.NeedsRefactor)
	assert.Equal(t, "too many classes", doc.Verdict.Reason)
	assert.Equal(t, "__init__.py", doc.Plan.Structure[0].Name)
	assert.Equal(t, "medium", doc.Plan.Effort)
}

func TestPlanCommand_JSONWithinLimits(t *testing.T) {
	out, _, err := run(t, "plan", filepath.Join(fixtureDir, "blog", "views.py"), "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Nil(t, doc["plan"])
}

func TestPlanCommand_KindOverride(t *testing.T) {
	out, _, err := run(t, "plan", catalogModels, "--kind", "view", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"file_kind": "view"`)
	assert.Contains(t, out, "category_views.py")
}

func TestPlanCommand_InvalidFlags(t *testing.T) {
	_, _, err := run(t, "plan", catalogModels, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "plan", catalogModels, "--kind", "serializer")
	assert.ErrorContains(t, err, "unknown file kind")
}

func TestPlanCommand_MissingFile(t *testing.T) {
	_, _, err := run(t, "plan", filepath.Join(t.TempDir(), "models.py"))
	assert.ErrorContains(t, err, "plan failed")
}
