package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/abdidvp/modkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".modkraft.yaml"), []byte(content), 0644))
}

func writeEnv(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{appconfig.EnvReportPath, appconfig.EnvMaxFlagged, appconfig.EnvHistory} {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
exclude_dirs:
  - legacy
  - node_modules
report_path: docs/modularity.md
max_flagged: 2
history: false
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy", "node_modules"}, cfg.ExcludeDirs)
	assert.Equal(t, "docs/modularity.md", cfg.ReportPath)
	require.NotNil(t, cfg.MaxFlagged)
	assert.Equal(t, 2, *cfg.MaxFlagged)
	assert.False(t, cfg.HistoryEnabled())
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .modkraft.yaml")
}

func TestYAMLLoader_ValidationError(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `max_flagged: -1`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .modkraft.yaml")
	assert.Contains(t, err.Error(), "max_flagged")
}

func TestYAMLLoader_DotEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "report_path: a.md\n")
	writeEnv(t, dir, "MODKRAFT_REPORT_PATH=b.md\nMODKRAFT_MAX_FLAGGED=3\n")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "b.md", cfg.ReportPath)
	require.NotNil(t, cfg.MaxFlagged)
	assert.Equal(t, 3, *cfg.MaxFlagged)
}

func TestYAMLLoader_ProcessEnvWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnv(t, dir, "MODKRAFT_HISTORY=true\n")
	t.Setenv(appconfig.EnvHistory, "false")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.HistoryEnabled())
}

func TestYAMLLoader_BadEnvValue(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeEnv(t, dir, "MODKRAFT_MAX_FLAGGED=lots\n")

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), appconfig.EnvMaxFlagged)
}
