package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	fileName = ".modkraft.yaml"
	envFile  = ".env"

	EnvReportPath = "MODKRAFT_REPORT_PATH"
	EnvMaxFlagged = "MODKRAFT_MAX_FLAGGED"
	EnvHistory    = "MODKRAFT_HISTORY"
)

// YAMLLoader implements domain.ConfigLoader by reading .modkraft.yaml and
// applying MODKRAFT_* overrides from the process environment or the
// project's .env file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .modkraft.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return domain.ProjectConfig{}, err
	}

	env, err := loadEnv(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, err
	}
	if err := applyEnv(&cfg, env); err != nil {
		return domain.ProjectConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

// loadEnv merges the project's .env under the process environment; the
// process environment wins.
func loadEnv(projectPath string) (map[string]string, error) {
	env, err := godotenv.Read(filepath.Join(projectPath, envFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("parsing %s: %w", envFile, err)
		}
		env = map[string]string{}
	}

	for _, key := range []string{EnvReportPath, EnvMaxFlagged, EnvHistory} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func applyEnv(cfg *domain.ProjectConfig, env map[string]string) error {
	if v := strings.TrimSpace(env[EnvReportPath]); v != "" {
		cfg.ReportPath = v
	}

	if v := strings.TrimSpace(env[EnvMaxFlagged]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxFlagged, err)
		}
		cfg.MaxFlagged = &n
	}

	if v := strings.TrimSpace(env[EnvHistory]); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHistory, err)
		}
		cfg.History = &b
	}

	return nil
}
