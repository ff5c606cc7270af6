package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_NoFiles_ReturnsDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_RepoConfigOnly(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	// Setup
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoConfigPath(repoRoot), `
[lint]
exclude = ["virtualenv", "node_modules"]

[test]
settings = "test.test_settings"
verbosity = 1

[release]
remotes = ["origin", "github"]

[log]
level = "debug"
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"virtualenv", "node_modules"}, cfg.Lint.Exclude)
	assert.Equal(t, "flake8", cfg.Lint.Command)
	assert.Equal(t, "test.test_settings", cfg.Test.Settings)
	assert.Equal(t, 1, cfg.Test.Verbosity)
	assert.Equal(t, "manage.py", cfg.Test.Manage)
	assert.Equal(t, []string{"origin", "github"}, cfg.Release.Remotes)
	assert.Equal(t, "master", cfg.Release.Branch)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_RepoOverridesGlobal(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	// Setup
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[virtualenv]
python = "/usr/bin/python3"
name = "global-env"

[release]
author = "Global Author"
`)
	writeFile(t, domain.RepoConfigPath(repoRoot), `
[virtualenv]
name = "repo-env"
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(repoRoot, globalDir).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/python3", cfg.Virtualenv.Python)
	assert.Equal(t, "repo-env", cfg.Virtualenv.Name)
	assert.Equal(t, "Global Author", cfg.Release.Author)
	assert.Equal(t, "virtualenv", cfg.Virtualenv.Dir)
}

func TestLoader_LoadWithOptions_IgnoreSources(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[log]\nlevel = \"warn\"\n")
	writeFile(t, domain.RepoConfigPath(repoRoot), "[log]\nlevel = \"error\"\n")
	loader := NewLoaderWithGlobalDir(repoRoot, globalDir)

	t.Run("ignore repo", func(t *testing.T) {
		cfg, err := loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreRepo: true})
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("ignore global", func(t *testing.T) {
		cfg, err := loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreGlobal: true})
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("ignore both", func(t *testing.T) {
		cfg, err := loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreGlobal: true, IgnoreRepo: true})
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
	})
}

func TestLoader_Load_UnknownKeysBecomeWarnings(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	// Setup
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoConfigPath(repoRoot), `
[lint]
command = "pyflakes"
colour = true
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pyflakes", cfg.Lint.Command)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "unknown key")
	assert.Contains(t, cfg.Warnings[0], "lint.colour")
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoConfigPath(repoRoot), "[lint\ncommand = ")

	_, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoader_Load_EnvLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_LoadGlobal_NoGlobalDir(t *testing.T) {
	_, err := NewLoaderWithGlobalDir(t.TempDir(), "").LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeConfigs_DoesNotShareSlices(t *testing.T) {
	base := domain.NewDefaultConfig()
	merged := mergeConfigs(base, &domain.Config{}, keySet{})

	merged.Lint.Exclude[0] = "changed"

	assert.Equal(t, "virtualenv", base.Lint.Exclude[0])
}

func TestLoader_Load_EmptyValuesClearDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	// Setup
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoConfigPath(repoRoot), `
[lint]
config = ""
exclude = []

[test]
verbosity = 0

[virtualenv]
requirements = ""
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.Lint.Config)
	assert.Empty(t, cfg.Lint.Exclude)
	assert.Equal(t, 0, cfg.Test.Verbosity)
	assert.Empty(t, cfg.Virtualenv.Requirements)
	assert.Equal(t, "draalcore", cfg.Virtualenv.Name)

	plan := domain.NewVirtualenvPlan(cfg.Virtualenv, domain.VirtualenvOptions{})
	assert.NotContains(t, plan.Script(), "pip install")
	lint := domain.NewLintPlan(cfg.Lint, domain.LintOptions{})
	assert.NotContains(t, lint.Script(), "--exclude")
	assert.NotContains(t, lint.Script(), "--config")
}

func TestLoader_Load_RepoClearsGlobalValue(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[virtualenv]\nrequirements = \"dev.txt\"\n")
	writeFile(t, domain.RepoConfigPath(repoRoot), "[virtualenv]\nrequirements = \"\"\n")

	cfg, err := NewLoaderWithGlobalDir(repoRoot, globalDir).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Virtualenv.Requirements)
}
