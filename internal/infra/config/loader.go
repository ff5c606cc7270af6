// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// EnvLogLevel overrides [log] level when set.
const EnvLogLevel = "DEVTOOL_LOG_LEVEL"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Path to the project root holding .devtool.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/devtool)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalToolDir(configHome)
}

// Load returns the merged configuration (repo + global).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- repo (later takes precedence)
	if !opts.IgnoreGlobal && l.globalConfDir != "" {
		global, keys, err := loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global, keys)
		}
	}

	if !opts.IgnoreRepo && l.repoRoot != "" {
		repo, keys, err := loadFile(domain.RepoConfigPath(l.repoRoot))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if repo != nil {
			base = mergeConfigs(base, repo, keys)
		}
	}

	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		base.Log.Level = level
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	cfg, _, err := loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	return cfg, err
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	if l.repoRoot == "" {
		return nil, os.ErrNotExist
	}
	cfg, _, err := loadFile(domain.RepoConfigPath(l.repoRoot))
	return cfg, err
}

// keySet holds the "section.key" names written in a config file.
type keySet map[string]bool

// loadFile loads a configuration from a file along with the keys it sets.
// Unknown keys do not fail the load; they are reported as warnings.
func loadFile(path string) (*domain.Config, keySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var cfg domain.Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&cfg)
	if err != nil {
		var strictErr *toml.StrictMissingError
		if !errors.As(err, &strictErr) {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}

		// Decode again without the strict check so known keys are kept
		cfg = domain.Config{}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for i := range strictErr.Errors {
			key := strings.Join(strictErr.Errors[i].Key(), ".")
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in %s: %s", path, key))
		}
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	keys := make(keySet)
	for section, value := range raw {
		table, ok := value.(map[string]any)
		if !ok {
			continue
		}
		for key := range table {
			keys[section+"."+key] = true
		}
	}
	return &cfg, keys, nil
}

// mergeConfigs returns base with every key present in override applied.
// A key set to an empty value clears the base value.
func mergeConfigs(base, override *domain.Config, keys keySet) *domain.Config {
	result := *base
	var warnings []string
	warnings = append(warnings, base.Warnings...)
	result.Warnings = append(warnings, override.Warnings...)

	// [lint]
	result.Lint.Command = pick(keys, "lint.command", base.Lint.Command, override.Lint.Command)
	result.Lint.Config = pick(keys, "lint.config", base.Lint.Config, override.Lint.Config)
	result.Lint.Exclude = pickList(keys, "lint.exclude", base.Lint.Exclude, override.Lint.Exclude)
	result.Lint.Paths = pickList(keys, "lint.paths", base.Lint.Paths, override.Lint.Paths)

	// [test]
	result.Test.Manage = pick(keys, "test.manage", base.Test.Manage, override.Test.Manage)
	result.Test.Source = pick(keys, "test.source", base.Test.Source, override.Test.Source)
	result.Test.Settings = pick(keys, "test.settings", base.Test.Settings, override.Test.Settings)
	result.Test.Omit = pickList(keys, "test.omit", base.Test.Omit, override.Test.Omit)
	result.Test.Verbosity = pick(keys, "test.verbosity", base.Test.Verbosity, override.Test.Verbosity)

	// [release]
	result.Release.VersionFile = pick(keys, "release.version_file", base.Release.VersionFile, override.Release.VersionFile)
	result.Release.Author = pick(keys, "release.author", base.Release.Author, override.Release.Author)
	result.Release.Contact = pick(keys, "release.contact", base.Release.Contact, override.Release.Contact)
	result.Release.Branch = pick(keys, "release.branch", base.Release.Branch, override.Release.Branch)
	result.Release.Remotes = pickList(keys, "release.remotes", base.Release.Remotes, override.Release.Remotes)

	// [virtualenv]
	result.Virtualenv.Dir = pick(keys, "virtualenv.dir", base.Virtualenv.Dir, override.Virtualenv.Dir)
	result.Virtualenv.Name = pick(keys, "virtualenv.name", base.Virtualenv.Name, override.Virtualenv.Name)
	result.Virtualenv.Python = pick(keys, "virtualenv.python", base.Virtualenv.Python, override.Virtualenv.Python)
	result.Virtualenv.Requirements = pick(keys, "virtualenv.requirements", base.Virtualenv.Requirements, override.Virtualenv.Requirements)

	// [log]
	result.Log.Level = pick(keys, "log.level", base.Log.Level, override.Log.Level)

	return &result
}

func pick[T any](keys keySet, key string, base, override T) T {
	if keys[key] {
		return override
	}
	return base
}

func pickList(keys keySet, key string, base, override []string) []string {
	return append([]string(nil), pick(keys, key, base, override)...)
}
