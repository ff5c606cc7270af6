package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names.
const (
	ConfigFileName     = "config.toml"   // Global config file inside the global config dir
	RepoConfigFileName = ".devtool.toml" // Project config file at the repository root
)

// Config represents the application configuration.
type Config struct {
	Warnings   []string         `toml:"-"`
	Lint       LintConfig       `toml:"lint"`
	Test       TestConfig       `toml:"test"`
	Release    ReleaseConfig    `toml:"release"`
	Virtualenv VirtualenvConfig `toml:"virtualenv"`
	Log        LogConfig        `toml:"log"`
}

// LintConfig holds settings from [lint] section.
type LintConfig struct {
	Command string   `toml:"command,omitempty"` // Linter executable (default: flake8)
	Config  string   `toml:"config,omitempty"`  // Path passed to --config
	Exclude []string `toml:"exclude,omitempty"` // Patterns passed to --exclude
	Paths   []string `toml:"paths,omitempty"`   // Paths to lint
}

// TestConfig holds settings from [test] section.
type TestConfig struct {
	Manage    string   `toml:"manage,omitempty"`    // Django management script
	Source    string   `toml:"source,omitempty"`    // coverage --source
	Settings  string   `toml:"settings,omitempty"`  // Django settings module used for tests
	Omit      []string `toml:"omit,omitempty"`      // coverage report --omit patterns
	Verbosity int      `toml:"verbosity,omitempty"` // manage.py test --verbosity
}

// ReleaseConfig holds settings from [release] section.
type ReleaseConfig struct {
	VersionFile string   `toml:"version_file,omitempty"` // Python module holding __version__
	Author      string   `toml:"author,omitempty"`
	Contact     string   `toml:"contact,omitempty"`
	Branch      string   `toml:"branch,omitempty"`  // Branch pushed to every remote
	Remotes     []string `toml:"remotes,omitempty"` // Default remotes when --remotes is not given
}

// VirtualenvConfig holds settings from [virtualenv] section.
type VirtualenvConfig struct {
	Dir          string `toml:"dir,omitempty"`          // Directory holding environments
	Name         string `toml:"name,omitempty"`         // Environment name
	Python       string `toml:"python,omitempty"`       // Interpreter passed to virtualenv -p
	Requirements string `toml:"requirements,omitempty"` // pip requirements file
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file overrides it.
func NewDefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Command: "flake8",
			Config:  "flake8",
			Exclude: []string{"virtualenv"},
			Paths:   []string{"."},
		},
		Test: TestConfig{
			Manage:    "manage.py",
			Source:    ".",
			Settings:  "project.test_settings",
			Omit:      []string{"./virtualenv**", "setup.py"},
			Verbosity: 2,
		},
		Release: ReleaseConfig{
			VersionFile: "draalcore/__init__.py",
			Author:      "Juha Ojanperä",
			Contact:     "juha.ojanpera@gmail.com",
			Branch:      "master",
			Remotes:     []string{"origin"},
		},
		Virtualenv: VirtualenvConfig{
			Dir:          "virtualenv",
			Name:         "draalcore",
			Python:       "/usr/bin/python2.7",
			Requirements: "requirements.txt",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// RenderConfigTemplate renders the commented config file template
// with the values of cfg as the documented defaults.
func RenderConfigTemplate(cfg *Config) (string, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	tmpl, err := template.New("config").Funcs(template.FuncMap{
		"list": tomlList,
	}).Parse(configTemplateContent)
	if err != nil {
		return "", fmt.Errorf("parse config template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("render config template: %w", err)
	}
	return buf.String(), nil
}

// tomlList formats a string slice as a TOML inline array.
func tomlList(values []string) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%q", v)
	}
	buf.WriteByte(']')
	return buf.String()
}
