// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/draalcore/devtool/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	IgnoreGlobal bool // Skip the global config when computing the effective config
	IgnoreRepo   bool // Skip the repository config when computing the effective config
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective    *domain.Config    // Merged config with defaults applied
	GlobalConfig domain.ConfigInfo // Global config file info
	RepoConfig   domain.ConfigInfo // Repository config file info
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information and the effective config.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	effective, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal: in.IgnoreGlobal,
		IgnoreRepo:   in.IgnoreRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	out := &ShowConfigOutput{Effective: effective}
	if !in.IgnoreGlobal {
		out.GlobalConfig = uc.configManager.GetGlobalConfigInfo()
	}
	if !in.IgnoreRepo {
		out.RepoConfig = uc.configManager.GetRepoConfigInfo()
	}
	return out, nil
}
