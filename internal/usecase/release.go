package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase/shared"
)

// ReleaseInput contains the parameters for the release task.
type ReleaseInput struct {
	Version string // major.minor.patch, optionally prefixed with "v" (required)
	Remotes string // Comma separated remotes ("" = [release] remotes)
	DryRun  bool
}

// ReleaseOutput contains the result of the release task.
type ReleaseOutput struct {
	shared.RunPlanOutput
	Version  string
	Tag      string
	Remotes  []string
	Warnings []string // Non-fatal preflight findings
}

// Release is the use case for bumping the version, tagging and pushing a release.
type Release struct {
	configLoader domain.ConfigLoader
	git          domain.Git // nil outside a git repository
	deps         shared.PlanDeps
}

// NewRelease creates a new Release use case.
func NewRelease(configLoader domain.ConfigLoader, git domain.Git, deps shared.PlanDeps) *Release {
	if deps.Logger == nil {
		deps.Logger = domain.NopLogger{}
	}
	return &Release{
		configLoader: configLoader,
		git:          git,
		deps:         deps,
	}
}

// Execute validates the release against the repository and runs the release chain.
func (uc *Release) Execute(ctx context.Context, in ReleaseInput) (*ReleaseOutput, error) {
	version, err := domain.ParseVersion(in.Version)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	remotes := domain.ParseRemotes(in.Remotes, cfg.Release.Remotes)
	if len(remotes) == 0 {
		remotes = []string{"origin"}
	}
	tag := domain.ReleaseTag(version)

	warnings, err := uc.preflight(tag, remotes, cfg.Release.Branch)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		uc.deps.Logger.Warn(domain.TaskRelease, "preflight", w)
	}

	plan := domain.NewReleasePlan(cfg.Release, domain.ReleaseOptions{
		Version: version,
		Remotes: remotes,
	})
	runOut, err := shared.RunPlan(ctx, uc.deps, shared.RunPlanInput{Plan: plan, DryRun: in.DryRun})

	out := &ReleaseOutput{
		Version:  version,
		Tag:      tag,
		Remotes:  remotes,
		Warnings: warnings,
	}
	if runOut != nil {
		out.RunPlanOutput = *runOut
	}
	return out, err
}

// preflight checks the tag is new and every remote exists.
// Being on a branch other than the release branch only produces a warning.
func (uc *Release) preflight(tag string, remotes []string, releaseBranch string) ([]string, error) {
	if uc.git == nil {
		return nil, domain.ErrNotGitRepository
	}

	exists, err := uc.git.TagExists(tag)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrTagExists, tag)
	}

	known, err := uc.git.Remotes()
	if err != nil {
		return nil, err
	}
	for _, r := range remotes {
		if !slices.Contains(known, r) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, r)
		}
	}

	var warnings []string
	if releaseBranch == "" {
		releaseBranch = "master"
	}
	branch, err := uc.git.CurrentBranch()
	switch {
	case err != nil:
		warnings = append(warnings, fmt.Sprintf("cannot determine current branch: %v", err))
	case branch != releaseBranch:
		warnings = append(warnings, fmt.Sprintf("current branch %s is not the release branch %s", branch, releaseBranch))
	}
	return warnings, nil
}
