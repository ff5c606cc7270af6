package domain

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// ReleaseOptions holds the release inputs taken from flags.
type ReleaseOptions struct {
	Version string   // Validated major.minor.patch
	Remotes []string // Remotes to push to
}

// ParseVersion validates a release version and strips an optional leading "v".
func ParseVersion(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingVersion
	}
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidVersion, raw)
	}
	return v.String(), nil
}

// ParseRemotes splits a comma separated remote list.
// fallback is returned when raw names no remote.
func ParseRemotes(raw string, fallback []string) []string {
	var remotes []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			remotes = append(remotes, r)
		}
	}
	if len(remotes) == 0 {
		return append([]string(nil), fallback...)
	}
	return remotes
}

// ReleaseTag returns the git tag name of a version.
func ReleaseTag(version string) string {
	return "v" + version
}

// RenderVersionFile returns the content of the Python version module.
func RenderVersionFile(cfg ReleaseConfig, version string) string {
	lines := []string{
		"#!/usr/bin/env python",
		"# -*- coding: utf-8 -*-",
		fmt.Sprintf("__version__ = '%s'", version),
		fmt.Sprintf("__author__ = '%s'", cfg.Author),
		fmt.Sprintf("__contact__ = '%s'", cfg.Contact),
	}
	return strings.Join(lines, "\n") + "\n"
}

// NewReleasePlan builds the version bump, commit, tag and push chain.
func NewReleasePlan(cfg ReleaseConfig, opts ReleaseOptions) *Plan {
	versionFile := cfg.VersionFile
	if versionFile == "" {
		versionFile = "draalcore/__init__.py"
	}
	branch := cfg.Branch
	if branch == "" {
		branch = "master"
	}
	tag := ReleaseTag(opts.Version)
	message := "Release " + opts.Version

	steps := []string{
		"printf %s " + quote(RenderVersionFile(cfg, opts.Version)) + " > " + quote(versionFile),
		"npm version --no-git-tag-version " + quote(opts.Version),
		"git add package.json",
		"git add " + quote(versionFile),
		"git commit -m " + quote(message),
		"git tag -a " + quote(tag) + " -m " + quote(message),
	}
	for _, remote := range opts.Remotes {
		steps = append(steps,
			fmt.Sprintf("git push %s %s", quote(remote), quote(tag)),
			fmt.Sprintf("git push %s %s", quote(remote), quote(branch)),
		)
	}

	return &Plan{
		Task:  TaskRelease,
		Steps: steps,
	}
}
