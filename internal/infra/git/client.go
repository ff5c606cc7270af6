// Package git provides the git repository queries devtool needs.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/draalcore/devtool/internal/domain"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)

// Client provides git operations backed by go-git.
type Client struct {
	repo     *gogit.Repository
	repoRoot string // Worktree root
	gitDir   string // Path to .git directory
}

// NewClient opens the repository containing dir.
// Parent directories are searched for .git like the git CLI does.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return NewWithRepo(repo)
}

// NewWithRepo creates a Client for an already opened repository.
func NewWithRepo(repo *gogit.Repository) (*Client, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	repoRoot := wt.Filesystem.Root()

	gitDir := filepath.Join(repoRoot, ".git")
	if fs, ok := repo.Storer.(*filesystem.Storage); ok {
		gitDir = fs.Filesystem().Root()
	}

	return &Client{
		repo:     repo,
		repoRoot: repoRoot,
		gitDir:   gitDir,
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// CurrentBranch returns the name of the current branch.
// A detached HEAD is reported as "HEAD". Before the first commit the
// branch HEAD points at is reported even though it does not exist yet.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "HEAD", nil
	}
	if !head.Target().IsBranch() {
		return "HEAD", nil
	}
	return head.Target().Short(), nil
}

// TagExists checks if a tag exists.
func (c *Client) TagExists(tag string) (bool, error) {
	_, err := c.repo.Tag(tag)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gogit.ErrTagNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check tag %s: %w", tag, err)
}

// Remotes returns the configured remote names in sorted order.
func (c *Client) Remotes() ([]string, error) {
	remotes, err := c.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, r := range remotes {
		names = append(names, r.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}
