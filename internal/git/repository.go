package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	bkerrors "branchkit.dev/branchkit/internal/errors"
)

// Repository wraps a go-git repository discovered from a working directory
type Repository struct {
	*gogit.Repository
	root string
}

// OpenRepository opens the git repository containing path, searching parent directories
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", bkerrors.ErrNotARepository, absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		Repository: repo,
		root:       worktree.Filesystem.Root(),
	}, nil
}

// Root returns the top-level directory of the working tree
func (r *Repository) Root() string {
	return r.root
}

// GitDir returns the repository's git directory
func (r *Repository) GitDir() string {
	if storage, ok := r.Storer.(*filesystem.Storage); ok {
		return storage.Filesystem().Root()
	}
	return filepath.Join(r.root, ".git")
}

// HasRemote reports whether a remote with the given name is configured
func (r *Repository) HasRemote(name string) bool {
	_, err := r.Remote(name)
	return err == nil
}

// CurrentBranch returns the checked-out branch name, or "" when HEAD is detached
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}
