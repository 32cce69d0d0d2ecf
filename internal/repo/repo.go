// Package repo implements the snapshot and change-detection engine: commit,
// status, diff, restore, and verify over a manifest store and a snapshot
// store.
package repo

import (
	"errors"
	"fmt"
	"os"

	"github.com/pure-vibe-code/vibevc/internal/config"
	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
	"github.com/pure-vibe-code/vibevc/internal/repo/store/snapshot"
	"github.com/pure-vibe-code/vibevc/internal/repo/store/worktree"
)

var (
	// ErrNoRepository means no repository storage was found for the
	// working tree.
	ErrNoRepository = errors.New("not a repository")

	// ErrUncommittedChanges means a restore was blocked by unsaved work.
	// Nothing has been touched.
	ErrUncommittedChanges = errors.New("uncommitted changes detected")
)

// Repository ties together the manifest store, the snapshot store, and the
// working tree scanner for one project directory.
type Repository struct {
	Config    *config.RepoConfig
	FS        fs.FS
	Manifest  *manifest.Store
	Snapshots *snapshot.Context
	Worktree  *worktree.Context
}

// NewRepository constructs a Repository for the given working tree root.
func NewRepository(workTree string, fsys fs.FS) *Repository {
	cfg := config.NewRepoConfig(workTree)
	return &Repository{
		Config:    cfg,
		FS:        fsys,
		Manifest:  manifest.NewStore(cfg.ManifestPath(), fsys),
		Snapshots: snapshot.NewContext(cfg.SnapshotsDir(), fsys),
		Worktree:  worktree.NewContext(cfg.WorkTree, cfg.IgnorePath(), fsys),
	}
}

// InitAt initializes a repository at the provided working tree root.
// Returns (*Repository, created, error); an existing repository reports
// created=false with os.ErrExist.
func InitAt(workTree string, fsys fs.FS) (*Repository, bool, error) {
	r := NewRepository(workTree, fsys)

	if fsys.Exists(r.Config.ManifestPath()) {
		return r, false, os.ErrExist
	}

	dirs := []string{
		r.Config.RepoRoot,
		r.Config.SnapshotsDir(),
	}
	for _, d := range dirs {
		if err := fsys.MkdirAll(d, 0o755); err != nil {
			return nil, false, fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}

	if err := r.Manifest.Init(); err != nil {
		return nil, false, fmt.Errorf("failed to write empty manifest: %w", err)
	}

	return r, true, nil
}

// OpenAt opens an existing repository.
func OpenAt(workTree string, fsys fs.FS) (*Repository, error) {
	r := NewRepository(workTree, fsys)

	if !fsys.IsDir(r.Config.RepoRoot) {
		return nil, fmt.Errorf("%w (missing %q)", ErrNoRepository, r.Config.RepoRoot)
	}

	return r, nil
}

// Open locates the working tree root by walking up from the current
// directory and opens the repository there.
func Open(fsys fs.FS) (*Repository, error) {
	root := config.ResolveWorkingTreeRoot()
	if root == "" {
		return nil, ErrNoRepository
	}
	return OpenAt(root, fsys)
}
