// Package snapshot stores the full file tree belonging to each committed
// version under a version-scoped directory.
package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/progress"
	"github.com/pure-vibe-code/vibevc/internal/repo/store/worktree"
	"github.com/pure-vibe-code/vibevc/internal/util"
)

// ErrSnapshotMissing means the manifest references a version whose snapshot
// tree is absent. This is a manifest/storage desync and is fatal; it is never
// silently recovered.
var ErrSnapshotMissing = errors.New("snapshot storage missing")

// Context manages version-scoped snapshot trees.
type Context struct {
	Root string // <repo>/snapshots
	FS   fs.FS
}

// NewContext creates a new Context.
func NewContext(root string, fsys fs.FS) *Context {
	return &Context{Root: root, FS: fsys}
}

// Dir returns the storage location for one version.
func (sc *Context) Dir(seq int) string {
	return filepath.Join(sc.Root, strconv.Itoa(seq))
}

// Exists reports whether the snapshot tree for seq is present.
func (sc *Context) Exists(seq int) bool {
	return sc.FS.IsDir(sc.Dir(seq))
}

// Check fails with ErrSnapshotMissing when the tree for seq is absent.
func (sc *Context) Check(seq int) error {
	if !sc.Exists(seq) {
		return fmt.Errorf("%w: version %d", ErrSnapshotMissing, seq)
	}
	return nil
}

// Write copies the full set of entries from the working tree into
// version-scoped storage. The write is all-or-nothing: if any file copy
// fails, the partial tree is removed and the error returned, so no
// half-written snapshot is ever left behind.
//
// A tree already present at seq can only be a leftover from a crash between
// snapshot write and manifest append (no manifest entry references an
// uncommitted seq), so it is replaced, keeping commit retries safe.
func (sc *Context) Write(seq int, workTree string, entries []worktree.Entry) error {
	dir := sc.Dir(seq)
	if sc.FS.Exists(dir) {
		if err := sc.FS.RemoveAll(dir); err != nil {
			return fmt.Errorf("clear stale snapshot %d: %w", seq, err)
		}
	}
	if err := sc.FS.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir %q: %w", dir, err)
	}

	bar := progress.NewProgress(len(entries), "Storing files")
	defer bar.Finish()

	err := util.Parallel(entries, util.WorkerCount(), func(e worktree.Entry) error {
		if err := sc.copyIn(dir, workTree, e.Path); err != nil {
			return err
		}
		bar.Increment()
		return nil
	})
	if err != nil {
		_ = sc.FS.RemoveAll(dir)
		return err
	}
	return nil
}

func (sc *Context) copyIn(dir, workTree, rel string) error {
	src := filepath.Join(workTree, filepath.FromSlash(rel))
	dst := filepath.Join(dir, filepath.FromSlash(rel))

	data, err := sc.FS.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %q: %w", rel, err)
	}
	if err := sc.FS.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %q: %w", rel, err)
	}
	if err := sc.FS.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("store %q: %w", rel, err)
	}
	return nil
}

// ReadFile returns the stored content of one file in the given version's
// tree. Fails with ErrSnapshotMissing when the tree itself is absent.
func (sc *Context) ReadFile(seq int, rel string) ([]byte, error) {
	if err := sc.Check(seq); err != nil {
		return nil, err
	}
	path := filepath.Join(sc.Dir(seq), filepath.FromSlash(rel))
	data, err := sc.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file %q of version %d: %w", rel, seq, err)
	}
	return data, nil
}

// Remove deletes a snapshot tree. Used only to clean up after a failed
// commit; committed snapshots are permanent.
func (sc *Context) Remove(seq int) error {
	return sc.FS.RemoveAll(sc.Dir(seq))
}
