package repo

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/pure-vibe-code/vibevc/internal/progress"
	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
	"github.com/pure-vibe-code/vibevc/internal/util"
)

// Restore overwrites the working tree with the target version's snapshot.
// Without force it refuses when the working tree differs from the target in
// any way, failing with ErrUncommittedChanges before touching anything.
// Repository storage is never mutated by a restore, so even an interrupted
// restore can always be re-run from the intact snapshot.
func (r *Repository) Restore(target *manifest.Version, force bool) error {
	changes, err := r.Status(target)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil // working tree already matches the target
	}
	if !force {
		return fmt.Errorf("%w: restore would overwrite %d path(s)", ErrUncommittedChanges, len(changes))
	}

	// fail on manifest/storage desync before deleting anything
	if err := r.Snapshots.Check(target.Seq); err != nil {
		return err
	}

	if err := r.removeExtraneous(target); err != nil {
		return err
	}

	paths := util.SortedKeys(target.Files)
	bar := progress.NewProgress(len(paths), fmt.Sprintf("Restoring %s", target.Label()))
	defer bar.Finish()

	return util.Parallel(paths, util.WorkerCount(), func(rel string) error {
		if err := r.restoreFile(target.Seq, rel); err != nil {
			return err
		}
		bar.Increment()
		return nil
	})
}

// restoreFile writes one snapshot file over the working tree through a temp
// file and rename, so a crash never leaves a half-written file.
func (r *Repository) restoreFile(seq int, rel string) error {
	data, err := r.Snapshots.ReadFile(seq, rel)
	if err != nil {
		return err
	}

	dst := r.Worktree.Abs(rel)
	if err := r.FS.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %q: %w", rel, err)
	}

	tmp, tmpPath, err := r.FS.CreateTempFile(filepath.Dir(dst), "tmp-restore-*")
	if err != nil {
		return err
	}
	defer r.FS.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return r.FS.Rename(tmpPath, dst)
}

// removeExtraneous deletes working tree files absent from the target's file
// index, then prunes directories left empty.
func (r *Repository) removeExtraneous(target *manifest.Version) error {
	current, err := r.Worktree.Scan()
	if err != nil {
		return err
	}

	var dirs []string
	for _, rel := range current {
		if _, kept := target.Files[rel]; kept {
			continue
		}
		abs := r.Worktree.Abs(rel)
		if err := r.FS.Remove(abs); err != nil {
			return fmt.Errorf("remove %q: %w", rel, err)
		}
		dirs = append(dirs, filepath.Dir(abs))
	}

	// deepest first so nested empty dirs collapse
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, d := range dirs {
		for d != r.Config.WorkTree && d != "." && d != "/" {
			if entries, err := r.FS.ReadDir(d); err != nil || len(entries) > 0 {
				break
			}
			_ = r.FS.Remove(d)
			d = filepath.Dir(d)
		}
	}

	return nil
}
