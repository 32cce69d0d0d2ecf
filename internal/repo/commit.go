package repo

import (
	"fmt"
	"time"

	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
	"github.com/pure-vibe-code/vibevc/internal/repo/store/worktree"
)

// Commit captures the current working tree as a new version: scan, hash,
// write the snapshot tree, append the manifest entry. The snapshot write and
// the manifest append are the only durable effects; if either fails, the
// manifest is left exactly as it was and no partial version is visible.
// A commit with zero changes relative to the prior version is permitted.
func (r *Repository) Commit(message, tag string) (*manifest.Version, error) {
	entries, err := r.Worktree.BuildAll()
	if err != nil {
		return nil, err
	}

	seq, err := r.Manifest.NextSeq()
	if err != nil {
		return nil, err
	}

	if err := r.Snapshots.Write(seq, r.Config.WorkTree, entries); err != nil {
		return nil, fmt.Errorf("write snapshot %d: %w", seq, err)
	}

	v := manifest.Version{
		Seq:       seq,
		Tag:       tag,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
		Files:     worktree.Index(entries),
	}

	if err := r.Manifest.Append(v); err != nil {
		// the snapshot tree is orphaned without its manifest entry
		_ = r.Snapshots.Remove(seq)
		return nil, err
	}

	return &v, nil
}
