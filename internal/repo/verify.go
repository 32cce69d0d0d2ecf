package repo

import (
	"github.com/pure-vibe-code/vibevc/internal/hasher"
	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
	"github.com/pure-vibe-code/vibevc/internal/util"
)

// Issue is one inconsistency found between the manifest and snapshot storage.
type Issue struct {
	Seq    int
	Path   string // empty when the whole snapshot tree is affected
	Reason string
}

// Verify recomputes the hashes of the stored snapshot trees and compares
// them against each version's file index. It reports desyncs (missing trees,
// missing files) and corrupted content; an empty result means storage and
// manifest agree.
func (r *Repository) Verify(versions []manifest.Version) []Issue {
	var issues []Issue

	for _, v := range versions {
		if !r.Snapshots.Exists(v.Seq) {
			issues = append(issues, Issue{Seq: v.Seq, Reason: "snapshot tree missing"})
			continue
		}

		for _, path := range util.SortedKeys(v.Files) {
			data, err := r.Snapshots.ReadFile(v.Seq, path)
			if err != nil {
				issues = append(issues, Issue{Seq: v.Seq, Path: path, Reason: "snapshot file missing"})
				continue
			}
			if hasher.Sum(data) != v.Files[path] {
				issues = append(issues, Issue{Seq: v.Seq, Path: path, Reason: "content hash mismatch"})
			}
		}
	}

	return issues
}
