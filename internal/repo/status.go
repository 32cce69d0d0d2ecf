package repo

import (
	"sort"

	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
	"github.com/pure-vibe-code/vibevc/internal/repo/store/worktree"
)

// Classification is the kind of change detected for one path.
type Classification int

const (
	New Classification = iota
	Modified
	Deleted
)

func (c Classification) String() string {
	switch c {
	case New:
		return "new"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is one classified path. Unchanged paths are never reported.
type Change struct {
	Path string
	Kind Classification
}

// Status compares the working tree against the baseline version's file
// index. Paths only in the working tree are New, paths only in the baseline
// are Deleted, and paths whose hashes differ are Modified. Results are in
// lexicographic path order.
func (r *Repository) Status(baseline *manifest.Version) ([]Change, error) {
	entries, err := r.Worktree.BuildAll()
	if err != nil {
		return nil, err
	}
	return classify(worktree.Index(entries), baseline.Files), nil
}

// StatusAgainstLatest is Status with the most recent version as baseline.
// The second return is false when no commits exist yet.
func (r *Repository) StatusAgainstLatest() ([]Change, *manifest.Version, error) {
	latest, err := r.Manifest.Latest()
	if err != nil {
		return nil, nil, err
	}
	if latest == nil {
		return nil, nil, nil
	}
	changes, err := r.Status(latest)
	return changes, latest, err
}

func classify(work, base map[string]string) []Change {
	var changes []Change

	for path, hash := range work {
		baseHash, tracked := base[path]
		switch {
		case !tracked:
			changes = append(changes, Change{Path: path, Kind: New})
		case baseHash != hash:
			changes = append(changes, Change{Path: path, Kind: Modified})
		}
	}

	for path := range base {
		if _, present := work[path]; !present {
			changes = append(changes, Change{Path: path, Kind: Deleted})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes
}
