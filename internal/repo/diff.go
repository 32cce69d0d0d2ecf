package repo

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
)

const diffContextLines = 3

// Diff renders a unified diff of the working tree against the target
// version. Modified text files get a line diff; binary files are reported
// without content; New and Deleted paths render as all-added / all-removed.
func (r *Repository) Diff(target *manifest.Version) (string, error) {
	changes, err := r.Status(target)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, ch := range changes {
		rendered, err := r.renderChange(target, ch)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}

func (r *Repository) renderChange(target *manifest.Version, ch Change) (string, error) {
	var before, after []byte
	var err error

	if ch.Kind != New {
		before, err = r.Snapshots.ReadFile(target.Seq, ch.Path)
		if err != nil {
			return "", err
		}
	}
	if ch.Kind != Deleted {
		after, err = r.FS.ReadFile(r.Worktree.Abs(ch.Path))
		if err != nil {
			return "", fmt.Errorf("read %q: %w", ch.Path, err)
		}
	}

	if !isText(before) || !isText(after) {
		return fmt.Sprintf("Binary file %s differs\n", ch.Path), nil
	}

	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: target.Label() + "/" + ch.Path,
		ToFile:   "current/" + ch.Path,
		Context:  diffContextLines,
	}
	if ch.Kind == New {
		d.A = nil
	}
	if ch.Kind == Deleted {
		d.B = nil
	}

	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return "", fmt.Errorf("diff %q: %w", ch.Path, err)
	}
	return text, nil
}

// isText reports whether content is decodable as text. Empty content counts
// as text so that new and deleted files still render as line diffs.
func isText(data []byte) bool {
	return !bytes.ContainsRune(data, 0) && utf8.Valid(data)
}
