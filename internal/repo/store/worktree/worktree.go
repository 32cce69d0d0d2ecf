// Package worktree scans the live project directory and hashes its files.
package worktree

import (
	"path/filepath"

	"github.com/pure-vibe-code/vibevc/internal/fs"
)

// Entry is one working tree file: relative slash-separated path plus its
// content hash. Entries are the comparison unit between the working tree
// and a version's file index.
type Entry struct {
	Path string
	Hash string
}

// Context manages working tree operations (scan, hash) with abstracted
// filesystem access.
type Context struct {
	Root       string // working tree root
	IgnorePath string
	FS         fs.FS
}

// NewContext creates a new Context.
func NewContext(root, ignorePath string, fsys fs.FS) *Context {
	return &Context{Root: root, IgnorePath: ignorePath, FS: fsys}
}

// Abs converts a relative entry path back to a working tree location.
func (wc *Context) Abs(rel string) string {
	return filepath.Join(wc.Root, filepath.FromSlash(rel))
}

// Index converts entries to a path -> hash map.
func Index(entries []Entry) map[string]string {
	index := make(map[string]string, len(entries))
	for _, e := range entries {
		index[e.Path] = e.Hash
	}
	return index
}
