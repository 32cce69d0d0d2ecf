package worktree

import (
	iofs "io/fs"
	"path/filepath"
	"sort"
)

// Scan returns all versioned file paths in the working tree, relative to its
// root, in lexicographic order.
func (wc *Context) Scan() ([]string, error) {
	matcher := NewIgnore(wc.FS, wc.IgnorePath)

	var paths []string
	err := wc.FS.WalkDir(wc.Root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(wc.Root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if matcher.Match(rel) {
				return iofs.SkipDir
			}
			return nil
		}

		if matcher.Match(rel) {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
