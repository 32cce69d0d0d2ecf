package worktree

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/pure-vibe-code/vibevc/internal/config"
	"github.com/pure-vibe-code/vibevc/internal/fs"
)

// Ignore decides whether a path belongs to the versioned set. The repository
// storage itself is always excluded.
type Ignore struct {
	static  map[string]bool // base names ignored anywhere in the tree
	pattern []string
}

// NewIgnore loads the built-in defaults and the .vibevc-ignore file, if any.
func NewIgnore(fsys fs.FS, ignorePath string) *Ignore {
	m := &Ignore{static: make(map[string]bool)}

	for _, s := range config.DefaultIgnored {
		m.static[s] = true
	}

	f, err := fsys.Open(ignorePath)
	if err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			m.pattern = append(m.pattern, line)
		}
		f.Close()
	}

	return m
}

// Match returns true if the relative path should be ignored.
func (m *Ignore) Match(rel string) bool {
	rel = filepath.ToSlash(rel)

	// any path segment matching a static name excludes the whole path
	for _, seg := range strings.Split(rel, "/") {
		if m.static[seg] {
			return true
		}
	}

	for _, pat := range m.pattern {
		if matchPattern(pat, rel) {
			return true
		}
	}

	return false
}

// matchPattern handles *, ?, and ** like Git
func matchPattern(pattern, path string) bool {
	pattern = filepath.ToSlash(pattern)
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

// matchSegments matches pattern segments recursively
func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := filepath.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
