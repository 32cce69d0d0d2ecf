package worktree

import (
	"path/filepath"
	"testing"

	"github.com/pure-vibe-code/vibevc/internal/fs"
)

func match(pat, path string) bool {
	return matchPattern(pat, filepath.ToSlash(path))
}

func TestMatchPattern_Basics(t *testing.T) {
	cases := []struct {
		pat  string
		path string
		want bool
	}{
		// exact
		{"foo.txt", "foo.txt", true},
		{"foo.txt", "bar.txt", false},

		// wildcard *
		{"*.txt", "foo.txt", true},
		{"*.txt", "bar.log", false},
		{"foo*", "foobar", true},
		{"foo*", "barfoo", false},

		// single-char ?
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file12.txt", false},

		// nested paths
		{"dir/*.txt", "dir/foo.txt", true},
		{"dir/*.txt", "dir/sub/foo.txt", false},

		// double-star recursive
		{"dir/**", "dir/foo.txt", true},
		{"dir/**", "dir/sub/deep/foo.txt", true},
		{"dir/**", "other/foo.txt", false},

		// double-star in middle
		{"dir/**/foo.txt", "dir/foo.txt", true},
		{"dir/**/foo.txt", "dir/a/b/c/foo.txt", true},
		{"dir/**/foo.txt", "dir/bar/baz.txt", false},

		// leading double-star
		{"**/*.log", "x.log", true},
		{"**/*.log", "sub/x.log", true},
		{"**/*.log", "sub/x.txt", false},
	}

	for _, c := range cases {
		if got := match(c.pat, c.path); got != c.want {
			t.Errorf("match(%q, %q) = %v, want %v", c.pat, c.path, got, c.want)
		}
	}
}

func TestIgnore_StaticDefaults(t *testing.T) {
	m := fs.NewMemoryFS()
	ig := NewIgnore(m, "work/.vibevc-ignore") // no ignore file on disk

	ignored := []string{
		".vibevc",
		".vibevc/manifest.json",
		".git/config",
		"sub/__pycache__/mod.pyc",
		".vibevc-pointer",
	}
	for _, p := range ignored {
		if !ig.Match(p) {
			t.Errorf("expected %q to be ignored by default", p)
		}
	}

	kept := []string{"main.go", "sub/readme.md", "gitignore-lookalike"}
	for _, p := range kept {
		if ig.Match(p) {
			t.Errorf("expected %q to be versioned", p)
		}
	}
}

func TestIgnore_FilePatterns(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("work", 0o755)
	m.WriteFile("work/.vibevc-ignore", []byte("# build output\n\nbuild/**\n**/*.tmp\n"), 0o644)

	ig := NewIgnore(m, "work/.vibevc-ignore")

	if !ig.Match("build") {
		t.Error("expected build dir to be ignored")
	}
	if !ig.Match("build/out/a.o") {
		t.Error("expected build output to be ignored")
	}
	if !ig.Match("sub/scratch.tmp") {
		t.Error("expected *.tmp to be ignored at any depth")
	}
	if ig.Match("builder/a.go") {
		t.Error("pattern build/** must not match builder/")
	}
	if ig.Match("sub/scratch.txt") {
		t.Error("unexpected ignore of a plain file")
	}
}
