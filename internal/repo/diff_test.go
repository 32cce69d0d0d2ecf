package repo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiffCleanTree(t *testing.T) {
	r, root := newTestRepo(t)
	writeFiles(t, root, map[string]string{"a.txt": "line one\nline two\n"})
	v1, err := r.Commit("base", "")
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Diff(v1)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Fatalf("expected empty diff, got %q", out)
	}
}

func TestDiffModifiedFile(t *testing.T) {
	r, root := newTestRepo(t)
	writeFiles(t, root, map[string]string{"a.txt": "line one\nline two\nline three\n"})
	v1, err := r.Commit("base", "v1.0")
	if err != nil {
		t.Fatal(err)
	}

	writeFiles(t, root, map[string]string{"a.txt": "line one\nline 2\nline three\n"})

	out, err := r.Diff(v1)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"--- v1.0/a.txt",
		"+++ current/a.txt",
		"-line two",
		"+line 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("diff missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "-line one") {
		t.Errorf("unchanged line reported as removed:\n%s", out)
	}
	if hunks := strings.Count(out, "@@ -"); hunks != 1 {
		t.Errorf("expected exactly one hunk, got %d:\n%s", hunks, out)
	}
}

func TestDiffNewAndDeletedFiles(t *testing.T) {
	r, root := newTestRepo(t)
	writeFiles(t, root, map[string]string{"old.txt": "ancient\n"})
	v1, err := r.Commit("base", "")
	if err != nil {
		t.Fatal(err)
	}

	writeFiles(t, root, map[string]string{"new.txt": "fresh\n"})
	if err := os.Remove(filepath.Join(root, "old.txt")); err != nil {
		t.Fatal(err)
	}

	out, err := r.Diff(v1)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "+fresh") {
		t.Errorf("new file not rendered as added:\n%s", out)
	}
	if !strings.Contains(out, "-ancient") {
		t.Errorf("deleted file not rendered as removed:\n%s", out)
	}
}

func TestDiffBinaryFile(t *testing.T) {
	r, root := newTestRepo(t)
	writeFiles(t, root, map[string]string{"blob.bin": "aa\x00bb"})
	v1, err := r.Commit("base", "")
	if err != nil {
		t.Fatal(err)
	}

	writeFiles(t, root, map[string]string{"blob.bin": "aa\x00cc"})

	out, err := r.Diff(v1)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Binary file blob.bin differs") {
		t.Fatalf("binary change not reported:\n%s", out)
	}
	if strings.Contains(out, "@@") {
		t.Fatalf("binary content leaked into the diff:\n%s", out)
	}
}
