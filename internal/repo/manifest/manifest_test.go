package manifest_test

import (
	"errors"
	"testing"

	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
)

func newTestStore(t *testing.T) (*manifest.Store, *fs.MemoryFS) {
	t.Helper()
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("repo", 0o755); err != nil {
		t.Fatal(err)
	}
	s := manifest.NewStore("repo/manifest.json", m)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	return s, m
}

func version(seq int, tag string) manifest.Version {
	return manifest.Version{
		Seq:       seq,
		Tag:       tag,
		Timestamp: "2026-01-02T15:04:05Z",
		Message:   "test",
		Files:     map[string]string{"a.txt": "abcd"},
	}
}

func TestInitAndLoadEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	versions, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(versions) != 0 {
		t.Errorf("expected empty manifest, got %d versions", len(versions))
	}

	latest, err := s.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest != nil {
		t.Errorf("expected nil latest, got %+v", latest)
	}
}

func TestAppendOrdering(t *testing.T) {
	s, _ := newTestStore(t)

	for i := 1; i <= 3; i++ {
		if err := s.Append(version(i, "")); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	versions, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(versions))
	}
	for i, v := range versions {
		if v.Seq != i+1 {
			t.Errorf("position %d: expected seq %d, got %d", i, i+1, v.Seq)
		}
	}

	next, err := s.NextSeq()
	if err != nil {
		t.Fatal(err)
	}
	if next != 4 {
		t.Errorf("expected next seq 4, got %d", next)
	}
}

func TestAppendRejectsNonIncreasingSeq(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Append(version(2, "")); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(version(2, "")); !errors.Is(err, manifest.ErrPersistence) {
		t.Errorf("expected ErrPersistence for duplicate seq, got %v", err)
	}
	if err := s.Append(version(1, "")); !errors.Is(err, manifest.ErrPersistence) {
		t.Errorf("expected ErrPersistence for decreasing seq, got %v", err)
	}

	// failed appends must not be visible
	versions, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(versions) != 1 {
		t.Errorf("expected 1 version after rejected appends, got %d", len(versions))
	}
}

func TestResolveBySeqAndTag(t *testing.T) {
	s, _ := newTestStore(t)
	s.Append(version(1, "v1"))
	s.Append(version(2, "v2"))

	v, err := s.Resolve("1")
	if err != nil {
		t.Fatal(err)
	}
	if v.Seq != 1 {
		t.Errorf("expected seq 1, got %d", v.Seq)
	}

	v, err = s.Resolve("v2")
	if err != nil {
		t.Fatal(err)
	}
	if v.Seq != 2 {
		t.Errorf("expected seq 2, got %d", v.Seq)
	}

	if _, err := s.Resolve("v9"); !errors.Is(err, manifest.ErrVersionNotFound) {
		t.Errorf("expected ErrVersionNotFound, got %v", err)
	}
}

func TestResolveTagCollisionPicksLatest(t *testing.T) {
	s, _ := newTestStore(t)
	s.Append(version(1, "v1"))
	s.Append(version(2, "v1"))

	v, err := s.Resolve("v1")
	if err != nil {
		t.Fatal(err)
	}
	if v.Seq != 2 {
		t.Errorf("tag collision should resolve to highest seq, got %d", v.Seq)
	}
}

func TestNumericSeqWinsOverTag(t *testing.T) {
	s, _ := newTestStore(t)
	s.Append(version(1, "2"))
	s.Append(version(2, ""))

	// "2" matches seq 2 before the tag "2" on seq 1
	v, err := s.Resolve("2")
	if err != nil {
		t.Fatal(err)
	}
	if v.Seq != 2 {
		t.Errorf("expected numeric match on seq 2, got %d", v.Seq)
	}
}

func TestLoadCorruptManifest(t *testing.T) {
	s, m := newTestStore(t)
	if err := m.WriteFile("repo/manifest.json", []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(); !errors.Is(err, manifest.ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
	if _, err := s.Latest(); !errors.Is(err, manifest.ErrCorrupt) {
		t.Errorf("Latest should propagate ErrCorrupt, got %v", err)
	}
}

func TestFindTag(t *testing.T) {
	s, _ := newTestStore(t)
	s.Append(version(1, "v1"))

	if _, ok, _ := s.FindTag("v1"); !ok {
		t.Error("expected to find tag v1")
	}
	if _, ok, _ := s.FindTag("v2"); ok {
		t.Error("unexpected match for tag v2")
	}
	if _, ok, _ := s.FindTag(""); ok {
		t.Error("empty tag must never match")
	}
}
