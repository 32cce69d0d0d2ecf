// Package manifest persists the ordered history of committed versions.
// The manifest is the single source of truth for what versions exist; its
// order is the history.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/util"
)

var (
	// ErrCorrupt means the persisted manifest cannot be parsed. Fatal for
	// any operation that needs history; no auto-repair.
	ErrCorrupt = errors.New("manifest is corrupted")

	// ErrPersistence means a manifest write failed. No partial state is
	// visible to subsequent reads.
	ErrPersistence = errors.New("manifest write failed")

	// ErrVersionNotFound means an identifier matched neither a sequence
	// number nor a tag.
	ErrVersionNotFound = errors.New("version not found")
)

// Version is an immutable record of one commit.
type Version struct {
	Seq       int               `json:"seq"`
	Tag       string            `json:"tag,omitempty"`
	Timestamp string            `json:"timestamp"` // UTC, RFC3339
	Message   string            `json:"message"`
	Files     map[string]string `json:"files"` // relative path -> content hash
}

// Label returns the identifier shown to the user: the tag when present,
// the sequence number otherwise.
func (v *Version) Label() string {
	if v.Tag != "" {
		return v.Tag
	}
	return strconv.Itoa(v.Seq)
}

// Store reads and appends the on-disk manifest.
type Store struct {
	Path string
	FS   fs.FS
}

func NewStore(path string, fsys fs.FS) *Store {
	return &Store{Path: path, FS: fsys}
}

// Init writes an empty manifest.
func (s *Store) Init() error {
	if err := util.WriteJSON(s.FS, s.Path, []Version{}); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Load reads the full ordered version list. A missing manifest reads as
// empty history; an unparsable one fails with ErrCorrupt.
func (s *Store) Load() ([]Version, error) {
	data, err := s.FS.ReadFile(s.Path)
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read manifest %q: %w", s.Path, err)
	}

	var versions []Version
	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrCorrupt, s.Path, err)
	}
	return versions, nil
}

// Append adds a version to the end of the manifest. The write is atomic
// with respect to process crash (temp file + rename), so a failed append
// leaves the previous manifest intact.
func (s *Store) Append(v Version) error {
	versions, err := s.Load()
	if err != nil {
		return err
	}

	if last := len(versions); last > 0 && v.Seq <= versions[last-1].Seq {
		return fmt.Errorf("%w: sequence %d not after %d", ErrPersistence, v.Seq, versions[last-1].Seq)
	}

	versions = append(versions, v)
	if err := util.WriteJSON(s.FS, s.Path, versions); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Latest returns the most recent version, or nil when no commits exist yet.
func (s *Store) Latest() (*Version, error) {
	versions, err := s.Load()
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, nil
	}
	return &versions[len(versions)-1], nil
}

// NextSeq returns the sequence number the next commit should use.
func (s *Store) NextSeq() (int, error) {
	last, err := s.Latest()
	if err != nil {
		return 0, err
	}
	if last == nil {
		return 1, nil
	}
	return last.Seq + 1, nil
}

// Resolve finds a version by identifier: a sequence number first, then a
// tag. When multiple versions share a tag, the most recent one (highest
// sequence number) wins.
func (s *Store) Resolve(identifier string) (*Version, error) {
	versions, err := s.Load()
	if err != nil {
		return nil, err
	}

	if seq, convErr := strconv.Atoi(identifier); convErr == nil {
		for i := range versions {
			if versions[i].Seq == seq {
				return &versions[i], nil
			}
		}
	}

	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].Tag == identifier {
			return &versions[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrVersionNotFound, identifier)
}

// FindTag reports whether any committed version carries the given tag.
func (s *Store) FindTag(tag string) (*Version, bool, error) {
	if tag == "" {
		return nil, false, nil
	}
	versions, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].Tag == tag {
			return &versions[i], true, nil
		}
	}
	return nil, false, nil
}
