package config

import (
	"os"
	"path/filepath"
)

// RepoConfig resolves all repository paths for one working tree.
type RepoConfig struct {
	WorkTree string // working tree root
	RepoRoot string // repository storage, usually <WorkTree>/.vibevc
}

// NewRepoConfig builds a RepoConfig for the given working tree root.
// It respects the .vibevc-pointer redirect file, if present.
func NewRepoConfig(workTree string) *RepoConfig {
	root := filepath.Join(workTree, RepoDir)

	ptr := filepath.Join(workTree, PointerFile)
	if fi, err := os.Stat(ptr); err == nil && !fi.IsDir() {
		if data, err := os.ReadFile(ptr); err == nil {
			target := filepath.Clean(string(data))
			if filepath.IsAbs(target) {
				root = target
			} else {
				root = filepath.Join(workTree, target)
			}
		}
	}

	return &RepoConfig{WorkTree: workTree, RepoRoot: root}
}

func (c *RepoConfig) ManifestPath() string { return filepath.Join(c.RepoRoot, ManifestFile) }
func (c *RepoConfig) SnapshotsDir() string { return filepath.Join(c.RepoRoot, SnapshotsDir) }
func (c *RepoConfig) IgnorePath() string   { return filepath.Join(c.WorkTree, IgnoreFile) }

// ResolveWorkingTreeRoot determines the working tree root by walking up.
// It traverses up the directory tree until it finds a .vibevc directory or a
// .vibevc-pointer file. Returns "" when no repository is found.
func ResolveWorkingTreeRoot() string {
	cwd, _ := os.Getwd()
	for {
		repoDir := filepath.Join(cwd, RepoDir)
		ptrFile := filepath.Join(cwd, PointerFile)

		if fi, err := os.Stat(repoDir); err == nil && fi.IsDir() {
			return cwd
		}
		if _, err := os.Stat(ptrFile); err == nil {
			return cwd
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break // reached filesystem root
		}
		cwd = parent
	}
	return ""
}
