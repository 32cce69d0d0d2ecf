package config

const IsDev = false

const (
	RepoDir      = ".vibevc"
	ManifestFile = "manifest.json"
	SnapshotsDir = "snapshots"

	IgnoreFile  = ".vibevc-ignore"
	PointerFile = ".vibevc-pointer"
)

// DefaultIgnored are base names excluded from every scan, in addition to the
// repository storage itself.
var DefaultIgnored = []string{
	RepoDir,
	PointerFile,
	".git",
	"__pycache__",
	".DS_Store",
	"venv",
	".idea",
	".vscode",
}
