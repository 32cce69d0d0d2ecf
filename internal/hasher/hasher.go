// Package hasher computes content digests used for change detection.
// Digests are xxh3-128 rendered as lowercase hex. They are an equality
// oracle, not a cryptographic integrity primitive.
package hasher

import (
	"fmt"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/mmap"

	"github.com/pure-vibe-code/vibevc/internal/fs"
)

// Files at or above this size are read through mmap in chunks instead of
// being loaded whole.
const mmapThreshold = 8 << 20 // 8 MiB

const chunkSize = 1 << 20 // 1 MiB per read

// Sum returns the digest of data.
func Sum(data []byte) string {
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes())
}

// File returns the digest of the file at path. Large files on the real
// filesystem are hashed through mmap; everything else is read whole via the
// given FS, so in-memory filesystems hash the same way as disk.
func File(fsys fs.FS, path string) (string, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat file %q: %w", path, err)
	}

	if fi.Size() >= mmapThreshold {
		if _, onDisk := fsys.(*fs.OSFS); onDisk {
			return largeFile(path, fi.Size())
		}
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %q: %w", path, err)
	}
	return Sum(data), nil
}

// largeFile hashes a file through a memory map, one chunk at a time.
func largeFile(path string, size int64) (string, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file %q: %w", path, err)
	}
	defer reader.Close()

	h := xxh3.New()
	buf := make([]byte, chunkSize)

	for off := int64(0); off < size; off += chunkSize {
		n := chunkSize
		if off+int64(n) > size {
			n = int(size - off)
		}
		if _, err := reader.ReadAt(buf[:n], off); err != nil {
			return "", fmt.Errorf("read mmap chunk at %d: %w", off, err)
		}
		if _, err := h.Write(buf[:n]); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%x", h.Sum128().Bytes()), nil
}
