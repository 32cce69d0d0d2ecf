package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MemoryFS is a pure in-memory filesystem for tests or lightweight storage.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
	tmpN  int
}

func NewMemoryFS() *MemoryFS {
	f := &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
	f.dirs["/"] = struct{}{}
	f.dirs["."] = struct{}{}
	return f
}

// normalize paths
func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func (f *MemoryFS) ensureDirExists(p string) error {
	p = clean(p)
	if _, ok := f.dirs[p]; !ok {
		return iofs.ErrNotExist
	}
	return nil
}

func (f *MemoryFS) Open(p string) (io.ReadSeekCloser, error) {
	p = clean(p)
	data, ok := f.files[p]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return &memReadSeekCloser{Reader: bytes.NewReader(data)}, nil
}

type memReadSeekCloser struct {
	*bytes.Reader
}

func (m *memReadSeekCloser) Close() error { return nil }

func (f *MemoryFS) ReadFile(p string) ([]byte, error) {
	p = clean(p)
	data, ok := f.files[p]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (f *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	p = clean(p)
	dir := path.Dir(p)
	if err := f.ensureDirExists(dir); err != nil {
		return fmt.Errorf("write: dir %q does not exist", dir)
	}
	f.files[p] = append([]byte(nil), data...)
	return nil
}

func (f *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	p = clean(p)
	if strings.HasPrefix(p, "/") {
		f.dirs["/"] = struct{}{}
	}
	parts := strings.Split(p, "/")
	cur := ""
	if strings.HasPrefix(p, "/") {
		cur = "/"
	}
	for _, seg := range parts {
		if seg == "" || seg == "." {
			continue
		}
		cur = path.Join(cur, seg)
		if _, ok := f.dirs[cur]; !ok {
			f.dirs[cur] = struct{}{}
		}
	}
	return nil
}

func (f *MemoryFS) Remove(p string) error {
	p = clean(p)
	if _, ok := f.files[p]; ok {
		delete(f.files, p)
		return nil
	}
	if _, ok := f.dirs[p]; ok {
		delete(f.dirs, p)
		return nil
	}
	return iofs.ErrNotExist
}

func (f *MemoryFS) RemoveAll(p string) error {
	p = clean(p)
	prefix := p + "/"
	for fp := range f.files {
		if fp == p || strings.HasPrefix(fp, prefix) {
			delete(f.files, fp)
		}
	}
	for dp := range f.dirs {
		if dp == p || strings.HasPrefix(dp, prefix) {
			delete(f.dirs, dp)
		}
	}
	return nil
}

func (f *MemoryFS) Rename(oldp, newp string) error {
	oldp, newp = clean(oldp), clean(newp)

	// file rename
	if data, ok := f.files[oldp]; ok {
		dir := path.Dir(newp)
		if f.ensureDirExists(dir) != nil {
			return iofs.ErrNotExist
		}
		delete(f.files, oldp)
		f.files[newp] = data
		return nil
	}

	// dir rename moves the whole subtree
	if _, ok := f.dirs[oldp]; ok {
		prefix := oldp + "/"

		var movedDirs []string
		for dp := range f.dirs {
			if strings.HasPrefix(dp, prefix) {
				movedDirs = append(movedDirs, dp)
			}
		}
		for _, dp := range movedDirs {
			f.dirs[newp+"/"+strings.TrimPrefix(dp, prefix)] = struct{}{}
			delete(f.dirs, dp)
		}

		var movedFiles []string
		for fp := range f.files {
			if strings.HasPrefix(fp, prefix) {
				movedFiles = append(movedFiles, fp)
			}
		}
		for _, fp := range movedFiles {
			f.files[newp+"/"+strings.TrimPrefix(fp, prefix)] = f.files[fp]
			delete(f.files, fp)
		}

		delete(f.dirs, oldp)
		f.dirs[newp] = struct{}{}
		return nil
	}

	return iofs.ErrNotExist
}

func (f *MemoryFS) Stat(p string) (os.FileInfo, error) {
	p = clean(p)
	if data, ok := f.files[p]; ok {
		return &fakeInfo{name: filepath.Base(p), size: int64(len(data)), dir: false}, nil
	}
	if _, ok := f.dirs[p]; ok {
		return &fakeInfo{name: filepath.Base(p), dir: true}, nil
	}
	return nil, iofs.ErrNotExist
}

func (f *MemoryFS) ReadDir(p string) ([]os.DirEntry, error) {
	p = clean(p)
	if _, ok := f.dirs[p]; !ok {
		return nil, iofs.ErrNotExist
	}

	var out []os.DirEntry
	prefix := p
	if prefix != "/" && prefix != "." {
		prefix += "/"
	}

	seen := map[string]bool{}

	for dp := range f.dirs {
		if strings.HasPrefix(dp, prefix) && dp != p {
			rest := strings.TrimPrefix(dp, prefix)
			name := strings.Split(rest, "/")[0]
			if name != "" && name != "." && !seen[name] {
				seen[name] = true
				out = append(out, fakeDirEntry{name: name, isDir: true})
			}
		}
	}

	for fp := range f.files {
		if strings.HasPrefix(fp, prefix) {
			rest := strings.TrimPrefix(fp, prefix)
			if strings.Contains(rest, "/") {
				continue // nested file; its parent dir is already listed
			}
			if rest != "" && !seen[rest] {
				seen[rest] = true
				out = append(out, fakeDirEntry{name: rest, isDir: false})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// WalkDir visits root and everything under it in lexical order, honoring
// iofs.SkipDir the way filepath.WalkDir does.
func (f *MemoryFS) WalkDir(root string, fn iofs.WalkDirFunc) error {
	root = clean(root)
	info, err := f.Stat(root)
	if err != nil {
		return fn(root, nil, err)
	}
	return f.walk(root, fakeDirEntry{name: filepath.Base(root), isDir: info.IsDir()}, fn)
}

func (f *MemoryFS) walk(p string, d fakeDirEntry, fn iofs.WalkDirFunc) error {
	if err := fn(p, d, nil); err != nil {
		if d.IsDir() && errors.Is(err, iofs.SkipDir) {
			return nil
		}
		return err
	}
	if !d.IsDir() {
		return nil
	}

	entries, err := f.ReadDir(p)
	if err != nil {
		return fn(p, d, err)
	}
	for _, e := range entries {
		child := path.Join(p, e.Name())
		if err := f.walk(child, fakeDirEntry{name: e.Name(), isDir: e.IsDir()}, fn); err != nil {
			if errors.Is(err, iofs.SkipDir) {
				return nil // SkipDir on a file skips the remainder of p
			}
			return err
		}
	}
	return nil
}

func (f *MemoryFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	if err := f.ensureDirExists(clean(dir)); err != nil {
		return nil, "", err
	}

	f.tmpN++
	tmpName := filepath.Join(dir, fmt.Sprintf("%s-tmp%d", pattern, f.tmpN))
	buf := &bytes.Buffer{}

	wc := &memWriteCloser{
		buf: buf,
		onClose: func() {
			f.files[clean(tmpName)] = buf.Bytes()
		},
	}
	return wc, tmpName, nil
}

type memWriteCloser struct {
	buf     *bytes.Buffer
	onClose func()
}

func (m *memWriteCloser) Write(p []byte) (int, error) { return m.buf.Write(p) }
func (m *memWriteCloser) Close() error {
	if m.onClose != nil {
		m.onClose()
	}
	return nil
}

func (f *MemoryFS) IsNotExist(err error) bool { return errors.Is(err, iofs.ErrNotExist) }
func (f *MemoryFS) IsDir(p string) bool       { _, ok := f.dirs[clean(p)]; return ok }
func (f *MemoryFS) Exists(p string) bool {
	p = clean(p)
	_, f1 := f.files[p]
	_, d1 := f.dirs[p]
	return f1 || d1
}

// Helpers

type fakeInfo struct {
	name string
	size int64
	dir  bool
}

func (f *fakeInfo) Name() string          { return f.name }
func (f *fakeInfo) Size() int64           { return f.size }
func (f *fakeInfo) Mode() iofs.FileMode   { return 0o644 }
func (f *fakeInfo) ModTime() time.Time    { return time.Time{} }
func (f *fakeInfo) IsDir() bool           { return f.dir }
func (f *fakeInfo) Sys() interface{}      { return nil }

type fakeDirEntry struct {
	name  string
	isDir bool
}

func (d fakeDirEntry) Name() string               { return d.name }
func (d fakeDirEntry) IsDir() bool                { return d.isDir }
func (d fakeDirEntry) Type() iofs.FileMode        { return 0 }
func (d fakeDirEntry) Info() (os.FileInfo, error) { return &fakeInfo{name: d.name, dir: d.isDir}, nil }
