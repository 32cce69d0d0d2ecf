package worktree

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pure-vibe-code/vibevc/internal/hasher"
	"github.com/pure-vibe-code/vibevc/internal/util"
)

// BuildEntry hashes a single file.
func (wc *Context) BuildEntry(rel string) (Entry, error) {
	hash, err := hasher.File(wc.FS, wc.Abs(rel))
	if err != nil {
		return Entry{}, fmt.Errorf("hash %q: %w", rel, err)
	}
	return Entry{Path: rel, Hash: hash}, nil
}

// BuildEntries hashes the given paths on a bounded worker pool. Hashing order
// is nondeterministic; results are sorted by path before returning, so the
// output never depends on scheduling.
func (wc *Context) BuildEntries(paths []string) ([]Entry, error) {
	jobs := make(chan string, len(paths))
	results := make(chan Entry, len(paths))
	errs := make(chan error, len(paths))
	workers := util.WorkerCount()

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for p := range jobs {
				entry, err := wc.BuildEntry(p)
				if err != nil {
					errs <- err
					continue
				}
				results <- entry
			}
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errs)
	}()

	var entries []Entry
	for e := range results {
		entries = append(entries, e)
	}

	// Collect one error if any
	for err := range errs {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// BuildAll scans the working tree and hashes everything included.
func (wc *Context) BuildAll() ([]Entry, error) {
	paths, err := wc.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan working tree: %w", err)
	}
	return wc.BuildEntries(paths)
}
