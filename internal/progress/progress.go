// Package progress renders a single-line terminal counter for long file
// operations. Output goes to stdout and overwrites itself in place.
package progress

import (
	"fmt"
	"sync"
	"time"
)

const frames = `|/-\`

// Tracker counts completed items and repaints a status line on a ticker.
type Tracker struct {
	mu      sync.Mutex
	total   int
	done    int
	label   string
	started time.Time
	stop    chan struct{}
}

// NewProgress starts a tracker for total items and begins rendering.
func NewProgress(total int, label string) *Tracker {
	t := &Tracker{
		total:   total,
		label:   label,
		started: time.Now(),
		stop:    make(chan struct{}),
	}
	go t.loop()
	return t
}

func (t *Tracker) loop() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-t.stop:
			t.mu.Lock()
			fmt.Printf("\r%s: %d file(s) in %s%s\n",
				t.label, t.total, time.Since(t.started).Round(time.Millisecond), pad)
			t.mu.Unlock()
			return

		case <-ticker.C:
			t.mu.Lock()
			if t.total > 0 {
				fmt.Printf("\r%c %s %d/%d%s",
					frames[frame%len(frames)], t.label, t.done, t.total, pad)
			} else {
				fmt.Printf("\r%c %s %d%s",
					frames[frame%len(frames)], t.label, t.done, pad)
			}
			t.mu.Unlock()
			frame++
		}
	}
}

// pad clears leftovers when a repaint is shorter than the previous one.
const pad = "        "

// Increment marks one more item complete.
func (t *Tracker) Increment() {
	t.mu.Lock()
	t.done++
	t.mu.Unlock()
}

// SetCurrent sets the completed count directly.
func (t *Tracker) SetCurrent(n int) {
	t.mu.Lock()
	t.done = n
	t.mu.Unlock()
}

// Finish stops rendering and prints the summary line.
func (t *Tracker) Finish() {
	close(t.stop)
	// let the render goroutine print its final line
	time.Sleep(10 * time.Millisecond)
}
