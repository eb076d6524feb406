package input

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

// Latch collects key presses from the terminal poller and yields one State per frame
// Terminals send press and autorepeat but no release, so a flag stays held
// until no repeat arrives within the hold window
type Latch struct {
	mu     deadlock.Mutex
	window time.Duration
	last   map[Action]time.Time
}

// NewLatch creates a latch with the given hold window
func NewLatch(window time.Duration) *Latch {
	return &Latch{
		window: window,
		last:   make(map[Action]time.Time),
	}
}

// Press records a press or repeat of a flag action at now
func (l *Latch) Press(a Action, now time.Time) {
	if !a.IsFlag() {
		return
	}
	l.mu.Lock()
	l.last[a] = now
	l.mu.Unlock()
}

// Release drops a flag immediately, for backends that do report key-up
func (l *Latch) Release(a Action) {
	l.mu.Lock()
	delete(l.last, a)
	l.mu.Unlock()
}

// Reset releases every flag
func (l *Latch) Reset() {
	l.mu.Lock()
	clear(l.last)
	l.mu.Unlock()
}

// Snapshot returns the flags held at now and forgets expired presses
func (l *Latch) Snapshot(now time.Time) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s State
	for a, t := range l.last {
		if now.Sub(t) >= l.window {
			delete(l.last, a)
			continue
		}
		s.Set(a, true)
	}
	return s
}
