package gate

import (
	"strings"
	"sync"
	"time"
)

// Gate races a timer against an override key.
type Gate struct {
	latch *Latch

	mu    sync.Mutex
	timer *time.Timer
	live  bool
}

// New arms a gate that expires after wait unless overridden or closed first.
func New(wait time.Duration) *Gate {
	g := &Gate{
		latch: NewLatch(),
		live:  true,
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.timer = time.AfterFunc(wait, g.expire)
	return g
}

// Bypassed returns a gate already resolved to Manual.
func Bypassed() *Gate {
	g := &Gate{latch: NewLatch()}
	g.latch.Resolve(Manual)
	return g
}

// expire runs on the timer goroutine. It is a no-op once the gate is closed.
func (g *Gate) expire() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live {
		return
	}
	g.latch.Resolve(Expired)
}

// Override forces manual mode. It reports whether this call resolved the gate.
func (g *Gate) Override() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live {
		return false
	}
	g.stopLocked()
	return g.latch.Resolve(Overridden)
}

// Close stops the timer and invalidates its callback.
// A gate that has not resolved yet resolves to Cancelled.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopLocked()
	g.live = false
	g.latch.Resolve(Cancelled)
}

func (g *Gate) stopLocked() {
	if g.timer != nil {
		g.timer.Stop()
	}
}

// Done is closed once the gate resolves.
func (g *Gate) Done() <-chan struct{} {
	return g.latch.Done()
}

// Resolution returns the current resolution.
func (g *Gate) Resolution() Resolution {
	return g.latch.Resolution()
}

// Wait blocks until the gate resolves and returns the resolution.
func (g *Gate) Wait() Resolution {
	<-g.latch.Done()
	return g.latch.Resolution()
}

// QualifyingKey reports whether a key press overrides the gate.
// Terminals do not report bare modifiers, so any ctrl chord counts except
// ctrl+c, which stays bound to quitting. overrideKey adds one more key.
func QualifyingKey(key, overrideKey string) bool {
	if overrideKey != "" && key == overrideKey {
		return true
	}
	return strings.HasPrefix(key, "ctrl+") && key != "ctrl+c"
}
