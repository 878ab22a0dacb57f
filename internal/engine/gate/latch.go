// Package gate implements the timed race between automatic execution and a
// user override.
package gate

import "sync"

// Resolution is the outcome of the gate.
type Resolution uint8

const (
	// Pending means the gate has not resolved yet.
	Pending Resolution = iota
	// Expired means the wait elapsed with no override; auto-execute is permitted.
	Expired
	// Overridden means a qualifying key arrived in time.
	Overridden
	// Manual means auto-execute is disabled by configuration.
	Manual
	// Cancelled means the gate was torn down before resolving.
	Cancelled
)

// String returns the resolution name.
func (r Resolution) String() string {
	switch r {
	case Expired:
		return "expired"
	case Overridden:
		return "overridden"
	case Manual:
		return "manual"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// AutoExecute reports whether the engine may act on a result without asking.
func (r Resolution) AutoExecute() bool {
	return r == Expired
}

// Latch holds a single resolution. The first Resolve wins.
type Latch struct {
	mu   sync.Mutex
	res  Resolution
	done chan struct{}
}

// NewLatch returns an unresolved latch.
func NewLatch() *Latch {
	return &Latch{done: make(chan struct{})}
}

// Resolve records r if the latch is still pending and reports whether it did.
func (l *Latch) Resolve(r Resolution) bool {
	if r == Pending {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.res != Pending {
		return false
	}
	l.res = r
	close(l.done)
	return true
}

// Done is closed once the latch resolves.
func (l *Latch) Done() <-chan struct{} {
	return l.done
}

// Resolution returns the current value.
func (l *Latch) Resolution() Resolution {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.res
}
