package service

import "sync"

// Gate holds one busy flag per flow instance. A flag is set for the duration
// of an attempt and cleared when it ends; nothing is queued or remembered.
type Gate struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

// NewGate returns an empty Gate.
func NewGate() *Gate {
	return &Gate{busy: make(map[string]struct{})}
}

// Acquire sets the flag for key. It reports false, and changes nothing, when
// the flag is already set. The returned release clears the flag; calling it
// more than once is harmless.
func (g *Gate) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, taken := g.busy[key]; taken {
		return func() {}, false
	}
	g.busy[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, key)
			g.mu.Unlock()
		})
	}, true
}

// Busy reports whether key currently has an attempt in flight.
func (g *Gate) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, taken := g.busy[key]
	return taken
}
