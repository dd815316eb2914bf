package tether

import "sync"

// errorRing keeps the most recent reload failures of a Loader.
// A nil ring is valid and records nothing.
type errorRing struct {
	mu    sync.RWMutex
	buf   []error
	next  int
	count int
}

// newErrorRing creates a ring holding up to size errors.
// If size is 0 or negative, history is disabled.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{buf: make([]error, size)}
}

// push records err, overwriting the oldest entry when full.
func (r *errorRing) push(err error) {
	if r == nil || err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = err
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// reset forgets all recorded errors. Called after a successful reload.
func (r *errorRing) reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.buf)
	r.next = 0
	r.count = 0
}

// snapshot returns the recorded errors, oldest first.
func (r *errorRing) snapshot() []error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}
	out := make([]error, 0, r.count)
	start := (r.next - r.count + len(r.buf)) % len(r.buf)
	for i := range r.count {
		out = append(out, r.buf[(start+i)%len(r.buf)])
	}
	return out
}
