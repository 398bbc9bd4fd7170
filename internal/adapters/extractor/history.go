package extractor

import "sync"

// History is a fixed-size ring of decoded response payloads. It implements
// ports.PayloadHistory. A size of zero disables it.
type History struct {
	mu    sync.Mutex
	items []any
	next  int
	full  bool
}

// NewHistory creates a History holding at most size payloads.
func NewHistory(size int) *History {
	return &History{items: make([]any, max(size, 0))}
}

// Add records payload, overwriting the oldest one when full.
func (h *History) Add(payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.items) == 0 {
		return
	}
	h.items[h.next] = payload
	h.next = (h.next + 1) % len(h.items)
	if h.next == 0 {
		h.full = true
	}
}

// Snapshot returns the stored payloads, newest first.
func (h *History) Snapshot() []any {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := h.next
	if h.full {
		n = len(h.items)
	}

	out := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		idx := (h.next - i + len(h.items)) % len(h.items)
		out = append(out, h.items[idx])
	}
	return out
}
