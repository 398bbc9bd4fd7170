// Package sink publishes finished cluster graphs to in-process subscribers.
package sink

import (
	"encoding/json"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
)

// DefaultSubscriberBuffer is the channel capacity given to each subscriber.
const DefaultSubscriberBuffer = 16

// Hub implements ports.GraphSink. It remembers the latest graph and fans new
// graphs out to subscribers. A push whose canonical JSON fingerprint equals
// the latest graph's is ignored, so repeated deliveries of one exchange are
// harmless.
type Hub struct {
	mu          sync.RWMutex
	latest      *domain.ClusterGraph
	fingerprint uint64
	subscribers map[uint64]chan *domain.ClusterGraph
	nextID      uint64
	buffer      int

	logger  ports.Logger
	metrics ports.Metrics
}

// NewHub creates an empty Hub.
func NewHub(logger ports.Logger, metrics ports.Metrics) *Hub {
	return &Hub{
		subscribers: make(map[uint64]chan *domain.ClusterGraph),
		buffer:      DefaultSubscriberBuffer,
		logger:      logger,
		metrics:     metrics,
	}
}

// Fingerprint hashes the canonical JSON encoding of g.
func Fingerprint(g *domain.ClusterGraph) uint64 {
	data, err := json.Marshal(g)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// PushGraph publishes g unless it equals the latest graph. Subscribers whose
// buffer is full miss the graph.
func (h *Hub) PushGraph(g *domain.ClusterGraph) {
	if g == nil {
		return
	}
	sum := Fingerprint(g)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.latest != nil && sum == h.fingerprint {
		h.metrics.GraphPushed(true)
		h.logger.Debug("graph unchanged, push ignored", "cluster", g.ID)
		return
	}

	h.latest = g
	h.fingerprint = sum
	h.metrics.GraphPushed(false)

	for id, ch := range h.subscribers {
		select {
		case ch <- g:
		default:
			h.logger.Warn("graph subscriber is not keeping up, dropping graph", "subscriber", id, "cluster", g.ID)
		}
	}
}

// Latest returns the most recently published graph.
func (h *Hub) Latest() (*domain.ClusterGraph, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.latest != nil
}

// Subscribe returns a channel receiving every graph published from now on,
// preceded by the latest graph if there is one. The cancel function
// unregisters the channel and closes it.
func (h *Hub) Subscribe() (<-chan *domain.ClusterGraph, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan *domain.ClusterGraph, max(h.buffer, 1))
	if h.latest != nil {
		ch <- h.latest
	}
	h.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers returns the number of registered subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
