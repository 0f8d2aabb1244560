package realtime

import (
	"sync"

	"handyman-orders/models"
)

const subscriberBuffer = 16

// Hub owns the set of connected subscribers. Publish never waits on a slow
// subscriber: when a subscriber's buffer is full the event is dropped for that
// subscriber only.
type Hub struct {
	mu   sync.Mutex
	subs map[chan models.Order]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan models.Order]struct{})}
}

// Subscribe registers a new subscriber and returns its event channel together
// with a cancel function. Cancel is idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan models.Order, func()) {
	ch := make(chan models.Order, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish delivers the snapshot to every currently-connected subscriber.
// Sends happen under the lock so a concurrent cancel cannot close a channel
// mid-delivery; sends are non-blocking so the lock is never held long.
func (h *Hub) Publish(order models.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- order:
		default:
		}
	}
}
