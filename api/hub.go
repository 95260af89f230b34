package api

import (
	"sync"

	"github.com/gridsnake/engine/rules"
)

// subscriberBuffer is how many frames a slow spectator may lag behind before
// frames are dropped for it.
const subscriberBuffer = 8

// Hub fans frames out to spectators and remembers the latest one. It
// satisfies worker.Sink.
type Hub struct {
	sync.RWMutex
	latest *rules.Frame
	subs   map[chan *rules.Frame]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: map[chan *rules.Frame]struct{}{}}
}

// Publish records frame as the latest and offers it to every subscriber
// without blocking.
func (h *Hub) Publish(frame *rules.Frame) error {
	h.Lock()
	defer h.Unlock()

	h.latest = frame
	for c := range h.subs {
		select {
		case c <- frame:
		default:
			// subscriber is behind, drop its oldest frame
			select {
			case <-c:
			default:
			}
			c <- frame
		}
	}
	return nil
}

// Latest returns the most recent frame, or nil before the first publish.
func (h *Hub) Latest() *rules.Frame {
	h.RLock()
	defer h.RUnlock()

	return h.latest
}

// Subscribe registers a new subscriber. The returned func unregisters it and
// closes the channel.
func (h *Hub) Subscribe() (<-chan *rules.Frame, func()) {
	c := make(chan *rules.Frame, subscriberBuffer)

	h.Lock()
	h.subs[c] = struct{}{}
	h.Unlock()

	var once sync.Once
	return c, func() {
		once.Do(func() {
			h.Lock()
			delete(h.subs, c)
			h.Unlock()
			close(c)
		})
	}
}

func (h *Hub) count() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.subs)
}
