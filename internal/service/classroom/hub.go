package classroom

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/kino-avatar/kino/internal/model/classroom"
)

const subscriberBuffer = 16

// Subscription is one live listener on the event feed.
type Subscription struct {
	ID     string
	Events <-chan classroom.Event

	events chan classroom.Event
}

// Hub fans classroom events out to every subscriber.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscription
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]*Subscription)}
}

// Subscribe registers a listener. Callers must Unsubscribe when done.
func (h *Hub) Subscribe() *Subscription {
	events := make(chan classroom.Event, subscriberBuffer)
	sub := &Subscription{ID: uuid.NewString(), Events: events, events: events}

	h.mu.Lock()
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()

	return sub
}

// Unsubscribe removes the listener and closes its channel. Safe to call twice.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub.ID]; !ok {
		return
	}
	delete(h.subscribers, sub.ID)
	close(sub.events)
}

// Broadcast delivers event to every subscriber without blocking; a subscriber
// whose buffer is full misses the event.
func (h *Hub) Broadcast(event classroom.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, sub := range h.subscribers {
		select {
		case sub.events <- event:
		default:
			log.Printf("[classroom] subscriber=%s is slow, dropped %s event", id, event.Type)
		}
	}
}

// Len reports the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
