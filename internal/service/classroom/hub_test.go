package classroom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kino-avatar/kino/internal/model/classroom"
)

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	first := hub.Subscribe()
	second := hub.Subscribe()
	require.Equal(t, 2, hub.Len())

	hub.Broadcast(classroom.Event{Type: classroom.EventKeepalive})

	assert.Equal(t, classroom.EventKeepalive, (<-first.Events).Type)
	assert.Equal(t, classroom.EventKeepalive, (<-second.Events).Type)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub)

	_, open := <-sub.Events
	assert.False(t, open)
	assert.Zero(t, hub.Len())

	hub.Broadcast(classroom.Event{Type: classroom.EventKeepalive})
}

func TestHubDropsEventsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Broadcast(classroom.Event{Type: classroom.EventKeepalive})
	}

	assert.Len(t, sub.Events, subscriberBuffer)
}
