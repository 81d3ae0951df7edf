package hub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	h := NewHub()

	first := make(Client, 1)
	second := make(Client, 1)
	h.Subscribe(1, first)
	h.Subscribe(1, second)

	h.Broadcast(1, Event{Type: "notification", Payload: "hello"})

	for _, client := range []Client{first, second} {
		select {
		case message := <-client:
			assert.Contains(t, string(message), "notification")
		default:
			t.Fatal("expected a message on the client channel")
		}
	}
}

func TestHub_BroadcastIsScopedToUser(t *testing.T) {
	h := NewHub()

	client := make(Client, 1)
	h.Subscribe(2, client)

	h.Broadcast(1, Event{Type: "notification"})

	select {
	case <-client:
		t.Fatal("user 2 should not receive user 1's events")
	default:
	}
}

func TestHub_UnsubscribeClosesOnce(t *testing.T) {
	h := NewHub()

	client := make(Client, 1)
	h.Subscribe(1, client)

	h.Unsubscribe(1, client)
	// A second unsubscribe for the same client must not panic on double close.
	h.Unsubscribe(1, client)

	_, open := <-client
	require.False(t, open)

	// Broadcasting to a user with no streams is a no-op.
	h.Broadcast(1, Event{Type: "notification"})
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()

	full := make(Client) // unbuffered and never read
	h.Subscribe(1, full)

	done := make(chan struct{})
	go func() {
		h.Broadcast(1, Event{Type: "notification"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a slow client")
	}
}
