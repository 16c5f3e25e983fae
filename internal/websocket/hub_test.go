package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func waitForClientCount(t *testing.T, h *Hub, userID uuid.UUID, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.RLock()
		got := len(h.clients[userID])
		h.mu.RUnlock()
		if got == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count for %s never reached %d", userID, want)
}

func TestHubSendReachesEveryConnection(t *testing.T) {
	hub := NewHub(nil, noopLogger{})
	go hub.Run()

	userID := uuid.New()
	first := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	second := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- first
	hub.register <- second
	waitForClientCount(t, hub, userID, 2)

	hub.Send(userID, "SIGNED_OUT", map[string]interface{}{"redirect": "/"})

	for _, client := range []*Client{first, second} {
		select {
		case raw := <-client.Send:
			assert.Contains(t, string(raw), "SIGNED_OUT")
		case <-time.After(time.Second):
			t.Fatal("connection never received the event")
		}
	}
}

func TestHubDropsSlowClientWithoutPanic(t *testing.T) {
	hub := NewHub(nil, noopLogger{})
	go hub.Run()

	userID := uuid.New()
	slow := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	healthy := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 8)}
	hub.register <- slow
	hub.register <- healthy
	waitForClientCount(t, hub, userID, 2)

	// The first event fills the slow client's buffer; the next two both find
	// it full. Neither delivery may close the channel twice.
	hub.Send(userID, "USER_UPDATED", nil)
	hub.Send(userID, "USER_UPDATED", nil)
	hub.Send(userID, "USER_UPDATED", nil)

	waitForClientCount(t, hub, userID, 1)

	// The slow client's channel was closed by the hub, exactly once.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-slow.Send:
			if !ok {
				goto closed
			}
		case <-deadline:
			t.Fatal("slow client's channel was never closed")
		}
	}
closed:

	// The healthy client saw every event.
	require.NotEmpty(t, healthy.Send)
}
