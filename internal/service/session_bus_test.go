package service

import (
	"context"
	"testing"
	"time"

	"legalbridge-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

func newTestBus(t *testing.T) (*SessionBus, *memory.SessionCache, context.CancelFunc) {
	t.Helper()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	bus := NewSessionBus(pubSub, noopLogger{})
	cache := memory.NewSessionCache()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, bus.Run(ctx, cache, nil))

	return bus, cache, cancel
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSessionBusSignInFillsCache(t *testing.T) {
	bus, cache, cancel := newTestBus(t)
	defer cancel()

	session := &memory.Session{
		TokenID:   uuid.NewString(),
		UserID:    uuid.New(),
		Email:     "user@example.com",
		FullName:  "Test User",
		UserType:  "client",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	// The cache only ever learns about sessions through the bus.
	require.Equal(t, 0, cache.Len())
	require.NoError(t, bus.PublishSignIn(session))

	waitFor(t, func() bool {
		_, found := cache.Get(session.TokenID)
		return found
	})

	cached, found := cache.Get(session.TokenID)
	require.True(t, found)
	assert.Equal(t, session.UserID, cached.UserID)
	assert.Equal(t, "client", cached.UserType)
}

func TestSessionBusSignOutRevokesAllSessions(t *testing.T) {
	bus, cache, cancel := newTestBus(t)
	defer cancel()

	userID := uuid.New()
	first := &memory.Session{TokenID: uuid.NewString(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	second := &memory.Session{TokenID: uuid.NewString(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, bus.PublishSignIn(first))
	require.NoError(t, bus.PublishSignIn(second))
	waitFor(t, func() bool { return cache.Len() == 2 })

	require.NoError(t, bus.PublishSignOut(userID))
	waitFor(t, func() bool { return cache.Len() == 0 })

	_, found := cache.Get(first.TokenID)
	assert.False(t, found)
	_, found = cache.Get(second.TokenID)
	assert.False(t, found)
}

func TestSessionBusUserUpdatedRewritesRole(t *testing.T) {
	bus, cache, cancel := newTestBus(t)
	defer cancel()

	session := &memory.Session{
		TokenID:   uuid.NewString(),
		UserID:    uuid.New(),
		UserType:  "",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, bus.PublishSignIn(session))
	waitFor(t, func() bool {
		_, found := cache.Get(session.TokenID)
		return found
	})

	require.NoError(t, bus.PublishUserUpdated(session.UserID, "lawyer"))
	waitFor(t, func() bool {
		cached, found := cache.Get(session.TokenID)
		return found && cached.UserType == "lawyer"
	})
}
