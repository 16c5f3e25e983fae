package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestSession(tokenID string, userID uuid.UUID, ttl time.Duration) *Session {
	return &Session{
		TokenID:   tokenID,
		UserID:    userID,
		Email:     "test@example.com",
		FullName:  "Test User",
		UserType:  "client",
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestSessionCache_PutAndGet(t *testing.T) {
	cache := NewSessionCache()
	userID := uuid.New()

	cache.Put(newTestSession("token-1", userID, time.Hour))

	session, found := cache.Get("token-1")
	assert.True(t, found)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "client", session.UserType)
}

func TestSessionCache_GetMissing(t *testing.T) {
	cache := NewSessionCache()

	session, found := cache.Get("nope")
	assert.False(t, found)
	assert.Nil(t, session)
}

func TestSessionCache_ExpiredSessionNotReturned(t *testing.T) {
	cache := NewSessionCache()

	cache.Put(newTestSession("expired", uuid.New(), -time.Minute))

	_, found := cache.Get("expired")
	assert.False(t, found)
}

func TestSessionCache_Revoke(t *testing.T) {
	cache := NewSessionCache()
	cache.Put(newTestSession("token-1", uuid.New(), time.Hour))

	cache.Revoke("token-1")

	_, found := cache.Get("token-1")
	assert.False(t, found)
}

func TestSessionCache_RevokeUserDropsAllSessions(t *testing.T) {
	cache := NewSessionCache()
	userID := uuid.New()
	otherID := uuid.New()

	cache.Put(newTestSession("a", userID, time.Hour))
	cache.Put(newTestSession("b", userID, time.Hour))
	cache.Put(newTestSession("c", otherID, time.Hour))

	cache.RevokeUser(userID)

	_, foundA := cache.Get("a")
	_, foundB := cache.Get("b")
	_, foundC := cache.Get("c")
	assert.False(t, foundA)
	assert.False(t, foundB)
	assert.True(t, foundC)
}
