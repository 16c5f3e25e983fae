package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Session is the cached view of an authenticated principal, keyed by the
// token id (jti) of the access token that created it.
type Session struct {
	TokenID   string
	UserID    uuid.UUID
	Email     string
	FullName  string
	UserType  string
	ExpiresAt time.Time
}

// SessionCache is the single process-wide session store. It is populated and
// invalidated exclusively through the session event bus; request handlers
// only ever read from it.
type SessionCache struct {
	cache *cache.Cache
}

func NewSessionCache() *SessionCache {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionCache{
		cache: c,
	}
}

func (r *SessionCache) Put(session *Session) {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}
	r.cache.Set(session.TokenID, session, ttl)
}

func (r *SessionCache) Get(tokenID string) (*Session, bool) {
	x, found := r.cache.Get(tokenID)
	if !found {
		return nil, false
	}
	session := x.(*Session)
	if time.Now().After(session.ExpiresAt) {
		r.cache.Delete(tokenID)
		return nil, false
	}
	return session, true
}

func (r *SessionCache) Revoke(tokenID string) {
	r.cache.Delete(tokenID)
}

// RevokeUser drops every cached session belonging to the user. Used on
// sign-out and password reset so stale tokens stop resolving immediately.
func (r *SessionCache) RevokeUser(userID uuid.UUID) {
	for key, item := range r.cache.Items() {
		if session, ok := item.Object.(*Session); ok && session.UserID == userID {
			r.cache.Delete(key)
		}
	}
}

// UpdateUserType rewrites the cached role on every live session of the user.
func (r *SessionCache) UpdateUserType(userID uuid.UUID, userType string) {
	for key, item := range r.cache.Items() {
		if session, ok := item.Object.(*Session); ok && session.UserID == userID {
			updated := *session
			updated.UserType = userType
			r.cache.Set(key, &updated, time.Until(updated.ExpiresAt))
		}
	}
}

func (r *SessionCache) Len() int {
	return r.cache.ItemCount()
}
