package service

import (
	"context"
	"encoding/json"
	"time"

	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/repository/memory"
	internalWS "legalbridge-be/internal/websocket"
	"legalbridge-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const SessionTopic = "session_events"

// sessionEventPayload is the wire form of a session lifecycle event on the
// in-process bus.
type sessionEventPayload struct {
	Type      string    `json:"type"`
	TokenID   string    `json:"token_id,omitempty"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	UserType  string    `json:"user_type,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Redirect  string    `json:"redirect,omitempty"`
}

// SessionBus carries session lifecycle events. The session cache is fed only
// through this bus: services publish, the single consumer applies. That keeps
// one writer and makes the cache contents reproducible from the event stream.
type SessionBus struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewSessionBus(pubSub *gochannel.GoChannel, log logger.ILogger) *SessionBus {
	return &SessionBus{
		pubSub: pubSub,
		logger: log,
	}
}

func (b *SessionBus) publish(payload sessionEventPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), raw)
	return b.pubSub.Publish(SessionTopic, msg)
}

func (b *SessionBus) PublishSignIn(session *memory.Session) error {
	return b.publish(sessionEventPayload{
		Type:      events.TypeSignedIn,
		TokenID:   session.TokenID,
		UserID:    session.UserID,
		Email:     session.Email,
		FullName:  session.FullName,
		UserType:  session.UserType,
		ExpiresAt: session.ExpiresAt,
	})
}

// PublishSignOut drops every session of the user. Clients listening on the
// session socket are told to navigate home.
func (b *SessionBus) PublishSignOut(userID uuid.UUID) error {
	return b.publish(sessionEventPayload{
		Type:     events.TypeSignedOut,
		UserID:   userID,
		Redirect: "/",
	})
}

func (b *SessionBus) PublishUserUpdated(userID uuid.UUID, userType string) error {
	return b.publish(sessionEventPayload{
		Type:     events.TypeUserUpdated,
		UserID:   userID,
		UserType: userType,
	})
}

// Run is the single consumer. It must be started before the HTTP listener so
// no request can observe the cache ahead of the subscription.
func (b *SessionBus) Run(ctx context.Context, cache *memory.SessionCache, hub *internalWS.Hub) error {
	messages, err := b.pubSub.Subscribe(ctx, SessionTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			b.processMessage(cache, hub, msg)
		}
	}()

	return nil
}

func (b *SessionBus) processMessage(cache *memory.SessionCache, hub *internalWS.Hub, msg *message.Message) {
	var payload sessionEventPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		b.logger.Error("SessionBus", "Failed to unmarshal session event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed, never retriable
		return
	}

	switch payload.Type {
	case events.TypeSignedIn:
		cache.Put(&memory.Session{
			TokenID:   payload.TokenID,
			UserID:    payload.UserID,
			Email:     payload.Email,
			FullName:  payload.FullName,
			UserType:  payload.UserType,
			ExpiresAt: payload.ExpiresAt,
		})
		if hub != nil {
			hub.Send(payload.UserID, events.TypeSignedIn, map[string]interface{}{
				"user_id": payload.UserID,
			})
		}

	case events.TypeSignedOut:
		cache.RevokeUser(payload.UserID)
		if hub != nil {
			hub.Send(payload.UserID, events.TypeSignedOut, map[string]interface{}{
				"user_id":  payload.UserID,
				"redirect": payload.Redirect,
			})
		}

	case events.TypeUserUpdated:
		cache.UpdateUserType(payload.UserID, payload.UserType)
		if hub != nil {
			hub.Send(payload.UserID, events.TypeUserUpdated, map[string]interface{}{
				"user_id":   payload.UserID,
				"user_type": payload.UserType,
			})
		}

	default:
		b.logger.Warn("SessionBus", "Unknown session event type", map[string]interface{}{"type": payload.Type})
	}

	msg.Ack()
}
