package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "SIGNED_OUT").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Session lifecycle event codes. These travel both over the in-process bus
// (feeding the session cache) and over NATS (feeding notification fan-out).
const (
	TypeSignedIn    = "SIGNED_IN"
	TypeSignedOut   = "SIGNED_OUT"
	TypeUserUpdated = "USER_UPDATED"

	TypeConsultationBooked = "CONSULTATION_BOOKED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSessionEvent builds the canonical payload for session lifecycle events.
// Redirect carries the navigation target a client should follow on receipt:
// "/" for sign-out, empty for in-place updates.
func NewSessionEvent(eventType, userID, redirect string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"user_id":  userID,
			"redirect": redirect,
		},
		OccurredAt: time.Now(),
	}
}
