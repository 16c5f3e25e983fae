package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string
type MessageStatus string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"

	MessageStatusPending  MessageStatus = "pending"
	MessageStatusComplete MessageStatus = "complete"
	MessageStatusFailed   MessageStatus = "failed"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatMessage struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	Role       MessageRole
	Content    string
	Status     MessageStatus
	Confidence *float64
	Sources    []string
	CreatedAt  time.Time
}
