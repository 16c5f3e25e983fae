package contract

import (
	"context"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// UpdateByID replaces content, status, confidence and sources of the row
	// with the given id. Updates are always keyed by id, never by content.
	UpdateByID(ctx context.Context, message *entity.ChatMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	DeleteBySession(ctx context.Context, sessionId uuid.UUID) error
}
