package contract

import (
	"context"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}
