package contract

import (
	"context"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	// Upsert inserts or replaces the profile row keyed by user id. The write
	// is a single statement so a failure leaves the previous row intact.
	Upsert(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	Delete(ctx context.Context, userId uuid.UUID) error
}
