package contract

import (
	"context"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/repository/specification"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	Update(ctx context.Context, consultation *entity.Consultation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consultation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error)
}
