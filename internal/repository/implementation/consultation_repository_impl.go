package implementation

import (
	"context"
	"errors"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/mapper"
	"legalbridge-be/internal/model"
	"legalbridge-be/internal/repository/contract"
	"legalbridge-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ConsultationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConsultationMapper
}

func NewConsultationRepository(db *gorm.DB) contract.ConsultationRepository {
	return &ConsultationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConsultationMapper(),
	}
}

func (r *ConsultationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConsultationRepositoryImpl) Create(ctx context.Context, consultation *entity.Consultation) error {
	modelConsultation := r.mapper.ToModel(consultation)
	if err := r.db.WithContext(ctx).Create(modelConsultation).Error; err != nil {
		return err
	}
	*consultation = *r.mapper.ToEntity(modelConsultation)
	return nil
}

func (r *ConsultationRepositoryImpl) Update(ctx context.Context, consultation *entity.Consultation) error {
	modelConsultation := r.mapper.ToModel(consultation)
	if err := r.db.WithContext(ctx).Save(modelConsultation).Error; err != nil {
		return err
	}
	*consultation = *r.mapper.ToEntity(modelConsultation)
	return nil
}

func (r *ConsultationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consultation, error) {
	var modelConsultation model.Consultation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelConsultation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelConsultation), nil
}

func (r *ConsultationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error) {
	var modelConsultations []*model.Consultation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelConsultations).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelConsultations), nil
}
