package implementation

import (
	"context"
	"errors"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/mapper"
	"legalbridge-be/internal/model"
	"legalbridge-be/internal/repository/contract"
	"legalbridge-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.Profile) error {
	modelProfile := r.mapper.ToModel(profile)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "phone", "bio", "user_type",
			"specialty", "experience", "hourly_rate", "location", "updated_at",
		}),
	}).Create(modelProfile).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(modelProfile)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var modelProfile model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelProfile), nil
}

func (r *ProfileRepositoryImpl) Delete(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Profile{}).Error
}
