package implementation

import (
	"context"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/mapper"
	"legalbridge-be/internal/model"
	"legalbridge-be/internal/repository/contract"
	"legalbridge-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entity.Notification) error {
	modelNotification := r.mapper.ToModel(notification)
	if err := r.db.WithContext(ctx).Create(modelNotification).Error; err != nil {
		return err
	}
	*notification = *r.mapper.ToEntity(modelNotification)
	return nil
}

func (r *NotificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	var modelNotifications []*model.Notification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelNotifications).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelNotifications), nil
}

// MarkRead is scoped to the owner so one user cannot touch another's rows.
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true).Error
}
