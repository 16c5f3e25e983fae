package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/mapper"
	"legalbridge-be/internal/model"
	"legalbridge-be/internal/repository/contract"
	"legalbridge-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	modelMessage := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(modelMessage).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(modelMessage)
	return nil
}

func (r *ChatMessageRepositoryImpl) UpdateByID(ctx context.Context, message *entity.ChatMessage) error {
	updates := map[string]interface{}{
		"content":    message.Content,
		"status":     string(message.Status),
		"confidence": message.Confidence,
	}
	if message.Sources != nil {
		raw, err := json.Marshal(message.Sources)
		if err != nil {
			return err
		}
		updates["sources"] = raw
	}
	return r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("id = ?", message.Id).
		Updates(updates).Error
}

func (r *ChatMessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	var modelMessage model.ChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelMessage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.MessageToEntity(&modelMessage), nil
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var modelMessages []*model.ChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMessages).Error; err != nil {
		return nil, err
	}

	return r.mapper.MessagesToEntities(modelMessages), nil
}

func (r *ChatMessageRepositoryImpl) DeleteBySession(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.ChatMessage{}).Error
}
