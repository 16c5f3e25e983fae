package mapper

import (
	"encoding/json"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ChatMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ChatMapper) SessionsToEntities(sessions []*model.ChatSession) []*entity.ChatSession {
	entities := make([]*entity.ChatSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.SessionToEntity(s)
	}
	return entities
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	var sources []string
	if len(msg.Sources) > 0 {
		_ = json.Unmarshal(msg.Sources, &sources)
	}
	return &entity.ChatMessage{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		Role:       entity.MessageRole(msg.Role),
		Content:    msg.Content,
		Status:     entity.MessageStatus(msg.Status),
		Confidence: msg.Confidence,
		Sources:    sources,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	var sources datatypes.JSON
	if msg.Sources != nil {
		raw, err := json.Marshal(msg.Sources)
		if err == nil {
			sources = raw
		}
	}
	return &model.ChatMessage{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Status:     string(msg.Status),
		Confidence: msg.Confidence,
		Sources:    sources,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(msgs []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
