package mapper

import (
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/model"
)

type ConsultationMapper struct{}

func NewConsultationMapper() *ConsultationMapper {
	return &ConsultationMapper{}
}

func (m *ConsultationMapper) ToEntity(c *model.Consultation) *entity.Consultation {
	if c == nil {
		return nil
	}
	return &entity.Consultation{
		Id:            c.Id,
		UserId:        c.UserId,
		LawyerId:      c.LawyerId,
		LawyerName:    c.LawyerName,
		ScheduledAt:   c.ScheduledAt,
		DurationMins:  c.DurationMins,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		PaymentStatus: entity.PaymentStatus(c.PaymentStatus),
		Status:        entity.ConsultationStatus(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *ConsultationMapper) ToModel(c *entity.Consultation) *model.Consultation {
	if c == nil {
		return nil
	}
	return &model.Consultation{
		Id:            c.Id,
		UserId:        c.UserId,
		LawyerId:      c.LawyerId,
		LawyerName:    c.LawyerName,
		ScheduledAt:   c.ScheduledAt,
		DurationMins:  c.DurationMins,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		PaymentStatus: string(c.PaymentStatus),
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *ConsultationMapper) ToEntities(consultations []*model.Consultation) []*entity.Consultation {
	entities := make([]*entity.Consultation, len(consultations))
	for i, c := range consultations {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
