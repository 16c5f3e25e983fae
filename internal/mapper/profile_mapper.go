package mapper

import (
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:         p.Id,
		UserId:     p.UserId,
		FullName:   p.FullName,
		Phone:      p.Phone,
		Bio:        p.Bio,
		UserType:   entity.UserType(p.UserType),
		Specialty:  p.Specialty,
		Experience: p.Experience,
		HourlyRate: p.HourlyRate,
		Location:   p.Location,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:         p.Id,
		UserId:     p.UserId,
		FullName:   p.FullName,
		Phone:      p.Phone,
		Bio:        p.Bio,
		UserType:   string(p.UserType),
		Specialty:  p.Specialty,
		Experience: p.Experience,
		HourlyRate: p.HourlyRate,
		Location:   p.Location,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
