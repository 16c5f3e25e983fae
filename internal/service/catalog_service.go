package service

import (
	"context"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/pkg/catalog"
)

type ICatalogService interface {
	ListTemplates(ctx context.Context, category, query string) (*dto.TemplateListResponse, error)
	GetTemplate(ctx context.Context, id int) (*dto.TemplateResponse, error)
	DownloadTemplate(ctx context.Context, id int) (filename string, content []byte, err error)
	ListLawyers(ctx context.Context, specialty, query string) (*dto.LawyerListResponse, error)
	GetLawyer(ctx context.Context, id int) (*dto.LawyerResponse, error)
}

type catalogService struct{}

func NewCatalogService() ICatalogService {
	return &catalogService{}
}

func templateToDTO(t catalog.Template) dto.TemplateResponse {
	return dto.TemplateResponse{
		Id:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Rating:      t.Rating,
		Downloads:   t.Downloads,
		Premium:     t.Premium,
	}
}

func lawyerToDTO(l catalog.Lawyer) dto.LawyerResponse {
	return dto.LawyerResponse{
		Id:               l.ID,
		Name:             l.Name,
		Specialty:        l.Specialty,
		Experience:       l.Experience,
		Rating:           l.Rating,
		Reviews:          l.Reviews,
		HourlyRate:       l.HourlyRate,
		HourlyRateAmount: l.HourlyRateAmount,
		Location:         l.Location,
		Languages:        l.Languages,
		Availability:     l.Availability,
		Verified:         l.Verified,
		TopRated:         l.TopRated,
		Description:      l.Description,
	}
}

func (s *catalogService) ListTemplates(ctx context.Context, category, query string) (*dto.TemplateListResponse, error) {
	filtered := catalog.FilterTemplates(catalog.Templates(), category, query)

	templates := make([]dto.TemplateResponse, len(filtered))
	for i, t := range filtered {
		templates[i] = templateToDTO(t)
	}

	return &dto.TemplateListResponse{
		Templates:  templates,
		Categories: catalog.TemplateCategories,
		Total:      len(templates),
	}, nil
}

func (s *catalogService) GetTemplate(ctx context.Context, id int) (*dto.TemplateResponse, error) {
	template, found := catalog.TemplateByID(id)
	if !found {
		return nil, serverutils.NewNotFoundError("Template not found")
	}
	res := templateToDTO(template)
	return &res, nil
}

func (s *catalogService) DownloadTemplate(ctx context.Context, id int) (string, []byte, error) {
	template, found := catalog.TemplateByID(id)
	if !found {
		return "", nil, serverutils.NewNotFoundError("Template not found")
	}
	return catalog.DownloadFilename(template.Name), []byte(template.Content), nil
}

func (s *catalogService) ListLawyers(ctx context.Context, specialty, query string) (*dto.LawyerListResponse, error) {
	filtered := catalog.FilterLawyers(catalog.Lawyers(), specialty, query)

	lawyers := make([]dto.LawyerResponse, len(filtered))
	for i, l := range filtered {
		lawyers[i] = lawyerToDTO(l)
	}

	return &dto.LawyerListResponse{
		Lawyers:     lawyers,
		Specialties: catalog.LawyerSpecialties,
		Total:       len(lawyers),
	}, nil
}

func (s *catalogService) GetLawyer(ctx context.Context, id int) (*dto.LawyerResponse, error) {
	lawyer, found := catalog.LawyerByID(id)
	if !found {
		return nil, serverutils.NewNotFoundError("Lawyer not found")
	}
	res := lawyerToDTO(lawyer)
	return &res, nil
}
