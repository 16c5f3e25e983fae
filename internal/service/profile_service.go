package service

import (
	"context"
	"time"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/specification"
	"legalbridge-be/internal/repository/unitofwork"

	pktNats "legalbridge-be/pkg/nats"

	"legalbridge-be/pkg/events"

	"github.com/google/uuid"
)

type IProfileService interface {
	// GetProfile returns the user's profile or a 404 AppError. "No profile
	// yet" is an expected state for fresh accounts, not a failure.
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	// CompleteProfile is the first save after role selection. defaultBio is
	// chosen by the caller, one per role flow.
	CompleteProfile(ctx context.Context, userID uuid.UUID, userType entity.UserType, defaultBio string, req *dto.CompleteProfileRequest) (*dto.ProfileResponse, error)
	SelectUserType(ctx context.Context, userID uuid.UUID, req *dto.SelectUserTypeRequest) (*dto.SelectUserTypeResponse, error)
}

type profileService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionBus     *SessionBus
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewProfileService(
	uowFactory unitofwork.RepositoryFactory,
	sessionBus *SessionBus,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		uowFactory:     uowFactory,
		sessionBus:     sessionBus,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *profileService) toResponse(profile *entity.Profile, email string) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:         profile.Id,
		UserId:     profile.UserId,
		FullName:   profile.FullName,
		Email:      email,
		Phone:      profile.Phone,
		Bio:        profile.Bio,
		UserType:   string(profile.UserType),
		Specialty:  profile.Specialty,
		Experience: profile.Experience,
		HourlyRate: profile.HourlyRate,
		Location:   profile.Location,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("Profile not found")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	email := ""
	if user != nil {
		email = user.Email
	}

	return s.toResponse(profile, email), nil
}

func (s *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}
	if user.UserType == entity.UserTypeUnset {
		return nil, serverutils.NewDataError(400, "Select an account type before saving a profile", nil)
	}

	profile := &entity.Profile{
		Id:         uuid.New(),
		UserId:     userID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Bio:        req.Bio,
		UserType:   user.UserType,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		HourlyRate: req.HourlyRate,
		Location:   req.Location,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// Single-statement upsert. On failure the stored profile is untouched
	// and the caller keeps its pending edits.
	if err := uow.ProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, serverutils.NewDataError(500, "Failed to save profile", err)
	}

	return s.toResponse(profile, user.Email), nil
}

func (s *profileService) CompleteProfile(ctx context.Context, userID uuid.UUID, userType entity.UserType, defaultBio string, req *dto.CompleteProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	bio := req.Bio
	if bio == "" {
		bio = defaultBio
	}

	profile := &entity.Profile{
		Id:         uuid.New(),
		UserId:     userID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Bio:        bio,
		UserType:   userType,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		HourlyRate: req.HourlyRate,
		Location:   req.Location,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, serverutils.NewDataError(500, "Failed to save profile", err)
	}
	if user.UserType != userType {
		if err := uow.UserRepository().UpdateUserType(ctx, userID, string(userType)); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if user.UserType != userType {
		s.publishUserUpdated(ctx, userID, string(userType))
	}

	return s.toResponse(profile, user.Email), nil
}

func (s *profileService) SelectUserType(ctx context.Context, userID uuid.UUID, req *dto.SelectUserTypeRequest) (*dto.SelectUserTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	userType := entity.UserType(req.UserType)
	if err := uow.UserRepository().UpdateUserType(ctx, userID, req.UserType); err != nil {
		return nil, err
	}

	s.publishUserUpdated(ctx, userID, req.UserType)

	user.UserType = userType
	return &dto.SelectUserTypeResponse{
		UserType: req.UserType,
		Redirect: user.HomeRoute(),
	}, nil
}

func (s *profileService) publishUserUpdated(ctx context.Context, userID uuid.UUID, userType string) {
	if err := s.sessionBus.PublishUserUpdated(userID, userType); err != nil {
		s.logger.Warn("ProfileService", "Failed to publish user update", map[string]interface{}{"error": err.Error()})
	}
	if s.eventPublisher != nil {
		event := events.NewSessionEvent(events.TypeUserUpdated, userID.String(), "")
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("ProfileService", "Failed to publish USER_UPDATED event", map[string]interface{}{"error": err.Error()})
		}
	}
}
