package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/specification"
	"legalbridge-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
}

type oauthService struct {
	uowFactory  unitofwork.RepositoryFactory
	authService IAuthService
	googleConf  *oauth2.Config
	logger      logger.ILogger
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, authService IAuthService, log logger.ILogger) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory:  uowFactory,
		authService: authService,
		googleConf:  conf,
		logger:      log,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", serverutils.NewDataError(400, "Unsupported provider", nil)
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", serverutils.NewDataError(500, "Failed to generate state token", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	if provider != "google" {
		return nil, serverutils.NewDataError(400, "Unsupported provider", nil)
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, serverutils.NewAuthError(fmt.Sprintf("Code exchange failed: %v", err))
	}

	userInfoURL := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken
	resp, err := http.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %w", err)
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		newUser := &entity.User{
			Id:            uuid.New(),
			Email:         googleUser.Email,
			FullName:      googleUser.Name,
			PasswordHash:  nil,
			UserType:      entity.UserTypeUnset,
			Status:        entity.UserStatusActive,
			EmailVerified: true,
			AvatarURL:     &googleUser.Picture,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		if err := uow.UserRepository().Create(ctx, newUser); err != nil {
			uow.Rollback()
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		user = newUser
		s.logger.Info("OAuthService", "New user created via Google", map[string]interface{}{"user_id": user.Id})
	}

	// Sync provider info and avatar
	existing, err := uow.UserRepository().FindUserProvider(ctx, "google", googleUser.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		userProvider := &entity.UserProvider{
			Id:             uuid.New(),
			UserId:         user.Id,
			ProviderName:   "google",
			ProviderUserId: googleUser.ID,
			AvatarURL:      googleUser.Picture,
			CreatedAt:      time.Now(),
		}
		if err := uow.UserRepository().SaveUserProvider(ctx, userProvider); err != nil {
			return nil, fmt.Errorf("failed to save provider info: %w", err)
		}
	}

	// Session establishment is shared with password login so the cache and
	// redirect rules behave the same regardless of how the user arrived.
	return s.authService.EstablishSession(ctx, user, "", "oauth-google")
}
