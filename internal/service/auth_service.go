package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/pkg/mailer"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/memory"
	"legalbridge-be/internal/repository/specification"
	"legalbridge-be/internal/repository/unitofwork"

	"legalbridge-be/pkg/events"
	pktNats "legalbridge-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
	GetSession(ctx context.Context, session *memory.Session) (*dto.SessionResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	GetMetadata(ctx context.Context, userID uuid.UUID) (*dto.UserMetadataResponse, error)
	UpdateMetadata(ctx context.Context, userID uuid.UUID, req *dto.UserMetadataRequest) error

	// EstablishSession issues tokens for an already-authenticated user. Used
	// by the OAuth callback after provider verification.
	EstablishSession(ctx context.Context, user *entity.User, ipAddress, userAgent string) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	sessionBus     *SessionBus
	jwtSecret      string
	logger         logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	sessionBus *SessionBus,
	jwtSecret string,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		sessionBus:     sessionBus,
		jwtSecret:      jwtSecret,
		logger:         log,
	}
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, serverutils.NewConflictError("Email already registered")
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		FullName:      req.FullName,
		PasswordHash:  &hashStr,
		UserType:      entity.UserType(req.UserType),
		Status:        entity.UserStatusPending,
		EmailVerified: false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// 3. Save user + verification token in one transaction
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	verifyToken, err := generateToken()
	if err != nil {
		return nil, err
	}

	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     verifyToken,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateEmailVerificationToken(ctx, verificationToken); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendVerificationToken(user.Email, verifyToken); emailErr != nil {
			s.logger.Error("AuthService", "Failed to send verification email", map[string]interface{}{
				"email": user.Email,
				"error": emailErr.Error(),
			})
		}
	}()

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.UserRepository().FindEmailVerificationToken(ctx,
		specification.ByToken{Token: req.Token},
	)
	if err != nil {
		return err
	}
	if tokenEntity == nil {
		return serverutils.NewDataError(400, "Invalid verification token", nil)
	}
	if time.Now().After(tokenEntity.ExpiresAt) {
		return serverutils.NewDataError(400, "Verification token expired", nil)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: tokenEntity.UserId})
	if err != nil || user == nil {
		return serverutils.NewDataError(400, "Invalid verification token", nil)
	}
	if user.Status == entity.UserStatusActive {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().ActivateUser(ctx, user.Id); err != nil {
		return err
	}
	_ = uow.UserRepository().DeleteEmailVerificationToken(ctx, tokenEntity.Id)

	return uow.Commit()
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Resolve user
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, serverutils.NewAuthError("Invalid credentials")
	}

	// 2. Might be OAuth only
	if user.PasswordHash == nil {
		return nil, serverutils.NewAuthError("Account uses social sign-in")
	}

	// 3. Email must be verified before first login
	if user.Status == entity.UserStatusPending || !user.EmailVerified {
		return nil, serverutils.NewAuthError("Email not verified. Please check your inbox")
	}

	// 4. Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewAuthError("Invalid credentials")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, serverutils.NewAuthError("Account is blocked")
	}

	return s.establishSession(ctx, uow, user, ipAddress, userAgent)
}

func (s *authService) EstablishSession(ctx context.Context, user *entity.User, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.establishSession(ctx, uow, user, ipAddress, userAgent)
}

// establishSession issues tokens and publishes SIGNED_IN. Shared by password
// login, refresh and OAuth.
func (s *authService) establishSession(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	signedToken, claims, err := serverutils.IssueAccessToken(s.jwtSecret, user.Id, accessTokenTTL)
	if err != nil {
		return nil, err
	}

	rawRefreshToken, err := generateToken()
	if err != nil {
		return nil, err
	}

	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		Revoked:   false,
		CreatedAt: time.Now(),
		IpAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
		return nil, err
	}

	// The cache learns about this session only through the bus.
	session := &memory.Session{
		TokenID:   claims.TokenID,
		UserID:    user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		UserType:  string(user.UserType),
		ExpiresAt: claims.Expires,
	}
	if err := s.sessionBus.PublishSignIn(session); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.NewSessionEvent(events.TypeSignedIn, user.Id.String(), "")
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("AuthService", "Failed to publish SIGNED_IN event", map[string]interface{}{"error": err.Error()})
		}
	}

	avatar := ""
	if user.AvatarURL != nil {
		avatar = *user.AvatarURL
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		ExpiresAt:    claims.Expires,
		Redirect:     user.HomeRoute(),
		User: dto.SessionUser{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			UserType:  string(user.UserType),
			AvatarURL: avatar,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if refreshToken != "" {
		if err := uow.UserRepository().RevokeRefreshToken(ctx, hashToken(refreshToken)); err != nil {
			return err
		}
	} else {
		if err := uow.UserRepository().RevokeAllRefreshTokens(ctx, userID); err != nil {
			return err
		}
	}

	// Sign-out fans out with the home redirect so every open tab navigates.
	if err := s.sessionBus.PublishSignOut(userID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := events.NewSessionEvent(events.TypeSignedOut, userID.String(), "/")
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("AuthService", "Failed to publish SIGNED_OUT event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func (s *authService) GetSession(ctx context.Context, session *memory.Session) (*dto.SessionResponse, error) {
	if session == nil {
		return nil, serverutils.NewSessionAbsentError()
	}
	return &dto.SessionResponse{
		User: dto.SessionUser{
			Id:       session.UserID,
			Email:    session.Email,
			FullName: session.FullName,
			UserType: session.UserType,
		},
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.UserRepository().FindRefreshToken(ctx,
		specification.ByTokenHash{Hash: hashToken(req.RefreshToken)},
	)
	if err != nil {
		return nil, err
	}
	if tokenEntity == nil || tokenEntity.Revoked || time.Now().After(tokenEntity.ExpiresAt) {
		return nil, serverutils.NewAuthError("Invalid refresh token")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: tokenEntity.UserId})
	if err != nil || user == nil {
		return nil, serverutils.NewAuthError("Invalid refresh token")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, serverutils.NewAuthError("Account is blocked")
	}

	// Rotate: the old token dies with the new session.
	if err := uow.UserRepository().RevokeRefreshToken(ctx, tokenEntity.TokenHash); err != nil {
		return nil, err
	}

	return s.establishSession(ctx, uow, user, tokenEntity.IpAddress, tokenEntity.UserAgent)
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	rawToken, err := generateToken()
	if err != nil {
		return err
	}

	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     rawToken,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		Used:      false,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreatePasswordResetToken(ctx, resetToken); err != nil {
		return err
	}

	go func() {
		if emailErr := s.emailService.SendResetToken(user.Email, rawToken); emailErr != nil {
			s.logger.Error("AuthService", "Failed to send reset email", map[string]interface{}{
				"email": user.Email,
				"error": emailErr.Error(),
			})
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.UserRepository().FindPasswordResetToken(ctx,
		specification.ByToken{Token: req.Token},
	)
	if err != nil {
		return err
	}
	if tokenEntity == nil || tokenEntity.Used || time.Now().After(tokenEntity.ExpiresAt) {
		return serverutils.NewDataError(400, "Invalid or expired reset token", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, tokenEntity.UserId, string(hash)); err != nil {
		return err
	}
	if err := uow.UserRepository().MarkTokenUsed(ctx, tokenEntity.Id); err != nil {
		return err
	}
	if err := uow.UserRepository().RevokeAllRefreshTokens(ctx, tokenEntity.UserId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	// All existing sessions die with the old password.
	return s.sessionBus.PublishSignOut(tokenEntity.UserId)
}

func (s *authService) GetMetadata(ctx context.Context, userID uuid.UUID) (*dto.UserMetadataResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	metadata := user.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &dto.UserMetadataResponse{Metadata: metadata}, nil
}

func (s *authService) UpdateMetadata(ctx context.Context, userID uuid.UUID, req *dto.UserMetadataRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().UpdateMetadata(ctx, userID, req.Metadata)
}
