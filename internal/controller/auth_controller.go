package controller

import (
	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/memory"
	"legalbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, protected fiber.Handler)
	Register(ctx *fiber.Ctx) error
	VerifyEmail(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	RefreshToken(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
	GetMetadata(ctx *fiber.Ctx) error
	UpdateMetadata(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, protected fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/verify-email", c.VerifyEmail)
	h.Post("/login", c.Login)
	h.Post("/refresh", c.RefreshToken)
	h.Post("/forgot-password", c.ForgotPassword)
	h.Post("/reset-password", c.ResetPassword)
	h.Post("/logout", protected, c.Logout)
	h.Get("/session", protected, c.GetSession)

	u := r.Group("/user", protected)
	u.Get("/metadata", c.GetMetadata)
	u.Put("/metadata", c.UpdateMetadata)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Registered. Check your email for a verification link.", res))
}

func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.service.VerifyEmail(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Email verified successfully", nil))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	// A missing refresh token still signs the user out everywhere.
	var req dto.LogoutRequest
	_ = ctx.BodyParser(&req)

	if err := c.service.Logout(ctx.UserContext(), userID, req.RefreshToken); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out successfully", nil))
}

func (c *authController) GetSession(ctx *fiber.Ctx) error {
	session, ok := ctx.Locals(serverutils.LocalSession).(*memory.Session)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	res, err := c.service.GetSession(ctx.UserContext(), session)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session", res))
}

func (c *authController) RefreshToken(ctx *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.RefreshToken(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Token refreshed", res))
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	// Always succeed so the endpoint cannot be used to probe for accounts.
	_ = c.service.ForgotPassword(ctx.UserContext(), &req)
	return ctx.JSON(serverutils.SuccessResponse[any]("If the email exists, a reset link has been sent", nil))
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.service.ResetPassword(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password reset successful", nil))
}

func (c *authController) GetMetadata(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	res, err := c.service.GetMetadata(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User metadata", res))
}

func (c *authController) UpdateMetadata(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	var req dto.UserMetadataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.service.UpdateMetadata(ctx.UserContext(), userID, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Metadata updated", nil))
}
