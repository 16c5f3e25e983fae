package controller

import (
	"legalbridge-be/internal/constant"
	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router, protected fiber.Handler)
	GetProfile(ctx *fiber.Ctx) error
	UpsertProfile(ctx *fiber.Ctx) error
	CompleteLawyerProfile(ctx *fiber.Ctx) error
	CompleteClientProfile(ctx *fiber.Ctx) error
	SelectUserType(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
}

func NewProfileController(service service.IProfileService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router, protected fiber.Handler) {
	h := r.Group("/profile", protected)
	h.Get("/", c.GetProfile)
	h.Put("/", c.UpsertProfile)
	h.Post("/complete/lawyer", c.CompleteLawyerProfile)
	h.Post("/complete/client", c.CompleteClientProfile)

	r.Post("/user/type", protected, c.SelectUserType)
}

func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	res, err := c.service.GetProfile(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *profileController) UpsertProfile(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	var req dto.UpsertProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.UpsertProfile(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile saved", res))
}

// Each completion flow carries its own default bio, applied only when the
// submitted bio is empty.

func (c *profileController) CompleteLawyerProfile(ctx *fiber.Ctx) error {
	return c.completeProfile(ctx, entity.UserTypeLawyer, constant.DefaultLawyerBio)
}

func (c *profileController) CompleteClientProfile(ctx *fiber.Ctx) error {
	return c.completeProfile(ctx, entity.UserTypeClient, constant.DefaultClientBio)
}

func (c *profileController) completeProfile(ctx *fiber.Ctx, userType entity.UserType, defaultBio string) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	var req dto.CompleteProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.CompleteProfile(ctx.UserContext(), userID, userType, defaultBio, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile completed", res))
}

func (c *profileController) SelectUserType(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	var req dto.SelectUserTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.SelectUserType(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User type selected", res))
}
