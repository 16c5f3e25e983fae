package controller

import (
	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/memory"
	"legalbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConsultationController interface {
	RegisterRoutes(r fiber.Router, protected fiber.Handler)
	GetPaymentMethods(ctx *fiber.Ctx) error
	Book(ctx *fiber.Ctx) error
	GetConsultation(ctx *fiber.Ctx) error
	GetConsultations(ctx *fiber.Ctx) error
}

type consultationController struct {
	service service.IConsultationService
}

func NewConsultationController(service service.IConsultationService) IConsultationController {
	return &consultationController{service: service}
}

func (c *consultationController) RegisterRoutes(r fiber.Router, protected fiber.Handler) {
	h := r.Group("/consultations", protected)
	h.Post("/", c.Book)
	h.Get("/", c.GetConsultations)
	h.Get("/:id", c.GetConsultation)

	r.Get("/payments/methods", protected, c.GetPaymentMethods)
}

func (c *consultationController) GetPaymentMethods(ctx *fiber.Ctx) error {
	res := c.service.GetPaymentMethods(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Payment methods", res))
}

func (c *consultationController) Book(ctx *fiber.Ctx) error {
	session, ok := ctx.Locals(serverutils.LocalSession).(*memory.Session)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	var req dto.BookConsultationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Book(ctx.UserContext(), session.UserID, session.Email, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Consultation booked", res))
}

func (c *consultationController) GetConsultation(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid consultation id", err)
	}

	res, err := c.service.GetConsultation(ctx.UserContext(), userID, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Consultation", res))
}

func (c *consultationController) GetConsultations(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	res, err := c.service.GetConsultations(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Consultations", res))
}
