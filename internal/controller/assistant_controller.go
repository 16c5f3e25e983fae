package controller

import (
	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router, protected fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	AnalyzeDocument(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router, protected fiber.Handler) {
	h := r.Group("/chat", protected)
	h.Post("/sessions", c.CreateSession)
	h.Get("/sessions", c.GetSessions)
	h.Get("/sessions/:id/messages", c.GetHistory)
	h.Post("/sessions/:id/messages", c.SendMessage)
	h.Delete("/sessions/:id", c.DeleteSession)

	r.Post("/documents/analyze", protected, c.AnalyzeDocument)
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	res, err := c.service.CreateSession(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Chat session created", res))
}

func (c *assistantController) GetSessions(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	res, err := c.service.GetSessions(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat sessions", res))
}

func (c *assistantController) GetHistory(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid session id", err)
	}

	res, err := c.service.GetHistory(ctx.UserContext(), userID, sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *assistantController) SendMessage(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid session id", err)
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.UserContext(), userID, sessionID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *assistantController) DeleteSession(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid session id", err)
	}

	if err := c.service.DeleteSession(ctx.UserContext(), userID, sessionID); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Chat session deleted", nil))
}

func (c *assistantController) AnalyzeDocument(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(serverutils.LocalUserID).(uuid.UUID)
	if !ok {
		return serverutils.NewSessionAbsentError()
	}

	var req dto.AnalyzeDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.AnalyzeDocument(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document analyzed", res))
}
