package controller

import (
	"strconv"

	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// The catalog is static reference data, so these routes are public.
type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListTemplates(ctx *fiber.Ctx) error
	GetTemplate(ctx *fiber.Ctx) error
	DownloadTemplate(ctx *fiber.Ctx) error
	ListLawyers(ctx *fiber.Ctx) error
	GetLawyer(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	t := r.Group("/templates")
	t.Get("/", c.ListTemplates)
	t.Get("/:id", c.GetTemplate)
	t.Get("/:id/download", c.DownloadTemplate)

	l := r.Group("/lawyers")
	l.Get("/", c.ListLawyers)
	l.Get("/:id", c.GetLawyer)
}

func (c *catalogController) ListTemplates(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "All")
	query := ctx.Query("q")

	res, err := c.service.ListTemplates(ctx.UserContext(), category, query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Templates", res))
}

func (c *catalogController) GetTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid template id", err)
	}

	res, err := c.service.GetTemplate(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Template", res))
}

func (c *catalogController) DownloadTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid template id", err)
	}

	filename, content, err := c.service.DownloadTemplate(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return ctx.Send(content)
}

func (c *catalogController) ListLawyers(ctx *fiber.Ctx) error {
	specialty := ctx.Query("specialty", "All")
	query := ctx.Query("q")

	res, err := c.service.ListLawyers(ctx.UserContext(), specialty, query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyers", res))
}

func (c *catalogController) GetLawyer(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return serverutils.NewDataError(fiber.StatusBadRequest, "Invalid lawyer id", err)
	}

	res, err := c.service.GetLawyer(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyer", res))
}
