package controller

import (
	"legalbridge-be/internal/constant"
	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// IPagesController serves the client route manifest so the web app and the
// backend agree on the page table and the auth gate for each page.
type IPagesController interface {
	RegisterRoutes(r fiber.Router)
	GetRouteManifest(ctx *fiber.Ctx) error
}

type pagesController struct{}

func NewPagesController() IPagesController {
	return &pagesController{}
}

func (c *pagesController) RegisterRoutes(r fiber.Router) {
	r.Get("/routes", c.GetRouteManifest)
}

func (c *pagesController) GetRouteManifest(ctx *fiber.Ctx) error {
	routes := make([]dto.RouteInfo, 0, len(constant.PageRoutes))
	for _, route := range constant.PageRoutes {
		routes = append(routes, dto.RouteInfo{
			Path:      route.Path,
			Name:      route.Name,
			Protected: route.Protected,
		})
	}

	res := &dto.RouteManifestResponse{
		Routes:   routes,
		Fallback: constant.NotFoundRoute,
	}
	return ctx.JSON(serverutils.SuccessResponse("Route manifest", res))
}
