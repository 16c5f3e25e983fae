package server

import (
	"log"

	"legalbridge-be/internal/bootstrap"
	"legalbridge-be/internal/config"
	"legalbridge-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, Content-Disposition",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")

	protected := serverutils.Protected(cfg.Auth.JWTSecret, c.SessionCache)

	c.AuthController.RegisterRoutes(api, protected)
	c.OAuthController.RegisterRoutes(api)
	c.ProfileController.RegisterRoutes(api, protected)
	c.AssistantController.RegisterRoutes(api, protected)
	c.CatalogController.RegisterRoutes(api)
	c.ConsultationController.RegisterRoutes(api, protected)
	c.PagesController.RegisterRoutes(api)

	c.EventHandler.RegisterRoutes(api, protected)

	// Any path outside the API mirrors the client's not-found page.
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(
			serverutils.ErrorResponse(fiber.StatusNotFound, "Page not found", ""),
		)
	})
}
