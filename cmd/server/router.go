package main

import (
	"context"

	"alerta-vecinal/cmd/server/handlers"
	authHandlers "alerta-vecinal/cmd/server/handlers/auth"
	"alerta-vecinal/cmd/server/handlers/httperr"
	noticiasHandlers "alerta-vecinal/cmd/server/handlers/noticias"
	reportesHandlers "alerta-vecinal/cmd/server/handlers/reportes"
	"alerta-vecinal/cmd/server/middlewares"
	"alerta-vecinal/internal/clients/mongo"
	"alerta-vecinal/internal/config"
	"alerta-vecinal/internal/logger"
	"alerta-vecinal/internal/services/auth"
	"alerta-vecinal/internal/services/news"
	"alerta-vecinal/internal/services/reports"
	"alerta-vecinal/internal/storage/uploads"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(ctx context.Context, cfg config.Config) *fiber.App {
	v := validator.New()

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	if cfg.RequestLoggingEnabled {
		app.Use(fiberlogger.New())
		logger.L().Info("request logging enabled")
	}

	// Health check endpoint, outside the API surface to avoid noise
	app.Get("/healthz", handlers.Healthz)

	db := mongo.DB()
	if db == nil {
		logger.L().Error("database not initialized")
		panic("database not initialized")
	}

	imageStore, err := uploads.New(cfg.UploadsDir)
	if err != nil {
		logger.L().Error("failed to create uploads store", "error", err)
		panic(err)
	}

	// Stored report images are served back as plain static files
	app.Static(uploads.PublicPrefix, imageStore.Dir(), fiber.Static{
		Browse: false,
	})

	// Auth routes
	usersRepo := mongo.NewUsersRepo(ctx, db)
	authSvc := auth.NewService(usersRepo, cfg, logger.L())
	authH := authHandlers.NewHandlers(authSvc, v)

	app.Post("/register", authH.Register)
	app.Post("/login", authH.Login)

	api := app.Group("/api")

	// Report routes
	reportsRepo := mongo.NewReportsRepo(ctx, db)
	reportsSvc := reports.NewService(reportsRepo, logger.L())
	reportesH := reportesHandlers.NewHandlers(reportsSvc, imageStore)

	api.Post("/reportes", reportesH.Create)
	api.Get("/reportes", reportesH.List)

	// News routes
	newsRepo := mongo.NewNewsRepo(ctx, db)
	newsSvc := news.NewService(newsRepo, logger.L())
	noticiasH := noticiasHandlers.NewHandlers(newsSvc, v)

	api.Post("/noticias", noticiasH.Create)
	api.Get("/noticias", noticiasH.List)

	// Token-protected identity endpoint
	jwtMiddleware := middlewares.JWT(cfg)
	api.Get("/perfil", jwtMiddleware, handlers.Perfil)

	return app
}
