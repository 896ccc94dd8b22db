// Package server wires the HTTP API: authentication endpoints and the
// protected batch analysis endpoint.
package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hirepilot/hirepilot/internal/logging"
	"github.com/hirepilot/hirepilot/internal/server/analyze"
	"github.com/hirepilot/hirepilot/internal/server/auth"
	"github.com/hirepilot/hirepilot/internal/server/config"
	"github.com/hirepilot/hirepilot/internal/server/users"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	fiber    *fiber.App
	users    *users.Service
	tokens   *auth.TokenService
	analyzer *analyze.Service
}

func NewApp(cfg *config.Config, log logging.Logger, analyzer *analyze.Service) *App {
	a := &App{
		config:   cfg,
		logger:   log,
		users:    users.NewService(users.NewMemoryRepository()),
		tokens:   auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		analyzer: analyzer,
	}

	a.fiber = fiber.New(fiber.Config{
		AppName:               "HirePilot API",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	a.fiber.Use(recover.New())
	a.fiber.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	a.fiber.Use(logger.New())

	a.registerRoutes()
	return a
}

func (a *App) registerRoutes() {
	a.fiber.Get("/", a.handleRoot)
	a.fiber.Post("/token", a.handleToken)
	a.fiber.Post("/register", a.handleRegister)

	protected := a.fiber.Group("", auth.Middleware(a.tokens))
	protected.Get("/users/me", a.handleMe)
	protected.Post("/analyze-resumes", a.handleAnalyzeResumes)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.fiber.Listen(a.config.Address)
	}()

	select {
	case <-ctx.Done():
		return a.fiber.Shutdown()
	case err := <-errCh:
		return err
	}
}

// errorHandler renders every unhandled error in the API's failure shape:
// a JSON object with a single detail field.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		detail = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"detail": detail})
}
