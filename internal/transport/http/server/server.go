// Package server assembles the Fiber application.
package server

import (
	"mergington-activities/config"
	handlers_fiber "mergington-activities/internal/transport/http/server/handlers-fiber"
	"mergington-activities/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New builds the application with middleware and all routes mounted.
func New(log *zap.SugaredLogger, cfg config.HTTPConfig, h *handlers_fiber.Handler) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.RequestTimeout,
		WriteTimeout:          cfg.RequestTimeout,
		UnescapePath:          true,
		Immutable:             true,
		DisableStartupMessage: true,
	})
	serv.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.Metrics())
	serv.Use(recover.New())

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	if cfg.StaticDir != "" {
		serv.Static("/static", cfg.StaticDir)
	}

	handlers_fiber.RegisterHandlers(serv, h)
	return serv
}
