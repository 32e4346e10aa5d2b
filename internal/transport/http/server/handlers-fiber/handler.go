// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"mergington-activities/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the activity routes on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts the activity routes.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Get("/", h.GetRoot)
	r.Get("/activities", h.GetActivities)
	r.Post("/activities/:name/signup", h.PostSignup)
	r.Delete("/activities/:name/signup", h.DeleteSignup)
}
