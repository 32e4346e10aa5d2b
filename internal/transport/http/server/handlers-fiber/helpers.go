package handlers_fiber

import (
	"errors"
	"net/http"

	"mergington-activities/internal/entities"
	"mergington-activities/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrActivityNotFound):
		status = http.StatusNotFound
		msg = "Activity not found"
	case errors.Is(err, entities.ErrAlreadySignedUp):
		msg = "Student is already signed up for this activity"
	case errors.Is(err, entities.ErrActivityFull):
		msg = "Activity is full"
	case errors.Is(err, entities.ErrConflict):
		msg = "Failed to sign up for activity"
	case errors.Is(err, entities.ErrNotSignedUp):
		status = http.StatusBadRequest
		msg = "Student is not signed up for this activity"
	case errors.Is(err, entities.ErrOperationFailed):
		msg = "Failed to remove from activity"
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) mapper.ErrorResponse {
	return mapper.ErrorResponse{Detail: msg}
}
