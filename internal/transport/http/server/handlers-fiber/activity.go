package handlers_fiber

import (
	"net/http"

	"mergington-activities/internal/mapper"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// IndexPath is where GET / redirects.
const IndexPath = "/static/index.html"

// GetRoot redirects to the static signup page.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Redirect(IndexPath, http.StatusTemporaryRedirect)
}

// GetActivities returns every activity keyed by name.
func (h *Handler) GetActivities(c *fiber.Ctx) error {
	list, err := h.uc.GetAllActivities(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list activities", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToActivityMap(list))
}

// PostSignup signs the email query parameter up for the activity in the path.
func (h *Handler) PostSignup(c *fiber.Ctx) error {
	name, email := utils.CopyString(c.Params("name")), utils.CopyString(c.Query("email"))

	msg, err := h.uc.SignUp(c.UserContext(), name, email)
	if err != nil {
		h.log.Infow("signup failed", "activity", name, "email", email, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.Message{Message: msg})
}

// DeleteSignup removes the email query parameter from the activity in the path.
func (h *Handler) DeleteSignup(c *fiber.Ctx) error {
	name, email := utils.CopyString(c.Params("name")), utils.CopyString(c.Query("email"))

	msg, err := h.uc.Remove(c.UserContext(), name, email)
	if err != nil {
		h.log.Infow("removal failed", "activity", name, "email", email, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.Message{Message: msg})
}
