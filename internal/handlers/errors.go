package handlers

import (
	"Hoard/internal/services"
	"errors"
	"github.com/gofiber/fiber/v2"
	"net/http"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrCleanInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	body := map[string]interface{}{"error": err.Error()}
	var validationError *services.ValidationError
	if errors.As(err, &validationError) {
		body["fields"] = validationError.Fields
	}
	return c.Status(statusFor(err)).JSON(body)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": message})
}
