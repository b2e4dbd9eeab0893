package handlers

import (
	"github.com/gofiber/fiber/v2"
	"net/http"
)

// Cleaner is the part of the janitor the HTTP surface can trigger.
type Cleaner interface {
	ForceStartCleanCycle() error
	IsCleaning() bool
}

type JanitorHandler struct {
	janitor Cleaner
}

func NewJanitorHandler(janitor Cleaner) *JanitorHandler {
	return &JanitorHandler{janitor: janitor}
}

func (h *JanitorHandler) Clean(c *fiber.Ctx) error {
	if err := h.janitor.ForceStartCleanCycle(); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"cleaning": true})
}

func (h *JanitorHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cleaning": h.janitor.IsCleaning()})
}
