package handlers

import (
	"Hoard/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service services.SettingsService
}

func NewSettingsHandler(service services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) SaveSettings(c *fiber.Ctx) error {
	settings, err := h.service.Save(c.UserContext(), c.Body())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(settings)
}
