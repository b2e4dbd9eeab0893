package handlers

import (
	"Hoard/internal/dto"
	"Hoard/internal/services"
	"github.com/gofiber/fiber/v2"
	"net/http"
)

type MoverHandler struct {
	service services.MoverService
}

func NewMoverHandler(service services.MoverService) *MoverHandler {
	return &MoverHandler{service: service}
}

func (h *MoverHandler) Move(c *fiber.Ctx) error {
	var req dto.MoveRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err.Error())
	}
	record, err := h.service.Move(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

// Copy accepts an empty body, in which case the copy stays in the source
// section.
func (h *MoverHandler) Copy(c *fiber.Ctx) error {
	var req dto.CopyRequestDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err.Error())
		}
	}
	record, err := h.service.Copy(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(record)
}
