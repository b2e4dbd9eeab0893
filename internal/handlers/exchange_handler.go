package handlers

import (
	"Hoard/internal/dto"
	"Hoard/internal/services"
	"fmt"
	"github.com/gofiber/fiber/v2"
)

type ExchangeHandler struct {
	service services.ExchangeService
}

func NewExchangeHandler(service services.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{service: service}
}

func (h *ExchangeHandler) Export(c *fiber.Ctx) error {
	document, err := h.service.Export(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	if c.QueryBool("download") {
		c.Attachment(fmt.Sprintf("hoard-%s.json", document.ExportDate.Format("2006-01-02")))
	}
	return c.JSON(document)
}

// Import takes the raw export document as body and the mode as query
// parameter; merge is the default.
func (h *ExchangeHandler) Import(c *fiber.Ctx) error {
	result, err := h.service.Import(c.UserContext(), c.Body(), dto.ImportMode(c.Query("mode")))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}
