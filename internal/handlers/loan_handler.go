package handlers

import (
	"Hoard/internal/dto"
	"Hoard/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LoanHandler struct {
	service services.LoanService
}

func NewLoanHandler(service services.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) Loan(c *fiber.Ctx) error {
	var req dto.LoanRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err.Error())
	}
	record, err := h.service.Loan(c.UserContext(), c.Params("id"), req.Quantity, req.LoanedTo)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

func (h *LoanHandler) Return(c *fiber.Ctx) error {
	record, err := h.service.Return(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

func (h *LoanHandler) Available(c *fiber.Ctx) error {
	availability, err := h.service.Available(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(availability)
}

func (h *LoanHandler) ListLoans(c *fiber.Ctx) error {
	records, err := h.service.Loans(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(records)
}
