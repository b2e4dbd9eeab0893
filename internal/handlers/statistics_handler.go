package handlers

import (
	"Hoard/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StatisticsHandler struct {
	service services.StatisticsService
}

func NewStatisticsHandler(service services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

func (h *StatisticsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.Statistics(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(stats)
}
