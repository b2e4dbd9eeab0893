package handlers

import (
	"Hoard/internal/services"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type TreeHandler struct {
	service services.TreeService
}

func NewTreeHandler(service services.TreeService) *TreeHandler {
	return &TreeHandler{service: service}
}

// GetTree accepts exclude, maxLevels, expanded (comma separated ids) and
// includeArchived.
func (h *TreeHandler) GetTree(c *fiber.Ctx) error {
	opts := services.TreeOptions{
		ExcludeID: c.Query("exclude"),
		Expanded:  map[string]bool{},
	}
	if levels := c.Query("maxLevels"); levels != "" {
		maxLevels, err := strconv.Atoi(levels)
		if err != nil || maxLevels < 1 {
			return badRequest(c, "invalid maxLevels")
		}
		opts.MaxLevels = maxLevels
	}
	for _, id := range splitList(c.Query("expanded")) {
		opts.Expanded[id] = true
	}
	if archived := c.Query("includeArchived"); archived != "" {
		includeArchived, err := strconv.ParseBool(archived)
		if err != nil {
			return badRequest(c, "invalid includeArchived")
		}
		opts.IncludeArchived = includeArchived
	}

	forest, err := h.service.Tree(c.UserContext(), opts)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(forest)
}
