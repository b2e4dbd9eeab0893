package handlers

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"Hoard/internal/services"
	"github.com/gofiber/fiber/v2"
	"net/http"
	"strconv"
	"strings"
)

type RecordHandler struct {
	service services.RecordService
}

func NewRecordHandler(service services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

func (h *RecordHandler) CreateRecord(c *fiber.Ctx) error {
	var draft dto.RecordDraftDTO
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, err.Error())
	}
	record, err := h.service.Create(c.UserContext(), draft)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(record)
}

func (h *RecordHandler) GetRecord(c *fiber.Ctx) error {
	record, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

func (h *RecordHandler) ListRecords(c *fiber.Ctx) error {
	records, err := h.service.List(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(records)
}

func (h *RecordHandler) UpdateRecord(c *fiber.Ctx) error {
	var patch dto.RecordPatchDTO
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, err.Error())
	}
	record, err := h.service.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

func (h *RecordHandler) DeleteRecord(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *RecordHandler) ArchiveRecord(c *fiber.Ctx) error {
	record, err := h.service.Archive(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

func (h *RecordHandler) RestoreRecord(c *fiber.Ctx) error {
	record, err := h.service.Restore(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

func (h *RecordHandler) RecordEvents(c *fiber.Ctx) error {
	filter, err := eventFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	filter.ItemID = c.Params("id")
	events, err := h.service.Events(c.UserContext(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(events)
}

func (h *RecordHandler) RecordLocations(c *fiber.Ctx) error {
	entries, err := h.service.LocationHistory(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(entries)
}

// ListEvents serves the global log, newest first. Supported query
// parameters are itemId, type (comma separated) and limit.
func (h *RecordHandler) ListEvents(c *fiber.Ctx) error {
	filter, err := eventFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	events, err := h.service.Events(c.UserContext(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(events)
}

func eventFilter(c *fiber.Ctx) (dto.EventFilterDTO, error) {
	filter := dto.EventFilterDTO{ItemID: c.Query("itemId")}
	for _, eventType := range splitList(c.Query("type")) {
		filter.Types = append(filter.Types, models.EventType(eventType))
	}
	if limit := c.Query("limit"); limit != "" {
		value, err := strconv.Atoi(limit)
		if err != nil || value < 0 {
			return filter, fiber.NewError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = value
	}
	return filter, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
