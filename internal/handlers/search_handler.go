package handlers

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"Hoard/internal/services"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"math"
	"strconv"
	"time"
)

type SearchHandler struct {
	service services.SearchService
}

func NewSearchHandler(service services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search reads criteria from the query string. An OData style $filter
// expression, when present, is applied on top of them.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	criteria, err := searchCriteria(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var records []models.Record
	if filter := c.Query("$filter"); filter != "" {
		records, err = h.service.SearchFilter(c.UserContext(), filter, criteria)
	} else {
		records, err = h.service.Search(c.UserContext(), criteria)
	}
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(records)
}

func searchCriteria(c *fiber.Ctx) (dto.SearchCriteriaDTO, error) {
	criteria := dto.SearchCriteriaDTO{
		Query:     c.Query("q"),
		SectionID: c.Query("sectionId"),
		IDs:       splitList(c.Query("ids")),
		Tags:      splitList(c.Query("tags")),
		SortBy:    c.Query("sortBy"),
		SortOrder: dto.SortOrder(c.Query("sortOrder")),
	}
	if condition := c.Query("condition"); condition != "" {
		value := models.Condition(condition)
		criteria.Condition = &value
	}

	var err error
	if criteria.IsOnLoan, err = optionalBool(c, "isOnLoan"); err != nil {
		return criteria, err
	}
	for name, target := range map[string]*bool{
		"includeArchived": &criteria.IncludeArchived,
		"includeSections": &criteria.IncludeSections,
	} {
		value, err := optionalBool(c, name)
		if err != nil {
			return criteria, err
		}
		if value != nil {
			*target = *value
		}
	}

	if criteria.PriceRange, err = queryRange(c, "minPrice", "maxPrice"); err != nil {
		return criteria, err
	}
	if criteria.WeightRange, err = queryRange(c, "minWeight", "maxWeight"); err != nil {
		return criteria, err
	}
	if criteria.CreatedFrom, err = optionalTime(c, "createdFrom"); err != nil {
		return criteria, err
	}
	if criteria.CreatedTo, err = optionalTime(c, "createdTo"); err != nil {
		return criteria, err
	}
	return criteria, nil
}

func optionalBool(c *fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &value, nil
}

func queryRange(c *fiber.Ctx, minName, maxName string) (*dto.Range, error) {
	rawMin, rawMax := c.Query(minName), c.Query(maxName)
	if rawMin == "" && rawMax == "" {
		return nil, nil
	}
	r := &dto.Range{Min: math.Inf(-1), Max: math.Inf(1)}
	if rawMin != "" {
		value, err := strconv.ParseFloat(rawMin, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s", minName)
		}
		r.Min = value
	}
	if rawMax != "" {
		value, err := strconv.ParseFloat(rawMax, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s", maxName)
		}
		r.Max = value
	}
	return r, nil
}

func optionalTime(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		return &value, nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &value, nil
}
