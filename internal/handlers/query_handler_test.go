package handlers

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"Hoard/internal/services"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTreeHandler_GetTree(t *testing.T) {
	service := new(MockTreeService)
	app := fiber.New()
	app.Get("/tree", NewTreeHandler(service).GetTree)

	service.On("Tree", mock.Anything, services.TreeOptions{
		ExcludeID:       "drawer",
		MaxLevels:       2,
		Expanded:        map[string]bool{"a": true, "b": true},
		IncludeArchived: true,
	}).Return([]*dto.TreeNodeDTO{{Level: 0}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tree?exclude=drawer&maxLevels=2&expanded=a,b&includeArchived=true", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/tree?maxLevels=0", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestSearchHandler_Search(t *testing.T) {
	service := new(MockSearchService)
	app := fiber.New()
	app.Get("/search", NewSearchHandler(service).Search)

	service.On("Search", mock.Anything, mock.MatchedBy(func(criteria dto.SearchCriteriaDTO) bool {
		return criteria.Query == "drill" &&
			assert.ObjectsAreEqual([]string{"tools", "power"}, criteria.Tags) &&
			criteria.PriceRange != nil && criteria.PriceRange.Min == 10 && math.IsInf(criteria.PriceRange.Max, 1) &&
			criteria.IsOnLoan != nil && !*criteria.IsOnLoan &&
			criteria.IncludeArchived &&
			criteria.Condition != nil && *criteria.Condition == models.ConditionGood &&
			criteria.SortBy == "price" && criteria.SortOrder == dto.SortDesc
	})).Return([]models.Record{{Name: "Drill"}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/search?q=drill&tags=tools,power&minPrice=10&isOnLoan=false&includeArchived=true&condition=good&sortBy=price&sortOrder=desc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/search?minPrice=cheap", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestSearchHandler_Filter(t *testing.T) {
	service := new(MockSearchService)
	app := fiber.New()
	app.Get("/search", NewSearchHandler(service).Search)

	service.On("SearchFilter", mock.Anything, "price ge '10'", mock.MatchedBy(func(base dto.SearchCriteriaDTO) bool {
		return base.SectionID == "garage"
	})).Return([]models.Record{}, nil).Once()
	service.On("SearchFilter", mock.Anything, "color eq 'red'", mock.Anything).
		Return([]models.Record{}, fmt.Errorf("%w: unknown filter field \"color\"", services.ErrInvalidArgument)).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/search?sectionId=garage&$filter=price%20ge%20%2710%27", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/search?$filter=color%20eq%20%27red%27", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestStatisticsHandler_GetStatistics(t *testing.T) {
	service := new(MockStatisticsService)
	app := fiber.New()
	app.Get("/statistics", NewStatisticsHandler(service).GetStatistics)

	service.On("Statistics", mock.Anything).Return(&dto.StatisticsDTO{TotalItems: 3, TotalValue: 120}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/statistics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.StatisticsDTO
	decodeBody(t, resp, &stats)
	assert.Equal(t, 3, stats.TotalItems)
	service.AssertExpectations(t)
}
