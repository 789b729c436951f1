package routes

import (
	"net/http"
	"strconv"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/search"

	"github.com/labstack/echo/v4"
)

// GetSearchHandler runs a substring search across all collections. No
// match is a valid, explicit empty response, not an error.
func GetSearchHandler(c echo.Context) error {
	type response struct {
		Query   string          `json:"query"`
		Results []search.Result `json:"results"`
		Total   int             `json:"total"`
	}

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
	}

	limit := search.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		limit = parsed
	}

	sess := c.(*middleware.AppContext).App.Session
	results := search.Query(sess.Collections(), query, limit)
	if results == nil {
		results = []search.Result{}
	}

	return c.JSON(http.StatusOK, response{
		Query:   query,
		Results: results,
		Total:   len(results),
	})
}
