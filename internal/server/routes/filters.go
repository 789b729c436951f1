package routes

import (
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/filter"

	"github.com/labstack/echo/v4"
)

func GetFiltersHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	return c.JSON(http.StatusOK, sess.Filters())
}

// PutFiltersHandler replaces the active filter spec and returns the counts
// of the resulting view. Missing range fields fall back to the full window
// so a partial body cannot zero out the technology and funding views.
func PutFiltersHandler(c echo.Context) error {
	var spec filter.Spec
	if err := c.Bind(&spec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	spec = filter.Normalize(spec)
	if spec.TRLRange[0] > spec.TRLRange[1] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "trl_range minimum exceeds maximum"})
	}
	if spec.FundingRange[0] > spec.FundingRange[1] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "funding_range minimum exceeds maximum"})
	}

	sess := c.(*middleware.AppContext).App.Session
	sess.SetFilters(spec)

	return c.JSON(http.StatusOK, map[string]any{
		"filters": spec,
		"counts":  sess.View().CountAll(),
	})
}

func ResetFiltersHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	sess.ResetFilters()
	return c.JSON(http.StatusOK, sess.Filters())
}
