package routes

import (
	"net/http"
	"strconv"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"

	"github.com/labstack/echo/v4"
)

// The collection GETs serve the filtered view by default; ?all=true
// bypasses the active filters.
func viewFor(c echo.Context) ecosystem.Collections {
	sess := c.(*middleware.AppContext).App.Session
	if all, _ := strconv.ParseBool(c.QueryParam("all")); all {
		return sess.Collections()
	}
	return sess.View()
}

func GetStakeholdersHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, viewFor(c).Stakeholders)
}

func GetTechnologiesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, viewFor(c).Technologies)
}

func GetFundingEventsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, viewFor(c).FundingEvents)
}

func GetProjectsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, viewFor(c).Projects)
}

func GetRelationshipsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, viewFor(c).Relationships)
}
