package routes

import (
	"fmt"
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/export"

	"github.com/labstack/echo/v4"
)

// ExportCollectionHandler downloads the filtered view of one collection
// as CSV.
func ExportCollectionHandler(c echo.Context) error {
	name := c.Param("collection")
	sess := c.(*middleware.AppContext).App.Session
	view := sess.View()

	if !validCollection(name) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("unknown collection %q", name)})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s.csv", name))
	c.Response().WriteHeader(http.StatusOK)

	return export.WriteCollectionCSV(c.Response(), name, view)
}

// ExportScenarioHandler downloads the filtered view plus the filter spec
// that produced it as one JSON document.
func ExportScenarioHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	meta := sess.Metadata()

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=scenario.json")
	c.Response().WriteHeader(http.StatusOK)

	return export.WriteScenarioJSON(c.Response(), sess.View(), sess.Filters(), &meta)
}

func validCollection(name string) bool {
	switch name {
	case "stakeholders", "technologies", "funding-events", "projects", "relationships":
		return true
	default:
		return false
	}
}
