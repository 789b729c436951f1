package routes

import (
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReloadDatasetHandler re-reads the dataset from the configured source.
// A failed reload leaves the previously loaded data serving.
func ReloadDatasetHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	ctx := c.Request().Context()

	if err := sess.Reload(ctx); err != nil {
		logger.Error("Dataset reload failed", "err", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	counts := sess.Collections().CountAll()
	logger.Info("Dataset reloaded",
		"stakeholders", counts.Stakeholders,
		"technologies", counts.Technologies,
		"funding_events", counts.FundingEvents,
		"projects", counts.Projects,
		"relationships", counts.Relationships,
	)

	return c.JSON(http.StatusOK, map[string]any{
		"status": "reloaded",
		"counts": counts,
	})
}
