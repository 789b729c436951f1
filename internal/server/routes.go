package server

import (
	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Dataset routes
	apiRoutes.GET("/dataset", routes.GetDatasetHandler)
	apiRoutes.POST("/dataset/reload", routes.ReloadDatasetHandler)
	apiRoutes.GET("/stakeholders", routes.GetStakeholdersHandler)
	apiRoutes.GET("/technologies", routes.GetTechnologiesHandler)
	apiRoutes.GET("/funding-events", routes.GetFundingEventsHandler)
	apiRoutes.GET("/projects", routes.GetProjectsHandler)
	apiRoutes.GET("/relationships", routes.GetRelationshipsHandler)

	// Filter routes
	apiRoutes.GET("/filters", routes.GetFiltersHandler)
	apiRoutes.PUT("/filters", routes.PutFiltersHandler)
	apiRoutes.POST("/filters/reset", routes.ResetFiltersHandler)
	apiRoutes.GET("/presets", routes.GetPresetsHandler)
	apiRoutes.POST("/presets", routes.CreatePresetHandler)
	apiRoutes.DELETE("/presets/:id", routes.DeletePresetHandler)
	apiRoutes.POST("/presets/:id/apply", routes.ApplyPresetHandler)

	// Exploration routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.GET("/search", routes.GetSearchHandler)
	apiRoutes.PUT("/selection", routes.PutSelectionHandler)

	// AI routes
	apiRoutes.POST("/insights", routes.GenerateInsightsHandler)
	apiRoutes.POST("/chat", routes.ChatHandler)
	apiRoutes.POST("/chat/stream", routes.ChatStreamHandler)

	// Export routes
	apiRoutes.GET("/export/scenario", routes.ExportScenarioHandler)
	apiRoutes.GET("/export/:collection", routes.ExportCollectionHandler)
}
