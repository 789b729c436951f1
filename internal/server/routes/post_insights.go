package routes

import (
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ai/factory"
	"github.com/navigate-zea/navigate/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GenerateInsightsHandler runs insight generation over the filtered view.
// The request may override the configured backend per call; an override
// without credentials degrades to mock like at startup.
func GenerateInsightsHandler(c echo.Context) error {
	type request struct {
		Provider string `json:"provider"`
	}
	type response struct {
		Insights []ai.Insight `json:"insights"`
		Provider string       `json:"provider"`
	}

	var data request
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	app := c.(*middleware.AppContext).App
	client := app.AiClient
	provider := "configured"
	if data.Provider != "" {
		cfg := factory.FromEnv()
		cfg.Provider = data.Provider
		client = factory.New(cfg)
		provider = data.Provider
	}

	sess := app.Session
	insights, err := client.GenerateInsights(c.Request().Context(), sess.View())
	if err != nil {
		logger.Error("Insight generation failed", "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if insights == nil {
		insights = []ai.Insight{}
	}

	sess.SetInsights(insights)

	return c.JSON(http.StatusOK, response{
		Insights: insights,
		Provider: provider,
	})
}
