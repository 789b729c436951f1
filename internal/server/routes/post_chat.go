package routes

import (
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// chatRequest is shared by the blocking and streaming chat routes.
type chatRequest struct {
	Message     string           `json:"message" validate:"required"`
	CurrentView string           `json:"current_view"`
	History     []ai.ChatMessage `json:"history"`
}

// buildChatContext grounds the turn in the session's live state: active
// filters and selection come from the server, not the request.
func buildChatContext(c echo.Context, data chatRequest) ai.ChatContext {
	sess := c.(*middleware.AppContext).App.Session
	selected, _, _ := sess.Selection()
	return ai.ChatContext{
		CurrentView:      data.CurrentView,
		SelectedEntities: selected,
		Filters:          sess.Filters(),
		History:          data.History,
	}
}

func ChatHandler(c echo.Context) error {
	var data chatRequest
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	client := c.(*middleware.AppContext).App.AiClient
	resp, err := client.Chat(c.Request().Context(), data.Message, buildChatContext(c, data))
	if err != nil {
		logger.Error("Chat failed", "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}
