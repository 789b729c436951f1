package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatStreamHandler streams the chat answer as chunked JSON: one object
// per fragment carrying the message accumulated so far, then a final
// object marked done. A stream that fails before producing any fragment
// answers 502; a mid-stream failure is reported in the final object.
func ChatStreamHandler(c echo.Context) error {
	type streamResponse struct {
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
		Done    bool   `json:"done"`
	}

	var data chatRequest
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	client := c.(*middleware.AppContext).App.AiClient

	contentChan, err := client.ChatStream(ctx, data.Message, buildChatContext(c, data))
	if err != nil {
		logger.Error("Chat stream failed", "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	// The status line is written with the first fragment, so an upstream
	// failure before any output can still answer 502.
	enc := json.NewEncoder(c.Response())
	var messageBuffer strings.Builder
	var streamErr error
	started := false

	for chunk := range contentChan {
		if chunk.Err != nil {
			streamErr = chunk.Err
			break
		}
		if !started {
			c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c.Response().WriteHeader(http.StatusOK)
			started = true
		}
		messageBuffer.WriteString(chunk.Text)
		if err := enc.Encode(streamResponse{Message: messageBuffer.String()}); err != nil {
			return err
		}
		c.Response().Flush()
	}

	if streamErr != nil {
		logger.Error("Chat stream failed", "err", streamErr)
		if !started {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": streamErr.Error()})
		}
		if err := enc.Encode(streamResponse{
			Message: messageBuffer.String(),
			Error:   streamErr.Error(),
			Done:    true,
		}); err != nil {
			return err
		}
		c.Response().Flush()
		return nil
	}

	if !started {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c.Response().WriteHeader(http.StatusOK)
	}
	if err := enc.Encode(streamResponse{Message: messageBuffer.String(), Done: true}); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}
