package routes

import (
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// PutSelectionHandler replaces the selection state shared between views.
func PutSelectionHandler(c echo.Context) error {
	type request struct {
		Selected     []string `json:"selected"`
		Highlighted  []string `json:"highlighted"`
		ActiveEntity string   `json:"active_entity"`
	}

	var data request
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess := c.(*middleware.AppContext).App.Session
	sess.SetSelection(data.Selected, data.Highlighted, data.ActiveEntity)

	selected, highlighted, active := sess.Selection()
	return c.JSON(http.StatusOK, map[string]any{
		"selected":      selected,
		"highlighted":   highlighted,
		"active_entity": active,
	})
}
