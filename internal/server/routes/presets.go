package routes

import (
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/filter"

	"github.com/labstack/echo/v4"
)

func GetPresetsHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	return c.JSON(http.StatusOK, sess.Presets())
}

func CreatePresetHandler(c echo.Context) error {
	type request struct {
		Name    string      `json:"name" validate:"required"`
		Filters filter.Spec `json:"filters"`
	}

	var data request
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess := c.(*middleware.AppContext).App.Session
	preset, err := sess.SavePreset(data.Name, data.Filters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, preset)
}

func DeletePresetHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	if err := sess.DeletePreset(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ApplyPresetHandler makes the preset's filters the active spec and
// returns the counts of the resulting view.
func ApplyPresetHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	preset, err := sess.ApplyPreset(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"preset": preset,
		"counts": sess.View().CountAll(),
	})
}
