package routes

import (
	"net/http"
	"strings"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetGraphHandler projects the filtered view as nodes and links. The
// optional ?selected=id1,id2 parameter restricts the projection to the
// selected entities and their direct neighbors.
func GetGraphHandler(c echo.Context) error {
	sess := c.(*middleware.AppContext).App.Session
	view := sess.View()
	data := graph.Project(view.Stakeholders, view.Technologies, view.Relationships)

	if raw := c.QueryParam("selected"); raw != "" {
		var selected []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				selected = append(selected, id)
			}
		}
		data = graph.Subgraph(data, selected)
	}

	return c.JSON(http.StatusOK, data)
}
