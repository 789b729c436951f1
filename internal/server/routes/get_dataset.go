package routes

import (
	"net/http"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"

	"github.com/labstack/echo/v4"
)

func GetDatasetHandler(c echo.Context) error {
	type response struct {
		Stakeholders  []ecosystem.Stakeholder  `json:"stakeholders"`
		Technologies  []ecosystem.Technology   `json:"technologies"`
		FundingEvents []ecosystem.FundingEvent `json:"funding_events"`
		Projects      []ecosystem.Project      `json:"projects"`
		Relationships []ecosystem.Relationship `json:"relationships"`
		Metadata      ecosystem.Metadata       `json:"metadata"`
	}

	sess := c.(*middleware.AppContext).App.Session
	collections := sess.Collections()

	return c.JSON(http.StatusOK, response{
		Stakeholders:  collections.Stakeholders,
		Technologies:  collections.Technologies,
		FundingEvents: collections.FundingEvents,
		Projects:      collections.Projects,
		Relationships: collections.Relationships,
		Metadata:      sess.Metadata(),
	})
}
