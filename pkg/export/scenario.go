package export

import (
	"encoding/json"
	"io"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
	"github.com/navigate-zea/navigate/backend/pkg/filter"
)

// Scenario bundles a filtered view together with the filter specification
// that produced it, so an exported exploration state can be reloaded or
// shared as one document.
type Scenario struct {
	Stakeholders  []ecosystem.Stakeholder  `json:"stakeholders"`
	Technologies  []ecosystem.Technology   `json:"technologies"`
	FundingEvents []ecosystem.FundingEvent `json:"funding_events"`
	Projects      []ecosystem.Project      `json:"projects"`
	Relationships []ecosystem.Relationship `json:"relationships"`
	Filters       filter.Spec              `json:"filters"`
	Metadata      *ecosystem.Metadata      `json:"metadata,omitempty"`
}

// WriteScenarioJSON serializes the filtered view plus its filter spec as
// indented JSON.
func WriteScenarioJSON(w io.Writer, view ecosystem.Collections, filters filter.Spec, meta *ecosystem.Metadata) error {
	scenario := Scenario{
		Stakeholders:  view.Stakeholders,
		Technologies:  view.Technologies,
		FundingEvents: view.FundingEvents,
		Projects:      view.Projects,
		Relationships: view.Relationships,
		Filters:       filters,
		Metadata:      meta,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scenario)
}
