// Package filter maps the full collections and a filter specification to
// filtered views. Apply is a pure projection: it never mutates its input,
// the same inputs always yield the same outputs, and relative record order
// is preserved.
package filter

import (
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
	"github.com/navigate-zea/navigate/backend/pkg/search"
)

// Spec is the set of active inclusion criteria. Empty allow-lists mean no
// restriction. A non-empty SearchQuery takes precedence for a collection:
// the record passes on the substring match alone and the other criteria are
// not additionally required in that pass.
type Spec struct {
	StakeholderTypes     []ecosystem.StakeholderType    `json:"stakeholder_types"`
	TechnologyCategories []ecosystem.TechnologyCategory `json:"technology_categories"`
	FundingTypes         []ecosystem.FundingType        `json:"funding_types"`
	TRLRange             [2]int                         `json:"trl_range"`
	FundingRange         [2]float64                     `json:"funding_range"`
	SearchQuery          string                         `json:"search_query"`

	// DateRange is reserved: accepted and carried but not yet applied.
	DateRange *[2]string `json:"date_range,omitempty"`
}

// Default returns the no-restriction spec: full TRL range and a funding
// range wide enough to pass every event.
func Default() Spec {
	return Spec{
		TRLRange:     [2]int{1, 9},
		FundingRange: [2]float64{0, 1_000_000_000},
	}
}

// Normalize fills unset range fields with their defaults. A specification
// arriving without a TRL or funding range means "no restriction there", not
// "restrict to zero", so the zero value maps to the full window.
func Normalize(spec Spec) Spec {
	if spec.TRLRange == [2]int{} {
		spec.TRLRange = Default().TRLRange
	}
	if spec.FundingRange == [2]float64{} {
		spec.FundingRange = Default().FundingRange
	}
	return spec
}

// Apply returns the filtered view of c under spec. Relationships carry no
// filter fields of their own: a relationship survives only if both of its
// endpoints survived entity filtering.
func Apply(c ecosystem.Collections, spec Spec) ecosystem.Collections {
	out := ecosystem.Collections{
		Stakeholders:  filterStakeholders(c.Stakeholders, spec),
		Technologies:  filterTechnologies(c.Technologies, spec),
		FundingEvents: filterFundingEvents(c.FundingEvents, spec),
		Projects:      filterProjects(c.Projects, spec),
	}
	out.Relationships = filterRelationships(c.Relationships, out.Stakeholders, out.Technologies)
	return out
}

func filterStakeholders(in []ecosystem.Stakeholder, spec Spec) []ecosystem.Stakeholder {
	out := make([]ecosystem.Stakeholder, 0, len(in))
	for _, s := range in {
		if spec.SearchQuery != "" {
			if search.MatchStakeholder(s, spec.SearchQuery) {
				out = append(out, s)
			}
			continue
		}
		if !allowStakeholderType(spec.StakeholderTypes, s.Type) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func filterTechnologies(in []ecosystem.Technology, spec Spec) []ecosystem.Technology {
	out := make([]ecosystem.Technology, 0, len(in))
	for _, t := range in {
		if spec.SearchQuery != "" {
			if search.MatchTechnology(t, spec.SearchQuery) {
				out = append(out, t)
			}
			continue
		}
		if !allowTechnologyCategory(spec.TechnologyCategories, t.Category) {
			continue
		}
		if t.TRLCurrent < spec.TRLRange[0] || t.TRLCurrent > spec.TRLRange[1] {
			continue
		}
		out = append(out, t)
	}
	return out
}

func filterFundingEvents(in []ecosystem.FundingEvent, spec Spec) []ecosystem.FundingEvent {
	out := make([]ecosystem.FundingEvent, 0, len(in))
	for _, ev := range in {
		if spec.SearchQuery != "" {
			if search.MatchFundingEvent(ev, spec.SearchQuery) {
				out = append(out, ev)
			}
			continue
		}
		if !allowFundingType(spec.FundingTypes, ev.FundingType) {
			continue
		}
		if ev.Amount < spec.FundingRange[0] || ev.Amount > spec.FundingRange[1] {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func filterProjects(in []ecosystem.Project, spec Spec) []ecosystem.Project {
	out := make([]ecosystem.Project, 0, len(in))
	for _, p := range in {
		if spec.SearchQuery != "" {
			if search.MatchProject(p, spec.SearchQuery) {
				out = append(out, p)
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterRelationships(
	in []ecosystem.Relationship,
	stakeholders []ecosystem.Stakeholder,
	technologies []ecosystem.Technology,
) []ecosystem.Relationship {
	surviving := make(map[string]bool, len(stakeholders)+len(technologies))
	for _, s := range stakeholders {
		surviving[s.ID] = true
	}
	for _, t := range technologies {
		surviving[t.ID] = true
	}

	out := make([]ecosystem.Relationship, 0, len(in))
	for _, r := range in {
		if surviving[r.Source] && surviving[r.Target] {
			out = append(out, r)
		}
	}
	return out
}

func allowStakeholderType(allowed []ecosystem.StakeholderType, t ecosystem.StakeholderType) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}

func allowTechnologyCategory(allowed []ecosystem.TechnologyCategory, c ecosystem.TechnologyCategory) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == c {
			return true
		}
	}
	return false
}

func allowFundingType(allowed []ecosystem.FundingType, t ecosystem.FundingType) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
