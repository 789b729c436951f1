// Package search implements the keyword search over all four searchable
// collections. The per-kind matcher functions here are the single substring
// matching routine in the codebase: the filter engine's search-query field
// uses them too, so both surfaces always agree on what matches.
package search

import (
	"strings"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// Kind identifies which collection a result came from.
type Kind string

const (
	KindStakeholder Kind = "stakeholder"
	KindTechnology  Kind = "technology"
	KindFunding     Kind = "funding"
	KindProject     Kind = "project"
)

// Result is a single search hit.
type Result struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DefaultLimit caps the number of hits returned per query.
const DefaultLimit = 10

// Query scans the four searchable collections in order and returns up to
// limit matches. Ranking is collection iteration order; there is no
// relevance scoring. An empty or whitespace query returns no results.
func Query(c ecosystem.Collections, query string, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]Result, 0, limit)
	add := func(r Result) bool {
		results = append(results, r)
		return len(results) >= limit
	}

	for _, s := range c.Stakeholders {
		if MatchStakeholder(s, query) {
			if add(Result{ID: s.ID, Kind: KindStakeholder, Name: s.Name, Description: s.Description}) {
				return results
			}
		}
	}
	for _, t := range c.Technologies {
		if MatchTechnology(t, query) {
			if add(Result{ID: t.ID, Kind: KindTechnology, Name: t.Name, Description: t.Description}) {
				return results
			}
		}
	}
	for _, ev := range c.FundingEvents {
		if MatchFundingEvent(ev, query) {
			if add(Result{ID: ev.ID, Kind: KindFunding, Name: ev.Program, Description: ev.ImpactDescription}) {
				return results
			}
		}
	}
	for _, p := range c.Projects {
		if MatchProject(p, query) {
			if add(Result{ID: p.ID, Kind: KindProject, Name: p.Name, Description: p.Description}) {
				return results
			}
		}
	}

	return results
}

// MatchStakeholder reports whether the query occurs in the stakeholder's
// name, description, tags, type or sector, case-insensitively.
func MatchStakeholder(s ecosystem.Stakeholder, query string) bool {
	return containsFold(s.Name, query) ||
		containsFold(s.Description, query) ||
		anyContainsFold(s.Tags, query) ||
		containsFold(string(s.Type), query) ||
		containsFold(s.Sector, query)
}

// MatchTechnology reports whether the query occurs in the technology's
// name, description, tags or category.
func MatchTechnology(t ecosystem.Technology, query string) bool {
	return containsFold(t.Name, query) ||
		containsFold(t.Description, query) ||
		anyContainsFold(t.Tags, query) ||
		containsFold(string(t.Category), query)
}

// MatchFundingEvent reports whether the query occurs in the event's program
// label or impact description.
func MatchFundingEvent(ev ecosystem.FundingEvent, query string) bool {
	return containsFold(ev.Program, query) ||
		containsFold(ev.ImpactDescription, query)
}

// MatchProject reports whether the query occurs in the project's name or
// description.
func MatchProject(p ecosystem.Project, query string) bool {
	return containsFold(p.Name, query) ||
		containsFold(p.Description, query)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(values []string, substr string) bool {
	for _, v := range values {
		if containsFold(v, substr) {
			return true
		}
	}
	return false
}
