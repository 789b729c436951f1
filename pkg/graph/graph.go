// Package graph projects filtered entities and relationships into the
// node/link structure consumed by a force-directed layout renderer.
//
// Project is a pure, deterministic transform: it never fabricates nodes or
// links absent from its input, so output counts are always bounded by the
// input counts.
package graph

import (
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// NodeType tags which collection a node was projected from.
type NodeType string

const (
	NodeStakeholder NodeType = "stakeholder"
	NodeTechnology  NodeType = "technology"
)

// Node is one layout node with its visual encodings.
type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Type  NodeType `json:"type"`
	Value float64  `json:"value"`
	Color string   `json:"color"`
}

// Link is one layout edge. Width is proportional to Strength.
type Link struct {
	Source   string                     `json:"source"`
	Target   string                     `json:"target"`
	Type     ecosystem.RelationshipType `json:"type"`
	Strength float64                    `json:"strength"`
	Width    float64                    `json:"width"`
}

// Data is a projected graph.
type Data struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node sizes are funding-derived magnitudes clamped into a fixed visual
// range so a single heavily funded entity cannot dominate the layout.
const (
	stakeholderSizeMin     = 3
	stakeholderSizeMax     = 15
	stakeholderSizeDivisor = 1_000_000
	technologySizeMin      = 2
	technologySizeMax      = 12
	technologySizeDivisor  = 5_000_000
)

// neutralColor is the fallback for categories missing from the lookup
// tables, so rendering never fails on an unrecognized category.
const neutralColor = "#6b7280"

var stakeholderColors = map[ecosystem.StakeholderType]string{
	ecosystem.StakeholderGovernment:   "#3b82f6",
	ecosystem.StakeholderResearch:     "#22c55e",
	ecosystem.StakeholderIndustry:     "#f59e0b",
	ecosystem.StakeholderIntermediary: "#a855f7",
}

var technologyColors = map[ecosystem.TechnologyCategory]string{
	ecosystem.CategoryH2Production:   "#06b6d4",
	ecosystem.CategoryH2Storage:      "#8b5cf6",
	ecosystem.CategoryFuelCells:      "#10b981",
	ecosystem.CategoryAircraft:       "#f59e0b",
	ecosystem.CategoryInfrastructure: "#ef4444",
}

// StakeholderColor returns the display color for a stakeholder type.
func StakeholderColor(t ecosystem.StakeholderType) string {
	if c, ok := stakeholderColors[t]; ok {
		return c
	}
	return neutralColor
}

// TechnologyColor returns the display color for a technology category.
func TechnologyColor(c ecosystem.TechnologyCategory) string {
	if col, ok := technologyColors[c]; ok {
		return col
	}
	return neutralColor
}

// Project maps the filtered stakeholders, technologies and relationships
// into one node per entity and one link per relationship. Link strength is
// the explicit metadata strength when present, else a type-based default.
func Project(
	stakeholders []ecosystem.Stakeholder,
	technologies []ecosystem.Technology,
	relationships []ecosystem.Relationship,
) Data {
	nodes := make([]Node, 0, len(stakeholders)+len(technologies))
	for _, s := range stakeholders {
		nodes = append(nodes, Node{
			ID:    s.ID,
			Label: s.Name,
			Type:  NodeStakeholder,
			Value: clamp(stakeholderSizeMin, stakeholderSizeMax,
				s.TotalFundingProvided/stakeholderSizeDivisor+stakeholderSizeMin),
			Color: StakeholderColor(s.Type),
		})
	}
	for _, t := range technologies {
		nodes = append(nodes, Node{
			ID:    t.ID,
			Label: t.Name,
			Type:  NodeTechnology,
			Value: clamp(technologySizeMin, technologySizeMax,
				t.TotalFunding/technologySizeDivisor+technologySizeMin),
			Color: TechnologyColor(t.Category),
		})
	}

	links := make([]Link, 0, len(relationships))
	for _, rel := range relationships {
		strength := rel.Metadata.Strength
		if strength <= 0 {
			strength = defaultStrength(rel.Type)
		}
		links = append(links, Link{
			Source:   rel.Source,
			Target:   rel.Target,
			Type:     rel.Type,
			Strength: strength,
			Width:    strength * 2,
		})
	}

	return Data{Nodes: nodes, Links: links}
}

func defaultStrength(t ecosystem.RelationshipType) float64 {
	switch t {
	case ecosystem.RelFunds:
		return 0.8
	case ecosystem.RelCollaboratesWith:
		return 0.6
	default:
		return 0.5
	}
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
