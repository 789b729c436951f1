package graph

import (
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// Subgraph restricts d to the selected node ids: only selected nodes
// survive, and only links whose endpoints are both selected. An empty
// selection returns d unchanged.
func Subgraph(d Data, selected []string) Data {
	if len(selected) == 0 {
		return d
	}

	keep := make(map[string]bool, len(selected))
	for _, id := range selected {
		keep[id] = true
	}

	nodes := make([]Node, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		if keep[n.ID] {
			nodes = append(nodes, n)
		}
	}
	links := make([]Link, 0, len(d.Links))
	for _, l := range d.Links {
		if keep[l.Source] && keep[l.Target] {
			links = append(links, l)
		}
	}
	return Data{Nodes: nodes, Links: links}
}

// Centrality returns the degree centrality of a node: the number of links
// touching it.
func Centrality(nodeID string, links []Link) int {
	degree := 0
	for _, l := range links {
		if l.Source == nodeID || l.Target == nodeID {
			degree++
		}
	}
	return degree
}

// Neighbors returns the distinct entity ids related to entityID through
// the given relationships, in first-seen order.
func Neighbors(entityID string, relationships []ecosystem.Relationship) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, rel := range relationships {
		var other string
		switch entityID {
		case rel.Source:
			other = rel.Target
		case rel.Target:
			other = rel.Source
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out
}
