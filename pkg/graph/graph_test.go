package graph

import (
	"testing"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

func TestProject_Counts(t *testing.T) {
	stakeholders := []ecosystem.Stakeholder{
		{ID: "org-1", Name: "DfT", Type: ecosystem.StakeholderGovernment},
		{ID: "org-2", Name: "ZeroAvia", Type: ecosystem.StakeholderIndustry},
	}
	technologies := []ecosystem.Technology{
		{ID: "tech-1", Name: "Fuel Cells", Category: ecosystem.CategoryFuelCells},
	}
	relationships := []ecosystem.Relationship{
		{ID: "rel-1", Source: "org-1", Target: "org-2", Type: ecosystem.RelFunds},
		{ID: "rel-2", Source: "org-2", Target: "tech-1", Type: ecosystem.RelAdvances},
	}

	d := Project(stakeholders, technologies, relationships)

	if len(d.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(d.Nodes))
	}
	if len(d.Links) != 2 {
		t.Fatalf("got %d links, want 2", len(d.Links))
	}
}

func TestProject_SizeClamps(t *testing.T) {
	stakeholders := []ecosystem.Stakeholder{
		{ID: "org-small", Type: ecosystem.StakeholderResearch, TotalFundingProvided: 0},
		{ID: "org-huge", Type: ecosystem.StakeholderGovernment, TotalFundingProvided: 900_000_000},
	}
	technologies := []ecosystem.Technology{
		{ID: "tech-small", Category: ecosystem.CategoryAircraft, TotalFunding: 0},
		{ID: "tech-huge", Category: ecosystem.CategoryH2Storage, TotalFunding: 500_000_000},
	}

	d := Project(stakeholders, technologies, nil)

	byID := map[string]Node{}
	for _, n := range d.Nodes {
		byID[n.ID] = n
	}

	if got := byID["org-small"].Value; got != 3 {
		t.Fatalf("small stakeholder size = %v, want 3", got)
	}
	if got := byID["org-huge"].Value; got != 15 {
		t.Fatalf("huge stakeholder size = %v, want clamped 15", got)
	}
	if got := byID["tech-small"].Value; got != 2 {
		t.Fatalf("small technology size = %v, want 2", got)
	}
	if got := byID["tech-huge"].Value; got != 12 {
		t.Fatalf("huge technology size = %v, want clamped 12", got)
	}
}

func TestColors_UnknownFallsBack(t *testing.T) {
	if got := StakeholderColor("Syndicate"); got != "#6b7280" {
		t.Fatalf("unknown stakeholder color = %q, want neutral", got)
	}
	if got := TechnologyColor("Teleportation"); got != "#6b7280" {
		t.Fatalf("unknown technology color = %q, want neutral", got)
	}
	if got := StakeholderColor(ecosystem.StakeholderGovernment); got != "#3b82f6" {
		t.Fatalf("government color = %q", got)
	}
}

func TestProject_LinkStrength(t *testing.T) {
	relationships := []ecosystem.Relationship{
		{ID: "rel-1", Source: "a", Target: "b", Type: ecosystem.RelFunds},
		{ID: "rel-2", Source: "a", Target: "b", Type: ecosystem.RelCollaboratesWith},
		{ID: "rel-3", Source: "a", Target: "b", Type: ecosystem.RelSupplies},
		{ID: "rel-4", Source: "a", Target: "b", Type: ecosystem.RelFunds,
			Metadata: ecosystem.RelationshipMetadata{Strength: 0.95}},
	}

	d := Project(nil, nil, relationships)

	wantStrengths := []float64{0.8, 0.6, 0.5, 0.95}
	for i, want := range wantStrengths {
		if d.Links[i].Strength != want {
			t.Fatalf("link %d strength = %v, want %v", i, d.Links[i].Strength, want)
		}
		if d.Links[i].Width != want*2 {
			t.Fatalf("link %d width = %v, want %v", i, d.Links[i].Width, want*2)
		}
	}
}

func TestSubgraph(t *testing.T) {
	d := Data{
		Nodes: []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		Links: []Link{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c"},
			{Source: "c", Target: "d"},
		},
	}

	sub := Subgraph(d, []string{"a", "b"})

	// Only the selected nodes survive; the a-b link keeps both ends.
	if len(sub.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(sub.Nodes))
	}
	if len(sub.Links) != 1 || sub.Links[0].Target != "b" {
		t.Fatalf("got links %+v, want only a-b", sub.Links)
	}
}

func TestSubgraph_EmptySelection(t *testing.T) {
	d := Data{Nodes: []Node{{ID: "a"}}, Links: nil}
	sub := Subgraph(d, nil)
	if len(sub.Nodes) != 1 {
		t.Fatal("empty selection must return the graph unchanged")
	}
}

func TestCentrality(t *testing.T) {
	links := []Link{
		{Source: "a", Target: "b"},
		{Source: "a", Target: "c"},
		{Source: "d", Target: "a"},
	}
	if got := Centrality("a", links); got != 3 {
		t.Fatalf("Centrality(a) = %d, want 3", got)
	}
	if got := Centrality("b", links); got != 1 {
		t.Fatalf("Centrality(b) = %d, want 1", got)
	}
}

func TestNeighbors_DistinctFirstSeen(t *testing.T) {
	rels := []ecosystem.Relationship{
		{Source: "a", Target: "b"},
		{Source: "c", Target: "a"},
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
	}

	got := Neighbors("a", rels)
	want := []string{"b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(a) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(a) = %v, want %v", got, want)
		}
	}
}
