package search

import (
	"testing"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

func searchCollections() ecosystem.Collections {
	return ecosystem.Collections{
		Stakeholders: []ecosystem.Stakeholder{
			{ID: "org-a", Name: "Aerospace Technology Institute", Type: ecosystem.StakeholderIntermediary,
				Sector: "Aerospace R&D", Tags: []string{"funding-body", "flyzero"}},
			{ID: "org-b", Name: "ZeroAvia", Type: ecosystem.StakeholderIndustry,
				Description: "Hydrogen-electric propulsion developer", Tags: []string{"fuel-cells"}},
		},
		Technologies: []ecosystem.Technology{
			{ID: "tech-x", Name: "PEM Electrolysis", Category: ecosystem.CategoryH2Production,
				Tags: []string{"green-hydrogen"}},
		},
		FundingEvents: []ecosystem.FundingEvent{
			{ID: "fund-1", Program: "HyFlyer II", ImpactDescription: "Powertrain development"},
		},
		Projects: []ecosystem.Project{
			{ID: "proj-1", Name: "HyGround Pilot", Description: "Airport refuelling trial"},
		},
	}
}

func TestQuery_TagSubstringCaseInsensitive(t *testing.T) {
	results := Query(searchCollections(), "FLYZERO", 10)

	if len(results) != 1 {
		t.Fatalf("Query() returned %d results, want 1", len(results))
	}
	if results[0].ID != "org-a" || results[0].Kind != KindStakeholder {
		t.Fatalf("Query() = %+v, want org-a stakeholder", results[0])
	}
}

func TestQuery_ScansCollectionsInOrder(t *testing.T) {
	// "hy" hits ZeroAvia (description), PEM Electrolysis (tag), the
	// funding program and the project, in that collection order.
	results := Query(searchCollections(), "hy", 10)

	wantKinds := []Kind{KindStakeholder, KindTechnology, KindFunding, KindProject}
	if len(results) != len(wantKinds) {
		t.Fatalf("Query() returned %d results, want %d", len(results), len(wantKinds))
	}
	for i, want := range wantKinds {
		if results[i].Kind != want {
			t.Fatalf("result %d kind = %q, want %q", i, results[i].Kind, want)
		}
	}
}

func TestQuery_Limit(t *testing.T) {
	results := Query(searchCollections(), "hy", 2)
	if len(results) != 2 {
		t.Fatalf("Query() with limit 2 returned %d results", len(results))
	}
}

func TestQuery_EmptyQuery(t *testing.T) {
	results := Query(searchCollections(), "   ", 10)
	if len(results) != 0 {
		t.Fatalf("Query() with blank query returned %d results, want 0", len(results))
	}
}

func TestQuery_NoMatch(t *testing.T) {
	results := Query(searchCollections(), "quantum", 10)
	if results == nil {
		t.Fatal("Query() returned nil, want empty slice")
	}
	if len(results) != 0 {
		t.Fatalf("Query() returned %d results, want 0", len(results))
	}
}
