package store

import (
	"testing"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

func testCollections() ecosystem.Collections {
	return ecosystem.Collections{
		Stakeholders: []ecosystem.Stakeholder{
			{ID: "org-a", Name: "Funder A", Type: ecosystem.StakeholderGovernment},
			{ID: "org-b", Name: "Recipient B", Type: ecosystem.StakeholderIndustry},
			{ID: "org-c", Name: "Bystander C", Type: ecosystem.StakeholderResearch},
		},
		Technologies: []ecosystem.Technology{
			{ID: "tech-x", Name: "Tech X", Category: ecosystem.CategoryFuelCells, TRLCurrent: 6},
			{ID: "tech-y", Name: "Tech Y", Category: ecosystem.CategoryH2Storage, TRLCurrent: 14},
		},
		FundingEvents: []ecosystem.FundingEvent{
			{
				ID: "fund-1", Amount: 15_000_000, FundingType: ecosystem.FundingPublic,
				SourceID: "org-a", RecipientID: "org-b", RecipientType: "stakeholder",
				TechnologiesSupported: []string{"tech-x"},
			},
			{
				ID: "fund-2", Amount: 2_000_000, FundingType: ecosystem.FundingPrivate,
				SourceID: "org-a", RecipientID: "org-b", RecipientType: "stakeholder",
				TechnologiesSupported: []string{"tech-x", "tech-y"},
			},
		},
		Projects: []ecosystem.Project{
			{
				ID: "proj-1", Name: "Project One", Status: ecosystem.StatusActive,
				StartDate: "2024-01-15", EndDate: "2026-07-15",
				Participants: []string{"org-b"}, LeadOrganization: "org-b",
				Technologies: []string{"tech-x"},
			},
		},
		Relationships: []ecosystem.Relationship{
			{ID: "rel-1", Source: "org-a", Target: "org-b", Type: ecosystem.RelFunds, Weight: 17_000_000},
			{ID: "rel-2", Source: "org-b", Target: "tech-x", Type: ecosystem.RelAdvances, Weight: 0.5},
		},
	}
}

func TestDerive_StakeholderTotals(t *testing.T) {
	c := testCollections()
	Derive(&c)

	a, b, bystander := c.Stakeholders[0], c.Stakeholders[1], c.Stakeholders[2]

	if a.TotalFundingProvided != 17_000_000 {
		t.Fatalf("funder provided = %v, want 17000000", a.TotalFundingProvided)
	}
	if a.TotalFundingReceived != 0 {
		t.Fatalf("funder received = %v, want 0", a.TotalFundingReceived)
	}
	if b.TotalFundingReceived != 17_000_000 {
		t.Fatalf("recipient received = %v, want 17000000", b.TotalFundingReceived)
	}
	if bystander.TotalFundingReceived != 0 || bystander.TotalFundingProvided != 0 {
		t.Fatalf("bystander totals = %v/%v, want 0/0",
			bystander.TotalFundingReceived, bystander.TotalFundingProvided)
	}

	if a.RelationshipCount != 1 {
		t.Fatalf("funder relationship count = %d, want 1", a.RelationshipCount)
	}
	if b.RelationshipCount != 2 {
		t.Fatalf("recipient relationship count = %d, want 2", b.RelationshipCount)
	}
}

func TestDerive_TechnologyFields(t *testing.T) {
	c := testCollections()
	Derive(&c)

	x, y := c.Technologies[0], c.Technologies[1]

	if x.TotalFunding != 17_000_000 {
		t.Fatalf("tech-x total funding = %v, want 17000000", x.TotalFunding)
	}
	if x.FundingByType.Public != 15_000_000 || x.FundingByType.Private != 2_000_000 {
		t.Fatalf("tech-x funding by type = %+v", x.FundingByType)
	}
	if x.TRLColor != ecosystem.TRLAmber {
		t.Fatalf("tech-x color = %q, want amber", x.TRLColor)
	}
	if x.StakeholderCount != 1 {
		t.Fatalf("tech-x stakeholder count = %d, want 1", x.StakeholderCount)
	}
	if x.ProjectCount != 1 {
		t.Fatalf("tech-x project count = %d, want 1", x.ProjectCount)
	}

	// Out-of-range TRL is clamped before coloring.
	if y.TRLCurrent != 9 || y.TRLColor != ecosystem.TRLGreen {
		t.Fatalf("tech-y trl = %d/%q, want 9/green", y.TRLCurrent, y.TRLColor)
	}
	if y.TotalFunding != 2_000_000 {
		t.Fatalf("tech-y total funding = %v, want 2000000", y.TotalFunding)
	}
}

func TestDerive_ProjectDuration(t *testing.T) {
	c := testCollections()
	Derive(&c)

	if got := c.Projects[0].DurationMonths; got != 30 {
		t.Fatalf("duration = %d months, want 30", got)
	}
}

func TestDerive_RelationshipStrength(t *testing.T) {
	c := testCollections()
	Derive(&c)

	if got := c.Relationships[0].Strength; got != ecosystem.StrengthStrong {
		t.Fatalf("monetary relationship strength = %q, want strong", got)
	}
	if got := c.Relationships[1].Strength; got != ecosystem.StrengthMedium {
		t.Fatalf("affinity relationship strength = %q, want medium", got)
	}
}

// Running the derivation twice must not change any derived field: totals
// start from zero every pass.
func TestDerive_Idempotent(t *testing.T) {
	c := testCollections()
	Derive(&c)
	first := c.Stakeholders[1].TotalFundingReceived

	Derive(&c)
	second := c.Stakeholders[1].TotalFundingReceived

	if first != second {
		t.Fatalf("derive not idempotent: %v then %v", first, second)
	}
	if c.Technologies[0].TotalFunding != 17_000_000 {
		t.Fatalf("tech funding after second pass = %v, want 17000000", c.Technologies[0].TotalFunding)
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"whole years", "2023-01-01", "2026-01-01", 36},
		{"partial month rounds down", "2024-01-15", "2024-03-10", 1},
		{"same day", "2024-01-15", "2024-01-15", 0},
		{"missing end", "2024-01-15", "", 0},
		{"unparseable", "not-a-date", "2024-01-15", 0},
		{"end before start", "2025-01-01", "2024-01-01", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := monthsBetween(tc.start, tc.end); got != tc.want {
				t.Fatalf("monthsBetween(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}
