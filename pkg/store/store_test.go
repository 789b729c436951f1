package store

import (
	"strings"
	"testing"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

func validDataset() ecosystem.Dataset {
	ds := ecosystem.Dataset{
		Metadata: ecosystem.Metadata{GeneratedAt: "2025-06-01T00:00:00Z", Version: "test-1"},
	}
	ds.Collections = testCollections()
	return ds
}

func TestLoad_ComputesDerivedFields(t *testing.T) {
	s := New()
	if err := s.Load(validDataset()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := s.Stakeholders()[1].TotalFundingReceived; got != 17_000_000 {
		t.Fatalf("received = %v, want 17000000", got)
	}
	if got := s.Metadata().Counts.Stakeholders; got != 3 {
		t.Fatalf("metadata stakeholder count = %d, want 3", got)
	}
}

func TestLoad_DoesNotMutateInput(t *testing.T) {
	ds := validDataset()
	s := New()
	if err := s.Load(ds); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if ds.Stakeholders[1].TotalFundingReceived != 0 {
		t.Fatalf("input dataset was mutated: received = %v", ds.Stakeholders[1].TotalFundingReceived)
	}
}

// A failed load must leave the previously loaded dataset serving.
func TestLoad_FailureKeepsPriorState(t *testing.T) {
	s := New()
	if err := s.Load(validDataset()); err != nil {
		t.Fatalf("initial Load() error = %v", err)
	}

	bad := validDataset()
	bad.Relationships[0].Source = "org-missing"
	if err := s.Load(bad); err == nil {
		t.Fatal("Load() with dangling reference succeeded, want error")
	}

	if got := len(s.Stakeholders()); got != 3 {
		t.Fatalf("stakeholders after failed load = %d, want 3", got)
	}
	if got := s.Stakeholders()[1].TotalFundingReceived; got != 17_000_000 {
		t.Fatalf("derived state lost after failed load: %v", got)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ecosystem.Collections)
		wantSub string
	}{
		{
			"dangling relationship source",
			func(c *ecosystem.Collections) { c.Relationships[0].Source = "nope" },
			"unknown source",
		},
		{
			"dangling relationship target",
			func(c *ecosystem.Collections) { c.Relationships[0].Target = "nope" },
			"unknown target",
		},
		{
			"negative weight",
			func(c *ecosystem.Collections) { c.Relationships[1].Weight = -0.5 },
			"negative weight",
		},
		{
			"negative amount",
			func(c *ecosystem.Collections) { c.FundingEvents[0].Amount = -1 },
			"negative amount",
		},
		{
			"unknown funder",
			func(c *ecosystem.Collections) { c.FundingEvents[0].SourceID = "nope" },
			"unknown funder",
		},
		{
			"unknown recipient",
			func(c *ecosystem.Collections) { c.FundingEvents[0].RecipientID = "nope" },
			"unknown recipient",
		},
		{
			"unknown supported technology",
			func(c *ecosystem.Collections) { c.FundingEvents[0].TechnologiesSupported = []string{"nope"} },
			"unknown technology",
		},
		{
			"duplicate entity id",
			func(c *ecosystem.Collections) { c.Technologies[0].ID = "org-a" },
			"duplicate entity id",
		},
		{
			"empty stakeholder id",
			func(c *ecosystem.Collections) { c.Stakeholders[0].ID = "" },
			"empty id",
		},
		{
			"unknown project participant",
			func(c *ecosystem.Collections) { c.Projects[0].Participants = []string{"nope"} },
			"unknown participant",
		},
		{
			"unknown project technology",
			func(c *ecosystem.Collections) { c.Projects[0].Technologies = []string{"nope"} },
			"unknown technology",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testCollections()
			tc.mutate(&c)
			err := Validate(c)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("Validate() error = %q, want substring %q", err, tc.wantSub)
			}
		})
	}
}

func TestValidate_ProjectRecipient(t *testing.T) {
	c := testCollections()
	c.FundingEvents[0].RecipientID = "proj-1"
	c.FundingEvents[0].RecipientType = "project"

	if err := Validate(c); err != nil {
		t.Fatalf("Validate() error = %v, want nil for project recipient", err)
	}
}
