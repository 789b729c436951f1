package store

import (
	"time"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// Derive recomputes every derived field in c from the full collections.
// It always starts from zero so running it twice yields identical results;
// derived fields are never incrementally patched.
//
// The pass is O(stakeholders x funding_events + technologies x
// funding_events + stakeholders x relationships), which is fine for
// datasets of hundreds of records. Indexed lookups would be needed at tens
// of thousands.
func Derive(c *ecosystem.Collections) {
	deriveStakeholders(c)
	deriveTechnologies(c)
	deriveProjects(c)
	deriveRelationships(c)
}

func deriveStakeholders(c *ecosystem.Collections) {
	for i := range c.Stakeholders {
		s := &c.Stakeholders[i]
		s.TotalFundingReceived = 0
		s.TotalFundingProvided = 0
		s.RelationshipCount = 0

		for _, ev := range c.FundingEvents {
			if ev.RecipientID == s.ID {
				s.TotalFundingReceived += ev.Amount
			}
			if ev.SourceID == s.ID {
				s.TotalFundingProvided += ev.Amount
			}
		}
		for _, rel := range c.Relationships {
			if rel.Source == s.ID || rel.Target == s.ID {
				s.RelationshipCount++
			}
		}
	}
}

func deriveTechnologies(c *ecosystem.Collections) {
	for i := range c.Technologies {
		t := &c.Technologies[i]
		t.TRLCurrent = ecosystem.ClampTRL(t.TRLCurrent)
		t.TRLColor = ecosystem.ColorForTRL(t.TRLCurrent)
		t.TotalFunding = 0
		t.FundingByType = ecosystem.FundingByType{}
		t.StakeholderCount = 0
		t.ProjectCount = 0

		for _, ev := range c.FundingEvents {
			if !containsID(ev.TechnologiesSupported, t.ID) {
				continue
			}
			t.TotalFunding += ev.Amount
			switch ev.FundingType {
			case ecosystem.FundingPublic:
				t.FundingByType.Public += ev.Amount
			case ecosystem.FundingPrivate:
				t.FundingByType.Private += ev.Amount
			case ecosystem.FundingMixed:
				t.FundingByType.Mixed += ev.Amount
			}
		}
		for _, rel := range c.Relationships {
			if rel.Type == ecosystem.RelAdvances && rel.Target == t.ID {
				t.StakeholderCount++
			}
		}
		for _, p := range c.Projects {
			if containsID(p.Technologies, t.ID) {
				t.ProjectCount++
			}
		}
	}
}

func deriveProjects(c *ecosystem.Collections) {
	for i := range c.Projects {
		p := &c.Projects[i]
		p.DurationMonths = monthsBetween(p.StartDate, p.EndDate)
	}
}

func deriveRelationships(c *ecosystem.Collections) {
	for i := range c.Relationships {
		r := &c.Relationships[i]
		r.Strength = ecosystem.TierForWeight(r.Weight)
	}
}

// monthsBetween returns the whole months between two ISO dates, or 0 when
// either date is missing or unparseable.
func monthsBetween(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return 0
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil || to.Before(from) {
		return 0
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
