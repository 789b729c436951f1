package store

import (
	"fmt"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// Validate checks referential integrity across the collections: every id
// referenced by a relationship, funding event or project must resolve to a
// record in its companion collection. Validation runs eagerly at load time
// so dangling references fail loudly instead of producing silently
// inconsistent derived totals.
func Validate(c ecosystem.Collections) error {
	entities := make(map[string]bool, len(c.Stakeholders)+len(c.Technologies))
	stakeholders := make(map[string]bool, len(c.Stakeholders))
	technologies := make(map[string]bool, len(c.Technologies))
	projects := make(map[string]bool, len(c.Projects))

	for _, s := range c.Stakeholders {
		if s.ID == "" {
			return fmt.Errorf("stakeholder %q has an empty id", s.Name)
		}
		if entities[s.ID] {
			return fmt.Errorf("duplicate entity id %q", s.ID)
		}
		entities[s.ID] = true
		stakeholders[s.ID] = true
	}
	for _, t := range c.Technologies {
		if t.ID == "" {
			return fmt.Errorf("technology %q has an empty id", t.Name)
		}
		if entities[t.ID] {
			return fmt.Errorf("duplicate entity id %q", t.ID)
		}
		entities[t.ID] = true
		technologies[t.ID] = true
	}
	for _, p := range c.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %q has an empty id", p.Name)
		}
		projects[p.ID] = true
	}

	for _, r := range c.Relationships {
		if !entities[r.Source] {
			return fmt.Errorf("relationship %s: unknown source %q", r.ID, r.Source)
		}
		if !entities[r.Target] {
			return fmt.Errorf("relationship %s: unknown target %q", r.ID, r.Target)
		}
		if r.Weight < 0 {
			return fmt.Errorf("relationship %s: negative weight %v", r.ID, r.Weight)
		}
	}

	for _, ev := range c.FundingEvents {
		if ev.Amount < 0 {
			return fmt.Errorf("funding event %s: negative amount %v", ev.ID, ev.Amount)
		}
		if !stakeholders[ev.SourceID] {
			return fmt.Errorf("funding event %s: unknown funder %q", ev.ID, ev.SourceID)
		}
		switch ev.RecipientType {
		case "project":
			if !projects[ev.RecipientID] {
				return fmt.Errorf("funding event %s: unknown recipient project %q", ev.ID, ev.RecipientID)
			}
		default:
			if !stakeholders[ev.RecipientID] {
				return fmt.Errorf("funding event %s: unknown recipient %q", ev.ID, ev.RecipientID)
			}
		}
		for _, techID := range ev.TechnologiesSupported {
			if !technologies[techID] {
				return fmt.Errorf("funding event %s: unknown technology %q", ev.ID, techID)
			}
		}
	}

	for _, p := range c.Projects {
		for _, id := range p.Participants {
			if !stakeholders[id] {
				return fmt.Errorf("project %s: unknown participant %q", p.ID, id)
			}
		}
		if p.LeadOrganization != "" && !stakeholders[p.LeadOrganization] {
			return fmt.Errorf("project %s: unknown lead organization %q", p.ID, p.LeadOrganization)
		}
		for _, id := range p.Technologies {
			if !technologies[id] {
				return fmt.Errorf("project %s: unknown technology %q", p.ID, id)
			}
		}
	}

	return nil
}
