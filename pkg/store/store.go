// Package store owns the loaded dataset and its derived fields.
//
// A Store is replaced wholesale: Load validates the incoming dataset, runs
// the derivation pass and only then swaps the collections in, so readers
// never observe a partial load. There is no update, delete or merge.
package store

import (
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// Store holds the five record collections and the metadata of the last
// successful load. The zero value is empty and usable.
type Store struct {
	collections ecosystem.Collections
	metadata    ecosystem.Metadata
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Load replaces all five collections with the contents of ds. The dataset
// is validated and derived fields are computed before anything is swapped
// in; on error the previous state is left untouched.
func (s *Store) Load(ds ecosystem.Dataset) error {
	if err := Validate(ds.Collections); err != nil {
		return err
	}

	next := cloneCollections(ds.Collections)
	Derive(&next)

	s.collections = next
	s.metadata = ds.Metadata
	s.metadata.Counts = next.CountAll()
	return nil
}

// Collections returns the loaded collections. Callers must treat the
// returned slices as read-only.
func (s *Store) Collections() ecosystem.Collections {
	return s.collections
}

// Metadata returns the metadata of the last successful load, with counts
// reflecting the loaded collections.
func (s *Store) Metadata() ecosystem.Metadata {
	return s.metadata
}

func (s *Store) Stakeholders() []ecosystem.Stakeholder {
	return s.collections.Stakeholders
}

func (s *Store) Technologies() []ecosystem.Technology {
	return s.collections.Technologies
}

func (s *Store) FundingEvents() []ecosystem.FundingEvent {
	return s.collections.FundingEvents
}

func (s *Store) Projects() []ecosystem.Project {
	return s.collections.Projects
}

func (s *Store) Relationships() []ecosystem.Relationship {
	return s.collections.Relationships
}

func cloneCollections(c ecosystem.Collections) ecosystem.Collections {
	out := ecosystem.Collections{
		Stakeholders:  make([]ecosystem.Stakeholder, len(c.Stakeholders)),
		Technologies:  make([]ecosystem.Technology, len(c.Technologies)),
		FundingEvents: make([]ecosystem.FundingEvent, len(c.FundingEvents)),
		Projects:      make([]ecosystem.Project, len(c.Projects)),
		Relationships: make([]ecosystem.Relationship, len(c.Relationships)),
	}
	copy(out.Stakeholders, c.Stakeholders)
	copy(out.Technologies, c.Technologies)
	copy(out.FundingEvents, c.FundingEvents)
	copy(out.Projects, c.Projects)
	copy(out.Relationships, c.Relationships)
	return out
}
