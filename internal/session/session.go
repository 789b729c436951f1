// Package session holds the server's exploration state: the loaded store,
// the active filter spec, saved presets and the current selection. Route
// handlers run concurrently, so all access goes through the mutex.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/navigate-zea/navigate/backend/internal/util"
	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
	"github.com/navigate-zea/navigate/backend/pkg/filter"
	"github.com/navigate-zea/navigate/backend/pkg/store"
)

// Preset is a named, saved filter specification.
type Preset struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Filters filter.Spec `json:"filters"`
}

// Session is the shared exploration state.
type Session struct {
	mu sync.RWMutex

	store   *store.Store
	source  store.FileSource
	filters filter.Spec
	presets []Preset

	selected     []string
	highlighted  []string
	activeEntity string

	insights []ai.Insight
}

// New creates a session around an already loaded store. The source is kept
// for reloads.
func New(s *store.Store, source store.FileSource) *Session {
	return &Session{
		store:   s,
		source:  source,
		filters: filter.Default(),
		presets: defaultPresets(),
	}
}

func defaultPresets() []Preset {
	return []Preset{
		{
			ID:      "preset-default",
			Name:    "Default",
			Filters: filter.Default(),
		},
		{
			ID:   "preset-trl-gap",
			Name: "TRL 6-7 Gap",
			Filters: filter.Spec{
				TRLRange:     [2]int{6, 7},
				FundingRange: [2]float64{0, 5_000_000},
			},
		},
		{
			ID:   "preset-gov-funded",
			Name: "Government Funded",
			Filters: filter.Spec{
				StakeholderTypes: []ecosystem.StakeholderType{ecosystem.StakeholderGovernment},
				FundingTypes:     []ecosystem.FundingType{ecosystem.FundingPublic},
				TRLRange:         [2]int{1, 9},
				FundingRange:     [2]float64{0, 1_000_000_000},
			},
		},
	}
}

// Reload re-reads the dataset from the session's source and swaps it into
// the store. Filters and presets survive a reload.
func (s *Session) Reload(ctx context.Context) error {
	ds, err := store.ReadDataset(ctx, s.source)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ds)
}

// Collections returns the full, unfiltered collections.
func (s *Session) Collections() ecosystem.Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Collections()
}

// Metadata returns the dataset metadata of the last successful load.
func (s *Session) Metadata() ecosystem.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Metadata()
}

// View returns the collections filtered by the active spec.
func (s *Session) View() ecosystem.Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Apply(s.store.Collections(), s.filters)
}

// Filters returns the active filter spec.
func (s *Session) Filters() filter.Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetFilters replaces the active filter spec.
func (s *Session) SetFilters(spec filter.Spec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = spec
}

// ResetFilters restores the no-restriction spec.
func (s *Session) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filter.Default()
}

// Presets returns the saved presets in insertion order.
func (s *Session) Presets() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// SavePreset stores a new preset under a fresh id and returns it.
func (s *Session) SavePreset(name string, spec filter.Spec) (Preset, error) {
	id, err := util.NewID()
	if err != nil {
		return Preset{}, err
	}

	p := Preset{ID: id, Name: name, Filters: spec}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets = append(s.presets, p)
	return p, nil
}

// DeletePreset removes the preset with the given id.
func (s *Session) DeletePreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.presets {
		if p.ID == id {
			s.presets = append(s.presets[:i], s.presets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("preset %q not found", id)
}

// ApplyPreset makes the named preset's filters the active spec.
func (s *Session) ApplyPreset(id string) (Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.presets {
		if p.ID == id {
			s.filters = p.Filters
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset %q not found", id)
}

// Selection returns the selected entity ids, the highlighted ids and the
// active entity.
func (s *Session) Selection() (selected []string, highlighted []string, active string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	selected = append(selected, s.selected...)
	highlighted = append(highlighted, s.highlighted...)
	return selected, highlighted, s.activeEntity
}

// SetSelection replaces the selection state.
func (s *Session) SetSelection(selected []string, highlighted []string, active string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = append([]string(nil), selected...)
	s.highlighted = append([]string(nil), highlighted...)
	s.activeEntity = active
}

// Insights returns the insights pinned by the last generation.
func (s *Session) Insights() []ai.Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ai.Insight, len(s.insights))
	copy(out, s.insights)
	return out
}

// SetInsights replaces the pinned insights.
func (s *Session) SetInsights(insights []ai.Insight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights = append([]ai.Insight(nil), insights...)
}
