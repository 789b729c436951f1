package ecosystem

// Collections bundles the five record collections that make up one view of
// the dataset. The same shape is used for the full loaded dataset and for
// filtered projections of it.
type Collections struct {
	Stakeholders  []Stakeholder  `json:"stakeholders"`
	Technologies  []Technology   `json:"technologies"`
	FundingEvents []FundingEvent `json:"funding_events"`
	Projects      []Project      `json:"projects"`
	Relationships []Relationship `json:"relationships"`
}

// Counts holds per-collection record counts.
type Counts struct {
	Stakeholders  int `json:"stakeholders"`
	Technologies  int `json:"technologies"`
	FundingEvents int `json:"funding_events"`
	Projects      int `json:"projects"`
	Relationships int `json:"relationships"`
}

// Metadata describes a serialized dataset.
type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	Counts      Counts `json:"counts"`
	Version     string `json:"version"`
}

// Dataset is a complete loadable dataset: the five collections plus the
// metadata record that accompanies the serialized form.
type Dataset struct {
	Collections
	Metadata Metadata `json:"metadata"`
}

// CountAll returns the actual per-collection counts of c.
func (c Collections) CountAll() Counts {
	return Counts{
		Stakeholders:  len(c.Stakeholders),
		Technologies:  len(c.Technologies),
		FundingEvents: len(c.FundingEvents),
		Projects:      len(c.Projects),
		Relationships: len(c.Relationships),
	}
}
