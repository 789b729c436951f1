package ecosystem

// StakeholderType classifies an organization in the ecosystem.
type StakeholderType string

const (
	StakeholderGovernment   StakeholderType = "Government"
	StakeholderResearch     StakeholderType = "Research"
	StakeholderIndustry     StakeholderType = "Industry"
	StakeholderIntermediary StakeholderType = "Intermediary"
)

// TechnologyCategory groups technologies by their role in the
// hydrogen-aviation value chain.
type TechnologyCategory string

const (
	CategoryH2Production   TechnologyCategory = "H2Production"
	CategoryH2Storage      TechnologyCategory = "H2Storage"
	CategoryFuelCells      TechnologyCategory = "FuelCells"
	CategoryAircraft       TechnologyCategory = "Aircraft"
	CategoryInfrastructure TechnologyCategory = "Infrastructure"
)

// FundingType distinguishes the origin of funding money.
type FundingType string

const (
	FundingPublic  FundingType = "Public"
	FundingPrivate FundingType = "Private"
	FundingMixed   FundingType = "Mixed"
)

// LifecycleStatus is shared by funding events and projects.
type LifecycleStatus string

const (
	StatusActive    LifecycleStatus = "Active"
	StatusCompleted LifecycleStatus = "Completed"
	StatusPlanned   LifecycleStatus = "Planned"
)

// RelationshipType is the edge label between two entities. Only
// collaborates_with is symmetric; every other type is directed.
type RelationshipType string

const (
	RelFunds            RelationshipType = "funds"
	RelResearches       RelationshipType = "researches"
	RelCollaboratesWith RelationshipType = "collaborates_with"
	RelAdvances         RelationshipType = "advances"
	RelParticipatesIn   RelationshipType = "participates_in"
	RelOwns             RelationshipType = "owns"
	RelSupplies         RelationshipType = "supplies"
)

// DataConfidence annotates how trustworthy a record is.
type DataConfidence string

const (
	ConfidenceVerified    DataConfidence = "verified"
	ConfidenceEstimated   DataConfidence = "estimated"
	ConfidencePlaceholder DataConfidence = "placeholder"
)

// DataQuality tracks provenance for a record.
type DataQuality struct {
	Confidence   DataConfidence `json:"confidence"`
	LastVerified string         `json:"last_verified"`
	VerifiedBy   string         `json:"verified_by,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

// KnowledgeSource is a citation inside a knowledge base entry.
type KnowledgeSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}

// KnowledgeBase holds free-text background material attached to an entity.
type KnowledgeBase struct {
	Content      string            `json:"content"`
	Sources      []KnowledgeSource `json:"sources"`
	LastUpdated  string            `json:"last_updated"`
	Contributors []string          `json:"contributors,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Confidence   string            `json:"confidence"`
}

// Location places a stakeholder geographically.
type Location struct {
	City    string `json:"city,omitempty"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Stakeholder is an organization participating in the ecosystem.
//
// TotalFundingReceived, TotalFundingProvided and RelationshipCount are
// derived fields: they are recomputed from the funding-event and
// relationship collections on every load and are never authoritative.
type Stakeholder struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            StakeholderType `json:"type"`
	Sector          string          `json:"sector"`
	FundingCapacity string          `json:"funding_capacity"`

	TotalFundingReceived float64 `json:"total_funding_received"`
	TotalFundingProvided float64 `json:"total_funding_provided"`

	Location    Location `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`

	RelationshipCount int `json:"relationship_count"`

	KnowledgeBase *KnowledgeBase `json:"knowledge_base,omitempty"`
	DataQuality   DataQuality    `json:"data_quality"`
}

// FundingByType partitions a technology's funding by funding type.
type FundingByType struct {
	Public  float64 `json:"public"`
	Private float64 `json:"private"`
	Mixed   float64 `json:"mixed"`
}

// Technology is a technical capability tracked by TRL.
//
// TRLColor, TotalFunding, FundingByType, StakeholderCount and ProjectCount
// are derived and recomputed on load. TRLColor is a pure function of
// TRLCurrent and must never be set independently.
type Technology struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category TechnologyCategory `json:"category"`

	TRLCurrent int      `json:"trl_current"`
	TRLColor   TRLColor `json:"trl_color"`

	MaturityRisk    string `json:"maturity_risk"`
	DeploymentReady bool   `json:"deployment_ready"`

	TotalFunding  float64       `json:"total_funding"`
	FundingByType FundingByType `json:"funding_by_type"`

	StakeholderCount int `json:"stakeholder_count"`
	ProjectCount     int `json:"project_count"`

	Description string   `json:"description"`
	Tags        []string `json:"tags"`

	RegionalAvailability []string `json:"regional_availability,omitempty"`

	KnowledgeBase *KnowledgeBase `json:"knowledge_base,omitempty"`
	DataQuality   DataQuality    `json:"data_quality"`
}

// TRLImpact records a before/after TRL pair attributed to a funding event.
type TRLImpact struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// FundingEvent is a single monetary transfer. Amounts are non-negative and
// in a single currency (GBP).
type FundingEvent struct {
	ID          string      `json:"id"`
	Amount      float64     `json:"amount"`
	Currency    string      `json:"currency"`
	FundingType FundingType `json:"funding_type"`

	SourceID      string `json:"source_id"`
	RecipientID   string `json:"recipient_id"`
	RecipientType string `json:"recipient_type"`

	Program     string `json:"program"`
	ProgramType string `json:"program_type,omitempty"`

	Date      string          `json:"date"`
	StartDate string          `json:"start_date,omitempty"`
	EndDate   string          `json:"end_date,omitempty"`
	Status    LifecycleStatus `json:"status"`

	ImpactDescription     string     `json:"impact_description"`
	TechnologiesSupported []string   `json:"technologies_supported,omitempty"`
	TRLImpact             *TRLImpact `json:"trl_impact,omitempty"`

	DataQuality DataQuality `json:"data_quality"`
}

// ProjectOutcomes summarizes what a completed project delivered.
type ProjectOutcomes struct {
	TRLAdvancement   int    `json:"trl_advancement,omitempty"`
	Publications     int    `json:"publications,omitempty"`
	Patents          int    `json:"patents,omitempty"`
	CommercialImpact string `json:"commercial_impact,omitempty"`
}

// Project groups stakeholders and technologies under a shared timeline.
// DurationMonths is derived from StartDate/EndDate on load.
type Project struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Status LifecycleStatus `json:"status"`

	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date,omitempty"`
	DurationMonths int    `json:"duration_months,omitempty"`

	Participants     []string `json:"participants"`
	LeadOrganization string   `json:"lead_organization,omitempty"`

	Technologies      []string `json:"technologies"`
	PrimaryTechnology string   `json:"primary_technology,omitempty"`

	TotalBudget   float64  `json:"total_budget,omitempty"`
	FundingEvents []string `json:"funding_events,omitempty"`

	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
	Tags        []string `json:"tags"`

	Outcomes *ProjectOutcomes `json:"outcomes,omitempty"`

	KnowledgeBase *KnowledgeBase `json:"knowledge_base,omitempty"`
	DataQuality   DataQuality    `json:"data_quality"`
}

// RelationshipMetadata carries optional context for an edge. All fields
// default to their zero value; Strength 0 means "use the type default"
// when projecting the edge for layout.
type RelationshipMetadata struct {
	StartDate   string  `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Description string  `json:"description,omitempty"`
	Program     string  `json:"program,omitempty"`
	ProjectID   string  `json:"project_id,omitempty"`
	Strength    float64 `json:"strength,omitempty"`
}

// Relationship is a typed edge between two entities. Source and Target may
// each reference a stakeholder or a technology. Weight is a monetary amount
// for funding relationships and a 0-1 affinity otherwise; Strength is
// derived from Weight on load.
type Relationship struct {
	ID     string           `json:"id"`
	Source string           `json:"source"`
	Target string           `json:"target"`
	Type   RelationshipType `json:"type"`

	Weight   float64      `json:"weight"`
	Strength StrengthTier `json:"strength"`

	Metadata      RelationshipMetadata `json:"metadata"`
	Bidirectional bool                 `json:"bidirectional"`
}
