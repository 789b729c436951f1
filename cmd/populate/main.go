// Command populate writes a seed dataset for local development into the
// data directory: real organizations from the UK hydrogen aviation
// ecosystem with estimated figures.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
	"github.com/navigate-zea/navigate/backend/pkg/logger"
	"github.com/navigate-zea/navigate/backend/pkg/logger/console"
	"github.com/navigate-zea/navigate/backend/pkg/store"
)

func main() {
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{Debug: false}))

	out := flag.String("out", "data", "output directory for the dataset files")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Fatal("Failed to create output directory", "dir", *out, "err", err)
	}

	ds := seedDataset()

	files := map[string]any{
		store.FileStakeholders:  ds.Stakeholders,
		store.FileTechnologies:  ds.Technologies,
		store.FileFundingEvents: ds.FundingEvents,
		store.FileProjects:      ds.Projects,
		store.FileRelationships: ds.Relationships,
		store.FileMetadata:      ds.Metadata,
	}

	for name, payload := range files {
		raw, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			logger.Fatal("Failed to serialize", "file", name, "err", err)
		}
		path := filepath.Join(*out, name)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			logger.Fatal("Failed to write", "file", path, "err", err)
		}
		logger.Info("Wrote", "file", path)
	}
}

func seedDataset() ecosystem.Dataset {
	estimated := ecosystem.DataQuality{
		Confidence:   ecosystem.ConfidenceEstimated,
		LastVerified: "2025-06-01",
	}

	stakeholders := []ecosystem.Stakeholder{
		{
			ID: "org-dft-001", Name: "Department for Transport",
			Type: ecosystem.StakeholderGovernment, Sector: "Aviation policy",
			FundingCapacity: "national",
			Location:        ecosystem.Location{City: "London", Region: "Greater London", Country: "UK"},
			Description:     "UK government department setting aviation decarbonization policy and funding flagship programmes.",
			Tags:            []string{"policy", "public-funding", "jet-zero"},
			DataQuality:     estimated,
		},
		{
			ID: "org-ati-001", Name: "Aerospace Technology Institute",
			Type: ecosystem.StakeholderIntermediary, Sector: "Aerospace R&D funding",
			FundingCapacity: "programme",
			Location:        ecosystem.Location{City: "Cranfield", Region: "East of England", Country: "UK"},
			Description:     "Directs the UK aerospace technology strategy and co-funds research through the ATI Programme.",
			Tags:            []string{"funding-body", "aerospace", "flyzero"},
			DataQuality:     estimated,
		},
		{
			ID: "org-ukri-001", Name: "UK Research and Innovation",
			Type: ecosystem.StakeholderGovernment, Sector: "Research funding",
			FundingCapacity: "national",
			Location:        ecosystem.Location{City: "Swindon", Region: "South West", Country: "UK"},
			Description:     "National funding agency investing in science and research across the UK.",
			Tags:            []string{"research", "public-funding"},
			DataQuality:     estimated,
		},
		{
			ID: "org-zeroavia-001", Name: "ZeroAvia",
			Type: ecosystem.StakeholderIndustry, Sector: "Hydrogen-electric propulsion",
			FundingCapacity: "venture",
			Location:        ecosystem.Location{City: "Kemble", Region: "South West", Country: "UK"},
			Description:     "Developer of hydrogen-electric powertrains for regional aircraft, flight-testing at Cotswold Airport.",
			Tags:            []string{"fuel-cells", "propulsion", "startup"},
			DataQuality:     estimated,
		},
		{
			ID: "org-cranfield-001", Name: "Cranfield University",
			Type: ecosystem.StakeholderResearch, Sector: "Aerospace research",
			FundingCapacity: "institutional",
			Location:        ecosystem.Location{City: "Cranfield", Region: "East of England", Country: "UK"},
			Description:     "Postgraduate university with dedicated hydrogen aviation research facilities and its own airport.",
			Tags:            []string{"university", "research", "hydrogen"},
			DataQuality:     estimated,
		},
		{
			ID: "org-itm-001", Name: "ITM Power",
			Type: ecosystem.StakeholderIndustry, Sector: "Electrolyser manufacturing",
			FundingCapacity: "corporate",
			Location:        ecosystem.Location{City: "Sheffield", Region: "Yorkshire", Country: "UK"},
			Description:     "Manufacturer of PEM electrolysers for green hydrogen production at industrial scale.",
			Tags:            []string{"electrolysis", "green-hydrogen", "manufacturing"},
			DataQuality:     estimated,
		},
	}

	technologies := []ecosystem.Technology{
		{
			ID: "tech-h2-electrolysis-001", Name: "PEM Electrolysis",
			Category: ecosystem.CategoryH2Production, TRLCurrent: 8,
			MaturityRisk: "low", DeploymentReady: true,
			Description: "Proton exchange membrane electrolysis for green hydrogen production.",
			Tags:        []string{"green-hydrogen", "electrolysis"},
			DataQuality: estimated,
		},
		{
			ID: "tech-lh2-storage-001", Name: "Cryogenic LH2 Tanks",
			Category: ecosystem.CategoryH2Storage, TRLCurrent: 5,
			MaturityRisk: "medium", DeploymentReady: false,
			Description: "Lightweight cryogenic storage of liquid hydrogen for airframe integration.",
			Tags:        []string{"cryogenics", "storage", "airframe"},
			DataQuality: estimated,
		},
		{
			ID: "tech-fuel-cell-001", Name: "Aviation PEM Fuel Cells",
			Category: ecosystem.CategoryFuelCells, TRLCurrent: 6,
			MaturityRisk: "medium", DeploymentReady: false,
			Description: "High power density fuel cell stacks certified for flight conditions.",
			Tags:        []string{"fuel-cells", "powertrain"},
			DataQuality: estimated,
		},
		{
			ID: "tech-h2-aircraft-001", Name: "Hydrogen-Electric Regional Aircraft",
			Category: ecosystem.CategoryAircraft, TRLCurrent: 6,
			MaturityRisk: "high", DeploymentReady: false,
			Description: "Retrofit and clean-sheet regional aircraft powered by hydrogen-electric propulsion.",
			Tags:        []string{"aircraft", "retrofit", "regional"},
			DataQuality: estimated,
		},
		{
			ID: "tech-airport-h2-001", Name: "Airport Hydrogen Refuelling",
			Category: ecosystem.CategoryInfrastructure, TRLCurrent: 4,
			MaturityRisk: "high", DeploymentReady: false,
			Description: "Ground infrastructure for hydrogen delivery, storage and aircraft refuelling at airports.",
			Tags:        []string{"infrastructure", "airport", "refuelling"},
			DataQuality: estimated,
		},
	}

	events := []ecosystem.FundingEvent{
		{
			ID: "fund-001", Amount: 8_300_000, Currency: "GBP",
			FundingType: ecosystem.FundingPublic,
			SourceID:    "org-dft-001", RecipientID: "org-ati-001", RecipientType: "stakeholder",
			Program: "Jet Zero Strategy", Date: "2024-03-15",
			Status:                ecosystem.StatusCompleted,
			ImpactDescription:     "Programme funding directed into hydrogen aviation research calls.",
			TechnologiesSupported: []string{"tech-h2-aircraft-001"},
			DataQuality:           estimated,
		},
		{
			ID: "fund-002", Amount: 15_000_000, Currency: "GBP",
			FundingType: ecosystem.FundingMixed,
			SourceID:    "org-ati-001", RecipientID: "org-zeroavia-001", RecipientType: "stakeholder",
			Program: "ATI Programme - HyFlyer II", Date: "2025-04-02",
			Status:                ecosystem.StatusActive,
			ImpactDescription:     "Co-funded development of a 600kW hydrogen-electric powertrain for 19-seat aircraft.",
			TechnologiesSupported: []string{"tech-fuel-cell-001", "tech-h2-aircraft-001"},
			TRLImpact:             &ecosystem.TRLImpact{Before: 5, After: 6},
			DataQuality:           estimated,
		},
		{
			ID: "fund-003", Amount: 4_500_000, Currency: "GBP",
			FundingType: ecosystem.FundingPublic,
			SourceID:    "org-ukri-001", RecipientID: "org-cranfield-001", RecipientType: "stakeholder",
			Program: "EPSRC Hydrogen Research Hub", Date: "2024-09-01",
			Status:                ecosystem.StatusActive,
			ImpactDescription:     "Fundamental research into cryogenic storage integration for airframes.",
			TechnologiesSupported: []string{"tech-lh2-storage-001"},
			DataQuality:           estimated,
		},
		{
			ID: "fund-004", Amount: 2_000_000, Currency: "GBP",
			FundingType: ecosystem.FundingPrivate,
			SourceID:    "org-itm-001", RecipientID: "proj-hyground-001", RecipientType: "project",
			Program: "Airport refuelling pilot", Date: "2025-06-20",
			Status:                ecosystem.StatusActive,
			ImpactDescription:     "Electrolyser supply and integration for an on-airport refuelling trial.",
			TechnologiesSupported: []string{"tech-h2-electrolysis-001", "tech-airport-h2-001"},
			DataQuality:           estimated,
		},
	}

	projects := []ecosystem.Project{
		{
			ID: "proj-hyflyer2-001", Name: "HyFlyer II",
			Status:    ecosystem.StatusActive,
			StartDate: "2023-01-01", EndDate: "2026-06-30",
			Participants:     []string{"org-zeroavia-001", "org-ati-001"},
			LeadOrganization: "org-zeroavia-001",
			Technologies:     []string{"tech-fuel-cell-001", "tech-h2-aircraft-001"},
			PrimaryTechnology: "tech-h2-aircraft-001",
			TotalBudget:       24_000_000,
			FundingEvents:     []string{"fund-002"},
			Description:       "Flight demonstration of a hydrogen-electric powertrain in a 19-seat aircraft.",
			Objectives:        []string{"600kW powertrain flight test", "CAA permit to fly"},
			Tags:              []string{"demonstration", "regional"},
			DataQuality:       estimated,
		},
		{
			ID: "proj-lh2-wing-001", Name: "Integrated LH2 Wing Study",
			Status:    ecosystem.StatusActive,
			StartDate: "2024-09-01", EndDate: "2027-08-31",
			Participants:     []string{"org-cranfield-001", "org-ukri-001"},
			LeadOrganization: "org-cranfield-001",
			Technologies:     []string{"tech-lh2-storage-001"},
			PrimaryTechnology: "tech-lh2-storage-001",
			TotalBudget:       4_500_000,
			FundingEvents:     []string{"fund-003"},
			Description:       "Structural and thermal study of cryogenic tanks embedded in transport aircraft wings.",
			Objectives:        []string{"Tank boil-off below 1% per day", "Structural certification path"},
			Tags:              []string{"research", "cryogenics"},
			DataQuality:       estimated,
		},
		{
			ID: "proj-hyground-001", Name: "HyGround Refuelling Pilot",
			Status:    ecosystem.StatusPlanned,
			StartDate: "2026-01-01",
			Participants:     []string{"org-itm-001", "org-zeroavia-001", "org-dft-001"},
			LeadOrganization: "org-itm-001",
			Technologies:     []string{"tech-h2-electrolysis-001", "tech-airport-h2-001"},
			PrimaryTechnology: "tech-airport-h2-001",
			TotalBudget:       2_000_000,
			FundingEvents:     []string{"fund-004"},
			Description:       "On-site hydrogen production and aircraft refuelling trial at a regional airport.",
			Objectives:        []string{"Daily refuelling operations", "Safety case for airside hydrogen"},
			Tags:              []string{"infrastructure", "pilot"},
			DataQuality:       estimated,
		},
	}

	relationships := []ecosystem.Relationship{
		{
			ID: "rel-001", Source: "org-dft-001", Target: "org-ati-001",
			Type: ecosystem.RelFunds, Weight: 8_300_000,
			Metadata: ecosystem.RelationshipMetadata{Program: "Jet Zero Strategy", Amount: 8_300_000},
		},
		{
			ID: "rel-002", Source: "org-ati-001", Target: "org-zeroavia-001",
			Type: ecosystem.RelFunds, Weight: 15_000_000,
			Metadata: ecosystem.RelationshipMetadata{Program: "ATI Programme - HyFlyer II", Amount: 15_000_000},
		},
		{
			ID: "rel-003", Source: "org-ukri-001", Target: "org-cranfield-001",
			Type: ecosystem.RelFunds, Weight: 4_500_000,
			Metadata: ecosystem.RelationshipMetadata{Program: "EPSRC Hydrogen Research Hub", Amount: 4_500_000},
		},
		{
			ID: "rel-004", Source: "org-zeroavia-001", Target: "tech-fuel-cell-001",
			Type: ecosystem.RelAdvances, Weight: 0.9,
		},
		{
			ID: "rel-005", Source: "org-zeroavia-001", Target: "tech-h2-aircraft-001",
			Type: ecosystem.RelAdvances, Weight: 0.9,
		},
		{
			ID: "rel-006", Source: "org-cranfield-001", Target: "tech-lh2-storage-001",
			Type: ecosystem.RelResearches, Weight: 0.7,
		},
		{
			ID: "rel-007", Source: "org-itm-001", Target: "tech-h2-electrolysis-001",
			Type: ecosystem.RelOwns, Weight: 0.8,
		},
		{
			ID: "rel-008", Source: "org-itm-001", Target: "org-zeroavia-001",
			Type: ecosystem.RelCollaboratesWith, Weight: 0.5,
			Bidirectional: true,
		},
		{
			ID: "rel-009", Source: "org-itm-001", Target: "tech-airport-h2-001",
			Type: ecosystem.RelAdvances, Weight: 0.6,
		},
	}

	ds := ecosystem.Dataset{
		Metadata: ecosystem.Metadata{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Version:     "seed-1",
		},
	}
	ds.Stakeholders = stakeholders
	ds.Technologies = technologies
	ds.FundingEvents = events
	ds.Projects = projects
	ds.Relationships = relationships
	return ds
}
