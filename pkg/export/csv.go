// Package export serializes filtered collections for download: delimited
// tabular text per collection and a JSON scenario bundle. It is a pure
// serialization layer with no network or storage dependency.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// listSeparator joins array-valued fields inside a single CSV cell.
const listSeparator = "; "

// WriteStakeholdersCSV writes one header row plus one row per stakeholder.
func WriteStakeholdersCSV(w io.Writer, stakeholders []ecosystem.Stakeholder) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "name", "type", "sector", "funding_capacity",
		"total_funding_received", "total_funding_provided",
		"region", "country", "description", "tags", "relationship_count",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range stakeholders {
		row := []string{
			s.ID, s.Name, string(s.Type), s.Sector, s.FundingCapacity,
			formatAmount(s.TotalFundingReceived), formatAmount(s.TotalFundingProvided),
			s.Location.Region, s.Location.Country, s.Description,
			strings.Join(s.Tags, listSeparator),
			strconv.Itoa(s.RelationshipCount),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTechnologiesCSV writes one header row plus one row per technology.
func WriteTechnologiesCSV(w io.Writer, technologies []ecosystem.Technology) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "name", "category", "trl_current", "trl_color",
		"maturity_risk", "deployment_ready", "total_funding",
		"stakeholder_count", "project_count", "description", "tags",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range technologies {
		row := []string{
			t.ID, t.Name, string(t.Category),
			strconv.Itoa(t.TRLCurrent), string(t.TRLColor),
			t.MaturityRisk, strconv.FormatBool(t.DeploymentReady),
			formatAmount(t.TotalFunding),
			strconv.Itoa(t.StakeholderCount), strconv.Itoa(t.ProjectCount),
			t.Description, strings.Join(t.Tags, listSeparator),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFundingEventsCSV writes one header row plus one row per event.
func WriteFundingEventsCSV(w io.Writer, events []ecosystem.FundingEvent) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "amount", "currency", "funding_type", "source_id",
		"recipient_id", "recipient_type", "program", "date", "status",
		"impact_description", "technologies_supported",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, ev := range events {
		row := []string{
			ev.ID, formatAmount(ev.Amount), ev.Currency, string(ev.FundingType),
			ev.SourceID, ev.RecipientID, ev.RecipientType,
			ev.Program, ev.Date, string(ev.Status),
			ev.ImpactDescription,
			strings.Join(ev.TechnologiesSupported, listSeparator),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProjectsCSV writes one header row plus one row per project.
func WriteProjectsCSV(w io.Writer, projects []ecosystem.Project) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "name", "status", "start_date", "end_date", "duration_months",
		"participants", "lead_organization", "technologies",
		"primary_technology", "total_budget", "description", "objectives", "tags",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range projects {
		row := []string{
			p.ID, p.Name, string(p.Status), p.StartDate, p.EndDate,
			strconv.Itoa(p.DurationMonths),
			strings.Join(p.Participants, listSeparator),
			p.LeadOrganization,
			strings.Join(p.Technologies, listSeparator),
			p.PrimaryTechnology,
			formatAmount(p.TotalBudget),
			p.Description,
			strings.Join(p.Objectives, listSeparator),
			strings.Join(p.Tags, listSeparator),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRelationshipsCSV writes one header row plus one row per relationship.
func WriteRelationshipsCSV(w io.Writer, relationships []ecosystem.Relationship) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "source", "target", "type", "weight", "strength",
		"bidirectional", "program", "description",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range relationships {
		row := []string{
			r.ID, r.Source, r.Target, string(r.Type),
			formatAmount(r.Weight), string(r.Strength),
			strconv.FormatBool(r.Bidirectional),
			r.Metadata.Program, r.Metadata.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCollectionCSV dispatches on the collection name used by the export
// API: stakeholders, technologies, funding-events, projects, relationships.
func WriteCollectionCSV(w io.Writer, name string, c ecosystem.Collections) error {
	switch name {
	case "stakeholders":
		return WriteStakeholdersCSV(w, c.Stakeholders)
	case "technologies":
		return WriteTechnologiesCSV(w, c.Technologies)
	case "funding-events":
		return WriteFundingEventsCSV(w, c.FundingEvents)
	case "projects":
		return WriteProjectsCSV(w, c.Projects)
	case "relationships":
		return WriteRelationshipsCSV(w, c.Relationships)
	default:
		return fmt.Errorf("unknown collection %q", name)
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
