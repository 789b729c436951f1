package ai

import (
	"fmt"
	"strings"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

const InsightsPrompt = `
# Task Context
You are an analyst for the UK hydrogen aviation innovation ecosystem. You will be provided with a summary of the currently visible dataset: stakeholders, technologies, funding events, projects and relationships.

# Background Data
%s

# Detailed Task Description & Rules
- Identify non-obvious observations grounded strictly in the provided data.
- Each insight must have exactly one of these types:
  * "gap" — mature technologies (high TRL) that receive little funding, or missing connections in the ecosystem
  * "opportunity" — underconnected stakeholders or technologies that could be linked
  * "risk" — single points of failure, funding concentration, or stalled projects
  * "trend" — patterns over time, such as recent funding momentum or TRL progression
- Reference entities by their ids from the data in the "entities" array.
- "confidence" is a score between 0.0 and 1.0 reflecting how strongly the data supports the insight.
- "actionable" is true only when a concrete next step follows from the insight.
- Do not invent entities, amounts, or dates that are not in the data.
- Return between 1 and 6 insights. Prefer fewer, stronger insights over many weak ones.

# Output Formatting
Return a JSON object with this structure:
{
  "insights": [
    {
      "id": "<short stable id, e.g. gap-1>",
      "type": "gap" | "opportunity" | "risk" | "trend",
      "title": "<short headline>",
      "description": "<one to three sentences>",
      "entities": ["<entity id>"],
      "confidence": 0.0,
      "actionable": true
    }
  ]
}
Do not include any commentary, explanations, or text outside of the JSON.
`

const ChatPrompt = `
# Task Context
You are the conversational assistant of a data exploration dashboard for the UK hydrogen aviation innovation ecosystem. The user explores stakeholders, technologies, funding events, projects and relationships through views named "network", "technology", "funding" and "map".

# Background Data
%s

# Detailed Task Description & Rules
- Answer the user's question using only the provided context data.
- When the answer concerns specific entities, list their ids in "actions.highlight" so the dashboard can highlight them.
- When the user asks to narrow what is shown, suggest filter changes in "actions.filter" using these keys: stakeholder_types, technology_categories, funding_types, trl_range, funding_range, search_query.
- When a different view would answer the question better, set "actions.switch_view" to one of: network, technology, funding, map.
- Omit "actions" entirely when no UI change is warranted.
- Include "insights" only when the conversation surfaces a new observation worth pinning; otherwise omit it.
- Be concise. Answer in the language of the user.

# Output Formatting
Return a JSON object with this structure:
{
  "message": "<your answer>",
  "actions": {
    "highlight": ["<entity id>"],
    "filter": { },
    "switch_view": "<view name>"
  },
  "insights": []
}
Do not include any commentary, explanations, or text outside of the JSON.
`

// SummarizeCollections renders the dataset summary block interpolated into
// InsightsPrompt. Per-entity lines stay terse so large datasets fit the
// model context.
func SummarizeCollections(c ecosystem.Collections) string {
	var b strings.Builder

	counts := c.CountAll()
	fmt.Fprintf(&b, "Counts: %d stakeholders, %d technologies, %d funding events, %d projects, %d relationships\n\n",
		counts.Stakeholders, counts.Technologies, counts.FundingEvents, counts.Projects, counts.Relationships)

	b.WriteString("Stakeholders:\n")
	for _, s := range c.Stakeholders {
		fmt.Fprintf(&b, "- %s: %s (%s, %s) received=%.0f provided=%.0f relationships=%d\n",
			s.ID, s.Name, s.Type, s.Sector, s.TotalFundingReceived, s.TotalFundingProvided, s.RelationshipCount)
	}

	b.WriteString("\nTechnologies:\n")
	for _, t := range c.Technologies {
		fmt.Fprintf(&b, "- %s: %s (%s) TRL=%d/%s funding=%.0f stakeholders=%d projects=%d\n",
			t.ID, t.Name, t.Category, t.TRLCurrent, t.TRLColor, t.TotalFunding, t.StakeholderCount, t.ProjectCount)
	}

	b.WriteString("\nFunding events:\n")
	for _, ev := range c.FundingEvents {
		fmt.Fprintf(&b, "- %s: %.0f %s (%s) %s -> %s on %s program=%q\n",
			ev.ID, ev.Amount, ev.Currency, ev.FundingType, ev.SourceID, ev.RecipientID, ev.Date, ev.Program)
	}

	b.WriteString("\nProjects:\n")
	for _, p := range c.Projects {
		fmt.Fprintf(&b, "- %s: %s (%s) budget=%.0f lead=%s duration=%dmo\n",
			p.ID, p.Name, p.Status, p.TotalBudget, p.LeadOrganization, p.DurationMonths)
	}

	b.WriteString("\nRelationships:\n")
	for _, r := range c.Relationships {
		fmt.Fprintf(&b, "- %s: %s -[%s %s]-> %s weight=%.2f\n",
			r.ID, r.Source, r.Type, r.Strength, r.Target, r.Weight)
	}

	return b.String()
}

// SummarizeChatContext renders the UI state block interpolated into
// ChatPrompt.
func SummarizeChatContext(chatCtx ChatContext) string {
	var b strings.Builder

	view := chatCtx.CurrentView
	if view == "" {
		view = "network"
	}
	fmt.Fprintf(&b, "Current view: %s\n", view)

	if len(chatCtx.SelectedEntities) > 0 {
		fmt.Fprintf(&b, "Selected entities: %s\n", strings.Join(chatCtx.SelectedEntities, ", "))
	} else {
		b.WriteString("Selected entities: none\n")
	}

	f := chatCtx.Filters
	fmt.Fprintf(&b, "Active filters: trl_range=[%d,%d] funding_range=[%.0f,%.0f]",
		f.TRLRange[0], f.TRLRange[1], f.FundingRange[0], f.FundingRange[1])
	if len(f.StakeholderTypes) > 0 {
		fmt.Fprintf(&b, " stakeholder_types=%v", f.StakeholderTypes)
	}
	if len(f.TechnologyCategories) > 0 {
		fmt.Fprintf(&b, " technology_categories=%v", f.TechnologyCategories)
	}
	if len(f.FundingTypes) > 0 {
		fmt.Fprintf(&b, " funding_types=%v", f.FundingTypes)
	}
	if f.SearchQuery != "" {
		fmt.Fprintf(&b, " search_query=%q", f.SearchQuery)
	}
	b.WriteString("\n")

	return b.String()
}
