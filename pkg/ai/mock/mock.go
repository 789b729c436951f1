// Package mock implements a deterministic, offline insight-engine backend.
// It applies fixed rules to the visible data and answers chat by keyword,
// so the dashboard works end to end without any AI credential.
package mock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

const (
	gapTRLMin        = 6
	gapFundingMax    = 5_000_000
	isolationMaxRels = 2
	trendWindow      = 6 * 30 * 24 * time.Hour
)

// Client is the rule-based backend. It is always available and never
// returns an error.
type Client struct {
	now func() time.Time
}

// NewClient creates a mock client.
func NewClient() *Client {
	return &Client{now: time.Now}
}

// Available always reports true.
func (c *Client) Available() bool {
	return true
}

// GenerateInsights applies the fixed rule set to the visible collections.
// The same view always yields the same insights.
func (c *Client) GenerateInsights(ctx context.Context, view ecosystem.Collections) ([]ai.Insight, error) {
	insights := []ai.Insight{}

	if ids := underfundedMatureTechnologies(view.Technologies); len(ids) > 0 {
		insights = append(insights, ai.Insight{
			ID:    "gap-1",
			Type:  ai.InsightGap,
			Title: "Mature technologies lack funding",
			Description: fmt.Sprintf(
				"%d technologies at TRL %d or above have received less than £%dM in tracked funding.",
				len(ids), gapTRLMin, gapFundingMax/1_000_000),
			Entities:   ids,
			Confidence: 0.8,
			Actionable: true,
		})
	}

	if ids := isolatedStakeholders(view.Stakeholders); len(ids) > 0 {
		insights = append(insights, ai.Insight{
			ID:    "opportunity-1",
			Type:  ai.InsightOpportunity,
			Title: "Underconnected stakeholders",
			Description: fmt.Sprintf(
				"%d stakeholders hold fewer than %d relationships and could be linked into the ecosystem.",
				len(ids), isolationMaxRels),
			Entities:   ids,
			Confidence: 0.6,
			Actionable: true,
		})
	}

	if ids := recentFundingEvents(view.FundingEvents, c.now()); len(ids) > 0 {
		insights = append(insights, ai.Insight{
			ID:    "trend-1",
			Type:  ai.InsightTrend,
			Title: "Recent funding momentum",
			Description: fmt.Sprintf(
				"%d funding events landed within the last six months.", len(ids)),
			Entities:   ids,
			Confidence: 0.9,
			Actionable: false,
		})
	}

	return insights, nil
}

// Chat answers by keyword. Unrecognized queries get a generic pointer to
// the dashboard's capabilities.
func (c *Client) Chat(ctx context.Context, message string, chatCtx ai.ChatContext) (ai.ChatResponse, error) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "funding"):
		return ai.ChatResponse{
			Message: "The funding view breaks flows down by source and recipient. I have narrowed the filters to public funding to start with.",
			Actions: &ai.ChatActions{
				Filter:     map[string]any{"funding_types": []string{string(ecosystem.FundingPublic)}},
				SwitchView: "funding",
			},
		}, nil
	case strings.Contains(lower, "technolog"):
		return ai.ChatResponse{
			Message: "The technology view ranks technologies by readiness level and tracked funding.",
			Actions: &ai.ChatActions{SwitchView: "technology"},
		}, nil
	case strings.Contains(lower, "stakeholder"):
		return ai.ChatResponse{
			Message: "The network view shows how stakeholders connect through funding and collaboration.",
			Actions: &ai.ChatActions{SwitchView: "network"},
		}, nil
	default:
		return ai.ChatResponse{
			Message: "I can help you explore stakeholders, technologies, funding and projects. Ask about any of them, or about gaps and trends in the ecosystem.",
		}, nil
	}
}

// ChatStream resolves the full reply and emits it word by word. Fragments
// reassemble to exactly the non-streaming answer.
func (c *Client) ChatStream(ctx context.Context, message string, chatCtx ai.ChatContext) (<-chan ai.StreamChunk, error) {
	resp, err := c.Chat(ctx, message, chatCtx)
	if err != nil {
		return nil, err
	}

	out := make(chan ai.StreamChunk)
	go func() {
		defer close(out)
		words := strings.SplitAfter(resp.Message, " ")
		for _, w := range words {
			select {
			case out <- ai.StreamChunk{Text: w}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func underfundedMatureTechnologies(techs []ecosystem.Technology) []string {
	var ids []string
	for _, t := range techs {
		if t.TRLCurrent >= gapTRLMin && t.TotalFunding < gapFundingMax {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func isolatedStakeholders(stakeholders []ecosystem.Stakeholder) []string {
	var ids []string
	for _, s := range stakeholders {
		if s.RelationshipCount < isolationMaxRels {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func recentFundingEvents(events []ecosystem.FundingEvent, now time.Time) []string {
	cutoff := now.Add(-trendWindow)
	var ids []string
	for _, ev := range events {
		d, err := time.Parse("2006-01-02", ev.Date)
		if err != nil {
			continue
		}
		if d.After(cutoff) && !d.After(now) {
			ids = append(ids, ev.ID)
		}
	}
	return ids
}
