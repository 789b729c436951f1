package mock

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

func fixedClient() *Client {
	fixed := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return &Client{now: func() time.Time { return fixed }}
}

func TestGenerateInsights_Rules(t *testing.T) {
	view := ecosystem.Collections{
		Stakeholders: []ecosystem.Stakeholder{
			{ID: "org-isolated", RelationshipCount: 0},
			{ID: "org-connected", RelationshipCount: 5},
		},
		Technologies: []ecosystem.Technology{
			{ID: "tech-gap", TRLCurrent: 7, TotalFunding: 1_000_000},
			{ID: "tech-funded", TRLCurrent: 8, TotalFunding: 20_000_000},
			{ID: "tech-early", TRLCurrent: 3, TotalFunding: 0},
		},
		FundingEvents: []ecosystem.FundingEvent{
			{ID: "fund-recent", Date: "2025-05-01"},
			{ID: "fund-old", Date: "2023-01-01"},
			{ID: "fund-future", Date: "2026-01-01"},
		},
	}

	insights, err := fixedClient().GenerateInsights(context.Background(), view)
	if err != nil {
		t.Fatalf("GenerateInsights() error = %v", err)
	}
	if len(insights) != 3 {
		t.Fatalf("got %d insights, want 3", len(insights))
	}

	byID := map[string]ai.Insight{}
	for _, ins := range insights {
		byID[ins.ID] = ins
	}

	gap, ok := byID["gap-1"]
	if !ok {
		t.Fatal("missing gap insight")
	}
	if gap.Type != ai.InsightGap || !gap.Actionable || gap.Confidence != 0.8 {
		t.Fatalf("gap insight = %+v", gap)
	}
	if len(gap.Entities) != 1 || gap.Entities[0] != "tech-gap" {
		t.Fatalf("gap entities = %v, want only tech-gap", gap.Entities)
	}

	opp := byID["opportunity-1"]
	if len(opp.Entities) != 1 || opp.Entities[0] != "org-isolated" {
		t.Fatalf("opportunity entities = %v, want only org-isolated", opp.Entities)
	}

	trend := byID["trend-1"]
	if trend.Actionable {
		t.Fatal("trend insight must not be actionable")
	}
	if len(trend.Entities) != 1 || trend.Entities[0] != "fund-recent" {
		t.Fatalf("trend entities = %v, want only fund-recent", trend.Entities)
	}
}

func TestGenerateInsights_QuietView(t *testing.T) {
	view := ecosystem.Collections{
		Stakeholders: []ecosystem.Stakeholder{{ID: "org-busy", RelationshipCount: 4}},
		Technologies: []ecosystem.Technology{{ID: "tech-ok", TRLCurrent: 8, TotalFunding: 10_000_000}},
	}

	insights, err := fixedClient().GenerateInsights(context.Background(), view)
	if err != nil {
		t.Fatalf("GenerateInsights() error = %v", err)
	}
	if len(insights) != 0 {
		t.Fatalf("got %d insights on a quiet view, want 0", len(insights))
	}
}

func TestGenerateInsights_Deterministic(t *testing.T) {
	view := ecosystem.Collections{
		Technologies: []ecosystem.Technology{{ID: "tech-gap", TRLCurrent: 6, TotalFunding: 0}},
	}
	c := fixedClient()

	first, _ := c.GenerateInsights(context.Background(), view)
	second, _ := c.GenerateInsights(context.Background(), view)

	if len(first) != len(second) || first[0].ID != second[0].ID {
		t.Fatalf("same view produced different insights: %+v vs %+v", first, second)
	}
}

func TestChat_Keywords(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantView   string
		wantFilter bool
	}{
		{"funding", "Where does the FUNDING come from?", "funding", true},
		{"technology", "Which technologies are mature?", "technology", false},
		{"stakeholder", "show me the stakeholders", "network", false},
	}

	c := NewClient()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := c.Chat(context.Background(), tc.message, ai.ChatContext{})
			if err != nil {
				t.Fatalf("Chat() error = %v", err)
			}
			if resp.Actions == nil {
				t.Fatal("Chat() returned no actions")
			}
			if resp.Actions.SwitchView != tc.wantView {
				t.Fatalf("switch view = %q, want %q", resp.Actions.SwitchView, tc.wantView)
			}
			if tc.wantFilter && resp.Actions.Filter == nil {
				t.Fatal("Chat() funding answer carries no filter action")
			}
		})
	}
}

func TestChat_Fallback(t *testing.T) {
	resp, err := NewClient().Chat(context.Background(), "what is the meaning of life", ai.ChatContext{})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.Message == "" {
		t.Fatal("fallback answer is empty")
	}
	if resp.Actions != nil {
		t.Fatalf("fallback answer carries actions: %+v", resp.Actions)
	}
}

func TestChatStream_ReassemblesChatAnswer(t *testing.T) {
	c := NewClient()
	want, err := c.Chat(context.Background(), "tell me about funding", ai.ChatContext{})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	ch, err := c.ChatStream(context.Background(), "tell me about funding", ai.ChatContext{})
	if err != nil {
		t.Fatalf("ChatStream() error = %v", err)
	}

	var sb strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("stream chunk error = %v", chunk.Err)
		}
		sb.WriteString(chunk.Text)
	}
	if sb.String() != want.Message {
		t.Fatalf("stream reassembled to %q, want %q", sb.String(), want.Message)
	}
}

func TestChatStream_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch, err := NewClient().ChatStream(ctx, "funding", ai.ChatContext{})
	if err != nil {
		t.Fatalf("ChatStream() error = %v", err)
	}

	// The channel must close without delivering the full message.
	count := 0
	for range ch {
		count++
	}
	full, _ := NewClient().Chat(context.Background(), "funding", ai.ChatContext{})
	if count >= len(strings.SplitAfter(full.Message, " ")) {
		t.Fatalf("cancelled stream delivered all %d fragments", count)
	}
}
