// Package ai defines the insight-engine capability set and the shared
// types its three interchangeable backends (openai, claude, mock) produce.
package ai

import (
	"context"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
	"github.com/navigate-zea/navigate/backend/pkg/filter"
)

// InsightType classifies a generated insight.
type InsightType string

const (
	InsightGap         InsightType = "gap"
	InsightOpportunity InsightType = "opportunity"
	InsightRisk        InsightType = "risk"
	InsightTrend       InsightType = "trend"
)

// Insight is one typed observation about the dataset, referencing the
// entity ids it concerns.
type Insight struct {
	ID          string      `json:"id"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Entities    []string    `json:"entities"`
	Confidence  float64     `json:"confidence"`
	Actionable  bool        `json:"actionable"`
}

// ChatMessage is a single turn in a chat conversation.
//
// Role must be one of:
//   - "user"      → a user-provided message
//   - "assistant" → a message from the assistant
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatActions are UI actions a chat reply may suggest: entity highlighting,
// filter changes, or a view switch.
type ChatActions struct {
	Highlight  []string       `json:"highlight,omitempty"`
	Filter     map[string]any `json:"filter,omitempty"`
	SwitchView string         `json:"switch_view,omitempty"`
}

// ChatResponse is one assistant reply, optionally carrying suggested UI
// actions and freshly generated insights.
type ChatResponse struct {
	Message  string       `json:"message"`
	Actions  *ChatActions `json:"actions,omitempty"`
	Insights []Insight    `json:"insights,omitempty"`
}

// ChatContext carries the UI state a chat turn is grounded in.
type ChatContext struct {
	CurrentView      string        `json:"current_view"`
	SelectedEntities []string      `json:"selected_entities"`
	Filters          filter.Spec   `json:"filters"`
	History          []ChatMessage `json:"history"`
}

// StreamChunk is one fragment of a streamed chat reply. A chunk with Err
// set is terminal: it carries no text and the channel closes after it.
type StreamChunk struct {
	Text string
	Err  error
}

// Client is the capability set every insight-engine backend implements.
//
// Remote backends surface upstream failures as errors; they never coerce a
// failed or unparseable response into an empty insight list. The mock
// backend never fails and is always available.
type Client interface {
	// Available reports whether the backend can serve requests (for
	// remote backends: whether a credential is configured).
	Available() bool

	// GenerateInsights produces a finite list of insights from the
	// filtered view.
	GenerateInsights(ctx context.Context, view ecosystem.Collections) ([]Insight, error)

	// Chat answers a single query given the conversational history and
	// current view context.
	Chat(ctx context.Context, message string, chatCtx ChatContext) (ChatResponse, error)

	// ChatStream delivers the chat answer as an ordered sequence of text
	// fragments. The channel is closed when the answer is complete, the
	// context is cancelled, or after a terminal error chunk; fragments are
	// never reordered or duplicated. An upstream failure surfaces as a
	// chunk with Err set, never as a silently truncated answer.
	ChatStream(ctx context.Context, message string, chatCtx ChatContext) (<-chan StreamChunk, error)
}
