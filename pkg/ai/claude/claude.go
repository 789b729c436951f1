// Package claude implements the insight-engine backend on top of the
// Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

const (
	defaultModel = "claude-sonnet-4-20250514"
	maxTokens    = 4096
)

// Client talks to the Anthropic API. A Client built without an API key is
// not available and rejects every request.
type Client struct {
	model  string
	client *anthropic.Client
}

// NewClientParams defines the configuration parameters for creating a
// Client.
type NewClientParams struct {
	APIKey string
	Model  string
}

// NewClient creates a new Claude-backed insight client.
func NewClient(params NewClientParams) *Client {
	model := params.Model
	if model == "" {
		model = defaultModel
	}

	var client *anthropic.Client
	if params.APIKey != "" {
		c := anthropic.NewClient(option.WithAPIKey(params.APIKey))
		client = &c
	}

	return &Client{
		model:  model,
		client: client,
	}
}

// Available reports whether an API key was configured.
func (c *Client) Available() bool {
	return c.client != nil
}

type insightsEnvelope struct {
	Insights []ai.Insight `json:"insights"`
}

// GenerateInsights asks the model for typed insights over the visible
// collections. The Messages API has no schema-enforced output mode, so
// the reply is decoded with the repair fallbacks.
func (c *Client) GenerateInsights(ctx context.Context, view ecosystem.Collections) ([]ai.Insight, error) {
	if c.client == nil {
		return nil, errors.New("claude client not configured")
	}

	prompt := fmt.Sprintf(ai.InsightsPrompt, ai.SummarizeCollections(view))

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, err
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.New("empty response from model")
	}

	var envelope insightsEnvelope
	if err := ai.DecodeModelJSON(text, &envelope); err != nil {
		return nil, err
	}
	return envelope.Insights, nil
}

// Chat answers one conversational turn and decodes the structured reply.
func (c *Client) Chat(ctx context.Context, message string, chatCtx ai.ChatContext) (ai.ChatResponse, error) {
	if c.client == nil {
		return ai.ChatResponse{}, errors.New("claude client not configured")
	}

	system := fmt.Sprintf(ai.ChatPrompt, ai.SummarizeChatContext(chatCtx))

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: historyMessages(chatCtx.History, message),
	})
	if err != nil {
		return ai.ChatResponse{}, err
	}

	text := responseText(resp)
	if text == "" {
		return ai.ChatResponse{}, errors.New("empty response from model")
	}

	var out ai.ChatResponse
	if err := ai.DecodeModelJSON(text, &out); err != nil {
		return ai.ChatResponse{}, err
	}
	return out, nil
}

// ChatStream streams the assistant's reply as raw text fragments. The
// returned channel is closed when the stream ends or the context is
// canceled; a failed stream ends with a terminal error chunk.
func (c *Client) ChatStream(ctx context.Context, message string, chatCtx ai.ChatContext) (<-chan ai.StreamChunk, error) {
	if c.client == nil {
		return nil, errors.New("claude client not configured")
	}

	system := "You are the conversational assistant of a data exploration dashboard for the UK hydrogen aviation innovation ecosystem. Answer concisely in plain text using only the provided context.\n\n" +
		ai.SummarizeChatContext(chatCtx)

	stream := c.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: historyMessages(chatCtx.History, message),
	})

	contentChan := make(chan ai.StreamChunk, 10)
	go func() {
		defer close(contentChan)
		defer stream.Close()

		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				if delta, ok := ev.Delta.AsAny().(anthropic.TextDelta); ok && delta.Text != "" {
					select {
					case contentChan <- ai.StreamChunk{Text: delta.Text}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
		if err := stream.Err(); err != nil {
			select {
			case contentChan <- ai.StreamChunk{Err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return contentChan, nil
}

func historyMessages(history []ai.ChatMessage, current string) []anthropic.MessageParam {
	msgs := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, m := range history {
		switch m.Role {
		case "user":
			msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case "assistant":
			msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(current)))
}

func responseText(resp *anthropic.Message) string {
	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			return strings.TrimSpace(resp.Content[i].Text)
		}
	}
	return ""
}
