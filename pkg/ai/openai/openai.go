// Package openai implements the insight-engine backend on top of the
// OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultModel = "gpt-4o-mini"

// Client talks to the OpenAI API. A Client built without an API key is
// not available and rejects every request.
type Client struct {
	model  string
	client *openai.Client
}

// NewClientParams defines the configuration parameters for creating a
// Client. BaseURL is optional and overrides the API endpoint for
// OpenAI-compatible servers.
type NewClientParams struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewClient creates a new OpenAI-backed insight client.
func NewClient(params NewClientParams) *Client {
	model := params.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		model:  model,
		client: newOpenaiClient(params.BaseURL, params.APIKey),
	}
}

func newOpenaiClient(baseURL string, apiKey string) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

// Available reports whether an API key was configured.
func (c *Client) Available() bool {
	return c.client != nil
}

type insightsEnvelope struct {
	Insights []ai.Insight `json:"insights"`
}

// GenerateInsights asks the model for typed insights over the visible
// collections, enforcing the response shape with a JSON schema.
func (c *Client) GenerateInsights(ctx context.Context, view ecosystem.Collections) ([]ai.Insight, error) {
	if c.client == nil {
		return nil, errors.New("openai client not configured")
	}

	var envelope insightsEnvelope
	prompt := fmt.Sprintf(ai.InsightsPrompt, ai.SummarizeCollections(view))

	err := c.completeWithFormat(ctx, "ecosystem_insights",
		"Typed insights about the visible innovation ecosystem data",
		prompt, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Insights, nil
}

// Chat answers one conversational turn and decodes the structured reply.
func (c *Client) Chat(ctx context.Context, message string, chatCtx ai.ChatContext) (ai.ChatResponse, error) {
	if c.client == nil {
		return ai.ChatResponse{}, errors.New("openai client not configured")
	}

	msgs := c.chatMessages(message, chatCtx)

	body := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(0.2),
	}

	response, err := c.client.Chat.Completions.New(ctx, body)
	if err != nil {
		return ai.ChatResponse{}, err
	}
	if len(response.Choices) == 0 {
		return ai.ChatResponse{}, errors.New("no choices in response from model")
	}
	content := response.Choices[0].Message.Content
	if content == "" {
		return ai.ChatResponse{}, fmt.Errorf("empty response from model (finish_reason: %s)", response.Choices[0].FinishReason)
	}

	var out ai.ChatResponse
	if err := ai.DecodeModelJSON(content, &out); err != nil {
		return ai.ChatResponse{}, err
	}
	return out, nil
}

// ChatStream streams the assistant's reply as raw text fragments. The
// returned channel is closed when the stream ends or the context is
// canceled; a failed stream ends with a terminal error chunk.
func (c *Client) ChatStream(ctx context.Context, message string, chatCtx ai.ChatContext) (<-chan ai.StreamChunk, error) {
	if c.client == nil {
		return nil, errors.New("openai client not configured")
	}

	msgs := c.streamMessages(message, chatCtx)

	body := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(0.2),
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, body)
	contentChan := make(chan ai.StreamChunk, 10)

	go func() {
		defer close(contentChan)
		defer stream.Close()

		acc := openai.ChatCompletionAccumulator{}
		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)

			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				select {
				case contentChan <- ai.StreamChunk{Text: chunk.Choices[0].Delta.Content}:
				case <-ctx.Done():
					return
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

func (c *Client) completeWithFormat(
	ctx context.Context,
	name string,
	description string,
	prompt string,
	out any,
) error {
	schema := ai.GenerateSchema(out)
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        name,
		Description: openai.String(description),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}

	body := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.1),
	}

	response, err := c.client.Chat.Completions.New(ctx, body)
	if err != nil {
		return err
	}
	if len(response.Choices) == 0 {
		return errors.New("no choices in response from model")
	}
	content := response.Choices[0].Message.Content
	if content == "" {
		return fmt.Errorf("empty response from model (finish_reason: %s)", response.Choices[0].FinishReason)
	}
	return ai.DecodeModelJSON(content, out)
}

// chatMessages builds the structured-reply conversation: sectioned system
// prompt, prior history, then the current user message.
func (c *Client) chatMessages(message string, chatCtx ai.ChatContext) []openai.ChatCompletionMessageParamUnion {
	system := fmt.Sprintf(ai.ChatPrompt, ai.SummarizeChatContext(chatCtx))

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
	}
	for _, m := range chatCtx.History {
		switch m.Role {
		case "user":
			msgs = append(msgs, openai.UserMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(message))
	return msgs
}

// streamMessages is the plain-text variant: the streamed reply goes to the
// user verbatim, so the system prompt must not request JSON.
func (c *Client) streamMessages(message string, chatCtx ai.ChatContext) []openai.ChatCompletionMessageParamUnion {
	system := "You are the conversational assistant of a data exploration dashboard for the UK hydrogen aviation innovation ecosystem. Answer concisely in plain text using only the provided context.\n\n" +
		ai.SummarizeChatContext(chatCtx)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
	}
	for _, m := range chatCtx.History {
		switch m.Role {
		case "user":
			msgs = append(msgs, openai.UserMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(message))
	return msgs
}
