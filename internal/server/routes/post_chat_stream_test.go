package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/internal/session"
	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
	"github.com/navigate-zea/navigate/backend/pkg/store"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i any) error {
	return v.validator.Struct(i)
}

// stubStreamClient drives ChatStream from a fixed chunk script.
type stubStreamClient struct {
	chunks []ai.StreamChunk
}

func (s *stubStreamClient) Available() bool { return true }

func (s *stubStreamClient) GenerateInsights(context.Context, ecosystem.Collections) ([]ai.Insight, error) {
	return nil, nil
}

func (s *stubStreamClient) Chat(context.Context, string, ai.ChatContext) (ai.ChatResponse, error) {
	return ai.ChatResponse{}, nil
}

func (s *stubStreamClient) ChatStream(context.Context, string, ai.ChatContext) (<-chan ai.StreamChunk, error) {
	out := make(chan ai.StreamChunk, len(s.chunks))
	for _, c := range s.chunks {
		out <- c
	}
	close(out)
	return out, nil
}

func streamRequest(t *testing.T, client ai.Client) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/chat/stream",
		strings.NewReader(`{"message": "tell me about funding"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	cc := &middleware.AppContext{
		Context: e.NewContext(req, rec),
		App: &middleware.App{
			Session:  session.New(store.New(), nil),
			AiClient: client,
		},
	}
	if err := ChatStreamHandler(cc); err != nil {
		t.Fatalf("ChatStreamHandler() error = %v", err)
	}
	return rec
}

type streamObject struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Done    bool   `json:"done"`
}

func decodeStream(t *testing.T, body io.Reader) []streamObject {
	t.Helper()
	var out []streamObject
	dec := json.NewDecoder(body)
	for {
		var obj streamObject
		if err := dec.Decode(&obj); err == io.EOF {
			return out
		} else if err != nil {
			t.Fatalf("decoding stream object: %v", err)
		}
		out = append(out, obj)
	}
}

func TestChatStreamHandler_AccumulatesFragments(t *testing.T) {
	rec := streamRequest(t, &stubStreamClient{chunks: []ai.StreamChunk{
		{Text: "Public "},
		{Text: "funding leads."},
	}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	objects := decodeStream(t, rec.Body)
	if len(objects) != 3 {
		t.Fatalf("got %d stream objects, want 3", len(objects))
	}
	if objects[0].Message != "Public " || objects[1].Message != "Public funding leads." {
		t.Fatalf("accumulated messages = %q, %q", objects[0].Message, objects[1].Message)
	}
	final := objects[2]
	if !final.Done || final.Error != "" || final.Message != "Public funding leads." {
		t.Fatalf("final object = %+v", final)
	}
}

// A stream that fails before producing any fragment must answer an error
// status, not an empty successful reply.
func TestChatStreamHandler_UpfrontFailure(t *testing.T) {
	rec := streamRequest(t, &stubStreamClient{chunks: []ai.StreamChunk{
		{Err: errors.New("connection refused")},
	}})

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if !strings.Contains(body["error"], "connection refused") {
		t.Fatalf("error body = %+v", body)
	}
}

func TestChatStreamHandler_MidStreamFailure(t *testing.T) {
	rec := streamRequest(t, &stubStreamClient{chunks: []ai.StreamChunk{
		{Text: "Partial "},
		{Err: errors.New("stream reset")},
	}})

	// The status line is already committed, so the failure rides the
	// final object instead.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	objects := decodeStream(t, rec.Body)
	final := objects[len(objects)-1]
	if !final.Done {
		t.Fatalf("final object = %+v, want done", final)
	}
	if !strings.Contains(final.Error, "stream reset") {
		t.Fatalf("final object error = %q, want the stream failure", final.Error)
	}
	if final.Message != "Partial " {
		t.Fatalf("final message = %q, want the delivered prefix", final.Message)
	}
}
