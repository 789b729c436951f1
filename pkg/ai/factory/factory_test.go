package factory

import (
	"testing"
)

func TestNew_FallsBackToMock(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"openai without key", Config{Provider: ProviderOpenAI}},
		{"claude without key", Config{Provider: ProviderClaude}},
		{"empty provider without key", Config{}},
		{"unknown provider", Config{Provider: "crystal-ball"}},
		{"mock requested", Config{Provider: ProviderMock}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := New(tc.cfg)
			if client == nil {
				t.Fatal("New() = nil, want a client")
			}
			if !client.Available() {
				t.Fatal("New() returned an unavailable client, want mock fallback")
			}
		})
	}
}

func TestNew_OpenAIWithKey(t *testing.T) {
	client := New(Config{Provider: ProviderOpenAI, OpenAIKey: "sk-test"})
	if !client.Available() {
		t.Fatal("openai client with key reports unavailable")
	}
}

func TestNew_ClaudeWithKey(t *testing.T) {
	client := New(Config{Provider: ProviderClaude, AnthropicKey: "sk-ant-test"})
	if !client.Available() {
		t.Fatal("claude client with key reports unavailable")
	}
}
