package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/store"
)

func chatTestSchema() *Schema {
	return &Schema{
		Name: "test-chat-reply",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply": map[string]any{"type": "string"},
				"follow_ups": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"maxItems": 3,
				},
			},
			"required":             []any{"reply", "follow_ups"},
			"additionalProperties": false,
		},
	}
}

func TestMockProviderScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10}},
		MockResponse{Err: &ErrRateLimit{}},
	)

	resp, err := mock.Generate(context.Background(), Request{System: "sys"})
	if err != nil || string(resp.Content) != `{"a":1}` || resp.Usage.InputTokens != 10 {
		t.Fatalf("first = %+v, %v", resp, err)
	}
	var rl *ErrRateLimit
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &rl) {
		t.Fatalf("second err = %v", err)
	}
	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &unavail) {
		t.Fatalf("exhausted err = %v", err)
	}
	if mock.CallCount() != 3 || mock.Calls()[0].System != "sys" {
		t.Errorf("calls = %+v", mock.Calls())
	}
}

func TestMockProviderValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"reply":1}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: chatTestSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("purpose = %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, PurposeChat)); p != PurposeChat {
		t.Fatalf("purpose = %q", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"mock", Config{Provider: ProviderMock}, false},
		{"unknown", Config{Provider: "llama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MONEYPATH_LLM_PROVIDER", "openai")
	t.Setenv("MONEYPATH_OPENAI_API_KEY", "sk-test")
	t.Setenv("MONEYPATH_OPENAI_MODEL", "gpt-4o")
	t.Setenv("MONEYPATH_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Timeout.Seconds() != 5 {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 4 {
		t.Errorf("retry attempts = %d", cfg.Retry.MaxAttempts)
	}
}

type recordedEvents struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordedEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingRecordsEvents(t *testing.T) {
	events := &recordedEvents{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"reply":"ok","follow_ups":[]}`), Usage: Usage{InputTokens: 12, OutputTokens: 4}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, ProviderMock, events, logger.Nop())
	ctx := WithPurpose(context.Background(), PurposeChat)
	req := Request{System: "coach", Messages: []Message{{Role: RoleUser, Content: "hi"}}, Schema: chatTestSchema()}

	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("expected error")
	}

	if len(events.events) != 2 {
		t.Fatalf("events = %d, want 2", len(events.events))
	}
	ok, failed := events.events[0], events.events[1]
	if !ok.Success || ok.Purpose != PurposeChat || ok.InputTokens != 12 || ok.ResponseBody == "" {
		t.Errorf("success event = %+v", ok)
	}
	if failed.Success || failed.ErrorMessage == "" {
		t.Errorf("failure event = %+v", failed)
	}
	if ok.RequestBody == "" || ok.Provider != ProviderMock {
		t.Errorf("request body or provider missing: %+v", ok)
	}
}

func TestLoggingIgnoresStoreFailure(t *testing.T) {
	events := &recordedEvents{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`"hi"`)})
	p := WithLogging(mock, ProviderMock, events, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("store failure leaked: %v", err)
	}
}

func TestNewProviderMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != ProviderMock {
		t.Errorf("model = %q", p.ModelID())
	}
	if _, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, nil); err == nil {
		t.Error("expected validation error")
	}
}
