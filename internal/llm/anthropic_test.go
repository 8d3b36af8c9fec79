package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func anthropicServer(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func anthropicError(w http.ResponseWriter, status int, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"type":  "error",
		"error": map[string]any{"type": kind, "message": kind},
	})
}

func TestAnthropicGenerate(t *testing.T) {
	var body map[string]any
	p := anthropicServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_1",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": `{"reply":"Start with a budget.","follow_ups":[]}`}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System: "You are a financial literacy coach.",
		Messages: []Message{
			{Role: RoleUser, Content: "What is a budget?"},
			{Role: RoleAssistant, Content: "A plan for your money."},
			{Role: RoleUser, Content: "How do I start?"},
		},
		Schema: chatTestSchema(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Usage.TotalTokens != 80 || resp.StopReason != StopEnd {
		t.Errorf("response = %+v", resp)
	}
	if msgs, _ := body["messages"].([]any); len(msgs) != 3 {
		t.Errorf("sent %d messages, want 3", len(msgs))
	}
	if body["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("model = %v", body["model"])
	}
}

func TestAnthropicErrors(t *testing.T) {
	tests := []struct {
		status int
		kind   string
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, "rate_limit_error", func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl) && rl.RetryAfter == 7*time.Second
		}},
		{http.StatusInternalServerError, "api_error", func(err error) bool {
			var u *ErrProviderUnavailable
			return errors.As(err, &u)
		}},
		{http.StatusUnauthorized, "authentication_error", func(err error) bool {
			var r *ErrRejected
			return errors.As(err, &r) && r.Status == http.StatusUnauthorized
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			var calls atomic.Int32
			p := anthropicServer(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Retry-After", "7")
				anthropicError(w, tt.status, tt.kind)
			})
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
			if !tt.check(err) {
				t.Errorf("unexpected error %T: %v", err, err)
			}
			if n := calls.Load(); n != 1 {
				t.Errorf("SDK retried: %d calls", n)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name   string
		models map[string]string
		want   string
	}{
		{"claude-haiku", anthropicModels, "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", anthropicModels, "claude-sonnet-4-20250514"},
		{"gemini-flash", geminiModels, "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, tt.models); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
