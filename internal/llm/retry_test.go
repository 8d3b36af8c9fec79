package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/moneypath/internal/retry"
)

func fastRetry() retry.Config {
	return retry.Config{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

var okReply = MockResponse{Content: json.RawMessage(`{"ok":true}`)}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetryDecorator(t *testing.T) {
	invalid := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}}

	tests := []struct {
		name    string
		script  []MockResponse
		calls   int
		wantErr bool
	}{
		{"first attempt", []MockResponse{okReply}, 1, false},
		{"transient then ok", []MockResponse{down(), okReply}, 2, false},
		{"exhausted", []MockResponse{down(), down(), down(), okReply}, 3, true},
		{"max tokens not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, okReply}, 1, true},
		{"rejected not retried", []MockResponse{{Err: &ErrRejected{Status: 401, Err: errors.New("bad key")}}, okReply}, 1, true},
		{"invalid retried once", []MockResponse{invalid, invalid, okReply}, 2, true},
		{"invalid then ok", []MockResponse{invalid, okReply}, 2, false},
		{"rate limit honours retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, okReply}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			p := WithRetry(mock, fastRetry(), nil)

			resp, err := p.Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && string(resp.Content) != `{"ok":true}` {
				t.Errorf("content = %s", resp.Content)
			}
			if mock.CallCount() != tt.calls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.calls)
			}
		})
	}
}

func TestRetryDecoratorCancelled(t *testing.T) {
	mock := NewMockProvider(down(), okReply)
	p := WithRetry(mock, fastRetry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
}

func TestRetryDecoratorModelID(t *testing.T) {
	if id := WithRetry(NewMockProvider(), fastRetry(), nil).ModelID(); id != ProviderMock {
		t.Errorf("ModelID = %q", id)
	}
}
