package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar(), salt: "pepper"}, logs
}

func TestRedactsSecrets(t *testing.T) {
	l, logs := observed(t)
	l.Info("login", "access_token", "abc.def.ghi", "api_key", "sk-123", "lesson_id", "budgeting-101")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["access_token"] != "[REDACTED]" {
		t.Errorf("access_token = %v, want redacted", fields["access_token"])
	}
	if fields["api_key"] != "[REDACTED]" {
		t.Errorf("api_key = %v, want redacted", fields["api_key"])
	}
	if fields["lesson_id"] != "budgeting-101" {
		t.Errorf("lesson_id = %v, want passthrough", fields["lesson_id"])
	}
}

func TestHashesUserID(t *testing.T) {
	l, logs := observed(t)
	l.With("user_id", "user-42").Warn("progress write failed")

	got, ok := logs.All()[0].ContextMap()["user_id"].(string)
	if !ok {
		t.Fatal("expected string user_id field")
	}
	if !strings.HasPrefix(got, "hash:") || strings.Contains(got, "user-42") {
		t.Errorf("user_id = %q, want hashed value", got)
	}
	if len(got) != len("hash:")+12 {
		t.Errorf("hash length = %d, want %d", len(got), len("hash:")+12)
	}
}

func TestOddKeyValuesKept(t *testing.T) {
	l, logs := observed(t)
	l.Debug("odd", "dangling")
	if logs.FilterMessage("odd").Len() != 1 {
		t.Fatal("expected entry to be logged")
	}
}
