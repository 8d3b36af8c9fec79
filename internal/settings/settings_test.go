package settings

import (
	"context"
	"errors"
	"testing"
)

type memRepo struct {
	values map[string]string
	err    error
}

func (m *memRepo) All(context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *memRepo) Set(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func load(t *testing.T, repo *memRepo) *Settings {
	t.Helper()
	s, err := Load(context.Background(), repo, "en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestLoadReadsStoredValues(t *testing.T) {
	repo := &memRepo{values: map[string]string{
		KeyHighContrast: "true",
		KeyLocale:       "es",
		"flag.chat":     "true",
		"flag.beta":     "false",
	}}
	s := load(t, repo)

	if !s.HighContrast() || s.ReducedMotion() {
		t.Error("unexpected accessibility settings")
	}
	if s.Locale() != "es" {
		t.Errorf("locale = %q", s.Locale())
	}
	flags := s.Flags()
	if !flags["chat"] || flags["beta"] || len(flags) != 2 {
		t.Errorf("flags = %v", flags)
	}
}

func TestSettersWriteThrough(t *testing.T) {
	repo := &memRepo{values: map[string]string{}}
	s := load(t, repo)
	ctx := context.Background()

	if err := s.SetReducedMotion(ctx, true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFlag(ctx, "chat", true); err != nil {
		t.Fatal(err)
	}
	if repo.values[KeyReducedMotion] != "true" || repo.values["flag.chat"] != "true" {
		t.Errorf("store = %v", repo.values)
	}

	// A fresh load sees the same values.
	again := load(t, repo)
	if !again.ReducedMotion() || !again.Flag("chat") {
		t.Error("settings did not survive reload")
	}
}

func TestFailedWriteLeavesMemoryUnchanged(t *testing.T) {
	repo := &memRepo{values: map[string]string{}, err: errors.New("disk full")}
	s := load(t, repo)

	if err := s.SetHighContrast(context.Background(), true); err == nil {
		t.Fatal("expected error")
	}
	if s.HighContrast() {
		t.Error("memory updated despite failed write")
	}
}

func TestLocale(t *testing.T) {
	s := load(t, &memRepo{values: map[string]string{KeyLocale: "fr"}})
	if s.Locale() != "en" {
		t.Errorf("unsupported stored locale should fall back, got %q", s.Locale())
	}
	if err := s.SetLocale(context.Background(), "de"); err == nil {
		t.Error("expected error for unsupported locale")
	}
	if err := s.SetLocale(context.Background(), "es"); err != nil || s.Locale() != "es" {
		t.Errorf("SetLocale(es) = %v, locale %q", err, s.Locale())
	}
}

func TestChatThread(t *testing.T) {
	repo := &memRepo{values: map[string]string{}}
	s := load(t, repo)
	ctx := context.Background()

	first, err := s.ChatThread(ctx)
	if err != nil || first == "" {
		t.Fatalf("ChatThread = %q, %v", first, err)
	}
	again, _ := s.ChatThread(ctx)
	if again != first {
		t.Errorf("thread changed without reset: %q != %q", again, first)
	}
	if repo.values[KeyChatThread] != first {
		t.Error("thread id not persisted")
	}

	next, err := s.NewChatThread(ctx)
	if err != nil || next == first {
		t.Errorf("NewChatThread = %q, %v", next, err)
	}
}
