// Package settings holds process-scoped learner preferences. They are
// loaded once at startup and every change is written through to the store.
package settings

import (
	"context"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/store"
)

// Keys.
const (
	KeyChatThread    = "chat.thread_id"
	KeyHighContrast  = "a11y.high_contrast"
	KeyReducedMotion = "a11y.reduced_motion"
	KeyLocale        = "locale"

	flagPrefix = "flag."
)

// Settings is safe for concurrent use.
type Settings struct {
	mu            sync.RWMutex
	repo          store.SettingsRepo
	values        map[string]string
	defaultLocale string
}

// Load reads every stored setting. defaultLocale is used until a locale
// is stored.
func Load(ctx context.Context, repo store.SettingsRepo, defaultLocale string) (*Settings, error) {
	values, err := repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	if !i18n.Supported(defaultLocale) {
		defaultLocale = i18n.DefaultLocale
	}
	return &Settings{repo: repo, values: values, defaultLocale: defaultLocale}, nil
}

func (s *Settings) get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// set stores value and, only once the store accepted it, updates memory.
func (s *Settings) set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Set(ctx, key, value); err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	s.values[key] = value
	return nil
}

func (s *Settings) boolValue(key string) bool {
	v, _ := s.get(key)
	b, _ := strconv.ParseBool(v)
	return b
}

// All returns a copy of the stored values.
func (s *Settings) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

func (s *Settings) HighContrast() bool { return s.boolValue(KeyHighContrast) }

func (s *Settings) SetHighContrast(ctx context.Context, on bool) error {
	return s.set(ctx, KeyHighContrast, strconv.FormatBool(on))
}

func (s *Settings) ReducedMotion() bool { return s.boolValue(KeyReducedMotion) }

func (s *Settings) SetReducedMotion(ctx context.Context, on bool) error {
	return s.set(ctx, KeyReducedMotion, strconv.FormatBool(on))
}

// Locale returns the learner's locale.
func (s *Settings) Locale() string {
	if v, ok := s.get(KeyLocale); ok && i18n.Supported(v) {
		return v
	}
	return s.defaultLocale
}

// SetLocale stores locale, which must have a message catalog.
func (s *Settings) SetLocale(ctx context.Context, locale string) error {
	if !i18n.Supported(locale) {
		return fmt.Errorf("unsupported locale %q", locale)
	}
	return s.set(ctx, KeyLocale, locale)
}

// Flag reports whether the feature flag name is on.
func (s *Settings) Flag(name string) bool { return s.boolValue(flagPrefix + name) }

func (s *Settings) SetFlag(ctx context.Context, name string, on bool) error {
	return s.set(ctx, flagPrefix+name, strconv.FormatBool(on))
}

// Flags returns every stored feature flag by name.
func (s *Settings) Flags() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool)
	for k, v := range s.values {
		if name, ok := strings.CutPrefix(k, flagPrefix); ok {
			out[name], _ = strconv.ParseBool(v)
		}
	}
	return out
}

// ChatThread returns the current chat thread id, creating and storing one
// on first use.
func (s *Settings) ChatThread(ctx context.Context) (string, error) {
	if v, ok := s.get(KeyChatThread); ok && v != "" {
		return v, nil
	}
	return s.NewChatThread(ctx)
}

// NewChatThread starts a new chat thread and returns its id.
func (s *Settings) NewChatThread(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.set(ctx, KeyChatThread, id); err != nil {
		return "", err
	}
	return id, nil
}
