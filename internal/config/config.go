package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds process configuration. Values come from DefaultConfig,
// then an optional .env file, then MONEYPATH_* environment variables.
type Config struct {
	Env    string `validate:"oneof=dev prod"`
	DBPath string

	// LogFile, when set, redirects structured logs away from stderr.
	LogFile string

	Locale string `validate:"oneof=en es"`

	// PathSlug is the learning path the terminal app opens. Empty means
	// the first path of a file bundle.
	PathSlug string

	Content ContentConfig
	Auth    AuthConfig
	HTTP    HTTPConfig

	// PremiumGrace is how long a past_due subscription keeps premium access.
	PremiumGrace time.Duration `validate:"gte=0"`
}

// ContentConfig selects and configures the content provider.
type ContentConfig struct {
	Source string `validate:"oneof=cms file"`

	ProjectID  string `validate:"required_if=Source cms"`
	Dataset    string `validate:"required_if=Source cms"`
	APIVersion string `validate:"required_if=Source cms"`
	Token      string
	UseCDN     bool

	// File is the YAML content bundle used when Source is "file".
	File string `validate:"required_if=Source file"`

	Timeout time.Duration `validate:"gt=0"`
}

// AuthConfig configures identity resolution.
type AuthConfig struct {
	// JWTSecret verifies HS256 access tokens issued by the auth backend.
	JWTSecret string

	// AccessToken identifies the local learner in the terminal app.
	AccessToken string

	// UserID is used verbatim when no access token is configured.
	UserID string
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr        string `validate:"required"`
	CORSOrigins []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Env:    "dev",
		Locale: "en",
		Content: ContentConfig{
			Source:     "cms",
			Dataset:    "production",
			APIVersion: "2023-10-01",
			UseCDN:     true,
			Timeout:    15 * time.Second,
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		PremiumGrace: 72 * time.Hour,
	}
}

// Load reads .env (if present) and the environment over the defaults,
// applies overrides such as command-line flags, and validates the result.
func Load(overrides ...func(*Config)) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := FromEnv()
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds a Config from MONEYPATH_* variables without validating it.
func FromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Env, "MONEYPATH_ENV")
	setString(&cfg.DBPath, "MONEYPATH_DB")
	setString(&cfg.LogFile, "MONEYPATH_LOG_FILE")
	setString(&cfg.Locale, "MONEYPATH_LOCALE")
	setString(&cfg.PathSlug, "MONEYPATH_PATH")

	setString(&cfg.Content.Source, "MONEYPATH_CONTENT_SOURCE")
	setString(&cfg.Content.ProjectID, "MONEYPATH_CMS_PROJECT_ID")
	setString(&cfg.Content.Dataset, "MONEYPATH_CMS_DATASET")
	setString(&cfg.Content.APIVersion, "MONEYPATH_CMS_API_VERSION")
	setString(&cfg.Content.Token, "MONEYPATH_CMS_TOKEN")
	setBool(&cfg.Content.UseCDN, "MONEYPATH_CMS_CDN")
	setString(&cfg.Content.File, "MONEYPATH_CONTENT_FILE")
	setDuration(&cfg.Content.Timeout, "MONEYPATH_CMS_TIMEOUT")

	setString(&cfg.Auth.JWTSecret, "MONEYPATH_JWT_SECRET")
	setString(&cfg.Auth.AccessToken, "MONEYPATH_ACCESS_TOKEN")
	setString(&cfg.Auth.UserID, "MONEYPATH_USER_ID")

	setString(&cfg.HTTP.Addr, "MONEYPATH_HTTP_ADDR")
	if v := os.Getenv("MONEYPATH_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}

	setDuration(&cfg.PremiumGrace, "MONEYPATH_PREMIUM_GRACE")

	return cfg
}

// Validate checks struct constraints and returns a readable error.
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
