package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/retry"
)

const pathQuery = `*[_type == "learningPath" && slug.current == $slug][0]{
  "id": _id,
  "slug": slug.current,
  title,
  description,
  "modules": modules[]->{
    "id": _id,
    "slug": slug.current,
    title,
    "order": coalesce(order, 0),
    "lessons": lessons[]->{
      "id": _id,
      "slug": slug.current,
      title,
      "order": coalesce(order, 0),
      duration,
      "type": lessonType,
      "premium": coalesce(isPremium, false)
    }
  }
}`

const lessonQuery = `*[_type == "lesson" && slug.current == $slug][0]{
  "id": _id,
  "slug": slug.current,
  title,
  duration,
  "type": lessonType,
  videoUrl,
  "body": content,
  keyTakeaways,
  "tasks": actionableTasks[]{"key": _key, description, "optional": coalesce(isOptional, false)},
  "deliverables": measurableDeliverables[]{"key": _key, description, "optional": coalesce(isOptional, false)},
  "resources": resources[]{title, url, "kind": resourceType},
  "quiz": quiz->{
    title,
    "questions": questions[]{
      "text": question,
      "type": coalesce(questionType, "multipleChoice"),
      "options": options[]{text, "correct": coalesce(isCorrect, false)},
      "correctAnswer": correctAnswerBool,
      explanation
    }
  },
  "module": module->{"id": _id, "slug": slug.current, title},
  "premium": coalesce(isPremium, false)
}`

// CMSConfig configures CMSProvider.
type CMSConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration

	// BaseURL overrides the host derived from ProjectID.
	BaseURL string

	Retry retry.Config
}

// CMSProvider queries a Sanity-compatible content API with GROQ.
type CMSProvider struct {
	client *resty.Client
	path   string
	retry  retry.Config
	log    *logger.Logger
}

// StatusError is a non-2xx CMS response.
type StatusError struct {
	Code       int
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cms returned status %d", e.Code)
}

// NewCMSProvider builds a CMSProvider. A nil logger discards output.
func NewCMSProvider(cfg CMSConfig, log *logger.Logger) *CMSProvider {
	if log == nil {
		log = logger.Nop()
	}
	base := cfg.BaseURL
	if base == "" {
		host := "api"
		if cfg.UseCDN {
			host = "apicdn"
		}
		base = fmt.Sprintf("https://%s.%s.sanity.io", cfg.ProjectID, host)
	}

	client := resty.New().
		SetBaseURL(base).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	rc := cfg.Retry
	if rc.MaxAttempts == 0 {
		rc = retry.DefaultConfig()
	}
	rc.Retryable = retry.NotPermanent
	rc.WaitFor = func(err error) (time.Duration, bool) {
		var se *StatusError
		if errors.As(err, &se) && se.RetryAfter > 0 {
			return se.RetryAfter, true
		}
		return 0, false
	}

	return &CMSProvider{
		client: client,
		path:   fmt.Sprintf("/v%s/data/query/%s", cfg.APIVersion, cfg.Dataset),
		retry:  rc,
		log:    log.With("component", "cms"),
	}
}

func (c *CMSProvider) FetchPath(ctx context.Context, slug string) (*Path, error) {
	var p Path
	found, err := c.query(ctx, pathQuery, slug, &p)
	if err != nil || !found {
		return nil, err
	}
	if err := ValidatePath(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *CMSProvider) FetchLesson(ctx context.Context, slug string) (*Lesson, error) {
	var l Lesson
	found, err := c.query(ctx, lessonQuery, slug, &l)
	if err != nil || !found {
		return nil, err
	}
	if err := ValidateLesson(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// query runs groq with $slug bound and decodes the result into out. A
// null result or a 404 reports found=false.
func (c *CMSProvider) query(ctx context.Context, groq, slug string, out any) (bool, error) {
	param, err := json.Marshal(slug)
	if err != nil {
		return false, fmt.Errorf("encode slug: %w", err)
	}

	attempt := 0
	resp, err := retry.DoValue(ctx, c.retry, func(ctx context.Context) (*resty.Response, error) {
		attempt++
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("query", groq).
			SetQueryParam("$slug", string(param)).
			Get(c.path)
		if err != nil {
			c.log.Warn("cms request failed", "slug", slug, "attempt", attempt, "error", err)
			return nil, err
		}
		code := r.StatusCode()
		switch {
		case code == http.StatusNotFound:
			return r, nil
		case code == http.StatusTooManyRequests || code >= 500:
			c.log.Warn("cms request failed", "slug", slug, "attempt", attempt, "status", code)
			return nil, &StatusError{Code: code, RetryAfter: parseRetryAfter(r.Header().Get("Retry-After"))}
		case r.IsError():
			return nil, &retry.Permanent{Err: &StatusError{Code: code}}
		}
		return r, nil
	})
	if err != nil {
		return false, fmt.Errorf("cms query: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}

	var qr queryResponse
	if err := json.Unmarshal(resp.Body(), &qr); err != nil {
		return false, fmt.Errorf("decode cms response: %w", err)
	}
	if Blocks(qr.Result).Empty() {
		return false, nil
	}
	if err := json.Unmarshal(qr.Result, out); err != nil {
		return false, fmt.Errorf("%w: decode result: %v", ErrInvalidDocument, err)
	}
	return true, nil
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
