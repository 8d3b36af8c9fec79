package content

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/moneypath/internal/retry"
)

func newTestCMS(t *testing.T, handler http.HandlerFunc) *CMSProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCMSProvider(CMSConfig{
		BaseURL:    srv.URL,
		Dataset:    "production",
		APIVersion: "2023-10-01",
		Token:      "sk-test",
		Timeout:    time.Second,
		Retry: retry.Config{
			MaxAttempts: 3,
			InitialWait: time.Millisecond,
			MaxWait:     5 * time.Millisecond,
			Multiplier:  2,
		},
	}, nil)
}

func TestCMSFetchLesson(t *testing.T) {
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2023-10-01/data/query/production", r.URL.Path)
		assert.Equal(t, `"credit-score"`, r.URL.Query().Get("$slug"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"result":{"id":"abc","slug":"credit-score","title":"Your credit score","type":"reading",
			"tasks":[{"key":"k1","description":[{"_type":"block"}],"optional":false}],
			"deliverables":null,"quiz":null,"module":{"id":"m1","title":"Building"}}}`)
	})

	l, err := cms.FetchLesson(context.Background(), "credit-score")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, "abc", l.ID)
	assert.Equal(t, "k1", l.Tasks[0].Key)
	assert.Nil(t, l.Quiz)
	assert.Equal(t, "m1", l.Module.ID)
}

func TestCMSNullResultIsNotFound(t *testing.T) {
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":null}`)
	})
	p, err := cms.FetchPath(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestCMS404IsNotFound(t *testing.T) {
	var calls atomic.Int32
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	l, err := cms.FetchLesson(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, l)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCMSRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"result":{"id":"p1","slug":"credit-basics","title":"Credit Basics","modules":[]}}`)
	})
	p, err := cms.FetchPath(context.Background(), "credit-basics")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCMSGivesUpAfterThreeAttempts(t *testing.T) {
	var calls atomic.Int32
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := cms.FetchPath(context.Background(), "credit-basics")
	require.Error(t, err)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCMSRetryAfterCappedByMaxWait(t *testing.T) {
	var calls atomic.Int32
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "3600")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"result":{"id":"p1","slug":"credit-basics","title":"Credit Basics","modules":[]}}`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	p, err := cms.FetchPath(ctx, "credit-basics")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCMSClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := cms.FetchLesson(context.Background(), "credit-score")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCMSInvalidDocument(t *testing.T) {
	cms := newTestCMS(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"id":"abc","slug":"x","title":"X","tasks":[{"key":"a"}],"deliverables":[{"key":"a"}]}}`)
	})
	_, err := cms.FetchLesson(context.Background(), "x")
	assert.ErrorIs(t, err, ErrInvalidDocument)
}
