package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/store"
)

func TestCompute(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	longAgo := now.Add(-10 * 24 * time.Hour)
	future := now.Add(24 * time.Hour)
	learner := &auth.Identity{UserID: "u1"}
	grace := 72 * time.Hour

	sub := func(status string, end *time.Time) *store.SubscriptionRecord {
		return &store.SubscriptionRecord{UserID: "u1", Status: status, CurrentPeriodEnd: end}
	}

	tests := []struct {
		name    string
		id      *auth.Identity
		sub     *store.SubscriptionRecord
		premium bool
		reason  string
	}{
		{"admin without subscription", &auth.Identity{UserID: "a", Role: auth.RoleAdmin}, nil, true, ReasonRole},
		{"staff with canceled subscription", &auth.Identity{UserID: "s", Role: auth.RoleStaff}, sub(StatusCanceled, &longAgo), true, ReasonRole},
		{"no subscription", learner, nil, false, ReasonNone},
		{"active", learner, sub(StatusActive, &future), true, ReasonSubscription},
		{"trialing", learner, sub(StatusTrialing, nil), true, ReasonSubscription},
		{"past due within grace", learner, sub(StatusPastDue, &past), true, ReasonGrace},
		{"past due after grace", learner, sub(StatusPastDue, &longAgo), false, ReasonExpired},
		{"past due without period", learner, sub(StatusPastDue, nil), false, ReasonExpired},
		{"canceled before period end", learner, sub(StatusCanceled, &future), true, ReasonPaidThrough},
		{"canceled after period end", learner, sub(StatusCanceled, &past), false, ReasonExpired},
		{"incomplete", learner, sub(StatusIncomplete, &future), false, ReasonInactive},
		{"unpaid", learner, sub(StatusUnpaid, &future), false, ReasonInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.id, tt.sub, now, grace)
			assert.Equal(t, tt.premium, got.Premium)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestComputeGraceUntil(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(-time.Hour)
	got := Compute(&auth.Identity{UserID: "u1"}, &store.SubscriptionRecord{Status: StatusPastDue, CurrentPeriodEnd: &end}, now, 2*time.Hour)
	require.True(t, got.Premium)
	require.NotNil(t, got.Until)
	assert.Equal(t, end.Add(2*time.Hour), *got.Until)
}

type fakeSubs struct {
	subs map[string]store.SubscriptionRecord
	err  error
}

func (f *fakeSubs) Get(_ context.Context, userID string) (*store.SubscriptionRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.subs[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSubs) Put(_ context.Context, sub store.SubscriptionRecord) error {
	f.subs[sub.UserID] = sub
	return nil
}

func TestCheckerGrantAndCheck(t *testing.T) {
	subs := &fakeSubs{subs: map[string]store.SubscriptionRecord{}}
	c := NewChecker(subs, time.Hour)
	ctx := context.Background()
	id := &auth.Identity{UserID: "u1"}

	ent, err := c.Check(ctx, id)
	require.NoError(t, err)
	assert.False(t, ent.Premium)

	require.NoError(t, c.Grant(ctx, "u1", StatusActive, "monthly", nil))
	ent, err = c.Check(ctx, id)
	require.NoError(t, err)
	assert.True(t, ent.Premium)

	ent, err = c.Check(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ent.Premium)
}

func TestCheckerStoreError(t *testing.T) {
	boom := errors.New("db down")
	c := NewChecker(&fakeSubs{err: boom}, time.Hour)
	_, err := c.Check(context.Background(), &auth.Identity{UserID: "u1"})
	assert.ErrorIs(t, err, boom)
}
