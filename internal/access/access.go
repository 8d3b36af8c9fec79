// Package access decides whether a learner may open premium lessons.
package access

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/store"
)

// Subscription statuses as reported by the payments provider.
const (
	StatusActive     = "active"
	StatusTrialing   = "trialing"
	StatusPastDue    = "past_due"
	StatusCanceled   = "canceled"
	StatusIncomplete = "incomplete"
	StatusUnpaid     = "unpaid"
)

// Reasons explain an Entitlement.
const (
	ReasonRole         = "role"
	ReasonSubscription = "subscription"
	ReasonGrace        = "grace_period"
	ReasonPaidThrough  = "paid_through"
	ReasonExpired      = "expired"
	ReasonInactive     = "inactive"
	ReasonNone         = "no_subscription"
)

// Entitlement is the outcome of an access check.
type Entitlement struct {
	Premium bool       `json:"premium"`
	Reason  string     `json:"reason"`
	Until   *time.Time `json:"until,omitempty"`
}

// Compute derives the entitlement of id given its subscription, which may
// be nil. grace is how long past_due subscriptions keep access after the
// paid period ends.
func Compute(id *auth.Identity, sub *store.SubscriptionRecord, now time.Time, grace time.Duration) Entitlement {
	if id != nil && (id.Role == auth.RoleAdmin || id.Role == auth.RoleStaff) {
		return Entitlement{Premium: true, Reason: ReasonRole}
	}
	if sub == nil {
		return Entitlement{Reason: ReasonNone}
	}

	switch sub.Status {
	case StatusActive, StatusTrialing:
		return Entitlement{Premium: true, Reason: ReasonSubscription, Until: sub.CurrentPeriodEnd}
	case StatusPastDue:
		if sub.CurrentPeriodEnd == nil {
			return Entitlement{Reason: ReasonExpired}
		}
		until := sub.CurrentPeriodEnd.Add(grace)
		if now.Before(until) {
			return Entitlement{Premium: true, Reason: ReasonGrace, Until: &until}
		}
		return Entitlement{Reason: ReasonExpired}
	case StatusCanceled:
		if sub.CurrentPeriodEnd != nil && now.Before(*sub.CurrentPeriodEnd) {
			return Entitlement{Premium: true, Reason: ReasonPaidThrough, Until: sub.CurrentPeriodEnd}
		}
		return Entitlement{Reason: ReasonExpired}
	default:
		return Entitlement{Reason: ReasonInactive}
	}
}

// Checker looks up subscriptions and computes entitlements.
type Checker struct {
	subs  store.SubscriptionRepo
	grace time.Duration
	now   func() time.Time
}

// NewChecker returns a Checker over subs.
func NewChecker(subs store.SubscriptionRepo, grace time.Duration) *Checker {
	return &Checker{subs: subs, grace: grace, now: time.Now}
}

// Check returns the entitlement of id.
func (c *Checker) Check(ctx context.Context, id *auth.Identity) (Entitlement, error) {
	if id == nil {
		return Entitlement{Reason: ReasonNone}, nil
	}
	sub, err := c.subs.Get(ctx, id.UserID)
	if err != nil {
		return Entitlement{}, fmt.Errorf("load subscription: %w", err)
	}
	return Compute(id, sub, c.now(), c.grace), nil
}

// Grant records a subscription for userID, replacing any existing one.
func (c *Checker) Grant(ctx context.Context, userID, status, plan string, until *time.Time) error {
	return c.subs.Put(ctx, store.SubscriptionRecord{
		UserID:           userID,
		Status:           status,
		Plan:             plan,
		CurrentPeriodEnd: until,
		UpdatedAt:        c.now(),
	})
}
