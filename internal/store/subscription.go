package store

import (
	"context"
	"fmt"

	"github.com/abhisek/moneypath/ent"
	entsub "github.com/abhisek/moneypath/ent/subscription"
)

type subscriptionRepo struct {
	client *ent.Client
}

func (r *subscriptionRepo) Get(ctx context.Context, userID string) (*SubscriptionRecord, error) {
	row, err := r.client.Subscription.Query().
		Where(entsub.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &SubscriptionRecord{
		UserID:           row.UserID,
		Status:           string(row.Status),
		Plan:             row.Plan,
		CurrentPeriodEnd: row.CurrentPeriodEnd,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

func (r *subscriptionRepo) Put(ctx context.Context, sub SubscriptionRecord) error {
	status := entsub.Status(sub.Status)
	if err := entsub.StatusValidator(status); err != nil {
		return fmt.Errorf("subscription status %q: %w", sub.Status, err)
	}

	upsert := r.client.Subscription.Create().
		SetUserID(sub.UserID).
		SetStatus(status).
		SetPlan(sub.Plan).
		SetNillableCurrentPeriodEnd(sub.CurrentPeriodEnd).
		OnConflictColumns(entsub.FieldUserID).
		UpdateNewValues()
	if sub.CurrentPeriodEnd == nil {
		upsert = upsert.Update(func(u *ent.SubscriptionUpsert) {
			u.ClearCurrentPeriodEnd()
		})
	}
	if err := upsert.Exec(ctx); err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}
