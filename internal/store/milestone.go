package store

import (
	"context"
	"fmt"

	"github.com/abhisek/moneypath/ent"
	"github.com/abhisek/moneypath/ent/milestone"
)

type milestoneRepo struct {
	client *ent.Client
}

func (r *milestoneRepo) Award(ctx context.Context, m MilestoneRecord) (bool, error) {
	exists, err := r.client.Milestone.Query().
		Where(milestone.UserID(m.UserID), milestone.Code(m.Code)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check milestone: %w", err)
	}
	if exists {
		return false, nil
	}

	create := r.client.Milestone.Create().
		SetUserID(m.UserID).
		SetCode(m.Code).
		SetTitle(m.Title).
		SetTriggerLessonID(m.TriggerLessonID)
	if !m.EarnedAt.IsZero() {
		create = create.SetEarnedAt(m.EarnedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		// A concurrent award of the same code lost the race; the unique
		// index kept the first one.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("save milestone: %w", err)
	}
	return true, nil
}

func (r *milestoneRepo) List(ctx context.Context, userID string) ([]MilestoneRecord, error) {
	rows, err := r.client.Milestone.Query().
		Where(milestone.UserID(userID)).
		Order(ent.Asc(milestone.FieldEarnedAt), ent.Asc(milestone.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	out := make([]MilestoneRecord, len(rows))
	for i, row := range rows {
		out[i] = MilestoneRecord{
			UserID:          row.UserID,
			Code:            row.Code,
			Title:           row.Title,
			TriggerLessonID: row.TriggerLessonID,
			EarnedAt:        row.EarnedAt,
		}
	}
	return out, nil
}
