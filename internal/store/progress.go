package store

import (
	"context"
	"fmt"

	"github.com/abhisek/moneypath/ent"
	"github.com/abhisek/moneypath/ent/lessonprogress"
	"github.com/abhisek/moneypath/internal/progress"
)

// ProgressRepo implements progress.Store over the lesson_progress table.
type ProgressRepo struct {
	client *ent.Client
}

var _ progress.Store = (*ProgressRepo)(nil)

// Read returns the record for (userID, lessonID), or nil if none exists.
func (r *ProgressRepo) Read(ctx context.Context, userID, lessonID string) (*progress.Record, error) {
	row, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.UserID(userID),
			lessonprogress.LessonID(lessonID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read progress: %w", err)
	}
	rec := toRecord(row)
	return &rec, nil
}

// Write upserts rec keyed by (UserID, LessonID). Immutable key columns
// are left alone on conflict; everything else takes the new values.
func (r *ProgressRepo) Write(ctx context.Context, rec progress.Record) error {
	keys := progress.NormalizeKeys(rec.CompletedTaskKeys)

	create := r.client.LessonProgress.Create().
		SetUserID(rec.UserID).
		SetLessonID(rec.LessonID).
		SetCourseID(rec.CourseID).
		SetModuleID(rec.ModuleID).
		SetCompleted(rec.Completed).
		SetCompletedTaskKeys(keys).
		SetNillableCompletedAt(rec.CompletedAt).
		SetNillableFirstCompletedAt(rec.FirstCompletedAt)
	if !rec.UpdatedAt.IsZero() {
		create = create.SetUpdatedAt(rec.UpdatedAt)
	}

	// A nil FirstCompletedAt is not part of the insert, so the stored
	// first-completion time survives the update.
	upsert := create.
		OnConflictColumns(lessonprogress.FieldUserID, lessonprogress.FieldLessonID).
		UpdateNewValues()
	if rec.CompletedAt == nil {
		upsert = upsert.Update(func(u *ent.LessonProgressUpsert) {
			u.ClearCompletedAt()
		})
	}

	if err := upsert.Exec(ctx); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// ListByCourse returns the user's records for one learning path.
func (r *ProgressRepo) ListByCourse(ctx context.Context, userID, courseID string) ([]progress.Record, error) {
	rows, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.UserID(userID),
			lessonprogress.CourseID(courseID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]progress.Record, len(rows))
	for i, row := range rows {
		out[i] = toRecord(row)
	}
	return out, nil
}

// CompletedCount returns how many lessons the user has completed.
func (r *ProgressRepo) CompletedCount(ctx context.Context, userID string) (int, error) {
	n, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.UserID(userID),
			lessonprogress.Completed(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed lessons: %w", err)
	}
	return n, nil
}

// CompletedLessonIDs returns the ids of lessons the user has completed.
func (r *ProgressRepo) CompletedLessonIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.UserID(userID),
			lessonprogress.Completed(true),
		).
		Select(lessonprogress.FieldLessonID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed lessons: %w", err)
	}
	return ids, nil
}

func toRecord(row *ent.LessonProgress) progress.Record {
	return progress.Record{
		UserID:            row.UserID,
		LessonID:          row.LessonID,
		CourseID:          row.CourseID,
		ModuleID:          row.ModuleID,
		Completed:         row.Completed,
		CompletedTaskKeys: progress.NormalizeKeys(row.CompletedTaskKeys),
		CompletedAt:       row.CompletedAt,
		FirstCompletedAt:  row.FirstCompletedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
