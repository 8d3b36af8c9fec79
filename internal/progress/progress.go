// Package progress defines the per-user, per-lesson completion record and
// the store contract the lesson core reads and writes it through.
package progress

import (
	"context"
	"slices"
	"time"
)

// Record is the persisted progress of one user on one lesson.
type Record struct {
	UserID   string `json:"userId"`
	LessonID string `json:"lessonId"`
	CourseID string `json:"courseId"`
	ModuleID string `json:"moduleId,omitempty"`

	Completed bool `json:"completed"`

	// CompletedTaskKeys is a set, kept sorted and free of duplicates.
	CompletedTaskKeys []string `json:"completedTaskKeys"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// FirstCompletedAt is when the lesson was first completed. Reopening
	// the lesson leaves it set.
	FirstCompletedAt *time.Time `json:"firstCompletedAt,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Store reads and writes progress records. Read returns (nil, nil) when
// the user has no record for the lesson. Write upserts on
// (UserID, LessonID); the last write wins.
type Store interface {
	Read(ctx context.Context, userID, lessonID string) (*Record, error)
	Write(ctx context.Context, rec Record) error
}

// OrEmpty returns rec, or a fresh incomplete record for the pair when rec
// is nil.
func OrEmpty(rec *Record, userID, lessonID string) Record {
	if rec == nil {
		return Record{UserID: userID, LessonID: lessonID, CompletedTaskKeys: []string{}}
	}
	out := *rec
	out.CompletedTaskKeys = NormalizeKeys(rec.CompletedTaskKeys)
	return out
}

// NormalizeKeys returns a sorted copy of keys without duplicates or empty
// strings.
func NormalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// EverCompleted reports whether the lesson has been completed at least
// once, even if it was reopened since.
func (r Record) EverCompleted() bool {
	return r.Completed || r.FirstCompletedAt != nil
}

// HasKey reports whether key is in the record's completed set.
func (r Record) HasKey(key string) bool {
	_, found := slices.BinarySearch(r.CompletedTaskKeys, key)
	return found
}
