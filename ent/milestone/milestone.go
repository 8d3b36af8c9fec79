// Code generated by ent, DO NOT EDIT.

package milestone

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the milestone type in the database.
	Label = "milestone"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTriggerLessonID holds the string denoting the trigger_lesson_id field in the database.
	FieldTriggerLessonID = "trigger_lesson_id"
	// FieldEarnedAt holds the string denoting the earned_at field in the database.
	FieldEarnedAt = "earned_at"
	// Table holds the table name of the milestone in the database.
	Table = "milestones"
)

// Columns holds all SQL columns for milestone fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCode,
	FieldTitle,
	FieldTriggerLessonID,
	FieldEarnedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// DefaultTriggerLessonID holds the default value on creation for the "trigger_lesson_id" field.
	DefaultTriggerLessonID string
	// DefaultEarnedAt holds the default value on creation for the "earned_at" field.
	DefaultEarnedAt func() time.Time
)

// OrderOption defines the ordering options for the Milestone queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByTriggerLessonID orders the results by the trigger_lesson_id field.
func ByTriggerLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerLessonID, opts...).ToFunc()
}

// ByEarnedAt orders the results by the earned_at field.
func ByEarnedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarnedAt, opts...).ToFunc()
}
