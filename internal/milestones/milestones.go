// Package milestones awards achievements when learners complete lessons
// and paths.
package milestones

import (
	"fmt"
	"strings"
)

// Milestone is an earned achievement.
type Milestone struct {
	Code     string
	Title    string
	LessonID string
	UserID   string
}

// Icon returns the display icon for the milestone.
func (m Milestone) Icon() string {
	switch {
	case m.Code == CodeFirstLesson:
		return "🌱"
	case strings.HasPrefix(m.Code, codePathPrefix):
		return "🏆"
	default:
		return "⭐"
	}
}

// Milestone codes. Path completion codes are PathCode(slug).
const (
	CodeFirstLesson = "first_lesson"
	CodeLessons5    = "lessons_5"
	CodeLessons10   = "lessons_10"
	CodeLessons25   = "lessons_25"

	codePathPrefix = "path_complete:"
)

type countRule struct {
	code  string
	title string
	count int
}

// countRules are checked in order; every rule at or below the learner's
// completed count is awarded.
var countRules = []countRule{
	{CodeFirstLesson, "First lesson complete", 1},
	{CodeLessons5, "Five lessons complete", 5},
	{CodeLessons10, "Ten lessons complete", 10},
	{CodeLessons25, "Twenty-five lessons complete", 25},
}

// PathCode is the milestone code for completing the path with slug.
func PathCode(slug string) string {
	return codePathPrefix + slug
}

func pathTitle(title string) string {
	return fmt.Sprintf("Finished %s", title)
}
