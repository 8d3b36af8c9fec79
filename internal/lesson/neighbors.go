package lesson

import (
	"net/url"

	"github.com/abhisek/moneypath/internal/content"
)

// Neighbors are the lessons before and after one lesson in reading order,
// crossing module boundaries. Found is false when the slug is not in the
// path.
type Neighbors struct {
	Previous *content.LessonSummary
	Next     *content.LessonSummary
	Found    bool
}

// ResolveNeighbors locates slug in the path's sorted lesson order. Modules
// without lessons are skipped. Slugs are assumed unique across the path.
func ResolveNeighbors(path *content.Path, slug string) Neighbors {
	lessons := path.Lessons()
	var prev *content.LessonSummary
	for i := range lessons {
		if lessons[i].Slug != slug {
			prev = &lessons[i]
			continue
		}
		n := Neighbors{Previous: prev, Found: true}
		if i+1 < len(lessons) {
			n.Next = &lessons[i+1]
		}
		return n
	}
	return Neighbors{}
}

// LessonURL is the route of a lesson within a path.
func LessonURL(pathSlug, lessonSlug string) string {
	return "/courses/" + url.PathEscape(pathSlug) + "/lessons/" + url.PathEscape(lessonSlug)
}

// FinalAction is what the last page offers once the learner reaches it.
type FinalAction int

const (
	FinalNone FinalAction = iota
	FinalNextLesson
	FinalCompleteCourse
)

func (a FinalAction) String() string {
	switch a {
	case FinalNextLesson:
		return "next_lesson"
	case FinalCompleteCourse:
		return "complete_course"
	default:
		return "none"
	}
}

func (a FinalAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Final is the action the last page of the lesson offers.
func (n Neighbors) Final() FinalAction {
	if !n.Found {
		return FinalNone
	}
	if n.Next != nil {
		return FinalNextLesson
	}
	return FinalCompleteCourse
}
