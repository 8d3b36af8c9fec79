package lesson

import (
	"testing"

	"github.com/abhisek/moneypath/internal/content"
)

func slugOf(l *content.LessonSummary) string {
	if l == nil {
		return ""
	}
	return l.Slug
}

func TestResolveNeighbors(t *testing.T) {
	path := threeModulePath()

	tests := []struct {
		slug       string
		prev, next string
		found      bool
	}{
		{"l1", "", "l2", true},
		{"l2", "l1", "l3", true},
		{"l3", "l2", "", true},
		{"missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			n := ResolveNeighbors(path, tt.slug)
			if n.Found != tt.found || slugOf(n.Previous) != tt.prev || slugOf(n.Next) != tt.next {
				t.Errorf("got prev=%q next=%q found=%v, want prev=%q next=%q found=%v",
					slugOf(n.Previous), slugOf(n.Next), n.Found, tt.prev, tt.next, tt.found)
			}
		})
	}
}

func TestResolveNeighborsDoesNotReorderSource(t *testing.T) {
	path := threeModulePath()
	_ = ResolveNeighbors(path, "l2")
	if path.Modules[0].ID != "c" || path.Modules[1].Lessons[0].Slug != "l2" {
		t.Error("resolver mutated the path tree")
	}
}

func TestResolveNeighborsSingleLesson(t *testing.T) {
	path := &content.Path{Slug: "p", Modules: []content.Module{
		{ID: "empty"},
		{ID: "m", Lessons: []content.LessonSummary{{ID: "only", Slug: "only"}}},
	}}
	n := ResolveNeighbors(path, "only")
	if !n.Found || n.Previous != nil || n.Next != nil {
		t.Errorf("got %+v", n)
	}
}

func TestLessonURL(t *testing.T) {
	if got := LessonURL("credit-basics", "what-is-credit"); got != "/courses/credit-basics/lessons/what-is-credit" {
		t.Errorf("LessonURL = %q", got)
	}
}

func TestNeighborsFinal(t *testing.T) {
	path := threeModulePath()
	tests := []struct {
		slug string
		want FinalAction
	}{
		{"l1", FinalNextLesson},
		{"l3", FinalCompleteCourse},
		{"missing", FinalNone},
	}
	for _, tt := range tests {
		if got := ResolveNeighbors(path, tt.slug).Final(); got != tt.want {
			t.Errorf("Final(%s) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}
