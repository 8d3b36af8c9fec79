package lesson

import (
	"slices"
	"testing"

	"github.com/abhisek/moneypath/internal/content"
)

func TestDerivePagesBareLesson(t *testing.T) {
	for _, l := range []*content.Lesson{
		nil,
		{ID: "x", Type: content.TypeReading},
		{ID: "x", Body: content.Blocks("[]"), KeyTakeaways: content.Blocks("null")},
	} {
		if got := DerivePages(l); !slices.Equal(got, []Page{PageIntro}) {
			t.Errorf("DerivePages(%+v) = %v, want [intro]", l, got)
		}
	}
}

func TestDerivePagesSingleAttribute(t *testing.T) {
	tests := []struct {
		name   string
		lesson content.Lesson
		want   Page
	}{
		{"body", content.Lesson{Body: body()}, PageContent},
		{"video", content.Lesson{Type: content.TypeVideo}, PageContent},
		{"exercise", content.Lesson{Type: content.TypeExercise}, PageContent},
		{"takeaways", content.Lesson{KeyTakeaways: body()}, PageTakeaways},
		{"tasks", content.Lesson{Tasks: []content.Task{{Key: "a"}}}, PageActions},
		{"deliverables", content.Lesson{Deliverables: []content.Task{{Key: "a"}}}, PageActions},
		{"resources", content.Lesson{Resources: []content.Resource{{Title: "r", URL: "https://example.com"}}}, PageActions},
		{"quiz type", content.Lesson{Type: content.TypeQuiz}, PageQuiz},
		{"quiz attached", content.Lesson{Quiz: &content.Quiz{}}, PageQuiz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePages(&tt.lesson)
			want := []Page{PageIntro, tt.want}
			if !slices.Equal(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestDerivePagesFixedOrder(t *testing.T) {
	got := DerivePages(fullLesson("l1"))
	want := []Page{PageIntro, PageContent, PageTakeaways, PageActions, PageQuiz}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// A video lesson with a body still has one content page.
	l := fullLesson("l1")
	l.Type = content.TypeVideo
	if got := DerivePages(l); !slices.Equal(got, want) {
		t.Errorf("video lesson pages = %v, want %v", got, want)
	}
}

func TestParsePage(t *testing.T) {
	for _, p := range []Page{PageIntro, PageContent, PageTakeaways, PageActions, PageQuiz} {
		got, err := ParsePage(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePage(%q) = %v, %v", p, got, err)
		}
	}
	if _, err := ParsePage("summary"); err == nil {
		t.Error("expected error for unknown page")
	}
}
