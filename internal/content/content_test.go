package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBundle = `
paths:
  - slug: credit-basics
    title: Credit Basics
    modules:
      - slug: building
        title: Building credit
        order: 2
        lessons:
          - {slug: secured-cards, title: Secured cards, order: 2}
          - {slug: credit-score, title: Your credit score, order: 1}
      - slug: empty
        title: Coming soon
        order: 3
      - slug: intro
        title: Getting started
        order: 1
        lessons:
          - {slug: what-is-credit, title: "What is credit?", order: 1, type: video}
lessons:
  - slug: credit-score
    title: Your credit score
    type: reading
    body:
      - _type: block
        children:
          - {_type: span, text: A score summarizes your history.}
    tasks:
      - {key: pull-report, description: Pull your free credit report}
      - {key: dispute, description: Dispute an error, optional: true}
    deliverables:
      - {key: score-noted, description: Write down your score}
    module: {id: building, title: Building credit}
`

func TestParseBundle(t *testing.T) {
	fp, err := ParseBundle([]byte(testBundle))
	require.NoError(t, err)
	assert.Equal(t, []string{"credit-basics"}, fp.PathSlugs())

	p, err := fp.FetchPath(context.Background(), "credit-basics")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "credit-basics", p.ID, "id defaults to slug")
	summary, _, ok := p.FindLesson("what-is-credit")
	require.True(t, ok)
	assert.Equal(t, "What is credit?", summary.Title)

	l, err := fp.FetchLesson(context.Background(), "credit-score")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.False(t, l.Body.Empty())
	assert.True(t, l.KeyTakeaways.Empty())
	assert.Len(t, l.Tasks, 2)
	assert.Equal(t, "building", l.Module.ID)
}

func TestFileProviderNotFoundIsNil(t *testing.T) {
	fp, err := ParseBundle([]byte(testBundle))
	require.NoError(t, err)

	p, err := fp.FetchPath(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, p)

	l, err := fp.FetchLesson(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, l)
}

func TestPathSortedByOrder(t *testing.T) {
	fp, err := ParseBundle([]byte(testBundle))
	require.NoError(t, err)
	p, err := fp.FetchPath(context.Background(), "credit-basics")
	require.NoError(t, err)
	require.NotNil(t, p)

	var slugs []string
	for _, l := range p.Lessons() {
		slugs = append(slugs, l.Slug)
	}
	assert.Equal(t, []string{"what-is-credit", "credit-score", "secured-cards"}, slugs)

	// Source document stays in authoring order.
	assert.Equal(t, "building", p.Modules[0].Slug)
	assert.Equal(t, "secured-cards", p.Modules[0].Lessons[0].Slug)
}

func TestSortedIsStableForEqualOrder(t *testing.T) {
	p := &Path{Modules: []Module{{Lessons: []LessonSummary{
		{Slug: "b"}, {Slug: "a"}, {Slug: "c", Order: -1},
	}}}}
	got := p.Sorted().Modules[0].Lessons
	assert.Equal(t, "c", got[0].Slug)
	assert.Equal(t, "b", got[1].Slug)
	assert.Equal(t, "a", got[2].Slug)
}

func TestFindLesson(t *testing.T) {
	fp, err := ParseBundle([]byte(testBundle))
	require.NoError(t, err)
	p, err := fp.FetchPath(context.Background(), "credit-basics")
	require.NoError(t, err)
	require.NotNil(t, p)

	l, m, ok := p.FindLesson("secured-cards")
	require.True(t, ok)
	assert.Equal(t, "Secured cards", l.Title)
	assert.Equal(t, "building", m.Slug)

	_, _, ok = p.FindLesson("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, p.LessonCount())
}

func TestValidateLessonRejectsDuplicateKeys(t *testing.T) {
	l := &Lesson{
		ID: "l1", Slug: "l1", Title: "Lesson",
		Tasks:        []Task{{Key: "a"}},
		Deliverables: []Task{{Key: "a"}},
	}
	err := ValidateLesson(l)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDocument))
	assert.Contains(t, err.Error(), `duplicate task key "a"`)
}

func TestValidateLessonFields(t *testing.T) {
	tr := true
	tests := []struct {
		name    string
		lesson  Lesson
		wantErr bool
	}{
		{"minimal", Lesson{ID: "x", Slug: "x", Title: "X"}, false},
		{"missing title", Lesson{ID: "x", Slug: "x"}, true},
		{"task without key", Lesson{ID: "x", Slug: "x", Title: "X", Tasks: []Task{{}}}, true},
		{"bad resource url", Lesson{ID: "x", Slug: "x", Title: "X", Resources: []Resource{{Title: "r", URL: "not a url"}}}, true},
		{"true/false without answer", Lesson{ID: "x", Slug: "x", Title: "X", Quiz: &Quiz{Questions: []Question{{Text: "q", Type: QuestionTrueFalse}}}}, true},
		{"true/false with answer", Lesson{ID: "x", Slug: "x", Title: "X", Quiz: &Quiz{Questions: []Question{{Text: "q", Type: QuestionTrueFalse, CorrectAnswer: &tr}}}}, false},
		{"single option", Lesson{ID: "x", Slug: "x", Title: "X", Quiz: &Quiz{Questions: []Question{{Text: "q", Type: QuestionMultipleChoice, Options: []Option{{Text: "a"}}}}}}, true},
		{"unknown question type", Lesson{ID: "x", Slug: "x", Title: "X", Quiz: &Quiz{Questions: []Question{{Text: "q", Type: "essay"}}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLesson(&tt.lesson)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePathRejectsDuplicateSlugs(t *testing.T) {
	p := &Path{ID: "p", Slug: "p", Title: "P", Modules: []Module{
		{ID: "m1", Title: "M1", Lessons: []LessonSummary{{ID: "1", Slug: "dup", Title: "A"}}},
		{ID: "m2", Title: "M2", Lessons: []LessonSummary{{ID: "2", Slug: "dup", Title: "B"}}},
	}}
	assert.ErrorIs(t, ValidatePath(p), ErrInvalidDocument)
}

func TestBlocksEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", " [] ", "{}", `""`} {
		assert.True(t, Blocks(raw).Empty(), "%q should be empty", raw)
	}
	assert.False(t, Blocks(`"text"`).Empty())
	assert.False(t, Blocks(`[{"_type":"block"}]`).Empty())
}

type stubProvider struct {
	path    *Path
	lesson  *Lesson
	pathErr error
}

func (s stubProvider) FetchPath(context.Context, string) (*Path, error) { return s.path, s.pathErr }
func (s stubProvider) FetchLesson(context.Context, string) (*Lesson, error) {
	return s.lesson, nil
}

func TestLoadLesson(t *testing.T) {
	want := stubProvider{path: &Path{Slug: "p"}, lesson: &Lesson{Slug: "l"}}
	p, l, err := LoadLesson(context.Background(), want, "p", "l")
	require.NoError(t, err)
	assert.Same(t, want.path, p)
	assert.Same(t, want.lesson, l)

	failing := stubProvider{lesson: &Lesson{Slug: "l"}, pathErr: errors.New("boom")}
	p, l, err = LoadLesson(context.Background(), failing, "p", "l")
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Nil(t, l)
}
