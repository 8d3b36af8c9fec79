package lesson

import (
	"errors"
	"slices"
	"testing"

	"github.com/abhisek/moneypath/internal/content"
)

func sampleQuiz() *content.Quiz {
	yes := true
	return &content.Quiz{
		Title: "Credit check",
		Questions: []content.Question{
			{
				Text: "Which raises your score?",
				Type: content.QuestionMultipleChoice,
				Options: []content.Option{
					{Text: "Missing payments"},
					{Text: "Paying on time", Correct: true},
				},
			},
			{Text: "A credit report is free once a year.", Type: content.QuestionTrueFalse, CorrectAnswer: &yes},
		},
	}
}

func TestQuizNil(t *testing.T) {
	if NewQuizState(nil) != nil {
		t.Error("expected nil state for a lesson without quiz")
	}
}

func TestQuizSubmitRequiresAnswers(t *testing.T) {
	q := NewQuizState(sampleQuiz())
	if err := q.Select(0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := q.Submit(); !errors.Is(err, ErrQuizUnanswered) {
		t.Fatalf("err = %v, want ErrQuizUnanswered", err)
	}
}

func TestQuizScoring(t *testing.T) {
	tests := []struct {
		name    string
		option  int
		answer  bool
		correct int
		per     []bool
	}{
		{"all right", 1, true, 2, []bool{true, true}},
		{"all wrong", 0, false, 0, []bool{false, false}},
		{"mixed", 1, false, 1, []bool{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuizState(sampleQuiz())
			if err := q.Select(0, tt.option); err != nil {
				t.Fatal(err)
			}
			if err := q.SelectBool(1, tt.answer); err != nil {
				t.Fatal(err)
			}
			res, err := q.Submit()
			if err != nil {
				t.Fatal(err)
			}
			if res.Correct != tt.correct || res.Total != 2 || !slices.Equal(res.PerQuestion, tt.per) {
				t.Errorf("result = %+v", res)
			}
		})
	}
}

func TestQuizSelectionErrors(t *testing.T) {
	q := NewQuizState(sampleQuiz())
	if err := q.Select(0, 5); err == nil {
		t.Error("expected error for unknown option")
	}
	if err := q.Select(1, 0); err == nil {
		t.Error("expected error selecting an option on a true/false question")
	}
	if err := q.SelectBool(0, true); err == nil {
		t.Error("expected error answering multiple choice with a bool")
	}
	if err := q.Select(7, 0); err == nil {
		t.Error("expected error for unknown question")
	}
}

func TestQuizLockedAfterSubmitUntilReset(t *testing.T) {
	q := NewQuizState(sampleQuiz())
	_ = q.Select(0, 1)
	_ = q.SelectBool(1, true)
	if _, err := q.Submit(); err != nil {
		t.Fatal(err)
	}

	if err := q.Select(0, 0); !errors.Is(err, ErrQuizSubmitted) {
		t.Errorf("err = %v, want ErrQuizSubmitted", err)
	}

	q.Reset()
	if q.Result() != nil || q.Complete() || q.Answer(0).Answered() {
		t.Error("reset did not clear state")
	}
}
