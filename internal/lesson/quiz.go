package lesson

import (
	"errors"
	"fmt"

	"github.com/abhisek/moneypath/internal/content"
)

// ErrQuizUnanswered is returned by Submit while a question has no answer.
var ErrQuizUnanswered = errors.New("quiz has unanswered questions")

// ErrQuizSubmitted is returned when answers change after submission.
var ErrQuizSubmitted = errors.New("quiz already submitted")

// QuizResult is a scored quiz.
type QuizResult struct {
	Correct     int    `json:"correct"`
	Total       int    `json:"total"`
	PerQuestion []bool `json:"perQuestion"`
}

// Answer is a learner's choice for one question. Option is the chosen
// option index for multiple choice; Bool is set for true/false.
type Answer struct {
	Option int   `json:"option"`
	Bool   *bool `json:"bool,omitempty"`
}

func noAnswer() Answer { return Answer{Option: -1} }

// Answered reports whether a choice was made.
func (a Answer) Answered() bool { return a.Option >= 0 || a.Bool != nil }

// QuizState collects answers locally until Submit scores them.
type QuizState struct {
	quiz    *content.Quiz
	answers []Answer
	result  *QuizResult
}

// NewQuizState returns answer state for q, or nil when q is nil.
func NewQuizState(q *content.Quiz) *QuizState {
	if q == nil {
		return nil
	}
	s := &QuizState{quiz: q, answers: make([]Answer, len(q.Questions))}
	s.Reset()
	return s
}

// Questions returns the quiz questions.
func (s *QuizState) Questions() []content.Question { return s.quiz.Questions }

// Answer returns the current answer for question qi.
func (s *QuizState) Answer(qi int) Answer {
	if qi < 0 || qi >= len(s.answers) {
		return noAnswer()
	}
	return s.answers[qi]
}

// Select chooses option oi for multiple-choice question qi.
func (s *QuizState) Select(qi, oi int) error {
	q, err := s.question(qi)
	if err != nil {
		return err
	}
	if q.Type != content.QuestionMultipleChoice {
		return fmt.Errorf("question %d is not multiple choice", qi)
	}
	if oi < 0 || oi >= len(q.Options) {
		return fmt.Errorf("question %d has no option %d", qi, oi)
	}
	s.answers[qi] = Answer{Option: oi}
	return nil
}

// SelectBool answers true/false question qi.
func (s *QuizState) SelectBool(qi int, v bool) error {
	q, err := s.question(qi)
	if err != nil {
		return err
	}
	if q.Type != content.QuestionTrueFalse {
		return fmt.Errorf("question %d is not true/false", qi)
	}
	s.answers[qi] = Answer{Option: -1, Bool: &v}
	return nil
}

// Set applies a previously collected answer, as sent by an API client.
func (s *QuizState) Set(qi int, a Answer) error {
	if a.Bool != nil {
		return s.SelectBool(qi, *a.Bool)
	}
	return s.Select(qi, a.Option)
}

func (s *QuizState) question(qi int) (*content.Question, error) {
	if s.result != nil {
		return nil, ErrQuizSubmitted
	}
	if qi < 0 || qi >= len(s.quiz.Questions) {
		return nil, fmt.Errorf("quiz has no question %d", qi)
	}
	return &s.quiz.Questions[qi], nil
}

// Complete reports whether every question has an answer.
func (s *QuizState) Complete() bool {
	for _, a := range s.answers {
		if !a.Answered() {
			return false
		}
	}
	return true
}

// Submit scores the answers. Answers are locked until Reset.
func (s *QuizState) Submit() (QuizResult, error) {
	if s.result != nil {
		return *s.result, nil
	}
	if !s.Complete() {
		return QuizResult{}, ErrQuizUnanswered
	}
	res := QuizResult{Total: len(s.quiz.Questions), PerQuestion: make([]bool, len(s.quiz.Questions))}
	for i, q := range s.quiz.Questions {
		if isCorrect(q, s.answers[i]) {
			res.PerQuestion[i] = true
			res.Correct++
		}
	}
	s.result = &res
	return res, nil
}

// Result returns the submitted result, or nil before Submit.
func (s *QuizState) Result() *QuizResult { return s.result }

// Reset clears answers and any result.
func (s *QuizState) Reset() {
	for i := range s.answers {
		s.answers[i] = noAnswer()
	}
	s.result = nil
}

func isCorrect(q content.Question, a Answer) bool {
	switch q.Type {
	case content.QuestionTrueFalse:
		return a.Bool != nil && q.CorrectAnswer != nil && *a.Bool == *q.CorrectAnswer
	default:
		return a.Option >= 0 && a.Option < len(q.Options) && q.Options[a.Option].Correct
	}
}
