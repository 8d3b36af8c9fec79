package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDocument is returned (wrapped) when a fetched document fails
// validation. Callers treat it like a broken upstream, not a not-found.
var ErrInvalidDocument = errors.New("invalid content document")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidatePath checks a path document.
func ValidatePath(p *Path) error {
	if err := structErrors(p); err != nil {
		return fmt.Errorf("%w: path %q: %s", ErrInvalidDocument, p.Slug, err)
	}
	seen := make(map[string]bool)
	for _, l := range p.Lessons() {
		if seen[l.Slug] {
			return fmt.Errorf("%w: path %q: duplicate lesson slug %q", ErrInvalidDocument, p.Slug, l.Slug)
		}
		seen[l.Slug] = true
	}
	return nil
}

// ValidateLesson checks a lesson document. Task keys must be unique across
// tasks and deliverables, since completion is tracked in one key set.
func ValidateLesson(l *Lesson) error {
	if err := structErrors(l); err != nil {
		return fmt.Errorf("%w: lesson %q: %s", ErrInvalidDocument, l.Slug, err)
	}

	seen := make(map[string]bool)
	for _, t := range AllTasks(l) {
		if seen[t.Key] {
			return fmt.Errorf("%w: lesson %q: duplicate task key %q", ErrInvalidDocument, l.Slug, t.Key)
		}
		seen[t.Key] = true
	}

	if l.Quiz != nil {
		for i, q := range l.Quiz.Questions {
			switch q.Type {
			case QuestionMultipleChoice:
				if len(q.Options) < 2 {
					return fmt.Errorf("%w: lesson %q: question %d needs at least two options", ErrInvalidDocument, l.Slug, i+1)
				}
			case QuestionTrueFalse:
				if q.CorrectAnswer == nil {
					return fmt.Errorf("%w: lesson %q: question %d has no correct answer", ErrInvalidDocument, l.Slug, i+1)
				}
			}
		}
	}
	return nil
}

// AllTasks returns deliverables followed by tasks.
func AllTasks(l *Lesson) []Task {
	out := make([]Task, 0, len(l.Tasks)+len(l.Deliverables))
	out = append(out, l.Deliverables...)
	return append(out, l.Tasks...)
}

func structErrors(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
