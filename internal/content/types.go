package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Lesson types known to the viewer. Unknown types are carried through.
const (
	TypeVideo    = "video"
	TypeExercise = "exercise"
	TypeQuiz     = "quiz"
	TypeReading  = "reading"
)

// Question types.
const (
	QuestionMultipleChoice = "multipleChoice"
	QuestionTrueFalse      = "trueFalse"
)

// Path is a learning path: the top-level enrollment unit.
type Path struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Slug        string   `json:"slug" yaml:"slug" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Modules     []Module `json:"modules" yaml:"modules" validate:"dive"`
}

// Module is an ordered group of lessons within a path. Order, not the
// position in Modules, defines the sequence.
type Module struct {
	ID      string          `json:"id" yaml:"id" validate:"required"`
	Slug    string          `json:"slug,omitempty" yaml:"slug"`
	Title   string          `json:"title" yaml:"title" validate:"required"`
	Order   int             `json:"order" yaml:"order"`
	Lessons []LessonSummary `json:"lessons" yaml:"lessons" validate:"dive"`
}

// LessonSummary is the lesson entry inside a path tree.
type LessonSummary struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Slug     string `json:"slug" yaml:"slug" validate:"required"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Order    int    `json:"order" yaml:"order"`
	Duration int    `json:"duration,omitempty" yaml:"duration"`
	Type     string `json:"type,omitempty" yaml:"type"`
	Premium  bool   `json:"premium,omitempty" yaml:"premium"`
}

// ModuleRef points from a lesson to its parent module.
type ModuleRef struct {
	ID    string `json:"id" yaml:"id"`
	Slug  string `json:"slug,omitempty" yaml:"slug"`
	Title string `json:"title,omitempty" yaml:"title"`
}

// Lesson is the atomic content unit.
type Lesson struct {
	ID           string     `json:"id" yaml:"id" validate:"required"`
	Slug         string     `json:"slug" yaml:"slug" validate:"required"`
	Title        string     `json:"title" yaml:"title" validate:"required"`
	Duration     int        `json:"duration,omitempty" yaml:"duration"`
	Type         string     `json:"type,omitempty" yaml:"type"`
	VideoURL     string     `json:"videoUrl,omitempty" yaml:"videoUrl" validate:"omitempty,url"`
	Body         Blocks     `json:"body,omitempty" yaml:"body"`
	KeyTakeaways Blocks     `json:"keyTakeaways,omitempty" yaml:"keyTakeaways"`
	Tasks        []Task     `json:"tasks,omitempty" yaml:"tasks" validate:"dive"`
	Deliverables []Task     `json:"deliverables,omitempty" yaml:"deliverables" validate:"dive"`
	Resources    []Resource `json:"resources,omitempty" yaml:"resources" validate:"dive"`
	Quiz         *Quiz      `json:"quiz,omitempty" yaml:"quiz"`
	Module       ModuleRef  `json:"module" yaml:"module"`
	Premium      bool       `json:"premium,omitempty" yaml:"premium"`
}

// Task is a checklist item. Tasks and deliverables share this shape;
// progress tracks them by Key, never by position.
type Task struct {
	Key         string `json:"key" yaml:"key" validate:"required"`
	Description Blocks `json:"description,omitempty" yaml:"description"`
	Optional    bool   `json:"optional,omitempty" yaml:"optional"`
}

// Resource is an external link attached to a lesson.
type Resource struct {
	Title string `json:"title" yaml:"title" validate:"required"`
	URL   string `json:"url" yaml:"url" validate:"required,url"`
	Kind  string `json:"kind,omitempty" yaml:"kind"`
}

// Quiz is an optional question set attached to a lesson.
type Quiz struct {
	Title     string     `json:"title,omitempty" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions" validate:"dive"`
}

// Question is one quiz item. Multiple-choice questions mark correct
// options; true/false questions carry CorrectAnswer.
type Question struct {
	Text          string   `json:"text" yaml:"text" validate:"required"`
	Type          string   `json:"type" yaml:"type" validate:"oneof=multipleChoice trueFalse"`
	Options       []Option `json:"options,omitempty" yaml:"options" validate:"dive"`
	CorrectAnswer *bool    `json:"correctAnswer,omitempty" yaml:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation"`
}

// Option is a multiple-choice answer.
type Option struct {
	Text    string `json:"text" yaml:"text" validate:"required"`
	Correct bool   `json:"correct,omitempty" yaml:"correct"`
}

// Blocks is a rich-text render tree kept as raw JSON. The lesson core
// only asks whether it is empty; rendering is left to the surfaces.
type Blocks json.RawMessage

// Empty reports whether b holds no renderable content.
func (b Blocks) Empty() bool {
	t := bytes.TrimSpace(b)
	switch string(t) {
	case "", "null", "[]", "{}", `""`:
		return true
	}
	return false
}

func (b Blocks) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}
	return b, nil
}

func (b *Blocks) UnmarshalJSON(data []byte) error {
	*b = append((*b)[:0], data...)
	return nil
}

// UnmarshalYAML accepts any YAML value (usually a list of blocks or a
// plain string) and stores its JSON encoding.
func (b *Blocks) UnmarshalYAML(n *yaml.Node) error {
	var v any
	if err := n.Decode(&v); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	*b = data
	return nil
}
