// Package lesson holds the lesson viewer core: which pages a lesson has,
// which one is showing, whether the lesson may be marked complete, and
// which lessons sit before and after it in the path.
package lesson

import (
	"fmt"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
)

// Page is one horizontally paged section of a lesson. Pages always
// appear in declaration order.
type Page int

const (
	PageIntro Page = iota
	PageContent
	PageTakeaways
	PageActions
	PageQuiz
)

var pageNames = [...]string{"intro", "content", "takeaways", "actions", "quiz"}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// LabelKey is the i18n key for the page's title.
func (p Page) LabelKey() i18n.Key {
	switch p {
	case PageContent:
		return i18n.PageContent
	case PageTakeaways:
		return i18n.PageTakeaways
	case PageActions:
		return i18n.PageActions
	case PageQuiz:
		return i18n.PageQuiz
	default:
		return i18n.PageIntro
	}
}

func (p Page) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Page) UnmarshalText(b []byte) error {
	parsed, err := ParsePage(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePage returns the page named s.
func ParsePage(s string) (Page, error) {
	for i, name := range pageNames {
		if name == s {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lesson page %q", s)
}

// pageRules decides which pages a lesson shows. Order here is display
// order.
var pageRules = []struct {
	page Page
	show func(l *content.Lesson) bool
}{
	{PageIntro, func(*content.Lesson) bool { return true }},
	{PageContent, func(l *content.Lesson) bool {
		return !l.Body.Empty() || l.Type == content.TypeVideo || l.Type == content.TypeExercise
	}},
	{PageTakeaways, func(l *content.Lesson) bool { return !l.KeyTakeaways.Empty() }},
	{PageActions, func(l *content.Lesson) bool {
		return len(l.Tasks) > 0 || len(l.Deliverables) > 0 || len(l.Resources) > 0
	}},
	{PageQuiz, func(l *content.Lesson) bool { return l.Type == content.TypeQuiz || l.Quiz != nil }},
}

// DerivePages returns the pages available for l, in display order.
// Intro is always present.
func DerivePages(l *content.Lesson) []Page {
	if l == nil {
		return []Page{PageIntro}
	}
	pages := make([]Page, 0, len(pageRules))
	for _, r := range pageRules {
		if r.show(l) {
			pages = append(pages, r.page)
		}
	}
	return pages
}
