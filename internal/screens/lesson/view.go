package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	lsn "github.com/abhisek/moneypath/internal/lesson"
	"github.com/abhisek/moneypath/internal/ui/components"
	"github.com/abhisek/moneypath/internal/ui/layout"
	"github.com/abhisek/moneypath/internal/ui/richtext"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *LessonScreen) View(width, height int) string {
	switch {
	case s.loading:
		return s.renderLoading(width, height)
	case s.loadErr != nil:
		return renderMessage(width, height, s.env.T(i18n.LoadFailed), "")
	case s.notFound != "":
		return renderMessage(width, height, s.env.T(s.notFound), s.env.T(i18n.NotFoundHint))
	}
	return s.renderLesson(width, height)
}

func (s *LessonScreen) renderLoading(width, height int) string {
	text := s.env.T(i18n.Loading)
	if !s.env.ReducedMotion() {
		text = spinnerFrames[s.spinner%len(spinnerFrames)] + " " + text
	}
	return components.Centered(theme.Hint.Render(text), width, height)
}

func renderMessage(width, height int, msg, hint string) string {
	body := theme.Body.Bold(true).Render(msg)
	if hint != "" {
		body += "\n\n" + theme.Hint.Render(hint)
	}
	return components.Centered(body, width, height)
}

func (s *LessonScreen) renderLesson(width, height int) string {
	v := s.viewer
	tw := layout.TextWidth(width)

	var top strings.Builder
	if v.Lesson.Module.Title != "" {
		top.WriteString(theme.Hint.Render(v.Lesson.Module.Title))
		top.WriteString("\n")
	}
	top.WriteString(theme.Title.Align(lipgloss.Left).Render(v.Lesson.Title))
	top.WriteString("\n")
	label := s.env.T(v.Pager.Current().LabelKey())
	top.WriteString(components.PageDots(len(v.Pager.Pages()), v.Pager.Index(), label))
	top.WriteString("\n")
	top.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", tw)))

	bottom := s.renderStatus(tw)

	header := top.String()
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(bottom) - 2
	s.slide.resize(tw, bodyHeight)
	body := s.slide.view(s.renderPage(tw))

	block := header + "\n" + body + "\n" + bottom
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (s *LessonScreen) renderPage(width int) string {
	v := s.viewer
	l := v.Lesson
	switch v.Pager.Current() {
	case lsn.PageContent:
		body := richtext.Render(l.Body.Markdown(), width)
		if l.VideoURL != "" {
			body = theme.Hint.Render(s.env.T(i18n.Video)+": "+l.VideoURL) + "\n\n" + body
		}
		return body
	case lsn.PageTakeaways:
		return richtext.Render(l.KeyTakeaways.Markdown(), width)
	case lsn.PageActions:
		return s.renderActions(width)
	case lsn.PageQuiz:
		return s.renderQuiz(width)
	default:
		return s.renderIntro(width)
	}
}

func (s *LessonScreen) renderIntro(width int) string {
	l := s.viewer.Lesson
	var b strings.Builder

	var facts []string
	if l.Duration > 0 {
		facts = append(facts, s.env.T(i18n.Minutes, l.Duration))
	}
	if l.Type != "" {
		facts = append(facts, l.Type)
	}
	if l.Premium {
		facts = append(facts, s.env.T(i18n.Locked))
	}
	if len(facts) > 0 {
		b.WriteString(theme.Hint.Render(strings.Join(facts, " · ")))
		b.WriteString("\n\n")
	}

	if s.viewer.PremiumRequired {
		b.WriteString(theme.Body.Bold(true).Foreground(theme.Accent).Render(s.env.T(i18n.PremiumRequired)))
		return b.String()
	}

	if g := s.viewer.Gate; g != nil && g.Completed() {
		b.WriteString(theme.Correct.Render("✓ " + s.env.T(i18n.LessonDone)))
		b.WriteString("\n\n")
	}

	if prev := s.viewer.Neighbors.Previous; prev != nil {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("p  %s: %s", s.env.T(i18n.PreviousLesson), prev.Title)))
		b.WriteString("\n")
	}
	if next := s.viewer.Neighbors.Next; next != nil {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   %s: %s", s.env.T(i18n.NextLesson), next.Title)))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *LessonScreen) renderActions(width int) string {
	l := s.viewer.Lesson
	var b strings.Builder

	if g := s.viewer.Gate; g != nil && len(s.tasks.Items) > 0 {
		b.WriteString(s.tasks.View(g.IsChecked, width))
	}

	if len(l.Resources) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Body.Bold(true).Render(s.env.T(i18n.Resources)))
		b.WriteString("\n")
		for _, r := range l.Resources {
			b.WriteString(theme.Body.Render("  • " + r.Title))
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("    " + r.URL))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *LessonScreen) renderQuiz(width int) string {
	quiz := s.viewer.Quiz
	if quiz == nil {
		return theme.Hint.Render(s.env.T(i18n.NoQuiz))
	}

	result := quiz.Result()
	var b strings.Builder
	for qi, q := range quiz.Questions() {
		style := theme.Body.Bold(true).Width(width)
		if qi == s.focusQ && result == nil {
			style = style.Foreground(theme.Primary)
		}
		b.WriteString(style.Render(fmt.Sprintf("%d. %s", qi+1, q.Text)))
		b.WriteString("\n")

		b.WriteString(s.choices[qi].View(components.ChoiceState{
			Chosen:   chosenIndex(q, quiz.Answer(qi)),
			Revealed: result != nil,
			Correct:  func(i int) bool { return optionCorrect(q, i) },
			Focused:  qi == s.focusQ,
		}))

		if result != nil && q.Explanation != "" {
			b.WriteString(theme.Hint.Width(width).Render(q.Explanation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if result != nil {
		b.WriteString(theme.Selected.Render(s.env.T(i18n.QuizScore, result.Correct, result.Total)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.env.T(i18n.QuizRetry)))
	} else {
		b.WriteString(theme.Hint.Render(s.env.T(i18n.QuizSubmit)))
	}
	return b.String()
}

func chosenIndex(q content.Question, a lsn.Answer) int {
	if q.Type == content.QuestionTrueFalse {
		switch {
		case a.Bool == nil:
			return -1
		case *a.Bool:
			return 0
		default:
			return 1
		}
	}
	return a.Option
}

func optionCorrect(q content.Question, i int) bool {
	if q.Type == content.QuestionTrueFalse {
		return q.CorrectAnswer != nil && *q.CorrectAnswer == (i == 0)
	}
	return i >= 0 && i < len(q.Options) && q.Options[i].Correct
}

// renderStatus shows the completion state, any notice and the action the
// last page offers.
func (s *LessonScreen) renderStatus(width int) string {
	v := s.viewer
	var lines []string

	if g := v.Gate; g != nil {
		if g.Completed() {
			lines = append(lines, theme.Correct.Render("✓ "+s.env.T(i18n.LessonDone))+
				theme.Hint.Render("   c  "+s.env.T(i18n.MarkIncomplete)))
		} else {
			required := len(g.RequiredKeys())
			status := ""
			if required > 0 {
				status = s.env.T(i18n.TasksProgress, required-len(g.Missing()), required) + "   "
			}
			lines = append(lines, theme.Hint.Render(status+"c  "+s.env.T(i18n.MarkComplete)))
		}
	}

	switch v.FinalAction() {
	case lsn.FinalNextLesson:
		lines = append(lines, components.NewButton(s.env.T(i18n.NextLesson)+" (n): "+v.Neighbors.Next.Title, true, nil).View())
	case lsn.FinalCompleteCourse:
		lines = append(lines, components.NewButton(s.env.T(i18n.CompleteCourse)+" (n)", true, nil).View())
	}

	if s.notice != "" {
		style := theme.Correct
		if s.noticeBad {
			style = theme.Incorrect
		}
		lines = append(lines, style.Width(width).Render(s.notice))
	}
	return strings.Join(lines, "\n")
}
