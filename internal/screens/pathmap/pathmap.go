// Package pathmap lists a learning path's modules and lessons with the
// learner's completion marks.
package pathmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/i18n"
	"github.com/abhisek/moneypath/internal/router"
	"github.com/abhisek/moneypath/internal/screen"
	lessonscreen "github.com/abhisek/moneypath/internal/screens/lesson"
	"github.com/abhisek/moneypath/internal/ui/components"
	"github.com/abhisek/moneypath/internal/ui/layout"
	"github.com/abhisek/moneypath/internal/ui/theme"
)

type rowKind int

const (
	rowModuleHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	module int
	title  string
	lesson *content.LessonSummary
}

// pathLoadedMsg carries the path and the learner's progress on it.
type pathLoadedMsg struct {
	Path    *content.Path
	Done    map[string]bool
	Premium bool
	Err     error
}

// PathMapScreen displays a path organized by module.
type PathMapScreen struct {
	env          *screen.Env
	slug         string
	path         *content.Path
	rows         []row
	cursor       int
	scrollOffset int
	done         map[string]bool
	premium      bool
	loaded       bool
	err          error

	// stale is set after opening a lesson so marks reload on return.
	stale bool
}

var _ screen.Screen = (*PathMapScreen)(nil)
var _ screen.KeyHintProvider = (*PathMapScreen)(nil)

// New creates a PathMapScreen for the path with slug.
func New(env *screen.Env, slug string) *PathMapScreen {
	return &PathMapScreen{env: env, slug: slug, done: map[string]bool{}}
}

func (s *PathMapScreen) Init() tea.Cmd {
	env, slug := s.env, s.slug
	return func() tea.Msg {
		ctx := context.Background()
		path, err := env.Content.FetchPath(ctx, slug)
		if err != nil || path == nil {
			return pathLoadedMsg{Err: err}
		}
		msg := pathLoadedMsg{Path: path.Sorted(), Done: map[string]bool{}}

		if env.Progress != nil {
			recs, err := env.Progress.ListByCourse(ctx, env.UserID(), path.ID)
			if err != nil {
				env.Logger().Warn("list progress failed", "path", slug, "error", err)
			}
			for _, r := range recs {
				if r.Completed {
					msg.Done[r.LessonID] = true
				}
			}
		}

		ent, err := env.Entitlement(ctx)
		if err != nil {
			env.Logger().Warn("entitlement check failed", "user_id", env.UserID(), "error", err)
		}
		msg.Premium = ent.Premium
		return msg
	}
}

func (s *PathMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pathLoadedMsg:
		s.handleLoaded(msg)
		return s, nil

	case tea.KeyPressMsg:
		var reload tea.Cmd
		if s.stale {
			s.stale = false
			reload = s.Init()
		}
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextModule()
		case "enter":
			return s, tea.Batch(reload, s.openLesson())
		}
		return s, reload
	}
	return s, nil
}

func (s *PathMapScreen) handleLoaded(msg pathLoadedMsg) {
	s.loaded = true
	s.err = msg.Err
	if msg.Err != nil {
		s.env.Logger().Error("load path failed", "path", s.slug, "error", msg.Err)
		return
	}
	if msg.Path == nil {
		return
	}

	keep := ""
	if s.cursor < len(s.rows) && s.rows[s.cursor].lesson != nil {
		keep = s.rows[s.cursor].lesson.ID
	}

	s.path = msg.Path
	s.done = msg.Done
	s.premium = msg.Premium
	s.rows = buildRows(msg.Path)
	s.cursor = 0
	for i, r := range s.rows {
		if r.kind != rowLesson {
			continue
		}
		if keep == "" || r.lesson.ID == keep {
			s.cursor = i
			break
		}
	}
	if keep == "" {
		s.cursor = s.firstIncomplete()
	}
}

func buildRows(p *content.Path) []row {
	var rows []row
	for mi, m := range p.Modules {
		if len(m.Lessons) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowModuleHeader, module: mi, title: m.Title})
		for li := range m.Lessons {
			rows = append(rows, row{kind: rowLesson, module: mi, lesson: &p.Modules[mi].Lessons[li]})
		}
	}
	return rows
}

// firstIncomplete returns the row of the first lesson not yet completed,
// or the first lesson when all are done.
func (s *PathMapScreen) firstIncomplete() int {
	first := -1
	for i, r := range s.rows {
		if r.kind != rowLesson {
			continue
		}
		if first < 0 {
			first = i
		}
		if !s.done[r.lesson.ID] {
			return i
		}
	}
	return max(first, 0)
}

func (s *PathMapScreen) Title() string {
	if s.path != nil {
		return s.path.Title
	}
	return s.env.T(i18n.Loading)
}

// KeyHints returns the key binding hints for the footer.
func (s *PathMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.HintNavigate)},
		{Key: "Tab", Description: s.env.T(i18n.HintModule)},
		{Key: "Enter", Description: s.env.T(i18n.HintOpen)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

// moveCursor moves the cursor by delta, skipping module headers.
func (s *PathMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextModule jumps to the first lesson of the next module, wrapping.
func (s *PathMapScreen) nextModule() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].module
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].module != current {
			s.cursor = i
			return
		}
	}
	s.cursor = 0
	s.moveCursor(1)
}

// adjustScroll keeps the cursor and its module header visible.
func (s *PathMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowModuleHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *PathMapScreen) openLesson() tea.Cmd {
	if s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowLesson {
		return nil
	}
	s.stale = true
	next := lessonscreen.New(s.env, s.slug, s.rows[s.cursor].lesson.Slug)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *PathMapScreen) View(width, height int) string {
	switch {
	case !s.loaded:
		return components.Centered(theme.Hint.Render(s.env.T(i18n.Loading)), width, height)
	case s.err != nil:
		return components.Centered(theme.Incorrect.Render(s.env.T(i18n.Unexpected)), width, height)
	case s.path == nil:
		return components.Centered(
			theme.Body.Bold(true).Render(s.env.T(i18n.PathNotFound))+"\n\n"+theme.Hint.Render(s.env.T(i18n.NotFoundHint)),
			width, height)
	}

	cw := min(width-4, layout.ReadingWidth)
	total, done := 0, 0
	for _, r := range s.rows {
		if r.kind == rowLesson {
			total++
			if s.done[r.lesson.ID] {
				done++
			}
		}
	}
	bar := components.NewProgressBar(s.env.T(i18n.CourseSummary, done, total), done, total, cw).View()

	listHeight := max(height-3, 1)
	s.adjustScroll(listHeight)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowModuleHeader:
			lines = append(lines, s.renderModuleHeader(r, cw))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, i == s.cursor, cw))
		}
	}

	block := bar + "\n\n" + strings.Join(lines, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (s *PathMapScreen) renderModuleHeader(r row, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Render(strings.ToUpper(r.title))
}

// renderLessonRow renders a single lesson row.
func (s *PathMapScreen) renderLessonRow(r row, selected bool, width int) string {
	l := r.lesson

	icon := "○"
	style := theme.Unselected
	switch {
	case s.done[l.ID]:
		icon = "✓"
		style = lipgloss.NewStyle().Foreground(theme.Success)
	case l.Premium && !s.premium:
		icon = "🔒"
		style = theme.Locked
	}
	if selected {
		style = theme.Selected
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	meta := ""
	if l.Duration > 0 {
		meta = s.env.T(i18n.Minutes, l.Duration)
	}
	nameWidth := max(width-lipgloss.Width(cursor)-4-len(meta), 10)
	name := l.Title
	if lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	return fmt.Sprintf("%s%s %s %s",
		cursor,
		style.Render(icon),
		style.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		theme.Hint.Render(meta),
	)
}
