package lesson

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	slideInterval = 30 * time.Millisecond
	slideFrames   = 6
)

// slider scrolls the page viewport for the pager. Page changes slide the
// new page in horizontally unless animation is off.
type slider struct {
	vp     viewport.Model
	index  int
	offset int
	step   int
	width  int
}

func newSlider() *slider {
	return &slider{vp: viewport.New()}
}

// ScrollToIndex shows page index, sliding in from the side it lies on.
func (s *slider) ScrollToIndex(index int, animate bool) {
	s.vp.GotoTop()
	if animate && index != s.index && s.width > 0 {
		dist := max(min(s.width/3, 24), slideFrames)
		s.step = max(dist/slideFrames, 1)
		if index > s.index {
			s.offset = dist
		} else {
			s.offset = -dist
		}
	} else {
		s.offset = 0
	}
	s.index = index
}

// ScrollToTop resets to the first page without animation.
func (s *slider) ScrollToTop() {
	s.vp.GotoTop()
	s.index = 0
	s.offset = 0
}

func (s *slider) animating() bool { return s.offset != 0 }

// advance moves the animation one frame closer to rest.
func (s *slider) advance() {
	switch {
	case s.offset > 0:
		s.offset = max(s.offset-s.step, 0)
	case s.offset < 0:
		s.offset = min(s.offset+s.step, 0)
	}
}

func (s *slider) resize(width, height int) {
	s.width = width
	s.vp.SetWidth(width)
	s.vp.SetHeight(max(height, 1))
}

// view renders body through the viewport, shifted by the current offset.
func (s *slider) view(body string) string {
	s.vp.SetContent(body)
	out := s.vp.View()
	if s.offset == 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if s.offset > 0 {
			lines[i] = strings.Repeat(" ", s.offset) + ansi.Truncate(line, s.width-s.offset, "")
		} else {
			lines[i] = ansi.Cut(line, -s.offset, s.width)
		}
	}
	return strings.Join(lines, "\n")
}

func slideTick() tea.Cmd {
	return tea.Tick(slideInterval, func(t time.Time) tea.Msg {
		return slideTickMsg(t)
	})
}
