package lesson

import (
	"fmt"
	"math"
	"slices"

	"github.com/abhisek/moneypath/internal/content"
)

// SwipeThreshold is the minimum horizontal travel, in pixels, for a
// swipe to change page.
const SwipeThreshold = 50

// Scroller keeps the visible viewport in step with the current page.
type Scroller interface {
	ScrollToIndex(index int, animate bool)
	ScrollToTop()
}

// ErrPageUnavailable is returned when navigating to a page the lesson
// does not have.
type ErrPageUnavailable struct {
	Page Page
}

func (e *ErrPageUnavailable) Error() string {
	return fmt.Sprintf("lesson has no %s page", e.Page)
}

// Pager tracks the current page among a lesson's available pages.
// Buttons, dots and swipes all move through the same methods.
type Pager struct {
	pages    []Page
	current  Page
	scroller Scroller
	animate  bool
}

// NewPager returns a Pager positioned on the intro page of l. scroller
// may be nil.
func NewPager(l *content.Lesson, scroller Scroller) *Pager {
	p := &Pager{scroller: scroller, animate: true}
	p.Load(l)
	return p
}

// SetAnimate controls whether page changes scroll with animation.
func (p *Pager) SetAnimate(animate bool) {
	p.animate = animate
}

// Load switches to a new lesson: pages are re-derived and the pager
// returns to the intro page at the top, whatever page was showing before.
func (p *Pager) Load(l *content.Lesson) {
	p.pages = DerivePages(l)
	p.current = PageIntro
	if p.scroller != nil {
		p.scroller.ScrollToTop()
	}
}

// GoTo shows page. It fails with *ErrPageUnavailable, leaving the state
// unchanged, when the lesson lacks page. Going to the current page
// still scrolls to it.
func (p *Pager) GoTo(page Page) error {
	idx := slices.Index(p.pages, page)
	if idx < 0 {
		return &ErrPageUnavailable{Page: page}
	}
	p.current = page
	if p.scroller != nil {
		p.scroller.ScrollToIndex(idx, p.animate)
	}
	return nil
}

// GoToIndex shows the page at position i of Pages.
func (p *Pager) GoToIndex(i int) error {
	if i < 0 || i >= len(p.pages) {
		return fmt.Errorf("page index %d out of range [0,%d)", i, len(p.pages))
	}
	return p.GoTo(p.pages[i])
}

// Next advances one page. It reports false at the last page.
func (p *Pager) Next() bool {
	idx := p.Index()
	if idx >= len(p.pages)-1 {
		return false
	}
	_ = p.GoTo(p.pages[idx+1])
	return true
}

// Previous goes back one page. It reports false at the first page.
func (p *Pager) Previous() bool {
	idx := p.Index()
	if idx <= 0 {
		return false
	}
	_ = p.GoTo(p.pages[idx-1])
	return true
}

// Swipe handles a horizontal gesture of deltaX pixels. Leftward travel
// (negative) advances, rightward goes back. Gestures of SwipeThreshold
// or less are ignored.
func (p *Pager) Swipe(deltaX float64) bool {
	if math.Abs(deltaX) <= SwipeThreshold {
		return false
	}
	if deltaX < 0 {
		return p.Next()
	}
	return p.Previous()
}

// Current returns the page showing.
func (p *Pager) Current() Page { return p.current }

// Index returns the position of the current page in Pages.
func (p *Pager) Index() int { return slices.Index(p.pages, p.current) }

// Pages returns the available pages in display order.
func (p *Pager) Pages() []Page { return slices.Clone(p.pages) }

// Has reports whether the lesson has page.
func (p *Pager) Has(page Page) bool { return slices.Contains(p.pages, page) }

func (p *Pager) AtFirst() bool { return p.Index() == 0 }

func (p *Pager) AtLast() bool { return p.Index() == len(p.pages)-1 }
