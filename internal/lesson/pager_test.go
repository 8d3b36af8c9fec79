package lesson

import (
	"errors"
	"testing"

	"github.com/abhisek/moneypath/internal/content"
)

func TestPagerStartsAtIntro(t *testing.T) {
	sc := &fakeScroller{}
	p := NewPager(fullLesson("l1"), sc)

	if p.Current() != PageIntro || p.Index() != 0 {
		t.Fatalf("current = %v at %d, want intro at 0", p.Current(), p.Index())
	}
	if !sc.last().top {
		t.Error("expected scroll to top on load")
	}
}

func TestPagerBoundedNavigation(t *testing.T) {
	p := NewPager(fullLesson("l1"), nil)

	if p.Previous() {
		t.Error("Previous at first page should be a no-op")
	}
	if p.Current() != PageIntro {
		t.Fatalf("current = %v, want intro", p.Current())
	}

	var steps int
	for p.Next() {
		steps++
	}
	if steps != 4 || p.Current() != PageQuiz || !p.AtLast() {
		t.Fatalf("after %d steps current = %v", steps, p.Current())
	}
	if p.Next() {
		t.Error("Next at last page should be a no-op")
	}
	if p.Current() != PageQuiz {
		t.Errorf("current = %v, want quiz", p.Current())
	}

	for p.Previous() {
	}
	if !p.AtFirst() {
		t.Errorf("expected to be back at first page, at %d", p.Index())
	}
}

func TestPagerGoToUnavailable(t *testing.T) {
	sc := &fakeScroller{}
	p := NewPager(&content.Lesson{ID: "l1", Body: body()}, sc)
	if err := p.GoTo(PageContent); err != nil {
		t.Fatalf("GoTo(content): %v", err)
	}
	calls := len(sc.calls)

	err := p.GoTo(PageQuiz)
	var unavailable *ErrPageUnavailable
	if !errors.As(err, &unavailable) || unavailable.Page != PageQuiz {
		t.Fatalf("GoTo(quiz) err = %v, want ErrPageUnavailable", err)
	}
	if p.Current() != PageContent {
		t.Errorf("current = %v, want content", p.Current())
	}
	if len(sc.calls) != calls {
		t.Error("rejected navigation should not scroll")
	}
}

func TestPagerGoToCurrentStillScrolls(t *testing.T) {
	sc := &fakeScroller{}
	p := NewPager(fullLesson("l1"), sc)
	p.SetAnimate(false)

	if err := p.GoTo(PageIntro); err != nil {
		t.Fatal(err)
	}
	if got := sc.last(); got.top || got.index != 0 || got.animate {
		t.Errorf("last scroll = %+v, want index 0 without animation", got)
	}
}

func TestPagerSwipeThreshold(t *testing.T) {
	tests := []struct {
		deltaX float64
		want   Page
		moved  bool
	}{
		{0, PageContent, false},
		{50, PageContent, false},
		{-50, PageContent, false},
		{49.9, PageContent, false},
		{-51, PageTakeaways, true},
		{51, PageIntro, true},
		{-400, PageTakeaways, true},
	}

	for _, tt := range tests {
		p := NewPager(fullLesson("l1"), nil)
		_ = p.GoTo(PageContent)

		moved := p.Swipe(tt.deltaX)
		if moved != tt.moved || p.Current() != tt.want {
			t.Errorf("Swipe(%v) moved=%v current=%v, want moved=%v current=%v",
				tt.deltaX, moved, p.Current(), tt.moved, tt.want)
		}
	}
}

func TestPagerLoadResets(t *testing.T) {
	sc := &fakeScroller{}
	p := NewPager(fullLesson("x"), sc)
	if err := p.GoTo(PageActions); err != nil {
		t.Fatal(err)
	}

	p.Load(fullLesson("y"))
	if p.Current() != PageIntro {
		t.Errorf("current = %v after load, want intro", p.Current())
	}
	if !sc.last().top {
		t.Error("expected scroll to top after load")
	}
}

func TestPagerGoToIndex(t *testing.T) {
	p := NewPager(fullLesson("l1"), nil)
	if err := p.GoToIndex(3); err != nil || p.Current() != PageActions {
		t.Fatalf("GoToIndex(3) = %v, current %v", err, p.Current())
	}
	if err := p.GoToIndex(5); err == nil {
		t.Error("expected out of range error")
	}
	if p.Current() != PageActions {
		t.Errorf("current = %v, want actions", p.Current())
	}
}
