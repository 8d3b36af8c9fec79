package components

import (
	"strings"

	"github.com/abhisek/moneypath/internal/ui/theme"
)

// PageDots renders one dot per page with the current one filled, and the
// current page's label after them.
func PageDots(count, current int, label string) string {
	dots := make([]string, count)
	for i := range dots {
		if i == current {
			dots[i] = theme.Selected.Render("●")
		} else {
			dots[i] = theme.Locked.Render("○")
		}
	}
	s := strings.Join(dots, " ")
	if label != "" {
		s += "  " + theme.Hint.Render(label)
	}
	return s
}
