package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/ui/theme"
)

// ContentWidth returns the inner width used for centered cards.
func ContentWidth(frameWidth int) int {
	return max(min(frameWidth-6, 64), 20)
}

// Card wraps content in a rounded-border card at content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// Centered places s in the middle of a width x height area.
func Centered(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
