package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/ui/theme"
)

// ChecklistItem is one row of a Checklist.
type ChecklistItem struct {
	Key      string
	Label    string
	Optional bool
}

// Checklist is a cursor over task rows. It does not own the checked
// state; callers pass it in when rendering.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with the cursor on the first row.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update moves the cursor.
func (c Checklist) Update(msg tea.Msg) Checklist {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}
	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	}
	return c
}

// Focused returns the key under the cursor, or "" for an empty list.
func (c Checklist) Focused() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return ""
	}
	return c.Items[c.Cursor].Key
}

// View renders the rows, wrapping labels at width.
func (c Checklist) View(checked func(key string) bool, width int) string {
	var b strings.Builder
	for i, item := range c.Items {
		box := "[ ]"
		if checked(item.Key) {
			box = "[✓]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		label := item.Label
		if item.Optional {
			label += " " + theme.Hint.Render("(optional)")
		}

		style := theme.Unselected
		if i == c.Cursor {
			style = theme.Selected
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			style.Render(prefix+box+" "),
			lipgloss.NewStyle().Width(max(width-6, 10)).Foreground(theme.Text).Render(label),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}
