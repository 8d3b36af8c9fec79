package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moneypath/internal/ui/theme"
)

// Choices is a cursor over the options of one quiz question.
type Choices struct {
	Options []string
	Cursor  int
}

// NewChoices creates a choice list.
func NewChoices(options []string) Choices {
	return Choices{Options: options}
}

// Update moves the cursor.
func (c Choices) Update(msg tea.Msg) Choices {
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
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c
}

// ChoiceState describes how one option renders.
type ChoiceState struct {
	// Chosen is the option the learner picked, -1 for none.
	Chosen int
	// Revealed marks correct and incorrect options after submission.
	Revealed bool
	// Correct reports whether option i is right. Used only when Revealed.
	Correct func(i int) bool
	// Focused draws the cursor.
	Focused bool
}

// View renders the options.
func (c Choices) View(st ChoiceState) string {
	labels := "ABCDEFGH"

	var b strings.Builder
	for i, opt := range c.Options {
		mark := "( )"
		if i == st.Chosen {
			mark = "(•)"
		}
		prefix := "  "
		if st.Focused && i == c.Cursor && !st.Revealed {
			prefix = "▸ "
		}
		letter := "?"
		if i < len(labels) {
			letter = labels[i : i+1]
		}
		line := fmt.Sprintf("%s%s %s) %s", prefix, mark, letter, opt)

		var style lipgloss.Style
		switch {
		case st.Revealed && st.Correct != nil && st.Correct(i):
			style = theme.Correct
		case st.Revealed && i == st.Chosen:
			style = theme.Incorrect
		case st.Revealed:
			style = theme.Locked
		case st.Focused && i == c.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
