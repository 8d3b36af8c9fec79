package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for free-text prompts.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates a focused text input. charLimit of 0 means no
// limit.
func NewTextInput(placeholder string, charLimit, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	if width > 0 {
		ti.SetWidth(width)
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the input with surrounding space removed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// Focused reports whether the input accepts keys.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Blur stops the input from accepting keys.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focus lets the input accept keys again.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}
