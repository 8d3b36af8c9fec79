// Package richtext renders lesson markdown for the terminal.
package richtext

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/abhisek/moneypath/internal/ui/theme"
)

type rendererKey struct {
	width int
	style string
}

var (
	mu        sync.Mutex
	renderers = map[rendererKey]*glamour.TermRenderer{}
)

func styleName() string {
	if theme.IsHighContrast() {
		return "notty"
	}
	return "dark"
}

func renderer(width int) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: styleName()}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// Render formats markdown wrapped at width. If rendering fails the
// source text is returned unchanged.
func Render(markdown string, width int) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}
	r, err := renderer(width)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.Trim(out, "\n")
}
