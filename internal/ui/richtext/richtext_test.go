package richtext

import (
	"strings"
	"testing"

	"github.com/abhisek/moneypath/internal/ui/theme"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render("  \n", 40); got != "" {
		t.Errorf("Render(blank) = %q, want empty", got)
	}
}

func TestRenderKeepsText(t *testing.T) {
	out := Render("Pay **yourself** first.", 40)
	if !strings.Contains(out, "yourself") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestRenderHighContrast(t *testing.T) {
	theme.SetHighContrast(true)
	defer theme.SetHighContrast(false)

	out := Render("- Track every expense", 40)
	if !strings.Contains(out, "Track every expense") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
