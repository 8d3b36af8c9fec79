package content

import (
	"testing"
)

func TestBlocksMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", `[]`, ""},
		{"plain string", `"  Spend less than you earn. "`, "Spend less than you earn."},
		{
			"heading and paragraph",
			`[{"_type":"block","style":"h2","children":[{"_type":"span","text":"Budgets"}]},
			  {"_type":"block","style":"normal","children":[{"_type":"span","text":"Track "},{"_type":"span","text":"every","marks":["strong"]},{"_type":"span","text":" dollar."}]}]`,
			"## Budgets\n\nTrack **every** dollar.",
		},
		{
			"link",
			`[{"_type":"block","markDefs":[{"_key":"k1","_type":"link","href":"https://example.com"}],"children":[{"_type":"span","text":"Read more","marks":["k1"]}]}]`,
			"[Read more](https://example.com)",
		},
		{
			"numbered list",
			`[{"_type":"block","listItem":"number","children":[{"_type":"span","text":"Needs"}]},
			  {"_type":"block","listItem":"number","children":[{"_type":"span","text":"Wants"}]},
			  {"_type":"block","style":"normal","children":[{"_type":"span","text":"Done."}]}]`,
			"1. Needs\n2. Wants\n\nDone.",
		},
		{
			"skips images",
			`[{"_type":"image","asset":{"_ref":"x"}},{"_type":"block","children":[{"_type":"span","text":"Caption"}]}]`,
			"Caption",
		},
		{"garbage", `{"not":"a block"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blocks(tt.in).Markdown(); got != tt.want {
				t.Errorf("Markdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlocksPlainText(t *testing.T) {
	b := Blocks(`[{"_type":"block","style":"h2","children":[{"_type":"span","text":"Budgets"}]},
		{"_type":"block","children":[{"_type":"span","text":"Track "},{"_type":"span","text":"every","marks":["strong"]},{"_type":"span","text":" dollar."}]}]`)
	if got, want := b.PlainText(), "Budgets\nTrack every dollar."; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}
