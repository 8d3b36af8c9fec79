package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// block is one portable-text block as delivered by the CMS.
type block struct {
	Type     string    `json:"_type"`
	Style    string    `json:"style"`
	ListItem string    `json:"listItem"`
	Level    int       `json:"level"`
	Children []span    `json:"children"`
	MarkDefs []markDef `json:"markDefs"`
}

type span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

type markDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href"`
}

// Markdown renders b as CommonMark. b may be a portable-text array, a
// single block or a plain string; anything else renders empty.
func (b Blocks) Markdown() string {
	if b.Empty() {
		return ""
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var blocks []block
	if err := json.Unmarshal(b, &blocks); err != nil {
		var one block
		if err := json.Unmarshal(b, &one); err != nil {
			return ""
		}
		blocks = []block{one}
	}

	var out strings.Builder
	number := 0
	for i, bl := range blocks {
		if bl.Type != "" && bl.Type != "block" {
			continue
		}
		text := bl.inline()
		if bl.ListItem == "" {
			number = 0
		}
		switch {
		case bl.ListItem == "number":
			number++
			fmt.Fprintf(&out, "%s%d. %s\n", indent(bl.Level), number, text)
		case bl.ListItem != "":
			fmt.Fprintf(&out, "%s- %s\n", indent(bl.Level), text)
		case strings.HasPrefix(bl.Style, "h") && len(bl.Style) == 2:
			fmt.Fprintf(&out, "%s %s\n", strings.Repeat("#", int(bl.Style[1]-'0')), text)
		case bl.Style == "blockquote":
			fmt.Fprintf(&out, "> %s\n", text)
		default:
			out.WriteString(text + "\n")
		}
		if bl.ListItem == "" || (i+1 < len(blocks) && blocks[i+1].ListItem == "") {
			out.WriteString("\n")
		}
	}
	return strings.TrimSpace(out.String())
}

// PlainText is Markdown without any markup, for prompts and search.
func (b Blocks) PlainText() string {
	if b.Empty() {
		return ""
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var blocks []block
	if err := json.Unmarshal(b, &blocks); err != nil {
		return ""
	}
	lines := make([]string, 0, len(blocks))
	for _, bl := range blocks {
		var line strings.Builder
		for _, c := range bl.Children {
			line.WriteString(c.Text)
		}
		if t := strings.TrimSpace(line.String()); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n")
}

func (bl block) inline() string {
	links := make(map[string]string, len(bl.MarkDefs))
	for _, d := range bl.MarkDefs {
		if d.Type == "link" {
			links[d.Key] = d.Href
		}
	}

	var b strings.Builder
	for _, c := range bl.Children {
		text := c.Text
		for _, m := range c.Marks {
			switch m {
			case "strong":
				text = "**" + text + "**"
			case "em":
				text = "_" + text + "_"
			case "code":
				text = "`" + text + "`"
			default:
				if href, ok := links[m]; ok {
					text = "[" + text + "](" + href + ")"
				}
			}
		}
		b.WriteString(text)
	}
	return b.String()
}

func indent(level int) string {
	if level <= 1 {
		return ""
	}
	return strings.Repeat("  ", level-1)
}
