package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(chatTestSchema().Definition)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s", s.Type)
	}
	if s.Properties["reply"].Type != genai.TypeString {
		t.Errorf("reply type = %s", s.Properties["reply"].Type)
	}
	fu := s.Properties["follow_ups"]
	if fu.Type != genai.TypeArray || fu.Items == nil || fu.Items.Type != genai.TypeString {
		t.Errorf("follow_ups = %+v", fu)
	}
	if fu.MaxItems == nil || *fu.MaxItems != 3 {
		t.Errorf("follow_ups maxItems = %v", fu.MaxItems)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestGeminiSchemaEnumAndUnknownType(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tone":  map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
			"extra": map[string]any{"type": "null"},
		},
	})
	if len(s.Properties["tone"].Enum) != 2 {
		t.Errorf("enum = %v", s.Properties["tone"].Enum)
	}
	if s.Properties["extra"].Type != genai.TypeString {
		t.Errorf("unknown type should fall back to string, got %s", s.Properties["extra"].Type)
	}
}
