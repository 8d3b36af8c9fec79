package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"reply":"Pay the card with the highest rate first.","follow_ups":["What is APR?"]}`, false},
		{"empty follow ups", `{"reply":"ok","follow_ups":[]}`, false},
		{"missing follow ups", `{"reply":"ok"}`, true},
		{"reply not a string", `{"reply":42,"follow_ups":[]}`, true},
		{"too many follow ups", `{"reply":"ok","follow_ups":["a","b","c","d"]}`, true},
		{"extra field", `{"reply":"ok","follow_ups":[],"mood":"happy"}`, true},
		{"malformed", `{reply:`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(chatTestSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() = %v, wantErr %v", err, tt.wantErr)
			}
			var inv *ErrInvalidResponse
			if err != nil && !errors.As(err, &inv) {
				t.Errorf("err type = %T, want *ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`"free text"`)); err != nil {
		t.Fatalf("nil schema: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name: "test-budget",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"budget": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"income": map[string]any{"type": "number", "minimum": 0},
					},
					"required": []any{"income"},
				},
				"categories": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "enum": []any{"needs", "wants", "savings"}},
				},
			},
			"required": []any{"budget", "categories"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"budget":{"income":3200},"categories":["needs","savings"]}`)); err != nil {
		t.Fatalf("valid: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"budget":{"income":-1},"categories":[]}`)); err == nil {
		t.Error("expected negative income to fail")
	}
	if err := validateResponse(schema, json.RawMessage(`{"budget":{"income":1},"categories":["luxury"]}`)); err == nil {
		t.Error("expected unknown category to fail")
	}
}
