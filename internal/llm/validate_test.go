package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func feedbackSchema() *Schema {
	return &Schema{
		Name:        "tutor-feedback",
		Description: "Structured tutor feedback",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"feedback": map[string]any{"type": "string"},
				"hint":     map[string]any{"type": "string"},
			},
			"required":             []any{"feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidate_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"feedback":"Good probing question.","hint":"Try role-play framing."}`)
	if err := validateResponse(feedbackSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"feedback":`))
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"hint":"only a hint"}`))
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_AdditionalPropertyRejected(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"feedback":"ok","extra":1}`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate_SchemaCached(t *testing.T) {
	s := feedbackSchema()
	raw := json.RawMessage(`{"feedback":"ok"}`)

	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("expected schema to be cached after first validation")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
