package classify

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnwrap_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		raw      Raw
		wantType string
		wantData Raw
	}{
		{
			name:     "top-level type and data",
			raw:      Raw{"type": "checklist", "data": map[string]any{"title": "Pre-Start"}},
			wantType: "checklist",
			wantData: Raw{"title": "Pre-Start"},
		},
		{
			name: "nested response envelope",
			raw: Raw{"response": map[string]any{
				"type": "work_order", "data": map[string]any{"priority": "high"},
			}},
			wantType: "work_order",
			wantData: Raw{"priority": "high"},
		},
		{
			name:     "top-level multi with sibling responses",
			raw:      Raw{"type": "multi_response", "responses": []any{map[string]any{"answer": "x"}}},
			wantType: "multi_response",
			wantData: Raw{"responses": []any{map[string]any{"answer": "x"}}},
		},
		{
			name: "nested multi with sibling responses",
			raw: Raw{"response": map[string]any{
				"type": "multi_response", "responses": []any{},
			}},
			wantType: "multi_response",
			wantData: Raw{"responses": []any{}},
		},
		{
			name:     "bare heuristic payload passes through untyped",
			raw:      Raw{"answer": "No type here, just a string."},
			wantType: "",
			wantData: Raw{"answer": "No type here, just a string."},
		},
		{
			name: "rich top-level shape beats sibling responses",
			raw: Raw{
				"type":      "multi_response",
				"data":      map[string]any{"responses": []any{map[string]any{"answer": "keep me"}}},
				"responses": []any{},
			},
			wantType: "multi_response",
			wantData: Raw{"responses": []any{map[string]any{"answer": "keep me"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unwrap(tt.raw)
			if err != nil {
				t.Fatalf("Unwrap: %v", err)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if diff := cmp.Diff(tt.wantData, got.Data); diff != "" {
				t.Errorf("Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnwrap_UpstreamFailure(t *testing.T) {
	_, err := Unwrap(Raw{"success": false, "error": "model overloaded"})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("want *UpstreamError, got %v", err)
	}
	if upstream.Message != "model overloaded" {
		t.Errorf("Message = %q, want verbatim upstream text", upstream.Message)
	}
}

func TestUnwrap_SuccessTrueIsNotFailure(t *testing.T) {
	got, err := Unwrap(Raw{"success": true, "type": "checklist", "data": map[string]any{"title": "T"}})
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if got.Type != "checklist" {
		t.Errorf("Type = %q, want checklist", got.Type)
	}
}

func TestUnwrap_SourcesMetadata(t *testing.T) {
	raw := Raw{
		"type":      "multi_response",
		"responses": []any{},
		"sources":   map[string]any{"manuals": []any{map[string]any{"title": "Manual A", "page": float64(12)}}},
	}
	got, err := Unwrap(raw)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if got.Sources == nil {
		t.Fatal("Sources should survive unwrapping")
	}
	if _, ok := got.Sources["manuals"]; !ok {
		t.Error("manuals missing from Sources")
	}
}
