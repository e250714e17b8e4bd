package classify

import (
	"testing"

	"foreman/internal/artifact"
)

func TestClassify_ExplicitTagWins(t *testing.T) {
	// The tag is authoritative even when the data is shaped like something else.
	u := Unwrapped{Type: "checklist", Data: Raw{"work_order_number": "WO-9"}}
	got := Classify(u)
	if got.Kind != artifact.KindChecklist {
		t.Errorf("Kind = %s, want checklist", got.Kind)
	}
	if got.Source != SourceExplicitTag {
		t.Errorf("Source = %s, want explicit-tag", got.Source)
	}
}

func TestClassify_MultiTagBeatsEverything(t *testing.T) {
	u := Unwrapped{Type: "multi_response", Data: Raw{"message": "shaped like a message"}}
	if got := Classify(u); got.Kind != artifact.KindMultiResponse {
		t.Errorf("Kind = %s, want multi_response", got.Kind)
	}
}

func TestClassify_UnrecognizedTagFallsBackToStructure(t *testing.T) {
	u := Unwrapped{Type: "something_new", Data: Raw{"work_order_number": "WO-9"}}
	got := Classify(u)
	if got.Kind != artifact.KindWorkOrder {
		t.Errorf("Kind = %s, want work_order", got.Kind)
	}
	if got.Source != SourceStructural {
		t.Errorf("Source = %s, want structural-signature", got.Source)
	}
}

func TestClassify_SignaturePriority(t *testing.T) {
	// A payload carrying both work order and LOTO signals must classify as a
	// work order: its chain entry is checked first.
	u := Unwrapped{Data: Raw{
		"work_order_number": "WO-42",
		"isolation_points":  []any{map[string]any{"description": "main breaker"}},
	}}
	if got := Classify(u); got.Kind != artifact.KindWorkOrder {
		t.Errorf("Kind = %s, want work_order (priority over loto)", got.Kind)
	}
}

func TestClassify_StructuralSignatures(t *testing.T) {
	tests := []struct {
		name string
		data Raw
		want artifact.Kind
	}{
		{"wo number", Raw{"workOrderNumber": "WO-1"}, artifact.KindWorkOrder},
		{"tag plus priority", Raw{"equipment_tag": "P-101", "priority": "high"}, artifact.KindWorkOrder},
		{"name plus steps", Raw{"equipmentName": "Feed pump", "procedureSteps": []any{"open"}}, artifact.KindWorkOrder},
		{"isolation points", Raw{"isolation_points": []any{"breaker"}}, artifact.KindLotoProcedure},
		{"isolationSteps alias", Raw{"isolationSteps": []any{"breaker"}}, artifact.KindLotoProcedure},
		{"hazards plus ppe", Raw{"hazards": []any{"arc flash"}, "ppe": []any{"gloves"}}, artifact.KindLotoProcedure},
		{"checklist", Raw{"title": "Pre-Start", "items": []any{"check oil"}}, artifact.KindChecklist},
		{"equipment card", Raw{"tag": "P-101", "name": "Pump", "type": "centrifugal", "specifications": map[string]any{"flow": "20 m3/h"}}, artifact.KindEquipmentCard},
		{"equipment card via connections", Raw{"tag": "P-101", "name": "Pump", "type": "centrifugal", "connections": []any{"V-12"}}, artifact.KindEquipmentCard},
		{"selection", Raw{"options": []any{"a", "b"}}, artifact.KindSelection},
		{"message", Raw{"message": "hello"}, artifact.KindInfoMessage},
		{"content", Raw{"content": "hello"}, artifact.KindInfoMessage},
		{"analysis", Raw{"analysis": "likely bearing wear"}, artifact.KindInfoMessage},
		{"answer", Raw{"answer": "No type here, just a string."}, artifact.KindInfoMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(Unwrapped{Data: tt.data})
			if got.Kind != tt.want {
				t.Errorf("Kind = %s, want %s", got.Kind, tt.want)
			}
			if got.Source != SourceStructural {
				t.Errorf("Source = %s, want structural-signature", got.Source)
			}
		})
	}
}

func TestClassify_NegativeSignatures(t *testing.T) {
	tests := []struct {
		name    string
		data    Raw
		notWant artifact.Kind
	}{
		{"empty items is not a checklist", Raw{"title": "T", "items": []any{}}, artifact.KindChecklist},
		{"hazards without ppe is not loto", Raw{"hazards": []any{"arc flash"}}, artifact.KindLotoProcedure},
		{"empty options is not a selection", Raw{"options": []any{}}, artifact.KindSelection},
		{"equipment without specs or connections", Raw{"tag": "P", "name": "Pump", "type": "x"}, artifact.KindEquipmentCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(Unwrapped{Data: tt.data}); got.Kind == tt.notWant {
				t.Errorf("Kind = %s, should not match", got.Kind)
			}
		})
	}
}

func TestClassify_UntaggedResponses(t *testing.T) {
	u := Unwrapped{Data: Raw{"responses": []any{map[string]any{"answer": "x"}}}}
	got := Classify(u)
	if got.Kind != artifact.KindMultiResponse {
		t.Errorf("Kind = %s, want multi_response", got.Kind)
	}
	if got.Source != SourceStructural {
		t.Errorf("Source = %s, want structural-signature", got.Source)
	}
}

func TestClassify_TotalFallback(t *testing.T) {
	got := Classify(Unwrapped{Data: Raw{"completely": "unknown", "shape": float64(1)}})
	if got.Kind != artifact.KindInfoMessage {
		t.Errorf("Kind = %s, want info_message", got.Kind)
	}
	if got.Source != SourceFallback {
		t.Errorf("Source = %s, want fallback", got.Source)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	data := Raw{"equipment_tag": "P-101", "priority": "high", "hazards": []any{"x"}, "ppe": []any{"y"}}
	first := Classify(Unwrapped{Data: data})
	for i := 0; i < 10; i++ {
		if got := Classify(Unwrapped{Data: data}); got != first {
			t.Fatalf("classification changed between runs: %v vs %v", got, first)
		}
	}
}

func TestMessageTitle_Markers(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"ROOT CAUSE: bearing wear", "Root Cause Analysis"},
		{"From the KNOWLEDGE BASE: see manual", "Knowledge Base Result"},
		{"plain answer", ""},
	}
	for _, tt := range tests {
		if got := messageTitle(Raw{}, tt.body); got != tt.want {
			t.Errorf("messageTitle(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
