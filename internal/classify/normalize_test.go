package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToArray(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []any
	}{
		{"nil", nil, []any{}},
		{"string", "a", []any{"a"}},
		{"array", []any{"a", "b"}, []any{"a", "b"}},
		{"empty array", []any{}, []any{}},
		{"number", float64(7), []any{float64(7)}},
		{"bool", true, []any{true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToArray(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToArray(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNormalize_FirstAliasWins(t *testing.T) {
	table := AliasTable{
		field("equipment_tag", "equipmentTag", "tag"),
	}
	raw := Raw{"equipmentTag": "P-101", "tag": "ignored"}
	got := Normalize(raw, table)
	if got["equipment_tag"] != "P-101" {
		t.Errorf("equipment_tag = %v, want P-101", got["equipment_tag"])
	}
}

func TestNormalize_NullStillResolves(t *testing.T) {
	// An explicit null on the first alias wins over a value on a later one:
	// presence, not non-nullness, decides.
	table := AliasTable{
		field("description", "summary"),
	}
	raw := Raw{"description": nil, "summary": "present but second"}
	got := Normalize(raw, table)
	v, ok := got["description"]
	if !ok {
		t.Fatal("description should be present")
	}
	if v != nil {
		t.Errorf("description = %v, want nil", v)
	}
}

func TestNormalize_AbsentStaysAbsent(t *testing.T) {
	table := AliasTable{
		seqField("symptoms", "symptom"),
	}
	got := Normalize(Raw{"unrelated": 1}, table)
	if _, ok := got["symptoms"]; ok {
		t.Error("symptoms should be absent when no alias is present")
	}
}

func TestNormalize_SeqCoercion(t *testing.T) {
	table := AliasTable{
		seqField("symptoms", "symptom"),
	}
	tests := []struct {
		name string
		raw  Raw
		want []any
	}{
		{"string wraps", Raw{"symptoms": "overheating"}, []any{"overheating"}},
		{"array unchanged", Raw{"symptoms": []any{"a", "b"}}, []any{"a", "b"}},
		{"null empties", Raw{"symptoms": nil}, []any{}},
		{"alias string wraps", Raw{"symptom": "vibration"}, []any{"vibration"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, table)
			if diff := cmp.Diff(tt.want, got["symptoms"]); diff != "" {
				t.Errorf("symptoms mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	fixtures := []Raw{
		{"equipmentTag": "XFMR-12", "priority": "urgent", "symptoms": "overheating"},
		{"work_order_number": "WO-1", "required_parts": []any{"bearing"}},
		{"hazards": nil, "requiredPPE": []any{"gloves"}},
	}
	tables := []AliasTable{workOrderAliases, lotoAliases}
	for _, raw := range fixtures {
		for _, table := range tables {
			once := Normalize(raw, table)
			twice := Normalize(once, table)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("Normalize not idempotent for %v (-once +twice):\n%s", raw, diff)
			}
		}
	}
}

func TestNormalize_Projection(t *testing.T) {
	// Undeclared fields are dropped: the canonical type is a projection.
	got := Normalize(Raw{"title": "x", "unknown_extra": 42}, checklistAliases)
	if _, ok := got["unknown_extra"]; ok {
		t.Error("undeclared field survived normalization")
	}
}
