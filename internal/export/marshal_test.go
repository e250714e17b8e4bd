package export

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"foreman/internal/artifact"
)

func TestMarshalUnmarshal_WorkOrder(t *testing.T) {
	in := artifact.WorkOrder{
		Number:        "WO-42",
		EquipmentTag:  "P-101",
		Priority:      artifact.PriorityHigh,
		Symptoms:      []string{"vibration"},
		RequiredParts: []artifact.Part{{Number: "B-100", Description: "bearing", Quantity: 2}},
		ProcedureSteps: []artifact.Step{
			{Number: 1, Instruction: "isolate", Warning: "stored energy"},
		},
		LockoutRequired: true,
	}

	b, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("envelope decode: %v", err)
	}
	if env.Kind != artifact.KindWorkOrder {
		t.Errorf("Kind = %s", env.Kind)
	}

	out, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestMarshalUnmarshal_MultiResponse(t *testing.T) {
	in := artifact.MultiResponse{Children: []artifact.Artifact{
		artifact.Checklist{Title: "Pre-Start", Items: []artifact.ChecklistItem{{Text: "oil"}}},
		artifact.InfoMessage{Message: "done"},
		artifact.MultiResponse{Children: []artifact.Artifact{
			artifact.Selection{Options: []artifact.Option{{Value: "a", Label: "A"}}},
		}},
	}}

	b, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestUnmarshal_UnknownKind(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"kind":"hologram","data":{}}`)); err == nil {
		t.Error("unknown kind should fail to decode")
	}
}
