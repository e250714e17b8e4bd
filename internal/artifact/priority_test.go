package artifact

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"critical", PriorityCritical},
		{"emergency", PriorityCritical},
		{"Emergency", PriorityCritical},
		{"high", PriorityHigh},
		{"urgent", PriorityHigh},
		{"medium", PriorityMedium},
		{"normal", PriorityMedium},
		{"low", PriorityLow},
		{"routine", PriorityLow},
		{"  HIGH  ", PriorityHigh},
		{"", PriorityMedium},
		{"sev1", PriorityMedium},
	}
	for _, tt := range tests {
		if got := ParsePriority(tt.in); got != tt.want {
			t.Errorf("ParsePriority(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRecognized(t *testing.T) {
	for _, k := range []Kind{
		KindWorkOrder, KindLotoProcedure, KindChecklist, KindEquipmentCard,
		KindDynamicForm, KindImageCard, KindResearch, KindDataTable,
		KindRCA, KindSelection, KindInfoMessage, KindMultiResponse,
	} {
		if !Recognized(k) {
			t.Errorf("Recognized(%s) = false", k)
		}
	}
	if Recognized("something_new") {
		t.Error("unknown kind should not be recognized")
	}
}
