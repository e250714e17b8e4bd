package classify

import (
	"strings"

	"foreman/internal/artifact"
)

// Source records how a classification was reached. Informational only:
// correctness never depends on it.
type Source string

const (
	// SourceExplicitTag means the upstream type tag was present and trusted.
	SourceExplicitTag Source = "explicit-tag"
	// SourceStructural means a structural signature matched the payload.
	SourceStructural Source = "structural-signature"
	// SourceFallback means nothing matched and the payload degraded to an
	// informational message.
	SourceFallback Source = "fallback"
)

// ClassificationResult is the classifier's verdict for one payload.
type ClassificationResult struct {
	Kind   artifact.Kind
	Source Source
}

// signature pairs an artifact kind with its field-presence predicate. The
// chain below is evaluated top to bottom, first match wins, so the priority
// order is data, not control flow.
type signature struct {
	kind    artifact.Kind
	matches func(Raw) bool
}

// signatureChain is the fixed structural fallback order. WorkOrder precedes
// LotoProcedure: both may carry equipment_tag, and the work order's stronger
// signals (number, priority) must win before LOTO's weaker ones are tried.
var signatureChain = []signature{
	{artifact.KindWorkOrder, isWorkOrderShaped},
	{artifact.KindLotoProcedure, isLotoShaped},
	{artifact.KindChecklist, isChecklistShaped},
	{artifact.KindEquipmentCard, isEquipmentShaped},
	{artifact.KindSelection, isSelectionShaped},
	{artifact.KindInfoMessage, isMessageShaped},
}

func isWorkOrderShaped(d Raw) bool {
	if has(d, "work_order_number", "workOrderNumber") {
		return true
	}
	if has(d, "equipment_tag", "equipmentTag") && has(d, "priority") {
		return true
	}
	return has(d, "equipment_name", "equipmentName") && has(d, "procedure_steps", "procedureSteps")
}

func isLotoShaped(d Raw) bool {
	if has(d, "isolation_points", "isolationPoints", "isolationSteps", "isolation_steps") {
		return true
	}
	return has(d, "hazards") && has(d, "required_ppe", "requiredPPE", "requiredPpe", "ppe")
}

func isChecklistShaped(d Raw) bool {
	return nonEmptySeq(d, "items") && has(d, "title")
}

func isEquipmentShaped(d Raw) bool {
	if !has(d, "tag") || !has(d, "name") || !has(d, "type") {
		return false
	}
	return has(d, "specifications") || has(d, "connectedEquipment", "connected_equipment", "connections")
}

func isSelectionShaped(d Raw) bool {
	return nonEmptySeq(d, "options")
}

// messageFields is the probe order for message-shaped payloads.
var messageFields = []string{"message", "content", "analysis", "text", "answer"}

func isMessageShaped(d Raw) bool {
	for _, k := range messageFields {
		if _, ok := d[k].(string); ok {
			return true
		}
	}
	return false
}

// messageTitleMarkers hint at a useful title for an otherwise untitled
// message payload (heuristic backends prefix their answers this way).
var messageTitleMarkers = []struct {
	marker string
	title  string
}{
	{"ROOT CAUSE", "Root Cause Analysis"},
	{"KNOWLEDGE BASE", "Knowledge Base Result"},
}

// messageTitle derives a title for a message-shaped payload: an explicit
// title field wins, then the content markers, else "".
func messageTitle(d Raw, body string) string {
	if t := firstStr(d, "title", "heading"); t != "" {
		return t
	}
	upper := strings.ToUpper(body)
	for _, m := range messageTitleMarkers {
		if strings.Contains(upper, m.marker) {
			return m.title
		}
	}
	return ""
}

// Classify determines the canonical kind of an unwrapped payload.
//
// Priority: a "multi_response" tag wins over any data shape; any other
// recognized explicit tag is trusted next; then the structural signature
// chain runs against the data; then an untagged responses array is treated
// as a multi-response; and finally the payload degrades to an informational
// message. Classification is deterministic and never fails.
func Classify(u Unwrapped) ClassificationResult {
	if u.Type == string(artifact.KindMultiResponse) {
		return ClassificationResult{Kind: artifact.KindMultiResponse, Source: SourceExplicitTag}
	}
	if u.Type != "" && artifact.Recognized(artifact.Kind(u.Type)) {
		return ClassificationResult{Kind: artifact.Kind(u.Type), Source: SourceExplicitTag}
	}

	for _, sig := range signatureChain {
		if sig.matches(u.Data) {
			return ClassificationResult{Kind: sig.kind, Source: SourceStructural}
		}
	}

	if _, ok := u.Data["responses"].([]any); ok {
		return ClassificationResult{Kind: artifact.KindMultiResponse, Source: SourceStructural}
	}

	return ClassificationResult{Kind: artifact.KindInfoMessage, Source: SourceFallback}
}
