package classify

import "foreman/internal/artifact"

// Field declares one canonical attribute: its canonical (snake_case) name,
// the ordered list of accepted source spellings, and whether the value is
// sequence-typed. The canonical name is always its own first alias, which
// makes Normalize idempotent.
type Field struct {
	Canonical string
	Aliases   []string
	Seq       bool
}

// AliasTable is the declared attribute set of one canonical artifact type.
// Normalization projects a raw object onto the table: anything not declared
// here is dropped.
type AliasTable []Field

// field declares a scalar attribute. The canonical name is prepended to the
// alias list.
func field(canonical string, aliases ...string) Field {
	return Field{Canonical: canonical, Aliases: append([]string{canonical}, aliases...)}
}

// seqField declares a sequence attribute whose value passes through ToArray.
func seqField(canonical string, aliases ...string) Field {
	f := field(canonical, aliases...)
	f.Seq = true
	return f
}

// ToArray coerces a scalar-or-array value into an array. Upstream payloads
// interchangeably send a single string or a list for the same logical field,
// so: nil → empty, string → one-element, array → unchanged, any other scalar
// → one-element. Applied only to sequence-typed fields, exactly once, at the
// normalization boundary.
func ToArray(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		return t
	case string:
		return []any{t}
	default:
		return []any{t}
	}
}

// Normalize resolves aliased field names against the table. For each declared
// field the first alias present in raw wins (presence, not non-nullness: an
// explicit null is still a resolution); when no alias is present the canonical
// key is absent from the result, so builders can distinguish missing from
// empty. Sequence fields are coerced through ToArray. Normalize is idempotent.
func Normalize(raw Raw, table AliasTable) Raw {
	out := make(Raw, len(table))
	for _, f := range table {
		for _, alias := range f.Aliases {
			v, ok := raw[alias]
			if !ok {
				continue
			}
			if f.Seq {
				out[f.Canonical] = ToArray(v)
			} else {
				out[f.Canonical] = v
			}
			break
		}
	}
	return out
}

// Alias tables, one per canonical type. Order inside an alias list matters:
// the canonical spelling first, then the upstream variants in observed
// frequency order.

var workOrderAliases = AliasTable{
	field("number", "work_order_number", "workOrderNumber", "wo_number"),
	field("equipment_tag", "equipmentTag", "tag"),
	field("equipment_name", "equipmentName"),
	field("work_type", "workType", "type"),
	field("priority"),
	field("description", "summary"),
	seqField("symptoms", "symptom"),
	seqField("required_parts", "requiredParts", "parts"),
	seqField("required_tools", "requiredTools", "tools"),
	seqField("safety_requirements", "safetyRequirements", "safety"),
	seqField("procedure_steps", "procedureSteps", "steps"),
	seqField("quality_checkpoints", "qualityCheckpoints", "checkpoints"),
	field("estimated_duration", "estimatedDuration", "duration"),
	field("lockout_required", "lockoutRequired", "loto_required"),
	field("atex_compliance", "atexCompliance", "atex"),
	seqField("references", "reference"),
}

var lotoAliases = AliasTable{
	field("title", "procedure_title", "procedureTitle", "name"),
	field("equipment_tag", "equipmentTag", "tag"),
	field("equipment_name", "equipmentName"),
	seqField("hazards", "hazard"),
	seqField("isolation_points", "isolationPoints", "isolationSteps", "isolation_steps"),
	seqField("required_ppe", "requiredPPE", "requiredPpe", "ppe"),
	seqField("verification_steps", "verificationSteps", "verification"),
	field("estimated_duration", "estimatedDuration", "duration"),
	seqField("references", "reference"),
}

var checklistAliases = AliasTable{
	field("title", "name"),
	field("description"),
	seqField("items", "checklist_items", "checklistItems"),
	seqField("references", "reference"),
}

var equipmentAliases = AliasTable{
	field("tag", "equipment_tag", "equipmentTag"),
	field("name", "equipment_name", "equipmentName"),
	field("type", "equipment_type", "equipmentType"),
	field("location", "area"),
	field("status", "condition"),
	field("specifications", "specs"),
	seqField("connected_equipment", "connectedEquipment", "connections"),
	field("notes", "note"),
}

var formAliases = AliasTable{
	field("title", "form_title", "formTitle", "name"),
	field("description"),
	seqField("fields", "form_fields", "formFields"),
	field("submit_label", "submitLabel"),
}

var imageAliases = AliasTable{
	field("title", "name"),
	field("image_url", "imageUrl", "url", "src"),
	field("caption", "description"),
}

var researchAliases = AliasTable{
	field("title", "topic", "query"),
	field("summary", "abstract"),
	seqField("findings", "results", "key_findings", "keyFindings"),
	seqField("sources", "citations", "manuals"),
}

var tableAliases = AliasTable{
	field("title", "name"),
	seqField("columns", "headers", "header"),
	seqField("rows", "data_rows", "dataRows"),
	field("caption", "description"),
}

var rcaAliases = AliasTable{
	field("title", "name"),
	field("problem", "symptom", "issue"),
	field("root_cause", "rootCause", "cause"),
	seqField("contributing_factors", "contributingFactors", "factors"),
	seqField("recommended_actions", "recommendedActions", "corrective_actions", "correctiveActions", "actions"),
	field("confidence", "confidence_score", "confidenceScore"),
	seqField("references", "reference"),
}

var selectionAliases = AliasTable{
	field("prompt", "question", "title", "message"),
	seqField("options", "choices"),
}

var messageAliases = AliasTable{
	field("title", "heading"),
	field("message", "content", "analysis", "text", "answer"),
	seqField("citations", "sources", "references"),
}

// aliasTableFor returns the alias table used to normalize data for the given
// kind. MultiResponse has no table: its children normalize individually.
func aliasTableFor(kind artifact.Kind) AliasTable {
	switch kind {
	case artifact.KindWorkOrder:
		return workOrderAliases
	case artifact.KindLotoProcedure:
		return lotoAliases
	case artifact.KindChecklist:
		return checklistAliases
	case artifact.KindEquipmentCard:
		return equipmentAliases
	case artifact.KindDynamicForm:
		return formAliases
	case artifact.KindImageCard:
		return imageAliases
	case artifact.KindResearch:
		return researchAliases
	case artifact.KindDataTable:
		return tableAliases
	case artifact.KindRCA:
		return rcaAliases
	case artifact.KindSelection:
		return selectionAliases
	case artifact.KindInfoMessage:
		return messageAliases
	}
	return nil
}
