package classify

import (
	"encoding/json"

	"foreman/internal/artifact"
)

// Build constructs the canonical artifact for a classified payload. Builders
// are pure and total: a missing field degrades to a default, never an error,
// because the artifact must still render and export. Only declared canonical
// attributes survive; the artifact is a projection, not a passthrough.
//
// MultiResponse is not built here; the composer owns container assembly.
func Build(kind artifact.Kind, data Raw) artifact.Artifact {
	norm := Normalize(data, aliasTableFor(kind))
	switch kind {
	case artifact.KindWorkOrder:
		return buildWorkOrder(norm)
	case artifact.KindLotoProcedure:
		return buildLoto(norm)
	case artifact.KindChecklist:
		return buildChecklist(norm)
	case artifact.KindEquipmentCard:
		return buildEquipmentCard(norm)
	case artifact.KindDynamicForm:
		return buildDynamicForm(norm)
	case artifact.KindImageCard:
		return buildImageCard(norm)
	case artifact.KindResearch:
		return buildResearch(norm)
	case artifact.KindDataTable:
		return buildDataTable(norm)
	case artifact.KindRCA:
		return buildRCA(norm)
	case artifact.KindSelection:
		return buildSelection(norm)
	default:
		return buildInfoMessage(data, norm)
	}
}

// DraftWorkOrderNumber is the placeholder for a work order the upstream
// returned without a number.
const DraftWorkOrderNumber = "WO-DRAFT"

func buildWorkOrder(d Raw) artifact.WorkOrder {
	number := str(d, "number")
	if number == "" {
		number = DraftWorkOrderNumber
	}
	return artifact.WorkOrder{
		Number:             number,
		EquipmentTag:       str(d, "equipment_tag"),
		EquipmentName:      str(d, "equipment_name"),
		WorkType:           str(d, "work_type"),
		Priority:           artifact.ParsePriority(str(d, "priority")),
		Description:        str(d, "description"),
		Symptoms:           strSlice(d, "symptoms"),
		RequiredParts:      partsOf(d, "required_parts"),
		RequiredTools:      strSlice(d, "required_tools"),
		SafetyRequirements: strSlice(d, "safety_requirements"),
		ProcedureSteps:     stepsOf(d, "procedure_steps"),
		QualityCheckpoints: checkpointsOf(d, "quality_checkpoints"),
		EstimatedDuration:  str(d, "estimated_duration"),
		LockoutRequired:    asBool(d["lockout_required"]),
		ATEXCompliance:     asBool(d["atex_compliance"]),
		References:         referencesOf(d, "references"),
	}
}

func buildLoto(d Raw) artifact.LotoProcedure {
	title := str(d, "title")
	if title == "" {
		title = "Lockout/Tagout Procedure"
	}
	return artifact.LotoProcedure{
		Title:             title,
		EquipmentTag:      str(d, "equipment_tag"),
		EquipmentName:     str(d, "equipment_name"),
		Hazards:           strSlice(d, "hazards"),
		IsolationPoints:   isolationPointsOf(d, "isolation_points"),
		RequiredPPE:       strSlice(d, "required_ppe"),
		VerificationSteps: strSlice(d, "verification_steps"),
		EstimatedDuration: str(d, "estimated_duration"),
		References:        referencesOf(d, "references"),
	}
}

func buildChecklist(d Raw) artifact.Checklist {
	return artifact.Checklist{
		Title:       str(d, "title"),
		Description: str(d, "description"),
		Items:       checklistItemsOf(d, "items"),
		References:  referencesOf(d, "references"),
	}
}

func buildEquipmentCard(d Raw) artifact.EquipmentCard {
	return artifact.EquipmentCard{
		Tag:                str(d, "tag"),
		Name:               str(d, "name"),
		Type:               str(d, "type"),
		Location:           str(d, "location"),
		Status:             str(d, "status"),
		Specifications:     specsOf(d["specifications"]),
		ConnectedEquipment: strSlice(d, "connected_equipment"),
		Notes:              str(d, "notes"),
	}
}

func buildDynamicForm(d Raw) artifact.DynamicForm {
	return artifact.DynamicForm{
		Title:       str(d, "title"),
		Description: str(d, "description"),
		Fields:      formFieldsOf(d, "fields"),
		SubmitLabel: str(d, "submit_label"),
	}
}

func buildImageCard(d Raw) artifact.ImageCard {
	return artifact.ImageCard{
		Title:    str(d, "title"),
		ImageURL: str(d, "image_url"),
		Caption:  str(d, "caption"),
	}
}

func buildResearch(d Raw) artifact.ResearchResult {
	return artifact.ResearchResult{
		Title:    str(d, "title"),
		Summary:  str(d, "summary"),
		Findings: strSlice(d, "findings"),
		Sources:  citationsOf(d, "sources"),
	}
}

func buildDataTable(d Raw) artifact.DataTable {
	return artifact.DataTable{
		Title:   str(d, "title"),
		Columns: strSlice(d, "columns"),
		Rows:    rowsOf(d, "rows"),
		Caption: str(d, "caption"),
	}
}

func buildRCA(d Raw) artifact.RCA {
	return artifact.RCA{
		Title:               str(d, "title"),
		Problem:             str(d, "problem"),
		RootCause:           str(d, "root_cause"),
		ContributingFactors: strSlice(d, "contributing_factors"),
		RecommendedActions:  strSlice(d, "recommended_actions"),
		Confidence:          asFloat(d["confidence"]),
		References:          referencesOf(d, "references"),
	}
}

func buildSelection(d Raw) artifact.Selection {
	return artifact.Selection{
		Prompt:  str(d, "prompt"),
		Options: optionsOf(d, "options"),
	}
}

// buildInfoMessage takes both the raw and normalized views: the body probe
// must find the first *string* field in raw (mirroring the classifier),
// because the alias resolution may have settled on a null that hid a later
// string. When no message field exists at all, the pretty-printed payload
// becomes the message; classification never produces nothing.
func buildInfoMessage(raw, norm Raw) artifact.InfoMessage {
	var body string
	for _, k := range messageFields {
		if s, ok := raw[k].(string); ok {
			body = s
			break
		}
	}
	if body == "" {
		pretty, err := json.MarshalIndent(raw, "", "  ")
		if err != nil {
			pretty = []byte("{}")
		}
		body = string(pretty)
	}
	return artifact.InfoMessage{
		Title:     messageTitle(raw, body),
		Message:   body,
		Citations: citationsOf(norm, "citations"),
	}
}
