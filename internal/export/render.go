package export

import (
	"fmt"
	"sort"
	"strings"

	"foreman/internal/artifact"
	"foreman/internal/format"
)

// Render produces the plain-text form of an artifact in the given mode.
// Total over all kinds; an unknown implementation renders as its kind name.
func Render(a artifact.Artifact, mode format.Mode) string {
	switch t := a.(type) {
	case artifact.WorkOrder:
		return renderWorkOrder(t, mode)
	case artifact.LotoProcedure:
		return renderLoto(t, mode)
	case artifact.Checklist:
		return renderChecklist(t, mode)
	case artifact.EquipmentCard:
		return renderEquipmentCard(t, mode)
	case artifact.DynamicForm:
		return renderForm(t, mode)
	case artifact.ImageCard:
		return renderImage(t, mode)
	case artifact.ResearchResult:
		return renderResearch(t, mode)
	case artifact.DataTable:
		return renderDataTable(t, mode)
	case artifact.RCA:
		return renderRCA(t, mode)
	case artifact.Selection:
		return renderSelection(t, mode)
	case artifact.InfoMessage:
		return renderInfo(t, mode)
	case artifact.MultiResponse:
		return renderMulti(t, mode)
	}
	return string(a.Kind())
}

// section appends a titled block when body is non-empty.
func section(b *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s", title, body)
}

func renderWorkOrder(wo artifact.WorkOrder, mode format.Mode) string {
	var b strings.Builder
	b.WriteString(format.Heading(mode, "Work Order "+wo.Number))
	b.WriteString("\n")
	b.WriteString(format.KeyValues([][2]string{
		{"Equipment", strings.TrimSpace(wo.EquipmentTag + " " + wo.EquipmentName)},
		{"Work type", wo.WorkType},
		{"Priority", string(wo.Priority)},
		{"Duration", wo.EstimatedDuration},
		{"Lockout required", format.BoolMark(wo.LockoutRequired)},
		{"ATEX compliance", format.BoolMark(wo.ATEXCompliance)},
	}))
	if wo.Description != "" {
		b.WriteString("\n" + wo.Description + "\n")
	}
	section(&b, "Symptoms:", format.Bullets(wo.Symptoms))

	if len(wo.RequiredParts) > 0 {
		tbl := format.NewTable(mode)
		tbl.Header("Part #", "Description", "Qty")
		for _, p := range wo.RequiredParts {
			qty := ""
			if p.Quantity > 0 {
				qty = fmt.Sprintf("%d", p.Quantity)
			}
			tbl.Row(p.Number, p.Description, qty)
		}
		tbl.Columns(format.ColumnConfig{Number: 3, Align: format.AlignRight})
		section(&b, "Required parts:", tbl.String()+"\n")
	}

	section(&b, "Required tools:", format.Bullets(wo.RequiredTools))
	section(&b, "Safety requirements:", format.Bullets(wo.SafetyRequirements))
	section(&b, "Procedure:", renderSteps(wo.ProcedureSteps))

	if len(wo.QualityCheckpoints) > 0 {
		var cp strings.Builder
		for _, c := range wo.QualityCheckpoints {
			cp.WriteString("- " + c.Description)
			if c.Criteria != "" {
				cp.WriteString(" (" + c.Criteria + ")")
			}
			cp.WriteString("\n")
		}
		section(&b, "Quality checkpoints:", cp.String())
	}

	section(&b, "References:", renderReferences(wo.References))
	return b.String()
}

func renderSteps(steps []artifact.Step) string {
	var b strings.Builder
	for _, s := range steps {
		fmt.Fprintf(&b, "%d. %s", s.Number, s.Instruction)
		if s.Warning != "" {
			fmt.Fprintf(&b, " [WARNING: %s]", s.Warning)
		}
		if s.Duration != "" {
			fmt.Fprintf(&b, " (%s)", s.Duration)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderReferences(refs []artifact.Reference) string {
	lines := make([]string, 0, len(refs))
	for _, r := range refs {
		line := r.Title
		if r.Page > 0 {
			line = fmt.Sprintf("%s p.%d", line, r.Page)
		}
		if r.URL != "" {
			line += " <" + r.URL + ">"
		}
		lines = append(lines, line)
	}
	return format.Bullets(lines)
}

func renderLoto(lp artifact.LotoProcedure, mode format.Mode) string {
	var b strings.Builder
	b.WriteString(format.Heading(mode, lp.Title))
	b.WriteString("\n")
	b.WriteString(format.KeyValues([][2]string{
		{"Equipment", strings.TrimSpace(lp.EquipmentTag + " " + lp.EquipmentName)},
		{"Duration", lp.EstimatedDuration},
	}))
	section(&b, "Hazards:", format.Bullets(lp.Hazards))

	if len(lp.IsolationPoints) > 0 {
		tbl := format.NewTable(mode)
		tbl.Header("#", "Isolation point", "Energy", "Method", "Verification")
		for _, p := range lp.IsolationPoints {
			tbl.Row(p.Number, p.Description, p.EnergyType, p.Method, p.Verification)
		}
		section(&b, "Isolation points:", tbl.String()+"\n")
	}

	section(&b, "Required PPE:", format.Bullets(lp.RequiredPPE))
	section(&b, "Verification:", format.Bullets(lp.VerificationSteps))
	section(&b, "References:", renderReferences(lp.References))
	return b.String()
}

func renderChecklist(cl artifact.Checklist, mode format.Mode) string {
	var b strings.Builder
	b.WriteString(format.Heading(mode, cl.Title))
	b.WriteString("\n")
	if cl.Description != "" {
		b.WriteString(cl.Description + "\n")
	}
	for _, item := range cl.Items {
		mark := "[ ]"
		if item.Required {
			mark = "[!]"
		}
		b.WriteString(mark + " " + item.Text)
		if item.Note != "" {
			b.WriteString(" — " + item.Note)
		}
		b.WriteString("\n")
	}
	section(&b, "References:", renderReferences(cl.References))
	return b.String()
}

func renderEquipmentCard(eq artifact.EquipmentCard, mode format.Mode) string {
	var b strings.Builder
	b.WriteString(format.Heading(mode, eq.Tag+" — "+eq.Name))
	b.WriteString("\n")
	b.WriteString(format.KeyValues([][2]string{
		{"Type", eq.Type},
		{"Location", eq.Location},
		{"Status", eq.Status},
	}))

	if len(eq.Specifications) > 0 {
		tbl := format.NewTable(mode)
		tbl.Header("Specification", "Value")
		for _, k := range sortedKeys(eq.Specifications) {
			tbl.Row(k, eq.Specifications[k])
		}
		section(&b, "Specifications:", tbl.String()+"\n")
	}

	section(&b, "Connected equipment:", format.Bullets(eq.ConnectedEquipment))
	if eq.Notes != "" {
		section(&b, "Notes:", eq.Notes+"\n")
	}
	return b.String()
}

func renderForm(f artifact.DynamicForm, mode format.Mode) string {
	var b strings.Builder
	b.WriteString(format.Heading(mode, f.Title))
	b.WriteString("\n")
	if f.Description != "" {
		b.WriteString(f.Description + "\n")
	}
	for _, fld := range f.Fields {
		req := ""
		if fld.Required {
			req = " (required)"
		}
		fmt.Fprintf(&b, "- %s [%s]%s", fld.Label, fld.Type, req)
		if len(fld.Options) > 0 {
			fmt.Fprintf(&b, ": %s", strings.Join(fld.Options, " | "))
		}
		if fld.Default != "" {
			fmt.Fprintf(&b, " (default: %s)", fld.Default)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderImage(img artifact.ImageCard, mode format.Mode) string {
	var b strings.Builder
	title := img.Title
	if title == "" {
		title = "Image"
	}
	b.WriteString(format.Heading(mode, title))
	b.WriteString("\n")
	b.WriteString(img.ImageURL + "\n")
	if img.Caption != "" {
		b.WriteString(img.Caption + "\n")
	}
	return b.String()
}

func renderResearch(r artifact.ResearchResult, mode format.Mode) string {
	var b strings.Builder
	b.WriteString(format.Heading(mode, r.Title))
	b.WriteString("\n")
	if r.Summary != "" {
		b.WriteString(r.Summary + "\n")
	}
	section(&b, "Findings:", format.Bullets(r.Findings))
	section(&b, "Sources:", renderCitations(r.Sources))
	return b.String()
}

func renderCitations(cites []artifact.Citation) string {
	lines := make([]string, 0, len(cites))
	for _, c := range cites {
		line := c.Title
		if c.Section != "" {
			line += ", " + c.Section
		}
		if c.Page > 0 {
			line = fmt.Sprintf("%s p.%d", line, c.Page)
		}
		if c.URL != "" {
			line += " <" + c.URL + ">"
		}
		lines = append(lines, line)
	}
	return format.Bullets(lines)
}

func renderDataTable(dt artifact.DataTable, mode format.Mode) string {
	var b strings.Builder
	if dt.Title != "" {
		b.WriteString(format.Heading(mode, dt.Title))
		b.WriteString("\n")
	}
	tbl := format.NewTable(mode)
	tbl.Header(dt.Columns...)
	for _, row := range dt.Rows {
		vals := make([]any, len(row))
		for i, c := range row {
			vals[i] = c
		}
		tbl.Row(vals...)
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	if dt.Caption != "" {
		b.WriteString(dt.Caption + "\n")
	}
	return b.String()
}

func renderRCA(r artifact.RCA, mode format.Mode) string {
	var b strings.Builder
	title := r.Title
	if title == "" {
		title = "Root Cause Analysis"
	}
	b.WriteString(format.Heading(mode, title))
	b.WriteString("\n")
	conf := ""
	if r.Confidence > 0 {
		conf = fmt.Sprintf("%.0f%%", r.Confidence*100)
	}
	b.WriteString(format.KeyValues([][2]string{
		{"Problem", r.Problem},
		{"Root cause", r.RootCause},
		{"Confidence", conf},
	}))
	section(&b, "Contributing factors:", format.Bullets(r.ContributingFactors))
	section(&b, "Recommended actions:", format.Bullets(r.RecommendedActions))
	section(&b, "References:", renderReferences(r.References))
	return b.String()
}

func renderSelection(s artifact.Selection, mode format.Mode) string {
	var b strings.Builder
	if s.Prompt != "" {
		b.WriteString(s.Prompt + "\n")
	}
	for i, opt := range s.Options {
		fmt.Fprintf(&b, "%d. %s", i+1, opt.Label)
		if opt.Description != "" {
			b.WriteString(" — " + opt.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderInfo(msg artifact.InfoMessage, mode format.Mode) string {
	var b strings.Builder
	if msg.Title != "" {
		b.WriteString(format.Heading(mode, msg.Title))
		b.WriteString("\n")
	}
	b.WriteString(msg.Message)
	if !strings.HasSuffix(msg.Message, "\n") {
		b.WriteString("\n")
	}
	section(&b, "Sources:", renderCitations(msg.Citations))
	return b.String()
}

func renderMulti(m artifact.MultiResponse, mode format.Mode) string {
	parts := make([]string, 0, len(m.Children))
	for _, c := range m.Children {
		parts = append(parts, Render(c, mode))
	}
	return strings.Join(parts, "\n")
}

// sortedKeys keeps specification table rendering deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
