package classify

import "foreman/internal/artifact"

// Element coercions. Upstream list elements arrive either as bare strings or
// as objects with their own aliased keys; each helper accepts both. Absent
// fields yield nil slices so builders keep the missing/empty distinction.

func seqOf(d Raw, key string) []any {
	s, _ := d[key].([]any)
	return s
}

// strSlice renders each element of a sequence field as a string. Object
// elements contribute their most descriptive field.
func strSlice(d Raw, key string) []string {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			out = append(out, firstStr(m, "name", "description", "text", "item", "step"))
			continue
		}
		out = append(out, asString(el))
	}
	return out
}

func partsOf(d Raw, key string) []artifact.Part {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.Part, 0, len(raw))
	for _, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			out = append(out, artifact.Part{
				Number:      firstStr(t, "number", "part_number", "partNumber"),
				Description: firstStr(t, "description", "name"),
				Quantity:    asInt(firstOf(t, "quantity", "qty")),
			})
		default:
			out = append(out, artifact.Part{Description: asString(el)})
		}
	}
	return out
}

func stepsOf(d Raw, key string) []artifact.Step {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.Step, 0, len(raw))
	for i, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			step := artifact.Step{
				Number:      asInt(firstOf(t, "number", "step_number", "stepNumber")),
				Instruction: firstStr(t, "instruction", "description", "text", "step"),
				Warning:     firstStr(t, "warning", "caution"),
				Duration:    firstStr(t, "duration", "estimated_duration", "estimatedDuration"),
			}
			if step.Number == 0 {
				step.Number = i + 1
			}
			out = append(out, step)
		default:
			out = append(out, artifact.Step{Number: i + 1, Instruction: asString(el)})
		}
	}
	return out
}

func checkpointsOf(d Raw, key string) []artifact.Checkpoint {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.Checkpoint, 0, len(raw))
	for _, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			out = append(out, artifact.Checkpoint{
				Description: firstStr(t, "description", "name", "checkpoint", "text"),
				Criteria:    firstStr(t, "criteria", "acceptance_criteria", "acceptanceCriteria"),
			})
		default:
			out = append(out, artifact.Checkpoint{Description: asString(el)})
		}
	}
	return out
}

func referencesOf(d Raw, key string) []artifact.Reference {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.Reference, 0, len(raw))
	for _, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			out = append(out, artifact.Reference{
				Title: firstStr(t, "title", "document", "name", "manual"),
				Page:  asInt(firstOf(t, "page", "page_number", "pageNumber")),
				URL:   firstStr(t, "url", "link"),
			})
		default:
			out = append(out, artifact.Reference{Title: asString(el)})
		}
	}
	return out
}

func citationsOf(d Raw, key string) []artifact.Citation {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.Citation, 0, len(raw))
	for _, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			out = append(out, artifact.Citation{
				Title:   firstStr(t, "title", "document", "name", "manual"),
				Page:    asInt(firstOf(t, "page", "page_number", "pageNumber")),
				Section: firstStr(t, "section", "chapter"),
				URL:     firstStr(t, "url", "link"),
			})
		default:
			out = append(out, artifact.Citation{Title: asString(el)})
		}
	}
	return out
}

func isolationPointsOf(d Raw, key string) []artifact.IsolationPoint {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.IsolationPoint, 0, len(raw))
	for i, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			pt := artifact.IsolationPoint{
				Number:       asInt(firstOf(t, "number", "point_number", "pointNumber")),
				Description:  firstStr(t, "description", "location", "point", "text"),
				EnergyType:   firstStr(t, "energy_type", "energyType", "energy"),
				Method:       firstStr(t, "method", "device", "isolation_method", "isolationMethod"),
				Verification: firstStr(t, "verification", "verify"),
			}
			if pt.Number == 0 {
				pt.Number = i + 1
			}
			out = append(out, pt)
		default:
			out = append(out, artifact.IsolationPoint{Number: i + 1, Description: asString(el)})
		}
	}
	return out
}

func checklistItemsOf(d Raw, key string) []artifact.ChecklistItem {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.ChecklistItem, 0, len(raw))
	for _, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			out = append(out, artifact.ChecklistItem{
				Text:     firstStr(t, "text", "item", "description", "name"),
				Required: asBool(firstOf(t, "required", "mandatory")),
				Note:     firstStr(t, "note", "comment"),
			})
		default:
			out = append(out, artifact.ChecklistItem{Text: asString(el)})
		}
	}
	return out
}

func formFieldsOf(d Raw, key string) []artifact.FormField {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.FormField, 0, len(raw))
	for _, el := range raw {
		m, ok := el.(map[string]any)
		if !ok {
			// A bare string is a free-text field named after itself.
			name := asString(el)
			out = append(out, artifact.FormField{Name: name, Label: name, Type: "text"})
			continue
		}
		f := artifact.FormField{
			Name:     firstStr(m, "name", "id", "key"),
			Label:    firstStr(m, "label", "title"),
			Type:     firstStr(m, "type", "input_type", "inputType"),
			Required: asBool(firstOf(m, "required", "mandatory")),
			Default:  firstStr(m, "default", "value"),
		}
		if opts, ok := m["options"].([]any); ok {
			for _, o := range opts {
				f.Options = append(f.Options, asString(o))
			}
		}
		if f.Label == "" {
			f.Label = f.Name
		}
		if f.Type == "" {
			f.Type = "text"
		}
		out = append(out, f)
	}
	return out
}

func optionsOf(d Raw, key string) []artifact.Option {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([]artifact.Option, 0, len(raw))
	for _, el := range raw {
		switch t := el.(type) {
		case map[string]any:
			opt := artifact.Option{
				Value:       firstStr(t, "value", "id", "key"),
				Label:       firstStr(t, "label", "text", "name", "title"),
				Description: firstStr(t, "description"),
			}
			if opt.Value == "" {
				opt.Value = opt.Label
			}
			if opt.Label == "" {
				opt.Label = opt.Value
			}
			out = append(out, opt)
		default:
			s := asString(el)
			out = append(out, artifact.Option{Value: s, Label: s})
		}
	}
	return out
}

func specsOf(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		out[k] = asString(val)
	}
	return out
}

func rowsOf(d Raw, key string) [][]string {
	raw := seqOf(d, key)
	if raw == nil {
		return nil
	}
	out := make([][]string, 0, len(raw))
	for _, el := range raw {
		cells, ok := el.([]any)
		if !ok {
			out = append(out, []string{asString(el)})
			continue
		}
		row := make([]string, 0, len(cells))
		for _, c := range cells {
			row = append(row, asString(c))
		}
		out = append(out, row)
	}
	return out
}

// firstOf returns the value of the first present key.
func firstOf(m Raw, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}
