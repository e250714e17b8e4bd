// Package export serializes canonical artifacts: JSON for storage and
// machine consumers, plain text (ASCII or Markdown) for humans. Export never
// mutates its input.
package export

import (
	"encoding/json"
	"fmt"

	"foreman/internal/artifact"
)

// Envelope is the stored form of an artifact: the kind tag makes the JSON
// self-describing so it can be decoded without guessing.
type Envelope struct {
	Kind artifact.Kind   `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Marshal encodes an artifact as a kind-tagged JSON envelope. MultiResponse
// children are themselves envelopes, recursively.
func Marshal(a artifact.Artifact) ([]byte, error) {
	env, err := toEnvelope(a)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(env, "", "  ")
}

func toEnvelope(a artifact.Artifact) (Envelope, error) {
	if multi, ok := a.(artifact.MultiResponse); ok {
		children := make([]Envelope, 0, len(multi.Children))
		for _, c := range multi.Children {
			env, err := toEnvelope(c)
			if err != nil {
				return Envelope{}, err
			}
			children = append(children, env)
		}
		data, err := json.Marshal(struct {
			Children []Envelope `json:"children"`
		}{children})
		if err != nil {
			return Envelope{}, fmt.Errorf("encode multi_response: %w", err)
		}
		return Envelope{Kind: artifact.KindMultiResponse, Data: data}, nil
	}

	data, err := json.Marshal(a)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s: %w", a.Kind(), err)
	}
	return Envelope{Kind: a.Kind(), Data: data}, nil
}

// Unmarshal decodes a kind-tagged envelope back into an artifact.
func Unmarshal(b []byte) (artifact.Artifact, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return fromEnvelope(env)
}

func fromEnvelope(env Envelope) (artifact.Artifact, error) {
	decode := func(dst any) error {
		if len(env.Data) == 0 {
			return nil
		}
		return json.Unmarshal(env.Data, dst)
	}

	switch env.Kind {
	case artifact.KindWorkOrder:
		var a artifact.WorkOrder
		return a, decode(&a)
	case artifact.KindLotoProcedure:
		var a artifact.LotoProcedure
		return a, decode(&a)
	case artifact.KindChecklist:
		var a artifact.Checklist
		return a, decode(&a)
	case artifact.KindEquipmentCard:
		var a artifact.EquipmentCard
		return a, decode(&a)
	case artifact.KindDynamicForm:
		var a artifact.DynamicForm
		return a, decode(&a)
	case artifact.KindImageCard:
		var a artifact.ImageCard
		return a, decode(&a)
	case artifact.KindResearch:
		var a artifact.ResearchResult
		return a, decode(&a)
	case artifact.KindDataTable:
		var a artifact.DataTable
		return a, decode(&a)
	case artifact.KindRCA:
		var a artifact.RCA
		return a, decode(&a)
	case artifact.KindSelection:
		var a artifact.Selection
		return a, decode(&a)
	case artifact.KindInfoMessage:
		var a artifact.InfoMessage
		return a, decode(&a)
	case artifact.KindMultiResponse:
		var wrapper struct {
			Children []Envelope `json:"children"`
		}
		if err := decode(&wrapper); err != nil {
			return nil, err
		}
		multi := artifact.MultiResponse{Children: make([]artifact.Artifact, 0, len(wrapper.Children))}
		for _, child := range wrapper.Children {
			c, err := fromEnvelope(child)
			if err != nil {
				return nil, err
			}
			multi.Children = append(multi.Children, c)
		}
		return multi, nil
	}
	return nil, fmt.Errorf("decode envelope: unknown kind %q", env.Kind)
}
