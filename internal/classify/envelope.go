package classify

import "fmt"

// Unwrapped is the {type?, data} pair the classifier consumes after the
// transport envelope has been stripped.
type Unwrapped struct {
	// Type is the explicit type tag, or "" when the payload carried none.
	Type string
	// Data is the payload body. Never nil for a non-nil input.
	Data Raw
	// Sources carries citable source metadata found next to the payload
	// (used by the composer's empty-with-citations fallback).
	Sources Raw
}

// UpstreamError is the recognized top-level failure contract:
// {success:false, error}. It short-circuits classification entirely and the
// message is surfaced verbatim.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "upstream error"
	}
	return e.Message
}

// Unwrap strips the outer transport envelope. Precedence, first satisfied
// wins:
//
//  1. top-level {type, data}
//  2. nested {response: {type, data}}
//  3. top-level {type: "multi_response", responses: [...]}
//  4. nested {response: {type: "multi_response", responses: [...]}}
//  5. no recognizable envelope: the raw object passes through untyped
//
// Shapes 1/2 go first because some payloads put responses as a sibling of
// type instead of under data; preferring the richer data-carrying shape
// avoids losing a populated data.responses to an empty top-level one.
//
// A {success:false, error} body returns *UpstreamError instead.
func Unwrap(raw Raw) (Unwrapped, error) {
	if raw == nil {
		return Unwrapped{Data: Raw{}}, nil
	}

	if success, ok := raw["success"].(bool); ok && !success {
		return Unwrapped{}, &UpstreamError{Message: str(raw, "error")}
	}

	nested := subMap(raw, "response")

	if u, ok := typeDataShape(raw); ok {
		return u, nil
	}
	if u, ok := typeDataShape(nested); ok {
		return u, nil
	}
	if u, ok := multiShape(raw); ok {
		return u, nil
	}
	if u, ok := multiShape(nested); ok {
		return u, nil
	}

	return Unwrapped{Data: raw, Sources: sourcesOf(raw, nil)}, nil
}

// typeDataShape recognizes {type, data} at one nesting level.
func typeDataShape(m Raw) (Unwrapped, bool) {
	tag, hasType := m["type"].(string)
	if !hasType {
		return Unwrapped{}, false
	}
	data := subMap(m, "data")
	if data == nil {
		return Unwrapped{}, false
	}
	return Unwrapped{Type: tag, Data: data, Sources: sourcesOf(m, data)}, true
}

// multiShape recognizes {type: "multi_response", responses: [...]}, the
// layout where responses sits next to type instead of under data.
func multiShape(m Raw) (Unwrapped, bool) {
	if tag, _ := m["type"].(string); tag != "multi_response" {
		return Unwrapped{}, false
	}
	if responses, ok := m["responses"].([]any); ok {
		return Unwrapped{
			Type:    "multi_response",
			Data:    Raw{"responses": responses},
			Sources: sourcesOf(m, nil),
		}, true
	}
	// Tagged multi_response with neither data nor responses: an empty
	// container; the composer decides between the citation fallback and
	// nothing at all.
	return Unwrapped{Type: "multi_response", Data: Raw{}, Sources: sourcesOf(m, nil)}, true
}

// sourcesOf finds citable source metadata on the envelope or the payload.
func sourcesOf(outer, data Raw) Raw {
	if s := subMap(outer, "sources"); s != nil {
		return s
	}
	return subMap(data, "sources")
}

// DecodeError wraps a JSON decode failure at the pipeline boundary.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode response: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }
