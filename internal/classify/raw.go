// Package classify turns loosely-typed assistant responses into canonical
// artifacts. The pipeline is Unwrap → Classify → Build (fanned out per child
// for multi-responses); every stage is a pure, total function over its input.
package classify

import "strconv"

// Raw is an untyped JSON object as decoded by encoding/json.
type Raw = map[string]any

// asString renders a scalar as a string. Maps and slices yield "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	}
	return ""
}

// asInt extracts an integer from a JSON number or numeric string.
func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	}
	return 0
}

// asFloat extracts a float from a JSON number or numeric string.
func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	}
	return 0
}

// asBool interprets JSON booleans and the usual string spellings.
func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch t {
		case "true", "True", "yes", "Yes", "y", "1", "required":
			return true
		}
	case float64:
		return t != 0
	}
	return false
}

// str returns the string value of a field, or "" when absent or non-string-like.
func str(m Raw, key string) string {
	if m == nil {
		return ""
	}
	return asString(m[key])
}

// firstStr returns the first non-empty string among the given keys.
func firstStr(m Raw, keys ...string) string {
	for _, k := range keys {
		if s := str(m, k); s != "" {
			return s
		}
	}
	return ""
}

// has reports whether any of the keys is present in m (null counts as present).
func has(m Raw, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// subMap returns a child object, or nil when the field is absent or not an object.
func subMap(m Raw, key string) Raw {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

// nonEmptySeq reports whether the field holds an array with at least one element.
func nonEmptySeq(m Raw, key string) bool {
	s, ok := m[key].([]any)
	return ok && len(s) > 0
}
