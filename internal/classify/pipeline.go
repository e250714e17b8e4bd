package classify

import (
	"encoding/json"

	"foreman/internal/artifact"
)

// Result is the pipeline output for one response: the canonical artifact plus
// the classification verdict that produced it.
type Result struct {
	Artifact       artifact.Artifact
	Classification ClassificationResult
}

// Transform decodes a raw response body and runs it through the pipeline.
// The only errors are a body that is not JSON (*DecodeError) and the explicit
// upstream failure contract (*UpstreamError); every other input produces an
// artifact.
func Transform(body []byte) (Result, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return Result{}, &DecodeError{Err: err}
	}

	m, ok := v.(map[string]any)
	if !ok {
		// Non-object JSON (bare string, number, array). Still renderable.
		return Result{
			Artifact:       artifact.InfoMessage{Message: stringify(v)},
			Classification: ClassificationResult{Kind: artifact.KindInfoMessage, Source: SourceFallback},
		}, nil
	}
	return TransformRaw(m)
}

// TransformRaw runs a decoded response object through Unwrap → Classify →
// Build, fanning out through the composer for multi-responses.
func TransformRaw(raw Raw) (Result, error) {
	u, err := Unwrap(raw)
	if err != nil {
		return Result{}, err
	}

	res := Classify(u)
	if res.Kind == artifact.KindMultiResponse {
		children, _ := u.Data["responses"].([]any)
		return Result{
			Artifact:       artifact.MultiResponse{Children: Compose(children, u.Sources)},
			Classification: res,
		}, nil
	}

	return Result{Artifact: Build(res.Kind, u.Data), Classification: res}, nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
