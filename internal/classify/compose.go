package classify

import (
	"fmt"
	"strings"

	"foreman/internal/artifact"
)

// Compose fans the pipeline out over the children of a multi-response
// container, preserving order and count: when children is non-empty the
// output length always equals len(children), because an unclassifiable child
// degrades to an InfoMessage instead of being dropped.
//
// When children is empty but the container carried citable source metadata
// (sources.manuals), exactly one citation message is synthesized: the query
// found source material even though it produced no structured answer. When
// both are empty, the result is empty and the caller owns the user-facing
// "no response available" text.
func Compose(children []any, sources Raw) []artifact.Artifact {
	if len(children) == 0 {
		if cite := citationFallback(sources); cite != nil {
			return []artifact.Artifact{*cite}
		}
		return []artifact.Artifact{}
	}

	out := make([]artifact.Artifact, 0, len(children))
	for _, child := range children {
		out = append(out, composeChild(child))
	}
	return out
}

// composeChild runs one child through Unwrap → Classify → Build. Total: every
// input yields an artifact.
func composeChild(child any) artifact.Artifact {
	m, ok := child.(map[string]any)
	if !ok {
		return artifact.InfoMessage{Message: asString(child)}
	}

	u, err := Unwrap(m)
	if err != nil {
		// A failed child inside a container is still presented, as text.
		return artifact.InfoMessage{Title: "Error", Message: err.Error()}
	}

	res := Classify(u)
	if res.Kind == artifact.KindMultiResponse {
		nested, _ := u.Data["responses"].([]any)
		return artifact.MultiResponse{Children: Compose(nested, u.Sources)}
	}
	return Build(res.Kind, u.Data)
}

// citationFallback builds the single synthesized message for an empty
// container with manual citations, or nil when there is nothing to cite.
func citationFallback(sources Raw) *artifact.InfoMessage {
	if sources == nil {
		return nil
	}
	manuals, _ := sources["manuals"].([]any)
	if len(manuals) == 0 {
		return nil
	}

	cites := make([]artifact.Citation, 0, len(manuals))
	var lines []string
	for _, m := range manuals {
		var c artifact.Citation
		switch t := m.(type) {
		case map[string]any:
			c = artifact.Citation{
				Title:   firstStr(t, "title", "name", "manual"),
				Page:    asInt(firstOf(t, "page", "page_number", "pageNumber")),
				Section: firstStr(t, "section", "chapter"),
			}
		default:
			c = artifact.Citation{Title: asString(m)}
		}
		cites = append(cites, c)
		if c.Page > 0 {
			lines = append(lines, fmt.Sprintf("%s p.%d", c.Title, c.Page))
		} else {
			lines = append(lines, c.Title)
		}
	}

	return &artifact.InfoMessage{
		Title: "Source Material Found",
		Message: fmt.Sprintf("No structured diagnosis was produced, but %d relevant source(s) were found:\n%s",
			len(cites), strings.Join(lines, "\n")),
		Citations: cites,
	}
}
