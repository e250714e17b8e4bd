package classify

import (
	"strings"
	"testing"

	"foreman/internal/artifact"
)

func TestCompose_CountPreserved(t *testing.T) {
	children := []any{
		map[string]any{"type": "checklist", "data": map[string]any{"title": "Pre-Start", "items": []any{"oil"}}},
		map[string]any{"answer": "bearing wear"},
		"bare string child",
		map[string]any{"success": false, "error": "child blew up"},
		float64(42),
	}
	got := Compose(children, nil)
	if len(got) != len(children) {
		t.Fatalf("len = %d, want %d (one artifact per child)", len(got), len(children))
	}

	if _, ok := got[0].(artifact.Checklist); !ok {
		t.Errorf("child 0 = %T, want Checklist", got[0])
	}
	if msg, ok := got[1].(artifact.InfoMessage); !ok || msg.Message != "bearing wear" {
		t.Errorf("child 1 = %#v, want InfoMessage with the answer text", got[1])
	}
	if msg, ok := got[2].(artifact.InfoMessage); !ok || msg.Message != "bare string child" {
		t.Errorf("child 2 = %#v, want InfoMessage wrapping the string", got[2])
	}
	if msg, ok := got[3].(artifact.InfoMessage); !ok || msg.Title != "Error" {
		t.Errorf("child 3 = %#v, want error InfoMessage", got[3])
	} else if !strings.Contains(msg.Message, "child blew up") {
		t.Errorf("child 3 message = %q, want upstream text preserved", msg.Message)
	}
}

func TestCompose_NestedContainer(t *testing.T) {
	children := []any{
		map[string]any{
			"type": "multi_response",
			"responses": []any{
				map[string]any{"message": "inner"},
			},
		},
	}
	got := Compose(children, nil)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	multi, ok := got[0].(artifact.MultiResponse)
	if !ok {
		t.Fatalf("got %T, want nested MultiResponse", got[0])
	}
	if len(multi.Children) != 1 {
		t.Fatalf("nested len = %d, want 1", len(multi.Children))
	}
	if msg, ok := multi.Children[0].(artifact.InfoMessage); !ok || msg.Message != "inner" {
		t.Errorf("nested child = %#v, want inner InfoMessage", multi.Children[0])
	}
}

func TestCompose_EmptyWithCitations(t *testing.T) {
	sources := Raw{"manuals": []any{
		map[string]any{"title": "Manual A", "page": float64(12)},
	}}
	got := Compose(nil, sources)
	if len(got) != 1 {
		t.Fatalf("len = %d, want exactly one synthesized message", len(got))
	}
	msg, ok := got[0].(artifact.InfoMessage)
	if !ok {
		t.Fatalf("got %T, want InfoMessage", got[0])
	}
	if msg.Title != "Source Material Found" {
		t.Errorf("Title = %q", msg.Title)
	}
	if !strings.Contains(msg.Message, "Manual A p.12") {
		t.Errorf("Message = %q, want the citation line", msg.Message)
	}
	if len(msg.Citations) != 1 || msg.Citations[0].Title != "Manual A" || msg.Citations[0].Page != 12 {
		t.Errorf("Citations = %#v", msg.Citations)
	}
}

func TestCompose_EmptyWithoutCitations(t *testing.T) {
	if got := Compose(nil, nil); len(got) != 0 {
		t.Errorf("len = %d, want empty", len(got))
	}
	if got := Compose(nil, Raw{"manuals": []any{}}); len(got) != 0 {
		t.Errorf("len = %d, want empty for empty manuals", len(got))
	}
}
