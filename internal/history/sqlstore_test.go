package history

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"foreman/internal/artifact"
)

func openTemp(t *testing.T) *SqlStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), ".foreman", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveGet(t *testing.T) {
	s := openTemp(t)

	rec := &Record{
		Query:   "pre-start checks for P-101",
		Kind:    artifact.KindChecklist,
		Source:  "explicit-tag",
		Payload: []byte(`{"kind":"checklist","data":{"title":"Pre-Start"}}`),
	}
	id, err := s.Save(rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == 0 {
		t.Fatal("Save returned zero ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Save should stamp CreatedAt")
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("record mismatch (-saved +got):\n%s", diff)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Get(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	s := openTemp(t)
	for _, k := range []artifact.Kind{artifact.KindWorkOrder, artifact.KindRCA, artifact.KindInfoMessage} {
		if _, err := s.Save(&Record{Kind: k, Source: "structural-signature", Payload: []byte(`{}`)}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	recs, err := s.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Kind != artifact.KindInfoMessage || recs[1].Kind != artifact.KindRCA {
		t.Errorf("order wrong: %s, %s", recs[0].Kind, recs[1].Kind)
	}
}

func TestReopen_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id, err := s.Save(&Record{Kind: artifact.KindSelection, Source: "fallback", Payload: []byte(`{}`)})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.Get(id)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Kind != artifact.KindSelection {
		t.Errorf("Kind = %s", got.Kind)
	}
}
