// Package history persists classified artifacts so past answers can be
// listed and re-rendered without asking the assistant again.
package history

import (
	"time"

	"foreman/internal/artifact"
)

// DefaultDBPath is the default relative path for the SQLite DB. Open()
// creates the parent dir (e.g. .foreman).
const DefaultDBPath = ".foreman/history.db"

// Record is one stored classification outcome. Payload holds the artifact as
// a kind-tagged export envelope, so a record round-trips through the same
// codec as `export`.
type Record struct {
	ID        int64
	CreatedAt time.Time
	Query     string
	Kind      artifact.Kind
	Source    string
	Payload   []byte
}

// Store is the persistence facade. CLI code uses only this interface.
type Store interface {
	Save(rec *Record) (int64, error)
	Get(id int64) (*Record, error)
	// List returns the most recent records, newest first.
	List(limit int) ([]*Record, error)
	Close() error
}
