package budget

import (
	"fmt"
	"path/filepath"
)

// PersistenceError reports that the durable medium rejected an operation.
// The in-memory model and the previously persisted documents are untouched
// when it is returned; callers surface it to the user and must not drop the
// data silently.
type PersistenceError struct {
	Op  string // "load", "save settings", "append"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store is the durable home of the two documents: the settings singleton
// and the ordered transaction log. Writes are synchronous: when SaveSettings
// or Append returns nil the data is on the medium; when it returns a
// *PersistenceError the persisted state is exactly what it was before.
type Store interface {
	// Load reads both documents, falling back to DefaultSettings and an
	// empty ledger on first run.
	Load() (Settings, *Ledger, error)
	// SaveSettings replaces the settings document.
	SaveSettings(Settings) error
	// Append adds one validated transaction to the log.
	Append(Transaction) error
	Close() error
}

// StoreKind selects the storage backend.
type StoreKind string

const (
	FileStoreKind   StoreKind = "file"
	SQLiteStoreKind StoreKind = "sqlite"
)

// OpenStore is the backend factory: "file" keeps two plain documents under
// the data directory, "sqlite" a single database file inside it.
func OpenStore(kind StoreKind, dataPath string) (Store, error) {
	switch kind {
	case FileStoreKind, "":
		return NewFileStore(dataPath)
	case SQLiteStoreKind:
		return NewSQLiteStore(filepath.Join(dataPath, "budget.db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file or sqlite)", kind)
	}
}
