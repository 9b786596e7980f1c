package budget

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	settingsFile = "settings.json"
	ledgerFile   = "transactions.jsonl"
)

// FileStore persists the two documents as plain files under a data
// directory: settings.json and transactions.jsonl. Every write goes to a
// staging file first and is moved into place with an atomic rename, so a
// failed write never corrupts the previous document.
type FileStore struct {
	dir string
}

// NewFileStore opens (and creates if needed) the data directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("could not create data directory %q: %w", dir, err)}
	}
	return &FileStore{dir: dir}, nil
}

// Load reads both documents. A missing file means first run: default
// settings and an empty ledger.
func (s *FileStore) Load() (Settings, *Ledger, error) {
	settings, err := s.loadSettings()
	if err != nil {
		return Settings{}, nil, err
	}
	ledger, err := s.loadLedger()
	if err != nil {
		return Settings{}, nil, err
	}
	return settings, ledger, nil
}

func (s *FileStore) loadSettings() (Settings, error) {
	f, err := os.Open(filepath.Join(s.dir, settingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, &PersistenceError{Op: "load", Err: err}
	}
	defer f.Close()

	settings, err := DecodeSettings(f)
	if err != nil {
		return Settings{}, &PersistenceError{Op: "load", Err: err}
	}
	return settings, nil
}

func (s *FileStore) loadLedger() (*Ledger, error) {
	f, err := os.Open(filepath.Join(s.dir, ledgerFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return ledger, nil
}

// SaveSettings replaces the settings document atomically.
func (s *FileStore) SaveSettings(settings Settings) error {
	var buf bytes.Buffer
	if err := EncodeSettings(&buf, settings); err != nil {
		return &PersistenceError{Op: "save settings", Err: err}
	}
	if err := s.replace(settingsFile, buf.Bytes()); err != nil {
		return &PersistenceError{Op: "save settings", Err: err}
	}
	return nil
}

// Append adds one transaction to the log. The whole log is re-encoded
// through the staging file: either the new document fully replaces the old
// one or the old one is left exactly as it was.
func (s *FileStore) Append(tx Transaction) error {
	ledger, err := s.loadLedger()
	if err != nil {
		return err
	}
	if err := ledger.Append(tx); err != nil {
		return &PersistenceError{Op: "append", Err: err}
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		return &PersistenceError{Op: "append", Err: err}
	}
	if err := s.replace(ledgerFile, buf.Bytes()); err != nil {
		return &PersistenceError{Op: "append", Err: err}
	}
	return nil
}

// replace writes data to a staging file next to the target and renames it
// into place.
func (s *FileStore) replace(name string, data []byte) error {
	target := filepath.Join(s.dir, name)
	staging := target + ".tmp"
	if err := os.WriteFile(staging, data, 0644); err != nil {
		return fmt.Errorf("could not write staging file %q: %w", staging, err)
	}
	if err := os.Rename(staging, target); err != nil {
		// best effort cleanup, the previous document is still intact
		os.Remove(staging)
		return fmt.Errorf("could not replace %q: %w", target, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
