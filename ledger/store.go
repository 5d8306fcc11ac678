package ledger

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store handles save/load of the ledger file
type Store struct {
	path string
}

// NewStore creates a store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the ledger file path
func (s *Store) Path() string {
	return s.path
}

// Exists checks if a ledger file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the ledger, falling back to an empty one when the file is
// missing, unreadable, malformed or fails its checksum
func (s *Store) Load() *Ledger {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("ledger: open %s: %v, starting empty", s.path, err)
		}
		return New()
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		log.Printf("ledger: %s rejected: %v, starting empty", s.path, err)
		return New()
	}
	return l
}

// Save writes the ledger through a temp file and rename so a failed write
// never truncates the previous file
func (s *Store) Save(l *Ledger) error {
	var buf bytes.Buffer
	if err := l.Encode(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wurm-ledger-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing ledger: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}
