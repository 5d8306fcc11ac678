package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/lixenwraith/wurm/constants"
	"gopkg.in/yaml.v3"
)

var (
	ErrVersion  = errors.New("ledger: unsupported version")
	ErrChecksum = errors.New("ledger: checksum mismatch")
	ErrInvalid  = errors.New("ledger: invalid entries")
)

// record is the persisted form. Scores holds the canonical payload verbatim so
// the checksum covers exactly the bytes on disk.
type record struct {
	Version  int    `yaml:"version"`
	Checksum string `yaml:"checksum"`
	Scores   string `yaml:"scores"`
}

// encodePayload renders entries as CSV; an empty list is the empty string
func encodePayload(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	data, err := gocsv.MarshalBytes(&entries)
	if err != nil {
		return "", fmt.Errorf("encoding scores: %w", err)
	}
	return string(data), nil
}

func decodePayload(payload string) ([]Entry, error) {
	var entries []Entry
	if payload == "" {
		return entries, nil
	}
	if err := gocsv.UnmarshalBytes([]byte(payload), &entries); err != nil {
		return nil, fmt.Errorf("decoding scores: %w", err)
	}
	return entries, nil
}

func checksum(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Encode writes the ledger as a versioned, checksummed record
func (l *Ledger) Encode(w io.Writer) error {
	payload, err := encodePayload(l.entries)
	if err != nil {
		return err
	}

	rec := record{
		Version:  constants.LedgerVersion,
		Checksum: checksum(payload),
		Scores:   payload,
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&rec); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return enc.Close()
}

// Decode reads a record, verifying version, checksum and entry limits
func Decode(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}

	var rec record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}

	if rec.Version != constants.LedgerVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	if rec.Checksum != checksum(rec.Scores) {
		return nil, ErrChecksum
	}

	entries, err := decodePayload(rec.Scores)
	if err != nil {
		return nil, err
	}
	if err := validate(entries); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	if len(entries) > constants.LedgerCapacity {
		entries = entries[:constants.LedgerCapacity]
	}

	return &Ledger{entries: entries}, nil
}

func validate(entries []Entry) error {
	for i, e := range entries {
		if e.Points < 0 {
			return fmt.Errorf("%w: entry %d has negative points", ErrInvalid, i)
		}
		if e.Name == "" || utf8.RuneCountInString(e.Name) > constants.LedgerNameLimit {
			return fmt.Errorf("%w: entry %d has bad name %q", ErrInvalid, i, e.Name)
		}
	}
	return nil
}
