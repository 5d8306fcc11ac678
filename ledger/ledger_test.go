package ledger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fullLedger() *Ledger {
	l := New()
	for i := 1; i <= 10; i++ {
		l.Add(i*100, "p")
	}
	return l
}

func TestIsHighscore(t *testing.T) {
	l := New()
	for _, p := range []int{0, -5, 1, 1000} {
		if !l.IsHighscore(p) {
			t.Errorf("Expected %d to qualify on an empty ledger", p)
		}
	}

	l = fullLedger()
	tests := []struct {
		points int
		want   bool
	}{
		{0, false},
		{99, false},
		{100, false}, // equal to 10th place
		{101, true},
		{5000, true},
	}
	for _, tt := range tests {
		if got := l.IsHighscore(tt.points); got != tt.want {
			t.Errorf("IsHighscore(%d): expected %v, got %v", tt.points, tt.want, got)
		}
	}
}

func TestAddSortsAndTruncates(t *testing.T) {
	l := New()
	l.Add(50, "bob")
	l.Add(200, "alice")
	l.Add(120, "carol")

	entries := l.Entries()
	if entries[0].Name != "alice" || entries[1].Name != "carol" || entries[2].Name != "bob" {
		t.Errorf("Unexpected order: %+v", entries)
	}

	l = fullLedger()
	l.Add(550, "mid")
	if l.Len() != 10 {
		t.Fatalf("Expected 10 entries, got %d", l.Len())
	}
	entries = l.Entries()
	if entries[9].Points != 200 {
		t.Errorf("Expected lowest score 200 after insert, got %d", entries[9].Points)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Points > entries[i-1].Points {
			t.Errorf("Entries not descending at %d: %+v", i, entries)
		}
	}
}

func TestAddKeepsTieOrder(t *testing.T) {
	l := New()
	l.Add(100, "first")
	l.Add(100, "second")

	if e := l.Entries(); e[0].Name != "first" {
		t.Errorf("Expected earlier entry to stay ahead on a tie, got %+v", e)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alice", "alice"},
		{"  bob  ", "bob"},
		{"verylongname", "verylong"},
		{"", "anon"},
		{"\x1b[31m", "[31m"},
		{"ÅÄÖåäöéü!", "ÅÄÖåäöéü"},
	}
	for _, tt := range tests {
		if got := CleanName(tt.in); got != tt.want {
			t.Errorf("CleanName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := New()
	l.Add(300, "zax")
	l.Add(150, "a,b")
	l.Add(150, `q"t`)
	l.Add(20, "åke")

	var buf bytes.Buffer
	if err := l.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := l.Entries()
	have := got.Entries()
	if len(have) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(have))
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want[i], have[i])
		}
	}
}

func TestEncodeDecodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Expected empty ledger, got %d entries", got.Len())
	}
}

// TestDecodeDetectsTampering flips each byte of the stored payload in turn
func TestDecodeDetectsTampering(t *testing.T) {
	l := New()
	l.Add(990, "mallory")
	l.Add(10, "eve")

	var buf bytes.Buffer
	if err := l.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	original := buf.Bytes()

	// Locate the payload region: everything after the scores key
	start := bytes.Index(original, []byte("scores:"))
	if start < 0 {
		t.Fatalf("scores key not found in:\n%s", original)
	}
	start += len("scores:")

	for i := start; i < len(original); i++ {
		if original[i] == '\n' || original[i] == ' ' {
			continue
		}
		tampered := make([]byte, len(original))
		copy(tampered, original)
		tampered[i] ^= 0x01

		if _, err := Decode(bytes.NewReader(tampered)); err == nil {
			t.Errorf("Expected tampering at byte %d (%q) to be detected", i, original[i])
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	valid := func() string {
		var buf bytes.Buffer
		l := New()
		l.Add(10, "ok")
		l.Encode(&buf)
		return buf.String()
	}()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"garbage", "\x00\x01not yaml: [", nil},
		{"unknown field", valid + "extra: 1\n", nil},
		{"bad version", strings.Replace(valid, "version: 1", "version: 2", 1), ErrVersion},
		{"bad checksum", strings.Replace(valid, "checksum: ", "checksum: 00", 1), ErrChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDecodeRejectsInvalidEntries(t *testing.T) {
	payload := "points,name\n-5,neg\n"
	data := "version: 1\nchecksum: " + checksum(payload) + "\nscores: |\n  points,name\n  -5,neg\n"

	_, err := Decode(strings.NewReader(data))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "scores.yaml"))

	if store.Exists() {
		t.Fatal("Expected no file before save")
	}

	l := New()
	l.Add(120, "alice")
	l.Add(40, "bob")

	if err := store.Save(l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !store.Exists() {
		t.Fatal("Expected file after save")
	}

	loaded := store.Load()
	if loaded.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", loaded.Len())
	}
	if e := loaded.Entries(); e[0] != (Entry{Points: 120, Name: "alice"}) || e[1] != (Entry{Points: 40, Name: "bob"}) {
		t.Errorf("Unexpected entries: %+v", e)
	}
}

func TestStoreLoadFailsSoft(t *testing.T) {
	dir := t.TempDir()

	// Missing file
	if l := NewStore(filepath.Join(dir, "missing.yaml")).Load(); l.Len() != 0 {
		t.Errorf("Expected empty ledger for missing file, got %d", l.Len())
	}

	// Corrupted file
	path := filepath.Join(dir, "corrupt.yaml")
	store := NewStore(path)
	l := New()
	l.Add(500, "alice")
	if err := store.Save(l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	data = bytes.Replace(data, []byte("500"), []byte("900"), 1)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if got := store.Load(); got.Len() != 0 {
		t.Errorf("Expected tampered ledger to load empty, got %+v", got.Entries())
	}
}

func TestStoreSaveFailure(t *testing.T) {
	dir := t.TempDir()

	// Parent path is a regular file, so the directory cannot be created
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewStore(filepath.Join(blocker, "scores.yaml"))
	if err := store.Save(New()); err == nil {
		t.Error("Expected save to fail when the parent is a file")
	}
}
