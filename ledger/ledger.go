// Package ledger keeps the top-N high score list and its checksummed file form.
package ledger

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lixenwraith/wurm/constants"
)

// Entry is one high score
type Entry struct {
	Points int    `csv:"points"`
	Name   string `csv:"name"`
}

// Ledger is a descending list of at most constants.LedgerCapacity entries
type Ledger struct {
	entries []Entry
}

// New returns an empty ledger
func New() *Ledger {
	return &Ledger{entries: make([]Entry, 0, constants.LedgerCapacity)}
}

// Entries returns a copy of the list, best first
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// IsHighscore reports whether points would earn a place in the list
func (l *Ledger) IsHighscore(points int) bool {
	if len(l.entries) < constants.LedgerCapacity {
		return true
	}
	return points > l.entries[len(l.entries)-1].Points
}

// Add inserts an entry, keeps the list sorted and drops whatever falls off the end
func (l *Ledger) Add(points int, name string) {
	l.entries = append(l.entries, Entry{Points: points, Name: CleanName(name)})

	// Stable keeps earlier holders of a tied score ahead of newcomers
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Points > l.entries[j].Points
	})

	if len(l.entries) > constants.LedgerCapacity {
		l.entries = l.entries[:constants.LedgerCapacity]
	}
}

// CleanName strips control characters, trims and truncates a player name
func CleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	runes := []rune(name)
	if len(runes) > constants.LedgerNameLimit {
		runes = runes[:constants.LedgerNameLimit]
		name = strings.TrimSpace(string(runes))
	}
	if name == "" {
		return constants.LedgerAnonName
	}
	return name
}
