// Package ustring provides the string interning and hashing facility that
// backs the string and ustringhash base kinds. Typed buffers never hold Go
// strings directly; they hold an 8-byte Handle (for strings) or an 8-byte
// Hash (for string hashes) that resolve through a Table.
package ustring

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Handle identifies an interned string. The zero Handle is the empty string.
type Handle uint64

// Hash is the 64-bit hash of a string.
type Hash uint64

// Table interns strings and remembers the strings behind every hash it has
// produced. It is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	strs   []string
	index  map[string]Handle
	byHash map[Hash]string
}

// Default is the process-wide table used by the package-level helpers in
// pkg/typeconv.
var Default = NewTable()

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		strs:   []string{""},
		index:  map[string]Handle{"": 0},
		byHash: make(map[Hash]string),
	}
}

// HashString returns the hash of s without recording it in any table.
func HashString(s string) Hash {
	return Hash(xxhash.Sum64String(s))
}

// Intern returns the handle for s, adding it to the table on first use.
func (t *Table) Intern(s string) Handle {
	t.mu.RLock()
	h, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return h
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if h, ok := t.index[s]; ok {
		return h
	}
	h = Handle(len(t.strs))
	t.strs = append(t.strs, s)
	t.index[s] = h
	return h
}

// Lookup returns the string behind h.
func (t *Table) Lookup(h Handle) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if uint64(h) >= uint64(len(t.strs)) {
		return "", false
	}
	return t.strs[h], true
}

// Hash returns the hash of s and records s so Unhash can recover it.
func (t *Table) Hash(s string) Hash {
	h := HashString(s)

	t.mu.RLock()
	_, ok := t.byHash[h]
	t.mu.RUnlock()
	if ok {
		return h
	}

	t.mu.Lock()
	t.byHash[h] = s
	t.mu.Unlock()
	return h
}

// Unhash returns the string that produced h, if this table has seen it.
func (t *Table) Unhash(h Hash) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.byHash[h]
	return s, ok
}

// Len returns the number of interned strings, including the empty string.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strs)
}
