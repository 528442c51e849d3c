package resources

import (
	"errors"
	"fmt"
)

// EntriesPerSlot is the number of resource ids each slot covers.
const EntriesPerSlot = 1 << 16

// ErrNotFound is returned when a resource id has no entry.
var ErrNotFound = errors.New("resource id not found")

// Resolver maps a resource id to its localized display string.
type Resolver interface {
	Lookup(id int) (string, error)
}

// SlotOf returns the slot number a resource id lives in. Slot numbers line
// up with the Session DLL index: 0 is the executable, 1+ the declared DLLs.
func SlotOf(id int) int {
	return id / EntriesPerSlot
}

// IndexOf returns the entry index of a resource id within its slot.
func IndexOf(id int) int {
	return id % EntriesPerSlot
}

// TableResolver resolves from an in-memory table. Useful for tests and for
// tools that pre-extract strings out of band.
type TableResolver map[int]string

// Lookup implements Resolver.
func (t TableResolver) Lookup(id int) (string, error) {
	s, ok := t[id]
	if !ok {
		return "", fmt.Errorf("id %d (slot %d, index %d): %w", id, SlotOf(id), IndexOf(id), ErrNotFound)
	}
	return s, nil
}

// Memo wraps a Resolver and caches successful lookups for the process
// lifetime. Not safe for concurrent use.
type Memo struct {
	inner Resolver
	cache map[int]string
}

// NewMemo creates a memoizing wrapper around r.
func NewMemo(r Resolver) *Memo {
	return &Memo{inner: r, cache: make(map[int]string)}
}

// Lookup implements Resolver.
func (m *Memo) Lookup(id int) (string, error) {
	if s, ok := m.cache[id]; ok {
		return s, nil
	}
	s, err := m.inner.Lookup(id)
	if err != nil {
		return "", err
	}
	m.cache[id] = s
	return s, nil
}
