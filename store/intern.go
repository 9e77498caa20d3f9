package store

import (
	"fmt"

	"github.com/drawkit/drawgo/shape"
)

// Intern is a deduplicating string pool. Interning the same string
// twice returns the same id; ids are dense, stable for the storage's
// lifetime and never reused, so they can be persisted as-is.
type Intern struct {
	strings []string
	index   map[string]shape.ID
}

// Intern returns the id of s, adding it to the pool if new.
func (in *Intern) Intern(s string) shape.ID {
	if id, ok := in.index[s]; ok {
		return id
	}
	if in.index == nil {
		in.index = make(map[string]shape.ID)
	}
	id := shape.ID(len(in.strings))
	in.strings = append(in.strings, s)
	in.index[s] = id
	return id
}

// Resolve returns the string for id. The sentinel shape.NoID resolves
// to the empty "unnamed" fallback; any other id never issued by this
// pool is an error.
func (in *Intern) Resolve(id shape.ID) (string, error) {
	if id == shape.NoID {
		return "", nil
	}
	if uint32(id) >= uint32(len(in.strings)) {
		return "", fmt.Errorf("%w: intern id %d out of range", ErrNotFound, id)
	}
	return in.strings[id], nil
}

// Lookup returns the id of s without interning it.
func (in *Intern) Lookup(s string) (shape.ID, bool) {
	id, ok := in.index[s]
	return id, ok
}

// Len returns the number of distinct strings in the pool.
func (in *Intern) Len() int { return len(in.strings) }

// All returns the pool contents in id order, for serialization.
func (in *Intern) All() []string { return in.strings }

// Reset replaces the pool contents wholesale and rebuilds the lookup
// index, for deserialization.
func (in *Intern) Reset(strings []string) {
	in.strings = strings
	in.index = make(map[string]shape.ID, len(strings))
	for i, s := range strings {
		// First occurrence wins so existing ids keep resolving.
		if _, ok := in.index[s]; !ok {
			in.index[s] = shape.ID(i)
		}
	}
}
