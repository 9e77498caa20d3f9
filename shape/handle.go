package shape

import "errors"

// Handle is the opaque identifier clients hold instead of pointers:
// the kind tag in the top 8 bits, the table index in the low 24. The
// zero Handle has KindNone and is never issued for a real record.
//
// A handle stays valid for the lifetime of the storage instance that
// issued it; it is not portable across instances or process restarts
// except through the binary codec, which preserves indices exactly.
type Handle uint32

// MaxIndex is the hard per-kind capacity ceiling: 16,777,215 records.
// Insertion past it fails with ErrCapacityExceeded rather than wrapping
// into an existing handle.
const MaxIndex = 1<<24 - 1

// ErrCapacityExceeded is returned when a kind table has exhausted its
// 24-bit index space.
var ErrCapacityExceeded = errors.New("shape: table capacity exceeded (16777215 records per kind)")

// MakeHandle packs kind and index into a handle. Indices above MaxIndex
// are rejected at the call site.
func MakeHandle(kind Kind, index uint32) (Handle, error) {
	if index > MaxIndex {
		return 0, ErrCapacityExceeded
	}
	return Handle(uint32(kind)<<24 | index), nil
}

// Kind returns the kind tag encoded in h.
func (h Handle) Kind() Kind { return Kind(h >> 24) }

// Index returns the table index encoded in h.
func (h Handle) Index() uint32 { return uint32(h) & MaxIndex }

// IsNone reports whether h is the reserved "no shape" handle.
func (h Handle) IsNone() bool { return h.Kind() == KindNone }
