package store

import "github.com/drawkit/drawgo/shape"

// Pool is an append-only arena for variable-length record payloads.
// Records reference ranges of it by Span; ranges never move or shrink,
// so a span issued by Append stays valid for the life of the storage.
//
// Slice validates every span against the current pool length, because
// spans can arrive from deserialized or hand-constructed input: an
// out-of-range span yields an empty view, never an out-of-bounds read.
type Pool[T any] struct {
	items []T
}

// Append copies items into the pool and returns the span covering them.
func (p *Pool[T]) Append(items []T) shape.Span {
	off := uint32(len(p.items))
	p.items = append(p.items, items...)
	return shape.Span{Offset: off, Count: uint32(len(items))}
}

// Slice returns the range referenced by sp, or nil if sp is out of
// bounds. The returned slice aliases pool memory and must not be
// retained across appends.
func (p *Pool[T]) Slice(sp shape.Span) []T {
	end := uint64(sp.Offset) + uint64(sp.Count)
	if end > uint64(len(p.items)) {
		return nil
	}
	return p.items[sp.Offset:end:end]
}

// Len returns the number of elements in the pool.
func (p *Pool[T]) Len() int { return len(p.items) }

// All returns the full pool contents, for serialization.
func (p *Pool[T]) All() []T { return p.items }

// Reset replaces the pool contents wholesale, for deserialization.
func (p *Pool[T]) Reset(items []T) { p.items = items }
