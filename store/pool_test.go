package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

func TestPool_AppendSlice(t *testing.T) {
	var p Pool[geom.Point]

	sp1 := p.Append([]geom.Point{{X: 1}, {X: 2}})
	sp2 := p.Append([]geom.Point{{X: 3}})

	assert.Equal(t, shape.Span{Offset: 0, Count: 2}, sp1)
	assert.Equal(t, shape.Span{Offset: 2, Count: 1}, sp2)

	got := p.Slice(sp1)
	assert.Equal(t, []geom.Point{{X: 1}, {X: 2}}, got)

	// Earlier spans survive later appends.
	p.Append([]geom.Point{{X: 4}, {X: 5}})
	assert.Equal(t, []geom.Point{{X: 3}}, p.Slice(sp2))
}

func TestPool_SliceValidation(t *testing.T) {
	var p Pool[float32]
	p.Append([]float32{1, 2, 3})

	tests := []struct {
		name string
		sp   shape.Span
		ok   bool
	}{
		{name: "full", sp: shape.Span{Offset: 0, Count: 3}, ok: true},
		{name: "empty at end", sp: shape.Span{Offset: 3, Count: 0}, ok: true},
		{name: "count past end", sp: shape.Span{Offset: 2, Count: 2}, ok: false},
		{name: "offset past end", sp: shape.Span{Offset: 4, Count: 0}, ok: false},
		{name: "u32 overflow", sp: shape.Span{Offset: 1<<32 - 1, Count: 2}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Slice(tt.sp)
			if tt.ok {
				assert.Len(t, got, int(tt.sp.Count))
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestPool_EmptyAppend(t *testing.T) {
	var p Pool[uint32]
	sp := p.Append(nil)
	assert.Equal(t, shape.Span{Offset: 0, Count: 0}, sp)
	assert.Len(t, p.Slice(sp), 0)
}
