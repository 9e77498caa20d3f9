package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

func TestBoundingBox_Primitives(t *testing.T) {
	s := New()

	c, err := s.InsertCircle(geom.Point{X: 10, Y: 10}, 5)
	require.NoError(t, err)
	box, ok := s.BoundingBox(c)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}, box)

	r, err := s.InsertRectangle(1, 2, 3, 4, 0)
	require.NoError(t, err)
	box, ok = s.BoundingBox(r)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}, box)

	l, err := s.InsertLine(10, 0, 0, 10, shape.StyleSolid)
	require.NoError(t, err)
	box, ok = s.BoundingBox(l)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, box)
}

func TestBoundingBox_ConservativeApproximations(t *testing.T) {
	s := New()

	// Rotated ellipse: max-radius square around the center.
	e, err := s.InsertEllipse(geom.Point{X: 0, Y: 0}, 10, 4, float32(math.Pi/4))
	require.NoError(t, err)
	box, ok := s.BoundingBox(e)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}, box)

	// Arc: full-circle box regardless of sweep.
	a, err := s.InsertArc(geom.Point{X: 0, Y: 0}, 8, 0, float32(math.Pi/6))
	require.NoError(t, err)
	box, ok = s.BoundingBox(a)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: -8, MinY: -8, MaxX: 8, MaxY: 8}, box)
}

func TestBoundingBox_EmptyPolygon(t *testing.T) {
	s := New()
	h, err := s.InsertPolygon(nil, true)
	require.NoError(t, err)
	_, ok := s.BoundingBox(h)
	assert.False(t, ok)
}

func TestBoundingBox_Path(t *testing.T) {
	s := New()
	h, parse, err := s.InsertPath("M 0 0 L 10 5 C 20 -3 25 8 30 0 Z")
	require.NoError(t, err)
	require.True(t, parse.Complete)

	box, ok := s.BoundingBox(h)
	require.True(t, ok)
	// Control points count, so MinY comes from the cubic's first control.
	assert.Equal(t, geom.Rect{MinX: 0, MinY: -3, MaxX: 30, MaxY: 8}, box)

	empty, _, err := s.InsertPath("")
	require.NoError(t, err)
	_, ok = s.BoundingBox(empty)
	assert.False(t, ok)
}

func TestBoundingBox_Text(t *testing.T) {
	s := New()
	h, err := s.InsertText(geom.Point{X: 100, Y: 100}, "hi", 10, "Arial", shape.AlignLeft, shape.BaselineAlphabetic)
	require.NoError(t, err)

	box, ok := s.BoundingBox(h)
	require.True(t, ok)
	assert.InDelta(t, 100, box.MinX, 1e-4)
	assert.InDelta(t, 112, box.MaxX, 1e-4) // 2 runes * 0.6 * 10
	assert.InDelta(t, 92, box.MinY, 1e-4)  // alphabetic baseline sits 0.8h above
	assert.InDelta(t, 102, box.MaxY, 1e-4)
}

func TestBoundingBox_NestedGroups(t *testing.T) {
	s := New()
	c, err := s.InsertCircle(geom.Point{X: 0, Y: 0}, 5)
	require.NoError(t, err)
	r, err := s.InsertRectangle(20, 20, 10, 10, 0)
	require.NoError(t, err)

	inner, err := s.InsertGroup(geom.Point{}, []shape.Handle{r})
	require.NoError(t, err)
	outer, err := s.InsertGroup(geom.Point{}, []shape.Handle{c, inner})
	require.NoError(t, err)

	box, ok := s.BoundingBox(outer)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: -5, MinY: -5, MaxX: 30, MaxY: 30}, box)
}

func TestBoundingBox_EmptyGroup(t *testing.T) {
	s := New()
	g, err := s.InsertGroup(geom.Point{}, nil)
	require.NoError(t, err)
	_, ok := s.BoundingBox(g)
	assert.False(t, ok)
}

func TestBoundingBox_GroupCycleTerminates(t *testing.T) {
	s := New()
	c, err := s.InsertCircle(geom.Point{X: 1, Y: 1}, 1)
	require.NoError(t, err)

	a, err := s.InsertGroup(geom.Point{}, []shape.Handle{c})
	require.NoError(t, err)
	b, err := s.InsertGroup(geom.Point{}, []shape.Handle{a})
	require.NoError(t, err)
	// Close the cycle a -> b -> a. Acyclic nesting is the caller's
	// contract; traversal must still terminate and cover the leaf.
	require.True(t, s.AddToGroup(a, b))

	box, ok := s.BoundingBox(a)
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, box)
}
