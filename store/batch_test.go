package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

func TestTranslate_MovesSupportedKinds(t *testing.T) {
	s := New()
	c, err := s.InsertCircle(geom.Point{X: 1, Y: 2}, 5)
	require.NoError(t, err)
	r, err := s.InsertRectangle(10, 10, 5, 5, 0)
	require.NoError(t, err)
	l, err := s.InsertLine(0, 0, 1, 1, shape.StyleSolid)
	require.NoError(t, err)
	e, err := s.InsertEllipse(geom.Point{X: 3, Y: 3}, 2, 1, 0)
	require.NoError(t, err)
	a, err := s.InsertArc(geom.Point{X: 4, Y: 4}, 2, 0, 1)
	require.NoError(t, err)
	txt, err := s.InsertText(geom.Point{X: 5, Y: 5}, "t", 10, "Arial", shape.AlignLeft, shape.BaselineTop)
	require.NoError(t, err)

	st := s.Translate([]shape.Handle{c, r, l, e, a, txt}, 10, -5)
	assert.Equal(t, Stats{Processed: 6, Skipped: 0}, st)

	circle, _ := s.Circle(c)
	assert.Equal(t, geom.Point{X: 11, Y: -3}, circle.Center)
	rect, _ := s.Rectangle(r)
	assert.Equal(t, float32(20), rect.X)
	assert.Equal(t, float32(5), rect.Y)
	line, _ := s.Line(l)
	assert.Equal(t, float32(10), line.X1)
	assert.Equal(t, float32(-4), line.Y2)
	ell, _ := s.Ellipse(e)
	assert.Equal(t, geom.Point{X: 13, Y: -2}, ell.Center)
	arc, _ := s.Arc(a)
	assert.Equal(t, geom.Point{X: 14, Y: -1}, arc.Center)
	text, _ := s.Text(txt)
	assert.Equal(t, geom.Point{X: 15, Y: 0}, text.Pos)
}

func TestTranslate_SkipsUnsupportedAndStale(t *testing.T) {
	s := New()
	c, err := s.InsertCircle(geom.Point{}, 1)
	require.NoError(t, err)
	g, err := s.InsertGroup(geom.Point{}, nil)
	require.NoError(t, err)
	stale, err := shape.MakeHandle(shape.KindCircle, 50)
	require.NoError(t, err)

	st := s.Translate([]shape.Handle{c, g, stale}, 1, 1)
	assert.Equal(t, Stats{Processed: 1, Skipped: 2}, st)
}

// TestTranslate_UnrolledMatchesNaive checks that the 4-wide unrolled
// circle and rectangle paths are bit-identical to a naive per-record
// loop over the same float32 inputs.
func TestTranslate_UnrolledMatchesNaive(t *testing.T) {
	const n = 1003 // force a non-empty scalar tail

	s := New()
	naive := New()
	var handles []shape.Handle
	for i := 0; i < n; i++ {
		// Awkward fractions so the additions are not exact.
		x := float32(i) * 0.1
		y := float32(i) * 0.3
		h, err := s.InsertCircle(geom.Point{X: x, Y: y}, 1)
		require.NoError(t, err)
		handles = append(handles, h)
		_, err = naive.InsertCircle(geom.Point{X: x, Y: y}, 1)
		require.NoError(t, err)

		rh, err := s.InsertRectangle(x, y, 2, 2, 0)
		require.NoError(t, err)
		handles = append(handles, rh)
		_, err = naive.InsertRectangle(x, y, 2, 2, 0)
		require.NoError(t, err)
	}

	const dx, dy = float32(0.7), float32(-1.3)
	st := s.Translate(handles, dx, dy)
	assert.Equal(t, 2*n, st.Processed)

	for i := range naive.Circles {
		naive.Circles[i].Center.X += dx
		naive.Circles[i].Center.Y += dy
	}
	for i := range naive.Rectangles {
		naive.Rectangles[i].X += dx
		naive.Rectangles[i].Y += dy
	}

	for i := range s.Circles {
		assert.Equal(t, math.Float32bits(naive.Circles[i].Center.X), math.Float32bits(s.Circles[i].Center.X))
		assert.Equal(t, math.Float32bits(naive.Circles[i].Center.Y), math.Float32bits(s.Circles[i].Center.Y))
	}
	for i := range s.Rectangles {
		assert.Equal(t, math.Float32bits(naive.Rectangles[i].X), math.Float32bits(s.Rectangles[i].X))
		assert.Equal(t, math.Float32bits(naive.Rectangles[i].Y), math.Float32bits(s.Rectangles[i].Y))
	}
}

func TestScale(t *testing.T) {
	s := New()
	c, err := s.InsertCircle(geom.Point{X: 10, Y: 0}, 5)
	require.NoError(t, err)
	r, err := s.InsertRectangle(10, 10, 10, 10, 0)
	require.NoError(t, err)

	st := s.Scale([]shape.Handle{c, r}, 2, 3, geom.Point{X: 0, Y: 0})
	assert.Equal(t, Stats{Processed: 2}, st)

	circle, _ := s.Circle(c)
	assert.Equal(t, geom.Point{X: 20, Y: 0}, circle.Center)
	assert.Equal(t, float32(10), circle.Radius) // uniform by sx

	rect, _ := s.Rectangle(r)
	assert.Equal(t, float32(20), rect.X)
	assert.Equal(t, float32(30), rect.Y)
	assert.Equal(t, float32(20), rect.W)
	assert.Equal(t, float32(30), rect.H)
}

func TestRotate(t *testing.T) {
	s := New()
	c, err := s.InsertCircle(geom.Point{X: 10, Y: 0}, 1)
	require.NoError(t, err)

	st := s.Rotate([]shape.Handle{c}, float32(math.Pi/2), geom.Point{})
	assert.Equal(t, Stats{Processed: 1}, st)

	circle, _ := s.Circle(c)
	assert.InDelta(t, 0, circle.Center.X, 1e-4)
	assert.InDelta(t, 10, circle.Center.Y, 1e-4)
}

func TestAlignLeft(t *testing.T) {
	s := New()
	a, err := s.InsertCircle(geom.Point{X: 50, Y: 0}, 10) // MinX 40
	require.NoError(t, err)
	b, err := s.InsertRectangle(10, 0, 5, 5, 0) // MinX 10
	require.NoError(t, err)
	c, err := s.InsertLine(30, 0, 60, 0, shape.StyleSolid) // MinX 30
	require.NoError(t, err)
	g, err := s.InsertGroup(geom.Point{}, nil) // unsupported
	require.NoError(t, err)

	st := s.AlignLeft([]shape.Handle{a, b, c, g})
	assert.Equal(t, Stats{Processed: 3, Skipped: 1}, st)

	for _, h := range []shape.Handle{a, b, c} {
		box, ok := s.BoundingBox(h)
		require.True(t, ok)
		assert.InDelta(t, 10, box.MinX, 1e-4)
	}
}

func TestAlignLeft_NoEligible(t *testing.T) {
	s := New()
	g, err := s.InsertGroup(geom.Point{}, nil)
	require.NoError(t, err)
	st := s.AlignLeft([]shape.Handle{g})
	assert.Equal(t, Stats{Skipped: 1}, st)
}

func TestBoundingBoxOf(t *testing.T) {
	s := New()
	a, err := s.InsertCircle(geom.Point{X: 0, Y: 0}, 5)
	require.NoError(t, err)
	b, err := s.InsertRectangle(20, 20, 10, 10, 0)
	require.NoError(t, err)
	stale, err := shape.MakeHandle(shape.KindCircle, 9)
	require.NoError(t, err)

	box, ok := s.BoundingBoxOf([]shape.Handle{a, b, stale})
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: -5, MinY: -5, MaxX: 30, MaxY: 30}, box)

	_, ok = s.BoundingBoxOf(nil)
	assert.False(t, ok)
}

func TestCreateGrid_Circles(t *testing.T) {
	s := New()
	handles, err := s.CreateGrid(shape.KindCircle, 2, 3, 10, 20, 100, 200)
	require.NoError(t, err)
	require.Len(t, handles, 6)

	// Row-major: row 0 col 0, row 0 col 1, ...
	first, ok := s.Circle(handles[0])
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 105, Y: 210}, first.Center)
	assert.Equal(t, float32(4), first.Radius) // 0.4 * min(10, 20)

	second, ok := s.Circle(handles[1])
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 115, Y: 210}, second.Center)

	fourth, ok := s.Circle(handles[3])
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 105, Y: 230}, fourth.Center)
}

func TestCreateGrid_Rectangles(t *testing.T) {
	s := New()
	handles, err := s.CreateGrid(shape.KindRectangle, 1, 1, 10, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, handles, 1)

	r, ok := s.Rectangle(handles[0])
	require.True(t, ok)
	// Cell center (5,5), 80% inset.
	assert.InDelta(t, 1, r.X, 1e-4)
	assert.InDelta(t, 1, r.Y, 1e-4)
	assert.InDelta(t, 8, r.W, 1e-4)
	assert.InDelta(t, 8, r.H, 1e-4)
}

func TestCreateGrid_Unsupported(t *testing.T) {
	s := New()
	handles, err := s.CreateGrid(shape.KindText, 2, 2, 10, 10, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, handles)

	handles, err = s.CreateGrid(shape.KindCircle, 0, 5, 10, 10, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, handles)
}
