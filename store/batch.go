package store

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

// Stats describes the effect of one batch operation. It is returned
// by value from every call; there is no process-wide "last operation"
// state.
type Stats struct {
	Processed int // records actually mutated
	Skipped   int // handles whose kind the operation does not support, or stale handles
}

// buckets groups the indices of a handle list by kind, dropping stale
// indices. Grouping first gives each worker contiguous access to a
// single table, which is what makes the unrolled loops worthwhile.
type buckets struct {
	byKind  [shape.KindGroup + 1][]uint32
	skipped int
}

func (s *Storage) bucket(handles []shape.Handle, supported func(shape.Kind) bool) buckets {
	var b buckets
	for _, h := range handles {
		k := h.Kind()
		if !supported(k) || h.Index() >= uint32(s.Count(k)) {
			b.skipped++
			continue
		}
		b.byKind[k] = append(b.byKind[k], h.Index())
	}
	return b
}

// Translate moves the supported shapes by (dx, dy). Supported kinds:
// circle, rectangle, line, ellipse, arc and text (their positions are
// plain anchors); other kinds are silently skipped and counted in
// Stats.Skipped. Kind groups are processed in parallel; the result is
// identical to sequential execution because the groups touch disjoint
// tables.
func (s *Storage) Translate(handles []shape.Handle, dx, dy float32) Stats {
	b := s.bucket(handles, func(k shape.Kind) bool {
		switch k {
		case shape.KindCircle, shape.KindRectangle, shape.KindLine,
			shape.KindEllipse, shape.KindArc, shape.KindText:
			return true
		}
		return false
	})

	var g errgroup.Group
	if idx := b.byKind[shape.KindCircle]; len(idx) > 0 {
		g.Go(func() error { translateCircles(s.Circles, idx, dx, dy); return nil })
	}
	if idx := b.byKind[shape.KindRectangle]; len(idx) > 0 {
		g.Go(func() error { translateRects(s.Rectangles, idx, dx, dy); return nil })
	}
	if idx := b.byKind[shape.KindLine]; len(idx) > 0 {
		g.Go(func() error {
			for _, i := range idx {
				l := &s.Lines[i]
				l.X1 += dx
				l.Y1 += dy
				l.X2 += dx
				l.Y2 += dy
			}
			return nil
		})
	}
	if idx := b.byKind[shape.KindEllipse]; len(idx) > 0 {
		g.Go(func() error {
			for _, i := range idx {
				s.Ellipses[i].Center.X += dx
				s.Ellipses[i].Center.Y += dy
			}
			return nil
		})
	}
	if idx := b.byKind[shape.KindArc]; len(idx) > 0 {
		g.Go(func() error {
			for _, i := range idx {
				s.Arcs[i].Center.X += dx
				s.Arcs[i].Center.Y += dy
			}
			return nil
		})
	}
	if idx := b.byKind[shape.KindText]; len(idx) > 0 {
		g.Go(func() error {
			for _, i := range idx {
				s.Texts[i].Pos.X += dx
				s.Texts[i].Pos.Y += dy
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return Stats{Processed: len(handles) - b.skipped, Skipped: b.skipped}
}

// translateCircles is the data-parallel fast path: a 4-wide unrolled
// loop over the circle table with a scalar tail. Both halves perform
// the same float32 additions in the same order, so the results are
// bit-identical to the naive per-record loop.
func translateCircles(circles []shape.Circle, idx []uint32, dx, dy float32) {
	n := len(idx) &^ 3
	for i := 0; i < n; i += 4 {
		c0 := &circles[idx[i]]
		c1 := &circles[idx[i+1]]
		c2 := &circles[idx[i+2]]
		c3 := &circles[idx[i+3]]
		c0.Center.X += dx
		c1.Center.X += dx
		c2.Center.X += dx
		c3.Center.X += dx
		c0.Center.Y += dy
		c1.Center.Y += dy
		c2.Center.Y += dy
		c3.Center.Y += dy
	}
	for _, i := range idx[n:] {
		circles[i].Center.X += dx
		circles[i].Center.Y += dy
	}
}

func translateRects(rects []shape.Rectangle, idx []uint32, dx, dy float32) {
	n := len(idx) &^ 3
	for i := 0; i < n; i += 4 {
		r0 := &rects[idx[i]]
		r1 := &rects[idx[i+1]]
		r2 := &rects[idx[i+2]]
		r3 := &rects[idx[i+3]]
		r0.X += dx
		r1.X += dx
		r2.X += dx
		r3.X += dx
		r0.Y += dy
		r1.Y += dy
		r2.Y += dy
		r3.Y += dy
	}
	for _, i := range idx[n:] {
		rects[i].X += dx
		rects[i].Y += dy
	}
}

// Scale resizes the supported shapes about center. Supported kinds:
// circle (uniform, using sx), rectangle and line. Others are skipped.
func (s *Storage) Scale(handles []shape.Handle, sx, sy float32, center geom.Point) Stats {
	var st Stats
	for _, h := range handles {
		switch h.Kind() {
		case shape.KindCircle:
			if c, ok := s.Circle(h); ok {
				c.Center.X = center.X + (c.Center.X-center.X)*sx
				c.Center.Y = center.Y + (c.Center.Y-center.Y)*sy
				c.Radius *= sx // circles scale uniformly by sx
				st.Processed++
				continue
			}
		case shape.KindRectangle:
			if r, ok := s.Rectangle(h); ok {
				r.X = center.X + (r.X-center.X)*sx
				r.Y = center.Y + (r.Y-center.Y)*sy
				r.W *= sx
				r.H *= sy
				st.Processed++
				continue
			}
		case shape.KindLine:
			if l, ok := s.Line(h); ok {
				l.X1 = center.X + (l.X1-center.X)*sx
				l.Y1 = center.Y + (l.Y1-center.Y)*sy
				l.X2 = center.X + (l.X2-center.X)*sx
				l.Y2 = center.Y + (l.Y2-center.Y)*sy
				st.Processed++
				continue
			}
		}
		st.Skipped++
	}
	return st
}

// Rotate turns the supported shapes by angle radians about center.
// Only circles (center orbit) and lines (both endpoints) are
// supported today; other kinds are skipped.
func (s *Storage) Rotate(handles []shape.Handle, angle float32, center geom.Point) Stats {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))

	var st Stats
	for _, h := range handles {
		switch h.Kind() {
		case shape.KindCircle:
			if c, ok := s.Circle(h); ok {
				c.Center.X, c.Center.Y = rotateAbout(c.Center.X, c.Center.Y, center, cos, sin)
				st.Processed++
				continue
			}
		case shape.KindLine:
			if l, ok := s.Line(h); ok {
				l.X1, l.Y1 = rotateAbout(l.X1, l.Y1, center, cos, sin)
				l.X2, l.Y2 = rotateAbout(l.X2, l.Y2, center, cos, sin)
				st.Processed++
				continue
			}
		}
		st.Skipped++
	}
	return st
}

func rotateAbout(x, y float32, center geom.Point, cos, sin float32) (float32, float32) {
	dx := x - center.X
	dy := y - center.Y
	return center.X + dx*cos - dy*sin, center.Y + dx*sin + dy*cos
}

// AlignLeft moves the supported shapes (circle, rectangle, line) so
// their bounding boxes share the leftmost edge of the batch.
func (s *Storage) AlignLeft(handles []shape.Handle) Stats {
	minX := float32(math.Inf(1))
	eligible := 0
	for _, h := range handles {
		if !alignable(h.Kind()) {
			continue
		}
		if box, ok := s.BoundingBox(h); ok {
			if box.MinX < minX {
				minX = box.MinX
			}
			eligible++
		}
	}
	if eligible == 0 {
		return Stats{Skipped: len(handles)}
	}

	var st Stats
	for _, h := range handles {
		if !alignable(h.Kind()) {
			st.Skipped++
			continue
		}
		box, ok := s.BoundingBox(h)
		if !ok {
			st.Skipped++
			continue
		}
		dx := minX - box.MinX
		switch h.Kind() {
		case shape.KindCircle:
			if c, ok := s.Circle(h); ok {
				c.Center.X += dx
			}
		case shape.KindRectangle:
			if r, ok := s.Rectangle(h); ok {
				r.X += dx
			}
		case shape.KindLine:
			if l, ok := s.Line(h); ok {
				l.X1 += dx
				l.X2 += dx
			}
		}
		st.Processed++
	}
	return st
}

func alignable(k shape.Kind) bool {
	return k == shape.KindCircle || k == shape.KindRectangle || k == shape.KindLine
}

// BoundingBoxOf unions the boxes of all the handles; stale handles
// contribute nothing.
func (s *Storage) BoundingBoxOf(handles []shape.Handle) (geom.Rect, bool) {
	var (
		box geom.Rect
		any bool
	)
	for _, h := range handles {
		b, ok := s.BoundingBox(h)
		if !ok {
			continue
		}
		if !any {
			box = b
			any = true
		} else {
			box = box.Union(b)
		}
	}
	return box, any
}

// CreateGrid inserts rows x cols shapes of the given kind (circle or
// rectangle) and returns their handles in row-major order. Cell
// centers are (x0 + col*cellW + cellW/2, y0 + row*cellH + cellH/2);
// circles get radius 0.4*min(cellW, cellH), rectangles are inset to
// 80% of the cell. Unsupported kinds yield an empty result.
func (s *Storage) CreateGrid(kind shape.Kind, rows, cols int, cellW, cellH, x0, y0 float32) ([]shape.Handle, error) {
	if kind != shape.KindCircle && kind != shape.KindRectangle {
		return nil, nil
	}
	if rows <= 0 || cols <= 0 {
		return nil, nil
	}

	radius := cellW
	if cellH < radius {
		radius = cellH
	}
	radius *= 0.4

	out := make([]shape.Handle, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx := x0 + float32(col)*cellW + cellW/2
			cy := y0 + float32(row)*cellH + cellH/2

			var (
				h   shape.Handle
				err error
			)
			if kind == shape.KindCircle {
				h, err = s.InsertCircle(geom.Point{X: cx, Y: cy}, radius)
			} else {
				h, err = s.InsertRectangle(cx-cellW*0.4, cy-cellH*0.4, cellW*0.8, cellH*0.8, 0)
			}
			if err != nil {
				return out, err
			}
			out = append(out, h)
		}
	}
	return out, nil
}
