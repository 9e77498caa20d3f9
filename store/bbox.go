package store

import (
	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/selection"
	"github.com/drawkit/drawgo/shape"
)

// BoundingBox returns the axis-aligned box of the record addressed by
// h. It reports false for a stale handle, an empty polygon/polyline/
// path, or a group with no resolvable leaves.
//
// Some kinds use documented conservative approximations: arcs get the
// full-circle box, rotated ellipses the max-radius square, text an
// estimated glyph-metric box. Queries built on these boxes can
// over-match but never under-match.
func (s *Storage) BoundingBox(h shape.Handle) (geom.Rect, bool) {
	switch h.Kind() {
	case shape.KindCircle:
		if c, ok := s.Circle(h); ok {
			return circleBounds(c.Center, c.Radius), true
		}
	case shape.KindRectangle:
		if r, ok := s.Rectangle(h); ok {
			return geom.Rect{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}, true
		}
	case shape.KindLine:
		if l, ok := s.Line(h); ok {
			return geom.RectAt(geom.Point{X: l.X1, Y: l.Y1}).Include(geom.Point{X: l.X2, Y: l.Y2}), true
		}
	case shape.KindEllipse:
		if e, ok := s.Ellipse(h); ok {
			// Conservative box for rotated ellipses: treat the larger
			// radius as a circle radius.
			r := e.RX
			if e.RY > r {
				r = e.RY
			}
			return circleBounds(e.Center, r), true
		}
	case shape.KindPolygon:
		if p, ok := s.Polygon(h); ok {
			return pointsBounds(s.PolygonPoints.Slice(p.Points))
		}
	case shape.KindPolyline:
		if p, ok := s.Polyline(h); ok {
			return pointsBounds(s.PolylinePoints.Slice(p.Points))
		}
	case shape.KindArc:
		if a, ok := s.Arc(h); ok {
			// Full-circle box, not the tight arc box.
			return circleBounds(a.Center, a.Radius), true
		}
	case shape.KindText:
		if t, ok := s.Text(h); ok {
			return s.textBounds(t), true
		}
	case shape.KindPath:
		if p, ok := s.Path(h); ok {
			return s.pathBounds(p)
		}
	case shape.KindGroup:
		return s.groupBounds(h)
	}
	return geom.Rect{}, false
}

func circleBounds(c geom.Point, r float32) geom.Rect {
	return geom.Rect{MinX: c.X - r, MinY: c.Y - r, MaxX: c.X + r, MaxY: c.Y + r}
}

func pointsBounds(pts []geom.Point) (geom.Rect, bool) {
	if len(pts) == 0 {
		return geom.Rect{}, false
	}
	box := geom.RectAt(pts[0])
	for _, p := range pts[1:] {
		box = box.Include(p)
	}
	return box, true
}

// textBounds estimates the glyph box from the font size and the
// declared alignment and baseline. It is not exact font metrics.
func (s *Storage) textBounds(t *shape.Text) geom.Rect {
	str, err := s.TextStrings.Resolve(t.Text)
	if err != nil {
		str = ""
	}
	w := t.FontSize * 0.6 * float32(len([]rune(str)))
	h := t.FontSize

	x := t.Pos.X
	switch t.Align {
	case shape.AlignCenter:
		x -= w / 2
	case shape.AlignRight:
		x -= w
	}

	y := t.Pos.Y
	switch t.Baseline {
	case shape.BaselineAlphabetic:
		y -= h * 0.8
	case shape.BaselineMiddle:
		y -= h / 2
	case shape.BaselineBottom:
		y -= h
	}
	return geom.Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// pathBounds walks the segments in order, tracking the current point
// and expanding the box by every control and end point. Close
// contributes no new point.
func (s *Storage) pathBounds(p *shape.Path) (geom.Rect, bool) {
	var (
		box geom.Rect
		any bool
	)
	include := func(x, y float32) {
		pt := geom.Point{X: x, Y: y}
		if !any {
			box = geom.RectAt(pt)
			any = true
			return
		}
		box = box.Include(pt)
	}
	for _, seg := range s.PathSegments.Slice(p.Segments) {
		params := s.PathParams.Slice(seg.Params)
		if len(params) < seg.Op.ParamCount() {
			continue
		}
		switch seg.Op {
		case shape.SegMove, shape.SegLine:
			include(params[0], params[1])
		case shape.SegCubic:
			include(params[0], params[1])
			include(params[2], params[3])
			include(params[4], params[5])
		case shape.SegQuad:
			include(params[0], params[1])
			include(params[2], params[3])
		case shape.SegArc:
			include(params[5], params[6])
		case shape.SegClose:
			// no new point
		}
	}
	return box, any
}

// maxGroupVisits bounds traversal work for pathological scenes; the
// visited set already guarantees termination on cycles.
const maxGroupVisits = 1 << 20

// groupBounds unions the boxes of all leaves reachable from the group.
// Traversal is an explicit worklist with a visited-set, so cyclic or
// shared nesting degrades to a partial box instead of recursing
// forever; cycle-free nesting remains a caller contract.
func (s *Storage) groupBounds(root shape.Handle) (geom.Rect, bool) {
	var (
		box     geom.Rect
		any     bool
		visited = selection.New()
	)
	work := []shape.Handle{root}
	for n := 0; len(work) > 0 && n < maxGroupVisits; n++ {
		h := work[len(work)-1]
		work = work[:len(work)-1]
		if !visited.Add(h) {
			continue
		}
		if h.Kind() == shape.KindGroup {
			g, ok := s.Group(h)
			if !ok {
				continue
			}
			work = append(work, s.GroupChildren.Slice(g.Children)...)
			continue
		}
		if b, ok := s.BoundingBox(h); ok {
			if !any {
				box = b
				any = true
			} else {
				box = box.Union(b)
			}
		}
	}
	return box, any
}
