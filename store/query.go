package store

import (
	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

// FindInRect returns the handles of all shapes whose bounding box
// intersects rect, in a fixed table order (circles, rectangles, lines,
// ellipses, polygons, polylines, arcs, texts, paths, groups) with
// ascending indices within each table.
//
// The scan is linear over every table — the documented scaling limit
// of this engine; there is no spatial index.
func (s *Storage) FindInRect(rect geom.Rect) []shape.Handle {
	var out []shape.Handle

	for i := range s.Circles {
		if rect.Intersects(circleBounds(s.Circles[i].Center, s.Circles[i].Radius)) {
			out = appendHandle(out, shape.KindCircle, i)
		}
	}
	for i := range s.Rectangles {
		r := &s.Rectangles[i]
		if rect.Intersects(geom.Rect{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}) {
			out = appendHandle(out, shape.KindRectangle, i)
		}
	}
	for i := range s.Lines {
		l := &s.Lines[i]
		box := geom.RectAt(geom.Point{X: l.X1, Y: l.Y1}).Include(geom.Point{X: l.X2, Y: l.Y2})
		if rect.Intersects(box) {
			out = appendHandle(out, shape.KindLine, i)
		}
	}
	for i := range s.Ellipses {
		e := &s.Ellipses[i]
		r := e.RX
		if e.RY > r {
			r = e.RY
		}
		if rect.Intersects(circleBounds(e.Center, r)) {
			out = appendHandle(out, shape.KindEllipse, i)
		}
	}
	for i := range s.Polygons {
		if box, ok := pointsBounds(s.PolygonPoints.Slice(s.Polygons[i].Points)); ok && rect.Intersects(box) {
			out = appendHandle(out, shape.KindPolygon, i)
		}
	}
	for i := range s.Polylines {
		if box, ok := pointsBounds(s.PolylinePoints.Slice(s.Polylines[i].Points)); ok && rect.Intersects(box) {
			out = appendHandle(out, shape.KindPolyline, i)
		}
	}
	for i := range s.Arcs {
		if rect.Intersects(circleBounds(s.Arcs[i].Center, s.Arcs[i].Radius)) {
			out = appendHandle(out, shape.KindArc, i)
		}
	}
	for i := range s.Texts {
		if rect.Intersects(s.textBounds(&s.Texts[i])) {
			out = appendHandle(out, shape.KindText, i)
		}
	}
	for i := range s.Paths {
		if box, ok := s.pathBounds(&s.Paths[i]); ok && rect.Intersects(box) {
			out = appendHandle(out, shape.KindPath, i)
		}
	}
	for i := range s.Groups {
		h, err := shape.MakeHandle(shape.KindGroup, uint32(i))
		if err != nil {
			break
		}
		if box, ok := s.groupBounds(h); ok && rect.Intersects(box) {
			out = append(out, h)
		}
	}

	return out
}
