package store

import (
	"math"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

// FindAtPoint returns the handles of all shapes hit by p within
// tolerance. Hit semantics are per kind: circles, ellipses and arcs
// are stroke-style annulus tests (a point at the exact center of a
// large circle is not a hit); rectangles count both near-edge and
// strictly-inside; lines, polylines and polygon edges use clamped
// point-to-segment distance; text, paths and groups fall back to the
// bounding box inflated by the tolerance.
//
// The scan is linear over every table; there is no spatial index.
func (s *Storage) FindAtPoint(p geom.Point, tolerance float32) []shape.Handle {
	var out []shape.Handle
	tolSq := tolerance * tolerance

	for i := range s.Circles {
		c := &s.Circles[i]
		if annulusHit(p, c.Center, c.Radius, tolerance) {
			out = appendHandle(out, shape.KindCircle, i)
		}
	}

	for i := range s.Rectangles {
		r := &s.Rectangles[i]
		box := geom.Rect{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}
		if box.Inflate(tolerance).Contains(p) {
			nearEdge := p.X <= box.MinX+tolerance || p.X >= box.MaxX-tolerance ||
				p.Y <= box.MinY+tolerance || p.Y >= box.MaxY-tolerance
			if nearEdge || box.Contains(p) {
				out = appendHandle(out, shape.KindRectangle, i)
			}
		}
	}

	for i := range s.Lines {
		l := &s.Lines[i]
		if segmentDistSq(p, geom.Point{X: l.X1, Y: l.Y1}, geom.Point{X: l.X2, Y: l.Y2}) <= tolSq {
			out = appendHandle(out, shape.KindLine, i)
		}
	}

	for i := range s.Ellipses {
		if ellipseHit(p, &s.Ellipses[i], tolerance) {
			out = appendHandle(out, shape.KindEllipse, i)
		}
	}

	for i := range s.Polygons {
		pts := s.PolygonPoints.Slice(s.Polygons[i].Points)
		if polylineHit(p, pts, s.Polygons[i].Closed, tolSq) {
			out = appendHandle(out, shape.KindPolygon, i)
		}
	}

	for i := range s.Polylines {
		pts := s.PolylinePoints.Slice(s.Polylines[i].Points)
		if polylineHit(p, pts, false, tolSq) {
			out = appendHandle(out, shape.KindPolyline, i)
		}
	}

	for i := range s.Arcs {
		if arcHit(p, &s.Arcs[i], tolerance) {
			out = appendHandle(out, shape.KindArc, i)
		}
	}

	for i := range s.Texts {
		if s.textBounds(&s.Texts[i]).Inflate(tolerance).Contains(p) {
			out = appendHandle(out, shape.KindText, i)
		}
	}

	for i := range s.Paths {
		if box, ok := s.pathBounds(&s.Paths[i]); ok && box.Inflate(tolerance).Contains(p) {
			out = appendHandle(out, shape.KindPath, i)
		}
	}

	for i := range s.Groups {
		h, err := shape.MakeHandle(shape.KindGroup, uint32(i))
		if err != nil {
			break
		}
		if box, ok := s.groupBounds(h); ok && box.Inflate(tolerance).Contains(p) {
			out = append(out, h)
		}
	}

	return out
}

// appendHandle appends (kind, i) to out. Indices drawn from table
// iteration are below MaxIndex by construction.
func appendHandle(out []shape.Handle, k shape.Kind, i int) []shape.Handle {
	h, err := shape.MakeHandle(k, uint32(i))
	if err != nil {
		return out
	}
	return append(out, h)
}

// annulusHit is the stroke-style circle test: the point must fall in
// the ring [max(0,r-tol), r+tol] around the center.
func annulusHit(p, center geom.Point, r, tol float32) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	distSq := dx*dx + dy*dy
	outer := r + tol
	inner := r - tol
	if inner < 0 {
		inner = 0
	}
	return distSq <= outer*outer && distSq >= inner*inner
}

// segmentDistSq returns the squared distance from p to the segment ab,
// using the clamped projection parameter t in [0,1]. Degenerate
// segments collapse to a point test.
func segmentDistSq(p, a, b geom.Point) float32 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		px := p.X - a.X
		py := p.Y - a.Y
		return px*px + py*py
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := a.X + t*dx
	cy := a.Y + t*dy
	ex := p.X - cx
	ey := p.Y - cy
	return ex*ex + ey*ey
}

func polylineHit(p geom.Point, pts []geom.Point, closed bool, tolSq float32) bool {
	if len(pts) < 2 {
		return false
	}
	for i := 0; i+1 < len(pts); i++ {
		if segmentDistSq(p, pts[i], pts[i+1]) <= tolSq {
			return true
		}
	}
	if closed && len(pts) > 2 {
		return segmentDistSq(p, pts[len(pts)-1], pts[0]) <= tolSq
	}
	return false
}

// ellipseHit rotates the query point into the ellipse's local frame
// with the negative rotation angle, then applies an inner/outer
// annulus test analogous to the circle case.
func ellipseHit(p geom.Point, e *shape.Ellipse, tol float32) bool {
	cos := float32(math.Cos(float64(-e.Rotation)))
	sin := float32(math.Sin(float64(-e.Rotation)))
	dx := p.X - e.Center.X
	dy := p.Y - e.Center.Y
	lx := dx*cos - dy*sin
	ly := dx*sin + dy*cos

	rxOuter := e.RX + tol
	ryOuter := e.RY + tol
	rxInner := e.RX - tol
	ryInner := e.RY - tol
	if rxInner < 0 {
		rxInner = 0
	}
	if ryInner < 0 {
		ryInner = 0
	}

	outer := (lx*lx)/(rxOuter*rxOuter) + (ly*ly)/(ryOuter*ryOuter)
	if outer > 1 {
		return false
	}
	if rxInner == 0 || ryInner == 0 {
		return true
	}
	inner := (lx*lx)/(rxInner*rxInner) + (ly*ly)/(ryInner*ryInner)
	return inner >= 1
}

// arcHit combines the distance-to-circle test with a wrap-aware
// angle-in-range test.
func arcHit(p geom.Point, a *shape.Arc, tol float32) bool {
	dx := p.X - a.Center.X
	dy := p.Y - a.Center.Y
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if abs32(dist-a.Radius) > tol {
		return false
	}
	angle := float32(math.Atan2(float64(dy), float64(dx)))
	return geom.AngleInArc(angle, a.StartAngle, a.EndAngle)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
