// Package geom provides the primitive value types shared by the scene
// storage: 2D points, axis-aligned rectangles and RGBA colors. All
// coordinates are float32 to keep shape records compact.
package geom

// Point is a position in scene coordinates.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned box. A zero Rect is a degenerate box at the
// origin, not an empty marker; callers that need "no box yet" track that
// separately.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// RectAt returns the degenerate box containing exactly p.
func RectAt(p Point) Rect {
	return Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) * 0.5, Y: (r.MinY + r.MaxY) * 0.5}
}

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Intersects reports whether r and o share any point.
func (r Rect) Intersects(o Rect) bool {
	return !(r.MaxX < o.MinX || r.MinX > o.MaxX ||
		r.MaxY < o.MinY || r.MinY > o.MaxY)
}

// Include returns r grown to contain p.
func (r Rect) Include(p Point) Rect {
	if p.X < r.MinX {
		r.MinX = p.X
	}
	if p.X > r.MaxX {
		r.MaxX = p.X
	}
	if p.Y < r.MinY {
		r.MinY = p.Y
	}
	if p.Y > r.MaxY {
		r.MaxY = p.Y
	}
	return r
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if o.MinX < r.MinX {
		r.MinX = o.MinX
	}
	if o.MaxX > r.MaxX {
		r.MaxX = o.MaxX
	}
	if o.MinY < r.MinY {
		r.MinY = o.MinY
	}
	if o.MaxY > r.MaxY {
		r.MaxY = o.MaxY
	}
	return r
}

// Inflate returns r grown by d on every side. Negative d shrinks.
func (r Rect) Inflate(d float32) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}
