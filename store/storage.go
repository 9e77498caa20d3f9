// Package store implements the in-memory scene storage: one densely
// packed table per shape kind, append-only auxiliary pools for
// variable-length payloads, intern tables for shared strings, and the
// geometry, query and batch-transform operations over them.
//
// A Storage is single-writer: reads may run concurrently with each
// other but callers must serialize mutation externally. Records are
// never deleted; the whole storage is replaced atomically on load.
package store

import (
	"unsafe"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

// Storage holds every shape table and auxiliary pool of one scene.
// Fields are exported for the binary codec; ordinary clients go
// through handles and the typed accessors.
type Storage struct {
	Circles    []shape.Circle
	Rectangles []shape.Rectangle
	Lines      []shape.Line
	Ellipses   []shape.Ellipse
	Polygons   []shape.Polygon
	Polylines  []shape.Polyline
	Arcs       []shape.Arc
	Texts      []shape.Text
	Paths      []shape.Path
	Groups     []shape.Group

	PolygonPoints  Pool[geom.Point]
	PolylinePoints Pool[geom.Point]
	PathSegments   Pool[shape.Segment]
	PathParams     Pool[float32]
	GroupChildren  Pool[shape.Handle]
	GradientStops  Pool[shape.GradientStop]

	Gradients []shape.Gradient

	Names       Intern // object names
	Patterns    Intern // pattern references
	MetaKeys    Intern
	MetaValues  Intern
	TextStrings Intern
	FontNames   Intern

	Meta []shape.MetaEntry
}

// New returns an empty storage.
func New() *Storage { return &Storage{} }

// InsertCircle appends a circle and returns its handle.
func (s *Storage) InsertCircle(center geom.Point, radius float32) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindCircle, uint32(len(s.Circles)))
	if err != nil {
		return 0, err
	}
	s.Circles = append(s.Circles, shape.Circle{Header: shape.DefaultHeader(), Center: center, Radius: radius})
	return h, nil
}

// InsertRectangle appends a rectangle and returns its handle.
func (s *Storage) InsertRectangle(x, y, w, h, cornerRadius float32) (shape.Handle, error) {
	hd, err := shape.MakeHandle(shape.KindRectangle, uint32(len(s.Rectangles)))
	if err != nil {
		return 0, err
	}
	s.Rectangles = append(s.Rectangles, shape.Rectangle{
		Header: shape.DefaultHeader(),
		X:      x, Y: y, W: w, H: h,
		CornerRadius: cornerRadius,
	})
	return hd, nil
}

// InsertLine appends a line and returns its handle.
func (s *Storage) InsertLine(x1, y1, x2, y2 float32, style shape.LineStyle) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindLine, uint32(len(s.Lines)))
	if err != nil {
		return 0, err
	}
	s.Lines = append(s.Lines, shape.Line{
		Header: shape.DefaultHeader(),
		X1:     x1, Y1: y1, X2: x2, Y2: y2,
		Style: style,
	})
	return h, nil
}

// InsertEllipse appends an ellipse and returns its handle. Rotation is
// in radians.
func (s *Storage) InsertEllipse(center geom.Point, rx, ry, rotation float32) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindEllipse, uint32(len(s.Ellipses)))
	if err != nil {
		return 0, err
	}
	s.Ellipses = append(s.Ellipses, shape.Ellipse{
		Header: shape.DefaultHeader(),
		Center: center, RX: rx, RY: ry, Rotation: rotation,
	})
	return h, nil
}

// InsertPolygon copies points into the polygon point pool and appends
// a polygon referencing them.
func (s *Storage) InsertPolygon(points []geom.Point, closed bool) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindPolygon, uint32(len(s.Polygons)))
	if err != nil {
		return 0, err
	}
	sp := s.PolygonPoints.Append(points)
	s.Polygons = append(s.Polygons, shape.Polygon{Header: shape.DefaultHeader(), Points: sp, Closed: closed})
	return h, nil
}

// InsertPolyline copies points into the polyline point pool and
// appends a polyline referencing them.
func (s *Storage) InsertPolyline(points []geom.Point, style shape.LineStyle) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindPolyline, uint32(len(s.Polylines)))
	if err != nil {
		return 0, err
	}
	sp := s.PolylinePoints.Append(points)
	s.Polylines = append(s.Polylines, shape.Polyline{Header: shape.DefaultHeader(), Points: sp, Style: style})
	return h, nil
}

// InsertArc appends a circular arc. Angles are radians; start > end
// means the arc wraps through angle zero.
func (s *Storage) InsertArc(center geom.Point, radius, startAngle, endAngle float32) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindArc, uint32(len(s.Arcs)))
	if err != nil {
		return 0, err
	}
	s.Arcs = append(s.Arcs, shape.Arc{
		Header: shape.DefaultHeader(),
		Center: center, Radius: radius,
		StartAngle: startAngle, EndAngle: endAngle,
	})
	return h, nil
}

// InsertText interns the string and font name and appends a text
// record anchored at pos.
func (s *Storage) InsertText(pos geom.Point, text string, fontSize float32, font string, align shape.TextAlign, baseline shape.TextBaseline) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindText, uint32(len(s.Texts)))
	if err != nil {
		return 0, err
	}
	s.Texts = append(s.Texts, shape.Text{
		Header:   shape.DefaultHeader(),
		Pos:      pos,
		FontSize: fontSize,
		Align:    align,
		Baseline: baseline,
		Text:     s.TextStrings.Intern(text),
		Font:     s.FontNames.Intern(font),
	})
	return h, nil
}

// InsertGroup appends a group with the given children. The child
// handles are copied into the child pool; the caller is responsible
// for keeping the nesting acyclic.
func (s *Storage) InsertGroup(pivot geom.Point, children []shape.Handle) (shape.Handle, error) {
	h, err := shape.MakeHandle(shape.KindGroup, uint32(len(s.Groups)))
	if err != nil {
		return 0, err
	}
	sp := s.GroupChildren.Append(children)
	s.Groups = append(s.Groups, shape.Group{Header: shape.DefaultHeader(), Pivot: pivot, Children: sp})
	return h, nil
}

// AddToGroup appends child to the group's child list. Because child
// lists live in an append-only pool, growing one relocates it to the
// end of the pool; the old range stays allocated.
func (s *Storage) AddToGroup(group, child shape.Handle) bool {
	g, ok := s.Group(group)
	if !ok {
		return false
	}
	children := s.GroupChildren.Slice(g.Children)
	grown := make([]shape.Handle, 0, len(children)+1)
	grown = append(grown, children...)
	grown = append(grown, child)
	g.Children = s.GroupChildren.Append(grown)
	if child.Kind() == shape.KindGroup {
		if cg, ok := s.Group(child); ok {
			cg.Parent = group
		}
	}
	return true
}

// Circle returns the record addressed by h, or false when the kind tag
// or index does not match. Callers must treat a miss as "no record",
// never as a fatal condition.
func (s *Storage) Circle(h shape.Handle) (*shape.Circle, bool) {
	if h.Kind() != shape.KindCircle || h.Index() >= uint32(len(s.Circles)) {
		return nil, false
	}
	return &s.Circles[h.Index()], true
}

// Rectangle returns the record addressed by h, or false on mismatch.
func (s *Storage) Rectangle(h shape.Handle) (*shape.Rectangle, bool) {
	if h.Kind() != shape.KindRectangle || h.Index() >= uint32(len(s.Rectangles)) {
		return nil, false
	}
	return &s.Rectangles[h.Index()], true
}

// Line returns the record addressed by h, or false on mismatch.
func (s *Storage) Line(h shape.Handle) (*shape.Line, bool) {
	if h.Kind() != shape.KindLine || h.Index() >= uint32(len(s.Lines)) {
		return nil, false
	}
	return &s.Lines[h.Index()], true
}

// Ellipse returns the record addressed by h, or false on mismatch.
func (s *Storage) Ellipse(h shape.Handle) (*shape.Ellipse, bool) {
	if h.Kind() != shape.KindEllipse || h.Index() >= uint32(len(s.Ellipses)) {
		return nil, false
	}
	return &s.Ellipses[h.Index()], true
}

// Polygon returns the record addressed by h, or false on mismatch.
func (s *Storage) Polygon(h shape.Handle) (*shape.Polygon, bool) {
	if h.Kind() != shape.KindPolygon || h.Index() >= uint32(len(s.Polygons)) {
		return nil, false
	}
	return &s.Polygons[h.Index()], true
}

// Polyline returns the record addressed by h, or false on mismatch.
func (s *Storage) Polyline(h shape.Handle) (*shape.Polyline, bool) {
	if h.Kind() != shape.KindPolyline || h.Index() >= uint32(len(s.Polylines)) {
		return nil, false
	}
	return &s.Polylines[h.Index()], true
}

// Arc returns the record addressed by h, or false on mismatch.
func (s *Storage) Arc(h shape.Handle) (*shape.Arc, bool) {
	if h.Kind() != shape.KindArc || h.Index() >= uint32(len(s.Arcs)) {
		return nil, false
	}
	return &s.Arcs[h.Index()], true
}

// Text returns the record addressed by h, or false on mismatch.
func (s *Storage) Text(h shape.Handle) (*shape.Text, bool) {
	if h.Kind() != shape.KindText || h.Index() >= uint32(len(s.Texts)) {
		return nil, false
	}
	return &s.Texts[h.Index()], true
}

// Path returns the record addressed by h, or false on mismatch.
func (s *Storage) Path(h shape.Handle) (*shape.Path, bool) {
	if h.Kind() != shape.KindPath || h.Index() >= uint32(len(s.Paths)) {
		return nil, false
	}
	return &s.Paths[h.Index()], true
}

// Group returns the record addressed by h, or false on mismatch.
func (s *Storage) Group(h shape.Handle) (*shape.Group, bool) {
	if h.Kind() != shape.KindGroup || h.Index() >= uint32(len(s.Groups)) {
		return nil, false
	}
	return &s.Groups[h.Index()], true
}

// header is the single dispatch point for the common record prefix;
// every generic setter goes through it instead of repeating the kind
// switch.
func (s *Storage) header(h shape.Handle) (*shape.Header, bool) {
	i := h.Index()
	switch h.Kind() {
	case shape.KindCircle:
		if i < uint32(len(s.Circles)) {
			return &s.Circles[i].Header, true
		}
	case shape.KindRectangle:
		if i < uint32(len(s.Rectangles)) {
			return &s.Rectangles[i].Header, true
		}
	case shape.KindLine:
		if i < uint32(len(s.Lines)) {
			return &s.Lines[i].Header, true
		}
	case shape.KindEllipse:
		if i < uint32(len(s.Ellipses)) {
			return &s.Ellipses[i].Header, true
		}
	case shape.KindPolygon:
		if i < uint32(len(s.Polygons)) {
			return &s.Polygons[i].Header, true
		}
	case shape.KindPolyline:
		if i < uint32(len(s.Polylines)) {
			return &s.Polylines[i].Header, true
		}
	case shape.KindArc:
		if i < uint32(len(s.Arcs)) {
			return &s.Arcs[i].Header, true
		}
	case shape.KindText:
		if i < uint32(len(s.Texts)) {
			return &s.Texts[i].Header, true
		}
	case shape.KindPath:
		if i < uint32(len(s.Paths)) {
			return &s.Paths[i].Header, true
		}
	case shape.KindGroup:
		if i < uint32(len(s.Groups)) {
			return &s.Groups[i].Header, true
		}
	}
	return nil, false
}

// Header exposes the common record prefix for reading. The returned
// pointer aliases table memory and is invalidated by inserts.
func (s *Storage) Header(h shape.Handle) (*shape.Header, bool) {
	return s.header(h)
}

// Count returns the number of records in the kind's table.
func (s *Storage) Count(k shape.Kind) int {
	switch k {
	case shape.KindCircle:
		return len(s.Circles)
	case shape.KindRectangle:
		return len(s.Rectangles)
	case shape.KindLine:
		return len(s.Lines)
	case shape.KindEllipse:
		return len(s.Ellipses)
	case shape.KindPolygon:
		return len(s.Polygons)
	case shape.KindPolyline:
		return len(s.Polylines)
	case shape.KindArc:
		return len(s.Arcs)
	case shape.KindText:
		return len(s.Texts)
	case shape.KindPath:
		return len(s.Paths)
	case shape.KindGroup:
		return len(s.Groups)
	default:
		return 0
	}
}

// TotalShapes returns the record count summed over every kind table.
func (s *Storage) TotalShapes() int {
	n := 0
	for _, k := range shape.AllKinds {
		n += s.Count(k)
	}
	return n
}

// MemoryUsage estimates the bytes held by tables and pools.
func (s *Storage) MemoryUsage() int {
	n := len(s.Circles)*int(unsafe.Sizeof(shape.Circle{})) +
		len(s.Rectangles)*int(unsafe.Sizeof(shape.Rectangle{})) +
		len(s.Lines)*int(unsafe.Sizeof(shape.Line{})) +
		len(s.Ellipses)*int(unsafe.Sizeof(shape.Ellipse{})) +
		len(s.Polygons)*int(unsafe.Sizeof(shape.Polygon{})) +
		len(s.Polylines)*int(unsafe.Sizeof(shape.Polyline{})) +
		len(s.Arcs)*int(unsafe.Sizeof(shape.Arc{})) +
		len(s.Texts)*int(unsafe.Sizeof(shape.Text{})) +
		len(s.Paths)*int(unsafe.Sizeof(shape.Path{})) +
		len(s.Groups)*int(unsafe.Sizeof(shape.Group{}))
	n += s.PolygonPoints.Len() * int(unsafe.Sizeof(geom.Point{}))
	n += s.PolylinePoints.Len() * int(unsafe.Sizeof(geom.Point{}))
	n += s.PathSegments.Len() * int(unsafe.Sizeof(shape.Segment{}))
	n += s.PathParams.Len() * 4
	n += s.GroupChildren.Len() * 4
	n += s.GradientStops.Len() * int(unsafe.Sizeof(shape.GradientStop{}))
	n += len(s.Gradients) * int(unsafe.Sizeof(shape.Gradient{}))
	n += len(s.Meta) * int(unsafe.Sizeof(shape.MetaEntry{}))
	return n
}
