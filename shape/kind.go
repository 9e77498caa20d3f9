// Package shape defines the closed set of shape kinds, the 32-bit
// handle scheme addressing records in the kind tables, and the compact
// record layouts themselves. It holds no storage; the tables live in
// package store.
package shape

// Kind tags the table a handle addresses. The numeric values are part
// of the binary format and must not be reordered.
type Kind uint8

const (
	KindNone Kind = iota
	KindLine
	KindCircle
	KindEllipse
	KindRectangle
	KindPolygon
	KindPolyline
	KindArc
	KindText
	KindPath
	KindGroup
)

// AllKinds lists every real kind in table order. KindNone is reserved
// and never issued to clients.
var AllKinds = [...]Kind{
	KindLine, KindCircle, KindEllipse, KindRectangle, KindPolygon,
	KindPolyline, KindArc, KindText, KindPath, KindGroup,
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindRectangle:
		return "rectangle"
	case KindPolygon:
		return "polygon"
	case KindPolyline:
		return "polyline"
	case KindArc:
		return "arc"
	case KindText:
		return "text"
	case KindPath:
		return "path"
	case KindGroup:
		return "group"
	default:
		return "invalid"
	}
}
