package shape

import "github.com/drawkit/drawgo/geom"

// Span references a contiguous range in an auxiliary pool. Spans are
// validated against the pool's current length on every dereference;
// a stale or foreign span yields an empty view, never an out-of-bounds
// read.
type Span struct {
	Offset, Count uint32
}

// LineStyle selects the stroke dash pattern of lines and polylines.
type LineStyle uint8

const (
	StyleSolid LineStyle = iota
	StyleDashed
	StyleDotted
	StyleDashDot
)

// TextAlign is the horizontal anchoring of a text record.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical anchoring of a text record.
type TextBaseline uint8

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// Circle is a filled or stroked circle.
type Circle struct {
	Header
	Center geom.Point
	Radius float32
}

// Rectangle is an axis-aligned rectangle with optional rounded corners.
type Rectangle struct {
	Header
	X, Y         float32
	W, H         float32
	CornerRadius float32
}

// Line is a straight segment between two endpoints.
type Line struct {
	Header
	X1, Y1 float32
	X2, Y2 float32
	Style  LineStyle
}

// Ellipse is an axis pair around a center, rotated by Rotation radians.
type Ellipse struct {
	Header
	Center   geom.Point
	RX, RY   float32
	Rotation float32
}

// Polygon references its vertices in the polygon point pool.
type Polygon struct {
	Header
	Points Span
	Closed bool
}

// Polyline references its vertices in the polyline point pool.
type Polyline struct {
	Header
	Points Span
	Style  LineStyle
}

// Arc is a circular arc from StartAngle to EndAngle (radians,
// counter-clockwise). StartAngle > EndAngle means the arc wraps
// through angle zero.
type Arc struct {
	Header
	Center     geom.Point
	Radius     float32
	StartAngle float32
	EndAngle   float32
}

// Text anchors an interned string at a position. Text and Font index
// the text-string and font-name intern tables.
type Text struct {
	Header
	Pos      geom.Point
	FontSize float32
	Align    TextAlign
	Baseline TextBaseline
	Text     ID
	Font     ID
}

// Path references its command segments in the segment pool; each
// segment in turn references its parameters in the flat float pool.
type Path struct {
	Header
	Segments Span
}

// Group references its children in the child-handle pool. Parent is
// the enclosing group, or the zero Handle for a top-level group.
// Nesting is intended to be acyclic; that is a caller contract, not
// something the storage enforces at insert time.
type Group struct {
	Header
	Pivot    geom.Point
	Parent   Handle
	Children Span
}

// SegOp is a path command opcode.
type SegOp uint8

const (
	SegMove  SegOp = iota // M: x y
	SegLine               // L: x y
	SegCubic              // C: c1x c1y c2x c2y x y
	SegQuad               // Q: cx cy x y
	SegArc                // A: rx ry rot large-arc sweep x y
	SegClose              // Z
)

// ParamCount returns the exact number of float parameters op consumes.
func (op SegOp) ParamCount() int {
	switch op {
	case SegMove, SegLine:
		return 2
	case SegCubic:
		return 6
	case SegQuad:
		return 4
	case SegArc:
		return 7
	default:
		return 0
	}
}

// Segment is one parsed path command.
type Segment struct {
	Op     SegOp
	Params Span
}

// GradientKind distinguishes linear from radial gradients.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// Gradient is a shared paint definition referenced by id from shape
// headers. Angle applies to linear gradients, Center and Radius to
// radial ones.
type Gradient struct {
	Kind   GradientKind
	Stops  Span
	Angle  float32
	Center geom.Point
	Radius float32
}

// GradientStop is one color stop; Offset is in [0,1].
type GradientStop struct {
	Offset float32
	Color  geom.Color
}

// MetaEntry attaches an interned key/value pair to a record. The
// semantics are last-write-wins per (Owner, Key).
type MetaEntry struct {
	Key   ID
	Value ID
	Owner Handle
}
