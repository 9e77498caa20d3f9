package persistence

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
	"github.com/drawkit/drawgo/store"
)

// Load reads a scene written by Save. Loading is all-or-nothing: the
// scene is assembled off to the side and returned only once the end
// marker has been reached with every chunk intact, so a failed load
// never leaves a partially-populated scene behind.
func Load(r io.Reader) (*store.Scene, error) {
	var pre [9]byte
	if _, err := io.ReadFull(r, pre[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if binary.LittleEndian.Uint32(pre[0:4]) != Magic {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, binary.LittleEndian.Uint32(pre[0:4]))
	}
	if v := binary.LittleEndian.Uint32(pre[4:8]); v != Version {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, v)
	}
	comp := Compression(pre[8])
	if !comp.valid() {
		return nil, fmt.Errorf("%w: compression flag %d", ErrMalformed, pre[8])
	}

	cr, err := compressReader(r, comp)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	sc := &store.Scene{Objects: store.New()}
	sawHeader := false
	for {
		var hdr [6]byte
		if _, err := io.ReadFull(cr, hdr[:]); err != nil {
			return nil, fmt.Errorf("%w: chunk header: %v", ErrTruncated, err)
		}
		tag := binary.LittleEndian.Uint16(hdr[0:2])
		size := binary.LittleEndian.Uint32(hdr[2:6])
		if size > maxChunkPayload {
			return nil, fmt.Errorf("%w: chunk %d payload %d bytes", ErrCountTooLarge, tag, size)
		}
		body := make([]byte, size)
		if _, err := io.ReadFull(cr, body); err != nil {
			return nil, fmt.Errorf("%w: chunk %d body: %v", ErrTruncated, tag, err)
		}

		if tag == chunkEnd {
			if !sawHeader {
				return nil, fmt.Errorf("%w: missing header chunk", ErrMalformed)
			}
			return sc, nil
		}
		if tag == chunkHeader {
			sawHeader = true
		}
		if err := decodeChunk(sc, tag, body); err != nil {
			return nil, err
		}
	}
}

func decodeChunk(sc *store.Scene, tag uint16, body []byte) error {
	p := payload{b: body}
	st := sc.Objects

	switch tag {
	case chunkHeader:
		sc.Width = p.f32()
		sc.Height = p.f32()
		sc.Background = p.color()

	case chunkLayer:
		l := &store.Layer{}
		l.ID = p.u8()
		l.Visible = p.bool()
		l.Locked = p.bool()
		l.Opacity = p.f32()
		l.Name = p.str()
		n := p.count()
		for i := 0; i < n && p.err == nil; i++ {
			l.Members = append(l.Members, shape.Handle(p.u32()))
		}
		if p.err == nil {
			if len(sc.Layers) >= store.MaxLayers {
				return fmt.Errorf("%w: more than %d layers", ErrCountTooLarge, store.MaxLayers)
			}
			sc.Layers = append(sc.Layers, l)
		}

	case chunkCircles:
		n := p.count()
		st.Circles = make([]shape.Circle, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var c shape.Circle
			c.Header = p.header()
			c.Center = p.point()
			c.Radius = p.f32()
			st.Circles = append(st.Circles, c)
		}

	case chunkRectangles:
		n := p.count()
		st.Rectangles = make([]shape.Rectangle, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var r shape.Rectangle
			r.Header = p.header()
			r.X = p.f32()
			r.Y = p.f32()
			r.W = p.f32()
			r.H = p.f32()
			r.CornerRadius = p.f32()
			st.Rectangles = append(st.Rectangles, r)
		}

	case chunkLines:
		n := p.count()
		st.Lines = make([]shape.Line, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var l shape.Line
			l.Header = p.header()
			l.X1 = p.f32()
			l.Y1 = p.f32()
			l.X2 = p.f32()
			l.Y2 = p.f32()
			l.Style = shape.LineStyle(p.u8())
			st.Lines = append(st.Lines, l)
		}

	case chunkPolygons:
		n := p.count()
		st.Polygons = make([]shape.Polygon, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var pg shape.Polygon
			pg.Header = p.header()
			pg.Points = p.span()
			pg.Closed = p.bool()
			st.Polygons = append(st.Polygons, pg)
		}

	case chunkPolygonPoints:
		st.PolygonPoints.Reset(p.points())

	case chunkEllipses:
		n := p.count()
		st.Ellipses = make([]shape.Ellipse, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var e shape.Ellipse
			e.Header = p.header()
			e.Center = p.point()
			e.RX = p.f32()
			e.RY = p.f32()
			e.Rotation = p.f32()
			st.Ellipses = append(st.Ellipses, e)
		}

	case chunkPolylines:
		n := p.count()
		st.Polylines = make([]shape.Polyline, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var pl shape.Polyline
			pl.Header = p.header()
			pl.Points = p.span()
			pl.Style = shape.LineStyle(p.u8())
			st.Polylines = append(st.Polylines, pl)
		}

	case chunkPolylinePoints:
		st.PolylinePoints.Reset(p.points())

	case chunkArcs:
		n := p.count()
		st.Arcs = make([]shape.Arc, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var a shape.Arc
			a.Header = p.header()
			a.Center = p.point()
			a.Radius = p.f32()
			a.StartAngle = p.f32()
			a.EndAngle = p.f32()
			st.Arcs = append(st.Arcs, a)
		}

	case chunkTexts:
		n := p.count()
		st.Texts = make([]shape.Text, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var t shape.Text
			t.Header = p.header()
			t.Pos = p.point()
			t.FontSize = p.f32()
			t.Align = shape.TextAlign(p.u8())
			t.Baseline = shape.TextBaseline(p.u8())
			t.Text = shape.ID(p.u32())
			t.Font = shape.ID(p.u32())
			st.Texts = append(st.Texts, t)
		}

	case chunkTextStrings:
		st.TextStrings.Reset(p.strings())

	case chunkFontNames:
		st.FontNames.Reset(p.strings())

	case chunkPaths:
		n := p.count()
		st.Paths = make([]shape.Path, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var pt shape.Path
			pt.Header = p.header()
			pt.Segments = p.span()
			st.Paths = append(st.Paths, pt)
		}

	case chunkPathSegments:
		n := p.count()
		segs := make([]shape.Segment, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var sg shape.Segment
			sg.Op = shape.SegOp(p.u8())
			sg.Params = p.span()
			segs = append(segs, sg)
		}
		st.PathSegments.Reset(segs)

	case chunkPathParams:
		n := p.count()
		params := make([]float32, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			params = append(params, p.f32())
		}
		st.PathParams.Reset(params)

	case chunkGroups:
		n := p.count()
		st.Groups = make([]shape.Group, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var g shape.Group
			g.Header = p.header()
			g.Pivot = p.point()
			g.Parent = shape.Handle(p.u32())
			g.Children = p.span()
			st.Groups = append(st.Groups, g)
		}

	case chunkGroupChildren:
		n := p.count()
		children := make([]shape.Handle, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			children = append(children, shape.Handle(p.u32()))
		}
		st.GroupChildren.Reset(children)

	case chunkGradients:
		n := p.count()
		st.Gradients = make([]shape.Gradient, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var g shape.Gradient
			g.Kind = shape.GradientKind(p.u8())
			g.Stops = p.span()
			g.Angle = p.f32()
			g.Center = p.point()
			g.Radius = p.f32()
			st.Gradients = append(st.Gradients, g)
		}

	case chunkGradientStops:
		n := p.count()
		stops := make([]shape.GradientStop, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var gs shape.GradientStop
			gs.Offset = p.f32()
			gs.Color = p.color()
			stops = append(stops, gs)
		}
		st.GradientStops.Reset(stops)

	case chunkPatternNames:
		st.Patterns.Reset(p.strings())

	case chunkObjectNames:
		st.Names.Reset(p.strings())

	case chunkMetaKeys:
		st.MetaKeys.Reset(p.strings())

	case chunkMetaValues:
		st.MetaValues.Reset(p.strings())

	case chunkMetadata:
		n := p.count()
		st.Meta = make([]shape.MetaEntry, 0, p.cap(n))
		for i := 0; i < n && p.err == nil; i++ {
			var m shape.MetaEntry
			m.Key = shape.ID(p.u32())
			m.Value = shape.ID(p.u32())
			m.Owner = shape.Handle(p.u32())
			st.Meta = append(st.Meta, m)
		}

	default:
		return fmt.Errorf("%w: tag %d", ErrUnknownChunk, tag)
	}

	if p.err != nil {
		return fmt.Errorf("chunk %d: %w", tag, p.err)
	}
	if p.off != len(p.b) {
		return fmt.Errorf("%w: chunk %d has %d trailing bytes", ErrMalformed, tag, len(p.b)-p.off)
	}
	return nil
}

// payload decodes one chunk body with a latched error: the first
// out-of-bounds or over-ceiling read sets err and every later read
// returns zero values, so decode loops stay linear.
type payload struct {
	b   []byte
	off int
	err error
}

func (p *payload) take(n int) []byte {
	if p.err != nil {
		return nil
	}
	if p.off+n > len(p.b) {
		p.err = ErrTruncated
		return nil
	}
	out := p.b[p.off : p.off+n]
	p.off += n
	return out
}

func (p *payload) u8() uint8 {
	b := p.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (p *payload) u16() uint16 {
	b := p.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (p *payload) u32() uint32 {
	b := p.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (p *payload) f32() float32 { return math.Float32frombits(p.u32()) }

func (p *payload) bool() bool { return p.u8() != 0 }

// count reads an element count and enforces the sanity ceiling.
func (p *payload) count() int {
	n := p.u32()
	if p.err == nil && n > MaxElements {
		p.err = fmt.Errorf("%w: %d elements", ErrCountTooLarge, n)
		return 0
	}
	return int(n)
}

// cap bounds the pre-allocation for a declared count: never reserve
// more elements than the remaining payload could possibly encode, so
// a lying count inside a tiny chunk cannot force a huge allocation.
func (p *payload) cap(n int) int {
	if rem := len(p.b) - p.off; n > rem {
		return rem
	}
	return n
}

func (p *payload) point() geom.Point {
	return geom.Point{X: p.f32(), Y: p.f32()}
}

func (p *payload) color() geom.Color {
	b := p.take(4)
	if b == nil {
		return geom.Color{}
	}
	return geom.Color{R: b[0], G: b[1], B: b[2], A: b[3]}
}

func (p *payload) span() shape.Span {
	return shape.Span{Offset: p.u32(), Count: p.u32()}
}

func (p *payload) str() string {
	n := p.u32()
	if p.err == nil && n > MaxStringLen {
		p.err = fmt.Errorf("%w: string of %d bytes", ErrCountTooLarge, n)
		return ""
	}
	b := p.take(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}

func (p *payload) header() shape.Header {
	var h shape.Header
	h.Layer = p.u8()
	h.Flags = shape.Flags(p.u16())
	h.Fill = p.color()
	h.Stroke = p.color()
	h.StrokeWidth = p.f32()
	h.Opacity = p.f32()
	h.Gradient = shape.ID(p.u32())
	h.Pattern = shape.ID(p.u32())
	h.Name = shape.ID(p.u32())
	return h
}

func (p *payload) points() []geom.Point {
	n := p.count()
	pts := make([]geom.Point, 0, p.cap(n))
	for i := 0; i < n && p.err == nil; i++ {
		pts = append(pts, p.point())
	}
	return pts
}

func (p *payload) strings() []string {
	n := p.count()
	strs := make([]string, 0, p.cap(n))
	for i := 0; i < n && p.err == nil; i++ {
		strs = append(strs, p.str())
	}
	return strs
}
