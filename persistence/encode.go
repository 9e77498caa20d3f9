package persistence

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
	"github.com/drawkit/drawgo/store"
)

// Save writes the scene to w: a fixed uncompressed preamble (magic,
// version, compression flag), then the chunk stream run through the
// chosen codec, terminated by the end marker.
func Save(w io.Writer, sc *store.Scene, comp Compression) error {
	var pre [9]byte
	binary.LittleEndian.PutUint32(pre[0:4], Magic)
	binary.LittleEndian.PutUint32(pre[4:8], Version)
	pre[8] = byte(comp)
	if _, err := w.Write(pre[:]); err != nil {
		return err
	}

	cw, err := compressWriter(w, comp)
	if err != nil {
		return err
	}
	if err := writeChunks(cw, sc); err != nil {
		_ = cw.Close()
		return err
	}
	return cw.Close()
}

func writeChunks(w io.Writer, sc *store.Scene) error {
	st := sc.Objects
	var b chunkBuf

	b.f32(sc.Width)
	b.f32(sc.Height)
	b.color(sc.Background)
	if err := b.emit(w, chunkHeader); err != nil {
		return err
	}

	for _, l := range sc.Layers {
		b.u8(l.ID)
		b.bool(l.Visible)
		b.bool(l.Locked)
		b.f32(l.Opacity)
		b.str(l.Name)
		b.u32(uint32(len(l.Members)))
		for _, h := range l.Members {
			b.u32(uint32(h))
		}
		if err := b.emit(w, chunkLayer); err != nil {
			return err
		}
	}

	b.u32(uint32(len(st.Circles)))
	for i := range st.Circles {
		c := &st.Circles[i]
		b.header(&c.Header)
		b.point(c.Center)
		b.f32(c.Radius)
	}
	if err := b.emitIf(w, chunkCircles, len(st.Circles)); err != nil {
		return err
	}

	b.u32(uint32(len(st.Rectangles)))
	for i := range st.Rectangles {
		r := &st.Rectangles[i]
		b.header(&r.Header)
		b.f32(r.X)
		b.f32(r.Y)
		b.f32(r.W)
		b.f32(r.H)
		b.f32(r.CornerRadius)
	}
	if err := b.emitIf(w, chunkRectangles, len(st.Rectangles)); err != nil {
		return err
	}

	b.u32(uint32(len(st.Lines)))
	for i := range st.Lines {
		l := &st.Lines[i]
		b.header(&l.Header)
		b.f32(l.X1)
		b.f32(l.Y1)
		b.f32(l.X2)
		b.f32(l.Y2)
		b.u8(uint8(l.Style))
	}
	if err := b.emitIf(w, chunkLines, len(st.Lines)); err != nil {
		return err
	}

	b.u32(uint32(len(st.Polygons)))
	for i := range st.Polygons {
		p := &st.Polygons[i]
		b.header(&p.Header)
		b.span(p.Points)
		b.bool(p.Closed)
	}
	if err := b.emitIf(w, chunkPolygons, len(st.Polygons)); err != nil {
		return err
	}
	if err := b.emitPoints(w, chunkPolygonPoints, st.PolygonPoints.All()); err != nil {
		return err
	}

	b.u32(uint32(len(st.Ellipses)))
	for i := range st.Ellipses {
		e := &st.Ellipses[i]
		b.header(&e.Header)
		b.point(e.Center)
		b.f32(e.RX)
		b.f32(e.RY)
		b.f32(e.Rotation)
	}
	if err := b.emitIf(w, chunkEllipses, len(st.Ellipses)); err != nil {
		return err
	}

	b.u32(uint32(len(st.Polylines)))
	for i := range st.Polylines {
		p := &st.Polylines[i]
		b.header(&p.Header)
		b.span(p.Points)
		b.u8(uint8(p.Style))
	}
	if err := b.emitIf(w, chunkPolylines, len(st.Polylines)); err != nil {
		return err
	}
	if err := b.emitPoints(w, chunkPolylinePoints, st.PolylinePoints.All()); err != nil {
		return err
	}

	b.u32(uint32(len(st.Arcs)))
	for i := range st.Arcs {
		a := &st.Arcs[i]
		b.header(&a.Header)
		b.point(a.Center)
		b.f32(a.Radius)
		b.f32(a.StartAngle)
		b.f32(a.EndAngle)
	}
	if err := b.emitIf(w, chunkArcs, len(st.Arcs)); err != nil {
		return err
	}

	b.u32(uint32(len(st.Texts)))
	for i := range st.Texts {
		t := &st.Texts[i]
		b.header(&t.Header)
		b.point(t.Pos)
		b.f32(t.FontSize)
		b.u8(uint8(t.Align))
		b.u8(uint8(t.Baseline))
		b.u32(uint32(t.Text))
		b.u32(uint32(t.Font))
	}
	if err := b.emitIf(w, chunkTexts, len(st.Texts)); err != nil {
		return err
	}
	if err := b.emitStrings(w, chunkTextStrings, st.TextStrings.All()); err != nil {
		return err
	}
	if err := b.emitStrings(w, chunkFontNames, st.FontNames.All()); err != nil {
		return err
	}

	b.u32(uint32(len(st.Paths)))
	for i := range st.Paths {
		p := &st.Paths[i]
		b.header(&p.Header)
		b.span(p.Segments)
	}
	if err := b.emitIf(w, chunkPaths, len(st.Paths)); err != nil {
		return err
	}

	segs := st.PathSegments.All()
	b.u32(uint32(len(segs)))
	for i := range segs {
		b.u8(uint8(segs[i].Op))
		b.span(segs[i].Params)
	}
	if err := b.emitIf(w, chunkPathSegments, len(segs)); err != nil {
		return err
	}

	params := st.PathParams.All()
	b.u32(uint32(len(params)))
	for _, v := range params {
		b.f32(v)
	}
	if err := b.emitIf(w, chunkPathParams, len(params)); err != nil {
		return err
	}

	b.u32(uint32(len(st.Groups)))
	for i := range st.Groups {
		g := &st.Groups[i]
		b.header(&g.Header)
		b.point(g.Pivot)
		b.u32(uint32(g.Parent))
		b.span(g.Children)
	}
	if err := b.emitIf(w, chunkGroups, len(st.Groups)); err != nil {
		return err
	}

	children := st.GroupChildren.All()
	b.u32(uint32(len(children)))
	for _, h := range children {
		b.u32(uint32(h))
	}
	if err := b.emitIf(w, chunkGroupChildren, len(children)); err != nil {
		return err
	}

	b.u32(uint32(len(st.Gradients)))
	for i := range st.Gradients {
		g := &st.Gradients[i]
		b.u8(uint8(g.Kind))
		b.span(g.Stops)
		b.f32(g.Angle)
		b.point(g.Center)
		b.f32(g.Radius)
	}
	if err := b.emitIf(w, chunkGradients, len(st.Gradients)); err != nil {
		return err
	}

	stops := st.GradientStops.All()
	b.u32(uint32(len(stops)))
	for i := range stops {
		b.f32(stops[i].Offset)
		b.color(stops[i].Color)
	}
	if err := b.emitIf(w, chunkGradientStops, len(stops)); err != nil {
		return err
	}

	if err := b.emitStrings(w, chunkPatternNames, st.Patterns.All()); err != nil {
		return err
	}
	if err := b.emitStrings(w, chunkObjectNames, st.Names.All()); err != nil {
		return err
	}
	if err := b.emitStrings(w, chunkMetaKeys, st.MetaKeys.All()); err != nil {
		return err
	}
	if err := b.emitStrings(w, chunkMetaValues, st.MetaValues.All()); err != nil {
		return err
	}

	b.u32(uint32(len(st.Meta)))
	for i := range st.Meta {
		b.u32(uint32(st.Meta[i].Key))
		b.u32(uint32(st.Meta[i].Value))
		b.u32(uint32(st.Meta[i].Owner))
	}
	if err := b.emitIf(w, chunkMetadata, len(st.Meta)); err != nil {
		return err
	}

	return b.emit(w, chunkEnd)
}

// chunkBuf accumulates one chunk payload in little-endian layout. It
// is reused across chunks; emit resets it.
type chunkBuf struct {
	b []byte
}

func (c *chunkBuf) u8(v uint8)   { c.b = append(c.b, v) }
func (c *chunkBuf) u16(v uint16) { c.b = binary.LittleEndian.AppendUint16(c.b, v) }
func (c *chunkBuf) u32(v uint32) { c.b = binary.LittleEndian.AppendUint32(c.b, v) }
func (c *chunkBuf) f32(v float32) {
	c.b = binary.LittleEndian.AppendUint32(c.b, math.Float32bits(v))
}

func (c *chunkBuf) bool(v bool) {
	if v {
		c.u8(1)
	} else {
		c.u8(0)
	}
}

func (c *chunkBuf) point(p geom.Point) {
	c.f32(p.X)
	c.f32(p.Y)
}

func (c *chunkBuf) color(col geom.Color) {
	c.b = append(c.b, col.R, col.G, col.B, col.A)
}

func (c *chunkBuf) span(sp shape.Span) {
	c.u32(sp.Offset)
	c.u32(sp.Count)
}

func (c *chunkBuf) str(s string) {
	c.u32(uint32(len(s)))
	c.b = append(c.b, s...)
}

func (c *chunkBuf) header(h *shape.Header) {
	c.u8(h.Layer)
	c.u16(uint16(h.Flags))
	c.color(h.Fill)
	c.color(h.Stroke)
	c.f32(h.StrokeWidth)
	c.f32(h.Opacity)
	c.u32(uint32(h.Gradient))
	c.u32(uint32(h.Pattern))
	c.u32(uint32(h.Name))
}

// emitIf writes the chunk only when it describes at least one element;
// empty tables and pools are represented by absence.
func (c *chunkBuf) emitIf(w io.Writer, tag uint16, n int) error {
	if n == 0 {
		c.b = c.b[:0]
		return nil
	}
	return c.emit(w, tag)
}

// emit writes the accumulated payload as one chunk and resets the
// buffer for the next.
func (c *chunkBuf) emit(w io.Writer, tag uint16) error {
	var hdr [6]byte
	binary.LittleEndian.PutUint16(hdr[0:2], tag)
	binary.LittleEndian.PutUint32(hdr[2:6], uint32(len(c.b)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if len(c.b) > 0 {
		if _, err := w.Write(c.b); err != nil {
			return err
		}
	}
	c.b = c.b[:0]
	return nil
}

func (c *chunkBuf) emitPoints(w io.Writer, tag uint16, pts []geom.Point) error {
	c.u32(uint32(len(pts)))
	for _, p := range pts {
		c.point(p)
	}
	return c.emitIf(w, tag, len(pts))
}

func (c *chunkBuf) emitStrings(w io.Writer, tag uint16, strs []string) error {
	c.u32(uint32(len(strs)))
	for _, s := range strs {
		c.str(s)
	}
	return c.emitIf(w, tag, len(strs))
}
