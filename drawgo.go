package drawgo

import (
	"context"
	"io"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/persistence"
	"github.com/drawkit/drawgo/shape"
	"github.com/drawkit/drawgo/store"
)

// Drawing is the top-level handle on a scene: the canvas, its layers
// and the shape storage, plus the active layer new shapes land on.
//
// A Drawing is single-writer: reads may run concurrently with each
// other but mutation must be serialized by the caller.
type Drawing struct {
	scene       *store.Scene
	active      uint8
	logger      *Logger
	compression persistence.Compression
}

// New creates an empty drawing with a default layer 0 as the active
// layer.
func New(optFns ...Option) *Drawing {
	o := applyOptions(optFns)
	return &Drawing{
		scene:       newScene(o),
		logger:      o.logger,
		compression: o.compression,
	}
}

func newScene(o options) *store.Scene {
	sc := store.NewScene(o.width, o.height)
	sc.Background = o.background
	return sc
}

// Scene exposes the underlying scene for direct access to the storage
// tables, pools and layers.
func (d *Drawing) Scene() *store.Scene { return d.scene }

// Objects exposes the shape storage directly.
func (d *Drawing) Objects() *store.Storage { return d.scene.Objects }

// place routes a freshly inserted shape onto the active layer.
func (d *Drawing) place(ctx context.Context, k shape.Kind, h shape.Handle, err error) (shape.Handle, error) {
	if err != nil {
		d.logger.LogInsert(ctx, k, 0, err)
		return 0, err
	}
	d.scene.Place(h, d.active)
	d.logger.LogInsert(ctx, k, h, nil)
	return h, nil
}

// AddCircle inserts a circle on the active layer.
func (d *Drawing) AddCircle(ctx context.Context, center geom.Point, radius float32) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertCircle(center, radius)
	return d.place(ctx, shape.KindCircle, h, err)
}

// AddRectangle inserts an axis-aligned rectangle on the active layer.
func (d *Drawing) AddRectangle(ctx context.Context, x, y, w, h, cornerRadius float32) (shape.Handle, error) {
	hd, err := d.scene.Objects.InsertRectangle(x, y, w, h, cornerRadius)
	return d.place(ctx, shape.KindRectangle, hd, err)
}

// AddLine inserts a line segment on the active layer.
func (d *Drawing) AddLine(ctx context.Context, x1, y1, x2, y2 float32, style shape.LineStyle) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertLine(x1, y1, x2, y2, style)
	return d.place(ctx, shape.KindLine, h, err)
}

// AddEllipse inserts an ellipse on the active layer. Rotation is in
// radians.
func (d *Drawing) AddEllipse(ctx context.Context, center geom.Point, rx, ry, rotation float32) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertEllipse(center, rx, ry, rotation)
	return d.place(ctx, shape.KindEllipse, h, err)
}

// AddPolygon inserts a polygon on the active layer.
func (d *Drawing) AddPolygon(ctx context.Context, points []geom.Point, closed bool) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertPolygon(points, closed)
	return d.place(ctx, shape.KindPolygon, h, err)
}

// AddPolyline inserts a polyline on the active layer.
func (d *Drawing) AddPolyline(ctx context.Context, points []geom.Point, style shape.LineStyle) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertPolyline(points, style)
	return d.place(ctx, shape.KindPolyline, h, err)
}

// AddArc inserts a circular arc on the active layer. Angles are in
// radians; start > end means the arc wraps through angle zero.
func (d *Drawing) AddArc(ctx context.Context, center geom.Point, radius, startAngle, endAngle float32) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertArc(center, radius, startAngle, endAngle)
	return d.place(ctx, shape.KindArc, h, err)
}

// AddText inserts a text record on the active layer.
func (d *Drawing) AddText(ctx context.Context, pos geom.Point, text string, fontSize float32, font string, align shape.TextAlign, baseline shape.TextBaseline) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertText(pos, text, fontSize, font, align, baseline)
	return d.place(ctx, shape.KindText, h, err)
}

// AddPath parses an SVG-style path data string and inserts the path on
// the active layer. Parsing is best-effort; the returned PathParse
// reports whether the whole string was consumed.
func (d *Drawing) AddPath(ctx context.Context, data string) (shape.Handle, store.PathParse, error) {
	h, parse, err := d.scene.Objects.InsertPath(data)
	if err != nil {
		d.logger.LogInsert(ctx, shape.KindPath, 0, err)
		return 0, parse, err
	}
	d.scene.Place(h, d.active)
	if !parse.Complete {
		d.logger.WarnContext(ctx, "path data truncated",
			"handle", uint32(h),
			"commands", parse.Commands,
		)
	} else {
		d.logger.LogInsert(ctx, shape.KindPath, h, nil)
	}
	return h, parse, nil
}

// AddGroup inserts a group with the given children on the active
// layer. The caller is responsible for keeping the nesting acyclic.
func (d *Drawing) AddGroup(ctx context.Context, pivot geom.Point, children []shape.Handle) (shape.Handle, error) {
	h, err := d.scene.Objects.InsertGroup(pivot, children)
	return d.place(ctx, shape.KindGroup, h, err)
}

// AddToGroup appends child to the group's child list.
func (d *Drawing) AddToGroup(group, child shape.Handle) bool {
	return d.scene.Objects.AddToGroup(group, child)
}

// AddLayer appends a layer and returns its id.
func (d *Drawing) AddLayer(name string) (uint8, error) {
	return d.scene.AddLayer(name)
}

// SetActiveLayer routes subsequent insertions to the given layer.
func (d *Drawing) SetActiveLayer(id uint8) bool {
	if _, ok := d.scene.Layer(id); !ok {
		return false
	}
	d.active = id
	return true
}

// ActiveLayer returns the layer new shapes land on.
func (d *Drawing) ActiveLayer() uint8 { return d.active }

// SetLayerVisible toggles a layer's visibility.
func (d *Drawing) SetLayerVisible(id uint8, v bool) bool {
	l, ok := d.scene.Layer(id)
	if !ok {
		return false
	}
	l.Visible = v
	return true
}

// SetLayerOpacity sets a layer's opacity, clamped to [0,1].
func (d *Drawing) SetLayerOpacity(id uint8, opacity float32) bool {
	return d.scene.SetLayerOpacity(id, opacity)
}

// Styling setters. All report false for a stale or mismatched handle.

func (d *Drawing) SetFillColor(h shape.Handle, c geom.Color) bool {
	return d.scene.Objects.SetFillColor(h, c)
}

func (d *Drawing) SetStrokeColor(h shape.Handle, c geom.Color) bool {
	return d.scene.Objects.SetStrokeColor(h, c)
}

func (d *Drawing) SetStrokeWidth(h shape.Handle, w float32) bool {
	return d.scene.Objects.SetStrokeWidth(h, w)
}

func (d *Drawing) SetOpacity(h shape.Handle, opacity float32) bool {
	return d.scene.Objects.SetOpacity(h, opacity)
}

func (d *Drawing) SetVisible(h shape.Handle, v bool) bool {
	return d.scene.Objects.SetVisible(h, v)
}

func (d *Drawing) SetName(h shape.Handle, name string) bool {
	return d.scene.Objects.SetName(h, name)
}

func (d *Drawing) Name(h shape.Handle) string {
	return d.scene.Objects.Name(h)
}

// AddLinearGradient registers a linear gradient and returns its id.
func (d *Drawing) AddLinearGradient(stops []shape.GradientStop, angle float32) shape.ID {
	return d.scene.Objects.AddLinearGradient(stops, angle)
}

// AddRadialGradient registers a radial gradient and returns its id.
func (d *Drawing) AddRadialGradient(stops []shape.GradientStop, center geom.Point, radius float32) shape.ID {
	return d.scene.Objects.AddRadialGradient(stops, center, radius)
}

// SetGradient links the shape to a previously registered gradient.
func (d *Drawing) SetGradient(h shape.Handle, id shape.ID) bool {
	return d.scene.Objects.SetGradient(h, id)
}

// AddPattern interns a pattern reference and returns its id.
func (d *Drawing) AddPattern(name string) shape.ID {
	return d.scene.Objects.AddPattern(name)
}

// SetPattern links the shape to a previously registered pattern.
func (d *Drawing) SetPattern(h shape.Handle, id shape.ID) bool {
	return d.scene.Objects.SetPattern(h, id)
}

// SetMetadata attaches key=value to the shape; last write per key wins.
func (d *Drawing) SetMetadata(h shape.Handle, key, value string) bool {
	return d.scene.Objects.SetMetadata(h, key, value)
}

// MetadataValue returns the value stored under key for the shape.
func (d *Drawing) MetadataValue(h shape.Handle, key string) (string, bool) {
	return d.scene.Objects.MetadataValue(h, key)
}

// MetadataAll returns every key/value pair attached to the shape.
func (d *Drawing) MetadataAll(h shape.Handle) [][2]string {
	return d.scene.Objects.MetadataAll(h)
}

// BoundingBox returns the axis-aligned bounding box of the shape.
func (d *Drawing) BoundingBox(h shape.Handle) (geom.Rect, bool) {
	return d.scene.Objects.BoundingBox(h)
}

// FindAtPoint returns the handles of all shapes hit by p within
// tolerance.
func (d *Drawing) FindAtPoint(ctx context.Context, p geom.Point, tolerance float32) []shape.Handle {
	out := d.scene.Objects.FindAtPoint(p, tolerance)
	d.logger.LogQuery(ctx, "find_at_point", len(out))
	return out
}

// FindInRect returns the handles of all shapes whose bounding box
// intersects rect.
func (d *Drawing) FindInRect(ctx context.Context, rect geom.Rect) []shape.Handle {
	out := d.scene.Objects.FindInRect(rect)
	d.logger.LogQuery(ctx, "find_in_rect", len(out))
	return out
}

// Translate moves the supported shapes by (dx, dy).
func (d *Drawing) Translate(ctx context.Context, handles []shape.Handle, dx, dy float32) store.Stats {
	st := d.scene.Objects.Translate(handles, dx, dy)
	d.logger.LogBatch(ctx, "translate", st.Processed, st.Skipped)
	return st
}

// Scale resizes the supported shapes about center.
func (d *Drawing) Scale(ctx context.Context, handles []shape.Handle, sx, sy float32, center geom.Point) store.Stats {
	st := d.scene.Objects.Scale(handles, sx, sy, center)
	d.logger.LogBatch(ctx, "scale", st.Processed, st.Skipped)
	return st
}

// Rotate turns the supported shapes by angle radians about center.
func (d *Drawing) Rotate(ctx context.Context, handles []shape.Handle, angle float32, center geom.Point) store.Stats {
	st := d.scene.Objects.Rotate(handles, angle, center)
	d.logger.LogBatch(ctx, "rotate", st.Processed, st.Skipped)
	return st
}

// AlignLeft moves the supported shapes so their boxes share the
// leftmost edge of the batch.
func (d *Drawing) AlignLeft(ctx context.Context, handles []shape.Handle) store.Stats {
	st := d.scene.Objects.AlignLeft(handles)
	d.logger.LogBatch(ctx, "align_left", st.Processed, st.Skipped)
	return st
}

// BoundingBoxOf unions the boxes of all the handles.
func (d *Drawing) BoundingBoxOf(handles []shape.Handle) (geom.Rect, bool) {
	return d.scene.Objects.BoundingBoxOf(handles)
}

// CreateGrid inserts rows x cols circles or rectangles on the active
// layer and returns their handles in row-major order.
func (d *Drawing) CreateGrid(ctx context.Context, kind shape.Kind, rows, cols int, cellW, cellH, x0, y0 float32) ([]shape.Handle, error) {
	out, err := d.scene.Objects.CreateGrid(kind, rows, cols, cellW, cellH, x0, y0)
	for _, h := range out {
		d.scene.Place(h, d.active)
	}
	d.logger.WithCount(len(out)).DebugContext(ctx, "grid created", "kind", kind.String())
	return out, err
}

// TotalShapes returns the shape count summed over every kind.
func (d *Drawing) TotalShapes() int { return d.scene.Objects.TotalShapes() }

// MemoryUsage estimates the bytes held by the storage.
func (d *Drawing) MemoryUsage() int { return d.scene.Objects.MemoryUsage() }

// Save writes the drawing to w using the configured compression.
func (d *Drawing) Save(w io.Writer) error {
	return persistence.Save(w, d.scene, d.compression)
}

// SaveFile writes the drawing to filename atomically.
func (d *Drawing) SaveFile(ctx context.Context, filename string) error {
	err := persistence.SaveFile(filename, d.scene, d.compression)
	d.logger.LogSnapshot(ctx, filename, err)
	return err
}

// Load reads a drawing written by Save. Loading is all-or-nothing: on
// any error no drawing is returned.
func Load(r io.Reader, optFns ...Option) (*Drawing, error) {
	o := applyOptions(optFns)
	sc, err := persistence.Load(r)
	if err != nil {
		return nil, err
	}
	return fromScene(sc, o), nil
}

// LoadFile reads a drawing from filename.
func LoadFile(filename string, optFns ...Option) (*Drawing, error) {
	o := applyOptions(optFns)
	sc, err := persistence.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return fromScene(sc, o), nil
}

func fromScene(sc *store.Scene, o options) *Drawing {
	d := &Drawing{
		scene:       sc,
		logger:      o.logger,
		compression: o.compression,
	}
	// A file with no layer chunks still needs somewhere to put shapes.
	if len(sc.Layers) == 0 {
		_, _ = sc.AddLayer("Default")
	}
	return d
}
