package drawgo

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/persistence"
	"github.com/drawkit/drawgo/shape"
)

func TestNew_Defaults(t *testing.T) {
	d := New()
	assert.Equal(t, float32(800), d.Scene().Width)
	assert.Equal(t, geom.White, d.Scene().Background)
	assert.Equal(t, uint8(0), d.ActiveLayer())
	assert.Equal(t, 0, d.TotalShapes())
}

func TestNew_Options(t *testing.T) {
	d := New(
		WithCanvasSize(1920, 1080),
		WithBackground(geom.Black),
		WithCompression(persistence.CompressionZstd),
	)
	assert.Equal(t, float32(1920), d.Scene().Width)
	assert.Equal(t, float32(1080), d.Scene().Height)
	assert.Equal(t, geom.Black, d.Scene().Background)
}

func TestDrawing_AddAndQuery(t *testing.T) {
	ctx := context.Background()
	d := New()

	c, err := d.AddCircle(ctx, geom.Point{X: 100, Y: 100}, 50)
	require.NoError(t, err)
	r, err := d.AddRectangle(ctx, 200, 200, 50, 50, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, d.TotalShapes())

	hits := d.FindAtPoint(ctx, geom.Point{X: 150, Y: 100}, 1)
	assert.Equal(t, []shape.Handle{c}, hits)

	found := d.FindInRect(ctx, geom.Rect{MinX: 0, MinY: 0, MaxX: 300, MaxY: 300})
	assert.Equal(t, []shape.Handle{c, r}, found)

	box, ok := d.BoundingBoxOf([]shape.Handle{c, r})
	require.True(t, ok)
	assert.Equal(t, geom.Rect{MinX: 50, MinY: 50, MaxX: 250, MaxY: 250}, box)
}

func TestDrawing_ActiveLayerRouting(t *testing.T) {
	ctx := context.Background()
	d := New()

	overlay, err := d.AddLayer("overlay")
	require.NoError(t, err)
	require.True(t, d.SetActiveLayer(overlay))

	h, err := d.AddCircle(ctx, geom.Point{}, 1)
	require.NoError(t, err)

	hd, ok := d.Objects().Header(h)
	require.True(t, ok)
	assert.Equal(t, overlay, hd.Layer)

	l, ok := d.Scene().Layer(overlay)
	require.True(t, ok)
	assert.Contains(t, l.Members, h)

	// Unknown layer is rejected and the active layer stays put.
	assert.False(t, d.SetActiveLayer(99))
	assert.Equal(t, overlay, d.ActiveLayer())
}

func TestDrawing_StylingAndMetadata(t *testing.T) {
	ctx := context.Background()
	d := New()
	h, err := d.AddRectangle(ctx, 0, 0, 10, 10, 0)
	require.NoError(t, err)

	require.True(t, d.SetFillColor(h, geom.RGB(10, 20, 30)))
	require.True(t, d.SetOpacity(h, 0.5))
	require.True(t, d.SetName(h, "frame"))
	require.True(t, d.SetMetadata(h, "role", "border"))

	assert.Equal(t, "frame", d.Name(h))
	v, ok := d.MetadataValue(h, "role")
	require.True(t, ok)
	assert.Equal(t, "border", v)

	grad := d.AddLinearGradient([]shape.GradientStop{
		{Offset: 0, Color: geom.Black},
		{Offset: 1, Color: geom.White},
	}, 0)
	require.True(t, d.SetGradient(h, grad))

	pat := d.AddPattern("dots")
	require.True(t, d.SetPattern(h, pat))
}

func TestDrawing_Batch(t *testing.T) {
	ctx := context.Background()
	d := New()

	handles, err := d.CreateGrid(ctx, shape.KindCircle, 2, 2, 10, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, handles, 4)

	st := d.Translate(ctx, handles, 100, 0)
	assert.Equal(t, 4, st.Processed)

	first, ok := d.Objects().Circle(handles[0])
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 105, Y: 5}, first.Center)

	// Grid shapes landed on the active layer.
	l, ok := d.Scene().Layer(0)
	require.True(t, ok)
	assert.Len(t, l.Members, 4)
}

func TestDrawing_PathTruncationObservable(t *testing.T) {
	ctx := context.Background()
	d := New()

	h, parse, err := d.AddPath(ctx, "M 0 0 L 10 10 L bad")
	require.NoError(t, err)
	assert.False(t, parse.Complete)
	assert.Equal(t, 2, parse.Commands)
	assert.Equal(t, shape.KindPath, h.Kind())
}

func TestDrawing_SaveLoad(t *testing.T) {
	ctx := context.Background()
	d := New(WithCanvasSize(640, 480), WithCompression(persistence.CompressionLZ4))

	c, err := d.AddCircle(ctx, geom.Point{X: 10, Y: 10}, 5)
	require.NoError(t, err)
	require.True(t, d.SetName(c, "dot"))

	var buf bytes.Buffer
	require.NoError(t, d.Save(&buf))

	got, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, float32(640), got.Scene().Width)
	assert.Equal(t, 1, got.TotalShapes())
	assert.Equal(t, "dot", got.Name(c))
}

func TestDrawing_SaveLoadFile(t *testing.T) {
	ctx := context.Background()
	d := New()
	_, err := d.AddCircle(ctx, geom.Point{X: 1, Y: 1}, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.drw")
	require.NoError(t, d.SaveFile(ctx, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalShapes())
}

func TestLoad_RejectsGarbage(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not a drawing")))
	require.ErrorIs(t, err, ErrMalformed)
}
