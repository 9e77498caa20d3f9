// Package drawgo provides an embedded in-memory storage and query
// engine for 2D vector-graphics scenes.
//
// Shapes live in densely packed per-kind tables addressed by 32-bit
// handles (kind tag in the high byte, table index in the low 24 bits);
// variable-length payloads such as polygon vertices, path segments and
// group children live in append-only pools referenced by validated
// spans, and shared strings are interned. On top of that the package
// offers per-shape geometry (bounding boxes, tolerance-based hit
// tests), linear-scan spatial queries, batch transforms with
// data-parallel fast paths, and a versioned chunked binary codec with
// all-or-nothing loading.
//
// # Quick Start
//
//	ctx := context.Background()
//	d := drawgo.New(drawgo.WithCanvasSize(800, 600))
//
//	c, _ := d.AddCircle(ctx, geom.Point{X: 100, Y: 100}, 50)
//	d.SetFillColor(c, geom.RGB(200, 40, 40))
//
//	hits := d.FindAtPoint(ctx, geom.Point{X: 150, Y: 100}, 2)
//	_ = hits
//
//	if err := d.SaveFile(ctx, "scene.drw"); err != nil {
//	    log.Fatal(err)
//	}
//
// A Drawing is single-writer: concurrent reads are safe, concurrent
// mutation is the caller's responsibility to serialize.
package drawgo
