package store

import (
	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

// Layer is an ordered collection of shape handles with its own
// visibility and styling toggles. Layers are identified by a small
// integer id recorded in every member's header.
type Layer struct {
	ID      uint8
	Name    string
	Visible bool
	Locked  bool
	Opacity float32
	Members []shape.Handle
}

// MaxLayers is the ceiling on layers per scene.
const MaxLayers = 255

// Scene is the top-level document: canvas properties, ordered layers
// and the shape storage. It is the unit the binary codec round-trips.
type Scene struct {
	Width      float32
	Height     float32
	Background geom.Color
	Layers     []*Layer
	Objects    *Storage
}

// NewScene returns a scene with the given canvas size, a white
// background and a default layer 0.
func NewScene(width, height float32) *Scene {
	sc := &Scene{
		Width:      width,
		Height:     height,
		Background: geom.White,
		Objects:    New(),
	}
	_, _ = sc.AddLayer("Default") // cannot fail on an empty scene
	return sc
}

// AddLayer appends a layer and returns its id. Layer ids are assigned
// sequentially and never reused.
func (sc *Scene) AddLayer(name string) (uint8, error) {
	if len(sc.Layers) >= MaxLayers {
		return 0, ErrTooManyLayers
	}
	id := uint8(len(sc.Layers))
	sc.Layers = append(sc.Layers, &Layer{
		ID:      id,
		Name:    name,
		Visible: true,
		Opacity: 1,
	})
	return id, nil
}

// Layer returns the layer with the given id.
func (sc *Scene) Layer(id uint8) (*Layer, bool) {
	if int(id) >= len(sc.Layers) {
		return nil, false
	}
	return sc.Layers[id], true
}

// Place appends h to the layer's member list and records the layer id
// in the shape header. Placing on an unknown layer is a no-op.
func (sc *Scene) Place(h shape.Handle, layer uint8) bool {
	l, ok := sc.Layer(layer)
	if !ok {
		return false
	}
	hd, ok := sc.Objects.header(h)
	if !ok {
		return false
	}
	hd.Layer = layer
	l.Members = append(l.Members, h)
	return true
}

// SetLayerOpacity sets the layer's opacity, clamped to [0,1].
func (sc *Scene) SetLayerOpacity(id uint8, opacity float32) bool {
	l, ok := sc.Layer(id)
	if !ok {
		return false
	}
	l.Opacity = clamp01(opacity)
	return true
}
