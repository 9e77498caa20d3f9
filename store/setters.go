package store

import (
	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/shape"
)

// The generic setters mutate the shared header fields of whatever
// table holds the record, dispatching on the handle's kind tag. They
// report false for a stale or mismatched handle; callers treat that as
// "no record", never as an error.

// SetFillColor sets the fill color of the record addressed by h.
func (s *Storage) SetFillColor(h shape.Handle, c geom.Color) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	hd.Fill = c
	hd.Flags = hd.Flags.With(shape.FlagHasFill, true)
	return true
}

// SetStrokeColor sets the stroke color and marks the record stroked.
func (s *Storage) SetStrokeColor(h shape.Handle, c geom.Color) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	hd.Stroke = c
	hd.Flags = hd.Flags.With(shape.FlagHasStroke, true)
	return true
}

// SetStrokeWidth sets the stroke width; negative widths clamp to zero.
func (s *Storage) SetStrokeWidth(h shape.Handle, w float32) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	if w < 0 {
		w = 0
	}
	hd.StrokeWidth = w
	return true
}

// SetOpacity sets the opacity, clamped to [0,1] on every write.
func (s *Storage) SetOpacity(h shape.Handle, opacity float32) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	hd.Opacity = clamp01(opacity)
	return true
}

// SetVisible toggles the visible flag.
func (s *Storage) SetVisible(h shape.Handle, v bool) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	hd.Flags = hd.Flags.With(shape.FlagVisible, v)
	return true
}

// SetGradient links the record to a gradient id previously returned by
// AddLinearGradient or AddRadialGradient.
func (s *Storage) SetGradient(h shape.Handle, id shape.ID) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	hd.Gradient = id
	hd.Flags = hd.Flags.With(shape.FlagHasGradient, id != shape.NoID)
	return true
}

// SetPattern links the record to a pattern id from AddPattern.
func (s *Storage) SetPattern(h shape.Handle, id shape.ID) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	hd.Pattern = id
	hd.Flags = hd.Flags.With(shape.FlagHasPattern, id != shape.NoID)
	return true
}

// SetName interns name and records it on the shape.
func (s *Storage) SetName(h shape.Handle, name string) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	hd.Name = s.Names.Intern(name)
	return true
}

// Name resolves the shape's name, or "" when unnamed.
func (s *Storage) Name(h shape.Handle) string {
	hd, ok := s.header(h)
	if !ok {
		return ""
	}
	name, err := s.Names.Resolve(hd.Name)
	if err != nil {
		return ""
	}
	return name
}

// AddLinearGradient registers a linear gradient and returns its id.
// Angle is in radians.
func (s *Storage) AddLinearGradient(stops []shape.GradientStop, angle float32) shape.ID {
	sp := s.GradientStops.Append(clampStops(stops))
	id := shape.ID(len(s.Gradients))
	s.Gradients = append(s.Gradients, shape.Gradient{Kind: shape.GradientLinear, Stops: sp, Angle: angle})
	return id
}

// AddRadialGradient registers a radial gradient and returns its id.
func (s *Storage) AddRadialGradient(stops []shape.GradientStop, center geom.Point, radius float32) shape.ID {
	sp := s.GradientStops.Append(clampStops(stops))
	id := shape.ID(len(s.Gradients))
	s.Gradients = append(s.Gradients, shape.Gradient{Kind: shape.GradientRadial, Stops: sp, Center: center, Radius: radius})
	return id
}

// Gradient returns the gradient definition for id.
func (s *Storage) Gradient(id shape.ID) (*shape.Gradient, bool) {
	if uint32(id) >= uint32(len(s.Gradients)) {
		return nil, false
	}
	return &s.Gradients[id], true
}

// AddPattern interns a pattern reference and returns its id.
func (s *Storage) AddPattern(name string) shape.ID {
	return s.Patterns.Intern(name)
}

// SetMetadata attaches key=value to the record. Writing an existing
// (owner, key) updates the entry in place: last write wins, no
// duplicates accumulate.
func (s *Storage) SetMetadata(h shape.Handle, key, value string) bool {
	hd, ok := s.header(h)
	if !ok {
		return false
	}
	kid := s.MetaKeys.Intern(key)
	vid := s.MetaValues.Intern(value)
	for i := range s.Meta {
		if s.Meta[i].Owner == h && s.Meta[i].Key == kid {
			s.Meta[i].Value = vid
			return true
		}
	}
	s.Meta = append(s.Meta, shape.MetaEntry{Key: kid, Value: vid, Owner: h})
	hd.Flags = hd.Flags.With(shape.FlagHasMetadata, true)
	return true
}

// MetadataValue returns the value stored under key for the record.
func (s *Storage) MetadataValue(h shape.Handle, key string) (string, bool) {
	kid, ok := s.MetaKeys.Lookup(key)
	if !ok {
		return "", false
	}
	for i := range s.Meta {
		if s.Meta[i].Owner == h && s.Meta[i].Key == kid {
			v, err := s.MetaValues.Resolve(s.Meta[i].Value)
			return v, err == nil
		}
	}
	return "", false
}

// MetadataAll returns every key/value pair attached to the record, in
// insertion order of the keys.
func (s *Storage) MetadataAll(h shape.Handle) [][2]string {
	var out [][2]string
	for i := range s.Meta {
		if s.Meta[i].Owner != h {
			continue
		}
		k, kerr := s.MetaKeys.Resolve(s.Meta[i].Key)
		v, verr := s.MetaValues.Resolve(s.Meta[i].Value)
		if kerr == nil && verr == nil {
			out = append(out, [2]string{k, v})
		}
	}
	return out
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampStops(stops []shape.GradientStop) []shape.GradientStop {
	out := make([]shape.GradientStop, len(stops))
	for i, st := range stops {
		st.Offset = clamp01(st.Offset)
		out[i] = st
	}
	return out
}
