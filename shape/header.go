package shape

import "github.com/drawkit/drawgo/geom"

// Flags is the per-record flag bitset carried in every header.
type Flags uint16

const (
	FlagVisible Flags = 1 << iota
	FlagLocked
	FlagSelected
	FlagHasFill
	FlagHasStroke
	FlagHasTransform
	FlagHasGradient
	FlagHasPattern
	FlagHasMetadata
)

// DefaultFlags is the flag set of a freshly inserted record.
const DefaultFlags = FlagVisible | FlagHasFill

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// With returns f with the bits of f2 set or cleared.
func (f Flags) With(f2 Flags, on bool) Flags {
	if on {
		return f | f2
	}
	return f &^ f2
}

// ID references an entry in one of the intern tables or registries
// (names, patterns, gradients, text strings, font names). NoID is the
// sentinel meaning "not set".
type ID uint32

// NoID is the reserved "none" id used by shape headers.
const NoID ID = 1<<32 - 1

// Header is the common prefix every shape record carries: styling,
// layer reference and the optional gradient/pattern/name links.
type Header struct {
	Layer       uint8
	Flags       Flags
	Fill        geom.Color
	Stroke      geom.Color
	StrokeWidth float32
	Opacity     float32 // always clamped to [0,1]
	Gradient    ID
	Pattern     ID
	Name        ID
}

// DefaultHeader returns the header of a freshly inserted record:
// visible, filled black, hairline stroke width, fully opaque, no
// gradient/pattern/name.
func DefaultHeader() Header {
	return Header{
		Flags:       DefaultFlags,
		Fill:        geom.Black,
		Stroke:      geom.Black,
		StrokeWidth: 1,
		Opacity:     1,
		Gradient:    NoID,
		Pattern:     NoID,
		Name:        NoID,
	}
}
