// Package persistence implements the chunked binary format for whole
// scenes: a fixed magic and version, then a sequence of typed,
// length-prefixed chunks in a fixed order, terminated by an explicit
// end marker. Deserialization is all-or-nothing: any inconsistency
// fails the load and no partial scene is ever returned.
package persistence

import (
	"errors"
	"fmt"
)

const (
	// Magic identifies drawgo scene files (ASCII "DRW1").
	Magic uint32 = 0x44525731
	// Version is the current file format version.
	Version uint32 = 1

	// MaxElements is the sanity ceiling on any declared element count.
	// It guards against corrupt length fields causing huge allocations.
	MaxElements = 10_000_000
	// MaxStringLen is the sanity ceiling on any length-prefixed string.
	MaxStringLen = 1_000_000

	// maxChunkPayload bounds a single chunk body.
	maxChunkPayload = 1 << 30
)

// Chunk type tags. The values are part of the format and must not be
// reordered. Chunks are written in ascending tag order, with each
// table's pool chunks immediately after the table chunk.
const (
	chunkHeader         uint16 = 1
	chunkLayer          uint16 = 2
	chunkCircles        uint16 = 3
	chunkRectangles     uint16 = 4
	chunkLines          uint16 = 5
	chunkPolygons       uint16 = 6
	chunkPolygonPoints  uint16 = 7
	chunkEllipses       uint16 = 8
	chunkPolylines      uint16 = 9
	chunkPolylinePoints uint16 = 10
	chunkArcs           uint16 = 11
	chunkTexts          uint16 = 12
	chunkTextStrings    uint16 = 13
	chunkFontNames      uint16 = 14
	chunkPaths          uint16 = 15
	chunkPathSegments   uint16 = 16
	chunkPathParams     uint16 = 17
	chunkGroups         uint16 = 18
	chunkGroupChildren  uint16 = 19
	chunkGradients      uint16 = 20
	chunkGradientStops  uint16 = 21
	chunkPatternNames   uint16 = 22
	chunkObjectNames    uint16 = 23
	chunkMetaKeys       uint16 = 24
	chunkMetaValues     uint16 = 25
	chunkMetadata       uint16 = 26
	chunkEnd            uint16 = 999
)

// ErrMalformed is the umbrella error for every load failure; the
// specific sentinels below all wrap it, so callers can match either
// the broad or the narrow condition.
var (
	ErrMalformed      = errors.New("persistence: malformed scene data")
	ErrInvalidMagic   = fmt.Errorf("%w: invalid magic", ErrMalformed)
	ErrInvalidVersion = fmt.Errorf("%w: unsupported version", ErrMalformed)
	ErrCountTooLarge  = fmt.Errorf("%w: declared count exceeds sanity ceiling", ErrMalformed)
	ErrTruncated      = fmt.Errorf("%w: stream ended before declared content", ErrMalformed)
	ErrUnknownChunk   = fmt.Errorf("%w: unknown chunk type", ErrMalformed)
)
