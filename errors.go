package drawgo

import (
	"github.com/drawkit/drawgo/persistence"
	"github.com/drawkit/drawgo/shape"
	"github.com/drawkit/drawgo/store"
)

// Re-exported sentinels so most callers only import the root package.
var (
	// ErrCapacityExceeded is returned when a shape table reaches the
	// 24-bit handle index limit.
	ErrCapacityExceeded = shape.ErrCapacityExceeded

	// ErrTooManyLayers is returned when a drawing reaches the layer limit.
	ErrTooManyLayers = store.ErrTooManyLayers

	// ErrMalformed is returned by Load for any structurally invalid
	// input: bad magic, unsupported version, truncated chunks or counts
	// beyond the sanity ceilings.
	ErrMalformed = persistence.ErrMalformed
)
