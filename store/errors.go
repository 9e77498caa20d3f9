package store

import (
	"errors"

	"github.com/drawkit/drawgo/shape"
)

var (
	// ErrCapacityExceeded is returned when a kind table has exhausted
	// its 24-bit index space. Alias of shape.ErrCapacityExceeded so
	// callers can match either.
	ErrCapacityExceeded = shape.ErrCapacityExceeded

	// ErrNotFound indicates an id that was never issued by the pool or
	// registry it was presented to. Handle lookups do not use it; they
	// report missing records through their boolean result instead.
	ErrNotFound = errors.New("store: not found")

	// ErrTooManyLayers is returned when the 255-layer ceiling is hit.
	ErrTooManyLayers = errors.New("store: maximum number of layers (255) reached")
)
