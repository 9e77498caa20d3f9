package drawgo

import (
	"log/slog"

	"github.com/drawkit/drawgo/geom"
	"github.com/drawkit/drawgo/persistence"
)

type options struct {
	width       float32
	height      float32
	background  geom.Color
	logger      *Logger
	compression persistence.Compression
}

// Option configures Drawing constructor/load behavior.
type Option func(*options)

// WithCanvasSize sets the canvas dimensions of a new drawing.
func WithCanvasSize(width, height float32) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c geom.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := drawgo.NewJSONLogger(slog.LevelInfo)
//	d := drawgo.New(drawgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithCompression selects the codec applied when the drawing is saved.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		width:       800,
		height:      600,
		background:  geom.White,
		logger:      NoopLogger(),
		compression: persistence.CompressionNone,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
