package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawkit/drawgo/shape"
)

func TestInsertPath_Parsing(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		commands int
		complete bool
		ops      []shape.SegOp
	}{
		{
			name:     "move line close",
			data:     "M 10 20 L 30 40 Z",
			commands: 3,
			complete: true,
			ops:      []shape.SegOp{shape.SegMove, shape.SegLine, shape.SegClose},
		},
		{
			name:     "commas and glued letters",
			data:     "M10,20L30,40",
			commands: 2,
			complete: true,
			ops:      []shape.SegOp{shape.SegMove, shape.SegLine},
		},
		{
			name:     "cubic quad arc",
			data:     "M 0 0 C 1 2 3 4 5 6 Q 7 8 9 10 A 5 5 0 0 1 10 10",
			commands: 4,
			complete: true,
			ops:      []shape.SegOp{shape.SegMove, shape.SegCubic, shape.SegQuad, shape.SegArc},
		},
		{
			name:     "lowercase accepted as absolute",
			data:     "m 1 2 l 3 4 z",
			commands: 3,
			complete: true,
			ops:      []shape.SegOp{shape.SegMove, shape.SegLine, shape.SegClose},
		},
		{
			name:     "malformed number truncates",
			data:     "M 10 20 L 30 oops",
			commands: 1,
			complete: false,
			ops:      []shape.SegOp{shape.SegMove},
		},
		{
			name:     "premature end truncates",
			data:     "M 10 20 C 1 2 3",
			commands: 1,
			complete: false,
			ops:      []shape.SegOp{shape.SegMove},
		},
		{
			name:     "unknown command truncates",
			data:     "M 0 0 X 1 2",
			commands: 1,
			complete: false,
			ops:      []shape.SegOp{shape.SegMove},
		},
		{
			name:     "empty data",
			data:     "",
			commands: 0,
			complete: true,
			ops:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			h, parse, err := s.InsertPath(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.commands, parse.Commands)
			assert.Equal(t, tt.complete, parse.Complete)

			p, ok := s.Path(h)
			require.True(t, ok)
			segs := s.PathSegments.Slice(p.Segments)
			require.Len(t, segs, len(tt.ops))
			for i, op := range tt.ops {
				assert.Equal(t, op, segs[i].Op)
				assert.Len(t, s.PathParams.Slice(segs[i].Params), op.ParamCount())
			}
		})
	}
}

func TestInsertPath_TruncatedParamsNotPooled(t *testing.T) {
	s := New()
	_, parse, err := s.InsertPath("M 1 2 C 3 4 5")
	require.NoError(t, err)
	assert.Equal(t, 1, parse.Commands)
	assert.False(t, parse.Complete)

	// Only the completed M command's params reach the pool; the
	// truncated C contributes nothing.
	assert.Equal(t, 2, s.PathParams.Len())
}

func TestInsertPath_ParamValues(t *testing.T) {
	s := New()
	h, parse, err := s.InsertPath("M 1.5 -2.25 L 3 4")
	require.NoError(t, err)
	require.True(t, parse.Complete)

	p, _ := s.Path(h)
	segs := s.PathSegments.Slice(p.Segments)
	require.Len(t, segs, 2)
	assert.Equal(t, []float32{1.5, -2.25}, s.PathParams.Slice(segs[0].Params))
	assert.Equal(t, []float32{3, 4}, s.PathParams.Slice(segs[1].Params))
}
