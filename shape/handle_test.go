package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeHandle_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		index uint32
	}{
		{name: "zero index", kind: KindCircle, index: 0},
		{name: "small index", kind: KindRectangle, index: 42},
		{name: "max index", kind: KindGroup, index: MaxIndex},
		{name: "high kind low index", kind: KindPath, index: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := MakeHandle(tt.kind, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, h.Kind())
			assert.Equal(t, tt.index, h.Index())
			assert.False(t, h.IsNone())
		})
	}
}

func TestMakeHandle_CapacityBoundary(t *testing.T) {
	_, err := MakeHandle(KindCircle, MaxIndex)
	require.NoError(t, err)

	_, err = MakeHandle(KindCircle, MaxIndex+1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestHandle_Zero(t *testing.T) {
	var h Handle
	assert.True(t, h.IsNone())
	assert.Equal(t, KindNone, h.Kind())
	assert.Equal(t, uint32(0), h.Index())
}

func TestHandle_KindOrdering(t *testing.T) {
	// The kind occupies the top byte, so handles sort by kind first.
	// The selection package relies on this for grouped iteration.
	a, err := MakeHandle(KindCircle, MaxIndex)
	require.NoError(t, err)
	b, err := MakeHandle(KindRectangle, 0)
	require.NoError(t, err)
	assert.Less(t, uint32(a), uint32(b))
}
