package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawkit/drawgo/shape"
)

func TestIntern_Dedup(t *testing.T) {
	var in Intern

	a := in.Intern("Arial")
	b := in.Intern("Helvetica")
	again := in.Intern("Arial")

	assert.Equal(t, a, again)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, in.Len())
}

func TestIntern_Resolve(t *testing.T) {
	var in Intern
	id := in.Intern("title")

	s, err := in.Resolve(id)
	require.NoError(t, err)
	assert.Equal(t, "title", s)

	// NoID is the "unnamed" sentinel, not an error.
	s, err = in.Resolve(shape.NoID)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	// An id never issued is an error.
	_, err = in.Resolve(shape.ID(99))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIntern_EmptyString(t *testing.T) {
	var in Intern
	id := in.Intern("")
	s, err := in.Resolve(id)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, in.Intern(""), id)
}

func TestIntern_Reset(t *testing.T) {
	var in Intern
	in.Intern("old")

	in.Reset([]string{"x", "y", "x"})
	assert.Equal(t, 3, in.Len())

	s, err := in.Resolve(shape.ID(2))
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	// Lookup returns the first occurrence.
	id, ok := in.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, shape.ID(0), id)
}
