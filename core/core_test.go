package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityZeroIsInvalid(t *testing.T) {
	var e Entity
	assert.True(t, e.IsZero())
	assert.Equal(t, "entity(nil)", e.String())

	e = Entity{Index: 0, Generation: 1}
	assert.False(t, e.IsZero())
	assert.Equal(t, "entity(0:1)", e.String())
}

func TestAssertPanicsOnViolation(t *testing.T) {
	if !AssertionsEnabled() {
		t.Skip("assertions compiled out")
	}
	require.NotPanics(t, func() { Assert(true, "never") })

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected error panic, got %v", r)
		assert.Contains(t, err.Error(), "slot 3 out of range")
	}()
	Assert(false, "slot %d out of range", 3)
}

func TestColorModulate(t *testing.T) {
	c := ColorWhite.Modulate(Color{128, 64, 0, 255})
	assert.Equal(t, Color{128, 64, 0, 255}, c)
	assert.Equal(t, ColorBlack, ColorBlack.Modulate(ColorWhite))
}

func TestColorLerp(t *testing.T) {
	assert.Equal(t, ColorBlack, ColorBlack.Lerp(ColorWhite, 0))
	assert.Equal(t, ColorWhite, ColorBlack.Lerp(ColorWhite, 1))
	mid := ColorBlack.Lerp(ColorWhite, 0.5)
	assert.InDelta(t, 127, int(mid.R), 1)
}
