package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-engine/engine"
)

func newState() (*State, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	return NewState(clock), clock
}

func TestKeyHoldWindow(t *testing.T) {
	s, clock := newState()
	w := RuneKey('w')

	require.True(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, s.Down(w))
	assert.True(t, s.Pressed(w))

	s.EndFrame()
	assert.False(t, s.Pressed(w), "edge state lasts one frame")
	assert.True(t, s.Down(w))

	// Auto-repeat keeps the key held without a new edge
	clock.Advance(100 * time.Millisecond)
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	assert.False(t, s.Pressed(w))

	clock.Advance(DefaultHoldWindow + time.Millisecond)
	assert.False(t, s.Down(w))
	s.EndFrame()

	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	assert.True(t, s.Pressed(w))
}

func TestSpecialKeysAndRelease(t *testing.T) {
	s, _ := newState()
	up := SpecialKey(tcell.KeyUp)

	s.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.True(t, s.Down(up))
	assert.False(t, s.Down(RuneKey('w')))
	assert.Equal(t, "Up", up.String())
	assert.Equal(t, "w", RuneKey('w').String())

	s.KeyUp(up)
	assert.False(t, s.Down(up))
}

func TestMouseAndAxes(t *testing.T) {
	s, _ := newState()
	require.True(t, s.HandleEvent(tcell.NewEventMouse(4, 9, tcell.Button1|tcell.Button3, tcell.ModNone)))
	x, y, b := s.Mouse()
	assert.Equal(t, 4, x)
	assert.Equal(t, 9, y)
	assert.Equal(t, MouseLeft|MouseMiddle, b)

	assert.False(t, s.HandleEvent(tcell.NewEventResize(10, 10)))

	s.SetAxis(AxisMoveX, 3)
	s.SetAxis(AxisMoveY, -0.5)
	assert.Equal(t, float32(1), s.Axis(AxisMoveX))
	assert.Equal(t, float32(-0.5), s.Axis(AxisMoveY))
	assert.Equal(t, float32(0), s.Axis(axisCount))
}

func TestProviderOnContext(t *testing.T) {
	ctx := engine.NewContext()
	_, ok := From(ctx)
	assert.False(t, ok)

	s, _ := newState()
	Install(ctx, s)
	p, ok := From(ctx)
	require.True(t, ok)
	assert.Same(t, s, p.(*State))
}
