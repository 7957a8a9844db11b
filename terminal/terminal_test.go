package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-engine/asset"
	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/input"
	"github.com/lixenwraith/vi-engine/render"
	"github.com/lixenwraith/vi-engine/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDeviceDrawRectIdentityCamera(t *testing.T) {
	screen := newScreen(t, 20, 10)
	dev := NewDevice(screen)
	w, h := dev.Size()
	require.Equal(t, 20, w)
	require.Equal(t, 10, h)

	dev.Clear(core.ColorBlack)
	dev.SetCamera(mgl32.Ident4(), mgl32.Ident4())
	dev.DrawRect(render.RectDraw{Rect: vmath.Rect{X: -1, Y: -1, W: 1, H: 1}, Color: core.ColorRed})
	require.NoError(t, dev.Present())

	red := tcellColor(core.ColorRed)
	assert.Equal(t, red, background(screen, 0, 5))
	assert.Equal(t, red, background(screen, 9, 9))
	assert.NotEqual(t, red, background(screen, 10, 5))
	assert.NotEqual(t, red, background(screen, 0, 4))
}

func TestDeviceOrthographicProjection(t *testing.T) {
	screen := newScreen(t, 20, 10)
	dev := NewDevice(screen)
	dev.Clear(core.ColorBlack)
	dev.SetCamera(mgl32.Ident4(), mgl32.Ortho(-10, 10, -5, 5, -1, 1))

	dev.DrawRect(render.RectDraw{Rect: vmath.Rect{X: 0, Y: 0, W: 2, H: 2}, Color: core.ColorBlue})
	blue := tcellColor(core.ColorBlue)
	for _, cell := range [][2]int{{10, 3}, {11, 3}, {10, 4}, {11, 4}} {
		assert.Equal(t, blue, background(screen, cell[0], cell[1]), "cell %v", cell)
	}
	assert.NotEqual(t, blue, background(screen, 12, 3))
	assert.NotEqual(t, blue, background(screen, 10, 5))

	x, y, ok := dev.Cell(mgl32.Vec3{-10, 5, 0})
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestDeviceQuadAndMesh(t *testing.T) {
	screen := newScreen(t, 20, 10)
	dev := NewDevice(screen)
	dev.Clear(core.ColorBlack)
	dev.SetCamera(mgl32.Ident4(), mgl32.Ortho(-10, 10, -5, 5, -1, 1))

	dev.DrawQuad(render.QuadDraw{
		Texture: asset.Texture{ID: 1, Glyph: '@'},
		Matrix:  mgl32.Translate3D(-5, 0, 0),
		Color:   core.ColorYellow,
	})
	r, _, _, _ := screen.GetContent(5, 5)
	assert.Equal(t, '@', r)

	// A null texture draws nothing
	dev.DrawQuad(render.QuadDraw{Matrix: mgl32.Translate3D(-4, 0, 0), Color: core.ColorYellow})
	r, _, _, _ = screen.GetContent(6, 5)
	assert.Equal(t, ' ', r)

	mesh := asset.Mesh{ID: 2, Bounds: vmath.AABBFromCenter(mgl32.Vec3{}, mgl32.Vec3{2, 2, 0})}
	dev.DrawMesh(render.MeshDraw{Mesh: mesh, Matrix: mgl32.Translate3D(5, 0, 0), Color: core.ColorGreen})
	r, _, _, _ = screen.GetContent(14, 4)
	assert.Equal(t, rune(meshGlyph), r)
	r, _, _, _ = screen.GetContent(16, 4)
	assert.Equal(t, ' ', r)
}

func TestDeviceThroughRenderBatch(t *testing.T) {
	screen := newScreen(t, 20, 10)
	dev := NewDevice(screen)

	ctx := engine.NewContext()
	batch := render.Install(ctx, dev)

	camEntity := ctx.World.Spawn("camera")
	cam := render.NewOrthographicCamera(10, -1, 1)
	ref, ok := engine.AddComponent(ctx.World, camEntity, cam)
	require.True(t, ok)
	batch.SetCamera(ref)
	batch.OnViewportResize(dev.Size())

	box := ctx.World.Spawn("box")
	tr, _ := ctx.World.Transform(box)
	tr.SetLocation(mgl32.Vec3{1, 1, 0})
	ctx.World.Attach(box, render.NewRectRenderer(vmath.Rect{X: -1, Y: -1, W: 2, H: 2}, core.ColorRed))

	require.NoError(t, batch.Render(ctx))
	assert.Equal(t, tcellColor(core.ColorRed), background(screen, 11, 4))
	assert.Equal(t, 1, batch.Stats().Draws)
}

type viewportSpy struct {
	w, h int
}

func (v *viewportSpy) OnViewportResize(w, h int) { v.w, v.h = w, h }

func TestPumpHandle(t *testing.T) {
	screen := newScreen(t, 20, 10)
	dev := NewDevice(screen)
	state := input.NewState(engine.NewMockTimeProvider(time.Unix(0, 0)))
	pump := NewPump(screen, state, dev, zerolog.Nop())
	spy := &viewportSpy{}
	pump.OnResize(spy)

	screen.SetSize(40, 12)
	pump.Handle(tcell.NewEventResize(40, 12))
	assert.Equal(t, 40, spy.w)
	assert.Equal(t, 12, spy.h)
	w, h := dev.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)

	pump.Handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	assert.True(t, state.Down(input.RuneKey('a')))
	assert.False(t, pump.QuitRequested())

	pump.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, pump.QuitRequested())
}

func TestPumpDrainsInjectedEvents(t *testing.T) {
	screen := newScreen(t, 20, 10)
	state := input.NewState(engine.NewMockTimeProvider(time.Unix(0, 0)))
	pump := NewPump(screen, state, NewDevice(screen), zerolog.Nop())
	pump.Start()
	defer pump.Stop()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	require.Eventually(t, func() bool {
		pump.Drain()
		return state.Down(input.RuneKey('x'))
	}, time.Second, 5*time.Millisecond)
}

func TestCrashReport(t *testing.T) {
	var buf bytes.Buffer
	writeCrash(&buf, "boom", []byte("goroutine 1 [running]"))
	assert.Contains(t, buf.String(), "CRASH DETECTED: boom")
	assert.Contains(t, buf.String(), "goroutine 1 [running]")

	// nil panics are ignored without touching the screen
	screen := newScreen(t, 4, 4)
	SetCrashScreen(screen)
	HandleCrash(nil)
	SetCrashScreen(nil)
}
