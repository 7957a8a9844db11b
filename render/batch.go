package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/vmath"
)

type batchEntry struct {
	drawer   Drawer
	phase    Phase
	priority int
	seq      uint64 // registration order for stable sort
}

func (e batchEntry) before(o batchEntry) bool {
	if e.phase != o.phase {
		return e.phase < o.phase
	}
	if e.priority != o.priority {
		return e.priority < o.priority
	}
	return e.seq < o.seq
}

// Stats describes the last rendered frame plus the frame total
type Stats struct {
	Frames     uint64
	Registered int
	Visited    int
	Skipped    int
	Draws      int
	DebugDraws int
}

// RenderBatch keeps registered drawers ordered by (phase, priority, registration) and
// dispatches them to the device once per frame
type RenderBatch struct {
	ClearColor core.Color

	device  Device
	camera  engine.Ref[*Camera]
	entries []batchEntry
	pending []batchEntry
	holes   int
	seq     uint64
	drawing bool
	debug   []RectDraw
	stats   Stats
}

// NewRenderBatch creates a batch drawing to dev
func NewRenderBatch(dev Device) *RenderBatch {
	return &RenderBatch{
		ClearColor: core.ColorBlack,
		device:     dev,
		entries:    make([]batchEntry, 0, 64),
	}
}

// Install creates a batch and publishes it on the context resources
func Install(ctx *engine.Context, dev Device) *RenderBatch {
	b := NewRenderBatch(dev)
	engine.AddResource(ctx.Resources, b)
	return b
}

// From returns the batch published on the context
func From(ctx *engine.Context) (*RenderBatch, bool) {
	return engine.GetResource[*RenderBatch](ctx.Resources)
}

// Device returns the backend
func (b *RenderBatch) Device() Device { return b.device }

// SetCamera selects the camera applied at the start of each frame
// An invalid ref renders with identity matrices
func (b *RenderBatch) SetCamera(cam engine.Ref[*Camera]) {
	b.camera = cam
}

// Camera returns the active camera while it is alive
func (b *RenderBatch) Camera() (*Camera, bool) {
	return b.camera.Get()
}

// OnViewportResize forwards a window size change to the active camera
func (b *RenderBatch) OnViewportResize(width, height int) {
	if cam, ok := b.camera.Get(); ok {
		cam.OnViewportResize(width, height)
	}
}

func (b *RenderBatch) add(d Drawer) {
	e := batchEntry{
		drawer:   d,
		phase:    d.Phase(),
		priority: engine.BaseOf(d).PriorityOrder(),
		seq:      b.seq,
	}
	b.seq++

	if b.drawing {
		b.pending = append(b.pending, e)
		return
	}
	b.insert(e)
}

// insert places e with an insertion sort, keeping equal keys in registration order
func (b *RenderBatch) insert(e batchEntry) {
	pos := len(b.entries)
	for i, o := range b.entries {
		if o.drawer != nil && e.before(o) {
			pos = i
			break
		}
	}
	b.entries = append(b.entries, batchEntry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = e
}

// remove tolerates calls during Render by leaving a hole compacted afterwards
func (b *RenderBatch) remove(d Drawer) {
	for i, p := range b.pending {
		if p.drawer == d {
			b.pending = append(b.pending[:i], b.pending[i+1:]...)
			return
		}
	}
	for i, e := range b.entries {
		if e.drawer != d {
			continue
		}
		if b.drawing {
			b.entries[i].drawer = nil
			b.holes++
		} else {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
		}
		return
	}
}

func (b *RenderBatch) settle() {
	if b.holes > 0 {
		n := 0
		for _, e := range b.entries {
			if e.drawer != nil {
				b.entries[n] = e
				n++
			}
		}
		clear(b.entries[n:])
		b.entries = b.entries[:n]
		b.holes = 0
	}
	for _, e := range b.pending {
		b.insert(e)
	}
	b.pending = b.pending[:0]
}

// Count returns the number of registered drawers
func (b *RenderBatch) Count() int {
	return len(b.entries) - b.holes + len(b.pending)
}

// Drawers returns registered drawers in draw order
func (b *RenderBatch) Drawers() []Drawer {
	out := make([]Drawer, 0, len(b.entries))
	for _, e := range b.entries {
		if e.drawer != nil {
			out = append(out, e.drawer)
		}
	}
	return out
}

// DrawDebugRect queues an outline drawn after all phases
func (b *RenderBatch) DrawDebugRect(r vmath.Rect, color core.Color) {
	b.QueueDebug(RectDraw{Rect: r, Color: color})
}

// QueueDebug queues a rect for the current frame's debug pass
func (b *RenderBatch) QueueDebug(d RectDraw) {
	b.debug = append(b.debug, d)
}

// Render draws one frame: clear and camera, ordered drawers, debug queue, present
func (b *RenderBatch) Render(ctx *engine.Context) error {
	dev := &countingDevice{Device: b.device}
	b.beginRender(dev)

	visited, skipped := 0, 0
	b.drawing = true
	for i := 0; i < len(b.entries); i++ {
		d := b.entries[i].drawer
		if d == nil {
			continue
		}
		if !engine.BaseOf(d).Runnable() {
			skipped++
			continue
		}
		if vt, ok := d.(VisibilityToggle); ok && !vt.IsVisible() {
			skipped++
			continue
		}
		visited++
		d.Draw(ctx, dev)
	}
	b.drawing = false
	b.settle()

	mainDraws := dev.draws
	for _, r := range b.debug {
		dev.DrawRect(r)
	}
	b.debug = b.debug[:0]

	b.stats = Stats{
		Frames:     b.stats.Frames + 1,
		Registered: b.Count(),
		Visited:    visited,
		Skipped:    skipped,
		Draws:      mainDraws,
		DebugDraws: dev.draws - mainDraws,
	}
	ctx.Logger.Trace().
		Int("visited", visited).
		Int("draws", dev.draws).
		Msg("frame rendered")

	return b.endRender()
}

func (b *RenderBatch) beginRender(dev Device) {
	dev.Clear(b.ClearColor)
	if cam, ok := b.camera.Get(); ok {
		dev.SetCamera(cam.View(), cam.Projection())
		return
	}
	dev.SetCamera(mgl32.Ident4(), mgl32.Ident4())
}

func (b *RenderBatch) endRender() error {
	if err := b.device.Present(); err != nil {
		return eris.Wrap(err, "present frame")
	}
	return nil
}

// Stats returns counters for the last rendered frame
func (b *RenderBatch) Stats() Stats {
	return b.stats
}
