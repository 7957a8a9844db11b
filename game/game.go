// Package game wires the world, physics, render batch, input and assets into a
// fixed-rate frame loop and records frame metrics.
package game

import (
	"context"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-engine/asset"
	"github.com/lixenwraith/vi-engine/config"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/input"
	"github.com/lixenwraith/vi-engine/physics"
	"github.com/lixenwraith/vi-engine/render"
)

// ServiceName prefixes every metric key
const ServiceName = "vi-engine"

// EventSource delivers window and input events between frames
type EventSource interface {
	Drain() int
	QuitRequested() bool
}

// Options configures New. Device is required
type Options struct {
	Config config.Config
	Device render.Device
	Input  *input.State
	Events EventSource
	Logger zerolog.Logger
	Clock  engine.Clock
	// Sink receives metrics; an in-memory sink is created when nil
	Sink metrics.MetricSink
}

// Game owns the per-frame pipeline
type Game struct {
	Ctx     *engine.Context
	Physics *physics.Physics
	Batch   *render.RenderBatch
	Assets  *asset.Registry
	Input   *input.State

	cfg     config.Config
	events  EventSource
	metrics *metrics.Metrics
	inmem   *metrics.InmemSink
	frames  int
}

// New builds the engine services and publishes them on a fresh context
func New(opts Options) (*Game, error) {
	if opts.Device == nil {
		return nil, eris.New("game requires a render device")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid config")
	}

	ctxOpts := []engine.Option{engine.WithLogger(opts.Logger)}
	if opts.Clock != nil {
		ctxOpts = append(ctxOpts, engine.WithClock(opts.Clock))
	}
	ctx := engine.NewContext(ctxOpts...)

	g := &Game{
		Ctx:     ctx,
		Physics: physics.Install(ctx),
		Batch:   render.Install(ctx, opts.Device),
		Assets:  asset.NewRegistry(),
		Input:   opts.Input,
		cfg:     opts.Config,
		events:  opts.Events,
	}
	asset.Install(ctx, g.Assets)
	if g.Input != nil {
		input.Install(ctx, g.Input)
	}

	g.Physics.Debug = opts.Config.PhysicsDebug
	g.Physics.SetDebugDrawer(g.Batch)

	sink := opts.Sink
	if sink == nil {
		g.inmem = metrics.NewInmemSink(10*time.Second, time.Minute)
		sink = g.inmem
	}
	mcfg := metrics.DefaultConfig(ServiceName)
	mcfg.EnableHostname = false
	mcfg.EnableRuntimeMetrics = false
	m, err := metrics.New(mcfg, sink)
	if err != nil {
		return nil, eris.Wrap(err, "create metrics")
	}
	g.metrics = m

	opts.Logger.Info().
		Int("fps", opts.Config.FPS).
		Bool("physics_debug", opts.Config.PhysicsDebug).
		Msg("engine ready")
	return g, nil
}

// Frames returns the number of completed ticks
func (g *Game) Frames() int { return g.frames }

// Metrics returns the metrics instance
func (g *Game) Metrics() *metrics.Metrics { return g.metrics }

// InmemSink returns the default sink, nil when a custom sink was supplied
func (g *Game) InmemSink() *metrics.InmemSink { return g.inmem }

// Tick runs one frame: update, render hooks, batch render, deferred destruction, input edge reset
// Destruction runs even when presenting fails
func (g *Game) Tick(dt time.Duration) error {
	start := time.Now()
	ctx := g.Ctx

	ctx.BeginFrame(dt)
	ctx.World.Update(ctx)
	ctx.World.Render(ctx)
	renderErr := g.Batch.Render(ctx)
	ctx.World.Flush(ctx)
	if g.Input != nil {
		g.Input.EndFrame()
	}
	g.frames++

	rs := g.Batch.Stats()
	ps := g.Physics.Stats()
	g.metrics.IncrCounter([]string{"frames"}, 1)
	g.metrics.SetGauge([]string{"world", "entities"}, float32(ctx.World.Count()))
	g.metrics.SetGauge([]string{"physics", "colliders"}, float32(g.Physics.Count()))
	g.metrics.SetGauge([]string{"physics", "raycasts"}, float32(ps.Raycasts))
	g.metrics.SetGauge([]string{"render", "draws"}, float32(rs.Draws+rs.DebugDraws))
	g.metrics.AddSample([]string{"render", "visited"}, float32(rs.Visited))
	g.metrics.MeasureSince([]string{"frame", "time"}, start)

	if renderErr != nil {
		ctx.Logger.Error().Err(renderErr).Int64("frame", ctx.Frame).Msg("render failed")
		return renderErr
	}
	return nil
}

// Run ticks at the configured rate until ctx is cancelled, the event source asks to
// quit, MaxFrames is reached or a frame fails
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cfg.FrameDuration())
	defer ticker.Stop()

	last := g.Ctx.Clock.Now()
	for {
		if g.cfg.MaxFrames > 0 && g.frames >= g.cfg.MaxFrames {
			g.Ctx.Logger.Info().Int("frames", g.frames).Msg("frame limit reached")
			return nil
		}
		if g.events != nil {
			g.events.Drain()
			if g.events.QuitRequested() {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		now := g.Ctx.Clock.Now()
		dt := now.Sub(last)
		last = now
		if err := g.Tick(dt); err != nil {
			return err
		}
	}
}

// Shutdown kills every entity and releases metrics
func (g *Game) Shutdown() {
	g.Ctx.World.Clear(g.Ctx)
	g.metrics.Shutdown()
}
