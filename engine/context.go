package engine

import (
	"time"

	"github.com/rs/zerolog"
)

// Context is the explicit per-call dependency carrier handed to every lifecycle hook
// Components reach shared services (physics, render batch, input) through Resources
type Context struct {
	World     *World
	Resources *ResourceStore
	Logger    zerolog.Logger
	Clock     Clock

	// Frame state, advanced by BeginFrame
	Frame int64
	Delta time.Duration
	Time  time.Time
}

// Option configures a Context at construction
type Option func(*Context)

// WithLogger sets the structured logger carried by the context
func WithLogger(l zerolog.Logger) Option {
	return func(c *Context) { c.Logger = l }
}

// WithClock replaces the wall clock, typically with a MockTimeProvider in tests
func WithClock(clock Clock) Option {
	return func(c *Context) { c.Clock = clock }
}

// NewContext creates a context owning a fresh World and resource store
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		Resources: NewResourceStore(),
		Logger:    zerolog.Nop(),
		Clock:     NewTimeProvider(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.Time = ctx.Clock.Now()
	ctx.World = newWorld(ctx)
	return ctx
}

// BeginFrame advances frame counters before the update pass
func (c *Context) BeginFrame(dt time.Duration) {
	c.Frame++
	c.Delta = dt
	c.Time = c.Clock.Now()
}

// DeltaSeconds returns the frame delta as float seconds for per-frame integration
func (c *Context) DeltaSeconds() float32 {
	return float32(c.Delta.Seconds())
}
