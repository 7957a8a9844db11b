package behavior

import (
	"time"

	"github.com/lixenwraith/vi-engine/engine"
)

// Lifetime kills its owner once Duration of frame time has elapsed
type Lifetime struct {
	engine.Base

	Duration time.Duration

	elapsed time.Duration
}

func NewLifetime(d time.Duration) *Lifetime {
	return &Lifetime{Duration: d}
}

// Remaining returns the time left before the owner is killed
func (l *Lifetime) Remaining() time.Duration {
	return max(0, l.Duration-l.elapsed)
}

func (l *Lifetime) Update(ctx *engine.Context) {
	l.elapsed += ctx.Delta
	if l.elapsed < l.Duration {
		return
	}
	ctx.Logger.Debug().
		Stringer("entity", l.Owner()).
		Dur("lifetime", l.Duration).
		Msg("lifetime expired")
	ctx.World.Kill(l.Owner())
}
