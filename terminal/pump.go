package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-engine/input"
)

// ViewportListener receives window size changes
type ViewportListener interface {
	OnViewportResize(width, height int)
}

// Pump moves screen events onto the frame thread
// Events are collected by a goroutine and applied only in Drain
type Pump struct {
	screen    tcell.Screen
	state     *input.State
	device    *Device
	listeners []ViewportListener
	logger    zerolog.Logger

	events   chan tcell.Event
	quit     chan struct{}
	stopOnce sync.Once
	started  bool
	closed   bool

	quitRequested bool
}

// NewPump creates a pump feeding state and notifying device resizes
func NewPump(screen tcell.Screen, state *input.State, device *Device, logger zerolog.Logger) *Pump {
	return &Pump{
		screen: screen,
		state:  state,
		device: device,
		logger: logger,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
	}
}

// OnResize registers a listener for viewport changes
func (p *Pump) OnResize(l ViewportListener) {
	p.listeners = append(p.listeners, l)
}

// Start begins collecting events in the background
func (p *Pump) Start() {
	if p.started {
		return
	}
	p.started = true
	Go(func() { p.screen.ChannelEvents(p.events, p.quit) })
}

// Stop ends event collection
func (p *Pump) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
}

// Drain applies every pending event without blocking and returns how many were handled
func (p *Pump) Drain() int {
	n := 0
	for !p.closed {
		select {
		case ev, ok := <-p.events:
			if !ok {
				p.closed = true
				return n
			}
			p.Handle(ev)
			n++
		default:
			return n
		}
	}
	return n
}

// Handle applies a single event
func (p *Pump) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		if p.device != nil {
			p.device.Resize()
		}
		for _, l := range p.listeners {
			l.OnViewportResize(w, h)
		}
		p.logger.Debug().Int("width", w).Int("height", h).Msg("viewport resized")
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			p.quitRequested = true
			p.logger.Info().Str("key", ev.Name()).Msg("quit requested")
			return
		}
		p.state.HandleEvent(ev)
	default:
		p.state.HandleEvent(ev)
	}
}

// QuitRequested reports whether the user asked to exit
func (p *Pump) QuitRequested() bool { return p.quitRequested }
