package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-engine/engine"
)

// DefaultHoldWindow keeps a key down between terminal auto-repeat events
const DefaultHoldWindow = 150 * time.Millisecond

// State tracks keys, mouse and axes between frames
// Terminals report no key-up events, so a key stays down for HoldWindow after its last event
type State struct {
	HoldWindow time.Duration

	clock   engine.Clock
	seen    map[Key]time.Time
	pressed map[Key]struct{}
	mouseX  int
	mouseY  int
	buttons MouseButton
	axes    [axisCount]float32
}

// NewState creates a state sampling the given clock
func NewState(clock engine.Clock) *State {
	return &State{
		HoldWindow: DefaultHoldWindow,
		clock:      clock,
		seen:       make(map[Key]time.Time),
		pressed:    make(map[Key]struct{}),
	}
}

// HandleEvent applies key and mouse events; other events are ignored
// Returns true when the event was consumed
func (s *State) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := Key{Code: ev.Key()}
		if k.Code == tcell.KeyRune {
			k.Rune = ev.Rune()
		}
		s.KeyDown(k)
		return true
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.mouseX, s.mouseY = x, y
		s.buttons = mouseButtons(ev.Buttons())
		return true
	}
	return false
}

// KeyDown records k as pressed now
func (s *State) KeyDown(k Key) {
	if !s.Down(k) {
		s.pressed[k] = struct{}{}
	}
	s.seen[k] = s.clock.Now()
}

// KeyUp releases k immediately
func (s *State) KeyUp(k Key) {
	delete(s.seen, k)
}

func (s *State) Down(k Key) bool {
	at, ok := s.seen[k]
	if !ok {
		return false
	}
	return s.clock.Now().Sub(at) <= s.HoldWindow
}

func (s *State) Pressed(k Key) bool {
	_, ok := s.pressed[k]
	return ok
}

func (s *State) Mouse() (int, int, MouseButton) {
	return s.mouseX, s.mouseY, s.buttons
}

func (s *State) Axis(a Axis) float32 {
	if a >= axisCount {
		return 0
	}
	return s.axes[a]
}

// SetAxis sets an analog value, clamped to [-1, 1]
func (s *State) SetAxis(a Axis, v float32) {
	if a >= axisCount {
		return
	}
	s.axes[a] = max(-1, min(1, v))
}

// EndFrame clears edge state and forgets expired keys
func (s *State) EndFrame() {
	clear(s.pressed)
	now := s.clock.Now()
	for k, at := range s.seen {
		if now.Sub(at) > s.HoldWindow {
			delete(s.seen, k)
		}
	}
}

func mouseButtons(b tcell.ButtonMask) MouseButton {
	var out MouseButton
	if b&tcell.Button1 != 0 {
		out |= MouseLeft
	}
	if b&tcell.Button2 != 0 {
		out |= MouseRight
	}
	if b&tcell.Button3 != 0 {
		out |= MouseMiddle
	}
	return out
}
