// Package input defines the input provider contract queried by behavior components
// and a State provider fed from terminal events.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-engine/engine"
)

// Key identifies a key; printable keys carry their rune under tcell.KeyRune
type Key struct {
	Code tcell.Key
	Rune rune
}

// RuneKey returns the key producing r
func RuneKey(r rune) Key { return Key{Code: tcell.KeyRune, Rune: r} }

// SpecialKey returns a non-printable key such as tcell.KeyUp
func SpecialKey(k tcell.Key) Key { return Key{Code: k} }

func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return "unknown"
}

// MouseButton is a bit set of pressed buttons
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Axis names an analog input in [-1, 1]
type Axis uint8

const (
	AxisMoveX Axis = iota
	AxisMoveY
	AxisLookX
	AxisLookY
	axisCount
)

// Provider is the read side of input, queried by behavior components only
type Provider interface {
	// Down reports whether k is currently held
	Down(k Key) bool
	// Pressed reports whether k went down this frame
	Pressed(k Key) bool
	Mouse() (x, y int, buttons MouseButton)
	Axis(a Axis) float32
}

type providerResource struct {
	Provider
}

// Install publishes p on the context resources
func Install(ctx *engine.Context, p Provider) {
	engine.AddResource(ctx.Resources, &providerResource{Provider: p})
}

// From returns the provider published on the context
func From(ctx *engine.Context) (Provider, bool) {
	r, ok := engine.GetResource[*providerResource](ctx.Resources)
	if !ok {
		return nil, false
	}
	return r.Provider, true
}
