package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/core"
)

// CallKind tags a recorded submission
type CallKind uint8

const (
	CallMesh CallKind = iota
	CallRect
	CallQuad
)

// Call is one recorded submission; only the field matching Kind is set
type Call struct {
	Kind CallKind
	Mesh MeshDraw
	Rect RectDraw
	Quad QuadDraw
}

// Frame is everything submitted between Clear and Present
type Frame struct {
	ClearColor core.Color
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Calls      []Call
}

// Recorder is a headless Device that keeps submitted frames
type Recorder struct {
	Width, Height int
	// PresentErr is returned from Present when set
	PresentErr error

	frames  []Frame
	current Frame
	open    bool
}

// NewRecorder creates a recorder reporting the given size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Clear(color core.Color) {
	r.current = Frame{ClearColor: color, View: mgl32.Ident4(), Projection: mgl32.Ident4()}
	r.open = true
}

func (r *Recorder) SetCamera(view, projection mgl32.Mat4) {
	r.current.View = view
	r.current.Projection = projection
}

func (r *Recorder) DrawMesh(d MeshDraw) {
	r.current.Calls = append(r.current.Calls, Call{Kind: CallMesh, Mesh: d})
}

func (r *Recorder) DrawRect(d RectDraw) {
	r.current.Calls = append(r.current.Calls, Call{Kind: CallRect, Rect: d})
}

func (r *Recorder) DrawQuad(d QuadDraw) {
	r.current.Calls = append(r.current.Calls, Call{Kind: CallQuad, Quad: d})
}

func (r *Recorder) Present() error {
	if r.PresentErr != nil {
		return r.PresentErr
	}
	if r.open {
		r.frames = append(r.frames, r.current)
		r.current = Frame{}
		r.open = false
	}
	return nil
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

// Frames returns presented frames in order
func (r *Recorder) Frames() []Frame { return r.frames }

// Last returns the most recently presented frame
func (r *Recorder) Last() (Frame, bool) {
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// Reset drops recorded frames
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}
