package main

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/vi-engine/asset"
	"github.com/lixenwraith/vi-engine/behavior"
	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/game"
	"github.com/lixenwraith/vi-engine/physics"
	"github.com/lixenwraith/vi-engine/render"
	"github.com/lixenwraith/vi-engine/vmath"
)

const (
	shellSpeed    = 20
	shellLifetime = 3 * time.Second
	fireInterval  = 800 * time.Millisecond
)

// launcher fires shells along its owner's forward axis
type launcher struct {
	engine.Base
	texture asset.Texture
	since   time.Duration
}

func (l *launcher) Update(ctx *engine.Context) {
	l.since += ctx.Delta
	if l.since < fireInterval {
		return
	}
	l.since = 0

	t := l.Transform()
	dir := t.WorldRotation().Rotate(vmath.Forward)
	shell := ctx.World.Spawn("shell")
	st, _ := ctx.World.Transform(shell)
	// Spawn outside the launcher's own collider
	st.SetLocation(t.WorldLocation().Add(dir.Mul(1.5)))

	move := behavior.NewMovement(0)
	move.Velocity = dir.Mul(shellSpeed)
	move.Bindings = nil
	ctx.World.Attach(shell, move)
	ctx.World.Attach(shell, behavior.NewLifetime(shellLifetime))
	ctx.World.Attach(shell, &impact{move: engine.RefOf(move)})
	ctx.World.Attach(shell, render.NewSpriteRenderer(l.texture))
}

// impact kills its owner once its movement hits something
type impact struct {
	engine.Base
	move engine.Ref[*behavior.Movement]
}

func (i *impact) Update(ctx *engine.Context) {
	m, ok := i.move.Get()
	if !ok || m.Blocked() {
		ctx.World.Kill(i.Owner())
	}
}

func registerAssets(reg *asset.Registry) (map[string]asset.Texture, asset.Mesh, error) {
	textures := map[string]asset.Texture{}
	for name, glyph := range map[string]rune{"player": '@', "turret": 'T', "shell": '*'} {
		tex, err := reg.RegisterTexture(name, 1, 1, glyph)
		if err != nil {
			return nil, asset.Mesh{}, err
		}
		textures[name] = tex
	}
	crate, err := reg.RegisterMesh("crate", vmath.AABBFromCenter(mgl32.Vec3{}, mgl32.Vec3{2, 2, 0}), 8)
	if err != nil {
		return nil, asset.Mesh{}, err
	}
	return textures, crate, nil
}

// buildDemo populates an arena sized to the viewport: walls, a player, a turret and crates
func buildDemo(g *game.Game) error {
	textures, crate, err := registerAssets(g.Assets)
	if err != nil {
		return err
	}

	w := g.Ctx.World
	width, height := g.Batch.Device().Size()
	halfW, halfH := float32(width)/2, float32(height)/2

	wall := func(r vmath.Rect) {
		e := w.Spawn("wall")
		w.Attach(e, physics.NewCollider(physics.RectShape(r)))
		w.Attach(e, render.NewRectRenderer(r, core.ColorGray))
	}
	wall(vmath.Rect{X: -halfW, Y: halfH - 1, W: 2 * halfW, H: 1})
	wall(vmath.Rect{X: -halfW, Y: -halfH, W: 2 * halfW, H: 1})
	wall(vmath.Rect{X: -halfW, Y: -halfH, W: 1, H: 2 * halfH})
	wall(vmath.Rect{X: halfW - 1, Y: -halfH, W: 1, H: 2 * halfH})

	for _, loc := range []mgl32.Vec3{{-halfW / 2, 0, 0}, {halfW / 2, halfH / 3, 0}} {
		e := w.Spawn("crate")
		t, _ := w.Transform(e)
		t.SetLocation(loc)
		w.Attach(e, physics.NewCollider(physics.BoxShape(mgl32.Vec3{}, mgl32.Vec3{2, 2, 2})))
		w.Attach(e, render.NewMeshRenderer(crate))
	}

	player := w.Spawn("player")
	w.Attach(player, physics.NewCollider(physics.SphereShape(mgl32.Vec3{}, 0.4)))
	w.Attach(player, behavior.NewMovement(12))
	w.Attach(player, render.NewSpriteRenderer(textures["player"]))

	turret := w.Spawn("turret")
	tt, _ := w.Transform(turret)
	tt.SetLocation(mgl32.Vec3{halfW / 2, -halfH / 2, 0})
	w.Attach(turret, physics.NewCollider(physics.SphereShape(mgl32.Vec3{}, 0.5)))
	w.Attach(turret, behavior.NewLookAt(player))
	l := &launcher{texture: textures["shell"]}
	l.SetPriorityOrder(30)
	w.Attach(turret, l)
	w.Attach(turret, render.NewSpriteRenderer(textures["turret"]))

	cam := w.Spawn("camera")
	w.Attach(cam, behavior.NewSpringArm(player, 10))
	camera := render.NewOrthographicCamera(float32(height), 0.1, 100)
	ref, ok := engine.AddComponent(w, cam, camera)
	if !ok {
		return eris.New("attach camera")
	}
	g.Batch.SetCamera(ref)
	g.Batch.OnViewportResize(width, height)
	return nil
}
