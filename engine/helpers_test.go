package engine

import "github.com/lixenwraith/vi-engine/core"

// probe records hook invocations into a shared journal
type probe struct {
	Base
	name    string
	journal *[]string

	setups, unsetups, updates, renders int
	onUpdate                           func(ctx *Context)
}

func newProbe(name string, priority int, journal *[]string) *probe {
	p := &probe{name: name, journal: journal}
	p.SetPriorityOrder(priority)
	return p
}

func (p *probe) Setup(ctx *Context) {
	p.setups++
	p.log("setup")
}

func (p *probe) Unsetup(ctx *Context) {
	p.unsetups++
	p.log("unsetup")
}

func (p *probe) Update(ctx *Context) {
	p.updates++
	p.log("update")
	if p.onUpdate != nil {
		p.onUpdate(ctx)
	}
}

func (p *probe) Render(ctx *Context) {
	p.renders++
	p.log("render")
}

func (p *probe) log(hook string) {
	if p.journal != nil {
		*p.journal = append(*p.journal, hook+":"+p.name)
	}
}

// plain has no hooks at all
type plain struct {
	Base
}

func spawnWith(ctx *Context, comps ...Component) core.Entity {
	e := ctx.World.Spawn("test")
	for _, c := range comps {
		ctx.World.Attach(e, c)
	}
	return e
}
