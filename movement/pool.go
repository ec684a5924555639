package movement

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/input"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &frameContext{}
	},
}

func newCtx(c *Core, state input.State) *frameContext {
	ctx := ctxPool.Get().(*frameContext)
	ctx.core = c
	ctx.state = state
	return ctx
}

func putCtx(ctx *frameContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *frameContext) reset() {
	ctx.core = nil
	ctx.state = input.State{}
	ctx.displacement = mgl32.Vec3{}
	ctx.applied = mgl32.Vec3{}
	ctx.blocked = false
	ctx.inTransit = false
	ctx.floorChanged = false
	ctx.door = ""
}
