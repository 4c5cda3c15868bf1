package mcl

import "mcl/internal/region"

// toAddr narrows a public uint32 slot value to the internal Addr type.
func toAddr(v uint32) region.Addr { return region.Addr(v) }

// HeapContains reports whether p addresses a byte currently inside ctx's
// live heap.
func (ctx *Context) HeapContains(p uint32) bool {
	ctx.assertValid()
	return ctx.r.HeapContains(region.Addr(p))
}

// StackContains reports whether p addresses a slot currently on ctx's
// pointer stack.
func (ctx *Context) StackContains(p uint32) bool {
	ctx.assertValid()
	return ctx.r.StackContains(region.Addr(p))
}

// StackSpace returns the number of free stack slots remaining in ctx's
// region.
func (ctx *Context) StackSpace() int {
	ctx.assertValid()
	return ctx.r.StackSpace()
}
