package mcl

// Push places v — an opaque pointer-sized value, typically a StringObj
// address or a back-reference to another stack slot — on top of ctx's
// pointer stack. It raises OutOfMemory if the stack has no
// free slots.
func (ctx *Context) Push(v uint32) {
	ctx.assertValid()
	if err := ctx.r.Push(toAddr(v)); err != nil {
		ctx.Raise(OutOfMemory)
	}
}

// Pop removes and returns the value on top of ctx's pointer stack. It
// is a programming fault to call Pop on an empty stack.
func (ctx *Context) Pop() uint32 {
	ctx.assertValid()
	v, err := ctx.r.Pop()
	if err != nil {
		panic("mcl: pop: " + err.Error())
	}
	return uint32(v)
}

// PopN discards the top n stack slots without releasing any heap
// references they may hold; callers must release owned references
// themselves first.
func (ctx *Context) PopN(n int) {
	ctx.assertValid()
	if err := ctx.r.PopN(n); err != nil {
		panic("mcl: pop_n: " + err.Error())
	}
}

// Swap exchanges the values stored at two stack slot addresses.
func (ctx *Context) Swap(a, b uint32) {
	ctx.assertValid()
	if err := ctx.r.SwapAt(toAddr(a), toAddr(b)); err != nil {
		panic("mcl: swap: " + err.Error())
	}
}

// FramePush opens a new frame as a child of the current one.
func (ctx *Context) FramePush() {
	ctx.assertValid()
	ctx.framePush()
}

// FramePop closes the current frame, releasing its scope-local entries.
func (ctx *Context) FramePop() {
	ctx.assertValid()
	ctx.framePop()
}
