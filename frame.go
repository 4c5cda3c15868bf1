package mcl

import "mcl/internal/region"

// A frame header occupies two adjacent stack slots: the self-sentinel
// slot (at the frame's own address) and, one slot above it (toward
// higher addresses), the previous frame's address. The chain terminates
// when a previous-frame slot holds region's StackEnd sentinel.
const framePrevOffset = region.WordSize

// framePush opens a new frame as a child of the current one.
// Requires two free stack slots; raises OutOfMemory otherwise, before
// any cursor is mutated.
func (ctx *Context) framePush() {
	if ctx.r.StackSpace() < 2 {
		ctx.Raise(OutOfMemory)
	}
	prevFP := ctx.frame
	_ = ctx.r.Push(prevFP)
	newFP := ctx.r.StackPtr().Add(-region.WordSize)
	_ = ctx.r.Push(newFP)
	ctx.frame = newFP
}

// framePop closes the current frame: every scope-local entry
// above it is popped and, if heap-contained, released; then the
// self-sentinel and previous-frame slots are popped and the frame
// pointer is restored.
func (ctx *Context) framePop() {
	for ctx.r.StackPtr() < ctx.frame {
		v, err := ctx.r.Pop()
		if err != nil {
			break
		}
		if ctx.r.HeapContains(v) {
			releaseHeapValue(ctx, v)
		}
	}
	_, _ = ctx.r.Pop() // self-sentinel, value is ctx.frame itself
	prevFP, _ := ctx.r.Pop()
	ctx.frame = prevFP
}

// frameSeek addresses a frame by level: level 0 is the
// current frame; level > 0 walks outward (toward the base of the stack)
// that many previous-frame links; level < 0 indexes from the base, with
// -1 naming the outermost frame. It returns (addr, false) if level names
// a frame beyond the end of the chain.
func (ctx *Context) frameSeek(level int) (region.Addr, bool) {
	if level == 0 {
		return ctx.frame, true
	}
	if level > 0 {
		cur := ctx.frame
		for i := 0; i < level; i++ {
			prev := ctx.r.At(cur.Add(framePrevOffset))
			if prev == ctx.r.StackEnd() {
				return 0, false
			}
			cur = prev
		}
		return cur, true
	}

	// level < 0: materialize the chain on the free stack area (never a
	// Go-side allocation) so we can index from the base without
	// recursion.
	idx := -1 - level
	n := 0
	for cur := ctx.frame; cur != ctx.r.StackEnd(); {
		n++
		cur = ctx.r.At(cur.Add(framePrevOffset))
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	if ctx.r.StackSpace() < n {
		ctx.Raise(OutOfMemory)
	}

	cur := ctx.frame
	for i := 0; i < n; i++ {
		_ = ctx.r.Push(cur)
		cur = ctx.r.At(cur.Add(framePrevOffset))
	}
	var target region.Addr
	for i := 0; i < n; i++ {
		v, _ := ctx.r.Pop()
		if i == idx {
			target = v
		}
	}
	return target, true
}

// FrameSeek is the public form of frameSeek: it returns the address of
// the frame named by level, or ok=false if level names a frame beyond
// the end of the chain. The returned address is only meaningful to
// collaborators that know the frame-header layout; this
// package does not itself define per-frame variable storage.
func (ctx *Context) FrameSeek(level int) (addr uint32, ok bool) {
	ctx.assertValid()
	a, ok := ctx.frameSeek(level)
	return uint32(a), ok
}
