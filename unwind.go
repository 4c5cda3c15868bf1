package mcl

import "mcl/internal/region"

// landingSite is the bookkeeping a TryRun installs for the duration of
// its callback: the stack and frame marks to unwind to on failure, and
// a link to the next-outermost active TryRun. Control transfer itself
// is Go's panic/recover, which already finds the nearest enclosing
// landing site on its own; this struct only carries the data that
// transfer needs once it arrives (see DESIGN.md for why panic/recover
// was chosen over a literal setjmp/longjmp port).
type landingSite struct {
	stackSave region.Addr
	frameSave region.Addr
	prev      *landingSite
}

// unwindSignal is the panic payload Raise uses. It is unexported so that
// only this package's Raise can produce one; an unrelated panic
// recovered by TryRun is re-panicked rather than swallowed.
type unwindSignal struct {
	kind ErrKind
}

// Raise transfers control to the innermost enclosing TryRun, delivering
// kind. Per the collaborator contract, a caller raising
// RuntimeError or SyntaxError must have already pushed a single string
// object describing the error onto ctx's stack; TryRun preserves that
// topmost value across the unwind. Raise(OK) is a programming fault.
func (ctx *Context) Raise(kind ErrKind) {
	ctx.assertValid()
	if kind == OK {
		panic("mcl: Raise called with OK")
	}
	panic(unwindSignal{kind})
}

// TryRun runs fn as a protected region. If fn returns
// normally, its result is returned unchanged. If fn (or anything it
// calls) invokes Raise, TryRun recovers, truncates ctx's pointer stack
// back to the mark saved on entry — releasing every heap-contained
// value that the truncation pops, except a single preserved
// RuntimeError/SyntaxError message string — restores the frame pointer,
// and returns the raised kind.
func (ctx *Context) TryRun(fn func() ErrKind) (result ErrKind) {
	ctx.assertValid()
	site := &landingSite{
		stackSave: ctx.r.StackPtr(),
		frameSave: ctx.frame,
		prev:      ctx.current,
	}
	ctx.current = site

	defer func() {
		ctx.current = site.prev
		if rec := recover(); rec != nil {
			sig, ok := rec.(unwindSignal)
			if !ok {
				panic(rec) // not ours: a programming fault, propagate undiminished
			}
			result = sig.kind
			ctx.unwindTo(site, result)
		}
	}()

	result = fn()
	return
}

// unwindTo truncates the stack back to site, releasing every popped
// heap-contained value except a single preserved error message, and
// restores the frame pointer.
func (ctx *Context) unwindTo(site *landingSite, kind ErrKind) {
	mark := site.stackSave
	if (kind == RuntimeError || kind == SyntaxError) && ctx.r.StackPtr() < mark {
		// Swap the message (the current top) into the lowest slot above
		// the mark before releasing anything, so it stays on the stack and
		// is rewritten by any relocation the releases below cause.
		msgSlot := mark.Add(-region.WordSize)
		_ = ctx.r.SwapAt(ctx.r.StackPtr(), msgSlot)
		mark = msgSlot
	}

	for ctx.r.StackPtr() < mark {
		v, err := ctx.r.Pop()
		if err != nil {
			break
		}
		if ctx.r.HeapContains(v) {
			releaseHeapValue(ctx, v)
		}
	}

	ctx.frame = site.frameSave
}
