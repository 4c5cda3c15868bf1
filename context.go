package mcl

import "mcl/internal/region"

// WordSize is the width, in bytes, of one pointer-sized region slot. A
// region buffer's length must be a multiple of WordSize.
const WordSize = region.WordSize

// MinEntries is the minimum number of pointer-sized slots Init accepts.
const MinEntries = 16

// MaxStringLen is the maximum content length, in bytes, of a single
// string object.
const MaxStringLen = 32767

// ctxMagic is the integrity tag a correctly initialized Context carries
// in its magic field. A zero value (the Go zero value of Context, never
// produced by Init) or any other value means the Context was never
// initialized, was copied out of another Context by value, or had its
// memory stomped by something outside this package.
const ctxMagic = 0x6d636c78 // "mclx"

// Context is the opaque handle for one interpreter memory substrate.
// All operations on a Context run synchronously to completion on the
// calling goroutine; a Context is not safe for concurrent use, and
// nothing in this package blocks or suspends.
type Context struct {
	r        *region.Region
	frame    region.Addr
	userData any

	current *landingSite // innermost active TryRun, nil if none
	magic   uint32        // ctxMagic once Init has succeeded, checked by assertValid
}

// Init constructs a Context over buf, which must have length a multiple
// of WordSize and at least MinEntries slots. On success it pushes the
// two initial frames (outermost procedure table, inner global table)
// and returns OK. On failure the returned Context is nil and must not
// be used.
func Init(buf []byte, userData any) (*Context, ErrKind) {
	if len(buf) == 0 || len(buf)%WordSize != 0 {
		return nil, OutOfMemory
	}
	n := len(buf) / WordSize
	if n < MinEntries {
		return nil, OutOfMemory
	}
	r, err := region.New(buf)
	if err != nil {
		return nil, OutOfMemory
	}

	ctx := &Context{r: r, frame: r.StackEnd(), userData: userData}
	// Set the tag before the bootstrap TryRun below: TryRun and the
	// frame primitives it calls are themselves public-method-shaped and
	// go through assertValid. If the bootstrap fails, ctx is discarded
	// by the caller regardless, so a tagged-but-abandoned Context here
	// is harmless.
	ctx.magic = ctxMagic
	kind := ctx.TryRun(func() ErrKind {
		ctx.framePush() // procedure table frame (outermost)
		ctx.framePush() // global table frame
		return OK
	})
	if kind != OK {
		return nil, kind
	}
	return ctx, OK
}

// UserData returns the pointer (or value) originally supplied to Init.
func (ctx *Context) UserData() any {
	ctx.assertValid()
	return ctx.userData
}

// assertValid panics if ctx's integrity tag is missing or corrupt: a
// zero Context, one whose memory was overwritten, or (in principle) one
// obtained some way other than Init. Every exported Context method
// calls this first. Compiled out of the hot path entirely unless built
// with -tags mcldebug; see debug_on.go / debug_off.go.
func (ctx *Context) assertValid() {
	if debugAssertions && ctx.magic != ctxMagic {
		panic("mcl: operation on an uninitialized or corrupt context")
	}
}

// HeapSpace returns the number of free heap bytes in ctx's region.
func (ctx *Context) HeapSpace() int {
	ctx.assertValid()
	return ctx.r.HeapSpace()
}

// StackHeight returns the number of slots currently on ctx's pointer stack.
func (ctx *Context) StackHeight() int {
	ctx.assertValid()
	return ctx.r.StackHeight()
}
