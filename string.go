package mcl

import (
	"bytes"
	"mcl/internal/region"
)

// StringObj is the address of a string object's header on the heap.
// The layout, in order, is: a 1-byte reference count, a
// little-endian 16-bit length L, L content bytes, and a terminating NUL
// not counted in L.
type StringObj region.Addr

// Addr returns s as a raw stack-slot value, suitable for Push.
func (s StringObj) Addr() uint32 { return uint32(s) }

// StringObjFromAddr reinterprets a raw stack-slot value (previously
// obtained from Pop) as a StringObj. The caller is responsible for
// knowing the slot actually holds a string object address.
func StringObjFromAddr(v uint32) StringObj { return StringObj(v) }

const (
	stringHeaderSize = 4 // refcount byte + 2 length bytes + NUL
	refCountOffset   = 0
	lengthOffset     = 1
	charsOffset      = 3
)

// stringSize returns the total heap footprint of a string of content
// length l.
func stringSize(l int) int {
	return stringHeaderSize + l
}

// RefCount returns s's current reference count (1..255).
func (ctx *Context) RefCount(s StringObj) byte {
	ctx.assertValid()
	return ctx.r.Bytes(region.Addr(s), 1)[0]
}

// Len returns s's content length.
func (ctx *Context) Len(s StringObj) int {
	ctx.assertValid()
	return int(region.UnpackU16(ctx.r.Bytes(region.Addr(s)+lengthOffset, 2)))
}

// Chars returns a live view of s's content bytes. The slice aliases the
// region and is invalidated by any subsequent Grow/Shrink/Free on any
// string (those can relocate bytes above s).
func (ctx *Context) Chars(s StringObj) []byte {
	ctx.assertValid()
	return ctx.r.Bytes(region.Addr(s)+charsOffset, ctx.Len(s))
}

// stringAlloc raises OutOfMemory if there is insufficient heap space,
// otherwise allocates a new header of content length l, initializes its
// reference count to 1, writes the length field, and writes the
// terminating NUL. Content bytes are left uninitialized.
func (ctx *Context) stringAlloc(l int) StringObj {
	if l < 0 || l > MaxStringLen {
		ctx.Raise(OutOfMemory)
	}
	size := stringSize(l)
	if ctx.r.HeapSpace() < size {
		ctx.Raise(OutOfMemory)
	}
	addr, err := ctx.r.Alloc(size)
	if err != nil {
		ctx.Raise(OutOfMemory)
	}
	ctx.r.Bytes(addr, 1)[0] = 1
	region.PackU16(ctx.r.Bytes(addr+lengthOffset, 2), uint16(l))
	ctx.r.Bytes(addr+charsOffset+region.Addr(l), 1)[0] = 0
	return StringObj(addr)
}

// StringNewWithLen allocates a new string object with reference count 1
// and copies l bytes from content into it.
func (ctx *Context) StringNewWithLen(content []byte, l int) StringObj {
	ctx.assertValid()
	s := ctx.stringAlloc(l)
	copy(ctx.Chars(s), content[:l])
	return s
}

// StringNew allocates a new string object from a Go string, raising
// OutOfMemory if it exceeds MaxStringLen.
func (ctx *Context) StringNew(str string) StringObj {
	ctx.assertValid()
	if len(str) > MaxStringLen {
		ctx.Raise(OutOfMemory)
	}
	return ctx.StringNewWithLen([]byte(str), len(str))
}

// StringAcquire increments s's reference count and returns s. Acquiring
// at count 255 is a programming fault, not an ErrKind: 255 is the
// largest value the 1-byte reference count field can hold.
func (ctx *Context) StringAcquire(s StringObj) StringObj {
	ctx.assertValid()
	b := ctx.r.Bytes(region.Addr(s), 1)
	if b[0] == 255 {
		panic("mcl: string reference count overflow")
	}
	b[0]++
	return s
}

// StringRelease decrements s's reference count, freeing the object's
// heap storage when the count reaches zero.
func (ctx *Context) StringRelease(s StringObj) {
	ctx.assertValid()
	b := ctx.r.Bytes(region.Addr(s), 1)
	if b[0] == 1 {
		size := stringSize(ctx.Len(s))
		if err := ctx.r.Free(region.Addr(s), size); err != nil {
			panic("mcl: release of a non-heap pointer: " + err.Error())
		}
		return
	}
	b[0]--
}

// StringGrow extends s to hold newLen bytes of content, leaving the new
// bytes uninitialized, and rewrites the length field and terminating
// NUL.
func (ctx *Context) StringGrow(s StringObj, newLen int) {
	ctx.assertValid()
	if newLen > MaxStringLen {
		ctx.Raise(OutOfMemory)
	}
	oldLen := ctx.Len(s)
	oldSize, newSize := stringSize(oldLen), stringSize(newLen)
	if ctx.r.HeapSpace() < newSize-oldSize {
		ctx.Raise(OutOfMemory)
	}
	if err := ctx.r.Grow(region.Addr(s), oldSize, newSize); err != nil {
		ctx.Raise(OutOfMemory)
	}
	region.PackU16(ctx.r.Bytes(region.Addr(s)+lengthOffset, 2), uint16(newLen))
	ctx.r.Bytes(region.Addr(s)+charsOffset+region.Addr(newLen), 1)[0] = 0
}

// StringShrink truncates s to newLen bytes of content, discarding the
// trailing bytes, and rewrites the length field and terminating NUL.
func (ctx *Context) StringShrink(s StringObj, newLen int) {
	ctx.assertValid()
	oldLen := ctx.Len(s)
	oldSize, newSize := stringSize(oldLen), stringSize(newLen)
	if err := ctx.r.Shrink(region.Addr(s), oldSize, newSize); err != nil {
		panic("mcl: string_shrink: " + err.Error())
	}
	region.PackU16(ctx.r.Bytes(region.Addr(s)+lengthOffset, 2), uint16(newLen))
	ctx.r.Bytes(region.Addr(s)+charsOffset+region.Addr(newLen), 1)[0] = 0
}

// StringCompare performs a lexicographic byte comparison of a and b:
// on equal prefixes the shorter string compares less.
func (ctx *Context) StringCompare(a, b StringObj) int {
	ctx.assertValid()
	return bytes.Compare(ctx.Chars(a), ctx.Chars(b))
}

// releaseHeapValue is the single dispatch point the unwinder and frame
// primitives use to release a popped stack value that addresses a heap
// object. A string is the only heap object kind this core defines; a
// future object type would add a discriminator byte to the header and
// branch here rather than at every call site.
func releaseHeapValue(ctx *Context, v region.Addr) {
	ctx.StringRelease(StringObj(v))
}
