package region

import (
	"encoding/binary"
	"fmt"
)

// Region is the caller-owned backing buffer for one mcl context, split
// into a heap growing up from byte 0 and a pointer stack growing down
// from the end. The zero value is not usable; construct with New.
type Region struct {
	data []byte // caller-supplied buffer, length is a multiple of WordSize

	heapPtr  Addr // next free heap byte; never below 0 or above stackPtr
	stackPtr Addr // current stack top (lowest address in the stack area)
	stackEnd Addr // one past the end of the region; sentinel for "no frame"
}

// New wraps buf as a Region. len(buf) must be a positive multiple of
// WordSize; New does not itself enforce mcl's MinEntries floor, since
// that is an mcl-level embedding-API concern, not a property of the raw
// memory-plumbing layer.
func New(buf []byte) (*Region, error) {
	if len(buf) == 0 || len(buf)%WordSize != 0 {
		return nil, fmt.Errorf("region: buffer length %d is not a positive multiple of %d", len(buf), WordSize)
	}
	end := Addr(len(buf))
	return &Region{
		data:     buf,
		heapPtr:  0,
		stackPtr: end,
		stackEnd: end,
	}, nil
}

// HeapStart is always address 0: the base of the region.
func (r *Region) HeapStart() Addr { return 0 }

// HeapPtr returns the first free heap byte.
func (r *Region) HeapPtr() Addr { return r.heapPtr }

// StackPtr returns the current stack top (lowest stack address in use).
func (r *Region) StackPtr() Addr { return r.stackPtr }

// StackEnd returns one past the end of the region; also the "no frame"
// sentinel value used by the frame chain.
func (r *Region) StackEnd() Addr { return r.stackEnd }

// ceilSlot rounds a up to the next multiple of WordSize.
func ceilSlot(a Addr) Addr {
	rem := int(a) % WordSize
	if rem == 0 {
		return a
	}
	return a + Addr(WordSize-rem)
}

// HeapSpace returns the number of free heap bytes.
func (r *Region) HeapSpace() int {
	return r.stackPtr.Sub(r.heapPtr)
}

// HeapContains reports whether p addresses a byte currently inside the
// live heap.
func (r *Region) HeapContains(p Addr) bool {
	return p >= 0 && p < r.heapPtr
}

// StackSpace returns the number of free stack slots. The heap tip is
// rounded up to the next slot boundary so a subsequent push can never
// overlap an in-progress heap allocation.
func (r *Region) StackSpace() int {
	return r.stackPtr.Sub(ceilSlot(r.heapPtr)) / WordSize
}

// StackHeight returns the number of slots currently on the stack.
func (r *Region) StackHeight() int {
	return r.stackEnd.Sub(r.stackPtr) / WordSize
}

// StackContains reports whether p addresses a slot currently on the
// stack.
func (r *Region) StackContains(p Addr) bool {
	return p >= r.stackPtr && p < r.stackEnd
}

// Bytes returns a live view of n bytes starting at p. The slice aliases
// the region's backing buffer; callers must not hold it across any
// operation that can relocate the heap (Grow, Shrink, Free).
func (r *Region) Bytes(p Addr, n int) []byte {
	return r.data[p : int(p)+n]
}

// At reads the pointer-sized value stored at stack slot addr.
func (r *Region) At(addr Addr) Addr {
	return Addr(binary.LittleEndian.Uint64(r.data[addr : addr+WordSize]))
}

// SetAt overwrites the pointer-sized value stored at stack slot addr.
// The overwritten value need not have come from At; callers may stash
// any pointer-sized value in a stack slot.
func (r *Region) SetAt(addr Addr, v Addr) {
	binary.LittleEndian.PutUint64(r.data[addr:addr+WordSize], uint64(v))
}
