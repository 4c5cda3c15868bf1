// Package region implements the dual-ended memory region that backs an
// mcl context: a bump-allocated, compactable object heap growing up from
// the low end of a caller-supplied byte buffer, and a pointer stack
// growing down from the high end. The package knows nothing about
// strings, frames, or error kinds — it is the raw memory-plumbing layer
// that the mcl package builds language semantics on top of.
package region

import "fmt"

// WordSize is the width, in bytes, of one pointer-sized slot. The region
// always uses 8-byte slots regardless of host GOARCH; a slot value is a
// byte offset from the start of the region, which fits in 8 bytes for
// any region this library is sized for.
const WordSize = 8

// Addr is a byte offset relative to the start of a Region. It plays the
// role a raw pointer plays in the embedded-C original this substrate is
// modeled on: Addr values are stored directly in stack slots and heap
// headers, and are rewritten in place whenever the allocator relocates
// the bytes they pointed at.
type Addr uint32

// Add returns a+Addr(n).
func (a Addr) Add(n int) Addr {
	return a + Addr(n)
}

// Sub returns the signed distance from b to a (a-b).
func (a Addr) Sub(b Addr) int {
	return int(a) - int(b)
}

func (a Addr) String() string {
	return fmt.Sprintf("0x%x", uint32(a))
}
