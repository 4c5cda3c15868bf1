//go:build !unix

package hostmem

import "fmt"

// NewLockedRegion is unavailable on non-unix hosts; use a plain
// make([]byte, slots*wordSize) with mcl.Init instead.
func NewLockedRegion(slots, wordSize int) (buf []byte, closeFn func() error, err error) {
	return nil, nil, fmt.Errorf("hostmem: locked regions are not supported on this platform")
}
