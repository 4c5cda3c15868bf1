//go:build unix

// Package hostmem provides an optional way to obtain the byte buffer
// mcl.Init needs, for POSIX hosts that want it page-aligned and locked
// against swap. It is never required: any []byte of the right length
// (e.g. make([]byte, n*mcl.WordSize)) works with mcl.Init.
package hostmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// NewLockedRegion anonymously maps a buffer sized to hold slots
// pointer-sized entries, rounded up to a full page the way
// internal/core's mapFile helper rounds core-file segments to
// hostPageSize, and locks it with mlock so the kernel never pages it
// out — useful on the embedded-controller class of host this substrate
// targets, where an evicted interpreter region would be a correctness
// bug, not just a latency hit.
//
// The returned close function unlocks and unmaps the buffer; callers
// must not use the buffer (or any mcl.Context built over it) after
// calling close.
func NewLockedRegion(slots, wordSize int) (buf []byte, closeFn func() error, err error) {
	if slots <= 0 || wordSize <= 0 {
		return nil, nil, fmt.Errorf("hostmem: slots and wordSize must be positive")
	}
	want := slots * wordSize
	pageSize := unix.Getpagesize()
	size := want
	if rem := size % pageSize; rem != 0 {
		size += pageSize - rem
	}

	buf, err = unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("hostmem: mmap: %w", err)
	}
	if err := unix.Mlock(buf); err != nil {
		unix.Munmap(buf)
		return nil, nil, fmt.Errorf("hostmem: mlock: %w", err)
	}

	region := buf[:want]
	closeFn = func() error {
		if err := unix.Munlock(buf); err != nil {
			return fmt.Errorf("hostmem: munlock: %w", err)
		}
		return unix.Munmap(buf)
	}
	return region, closeFn, nil
}
