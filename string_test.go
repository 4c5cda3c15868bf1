package mcl

import (
	"testing"

	"mcl/internal/region"
)

// StringNewWithLen should round-trip its content exactly, with the
// header fields initialized correctly.
func TestStringNewWithLenRoundTrip(t *testing.T) {
	ctx := newTestContext(t, 32)
	content := []byte("hello")
	s := ctx.StringNewWithLen(content, len(content))
	if got := ctx.RefCount(s); got != 1 {
		t.Errorf("RefCount() = %d, want 1", got)
	}
	if got := ctx.Len(s); got != len(content) {
		t.Errorf("Len() = %d, want %d", got, len(content))
	}
	if string(ctx.Chars(s)) != string(content) {
		t.Errorf("Chars() = %q, want %q", ctx.Chars(s), content)
	}
	// the NUL terminator follows the content and is not part of Len.
	if nul := ctx.r.Bytes(region.Addr(s)+charsOffset+region.Addr(len(content)), 1)[0]; nul != 0 {
		t.Errorf("terminating byte = %d, want 0", nul)
	}
}

// StringCompare should be antisymmetric and lexicographic.
func TestStringCompare(t *testing.T) {
	ctx := newTestContext(t, 32)
	a := ctx.StringNew("1234")
	b := ctx.StringNew("5678")
	if got := ctx.StringCompare(a, b); got >= 0 {
		t.Errorf("compare(1234, 5678) = %d, want < 0", got)
	}
	if got := ctx.StringCompare(b, a); got <= 0 {
		t.Errorf("compare(5678, 1234) = %d, want > 0", got)
	}
	if got := ctx.StringCompare(a, a); got != 0 {
		t.Errorf("compare(a, a) = %d, want 0", got)
	}
}

// A string that is a strict prefix of another compares less than it.
func TestStringComparePrefix(t *testing.T) {
	ctx := newTestContext(t, 32)
	short := ctx.StringNew("abcd")
	long := ctx.StringNew("abcde")
	if got := ctx.StringCompare(short, long); got >= 0 {
		t.Errorf("compare(abcd, abcde) = %d, want < 0", got)
	}
	if got := ctx.StringCompare(long, short); got <= 0 {
		t.Errorf("compare(abcde, abcd) = %d, want > 0", got)
	}
}

// k acquires followed by k releases, plus releasing the string's
// initial reference, should return HeapSpace to its pre-allocation
// value.
func TestReferenceCountingRestoresHeapSpace(t *testing.T) {
	ctx := newTestContext(t, 32)
	before := ctx.HeapSpace()
	s := ctx.StringNew("xyz")
	for i := 0; i < 5; i++ {
		ctx.StringAcquire(s)
	}
	for i := 0; i < 5; i++ {
		ctx.StringRelease(s)
	}
	ctx.StringRelease(s) // the initial reference from StringNew
	if got := ctx.HeapSpace(); got != before {
		t.Errorf("HeapSpace() = %d, want %d", got, before)
	}
}

func TestStringAcquireOverflowPanics(t *testing.T) {
	ctx := newTestContext(t, 32)
	s := ctx.StringNew("x")
	defer func() {
		if recover() == nil {
			t.Fatalf("StringAcquire at count 255: expected panic")
		}
	}()
	for i := 0; i < 255; i++ {
		ctx.StringAcquire(s)
	}
}

func TestStringGrowAndShrink(t *testing.T) {
	ctx := newTestContext(t, 32)
	s := ctx.StringNew("ab")
	ctx.StringGrow(s, 5)
	if got := ctx.Len(s); got != 5 {
		t.Errorf("Len() after grow = %d, want 5", got)
	}
	copy(ctx.Chars(s)[2:], []byte("cde"))
	if string(ctx.Chars(s)) != "abcde" {
		t.Errorf("Chars() after grow = %q, want abcde", ctx.Chars(s))
	}
	ctx.StringShrink(s, 2)
	if got := ctx.Len(s); got != 2 {
		t.Errorf("Len() after shrink = %d, want 2", got)
	}
	if string(ctx.Chars(s)) != "ab" {
		t.Errorf("Chars() after shrink = %q, want ab", ctx.Chars(s))
	}
}
