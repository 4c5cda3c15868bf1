package mcl

import "testing"

// A callback that pushes strings and raises OutOfMemory should leave
// heap space and stack height unchanged after TryRun returns.
func TestTryRunUnwindsOutOfMemoryCleanly(t *testing.T) {
	ctx := newTestContext(t, 64)
	beforeHeap := ctx.HeapSpace()
	beforeHeight := ctx.StackHeight()

	kind := ctx.TryRun(func() ErrKind {
		for i := 0; i < 10; i++ {
			s := ctx.StringNewWithLen([]byte("deadbeef"), 8)
			ctx.Push(s.Addr())
		}
		ctx.Raise(OutOfMemory)
		return OK // unreachable
	})

	if kind != OutOfMemory {
		t.Fatalf("TryRun() = %v, want OutOfMemory", kind)
	}
	if got := ctx.HeapSpace(); got != beforeHeap {
		t.Errorf("HeapSpace() = %d, want %d", got, beforeHeap)
	}
	if got := ctx.StackHeight(); got != beforeHeight {
		t.Errorf("StackHeight() = %d, want %d", got, beforeHeight)
	}
}

func TestTryRunReturnsOKUnchanged(t *testing.T) {
	ctx := newTestContext(t, 32)
	kind := ctx.TryRun(func() ErrKind { return OK })
	if kind != OK {
		t.Errorf("TryRun() = %v, want OK", kind)
	}
}

// The collaborator contract: a RuntimeError/SyntaxError message string
// pushed immediately before Raise must survive the unwind as the new
// top of stack.
func TestTryRunPreservesErrorMessage(t *testing.T) {
	ctx := newTestContext(t, 64)
	beforeHeight := ctx.StackHeight()

	kind := ctx.TryRun(func() ErrKind {
		for i := 0; i < 3; i++ {
			other := ctx.StringNew("scratch")
			ctx.Push(other.Addr())
		}
		s := ctx.StringNew("boom")
		ctx.Push(s.Addr())
		ctx.Raise(RuntimeError)
		return OK // unreachable
	})

	if kind != RuntimeError {
		t.Fatalf("TryRun() = %v, want RuntimeError", kind)
	}
	if got, want := ctx.StackHeight(), beforeHeight+1; got != want {
		t.Fatalf("StackHeight() = %d, want %d (message preserved)", got, want)
	}
	msg := StringObjFromAddr(ctx.Pop())
	if string(ctx.Chars(msg)) != "boom" {
		t.Errorf("preserved message = %q, want %q", ctx.Chars(msg), "boom")
	}
	ctx.StringRelease(msg)
}

func TestNestedTryRunOnlyUnwindsInnerFrame(t *testing.T) {
	ctx := newTestContext(t, 64)
	outerSeen := OK

	outerKind := ctx.TryRun(func() ErrKind {
		s := ctx.StringNew("kept")
		ctx.Push(s.Addr())

		innerKind := ctx.TryRun(func() ErrKind {
			t2 := ctx.StringNew("discarded")
			ctx.Push(t2.Addr())
			ctx.Raise(OutOfMemory)
			return OK // unreachable
		})
		outerSeen = innerKind
		return OK
	})

	if outerKind != OK {
		t.Fatalf("outer TryRun() = %v, want OK", outerKind)
	}
	if outerSeen != OutOfMemory {
		t.Fatalf("inner TryRun() = %v, want OutOfMemory", outerSeen)
	}
	// Only the "kept" string's slot should remain from this test's work.
	v := ctx.Pop()
	kept := StringObjFromAddr(v)
	if string(ctx.Chars(kept)) != "kept" {
		t.Errorf("surviving slot = %q, want %q", ctx.Chars(kept), "kept")
	}
	ctx.StringRelease(kept)
}

func TestRaiseOKPanics(t *testing.T) {
	ctx := newTestContext(t, 32)
	defer func() {
		if recover() == nil {
			t.Fatalf("Raise(OK): expected panic")
		}
	}()
	ctx.Raise(OK)
}
