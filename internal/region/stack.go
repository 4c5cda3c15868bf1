package region

import "fmt"

// Push writes v to a newly opened slot at the top of the stack.
func (r *Region) Push(v Addr) error {
	if r.StackSpace() < 1 {
		return fmt.Errorf("region: push: no free stack slots")
	}
	r.stackPtr -= WordSize
	r.SetAt(r.stackPtr, v)
	return nil
}

// Pop removes and returns the value at the top of the stack.
func (r *Region) Pop() (Addr, error) {
	if r.StackHeight() < 1 {
		return 0, fmt.Errorf("region: pop: stack is empty")
	}
	v := r.At(r.stackPtr)
	r.stackPtr += WordSize
	return v, nil
}

// PopN discards the top n slots without inspecting their values. Callers
// are responsible for having released any owned heap references first.
func (r *Region) PopN(n int) error {
	if n < 0 {
		return fmt.Errorf("region: pop_n: negative count %d", n)
	}
	if r.StackHeight() < n {
		return fmt.Errorf("region: pop_n: stack height %d < %d", r.StackHeight(), n)
	}
	r.stackPtr += Addr(n * WordSize)
	return nil
}

// SwapAt exchanges the values stored at two stack slot addresses.
func (r *Region) SwapAt(a, b Addr) error {
	if !r.StackContains(a) || !r.StackContains(b) {
		return fmt.Errorf("region: swap: address not on stack")
	}
	va, vb := r.At(a), r.At(b)
	r.SetAt(a, vb)
	r.SetAt(b, va)
	return nil
}
