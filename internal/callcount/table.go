package callcount

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("n out of range [0,40]")
)

// Counts는 fib(n)을 naive 재귀로 평가할 때 base case가 반환한 횟수이다.
type Counts struct {
	Zero uint64
	One  uint64
}

// Calls returns the total number of base-case returns.
func (c Counts) Calls() uint64 {
	return c.Zero + c.One
}

func (c Counts) String() string {
	return fmt.Sprintf("%d %d", c.Zero, c.One)
}

// Table은 n = 0..MaxN 에 대한 base case 반환 횟수를 미리 계산해 둔 표이다.
// Build 이후에는 읽기 전용이므로 여러 goroutine에서 공유해도 안전하다.
type Table struct {
	zero [TableSize]uint64
	one  [TableSize]uint64
}

// Build fills both sequences with the Fibonacci recurrence. The call tree
// for n splits into the trees for n-1 and n-2, so each count follows it
// independently.
func Build() Table {
	var t Table
	t.zero[0], t.one[0] = 1, 0
	t.zero[1], t.one[1] = 0, 1
	for i := 2; i < TableSize; i++ {
		t.zero[i] = t.zero[i-1] + t.zero[i-2]
		t.one[i] = t.one[i-1] + t.one[i-2]
	}
	return t
}

func (t *Table) Lookup(n int) (Counts, error) {
	if n < 0 || n > MaxN {
		return Counts{}, fmt.Errorf("%w: got %d", ErrOutOfRange, n)
	}
	return Counts{Zero: t.zero[n], One: t.one[n]}, nil
}

// Zero returns a copy of the zero-return sequence.
func (t *Table) Zero() [TableSize]uint64 {
	return t.zero
}

// One returns a copy of the one-return sequence.
func (t *Table) One() [TableSize]uint64 {
	return t.one
}
