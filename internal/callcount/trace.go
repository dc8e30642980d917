package callcount

// Trace evaluates the naive recursive function at n and counts every
// base-case return. It walks the whole call tree, so cost grows like fib(n).
// Negative n is treated as a zero-return leaf.
func Trace(n int) Counts {
	var c Counts
	trace(n, &c)
	return c
}

func trace(n int, c *Counts) {
	switch {
	case n <= 0:
		c.Zero++
	case n == 1:
		c.One++
	default:
		trace(n-1, c)
		trace(n-2, c)
	}
}
