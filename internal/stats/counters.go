// Package stats provides optional comparison/move counters. Only
// comparisons are counted (by WrapLess); nothing in this module increments
// Moves. The sort itself never allocates or touches a Counters value; a
// caller such as cmd/aerobench wraps a comparator with WrapLess and passes
// the wrapped function as the sort's less predicate.
package stats

// Counters accumulates comparison and move counts for a single sort call.
// Not safe for concurrent use: aerosort itself is single-threaded, so no
// synchronization is needed here either.
type Counters struct {
	Comparisons int64
	Moves       int64
}

// Reset zeroes both counters.
func (c *Counters) Reset() {
	c.Comparisons = 0
	c.Moves = 0
}

// WrapLess wraps less, counting every invocation. Intended to be passed as
// the less predicate to the core sort so a test can assert a comparison
// bound.
func WrapLess[T any](c *Counters, less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		c.Comparisons++
		return less(a, b)
	}
}

