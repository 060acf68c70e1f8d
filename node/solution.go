package node

import "github.com/wordgraph/qtwenty/cost"

// Solution is the result of solving one subset: the best achievable cost,
// every tree that achieves it (up to the caller's cap), and whether the cap
// truncated the co-optimal set.
type Solution struct {
	Cost      cost.Cost
	Trees     []Node
	Exhausted bool
}

// Unsolvable reports whether this Solution represents a subset with no
// admissible question and no Repeat option under its constraints — an empty
// tree list.
func (s Solution) Unsolvable() bool {
	return len(s.Trees) == 0
}

// UnsolvableSolution returns the sentinel Solution for a subset of the given
// word count that cannot be solved under its current constraints: an empty
// tree list and the worst-possible cost, so it always compares worse than
// any real solution (spec.md §3).
func UnsolvableSolution(wordCount uint32) Solution {
	return Solution{Cost: cost.Unsolvable(wordCount)}
}
