// Package cost implements the five-field, lexicographic cost model that
// scores candidate decision trees (spec.md §4.3) and the admissible lower
// bound used to order and prune candidates during search.
//
// A Cost never changes once computed; every function here is a pure
// combinator that derives a new Cost from its children, mirroring how the
// teacher library treats its TSP Cost/TSResult values as immutable results
// rather than mutable accumulators.
package cost

import "golang.org/x/exp/constraints"

// Cost is the per-subtree scoring tuple. Lower is better in every field.
type Cost struct {
	// HardNos is the max, over root-to-leaf paths in this subtree, of the
	// number of hard No-edges.
	HardNos uint32
	// Nos is the max, over root-to-leaf paths, of the number of No-edges
	// (hard + soft).
	Nos uint32
	// SumHardNos is the sum, over words (leaves) in this subtree, of the
	// hard-No-edge count on that word's root-to-leaf path.
	SumHardNos uint32
	// SumNos is the analogous sum over all No-edges.
	SumNos uint32
	// WordCount is the number of leaves in this subtree (popcount of its mask).
	WordCount uint32
}

// Leaf is the cost of a singleton subtree: all zero counters, one word.
func Leaf() Cost {
	return Cost{WordCount: 1}
}

// AvgHardNos returns SumHardNos/WordCount, or 0 when WordCount is 0. This is
// the accessor the external JS/FFI boundary's avg_hard_nos field is derived
// from (spec.md §6); it has no bearing on comparison or search.
func (c Cost) AvgHardNos() float64 {
	if c.WordCount == 0 {
		return 0
	}
	return float64(c.SumHardNos) / float64(c.WordCount)
}

// AvgNos returns SumNos/WordCount, or 0 when WordCount is 0.
func (c Cost) AvgNos() float64 {
	if c.WordCount == 0 {
		return 0
	}
	return float64(c.SumNos) / float64(c.WordCount)
}

// maxOf returns the larger of a and b. A small generic helper shared by
// the two worst-path-max rules of CombineSplit, instead of repeating
// `if a > b { … }` at each call site.
func maxOf[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// CombineRepeat derives the parent cost of a Repeat node from the cost of its
// No subtree (the Yes side is an implicit zero-cost leaf). A Repeat's own No
// edge contributes nothing to HardNos/Nos — it is a guess by exact identity,
// not a letter question miss (spec.md §4.5) — only WordCount grows by one.
func CombineRepeat(no Cost) Cost {
	return Cost{
		HardNos:    no.HardNos,
		Nos:        no.Nos,
		SumHardNos: no.SumHardNos,
		SumNos:     no.SumNos,
		WordCount:  no.WordCount + 1,
	}
}

// CombineSplit derives the parent cost of a split (hard or soft) from its
// Yes/No children's costs, per spec.md §4.3: the test is always on the Yes
// side, so only the No branch's edge increments the worst-path counters,
// and every word on the No side accrues one more No edge (hard, for a hard
// split; soft otherwise) in the weighted sums.
func CombineSplit(yes, no Cost, isHard bool) Cost {
	noNos := no.Nos + 1
	noHardNos := no.HardNos
	if isHard {
		noHardNos = no.HardNos + 1
	}

	sumNos := yes.SumNos + no.SumNos + no.WordCount
	sumHardNos := yes.SumHardNos + no.SumHardNos
	if isHard {
		sumHardNos += no.WordCount
	}

	return Cost{
		HardNos:    maxOf(yes.HardNos, noHardNos),
		Nos:        maxOf(yes.Nos, noNos),
		SumHardNos: sumHardNos,
		SumNos:     sumNos,
		WordCount:  yes.WordCount + no.WordCount,
	}
}

// Unsolvable returns the sentinel cost for a subset with no admissible
// question and no Repeat option: every field maxed out so it compares worse
// than any real solution under either comparator.
func Unsolvable(wordCount uint32) Cost {
	return Cost{
		HardNos:    ^uint32(0),
		Nos:        ^uint32(0),
		SumHardNos: ^uint32(0),
		SumNos:     ^uint32(0),
		WordCount:  wordCount,
	}
}

// EstimateLowerBound computes an admissible (never-overestimating) lower
// bound on the cost reachable from a subset of the given size, used only to
// order split candidates before expansion (spec.md §4.4's "Candidate
// ordering"). It must never exceed the true optimal cost for any completion,
// or branch-and-bound pruning could discard an optimal tree.
//
//   - Nos ≥ 1 once the subset is large enough that no single Repeat/Leaf
//     shortcut can resolve it outright (threshold depends on allowRepeat:
//     3 when repeats are allowed — 2 words collapse to a single Repeat with
//     zero Nos — else 2, since any 2+ word subset needs at least one split).
//   - HardNos ≥ 0 (optimistic: assume every split on the path could be soft).
//   - SumNos ≥ wordCount-1 without repeats (a tree of splits has wordCount-1
//     internal nodes, each sending ≥1 word down its No edge); with repeats
//     allowed, SumNos ≥ wordCount-2, since a Repeat adds a word at no cost.
//   - SumHardNos ≥ 0 (optimistic, for the same reason as HardNos).
func EstimateLowerBound(wordCount uint32, allowRepeat bool) Cost {
	threshold := uint32(2)
	if allowRepeat {
		threshold = 3
	}
	var nosEstimate uint32
	if wordCount >= threshold {
		nosEstimate = 1
	}
	var sumNosEstimate uint32
	if wordCount > 0 {
		sumNosEstimate = wordCount - 1
	}
	if allowRepeat && sumNosEstimate > 0 {
		sumNosEstimate--
	}
	return Cost{
		Nos:       nosEstimate,
		SumNos:    sumNosEstimate,
		WordCount: wordCount,
	}
}

// Less reports whether a strictly beats b under the comparator selected by
// prioritizeSoftNo (spec.md §4.3). Word-weighted tie-breaks compare
// a.sum*b.WordCount against b.sum*a.WordCount (cross-multiplication) to
// avoid fractional arithmetic; ties at every tier fall through to false from
// both Less(a,b) and Less(b,a).
func Less(a, b Cost, prioritizeSoftNo bool) bool {
	return compare(a, b, prioritizeSoftNo) < 0
}

// Equal reports whether a and b tie under the selected comparator — every
// tier compares equal.
func Equal(a, b Cost, prioritizeSoftNo bool) bool {
	return compare(a, b, prioritizeSoftNo) == 0
}

// compare returns -1, 0, or 1 as a compares less than, equal to, or greater
// than b, following the lexicographic tier order spec.md §4.3 fixes for each
// value of prioritizeSoftNo.
func compare(a, b Cost, prioritizeSoftNo bool) int {
	if prioritizeSoftNo {
		if c := cmpUint32(a.HardNos, b.HardNos); c != 0 {
			return c
		}
		if c := cmpWeighted(a.SumHardNos, a.WordCount, b.SumHardNos, b.WordCount); c != 0 {
			return c
		}
		if c := cmpUint32(a.Nos, b.Nos); c != 0 {
			return c
		}
		return cmpWeighted(a.SumNos, a.WordCount, b.SumNos, b.WordCount)
	}

	if c := cmpUint32(a.Nos, b.Nos); c != 0 {
		return c
	}
	if c := cmpWeighted(a.SumNos, a.WordCount, b.SumNos, b.WordCount); c != 0 {
		return c
	}
	if c := cmpUint32(a.HardNos, b.HardNos); c != 0 {
		return c
	}
	return cmpWeighted(a.SumHardNos, a.WordCount, b.SumHardNos, b.WordCount)
}

func cmpUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpWeighted compares sumA/countA against sumB/countB without division, by
// cross-multiplying into 64 bits (both sums and counts fit comfortably in
// uint32, so the products never overflow uint64).
func cmpWeighted(sumA, countA, sumB, countB uint32) int {
	left := uint64(sumA) * uint64(countB)
	right := uint64(sumB) * uint64(countA)
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}
