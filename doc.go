// Package qtwenty builds an optimal "twenty questions" decision tree over a
// small set of words.
//
// 🔎 What is qtwenty?
//
//	A deterministic, single-threaded, dependency-light library that brings
//	together:
//
//	  • Word context: per-letter membership bitmasks for every question shape
//	  • A constraint system that forbids degenerate chains of questions
//	  • A multi-objective cost model over worst-path and total No-counts
//	  • A memoized branch-and-bound solver over bitmask subsets
//	  • A merger that collapses every co-optimal tree into one navigable DAG
//
// ✨ Why qtwenty?
//
//   - Exhaustive   — enumerates every admissible question shape, not a
//     hand-picked subset
//   - Exact        — returns every tree tied for the lexicographically
//     minimal cost, not just one
//   - Deterministic — fixed enumeration order, fixed tie-breaking; same
//     inputs always produce byte-identical output
//   - Pure Go      — no cgo, no network, no persistence
//
// Under the hood, everything is organized under small subpackages:
//
//	position/   — question position tags, classes, and the mirror table
//	wordctx/    — per-letter bitmask context built once per call
//	constraint/ — per-subtree primary/secondary letter bans and exceptions
//	cost/       — the five-field lexicographic cost and its comparator
//	node/       — closed tree-node variants and the Solution type
//	question/   — the admissible-question enumerator (the question catalog)
//	solve/      — the memoized branch-and-bound search
//	merge/      — collapsing co-optimal trees into a single DAG
//
// Quick example: given ["alpha", "beta"] with repeats allowed, the optimal
// tree is a single Repeat node ("is it exactly alpha?"); given
// ["book", "pool", "ball", "tall"] the optimal tree reaches for a
// multiplicity soft split (double O implies double L on the No branch).
//
//	go get github.com/wordgraph/qtwenty
package qtwenty
