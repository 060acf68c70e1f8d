// Package node defines the closed set of decision-tree node variants
// (spec.md §3) and the Solution type the solver and merger exchange.
//
// Node is a closed sum type in the Rust sense ("Leaf | Repeat |
// PositionalSplit", never a fourth case): Go has no enum-with-payload, so we
// use the standard substitute — an interface with an unexported marker
// method, implemented by exactly the three concrete node types in this
// package — and a Kind() tag so callers can exhaustively type-switch without
// a type assertion per branch.
package node

import "github.com/wordgraph/qtwenty/position"

// Kind tags which of the three Node variants a value is.
type Kind int

const (
	// KindLeaf tags a Leaf.
	KindLeaf Kind = iota
	// KindRepeat tags a Repeat.
	KindRepeat
	// KindSplit tags a PositionalSplit.
	KindSplit
)

// Node is implemented by exactly *Leaf, *Repeat, and *PositionalSplit.
// Trees built from Node values are immutable after construction and share
// structure freely: two co-optimal trees may point at the very same child
// Node, and the Go garbage collector — not manual reference counting —
// reclaims a subtree once nothing references it.
type Node interface {
	// Kind reports which concrete variant this Node is.
	Kind() Kind

	isNode()
}

// Leaf names the single word this subtree has narrowed down to.
type Leaf struct {
	Word string
}

// Kind implements Node.
func (*Leaf) Kind() Kind { return KindLeaf }
func (*Leaf) isNode()    {}

// Repeat is a guess-by-name node: "is it exactly Word?" Yes resolves to Word;
// No recurses into the remaining subset via No. At most one Repeat may occur
// on any root-to-leaf path (spec.md §4.5).
type Repeat struct {
	Word string
	No   Node
}

// Kind implements Node.
func (*Repeat) Kind() Kind { return KindRepeat }
func (*Repeat) isNode()    {}

// PositionalSplit is any hard or soft question (spec.md §3). For a hard
// split, RequirementLetter == TestLetter and RequirementPosition ==
// TestPosition; IsHard records this directly rather than asking callers to
// recompute it.
type PositionalSplit struct {
	TestLetter          int
	TestPosition        position.Position
	RequirementLetter   int
	RequirementPosition position.Position
	IsHard              bool
	Yes                 Node
	No                  Node
}

// Kind implements Node.
func (*PositionalSplit) Kind() Kind { return KindSplit }
func (*PositionalSplit) isNode()    {}
