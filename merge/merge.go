// Package merge collapses a set of co-optimal decision trees (spec.md §4.6)
// into a single DAG: nodes that agree across every tree collapse to one
// option; nodes that disagree expose the full menu of equivalent-cost
// alternatives for a caller to present.
package merge

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/wordgraph/qtwenty/node"
)

// Node is a merged point in the DAG: a set of Options, grouped by the
// signature of the root question they share. A Node with exactly one Option
// is "unanimous"; with more than one it is a "choice" node.
type Node struct {
	Options []Option
}

// Unanimous reports whether every input tree agreed on this node's question.
func (n *Node) Unanimous() bool {
	return len(n.Options) == 1
}

// Option is one root signature shared by a group of input trees, with its
// merged Yes/No continuations. Yes and No are nil when the signature's kind
// has no corresponding child (a Leaf has neither; a Repeat has no Yes).
type Option struct {
	Signature string
	Kind      node.Kind

	// The fields below are populated according to Kind: Word for
	// KindLeaf/KindRepeat, the five split fields for KindSplit.
	Word                string
	TestLetter          int
	TestPosition        int
	RequirementLetter   int
	RequirementPosition int
	IsHard              bool

	Yes *Node
	No  *Node
}

// Merge builds the merged DAG for a non-empty list of co-optimal trees
// (spec.md §4.6). Merge panics if trees is empty; the solver never produces
// an empty co-optimal list for a solvable subset, so an empty call here
// indicates a caller error, not a data condition to recover from.
func Merge(trees []node.Node) *Node {
	if len(trees) == 0 {
		panic("merge: Merge called with no trees")
	}
	return mergeGroup(trees)
}

// mergeGroup groups trees by their root signature and builds one Option per
// group, recursing on the concatenated Yes-children and No-children of every
// tree sharing that signature.
func mergeGroup(trees []node.Node) *Node {
	groups := make(map[string][]node.Node)
	order := make([]string, 0, len(trees))
	for _, t := range trees {
		sig := signature(t)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], t)
	}

	options := make([]Option, 0, len(order))
	for _, sig := range order {
		options = append(options, buildOption(sig, groups[sig]))
	}

	slices.SortFunc(options, func(a, b Option) int {
		switch {
		case a.Signature < b.Signature:
			return -1
		case a.Signature > b.Signature:
			return 1
		default:
			return 0
		}
	})

	return &Node{Options: options}
}

// buildOption constructs the Option for one signature group: every member of
// members shares sig and the same Kind, by construction of signature.
func buildOption(sig string, members []node.Node) Option {
	opt := Option{Signature: sig, Kind: members[0].Kind()}

	var yesChildren, noChildren []node.Node
	for _, m := range members {
		switch n := m.(type) {
		case *node.Leaf:
			opt.Word = n.Word
		case *node.Repeat:
			opt.Word = n.Word
			noChildren = append(noChildren, n.No)
		case *node.PositionalSplit:
			opt.TestLetter = n.TestLetter
			opt.TestPosition = int(n.TestPosition)
			opt.RequirementLetter = n.RequirementLetter
			opt.RequirementPosition = int(n.RequirementPosition)
			opt.IsHard = n.IsHard
			yesChildren = append(yesChildren, n.Yes)
			noChildren = append(noChildren, n.No)
		}
	}

	if len(yesChildren) > 0 {
		opt.Yes = mergeGroup(yesChildren)
	}
	if len(noChildren) > 0 {
		opt.No = mergeGroup(noChildren)
	}
	return opt
}

// signature derives the total-order key for n's root (spec.md §4.6): node
// kind plus whatever letters/positions or word distinguish it, formatted so
// that string comparison gives a stable, reproducible order across runs.
func signature(n node.Node) string {
	switch v := n.(type) {
	case *node.Leaf:
		return fmt.Sprintf("0|%s", v.Word)
	case *node.Repeat:
		return fmt.Sprintf("1|%s", v.Word)
	case *node.PositionalSplit:
		hard := 0
		if v.IsHard {
			hard = 1
		}
		return fmt.Sprintf("2|%02d|%02d|%02d|%02d|%d",
			v.TestPosition, v.TestLetter, v.RequirementPosition, v.RequirementLetter, hard)
	default:
		return ""
	}
}
