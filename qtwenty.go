package qtwenty

import (
	"context"
	"errors"

	"github.com/wordgraph/qtwenty/node"
	"github.com/wordgraph/qtwenty/solve"
	"github.com/wordgraph/qtwenty/wordctx"
)

// ErrNoWords is returned when Solve is called with an empty word list.
var ErrNoWords = errors.New("qtwenty: word list is empty")

// ErrTooManyWords is returned when the word list exceeds wordctx.MaxWords.
var ErrTooManyWords = errors.New("qtwenty: word list exceeds the 32-word limit")

// defaultLimit is the default cap on co-optimal trees returned by Solve.
const defaultLimit = 5

// Solve builds the optimal decision tree for words, capped at the default 5
// co-optimal trees. allowRepeat permits guess-by-name Repeat nodes;
// prioritizeSoftNo selects which of the two cost comparators (spec.md §4.3)
// orders candidates.
func Solve(words []string, allowRepeat, prioritizeSoftNo bool) (node.Solution, error) {
	return SolveLimit(words, allowRepeat, prioritizeSoftNo, defaultLimit)
}

// SolveLimit is Solve with an explicit cap on the number of co-optimal trees
// returned; limit <= 0 means unbounded.
func SolveLimit(words []string, allowRepeat, prioritizeSoftNo bool, limit int) (node.Solution, error) {
	return SolveContext(context.Background(), words, allowRepeat, prioritizeSoftNo, limit)
}

// SolveContext is SolveLimit with an external cancellation budget: a
// canceled ctx causes the affected subtrees to report themselves unsolvable
// rather than corrupting the memo, so a cancellation surfaces as
// node.Solution.Unsolvable() rather than an error — valid input is always
// solvable in the uncanceled case (spec.md §7), but a mid-search
// cancellation forfeits that guarantee deliberately.
func SolveContext(ctx context.Context, words []string, allowRepeat, prioritizeSoftNo bool, limit int) (node.Solution, error) {
	if len(words) == 0 {
		return node.Solution{}, ErrNoWords
	}
	if len(words) > wordctx.MaxWords {
		return node.Solution{}, ErrTooManyWords
	}

	wctx := wordctx.New(words)
	fullMask := wordctx.Mask(0)
	for i := range words {
		fullMask |= wordctx.Mask(1) << uint(i)
	}

	sol := solve.SolveContext(ctx, wctx, fullMask, allowRepeat, prioritizeSoftNo, limit)
	return sol, nil
}
