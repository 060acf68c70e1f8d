// Package solve implements the recursive, memoized branch-and-bound search
// (spec.md §4.4) that is the heart of this module: for a subset of words and
// a constraint state, it finds every tree achieving the lexicographically
// minimal cost, up to a caller-supplied cap.
package solve

import (
	"context"
	"math/bits"
	"sort"

	"github.com/wordgraph/qtwenty/constraint"
	"github.com/wordgraph/qtwenty/cost"
	"github.com/wordgraph/qtwenty/node"
	"github.com/wordgraph/qtwenty/position"
	"github.com/wordgraph/qtwenty/question"
	"github.com/wordgraph/qtwenty/wordctx"
)

// engine holds all search data shared across one top-level Solve call: the
// word context, the flags fixed for the whole call, the memo table, and a
// cancellation budget. Mirrors the teacher's tsp.bbEngine: a dedicated
// struct instead of a web of closures, so dependencies stay explicit.
type engine struct {
	ctx              *wordctx.Context
	prioritizeSoftNo bool
	limit            int // <=0 means unbounded
	memo             map[memoKey]node.Solution

	cancel context.Context
	steps  int
}

// Solve runs the search over mask with the given flags and cap, and no
// external cancellation. It is the synchronous entry qtwenty.Solve wraps.
func Solve(ctx *wordctx.Context, mask wordctx.Mask, allowRepeat, prioritizeSoftNo bool, limit int) node.Solution {
	return SolveContext(context.Background(), ctx, mask, allowRepeat, prioritizeSoftNo, limit)
}

// SolveContext is Solve with an external cancellation budget. The context is
// checked sparsely (every 4096 recursive calls, mirroring tsp.bbEngine's
// deadlineCheck) so the overhead stays negligible; on cancellation a subtree
// reports itself unsolvable rather than corrupting the memo with a
// context-dependent result.
func SolveContext(ctx context.Context, wctx *wordctx.Context, mask wordctx.Mask, allowRepeat, prioritizeSoftNo bool, limit int) node.Solution {
	e := &engine{
		ctx:              wctx,
		prioritizeSoftNo: prioritizeSoftNo,
		limit:            limit,
		memo:             make(map[memoKey]node.Solution),
		cancel:           ctx,
	}
	return e.solve(mask, allowRepeat, constraint.Empty())
}

// canceled performs a sparse cancellation check; cheap in the common case
// since it only actually consults the context every 4096 calls.
func (e *engine) canceled() bool {
	e.steps++
	if e.cancel == nil || (e.steps&4095) != 0 {
		return false
	}
	return e.cancel.Err() != nil
}

// solve is the recursive contract of spec.md §4.4, steps 1-9.
func (e *engine) solve(mask wordctx.Mask, allowRepeat bool, cons constraint.State) node.Solution {
	if e.canceled() {
		return node.UnsolvableSolution(uint32(bits.OnesCount32(mask)))
	}

	present := e.ctx.LettersPresent(mask)
	cons = cons.Prune(present)

	key := makeKey(mask, cons, allowRepeat)
	if hit, ok := e.memo[key]; ok {
		return hit
	}

	count := uint32(bits.OnesCount32(mask))
	if count == 1 {
		word, _ := e.ctx.WordAt(mask)
		sol := node.Solution{Cost: cost.Leaf(), Trees: []node.Node{&node.Leaf{Word: word}}}
		e.memo[key] = sol
		return sol
	}

	var best result

	e.tryRepeats(mask, count, allowRepeat, cons, &best)
	e.trySplits(mask, allowRepeat, cons, &best)

	var sol node.Solution
	if !best.found {
		sol = node.UnsolvableSolution(count)
	} else {
		sol = node.Solution{Cost: best.cost, Trees: best.trees, Exhausted: best.exhausted}
	}
	e.memo[key] = sol
	return sol
}

// result accumulates the current best cost and every tree achieving it,
// mirroring the running (best_cost, best_trees, exhausted) triple the
// reference solver threads through its candidate loop.
type result struct {
	found     bool
	cost      cost.Cost
	trees     []node.Node
	exhausted bool
}

// consider folds one candidate's (cost, trees-to-add) into r: replacing the
// incumbent on a strictly better cost, accumulating on a tie, discarding on
// a strictly worse cost.
func (e *engine) consider(r *result, candidateCost cost.Cost, add func(remaining int) ([]node.Node, bool)) {
	switch {
	case !r.found:
		r.found = true
		r.cost = candidateCost
		r.trees, r.exhausted = add(e.remaining(0))
	case cost.Less(candidateCost, r.cost, e.prioritizeSoftNo):
		r.cost = candidateCost
		r.trees, r.exhausted = add(e.remaining(0))
	case cost.Equal(candidateCost, r.cost, e.prioritizeSoftNo):
		if r.exhausted {
			return
		}
		if e.limit > 0 && len(r.trees) >= e.limit {
			r.exhausted = true
			return
		}
		extra, exhausted := add(e.remaining(len(r.trees)))
		r.trees = append(r.trees, extra...)
		r.exhausted = r.exhausted || exhausted
	}
}

// remaining returns how many more trees may be appended: 0 meaning
// unbounded when e.limit<=0, else e.limit-used (never negative).
func (e *engine) remaining(used int) int {
	if e.limit <= 0 {
		return 0
	}
	left := e.limit - used
	if left < 0 {
		return 0
	}
	return left
}

// tryRepeats expands every Repeat candidate (spec.md §4.4 step 4): guess one
// word by name, recurse on the rest with repeats disabled.
func (e *engine) tryRepeats(mask wordctx.Mask, count uint32, allowRepeat bool, cons constraint.State, best *result) {
	if !allowRepeat || count < 2 {
		return
	}
	repeatCons := cons.NextLevel().ClearParent()
	for i, word := range e.ctx.Words {
		bit := wordctx.Mask(1) << uint(i)
		if mask&bit == 0 {
			continue
		}
		noMask := mask &^ bit
		noSol := e.solve(noMask, false, repeatCons)
		if noSol.Unsolvable() {
			continue
		}
		branchCost := cost.CombineRepeat(noSol.Cost)
		e.consider(best, branchCost, func(remaining int) ([]node.Node, bool) {
			return buildRepeatTrees(word, noSol.Trees, remaining)
		})
	}
}

// buildRepeatTrees wraps each of noTrees in a Repeat{word, ...}, stopping
// once remaining is exhausted (remaining==0 means unbounded).
func buildRepeatTrees(word string, noTrees []node.Node, remaining int) ([]node.Node, bool) {
	out := make([]node.Node, 0, len(noTrees))
	for _, n := range noTrees {
		if remaining > 0 && len(out) >= remaining {
			return out, true
		}
		out = append(out, &node.Repeat{Word: word, No: n})
	}
	return out, false
}

// trySplits expands every admissible split candidate (spec.md §4.4 step 5),
// visiting candidates in ascending admissible-lower-bound order so
// branch-and-bound pruning (step 6) discards as much work as possible.
func (e *engine) trySplits(mask wordctx.Mask, allowRepeat bool, cons constraint.State, best *result) {
	candidates := question.Enumerate(mask, e.ctx, cons)
	order := make([]int, len(candidates))
	estimates := make([]cost.Cost, len(candidates))
	for i, c := range candidates {
		order[i] = i
		yesEst := cost.EstimateLowerBound(uint32(bits.OnesCount32(c.Yes)), allowRepeat)
		noEst := cost.EstimateLowerBound(uint32(bits.OnesCount32(c.No)), allowRepeat)
		estimates[i] = cost.CombineSplit(yesEst, noEst, c.IsHard)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cost.Less(estimates[order[i]], estimates[order[j]], e.prioritizeSoftNo)
	})

	for _, idx := range order {
		c := candidates[idx]

		if best.found && cost.Less(best.cost, estimates[idx], e.prioritizeSoftNo) {
			continue
		}

		yesAllowOnce := uint32(0)
		if c.IsHard && c.TestPosition == position.Contains {
			yesAllowOnce = uint32(1) << uint(c.TestLetter)
		}
		yesCons, noCons := constraint.Branch(cons, c.TestLetter, c.RequirementLetter, c.TestPosition, yesAllowOnce)

		noSol := e.solve(c.No, allowRepeat, noCons)
		if noSol.Unsolvable() {
			continue
		}

		if best.found && noBranchAlreadyWorse(noSol.Cost, c.IsHard, best.cost, e.prioritizeSoftNo) {
			continue
		}

		yesSol := e.solve(c.Yes, allowRepeat, yesCons)
		if yesSol.Unsolvable() {
			continue
		}

		branchCost := cost.CombineSplit(yesSol.Cost, noSol.Cost, c.IsHard)
		cc := c
		e.consider(best, branchCost, func(remaining int) ([]node.Node, bool) {
			return buildSplitTrees(cc, yesSol.Trees, noSol.Trees, remaining)
		})
	}
}

// noBranchAlreadyWorse is the partial-cost prune of spec.md §4.4 step 6: it
// uses only the No side's already-computed cost (incremented for the edge
// about to be added) against the first comparator tier, since the Yes side
// can only make the true worst-path counters larger or equal, never smaller.
func noBranchAlreadyWorse(noCost cost.Cost, isHard bool, best cost.Cost, prioritizeSoftNo bool) bool {
	nos := noCost.Nos + 1
	hardNos := noCost.HardNos
	if isHard {
		hardNos++
	}
	if prioritizeSoftNo {
		return hardNos > best.HardNos
	}
	return nos > best.Nos
}

// buildSplitTrees builds the cartesian combination of yesTrees x noTrees as
// PositionalSplit nodes, stopping once remaining is exhausted (remaining==0
// means unbounded).
func buildSplitTrees(c question.Candidate, yesTrees, noTrees []node.Node, remaining int) ([]node.Node, bool) {
	out := make([]node.Node, 0, len(yesTrees)*len(noTrees))
	for _, y := range yesTrees {
		for _, n := range noTrees {
			if remaining > 0 && len(out) >= remaining {
				return out, true
			}
			out = append(out, &node.PositionalSplit{
				TestLetter:          c.TestLetter,
				TestPosition:        c.TestPosition,
				RequirementLetter:   c.RequirementLetter,
				RequirementPosition: c.RequirementPosition,
				IsHard:              c.IsHard,
				Yes:                 y,
				No:                  n,
			})
		}
	}
	return out, false
}
