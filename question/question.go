// Package question is the question catalog (spec.md §4.2): given a subset
// and a constraint state, it enumerates every admissible split — hard and
// soft, across the containment, positional, and multiplicity axes — in the
// fixed order the contract requires.
package question

import (
	"unicode/utf8"

	"github.com/wordgraph/qtwenty/constraint"
	"github.com/wordgraph/qtwenty/position"
	"github.com/wordgraph/qtwenty/wordctx"
)

// Candidate is one admissible question: a (position, letter) test, an
// optional (position, letter) requirement promised on the No branch, and the
// partition it induces. For a hard split RequirementLetter == TestLetter and
// RequirementPosition == TestPosition.
type Candidate struct {
	TestLetter          int
	TestPosition        position.Position
	RequirementLetter   int
	RequirementPosition position.Position
	IsHard              bool
	Yes                 wordctx.Mask
	No                  wordctx.Mask
}

// Enumerate returns every admissible split of mask under cons, in the fixed
// position order (Contains, First, Second, Third, ThirdToLast, SecondToLast,
// Last, Double, Triple) and ascending letter order within each position. For
// each (position, letter) partition with both sides non-empty, candidates of
// four kinds are emitted, in this order: at most one same-letter reciprocal
// soft split, up to three same-letter mirror-position soft splits, at most one
// multiplicity cross-letter soft split, then the hard split — each gated by
// cons.SplitAllowed (mirror splits also by cons.SecondaryAllowed) and, for the
// reciprocal/mirror/multiplicity splits, the
// precondition that every word left in the No branch satisfies the promised
// requirement.
func Enumerate(mask wordctx.Mask, ctx *wordctx.Context, cons constraint.State) []Candidate {
	var out []Candidate

	for _, pos := range position.All {
		for _, letter := range ctx.GlobalLetters {
			letterMask := ctx.Mask(pos, letter)
			yes := mask & letterMask
			if yes == 0 || yes == mask {
				continue
			}
			no := mask &^ letterMask

			out = appendReciprocal(out, pos, letter, yes, no, ctx, cons)
			out = appendMirror(out, pos, letter, yes, no, ctx, cons)
			out = appendMultiplicity(out, pos, letter, yes, no, ctx, cons)
			out = appendHard(out, pos, letter, yes, no, cons)
		}
	}

	return out
}

// everyNoWordSatisfies reports whether every word index set in no has a set
// bit in requirementMask, i.e. the requirement is guaranteed on the No
// branch.
func everyNoWordSatisfies(no, requirementMask wordctx.Mask) bool {
	return no&^requirementMask == 0
}

// appendReciprocal emits the same-position soft split pairing letter with
// its registered reciprocal (spec.md §4.2 rule 1), if one is registered and
// every No-branch word satisfies it.
func appendReciprocal(out []Candidate, pos position.Position, letter int, yes, no wordctx.Mask, ctx *wordctx.Context, cons constraint.State) []Candidate {
	recip, ok := constraint.Reciprocal(letter)
	if !ok {
		return out
	}
	if !everyNoWordSatisfies(no, ctx.Mask(pos, recip)) {
		return out
	}
	if !cons.SplitAllowed(letter, recip, pos) {
		return out
	}
	return append(out, Candidate{
		TestLetter: letter, TestPosition: pos,
		RequirementLetter: recip, RequirementPosition: pos,
		IsHard: false, Yes: yes, No: no,
	})
}

// appendMirror emits, for each neighbour position in position.Mirrors(pos),
// a same-letter soft split requiring (reqPos, letter) on the No branch
// (spec.md §4.2 rule 2). Three additional guards apply: every No-branch word
// must actually satisfy the requirement; the two positions must not collide
// on any word actually in the No branch; and the parent question must not
// have been exactly (reqPos, letter), which would make this an immediate,
// nonsensical back-and-forth. Because test and requirement letters are equal,
// cons.SplitAllowed checks only the primary side, so the requirement letter
// is also checked with cons.SecondaryAllowed, as for any soft split.
func appendMirror(out []Candidate, pos position.Position, letter int, yes, no wordctx.Mask, ctx *wordctx.Context, cons constraint.State) []Candidate {
	for _, reqPos := range position.Mirrors(pos) {
		if !everyNoWordSatisfies(no, ctx.Mask(reqPos, letter)) {
			continue
		}
		if collidesOnWords(pos, reqPos, no, ctx) {
			continue
		}
		if cons.HasParent && cons.HasParentLetter && cons.ParentLetter == letter && cons.ParentPosition == reqPos {
			continue
		}
		if !cons.SplitAllowed(letter, letter, pos) || !cons.SecondaryAllowed(letter) {
			continue
		}
		out = append(out, Candidate{
			TestLetter: letter, TestPosition: pos,
			RequirementLetter: letter, RequirementPosition: reqPos,
			IsHard: false, Yes: yes, No: no,
		})
	}
	return out
}

// appendMultiplicity emits at most one cross-letter soft split for Double or
// Triple positions (spec.md §4.2 rule 3): the first letter, in ascending
// index order, whose same-position membership covers every No-branch word.
func appendMultiplicity(out []Candidate, pos position.Position, letter int, yes, no wordctx.Mask, ctx *wordctx.Context, cons constraint.State) []Candidate {
	if pos != position.Double && pos != position.Triple {
		return out
	}
	for req := 0; req < 26; req++ {
		if req == letter {
			continue
		}
		if !everyNoWordSatisfies(no, ctx.Mask(pos, req)) {
			continue
		}
		if !cons.SplitAllowed(letter, req, pos) {
			continue
		}
		out = append(out, Candidate{
			TestLetter: letter, TestPosition: pos,
			RequirementLetter: req, RequirementPosition: pos,
			IsHard: false, Yes: yes, No: no,
		})
		break
	}
	return out
}

// appendHard emits the hard split: ℓ=ℓ, same position both sides.
func appendHard(out []Candidate, pos position.Position, letter int, yes, no wordctx.Mask, cons constraint.State) []Candidate {
	if !cons.SplitAllowed(letter, letter, pos) {
		return out
	}
	return append(out, Candidate{
		TestLetter: letter, TestPosition: pos,
		RequirementLetter: letter, RequirementPosition: pos,
		IsHard: true, Yes: yes, No: no,
	})
}

// collidesOnWords reports whether pos and reqPos resolve to the same
// absolute character index for some word actually set in the no mask —
// the enumeration-time collision check (spec.md §4.2.1). It is narrower than
// the generic all-lengths check constraint State uses for chaining
// exceptions: it refuses a pair only when a word actually present collides.
func collidesOnWords(pos, reqPos position.Position, no wordctx.Mask, ctx *wordctx.Context) bool {
	for i, w := range ctx.Words {
		if no&(wordctx.Mask(1)<<uint(i)) == 0 {
			continue
		}
		wordLen := utf8.RuneCountInString(w)
		if idx1, ok1 := pos.ToAbsoluteIndex(wordLen); ok1 {
			if idx2, ok2 := reqPos.ToAbsoluteIndex(wordLen); ok2 && idx1 == idx2 {
				return true
			}
		}
	}
	return false
}
