// Package constraint carries, down the solver's recursion, which letters may
// no longer be used as the primary (tested) or secondary (required) letter
// of a further question in the current subtree — plus a narrow, single-use
// exception that lets a hard Contains split refine itself one level deeper
// on the same letter (spec.md §4.2.2, §4.5).
package constraint

import "github.com/wordgraph/qtwenty/position"

// State is the constraint carried into one subtree of the search.
//
// Invariant: when descending to the next level, AllowedPrimaryOnce is
// cleared; ForbiddenPrimary/ForbiddenSecondary persist; ParentPosition and
// ParentLetter are overwritten by the new parent question (or cleared, for a
// Repeat node, which breaks the chain).
type State struct {
	// ForbiddenPrimary is the 26-bit set of letters that cannot be used as a
	// test letter in this subtree.
	ForbiddenPrimary uint32
	// ForbiddenSecondary is the 26-bit set of letters that cannot be used as
	// a requirement letter in this subtree.
	ForbiddenSecondary uint32
	// AllowedPrimaryOnce is the 26-bit set of letters allowed as the primary
	// test letter on the immediate child question only.
	AllowedPrimaryOnce uint32

	// HasParent reports whether ParentPosition is meaningful.
	HasParent bool
	// ParentPosition is the position of the parent question, when HasParent.
	ParentPosition position.Position

	// HasParentLetter reports whether ParentLetter is meaningful.
	HasParentLetter bool
	// ParentLetter is the primary letter of the parent question, when HasParentLetter.
	ParentLetter int
}

// Empty is the root constraint state: nothing forbidden, no parent.
func Empty() State {
	return State{}
}

// PrimaryAllowed reports whether letter may be used as a primary (tested)
// letter of a question at position childPos, under s.
func (s State) PrimaryAllowed(letter int, childPos position.Position) bool {
	bit := uint32(1) << uint(letter)

	if s.ForbiddenPrimary&bit == 0 {
		return true
	}

	if s.AllowedPrimaryOnce&bit != 0 {
		if !s.HasParent || position.CanChainException(s.ParentPosition, childPos) {
			return true
		}
	}

	if s.HasParent && s.HasParentLetter && s.ParentLetter == letter {
		if position.CanChainException(s.ParentPosition, childPos) {
			return !position.Collide(s.ParentPosition, childPos)
		}
	}

	return false
}

// SecondaryAllowed reports whether letter may be used as a requirement
// (secondary) letter of a soft split under s.
func (s State) SecondaryAllowed(letter int) bool {
	return s.ForbiddenSecondary&(uint32(1)<<uint(letter)) == 0
}

// SplitAllowed reports whether a split testing primaryLetter at pos, with
// requirement requirementLetter, may be emitted under s. When primaryLetter ==
// requirementLetter (a hard split, or a same-letter mirror soft split) only
// PrimaryAllowed is checked; otherwise both checks apply independently. A
// same-letter soft split needs SecondaryAllowed checked separately.
func (s State) SplitAllowed(primaryLetter, requirementLetter int, pos position.Position) bool {
	if primaryLetter == requirementLetter {
		return s.PrimaryAllowed(primaryLetter, pos)
	}
	return s.PrimaryAllowed(primaryLetter, pos) && s.SecondaryAllowed(requirementLetter)
}

// NextLevel clears the one-use allowance when descending a level;
// persistent forbiddances and parent info are carried through unchanged.
// Branch always calls this on both children before applying its own deltas.
func (s State) NextLevel() State {
	next := s
	next.AllowedPrimaryOnce = 0
	return next
}

// Prune masks ForbiddenPrimary, ForbiddenSecondary, and AllowedPrimaryOnce
// down to the letters present in the current subset, improving memo-key
// sharing across subtrees that differ only in long-forbidden, now-absent
// letters.
func (s State) Prune(presentLetters uint32) State {
	next := s
	next.ForbiddenPrimary &= presentLetters
	next.ForbiddenSecondary &= presentLetters
	next.AllowedPrimaryOnce &= presentLetters
	return next
}

// ClearParent returns s with ParentPosition/ParentLetter cleared. A Repeat
// node does not test a letter, so it breaks the question-chaining rule for
// its No subtree.
func (s State) ClearParent() State {
	next := s
	next.HasParent = false
	next.HasParentLetter = false
	return next
}

// Branch derives the Yes- and No-child constraint states for a split testing
// primaryLetter at pos, with requirement requirementLetter (equal to
// primaryLetter for a hard split). yesPrimaryAllowOnce, when non-zero, grants
// the Yes child's AllowedPrimaryOnce exception bit (used only for a hard
// Contains split, per spec.md §4.2.2's rationale).
func Branch(s State, primaryLetter, requirementLetter int, pos position.Position, yesPrimaryAllowOnce uint32) (yes, no State) {
	yes = s.NextLevel()
	no = s.NextLevel()

	primaryBit := uint32(1) << uint(primaryLetter)
	requirementBit := uint32(1) << uint(requirementLetter)

	// Yes: the primary letter has been touched.
	yes.ForbiddenPrimary |= primaryBit
	yes.ForbiddenSecondary |= primaryBit
	yes.HasParent = true
	yes.ParentPosition = pos
	yes.HasParentLetter = true
	yes.ParentLetter = primaryLetter

	// No: both primary and secondary have been touched.
	no.ForbiddenPrimary |= primaryBit | requirementBit
	no.ForbiddenSecondary |= primaryBit | requirementBit
	no.HasParent = true
	no.ParentPosition = pos
	if primaryLetter != requirementLetter {
		// Only a soft split's secondary may chain in the No branch.
		no.HasParentLetter = true
		no.ParentLetter = requirementLetter
	} else {
		no.HasParentLetter = false
	}

	if yesPrimaryAllowOnce != 0 {
		yes.AllowedPrimaryOnce |= yesPrimaryAllowOnce
	}

	return yes, no
}
