package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordgraph/qtwenty/constraint"
	"github.com/wordgraph/qtwenty/position"
)

func letter(r rune) int { return int(r - 'a') }

func TestEmpty_AllowsEverything(t *testing.T) {
	s := constraint.Empty()
	assert.True(t, s.PrimaryAllowed(letter('a'), position.First))
	assert.True(t, s.SecondaryAllowed(letter('z')))
	assert.True(t, s.SplitAllowed(letter('a'), letter('a'), position.Contains))
}

func TestBranch_HardSplit_ForbidsBothSidesOnSameLetter(t *testing.T) {
	s := constraint.Empty()
	yes, no := constraint.Branch(s, letter('a'), letter('a'), position.Contains, 0)

	assert.False(t, yes.ClearParent().PrimaryAllowed(letter('a'), position.First), "outside the parent-letter chain, the yes child cannot re-test 'a' without the exception")
	assert.False(t, no.PrimaryAllowed(letter('a'), position.First), "no child cannot re-test 'a'")
	assert.True(t, no.HasParent)
	assert.Equal(t, position.Contains, no.ParentPosition)
	assert.False(t, no.HasParentLetter, "hard split clears the no-side parent letter")
}

func TestBranch_SoftSplit_ForbidsBothPrimaryAndSecondaryOnNoSide(t *testing.T) {
	s := constraint.Empty()
	yes, no := constraint.Branch(s, letter('i'), letter('e'), position.First, 0)

	assert.False(t, no.PrimaryAllowed(letter('e'), position.First), "no side forbids the requirement letter as primary too")
	assert.False(t, no.SecondaryAllowed(letter('i')))
	assert.True(t, no.HasParentLetter, "soft split keeps the requirement letter as the no-side parent")
	assert.Equal(t, letter('e'), no.ParentLetter)
	assert.True(t, yes.HasParentLetter)
	assert.Equal(t, letter('i'), yes.ParentLetter)
}

func TestBranch_YesAllowOnce_GrantsOneLevelException(t *testing.T) {
	s := constraint.Empty()
	allowOnce := uint32(1) << uint(letter('a'))
	yes, _ := constraint.Branch(s, letter('a'), letter('a'), position.Contains, allowOnce)

	assert.True(t, yes.PrimaryAllowed(letter('a'), position.First), "exception lets the child test 'a' again at a downward position")

	// ClearParent isolates the exception from the parent-letter chain rule,
	// which NextLevel alone leaves in place.
	child := yes.NextLevel().ClearParent()
	child = child.Prune(^uint32(0))
	assert.False(t, child.PrimaryAllowed(letter('a'), position.Second), "the exception is single-use, gone at the next level")
}

func TestPrimaryAllowed_ParentChainRequiresNonCollidingDownwardPosition(t *testing.T) {
	s := constraint.Empty()
	_, no := constraint.Branch(s, letter('i'), letter('e'), position.First, 0)
	// no.ParentLetter == 'e', no.ParentPosition == First.
	assert.True(t, no.PrimaryAllowed(letter('e'), position.Double), "same letter may chain from First down to Double (no collision, downward class)")
	assert.False(t, no.PrimaryAllowed(letter('e'), position.Last), "First and Last collide at word length 1, so chaining is blocked")
}

func TestSplitAllowed_SoftSplitChecksBothLetters(t *testing.T) {
	s := constraint.Empty()
	yes, _ := constraint.Branch(s, letter('a'), letter('a'), position.Contains, 0)
	// yes forbids 'a' as both primary and secondary.
	assert.False(t, yes.SplitAllowed(letter('b'), letter('a'), position.First), "'a' is forbidden as a secondary letter too")
	assert.True(t, yes.SplitAllowed(letter('b'), letter('c'), position.First))
}

func TestPrune_DropsAbsentLetters(t *testing.T) {
	s := constraint.Empty()
	yes, _ := constraint.Branch(s, letter('a'), letter('a'), position.Contains, 0)
	require.True(t, yes.ForbiddenPrimary&(1<<uint(letter('a'))) != 0)

	pruned := yes.Prune(0) // no letters present anymore
	assert.Zero(t, pruned.ForbiddenPrimary)
	assert.Zero(t, pruned.ForbiddenSecondary)
}

func TestClearParent(t *testing.T) {
	s := constraint.Empty()
	yes, _ := constraint.Branch(s, letter('a'), letter('a'), position.Contains, 0)
	require.True(t, yes.HasParent)

	cleared := yes.ClearParent()
	assert.False(t, cleared.HasParent)
	assert.False(t, cleared.HasParentLetter)
}

func TestReciprocal(t *testing.T) {
	recip, ok := constraint.Reciprocal(letter('i'))
	require.True(t, ok)
	assert.Equal(t, letter('e'), recip, "the first i/_ pair in table order wins")
}
