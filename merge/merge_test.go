package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordgraph/qtwenty/merge"
	"github.com/wordgraph/qtwenty/node"
	"github.com/wordgraph/qtwenty/position"
)

func TestMerge_SingleTree_IsUnanimousThroughout(t *testing.T) {
	tree := &node.PositionalSplit{
		TestLetter: 0, TestPosition: position.Contains, IsHard: true,
		Yes: &node.Leaf{Word: "alpha"},
		No:  &node.Leaf{Word: "beta"},
	}

	m := merge.Merge([]node.Node{tree})
	require.True(t, m.Unanimous())
	require.Len(t, m.Options, 1)

	opt := m.Options[0]
	assert.Equal(t, node.KindSplit, opt.Kind)
	require.NotNil(t, opt.Yes)
	require.NotNil(t, opt.No)
	assert.True(t, opt.Yes.Unanimous())
	assert.Equal(t, "alpha", opt.Yes.Options[0].Word)
	assert.Equal(t, "beta", opt.No.Options[0].Word)
}

func TestMerge_TwoTreesSameRoot_StaysUnanimousAtRoot(t *testing.T) {
	treeA := &node.PositionalSplit{
		TestLetter: 0, TestPosition: position.Contains, IsHard: true,
		Yes: &node.Leaf{Word: "alpha"},
		No:  &node.Leaf{Word: "beta"},
	}
	treeB := &node.PositionalSplit{
		TestLetter: 0, TestPosition: position.Contains, IsHard: true,
		Yes: &node.Leaf{Word: "alpha"},
		No:  &node.Leaf{Word: "beta"},
	}

	m := merge.Merge([]node.Node{treeA, treeB})
	assert.True(t, m.Unanimous(), "identical roots collapse to one option")
}

func TestMerge_TwoTreesDifferentRoots_BecomesChoiceNode(t *testing.T) {
	treeA := &node.Leaf{Word: "alpha"}
	treeB := &node.Repeat{Word: "beta", No: &node.Leaf{Word: "gamma"}}

	m := merge.Merge([]node.Node{treeA, treeB})
	assert.False(t, m.Unanimous())
	assert.Len(t, m.Options, 2)
}

func TestMerge_Deterministic(t *testing.T) {
	treeA := &node.Leaf{Word: "zeta"}
	treeB := &node.Leaf{Word: "alpha"}

	first := merge.Merge([]node.Node{treeA, treeB})
	second := merge.Merge([]node.Node{treeA, treeB})
	require.Len(t, first.Options, 2)
	require.Len(t, second.Options, 2)
	assert.Equal(t, first.Options[0].Signature, second.Options[0].Signature)
	assert.Equal(t, "alpha", first.Options[0].Word, "options sort ascending by signature")
}

func TestMerge_RepeatContributesOnlyNoChild(t *testing.T) {
	tree := &node.Repeat{Word: "alpha", No: &node.Leaf{Word: "beta"}}
	m := merge.Merge([]node.Node{tree})
	opt := m.Options[0]
	assert.Nil(t, opt.Yes, "a Repeat has no Yes child")
	require.NotNil(t, opt.No)
	assert.Equal(t, "beta", opt.No.Options[0].Word)
}

func TestMerge_PanicsOnEmptyInput(t *testing.T) {
	assert.Panics(t, func() {
		merge.Merge(nil)
	})
}
