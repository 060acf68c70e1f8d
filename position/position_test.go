package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordgraph/qtwenty/position"
)

func TestAll_FixedEnumerationOrder(t *testing.T) {
	want := []position.Position{
		position.Contains, position.First, position.Second, position.Third,
		position.ThirdToLast, position.SecondToLast, position.Last,
		position.Double, position.Triple,
	}
	require.Equal(t, len(want), len(position.All))
	for i, p := range want {
		assert.Equal(t, p, position.All[i], "position.All[%d]", i)
	}
}

func TestPosition_String(t *testing.T) {
	cases := map[position.Position]string{
		position.Contains:     "contains",
		position.First:        "first",
		position.Last:         "last",
		position.Double:       "double",
		position.Triple:       "triple",
		position.ThirdToLast:  "third-to-last",
		position.SecondToLast: "second-to-last",
	}
	for p, want := range cases {
		assert.Equal(t, want, p.String())
	}
}

func TestClass_Ordering(t *testing.T) {
	assert.Equal(t, position.ClassContains, position.Contains.Class())
	for _, p := range []position.Position{position.First, position.Second, position.Third, position.ThirdToLast, position.SecondToLast, position.Last} {
		assert.Equal(t, position.ClassPositional, p.Class())
	}
	assert.Equal(t, position.ClassMultiplicity, position.Double.Class())
	assert.Equal(t, position.ClassMultiplicity, position.Triple.Class())
}

func TestCanChainException_NeverUpward(t *testing.T) {
	assert.True(t, position.CanChainException(position.Contains, position.First), "contains -> positional is downward")
	assert.True(t, position.CanChainException(position.First, position.Double), "positional -> multiplicity is downward")
	assert.True(t, position.CanChainException(position.First, position.Second), "same class chains")
	assert.False(t, position.CanChainException(position.Double, position.First), "multiplicity -> positional is upward")
	assert.False(t, position.CanChainException(position.First, position.Contains), "positional -> contains is upward")
}

func TestToAbsoluteIndex(t *testing.T) {
	idx, ok := position.First.ToAbsoluteIndex(3)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = position.Last.ToAbsoluteIndex(3)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = position.Third.ToAbsoluteIndex(2)
	assert.False(t, ok, "too short for Third")

	_, ok = position.Contains.ToAbsoluteIndex(5)
	assert.False(t, ok, "Contains has no absolute index")
}

func TestCollide(t *testing.T) {
	assert.True(t, position.Collide(position.First, position.Last), "First==Last at length 1")
	assert.True(t, position.Collide(position.Second, position.SecondToLast), "Second==SecondToLast at length 3")
	assert.False(t, position.Collide(position.First, position.Second), "First never equals Second")
	assert.False(t, position.Collide(position.Contains, position.First), "Contains never collides")
	assert.False(t, position.Collide(position.Double, position.Triple), "multiplicity never collides")
}

func TestMirrors(t *testing.T) {
	assert.ElementsMatch(t, []position.Position{position.Second, position.Last}, position.Mirrors(position.First))
	assert.Empty(t, position.Mirrors(position.Contains))
	assert.Empty(t, position.Mirrors(position.Double))
}
