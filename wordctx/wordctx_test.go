package wordctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordgraph/qtwenty/position"
	"github.com/wordgraph/qtwenty/wordctx"
)

func TestNew_PositionMasks(t *testing.T) {
	ctx := wordctx.New([]string{"book", "pool", "ball", "tall"})

	// "book"=0, "pool"=1, "ball"=2, "tall"=3; book and ball start with 'b'.
	assert.Equal(t, uint32(0b0101), ctx.Mask(position.First, letter('b')))
}

func TestNew_ContainsMask(t *testing.T) {
	ctx := wordctx.New([]string{"alpha", "beta"})
	// both contain 'a'
	assert.Equal(t, uint32(0b11), ctx.Mask(position.Contains, letter('a')))
	// only alpha contains 'l' and 'p'
	assert.Equal(t, uint32(0b01), ctx.Mask(position.Contains, letter('p')))
	// neither contains 'z'
	assert.Equal(t, uint32(0), ctx.Mask(position.Contains, letter('z')))
}

func TestNew_FirstAndLast(t *testing.T) {
	ctx := wordctx.New([]string{"axe", "exa"})
	assert.Equal(t, uint32(0b01), ctx.Mask(position.First, letter('a')))
	assert.Equal(t, uint32(0b10), ctx.Mask(position.First, letter('e')))
	assert.Equal(t, uint32(0b10), ctx.Mask(position.Last, letter('a')))
	assert.Equal(t, uint32(0b01), ctx.Mask(position.Last, letter('e')))
}

func TestNew_DoubleAndTriple(t *testing.T) {
	ctx := wordctx.New([]string{"book", "pool", "ball", "tall"})
	// book, pool have double 'o'; ball, tall have double 'l'
	assert.Equal(t, uint32(0b0011), ctx.Mask(position.Double, letter('o')))
	assert.Equal(t, uint32(0b1100), ctx.Mask(position.Double, letter('l')))
	assert.Equal(t, uint32(0), ctx.Mask(position.Triple, letter('o')), "no word triples a letter")
}

func TestNew_CaseAndNonLetterIgnored(t *testing.T) {
	ctx := wordctx.New([]string{"Tr-1", "r"})
	assert.Equal(t, uint32(0b01), ctx.Mask(position.First, letter('t')), "case-insensitive, digits/punct ignored")
}

func TestGlobalLetters_SortedAndPresentOnly(t *testing.T) {
	ctx := wordctx.New([]string{"ab", "ac", "b"})
	assert.Equal(t, []int{letter('a'), letter('b'), letter('c')}, ctx.GlobalLetters)
}

func TestLettersPresent(t *testing.T) {
	ctx := wordctx.New([]string{"ab", "ac", "b"})
	full := wordctx.Mask(0b111)
	present := ctx.LettersPresent(full)
	assert.NotZero(t, present&(1<<uint(letter('a'))))
	assert.NotZero(t, present&(1<<uint(letter('b'))))
	assert.NotZero(t, present&(1<<uint(letter('c'))))

	onlyB := wordctx.Mask(0b100) // just "b"
	present = ctx.LettersPresent(onlyB)
	assert.Zero(t, present&(1<<uint(letter('a'))), "word 'b' alone has no 'a'")
}

func TestWordAt(t *testing.T) {
	ctx := wordctx.New([]string{"alpha", "beta"})
	word, ok := ctx.WordAt(0b01)
	require.True(t, ok)
	assert.Equal(t, "alpha", word)

	word, ok = ctx.WordAt(0b10)
	require.True(t, ok)
	assert.Equal(t, "beta", word)

	_, ok = ctx.WordAt(0b11)
	assert.False(t, ok, "not a singleton mask")

	_, ok = ctx.WordAt(0)
	assert.False(t, ok, "empty mask")
}

// letter converts an ASCII lowercase rune to its 0-based index, mirroring the
// package's internal 'a'=0 convention.
func letter(r rune) int {
	return int(r - 'a')
}
