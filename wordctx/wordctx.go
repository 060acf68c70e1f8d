// Package wordctx precomputes, once per top-level solve, the per-letter
// membership bitmasks that every other package queries: for each of the nine
// question positions and each of the 26 letters, which input words satisfy
// that (position, letter) pair.
//
// Building a Context is the only place letter membership is computed;
// downstream packages (constraint, question, solve) work in terms of these
// precomputed masks, except that question also reads word lengths from
// Words for its position-collision check.
package wordctx

import "github.com/wordgraph/qtwenty/position"

// MaxWords is the largest word-list size the 32-bit Mask can represent.
const MaxWords = 32

// Mask is a bitset over the input word list: bit i set means word i is still
// a candidate. The full initial mask has the low n bits set.
type Mask = uint32

// Context holds the per-position, per-letter membership masks for one input
// word list, plus the sorted list of letters occurring anywhere in it.
type Context struct {
	// Words is the original input, unmodified, indexed 0..n-1.
	Words []string

	// masks[p][l] is the bitmask of word indices satisfying (position p, letter l).
	masks [9][26]uint32

	// GlobalLetters is the sorted list of letter indices (0='a'..25='z')
	// whose Contains mask is non-zero; it bounds the enumerator's search to
	// letters that actually occur in the input.
	GlobalLetters []int
}

// New builds a Context for words. It does not validate len(words); callers
// (the qtwenty public API) are responsible for the ≤32 / non-empty contract.
func New(words []string) *Context {
	ctx := &Context{Words: words}
	for i, w := range words {
		bit := uint32(1) << uint(i)
		counts := [26]uint8{}
		runes := lowerLetters(w)
		for _, l := range runes {
			if counts[l] < 3 {
				counts[l]++
			}
		}
		for _, l := range runes {
			ctx.masks[position.Contains][l] |= bit
		}
		if len(runes) >= 1 {
			ctx.masks[position.First][runes[0]] |= bit
			ctx.masks[position.Last][runes[len(runes)-1]] |= bit
		}
		if len(runes) >= 2 {
			ctx.masks[position.Second][runes[1]] |= bit
			ctx.masks[position.SecondToLast][runes[len(runes)-2]] |= bit
		}
		if len(runes) >= 3 {
			ctx.masks[position.Third][runes[2]] |= bit
			ctx.masks[position.ThirdToLast][runes[len(runes)-3]] |= bit
		}
		for l := 0; l < 26; l++ {
			if counts[l] >= 2 {
				ctx.masks[position.Double][l] |= bit
			}
			if counts[l] >= 3 {
				ctx.masks[position.Triple][l] |= bit
			}
		}
	}

	ctx.GlobalLetters = make([]int, 0, 26)
	for l := 0; l < 26; l++ {
		if ctx.masks[position.Contains][l] != 0 {
			ctx.GlobalLetters = append(ctx.GlobalLetters, l)
		}
	}

	return ctx
}

// Mask returns the precomputed bitmask for (pos, letter). letter must be in
// [0,26); out-of-range positions return 0.
func (ctx *Context) Mask(pos position.Position, letter int) uint32 {
	if pos < position.Contains || pos > position.Triple {
		return 0
	}
	return ctx.masks[pos][letter]
}

// LettersPresent returns the 26-bit set of letters that occur (via Contains)
// in at least one word still set in mask. constraint.State.Prune uses this
// to drop bits for letters no longer relevant, which improves memo sharing.
func (ctx *Context) LettersPresent(mask Mask) uint32 {
	var present uint32
	for l := 0; l < 26; l++ {
		if mask&ctx.masks[position.Contains][l] != 0 {
			present |= 1 << uint(l)
		}
	}
	return present
}

// WordAt returns the single word named by a singleton mask (mask with
// exactly one bit set), and true. If mask is not a singleton or is out of
// range, it returns ("", false).
func (ctx *Context) WordAt(mask Mask) (string, bool) {
	if mask == 0 || mask&(mask-1) != 0 {
		return "", false
	}
	idx := trailingZeros32(mask)
	if idx >= len(ctx.Words) {
		return "", false
	}
	return ctx.Words[idx], true
}

func trailingZeros32(x uint32) int {
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

// lowerLetters returns the 0-based ('a'=0) letter indices of the ASCII
// letters in w, in order, ignoring everything else (case-insensitively).
func lowerLetters(w string) []int {
	out := make([]int, 0, len(w))
	for i := 0; i < len(w); i++ {
		c := w[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, int(c-'a'))
		case c >= 'A' && c <= 'Z':
			out = append(out, int(c-'A'))
		}
	}
	return out
}
