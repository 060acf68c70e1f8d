package solve

import (
	"github.com/wordgraph/qtwenty/constraint"
	"github.com/wordgraph/qtwenty/position"
	"github.com/wordgraph/qtwenty/wordctx"
)

// memoKey is the composite memoization key: (mask, pruned constraints,
// allowRepeat). prioritizeSoftNo is deliberately excluded — it is constant
// across one top-level Solve call, so the engine that owns the memo map
// already fixes it (spec.md §3).
type memoKey struct {
	mask               wordctx.Mask
	forbiddenPrimary   uint32
	forbiddenSecondary uint32
	allowedPrimaryOnce uint32
	hasParent          bool
	parentPosition     position.Position
	hasParentLetter    bool
	parentLetter       int
	allowRepeat        bool
}

func makeKey(mask wordctx.Mask, cons constraint.State, allowRepeat bool) memoKey {
	return memoKey{
		mask:               mask,
		forbiddenPrimary:   cons.ForbiddenPrimary,
		forbiddenSecondary: cons.ForbiddenSecondary,
		allowedPrimaryOnce: cons.AllowedPrimaryOnce,
		hasParent:          cons.HasParent,
		parentPosition:     cons.ParentPosition,
		hasParentLetter:    cons.HasParentLetter,
		parentLetter:       cons.ParentLetter,
		allowRepeat:        allowRepeat,
	}
}
