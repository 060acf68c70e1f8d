// Package position defines the fixed catalog of question positions a split
// can test, their classes (used to restrict constraint-chaining exceptions),
// and the mirror-position adjacency table used by soft mirror-position
// splits.
//
// Everything in this package is read-only, compile-time configuration of the
// algorithm: no mutable state, no constructors beyond the enum values
// themselves.
package position

// Position is one of the nine question shapes a split may test.
type Position int

const (
	// Contains asks whether a word contains a letter anywhere.
	Contains Position = iota
	// First asks about the 1st letter from the start.
	First
	// Second asks about the 2nd letter from the start.
	Second
	// Third asks about the 3rd letter from the start.
	Third
	// ThirdToLast asks about the 3rd letter from the end.
	ThirdToLast
	// SecondToLast asks about the 2nd letter from the end.
	SecondToLast
	// Last asks about the 1st letter from the end.
	Last
	// Double asks whether a letter appears at least twice.
	Double
	// Triple asks whether a letter appears at least three times.
	Triple
)

// All lists every Position in the fixed enumeration order the question
// catalog must iterate in (spec.md §4.2). Enumeration order is part of the
// contract: changing it changes the identity of the co-optimal set returned,
// though never its cost.
var All = [9]Position{Contains, First, Second, Third, ThirdToLast, SecondToLast, Last, Double, Triple}

// String returns a lower-case human name, mirroring the teacher's Position.name().
func (p Position) String() string {
	switch p {
	case Contains:
		return "contains"
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	case ThirdToLast:
		return "third-to-last"
	case SecondToLast:
		return "second-to-last"
	case Last:
		return "last"
	case Double:
		return "double"
	case Triple:
		return "triple"
	default:
		return "unknown"
	}
}

// Class buckets positions for the chaining-exception rule: an exception may
// move to the same class or downward (Contains -> Positional -> Multiplicity)
// but never upward.
type Class int

const (
	// ClassContains is the class of Contains alone.
	ClassContains Class = iota
	// ClassPositional is the class of First..Last.
	ClassPositional
	// ClassMultiplicity is the class of Double and Triple.
	ClassMultiplicity
)

// Class returns p's chaining class.
func (p Position) Class() Class {
	switch p {
	case Contains:
		return ClassContains
	case Double, Triple:
		return ClassMultiplicity
	default:
		return ClassPositional
	}
}

// CanChainException reports whether an exception may move from parent to
// child: same class or strictly downward, never upward.
func CanChainException(parent, child Position) bool {
	return child.Class() >= parent.Class()
}

// isPositional reports whether p indexes a character position (as opposed to
// Contains or a multiplicity test); only positional positions can collide.
func (p Position) isPositional() bool {
	return p.Class() == ClassPositional
}

// ToAbsoluteIndex returns the 0-based character index p refers to in a word
// of the given length, or ok=false if the word is too short (or p is not
// positional) to have that index.
func (p Position) ToAbsoluteIndex(wordLen int) (idx int, ok bool) {
	switch p {
	case First:
		if wordLen >= 1 {
			return 0, true
		}
	case Second:
		if wordLen >= 2 {
			return 1, true
		}
	case Third:
		if wordLen >= 3 {
			return 2, true
		}
	case Last:
		if wordLen >= 1 {
			return wordLen - 1, true
		}
	case SecondToLast:
		if wordLen >= 2 {
			return wordLen - 2, true
		}
	case ThirdToLast:
		if wordLen >= 3 {
			return wordLen - 3, true
		}
	}
	return 0, false
}

// maxPlausibleWordLen bounds the word lengths considered by Collide; it only
// needs to be large enough that every positional pairing that can ever
// coincide at some length has been observed (spec.md §4.2.1 fixes this at 20).
const maxPlausibleWordLen = 20

// Collide reports whether two positions can resolve to the same absolute
// character index for some plausible word length (1..=20). Only positional
// positions (First..Last) can collide; Contains, Double, and Triple never do.
func Collide(a, b Position) bool {
	if !a.isPositional() || !b.isPositional() {
		return false
	}
	for length := 1; length <= maxPlausibleWordLen; length++ {
		ia, aok := a.ToAbsoluteIndex(length)
		ib, bok := b.ToAbsoluteIndex(length)
		if aok && bok && ia == ib {
			return true
		}
	}
	return false
}

// mirrors is the fixed neighbour-position adjacency table for soft
// mirror-position splits (spec.md §4.2 rule 2): First<->{Second,Last},
// Second<->{First,Third,SecondToLast}, Third<->{Second,ThirdToLast},
// ThirdToLast<->{Third,SecondToLast}, SecondToLast<->{Second,ThirdToLast,Last},
// Last<->{First,SecondToLast}. Contains/Double/Triple have none.
var mirrors = map[Position][]Position{
	First:        {Second, Last},
	Second:       {First, Third, SecondToLast},
	Third:        {Second, ThirdToLast},
	ThirdToLast:  {Third, SecondToLast},
	SecondToLast: {Second, ThirdToLast, Last},
	Last:         {First, SecondToLast},
}

// Mirrors returns the fixed list of neighbour positions eligible for a soft
// mirror-position split paired with p. The returned slice must not be
// mutated by callers; it is shared package state.
func Mirrors(p Position) []Position {
	return mirrors[p]
}
