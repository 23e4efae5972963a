package dimension

import "github.com/funvibe/unitguard/pkg/sortpack"

// canonicalRank fixes one total order over the base dimensions. It is
// independent of the enum values so either can change without the other.
var canonicalRank = [...]int{
	Mass:              0,
	Length:            1,
	Time:              2,
	Current:           3,
	Temperature:       4,
	Amount:            5,
	LuminousIntensity: 6,
}

// Rank returns the canonical rank of b. Unknown bases rank after every
// known one.
func Rank(b BaseDimension) int {
	if !b.Valid() {
		return NumBaseDimensions + int(b)
	}
	return canonicalRank[b]
}

type powers []Power

var byRank = sortpack.Less[Power](func(x, y Power) bool {
	return Rank(x.Base) < Rank(y.Base)
})

// Canonicalize returns u with its powers sorted by canonical rank. Two units
// holding the same set of (base, exponent) pairs canonicalize to identical
// units.
func Canonicalize(u Unit) Unit {
	if len(u.powers) < 2 {
		return u
	}
	return Unit{powers: sortpack.Sort(powers(u.powers), byRank)}
}

// IsCanonical reports whether u is already in canonical order.
func IsCanonical(u Unit) bool {
	return sortpack.IsSorted(powers(u.powers), byRank)
}

// Equivalent reports whether a and b describe the same physical dimension,
// irrespective of the order their powers were written in. Both operands are
// expected to satisfy the unit invariants.
func Equivalent(a, b Unit) bool {
	if len(a.powers) != len(b.powers) {
		return false
	}
	return Canonicalize(a).Identical(Canonicalize(b))
}

// CheckEquivalent returns a *MismatchError naming both units when they are
// not equivalent.
func CheckEquivalent(op string, a, b Unit) error {
	if Equivalent(a, b) {
		return nil
	}
	return NewMismatchError(op, a, b)
}

func sortBases(bs []BaseDimension) []BaseDimension {
	return sortpack.Sort(bs, sortpack.Less[BaseDimension](func(x, y BaseDimension) bool {
		return Rank(x) < Rank(y)
	}))
}
