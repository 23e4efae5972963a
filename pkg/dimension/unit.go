package dimension

import (
	"fmt"
	"strings"
)

// Unit is a dimension vector: an immutable sequence of powers.
//
// Order has no physical meaning but is kept, so two units built from the
// same powers in different orders are equivalent without being Identical.
// Units built through New or the algebra hold at most one power per base
// and no zero exponents.
type Unit struct {
	powers []Power
}

// Dimensionless is the empty unit.
var Dimensionless = Unit{}

// New builds a unit by merging each power in turn, so duplicates collapse
// and zero exponents vanish. Unknown bases are rejected.
func New(ps ...Power) (Unit, error) {
	u := Dimensionless
	for i, p := range ps {
		if !p.Base.Valid() {
			return Unit{}, NewIllFormedError(fmt.Sprintf("power %d has unknown base %s", i, p.Base))
		}
		u = MergeOne(u, p)
	}
	return u, nil
}

// Must is the panicking form of New.
func Must(ps ...Power) Unit {
	u, err := New(ps...)
	if err != nil {
		panic(err)
	}
	return u
}

// Raw builds a unit holding exactly ps, in order, without merging.
// Duplicate bases and zero exponents are kept, so the result may break the
// unit invariants; Validate tells. Like P, it panics on an unknown base.
func Raw(ps ...Power) Unit {
	if len(ps) == 0 {
		return Unit{}
	}
	for _, p := range ps {
		mustKnowBase(p)
	}
	return Unit{powers: append([]Power(nil), ps...)}
}

// Powers returns a copy of the unit's entries in their stored order.
func (u Unit) Powers() []Power {
	return append([]Power(nil), u.powers...)
}

func (u Unit) Len() int { return len(u.powers) }

func (u Unit) IsDimensionless() bool { return len(u.powers) == 0 }

// Exponent returns the exponent of b, or 0 when b is absent.
func (u Unit) Exponent(b BaseDimension) int {
	for _, p := range u.powers {
		if p.Base == b {
			return p.Exp
		}
	}
	return 0
}

// Identical reports order-sensitive structural identity.
func (u Unit) Identical(o Unit) bool {
	if len(u.powers) != len(o.powers) {
		return false
	}
	for i := range u.powers {
		if u.powers[i] != o.powers[i] {
			return false
		}
	}
	return true
}

// Validate checks the unit invariants: known bases, one entry per base and no
// zero exponent.
func (u Unit) Validate() error {
	if len(u.powers) > MaxPowers {
		return NewIllFormedError(fmt.Sprintf("%d entries exceed the %d base dimensions", len(u.powers), MaxPowers))
	}
	var seen [NumBaseDimensions + 1]bool
	for _, p := range u.powers {
		if !p.Base.Valid() {
			return NewIllFormedError(fmt.Sprintf("unknown base %s", p.Base))
		}
		if seen[p.Base] {
			return NewIllFormedError(fmt.Sprintf("duplicate entry for %s", p.Base))
		}
		if p.Exp == 0 {
			return NewIllFormedError(fmt.Sprintf("zero exponent for %s", p.Base))
		}
		seen[p.Base] = true
	}
	return nil
}

// String renders the unit in canonical order, e.g. "M L^2 T^-2".
// The dimensionless unit renders as "1".
func (u Unit) String() string {
	if len(u.powers) == 0 {
		return "1"
	}
	c := Canonicalize(u)
	parts := make([]string, len(c.powers))
	for i, p := range c.powers {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// GoString shows the raw stored order, for debugging non-canonical shapes.
func (u Unit) GoString() string {
	parts := make([]string, len(u.powers))
	for i, p := range u.powers {
		parts[i] = fmt.Sprintf("{%s %d}", p.Base, p.Exp)
	}
	return "dimension.Unit{" + strings.Join(parts, ", ") + "}"
}

// Mul, Div and Inv are method forms of Multiply, Divide and Invert.
func (u Unit) Mul(o Unit) Unit { return Multiply(u, o) }
func (u Unit) Div(o Unit) Unit { return Divide(u, o) }
func (u Unit) Inv() Unit       { return Invert(u) }

// Equivalent reports whether u and o are the same physical dimension.
func (u Unit) Equivalent(o Unit) bool { return Equivalent(u, o) }
