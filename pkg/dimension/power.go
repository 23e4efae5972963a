package dimension

import "fmt"

// Power is one base dimension raised to an integer exponent, e.g. Time^-1.
//
// Exponents are Go ints. Each written composition moves an exponent by at
// most the exponents of its operands, so overflow is out of reach for any
// program that spells its compositions out; wrapping is accepted there.
type Power struct {
	Base BaseDimension
	Exp  int
}

// NewPower builds a Power, rejecting tags outside the base dimension family.
func NewPower(b BaseDimension, exp int) (Power, error) {
	if !b.Valid() {
		return Power{}, NewIllFormedError(fmt.Sprintf("power over unknown base %s", b))
	}
	return Power{Base: b, Exp: exp}, nil
}

// P is the panicking form of NewPower, meant for package-level declarations.
func P(b BaseDimension, exp int) Power {
	p, err := NewPower(b, exp)
	if err != nil {
		panic(err)
	}
	return p
}

func mustKnowBase(p Power) {
	if !p.Base.Valid() {
		panic(NewIllFormedError(fmt.Sprintf("power over unknown base %s", p.Base)))
	}
}

// SameEntry reports whether p and o describe the same base dimension,
// whatever their exponents.
func (p Power) SameEntry(o Power) bool { return p.Base == o.Base }

// Equal reports whether both base and exponent match.
func (p Power) Equal(o Power) bool { return p == o }

// Negate flips the sign of the exponent.
func (p Power) Negate() Power { return Power{Base: p.Base, Exp: -p.Exp} }

func (p Power) String() string {
	if p.Exp == 1 {
		return p.Base.Symbol()
	}
	return fmt.Sprintf("%s^%d", p.Base.Symbol(), p.Exp)
}
