package dimension

// MergeOne folds a single power into u. A power whose base is already present
// has its exponent added to the existing entry, and the entry disappears when
// the sum is zero. Otherwise the power is appended. Entries other than the
// matching one keep their positions. It panics with an *IllFormedError when
// p's base is unknown.
func MergeOne(u Unit, p Power) Unit {
	mustKnowBase(p)
	for i, head := range u.powers {
		if !head.SameEntry(p) {
			continue
		}
		exp := head.Exp + p.Exp
		out := make([]Power, 0, len(u.powers))
		out = append(out, u.powers[:i]...)
		if exp != 0 {
			out = append(out, Power{Base: head.Base, Exp: exp})
		}
		out = append(out, u.powers[i+1:]...)
		return fromPowers(out)
	}
	if p.Exp == 0 {
		return u
	}
	out := make([]Power, 0, len(u.powers)+1)
	out = append(out, u.powers...)
	return Unit{powers: append(out, p)}
}

// Add merges every power of b into a, left to right.
func Add(a, b Unit) Unit {
	for _, p := range b.powers {
		a = MergeOne(a, p)
	}
	return a
}

// Negate flips the sign of every exponent.
func Negate(u Unit) Unit {
	if len(u.powers) == 0 {
		return Dimensionless
	}
	out := make([]Power, len(u.powers))
	for i, p := range u.powers {
		out[i] = p.Negate()
	}
	return Unit{powers: out}
}

// Subtract is Add(a, Negate(b)).
func Subtract(a, b Unit) Unit {
	return Add(a, Negate(b))
}

func fromPowers(ps []Power) Unit {
	if len(ps) == 0 {
		return Dimensionless
	}
	return Unit{powers: ps}
}
