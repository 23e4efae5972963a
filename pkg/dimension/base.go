// Package dimension implements the unit algebra: dimension vectors made of
// (base dimension, integer exponent) pairs, merged and cancelled under
// multiplication, division and inversion, and compared for equivalence
// through a canonical ordering.
//
// Every value in this package is immutable. Operations build new units and
// never touch their inputs, so units can be shared freely between goroutines
// and used as package-level declarations.
package dimension

import (
	"fmt"
	"strings"
)

// BaseDimension identifies one fundamental physical dimension.
// The zero value is not a valid dimension.
type BaseDimension uint8

const (
	Mass BaseDimension = iota + 1
	Length
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
)

// NumBaseDimensions is the size of the fixed base dimension family.
const NumBaseDimensions = 7

// MaxPowers bounds the number of entries any well-formed unit can hold, and
// with it the length of every scan in the merge and sort engines.
const MaxPowers = NumBaseDimensions

var baseNames = [...]string{
	Mass:              "Mass",
	Length:            "Length",
	Time:              "Time",
	Current:           "Current",
	Temperature:       "Temperature",
	Amount:            "Amount",
	LuminousIntensity: "LuminousIntensity",
}

var baseSymbols = [...]string{
	Mass:              "M",
	Length:            "L",
	Time:              "T",
	Current:           "I",
	Temperature:       "Θ",
	Amount:            "N",
	LuminousIntensity: "J",
}

// Valid reports whether b belongs to the base dimension family.
func (b BaseDimension) Valid() bool {
	return b >= Mass && b <= LuminousIntensity
}

func (b BaseDimension) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BaseDimension(%d)", uint8(b))
	}
	return baseNames[b]
}

// Symbol returns the conventional dimension symbol (M, L, T, I, Θ, N, J).
func (b BaseDimension) Symbol() string {
	if !b.Valid() {
		return "?"
	}
	return baseSymbols[b]
}

// Bases returns every base dimension in canonical rank order.
func Bases() []BaseDimension {
	out := make([]BaseDimension, 0, NumBaseDimensions)
	for b := Mass; b <= LuminousIntensity; b++ {
		out = append(out, b)
	}
	return sortBases(out)
}

// ParseBase resolves a base dimension from its name or symbol, ignoring case
// and underscores ("luminous_intensity", "L", "theta").
func ParseBase(s string) (BaseDimension, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	switch key {
	case "theta":
		return Temperature, nil
	case "luminosity", "luminance":
		return LuminousIntensity, nil
	case "current", "electriccurrent":
		return Current, nil
	case "amountofsubstance":
		return Amount, nil
	}
	for b := Mass; b <= LuminousIntensity; b++ {
		if key == strings.ToLower(baseNames[b]) || s == baseSymbols[b] || key == strings.ToLower(baseSymbols[b]) {
			return b, nil
		}
	}
	return 0, NewIllFormedError(fmt.Sprintf("unknown base dimension %q", s))
}
