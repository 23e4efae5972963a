package mismatch

import (
	"github.com/funvibe/unitguard/pkg/dim"
	"github.com/funvibe/unitguard/pkg/quantity"
)

func LengthPlusTime() float64 {
	d := quantity.Of[dim.Length](1.0)
	t := quantity.Of[dim.Time](2.0)
	return d.Add(t).Value()
}
