package pkgvar

import (
	"github.com/funvibe/unitguard/pkg/dim"
	"github.com/funvibe/unitguard/pkg/quantity"
)

var speed = quantity.Of[dim.Length](1.0).Dyn()

func Speed() (dim.VelocityOf[float64], error) {
	return quantity.As[dim.Velocity](speed)
}

func FromParam(q quantity.Quantity[float64], reset bool) (dim.VelocityOf[float64], error) {
	if reset {
		q = quantity.Of[dim.Length](2.0).Dyn()
	}
	return quantity.As[dim.Velocity](q)
}
