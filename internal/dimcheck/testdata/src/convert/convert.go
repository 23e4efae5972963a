package convert

import (
	"github.com/funvibe/unitguard/pkg/dim"
	"github.com/funvibe/unitguard/pkg/quantity"
)

func Speed() (dim.VelocityOf[float64], error) {
	d := quantity.Of[dim.Length](10.0)
	t := quantity.Of[dim.Time](2.0)
	return quantity.MulAs[dim.Velocity](d, t)
}

func Accel() dim.AccelerationOf[float64] {
	v := quantity.Of[dim.Velocity](3.0)
	q := quantity.Div(v, quantity.Of[dim.Time](1.0))
	return quantity.MustAs[dim.Acceleration](q)
}

func Work() (dim.EnergyOf[float64], error) {
	f := quantity.Of[dim.Force](2.0)
	q := quantity.Div(f, quantity.Of[dim.Length](1.0))
	return quantity.As[dim.Energy](q)
}

func Rate() (dim.PowerOf[float64], error) {
	e := quantity.Of[dim.Energy](1.0).Dyn()
	return quantity.As[dim.Power](e.Div(quantity.Of[dim.Time](2.0).Dyn()))
}

func Reassigned(fast bool) (dim.VelocityOf[float64], error) {
	q := quantity.Of[dim.Length](1.0).Dyn()
	if fast {
		q = quantity.Div(quantity.Of[dim.Length](2.0), quantity.Of[dim.Time](1.0))
	}
	return quantity.As[dim.Velocity](q)
}
