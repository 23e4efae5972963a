package pkgvar

import (
	"github.com/funvibe/unitguard/pkg/dim"
	"github.com/funvibe/unitguard/pkg/quantity"
)

func init() {
	speed = quantity.Div(quantity.Of[dim.Length](1.0), quantity.Of[dim.Time](1.0))
}
