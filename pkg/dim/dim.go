// Package dim declares the physical dimensions shipped with unitguard.
//
// Every dimension is a zero-size type usable as the D parameter of
// quantity.Measure, with an XxxOf alias for the measure itself:
//
//	d := dim.LengthOf[float64]{}
//	v, err := quantity.DivAs[dim.Velocity](quantity.Of[dim.Length](10.0), quantity.Of[dim.Time](2.0))
//
// The declarations are generated from the catalog embedded in the unitguard
// binary; projects with their own dimensions run unitguard gen on their own
// unitguard.yaml.
package dim

//go:generate go run github.com/funvibe/unitguard/cmd/unitguard gen -o dimensions_gen.go

import (
	"sort"

	"github.com/funvibe/unitguard/pkg/dimension"
)

// Lookup returns the unit of the dimension type with the given name.
func Lookup(name string) (dimension.Unit, bool) {
	u, ok := table[name]
	return u, ok
}

// Names lists every declared dimension, aliases included, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
