package dim_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/funvibe/unitguard/internal/catalog"
	"github.com/funvibe/unitguard/internal/codegen"
	"github.com/funvibe/unitguard/internal/config"
	"github.com/funvibe/unitguard/pkg/dim"
	"github.com/funvibe/unitguard/pkg/dimension"
	"github.com/funvibe/unitguard/pkg/quantity"
)

func TestDerivedDimensions(t *testing.T) {
	tests := []struct {
		name string
		got  dimension.Unit
		want dimension.Unit
	}{
		{"velocity", dimension.Divide(dim.Length{}.Unit(), dim.Time{}.Unit()), dim.Velocity{}.Unit()},
		{"acceleration", dim.Velocity{}.Unit().Div(dim.Time{}.Unit()), dim.Acceleration{}.Unit()},
		{"force", dim.Mass{}.Unit().Mul(dim.Acceleration{}.Unit()), dim.Force{}.Unit()},
		{"pressure", dim.Force{}.Unit().Div(dim.Area{}.Unit()), dim.Pressure{}.Unit()},
		{"energy", dim.Force{}.Unit().Mul(dim.Length{}.Unit()), dim.Energy{}.Unit()},
		{"power", dim.Energy{}.Unit().Div(dim.Time{}.Unit()), dim.Power{}.Unit()},
		{"entropy", dim.Energy{}.Unit().Div(dim.Temperature{}.Unit()), dim.Entropy{}.Unit()},
		{"frequency", dim.Time{}.Unit().Inv(), dim.Frequency{}.Unit()},
		{"heat capacity", dim.HeatCapacity{}.Unit(), dim.Entropy{}.Unit()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !dimension.Equivalent(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDimensionsAreDistinct(t *testing.T) {
	if dimension.Equivalent(dim.Length{}.Unit(), dim.Scalar{}.Unit()) {
		t.Error("Length should not be dimensionless")
	}
	if !(dim.Scalar{}).Unit().IsDimensionless() {
		t.Error("Scalar should be dimensionless")
	}
	if dimension.Equivalent(dim.Energy{}.Unit(), dim.Force{}.Unit()) {
		t.Error("Energy and Force differ")
	}
}

func TestLookupMatchesCatalog(t *testing.T) {
	entries, err := catalog.Default().Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got, want := len(dim.Names()), len(entries); got != want {
		t.Errorf("dim declares %d dimensions, catalog has %d", got, want)
	}
	for _, e := range entries {
		u, ok := dim.Lookup(e.Name)
		if !ok {
			t.Errorf("%s missing from package dim; run go generate", e.Name)
			continue
		}
		if !u.Identical(e.Unit) {
			t.Errorf("%s = %#v in package dim, catalog says %#v", e.Name, u, e.Unit)
		}
	}
	if _, ok := dim.Lookup("Furlong"); ok {
		t.Error("unexpected entry")
	}
}

func TestGeneratedFileIsCurrent(t *testing.T) {
	cfg := catalog.Default()
	entries, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want, err := codegen.Generate(cfg, entries)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got, err := os.ReadFile(config.DefaultOutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%s is stale; run go generate ./pkg/dim", config.DefaultOutputFile)
	}
}

func TestTypedAliases(t *testing.T) {
	var d dim.LengthOf[float64] = quantity.Of[dim.Length](3.0)
	speed, err := quantity.DivAs[dim.Velocity](d, quantity.Of[dim.Time](1.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var v dim.VelocityOf[float64] = speed
	if v.Value() != 2 {
		t.Errorf("speed = %v, want 2", v.Value())
	}

	var c dim.HeatCapacityOf[float64] = quantity.Of[dim.Entropy](1.0)
	if !c.Unit().Identical(dim.Entropy{}.Unit()) {
		t.Errorf("heat capacity unit = %v", c.Unit())
	}

	_, err = quantity.MulAs[dim.Velocity](d, quantity.Of[dim.Time](1.5))
	if !errors.Is(err, dimension.ErrIncompatible) {
		t.Errorf("expected mismatch, got %v", err)
	}
}
