package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/funvibe/unitguard/internal/catalog"
	"github.com/funvibe/unitguard/pkg/dimension"
)

const physicsCatalog = `
package: physics
quantity_import: example.com/lib/measures
dimensions:
  - name: Speed
    doc: |
      Speed is distance over time.
      It has no direction.
    mul: [Length]
    div: [Time]
  - name: Pace
    alias_of: Speed
  - name: Tempo
    alias_of: Pace
`

func generate(t *testing.T, src string) string {
	t.Helper()
	cfg, err := catalog.ParseConfig([]byte(src), "test.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	entries, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	out, err := Generate(cfg, entries)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return string(out)
}

func TestGenerate_ParsesAsGo(t *testing.T) {
	out := generate(t, physicsCatalog)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "gen.go", out, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, out)
	}
	if f.Name.Name != "physics" {
		t.Errorf("package = %s, want physics", f.Name.Name)
	}

	types := make(map[string]*ast.TypeSpec)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			types[ts.Name.Name] = ts
		}
	}
	for _, name := range []string{"Scalar", "Length", "LuminousIntensity", "Speed", "SpeedOf", "Pace", "Tempo", "TempoOf"} {
		if types[name] == nil {
			t.Errorf("missing type %s", name)
		}
	}
	if ts := types["Pace"]; ts != nil && !ts.Assign.IsValid() {
		t.Error("Pace should be a type alias")
	}
	if ts := types["SpeedOf"]; ts != nil && (ts.TypeParams == nil || !ts.Assign.IsValid()) {
		t.Error("SpeedOf should be a generic alias")
	}
}

func TestGenerate_Content(t *testing.T) {
	out := generate(t, physicsCatalog)

	wants := []string{
		"// Code generated by unitguard gen; DO NOT EDIT.",
		`quantity "example.com/lib/measures"`,
		`"github.com/funvibe/unitguard/pkg/dimension"`,
		"// Speed is distance over time.\n// It has no direction.\ntype Speed struct{}",
		"func (Speed) Unit() dimension.Unit { return unitSpeed }",
		"\tunitSpeed ",
		"= dimension.Must(dimension.P(dimension.Length, 1), dimension.P(dimension.Time, -1))\n",
		"type Tempo = Pace",
		"type TempoOf[T quantity.Number] = quantity.Measure[T, Tempo]",
		`"Tempo":`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("generated code missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "unitPace") || strings.Contains(out, "unitTempo") {
		t.Errorf("aliases should reuse their target's unit variable\n%s", out)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := generate(t, physicsCatalog)
	for i := 0; i < 5; i++ {
		if again := generate(t, physicsCatalog); again != first {
			t.Fatal("generated output differs between runs")
		}
	}
}

func TestUnitExpr(t *testing.T) {
	tests := []struct {
		u    dimension.Unit
		want string
	}{
		{dimension.Dimensionless, "dimension.Dimensionless"},
		{
			dimension.Raw(dimension.P(dimension.Time, -2), dimension.P(dimension.Mass, 1)),
			"dimension.Must(dimension.P(dimension.Mass, 1), dimension.P(dimension.Time, -2))",
		},
	}
	for _, tt := range tests {
		if got := unitExpr(tt.u); got != tt.want {
			t.Errorf("unitExpr() = %q, want %q", got, tt.want)
		}
	}
}

func TestResolveAliasCycle(t *testing.T) {
	_, err := resolveAlias("A", map[string]string{"A": "B", "B": "A"})
	if err == nil {
		t.Error("expected cycle error")
	}
	got, err := resolveAlias("A", map[string]string{"A": "B", "B": "C"})
	if err != nil || got != "C" {
		t.Errorf("resolveAlias() = %q, %v", got, err)
	}
}
