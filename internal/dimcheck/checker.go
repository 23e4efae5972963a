// Package dimcheck finds dimension errors in Go packages that use package
// quantity, before they surface at run time.
//
// Adding or assigning measures of different dimension types is already a
// compile error; dimcheck annotates those errors with both dimension
// vectors. Conversions back from a dynamic Quantity (As, MustAs, MulAs,
// DivAs) are only checked at run time by the library. dimcheck evaluates
// the dimension of the converted expression statically, following Mul, Div
// and Inv calls and single-assignment local variables, and reports
// conversions that cannot succeed.
package dimcheck

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"github.com/funvibe/unitguard/internal/catalog"
	"github.com/funvibe/unitguard/internal/config"
	"github.com/funvibe/unitguard/internal/diagnostics"
	"github.com/funvibe/unitguard/pkg/dimension"

	"golang.org/x/tools/go/packages"
)

// Diagnostic is one dimension problem found in source.
type Diagnostic struct {
	Pos     token.Position
	Code    diagnostics.ErrorCode
	Message string
	// Left and Right are the two dimensions involved, when both resolved.
	Left, Right dimension.Unit
	HasUnits    bool
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: [%s] %s", d.Pos, d.Code, d.Message)
}

// Checker holds the dimension types it can resolve and the loader settings.
type Checker struct {
	// QuantityPath is the import path of package quantity.
	QuantityPath string

	// Dir is the directory patterns are resolved from. Empty means the
	// current directory.
	Dir string

	// Tests includes test files in the loaded packages.
	Tests bool

	// units maps "importpath.TypeName" to the unit of a dimension type.
	units map[string]dimension.Unit
	// byPkgName maps "pkgname.TypeName", as printed in compiler messages.
	byPkgName map[string]dimension.Unit
}

// New returns a checker that knows the dimensions of package dim.
func New() (*Checker, error) {
	entries, err := catalog.Default().Resolve()
	if err != nil {
		return nil, err
	}
	c := &Checker{
		QuantityPath: config.QuantityImportPath,
		units:        make(map[string]dimension.Unit),
		byPkgName:    make(map[string]dimension.Unit),
	}
	c.AddPackage(config.DimPackagePath, entries)
	return c, nil
}

// AddPackage registers the dimension types generated into pkgPath.
func (c *Checker) AddPackage(pkgPath string, entries []catalog.Entry) {
	name := pkgPath
	if i := strings.LastIndex(pkgPath, "/"); i >= 0 {
		name = pkgPath[i+1:]
	}
	for typeName, u := range catalog.Units(entries) {
		c.units[pkgPath+"."+typeName] = u
		c.byPkgName[name+"."+typeName] = u
	}
}

// Check loads the packages matching patterns and returns their dimension
// diagnostics sorted by position. Load failures other than type errors are
// returned as an error.
func (c *Checker) Check(ctx context.Context, patterns ...string) ([]Diagnostic, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir:   c.Dir,
		Tests: c.Tests,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %v", patterns)
	}

	var diags []Diagnostic
	var loadErrs []error
	seen := make(map[string]bool)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind != packages.TypeError {
				loadErrs = append(loadErrs, fmt.Errorf("%s: %s", pkg.PkgPath, e))
				continue
			}
			if d, ok := c.typeErrorDiagnostic(e); ok && !seen[d.String()] {
				seen[d.String()] = true
				diags = append(diags, d)
			}
		}
		if pkg.TypesInfo == nil {
			continue
		}
		for _, d := range c.checkPackage(pkg) {
			if !seen[d.String()] {
				seen[d.String()] = true
				diags = append(diags, d)
			}
		}
	}
	if len(loadErrs) > 0 {
		return diags, errors.Join(loadErrs...)
	}

	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Pos, diags[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return diags, nil
}

func (c *Checker) checkPackage(pkg *packages.Package) []Diagnostic {
	var diags []Diagnostic
	for _, file := range pkg.Syntax {
		ev := newEvaluator(c, pkg.TypesInfo, file)
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if d, ok := ev.checkConversion(call); ok {
				d.Pos = pkg.Fset.Position(call.Pos())
				diags = append(diags, d)
			}
			return true
		})
	}
	return diags
}

// dimensionOf resolves a dimension type argument to its unit.
func (c *Checker) dimensionOf(t types.Type) (dimension.Unit, string, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return dimension.Unit{}, "", false
	}
	obj := named.Obj()
	u, ok := c.units[obj.Pkg().Path()+"."+obj.Name()]
	return u, obj.Name(), ok
}

// measureDimension returns D when t is quantity.Measure[T, D].
func (c *Checker) measureDimension(t types.Type) (types.Type, bool) {
	named, ok := c.quantityNamed(t, config.MeasureTypeName)
	if !ok {
		return nil, false
	}
	args := named.TypeArgs()
	if args == nil || args.Len() != 2 {
		return nil, false
	}
	return args.At(1), true
}

func (c *Checker) quantityNamed(t types.Type, name string) (*types.Named, bool) {
	if t == nil {
		return nil, false
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != c.QuantityPath || obj.Name() != name {
		return nil, false
	}
	return named, true
}
