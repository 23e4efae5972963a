package dimcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/funvibe/unitguard/internal/config"
	"github.com/funvibe/unitguard/internal/diagnostics"
	"github.com/funvibe/unitguard/pkg/dimension"

	"golang.org/x/tools/go/types/typeutil"
)

// maxEvalDepth bounds how far variable definitions are followed.
const maxEvalDepth = 32

// evaluator computes dimensions of expressions in one file.
type evaluator struct {
	c    *Checker
	info *types.Info
	// defs holds the defining expression of every function-local variable
	// assigned exactly once; variables assigned more often map to nil.
	defs map[*types.Var]ast.Expr
}

func newEvaluator(c *Checker, info *types.Info, file *ast.File) *evaluator {
	ev := &evaluator{c: c, info: info, defs: make(map[*types.Var]ast.Expr)}
	ev.collectDefs(file)
	return ev
}

func (ev *evaluator) collectDefs(file *ast.File) {
	record := func(id *ast.Ident, rhs ast.Expr) {
		if id == nil || id.Name == "_" {
			return
		}
		if v, ok := ev.info.Uses[id].(*types.Var); ok {
			// A plain assignment to a variable declared elsewhere: a
			// parameter, a redeclared name or a later assignment.
			ev.defs[v] = nil
			return
		}
		v, ok := ev.info.Defs[id].(*types.Var)
		if !ok || !isLocal(v) {
			return
		}
		if _, dup := ev.defs[v]; dup {
			ev.defs[v] = nil
			return
		}
		ev.defs[v] = rhs
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.AssignStmt:
			for i, lhs := range n.Lhs {
				id, _ := ast.Unparen(lhs).(*ast.Ident)
				var rhs ast.Expr
				if len(n.Lhs) == len(n.Rhs) && n.Tok != token.ADD_ASSIGN && n.Tok != token.SUB_ASSIGN {
					rhs = n.Rhs[i]
				}
				record(id, rhs)
			}
		case *ast.ValueSpec:
			for i, id := range n.Names {
				var rhs ast.Expr
				if len(n.Names) == len(n.Values) {
					rhs = n.Values[i]
				}
				record(id, rhs)
			}
		case *ast.UnaryExpr:
			// Taking the address lets the variable change behind our back.
			if id, ok := ast.Unparen(n.X).(*ast.Ident); ok && n.Op == token.AND {
				if v, ok := ev.info.Uses[id].(*types.Var); ok {
					ev.defs[v] = nil
				}
			}
		}
		return true
	})
}

// isLocal reports whether v is declared inside a function. Package-level
// variables can be assigned from any file or package, so they are never
// followed.
func isLocal(v *types.Var) bool {
	if v.IsField() || v.Pkg() == nil || v.Parent() == nil {
		return false
	}
	return v.Parent() != v.Pkg().Scope() && v.Parent() != types.Universe
}

// unitOf returns the dimension of e when it can be determined statically.
func (ev *evaluator) unitOf(e ast.Expr, depth int) (dimension.Unit, bool) {
	if depth > maxEvalDepth {
		return dimension.Unit{}, false
	}
	e = ast.Unparen(e)

	if d, ok := ev.c.measureDimension(ev.info.TypeOf(e)); ok {
		u, _, ok := ev.c.dimensionOf(d)
		return u, ok
	}

	switch e := e.(type) {
	case *ast.Ident:
		v, ok := ev.info.Uses[e].(*types.Var)
		if !ok {
			return dimension.Unit{}, false
		}
		def := ev.defs[v]
		if def == nil {
			return dimension.Unit{}, false
		}
		return ev.unitOf(def, depth+1)
	case *ast.CallExpr:
		return ev.unitOfCall(e, depth+1)
	}
	return dimension.Unit{}, false
}

func (ev *evaluator) unitOfCall(call *ast.CallExpr, depth int) (dimension.Unit, bool) {
	fn, ok := typeutil.Callee(ev.info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != ev.c.QuantityPath {
		return dimension.Unit{}, false
	}

	sig := fn.Type().(*types.Signature)
	if sig.Recv() == nil {
		switch fn.Name() {
		case config.MulFuncName, config.DivFuncName:
			return ev.binary(fn.Name(), call.Args, depth)
		case config.InvFuncName:
			if len(call.Args) != 1 {
				return dimension.Unit{}, false
			}
			u, ok := ev.unitOf(call.Args[0], depth)
			return dimension.Invert(u), ok
		}
		return dimension.Unit{}, false
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return dimension.Unit{}, false
	}
	switch fn.Name() {
	case config.MulFuncName, config.DivFuncName:
		if len(call.Args) != 1 {
			return dimension.Unit{}, false
		}
		return ev.binary(fn.Name(), []ast.Expr{sel.X, call.Args[0]}, depth)
	case config.InvFuncName:
		u, ok := ev.unitOf(sel.X, depth)
		return dimension.Invert(u), ok
	case config.DynMethodName, "Scale", "Neg":
		return ev.unitOf(sel.X, depth)
	}
	return dimension.Unit{}, false
}

func (ev *evaluator) binary(op string, args []ast.Expr, depth int) (dimension.Unit, bool) {
	if len(args) != 2 {
		return dimension.Unit{}, false
	}
	a, ok := ev.unitOf(args[0], depth)
	if !ok {
		return dimension.Unit{}, false
	}
	b, ok := ev.unitOf(args[1], depth)
	if !ok {
		return dimension.Unit{}, false
	}
	if op == config.MulFuncName {
		return dimension.Multiply(a, b), true
	}
	return dimension.Divide(a, b), true
}

// checkConversion reports an As, MustAs, MulAs or DivAs call whose operand
// dimension is known and not equivalent to the target dimension.
func (ev *evaluator) checkConversion(call *ast.CallExpr) (Diagnostic, bool) {
	id := calleeIdent(call.Fun)
	if id == nil {
		return Diagnostic{}, false
	}
	fn, ok := ev.info.Uses[id].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != ev.c.QuantityPath {
		return Diagnostic{}, false
	}

	var src dimension.Unit
	switch fn.Name() {
	case config.AsFuncName, config.MustAsFuncName:
		if len(call.Args) != 1 {
			return Diagnostic{}, false
		}
		src, ok = ev.unitOf(call.Args[0], 0)
	case config.MulAsFuncName:
		src, ok = ev.binary(config.MulFuncName, call.Args, 0)
	case config.DivAsFuncName:
		src, ok = ev.binary(config.DivFuncName, call.Args, 0)
	default:
		return Diagnostic{}, false
	}
	if !ok {
		return Diagnostic{}, false
	}

	inst, found := ev.info.Instances[id]
	if !found || inst.TypeArgs == nil || inst.TypeArgs.Len() == 0 {
		return Diagnostic{}, false
	}
	target, name, ok := ev.c.dimensionOf(inst.TypeArgs.At(0))
	if !ok || dimension.Equivalent(src, target) {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Code:     diagnostics.ErrD001,
		Message:  fmt.Sprintf("%s converts dimension %s to %s (%s); this always fails", fn.Name(), src, name, target),
		Left:     src,
		Right:    target,
		HasUnits: true,
	}, true
}

// calleeIdent finds the identifier naming the called function, looking
// through explicit instantiation and package qualification.
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	case *ast.IndexExpr:
		return calleeIdent(f.X)
	case *ast.IndexListExpr:
		return calleeIdent(f.X)
	}
	return nil
}
