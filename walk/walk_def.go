package walk

import (
	"tzc/ast"
	"tzc/report"
)

// walkGlobal walks a top-level statement.  Only variable bindings and
// function declarations and definitions may occur in global scope.
func (w *Walker) walkGlobal(stmt ast.Node) (ast.Node, error) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		return w.walkVarDecl(v)
	case *ast.VarDef:
		return w.walkVarDef(v)
	case *ast.Assignment:
		// Only implicit declarations are bindings: mutation needs a function.
		if ident, ok := v.Lhs.(*ast.Ident); ok && v.Op == "=" {
			if _, bound := w.scopes.Find(ident.Name); !bound {
				return w.walkAssign(v)
			}
		}
	case *ast.FuncDecl:
		return w.walkFuncDecl(v)
	case *ast.FuncDef:
		return w.walkFuncDef(v)
	}

	return nil, w.error(report.KindStructure, stmt.Span(), "did not expect %s in global scope", describe(stmt))
}

// walkFuncDecl walks a function declaration.  A declaration following a
// definition of the same function must match it and supplies its argument
// list.
func (w *Walker) walkFuncDecl(fd *ast.FuncDecl) (ast.Node, error) {
	fn, err := w.buildFunction(&fd.Signature, fd.Span())
	if err != nil {
		return nil, err
	}

	fn.DeclarationOnly = true

	if existing, ok := w.funcStore.Get(fn.Name); ok {
		if _, seen := w.declared.Get(fn.Name); seen {
			return nil, w.error(report.KindDuplicateFunction, fd.Span(), "function %s has already been declared", fn.Name)
		}

		if err := w.reconcile(existing, fn, fd.Span()); err != nil {
			return nil, err
		}

		existing.Args = fn.Args
		fn = existing
	} else {
		w.defineFunction(fn)
	}

	w.declared.Set(fn.Name, true)
	return &ast.Func{ASTBase: ast.NewASTBaseOn(fd.Span()), Fn: fn, Declaration: true}, nil
}

// walkFuncDef walks a function definition.  Its body is not analyzed here:
// the driver analyzes it once the function is called.
func (w *Walker) walkFuncDef(fd *ast.FuncDef) (ast.Node, error) {
	fn, err := w.buildFunction(&fd.Signature, fd.Span())
	if err != nil {
		return nil, err
	}

	fn.Body = fd.Body

	if existing, ok := w.funcStore.Get(fn.Name); ok {
		if !existing.DeclarationOnly {
			return nil, w.error(report.KindDuplicateFunction, fd.Span(), "function %s has already been defined", fn.Name)
		}

		if err := w.reconcile(existing, fn, fd.Span()); err != nil {
			return nil, err
		}

		// The declaration's argument list and defaults are kept.
		existing.Body = fn.Body
		existing.DeclarationOnly = false
		fn = existing
	} else {
		w.defineFunction(fn)
	}

	return &ast.Func{ASTBase: ast.NewASTBaseOn(fd.Span()), Fn: fn}, nil
}

// buildFunction creates the function record for a signature.  Default values
// are analyzed in the enclosing scope and cast to their parameter's type.
func (w *Walker) buildFunction(sig *ast.Signature, span *report.TextSpan) (*ast.Function, error) {
	rtType, err := w.returnType(sig.ReturnType)
	if err != nil {
		return nil, err
	}

	args := make([]*ast.Argument, len(sig.Args))
	for i, farg := range sig.Args {
		argType, err := w.resolveType(farg.Type)
		if err != nil {
			return nil, err
		}

		arg := &ast.Argument{Name: farg.Name, Type: argType}
		if farg.Default != nil {
			dv, err := w.walkExpr(farg.Default)
			if err != nil {
				return nil, err
			}

			if arg.Default, err = w.implicitCast(dv, argType); err != nil {
				return nil, err
			}
		}

		args[i] = arg
	}

	return &ast.Function{
		Name:       sig.Name,
		ReturnType: rtType,
		Args:       args,
		Foreign:    sig.Foreign,
		Variadic:   sig.Variadic,
		DefSpan:    span,
	}, nil
}

// defineFunction adds a new function record to the function store.
func (w *Walker) defineFunction(fn *ast.Function) {
	w.funcStore.Set(fn.Name, fn)
	w.funcOrder = append(w.funcOrder, fn)
}

// reconcile checks that a declaration and a definition of the same function
// agree on their signature.
func (w *Walker) reconcile(existing, incoming *ast.Function, span *report.TextSpan) error {
	name := existing.Name

	if existing.ReturnType.Name != incoming.ReturnType.Name {
		return w.error(
			report.KindSignatureMismatch,
			span,
			"return type of function %s does not match: %s vs %s",
			name,
			existing.ReturnType.Repr(),
			incoming.ReturnType.Repr(),
		)
	}

	if existing.Foreign != incoming.Foreign {
		return w.error(report.KindSignatureMismatch, span, "foreign flag of function %s does not match", name)
	}

	if existing.Variadic != incoming.Variadic {
		return w.error(report.KindSignatureMismatch, span, "variadic flag of function %s does not match", name)
	}

	if len(existing.Args) != len(incoming.Args) {
		return w.error(
			report.KindSignatureMismatch,
			span,
			"argument count of function %s does not match: %d vs %d",
			name,
			len(existing.Args),
			len(incoming.Args),
		)
	}

	for i, ea := range existing.Args {
		ia := incoming.Args[i]

		var field, want, got string
		switch {
		case ea.Name != ia.Name:
			field, want, got = "name", ea.Name, ia.Name
		case ea.Type.Name != ia.Type.Name:
			field, want, got = "type", ea.Type.Name, ia.Type.Name
		case ea.Type.PointerDepth != ia.Type.PointerDepth:
			field, want, got = "pointer depth", ea.Type.Repr(), ia.Type.Repr()
		default:
			continue
		}

		return w.error(
			report.KindSignatureMismatch,
			span,
			"argument %d of function %s does not match in %s: %s vs %s",
			i+1,
			name,
			field,
			want,
			got,
		)
	}

	return nil
}
