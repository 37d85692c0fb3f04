package walk

import (
	"tzc/ast"
	"tzc/report"
	"tzc/types"
)

// walkBlock walks a block in its own scope, replacing each statement with its
// analyzed form.
func (w *Walker) walkBlock(block *ast.Block) error {
	w.pushScope()
	defer w.popScope()

	return w.walkStmts(block.Stmts)
}

// walkStmts walks a statement list in the current scope.
func (w *Walker) walkStmts(stmts []ast.Node) error {
	for i, stmt := range stmts {
		analyzed, err := w.walkStmt(stmt)
		if err != nil {
			return err
		}

		stmts[i] = analyzed
	}

	return nil
}

// walkStmt walks a statement in function scope.
func (w *Walker) walkStmt(stmt ast.Node) (ast.Node, error) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		return w.walkVarDecl(v)
	case *ast.VarDef:
		return w.walkVarDef(v)
	case *ast.Assignment:
		return w.walkAssign(v)
	case *ast.ReturnStmt:
		return w.walkReturnStmt(v)
	case *ast.IfStmt:
		return w.walkIfStmt(v)
	case *ast.WhileLoop:
		return w.walkWhileLoop(v)
	case *ast.ForLoop:
		return w.walkForLoop(v)
	case *ast.FuncDecl, *ast.FuncDef, *ast.Block:
		return nil, w.error(report.KindStructure, stmt.Span(), "did not expect %s in function scope", describe(stmt))
	default:
		return w.walkExpr(stmt)
	}
}

// walkVarDecl walks a variable declaration without an initializer.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) (ast.Node, error) {
	typ, err := w.resolveType(vd.Type)
	if err != nil {
		return nil, err
	}

	sym := &ast.Variable{
		Name:          vd.Name,
		Type:          typ,
		IsDeclaration: true,
		DefSpan:       vd.Span(),
	}

	if err := w.defineLocal(sym); err != nil {
		return nil, err
	}

	return &ast.Var{ASTBase: ast.NewASTBaseOn(vd.Span()), Sym: sym}, nil
}

// walkVarDef walks a variable definition.  The variable's type is inferred
// from its initializer unless it has a type label.
func (w *Walker) walkVarDef(vd *ast.VarDef) (ast.Node, error) {
	init, err := w.walkExpr(vd.Init)
	if err != nil {
		return nil, err
	}

	typ, err := w.resolveType(init)
	if err != nil {
		return nil, err
	}

	if vd.Type != nil {
		target, err := w.resolveType(vd.Type)
		if err != nil {
			return nil, err
		}

		typ = w.coerce(typ, target, vd.Span())
	}

	sym := &ast.Variable{
		Name:    vd.Name,
		Type:    typ,
		Value:   init,
		DefSpan: vd.Span(),
	}

	if err := w.defineLocal(sym); err != nil {
		return nil, err
	}

	return &ast.Var{ASTBase: ast.NewASTBaseOn(vd.Span()), Sym: sym}, nil
}

// walkAssign walks an assignment.  A plain assignment to an unbound name
// declares it; any other assignment mutates an existing value.
func (w *Walker) walkAssign(as *ast.Assignment) (ast.Node, error) {
	switch lhs := as.Lhs.(type) {
	case *ast.Ident:
		rhs, err := w.walkExpr(as.Rhs)
		if err != nil {
			return nil, err
		}

		if _, bound := w.scopes.Find(lhs.Name); !bound && as.Op == "=" {
			typ, err := w.resolveType(rhs)
			if err != nil {
				return nil, err
			}

			sym := &ast.Variable{Name: lhs.Name, Type: typ, Value: rhs, DefSpan: as.Span()}
			w.defineFresh(sym)

			return &ast.Var{ASTBase: ast.NewASTBaseOn(as.Span()), Sym: sym}, nil
		}

		as.Rhs = rhs
		return as, nil
	case *ast.Deref:
		target, err := w.walkExpr(lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := w.walkExpr(as.Rhs)
		if err != nil {
			return nil, err
		}

		as.Lhs, as.Rhs = target, rhs
		return as, nil
	default:
		return nil, w.error(report.KindStructure, as.Lhs.Span(), "expected identifier on left side of assignment, got %s", describe(as.Lhs))
	}
}

// walkReturnStmt walks a return statement.  The returned value is cast to the
// return type of the enclosing function.
func (w *Walker) walkReturnStmt(rs *ast.ReturnStmt) (ast.Node, error) {
	fn := w.enclosingFunc
	if fn == nil {
		return nil, w.error(report.KindStructure, rs.Span(), "return statement outside of function")
	}

	if rs.Value == nil {
		return rs, nil
	}

	if fn.ReturnType.Name == types.VoidTypeName && !fn.ReturnType.IsPointer() {
		return nil, w.error(report.KindReturn, rs.Span(), "void function %s cannot return a value", fn.Name)
	}

	value, err := w.walkExpr(rs.Value)
	if err != nil {
		return nil, err
	}

	if rs.Value, err = w.implicitCast(value, fn.ReturnType); err != nil {
		return nil, err
	}

	return rs, nil
}
