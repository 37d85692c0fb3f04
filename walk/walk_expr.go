package walk

import (
	"tzc/ast"
	"tzc/report"
	"tzc/types"
	"tzc/util"
)

// boolOps are the binary operators whose result is always a bool.
var boolOps = []string{"==", "!=", "&&", "||"}

// unsupportedOps are binary operators the grammar accepts but which cannot be
// analyzed yet.
var unsupportedOps = []string{"//", "|>"}

// binaryOps are the remaining binary operators: their result is the wider of
// their operand types.
var binaryOps = []string{
	"+", "-", "*", "/", "%",
	"&", "|", "^", "<<", ">>",
	"<", ">", "<=", ">=",
}

// walkExpr walks an expression and returns its analyzed replacement.
func (w *Walker) walkExpr(expr ast.Node) (ast.Node, error) {
	switch v := expr.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.CharLit, *ast.BoolLit, *ast.StringLit:
		return w.walkLiteral(v)
	case *ast.Ident:
		return w.walkIdent(v)
	case *ast.UnaryOp:
		return w.walkUnaryOp(v)
	case *ast.Deref:
		return w.walkDeref(v)
	case *ast.BinaryOp:
		return w.walkBinaryOp(v)
	case *ast.Paren:
		inner, err := w.walkExpr(v.Inner)
		if err != nil {
			return nil, err
		}

		v.Inner = inner
		return v, nil
	case *ast.TypeCast:
		return w.walkTypeCast(v)
	case *ast.CondExpr:
		return w.walkCondExpr(v)
	case *ast.Call:
		return w.walkCall(v)
	case *ast.Range:
		return w.walkRange(v)
	case *ast.KeywordStmt:
		return v, nil
	default:
		return nil, w.error(report.KindStructure, expr.Span(), "did not expect %s in expression", describe(expr))
	}
}

// walkUnaryOp walks a prefix operator application.
func (w *Walker) walkUnaryOp(uop *ast.UnaryOp) (ast.Node, error) {
	operand, err := w.walkExpr(uop.Operand)
	if err != nil {
		return nil, err
	}

	operandType, err := w.resolveType(operand)
	if err != nil {
		return nil, err
	}

	var result types.Type
	switch uop.Op {
	case "&":
		result = operandType.Ref()
	case "sizeof":
		if result, err = w.builtin(types.USizeTypeName); err != nil {
			return nil, err
		}
	case "-", "+", "!", "~":
		result = operandType
	default:
		return nil, w.error(report.KindUnsupported, uop.Span(), "unknown unary operator %s", uop.Op)
	}

	return &ast.Operation{
		ASTBase: ast.NewASTBaseOn(uop.Span()),
		Result:  result,
		Op:      uop.Op,
		Rhs:     operand,
	}, nil
}

// walkDeref walks a pointer dereference.
func (w *Walker) walkDeref(deref *ast.Deref) (ast.Node, error) {
	ptr, err := w.walkExpr(deref.Ptr)
	if err != nil {
		return nil, err
	}

	ptrType, err := w.resolveType(ptr)
	if err != nil {
		return nil, err
	}

	if !ptrType.IsPointer() {
		return nil, w.error(report.KindDereference, deref.Span(), "cannot dereference non-pointer type %s", ptrType.Repr())
	}

	return &ast.Operation{
		ASTBase: ast.NewASTBaseOn(deref.Span()),
		Result:  ptrType.Deref(),
		Op:      "*",
		Rhs:     ptr,
	}, nil
}

// walkBinaryOp walks a binary operator application.
func (w *Walker) walkBinaryOp(bop *ast.BinaryOp) (ast.Node, error) {
	if util.Contains(unsupportedOps, bop.Op) {
		return nil, w.error(report.KindUnsupported, bop.Span(), "operator %s is not supported yet", bop.Op)
	} else if !util.Contains(boolOps, bop.Op) && !util.Contains(binaryOps, bop.Op) {
		return nil, w.error(report.KindUnsupported, bop.Span(), "unknown binary operator %s", bop.Op)
	}

	lhs, err := w.walkExpr(bop.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := w.walkExpr(bop.Rhs)
	if err != nil {
		return nil, err
	}

	var result types.Type
	if util.Contains(boolOps, bop.Op) {
		if result, err = w.builtin(types.BoolTypeName); err != nil {
			return nil, err
		}
	} else {
		lhsType, err := w.resolveType(lhs)
		if err != nil {
			return nil, err
		}

		rhsType, err := w.resolveType(rhs)
		if err != nil {
			return nil, err
		}

		result = types.Widen(lhsType, rhsType)
	}

	return &ast.Operation{
		ASTBase: ast.NewASTBaseOn(bop.Span()),
		Result:  result,
		Op:      bop.Op,
		Lhs:     lhs,
		Rhs:     rhs,
	}, nil
}

// walkTypeCast walks an explicit cast.
func (w *Walker) walkTypeCast(tc *ast.TypeCast) (ast.Node, error) {
	src, err := w.walkExpr(tc.Src)
	if err != nil {
		return nil, err
	}

	srcType, err := w.resolveType(src)
	if err != nil {
		return nil, err
	}

	destType, err := w.resolveType(tc.Dest)
	if err != nil {
		return nil, err
	}

	return &ast.Cast{
		ASTBase: ast.NewASTBaseOn(tc.Span()),
		Result:  w.coerce(srcType, destType, tc.Span()),
		Src:     src,
	}, nil
}

// walkCondExpr walks a conditional expression.
func (w *Walker) walkCondExpr(ce *ast.CondExpr) (ast.Node, error) {
	cond, err := w.walkCondition(ce.Cond, "if/unless expects a bool operation")
	if err != nil {
		return nil, err
	}

	then, err := w.walkExpr(ce.Then)
	if err != nil {
		return nil, err
	}

	els, err := w.walkExpr(ce.Else)
	if err != nil {
		return nil, err
	}

	thenType, err := w.resolveType(then)
	if err != nil {
		return nil, err
	}

	elseType, err := w.resolveType(els)
	if err != nil {
		return nil, err
	}

	return &ast.CondValue{
		ASTBase: ast.NewASTBaseOn(ce.Span()),
		Result:  types.Widen(thenType, elseType),
		Cond:    cond,
		Then:    then,
		Else:    els,
		Unless:  ce.Unless,
	}, nil
}

// walkCondition walks an expression that must be a bool.  The message is
// used for the error if it is not.
func (w *Walker) walkCondition(expr ast.Node, msg string) (ast.Node, error) {
	cond, err := w.walkExpr(expr)
	if err != nil {
		return nil, err
	}

	condType, err := w.resolveType(cond)
	if err != nil {
		return nil, err
	}

	if !condType.IsBool() {
		return nil, w.error(report.KindCondition, expr.Span(), "%s, got %s", msg, condType.Repr())
	}

	return cond, nil
}

// walkRange walks a range, typing it by its end bound.
func (w *Walker) walkRange(rng *ast.Range) (*ast.RangeValue, error) {
	typ, err := w.builtin(types.IntLiteralType(rng.End))
	if err != nil {
		return nil, err
	}

	return &ast.RangeValue{
		ASTBase: ast.NewASTBaseOn(rng.Span()),
		Result:  typ,
		Start:   rng.Start,
		End:     rng.End,
	}, nil
}
