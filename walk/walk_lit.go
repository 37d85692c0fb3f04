package walk

import (
	"tzc/ast"
	"tzc/report"
	"tzc/types"
)

// walkLiteral walks a literal, inferring its type.
func (w *Walker) walkLiteral(lit ast.Node) (ast.Node, error) {
	var typ types.Type
	var err error

	switch v := lit.(type) {
	case *ast.IntLit:
		typ, err = w.builtin(types.IntLiteralType(v.Value))
	case *ast.FloatLit:
		typ, err = w.builtin(types.FloatLiteralType(v.Value))
	case *ast.CharLit:
		typ, err = w.builtin(types.CharTypeName)
	case *ast.BoolLit:
		typ, err = w.builtin(types.BoolTypeName)
	case *ast.StringLit:
		typ, err = w.builtin(types.CharTypeName)
		typ = typ.Ref()
	default:
		return nil, w.error(report.KindInternal, lit.Span(), "%s is not a literal", describe(lit))
	}

	if err != nil {
		return nil, err
	}

	return &ast.Value{ASTBase: ast.NewASTBaseOn(lit.Span()), Result: typ, Lit: lit}, nil
}

// walkIdent walks a variable use.
func (w *Walker) walkIdent(ident *ast.Ident) (ast.Node, error) {
	sym, err := w.lookup(ident.Name, ident.Span())
	if err != nil {
		return nil, err
	}

	return &ast.Value{ASTBase: ast.NewASTBaseOn(ident.Span()), Result: sym.Type, Lit: ident}, nil
}
