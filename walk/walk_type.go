package walk

import (
	"tzc/ast"
	"tzc/report"
	"tzc/types"
)

// resolveType computes the type of a node: the type a type label denotes, or
// the result type of an already analyzed expression.
func (w *Walker) resolveType(node ast.Node) (types.Type, error) {
	switch v := node.(type) {
	case *ast.TypeLabel:
		return w.resolveLabel(v.Inner)
	case *ast.PointerLabel, *ast.Ident:
		return w.resolveLabel(v)
	case *ast.Paren:
		return w.resolveType(v.Inner)
	case ast.Typed:
		return v.Type(), nil
	default:
		return types.Type{}, w.error(report.KindInternal, node.Span(), "%s has no type", describe(node))
	}
}

// resolveLabel walks a pointer label chain down to its base type name.
func (w *Walker) resolveLabel(node ast.Node) (types.Type, error) {
	depth := 0
	for {
		ptr, ok := node.(*ast.PointerLabel)
		if !ok {
			break
		}

		depth++
		node = ptr.Elem
	}

	ident, ok := node.(*ast.Ident)
	if !ok {
		return types.Type{}, w.error(report.KindStructure, node.Span(), "expected type name, got %s", describe(node))
	}

	typ, ok := w.typeStore.Get(ident.Name)
	if !ok {
		return types.Type{}, w.error(report.KindUnresolvedType, ident.Span(), "unable to resolve type: %s", ident.Name)
	}

	return typ.WithDepth(depth), nil
}

// returnType resolves an optional return type label: nil means void.
func (w *Walker) returnType(label *ast.TypeLabel) (types.Type, error) {
	if label == nil {
		return w.builtin(types.VoidTypeName)
	}

	return w.resolveType(label)
}
