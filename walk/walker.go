package walk

import (
	"fmt"

	"tzc/ast"
	"tzc/report"
	"tzc/symtab"
	"tzc/types"
)

// Walker is responsible for walking a program and performing semantic
// analysis on it.  It owns every store used during one compilation: a Walker
// must not be reused across programs.
type Walker struct {
	// The target whose sizes the host-native builtins take.
	target types.Target

	// The builtin types by name.
	typeStore *symtab.Map[types.Type]

	// The declared and defined functions by name.
	funcStore *symtab.Map[*ast.Function]

	// The functions in the order they were first seen.
	funcOrder []*ast.Function

	// The names of the functions a declaration has been seen for.
	declared *symtab.Map[bool]

	// The stack of local scopes used to lookup variables.  The bottom frame
	// holds the global variables.
	scopes *symtab.Scopes[*ast.Variable]

	// The functions whose bodies still need to be analyzed.
	queue *symtab.Queue

	// The warnings collected so far.
	warnings []*report.CompileError

	// The function whose body is being walked.  If this is `nil`, then there is
	// no enclosing function: ie. return statements are not valid.
	enclosingFunc *ast.Function
}

// NewWalker creates a new walker for a target.
func NewWalker(target types.Target) *Walker {
	return &Walker{
		target:    target,
		typeStore: symtab.NewMap[types.Type](),
		funcStore: symtab.NewMap[*ast.Function](),
		declared:  symtab.NewMap[bool](),
		scopes:    symtab.NewScopes[*ast.Variable](),
		queue:     symtab.NewQueue(),
	}
}

// Warnings returns the warnings collected so far.
func (w *Walker) Warnings() []*report.CompileError {
	return w.warnings
}

// Functions returns every function record in the order it was first seen.
func (w *Walker) Functions() []*ast.Function {
	return w.funcOrder
}

// LookupFunction returns the function record named name.
func (w *Walker) LookupFunction(name string) (*ast.Function, bool) {
	return w.funcStore.Get(name)
}

// -----------------------------------------------------------------------------

// lookup looks up a variable by name in all visible scopes.  If no variable by
// the given name can be found, then an error is returned.
func (w *Walker) lookup(name string, span *report.TextSpan) (*ast.Variable, error) {
	if sym, ok := w.scopes.Find(name); ok {
		return sym, nil
	}

	return nil, w.error(report.KindUnresolvedName, span, "use of undeclared variable %s", name)
}

// defineLocal defines a variable in the innermost scope.  If a variable by the
// same name is visible from it, then an error is returned.
func (w *Walker) defineLocal(sym *ast.Variable) error {
	if _, ok := w.scopes.Find(sym.Name); ok {
		return w.error(report.KindDuplicateVariable, sym.DefSpan, "variable %s already exists", sym.Name)
	}

	w.scopes.Insert(sym.Name, sym)
	return nil
}

// defineFresh defines a variable in the innermost scope without checking for
// an existing binding: parameters and loop captures are always fresh.
func (w *Walker) defineFresh(sym *ast.Variable) {
	w.scopes.Insert(sym.Name, sym)
}

// pushScope pushes a new local scope onto the scope stack.
func (w *Walker) pushScope() {
	w.scopes.PushFrame()
}

// popScope removes the top local scope from the scope stack.
func (w *Walker) popScope() {
	w.scopes.PopFrame()
}

// builtin returns the builtin type named name.
func (w *Walker) builtin(name string) (types.Type, error) {
	if typ, ok := w.typeStore.Get(name); ok {
		return typ, nil
	}

	return types.Type{}, w.error(report.KindInternal, nil, "builtin type %s is not in the type store", name)
}

// -----------------------------------------------------------------------------

// error creates an error on the given span that aborts analysis.
func (w *Walker) error(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) error {
	return report.Raise(kind, span, msg, args...)
}

// warn records a compile warning.
func (w *Walker) warn(span *report.TextSpan, msg string, args ...interface{}) {
	w.warnings = append(w.warnings, report.Raise(report.KindNarrowing, span, msg, args...))
}

// coerce converts current to target, warning if the conversion narrows.
func (w *Walker) coerce(current, target types.Type, span *report.TextSpan) types.Type {
	result, narrowed := types.Coerce(current, target)
	if narrowed {
		w.warn(span, "narrowing cast from %s to %s may truncate the value", current.Repr(), target.Repr())
	}

	return result
}

// implicitCast wraps an analyzed expression in an implicit cast to target.
func (w *Walker) implicitCast(expr ast.Node, target types.Type) (ast.Node, error) {
	current, err := w.resolveType(expr)
	if err != nil {
		return nil, err
	}

	return &ast.Cast{
		ASTBase:  ast.NewASTBaseOn(expr.Span()),
		Result:   w.coerce(current, target, expr.Span()),
		Src:      expr,
		Implicit: true,
	}, nil
}

// -----------------------------------------------------------------------------

// describe returns the user-facing name of a node's kind.
func describe(node ast.Node) string {
	switch v := node.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.CharLit, *ast.BoolLit, *ast.StringLit:
		return "literal"
	case *ast.Ident:
		return "identifier"
	case *ast.UnaryOp, *ast.Deref, *ast.BinaryOp:
		return "operation"
	case *ast.Paren:
		return "parenthesized expression"
	case *ast.TypeCast:
		return "cast"
	case *ast.CondExpr:
		return "conditional expression"
	case *ast.Call:
		return "call"
	case *ast.Range:
		return "range"
	case *ast.KeywordStmt:
		return v.Keyword
	case *ast.ReturnStmt:
		return "return statement"
	case *ast.VarDecl, *ast.VarDef:
		return "variable declaration"
	case *ast.Assignment:
		return "assignment"
	case *ast.IfStmt:
		return "if statement"
	case *ast.WhileLoop:
		return "while loop"
	case *ast.ForLoop:
		return "for loop"
	case *ast.FuncDecl:
		return "function declaration"
	case *ast.FuncDef:
		return "function definition"
	case *ast.Block:
		return "block"
	case *ast.TypeLabel, *ast.PointerLabel:
		return "type label"
	default:
		return fmt.Sprintf("%T", node)
	}
}
