package ast

import "tzc/types"

// The nodes in this file are produced by semantic analysis.  Each replaces
// the syntax node it was derived from in its parent's child slot.

// Value is a typed literal or variable use.  Lit is the original literal or
// *Ident node.
type Value struct {
	ASTBase

	Result types.Type
	Lit    Node
}

func (v *Value) Type() types.Type { return v.Result }

// Operation is a typed operator application.  For prefix operators
// (including `*` dereference and `sizeof`) Lhs is nil.
type Operation struct {
	ASTBase

	Result   types.Type
	Op       string
	Lhs, Rhs Node
}

func (o *Operation) Type() types.Type { return o.Result }

// Cast is a typed conversion.  Implicit casts are inserted by analysis when
// binding call arguments, default values and return values.
type Cast struct {
	ASTBase

	Result   types.Type
	Src      Node
	Implicit bool
}

func (c *Cast) Type() types.Type { return c.Result }

// CondValue is a typed conditional expression.
type CondValue struct {
	ASTBase

	Result           types.Type
	Cond, Then, Else Node
	Unless           bool
}

func (cv *CondValue) Type() types.Type { return cv.Result }

// FuncCall is a call with its arguments bound to the callee's parameters.
type FuncCall struct {
	ASTBase

	Func *Function

	// The bound arguments: one per parameter (defaults filled in) plus any
	// extra variadic arguments.
	Args []Node
}

func (fc *FuncCall) Type() types.Type { return fc.Func.ReturnType }

// RangeValue is an analyzed range.  Its type is the narrowest integer type
// holding its end bound.
type RangeValue struct {
	ASTBase

	Result     types.Type
	Start, End int64
}

func (rv *RangeValue) Type() types.Type { return rv.Result }

// -----------------------------------------------------------------------------

// Var is a variable binding: a declaration, definition, or implicit
// declaration by assignment.
type Var struct {
	ASTBase

	Sym *Variable
}

// Func is a function declaration or definition.  Both nodes of a reconciled
// pair refer to the same Function record.
type Func struct {
	ASTBase

	Fn *Function

	// Whether this node is the prototype rather than the definition.
	Declaration bool
}

// -----------------------------------------------------------------------------

// If is an analyzed if/unless statement.
type If struct {
	ASTBase

	Cond   Node
	Body   *Block
	Unless bool
	Elsifs []*Elsif
	Else   *Block
}

// While is an analyzed while, until or infinite loop.
type While struct {
	ASTBase

	// Nil for infinite loops.
	Cond Node

	Body     *Block
	Until    bool
	Infinite bool
}

// For is an analyzed for loop over a single range with a single capture
// variable.
type For struct {
	ASTBase

	Range *RangeValue
	Iter  *Variable
	Body  *Block
}
