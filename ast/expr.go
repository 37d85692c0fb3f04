package ast

// IntLit is an integer literal.
type IntLit struct {
	ASTBase

	Value int64
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	ASTBase

	Value float64
}

// CharLit is a character literal.
type CharLit struct {
	ASTBase

	Value rune
}

// BoolLit is a boolean literal.
type BoolLit struct {
	ASTBase

	Value bool
}

// StringLit is a string literal.
type StringLit struct {
	ASTBase

	Value string
}

// Ident is an identifier: a variable use, or the base name of a type label.
type Ident struct {
	ASTBase

	Name string
}

// -----------------------------------------------------------------------------

// UnaryOp represents a prefix operator application: `-`, `+`, `!`, `~`, `&`
// or `sizeof`.
type UnaryOp struct {
	ASTBase

	Op      string
	Operand Node
}

// Deref represents a pointer dereference: `*p`.
type Deref struct {
	ASTBase

	Ptr Node
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ASTBase

	Op       string
	Lhs, Rhs Node
}

// Paren is a parenthesized expression.  It only groups: it is kept through
// analysis with its content replaced.
type Paren struct {
	ASTBase

	Inner Node
}

// TypeCast represents an explicit cast: `e as T`.
type TypeCast struct {
	ASTBase

	Src  Node
	Dest *TypeLabel
}

// CondExpr represents a conditional expression: `t if c else e`.  If Unless
// is set, the sense of the condition is inverted.
type CondExpr struct {
	ASTBase

	Cond, Then, Else Node
	Unless           bool
}

// Call represents a function call.
type Call struct {
	ASTBase

	Func string
	Args []Node
}

// Range is an integer range `start..end`, inclusive of both bounds.
type Range struct {
	ASTBase

	Start, End int64
}

// -----------------------------------------------------------------------------

// TypeLabel is a type written in source.  Its Inner node is either the *Ident
// naming the base type or a *PointerLabel.
type TypeLabel struct {
	ASTBase

	Inner Node
}

// PointerLabel is one level of pointer indirection in a type label.
type PointerLabel struct {
	ASTBase

	Elem Node
}

// NewTypeLabel builds the label for a base type name with the given number of
// pointer levels.
func NewTypeLabel(name string, depth int) *TypeLabel {
	var inner Node = &Ident{Name: name}
	for i := 0; i < depth; i++ {
		inner = &PointerLabel{Elem: inner}
	}

	return &TypeLabel{Inner: inner}
}
