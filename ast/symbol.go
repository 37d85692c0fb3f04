package ast

import (
	"tzc/report"
	"tzc/types"
)

// Variable is a variable bound in a scope frame.
type Variable struct {
	// The name of the variable.
	Name string

	// The type of the variable.
	Type types.Type

	// The initial value, if any.
	Value Node

	// Whether this binding is a declaration without a value.
	IsDeclaration bool

	// The span of the binding.
	DefSpan *report.TextSpan
}

// Argument is a single function parameter.
type Argument struct {
	Name string
	Type types.Type

	// The default value, already cast to Type.  May be nil.
	Default Node
}

// Function is the record of a declared or defined function in the function
// store.
type Function struct {
	Name       string
	ReturnType types.Type
	Args       []*Argument

	// The body; nil while only a declaration has been seen.
	Body *Block

	// Whether no definition has been seen.
	DeclarationOnly bool

	Foreign  bool
	Variadic bool

	// Whether the body has been analyzed.  Never reset once set.
	Checked bool

	// The span of the first declaration or definition.
	DefSpan *report.TextSpan
}

