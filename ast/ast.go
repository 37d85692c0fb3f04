package ast

import (
	"tzc/report"
	"tzc/types"
)

// Node is the abstract interface for all AST nodes: both the syntax nodes
// produced by the parser and the analyzed nodes that replace them.
type Node interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// Typed is implemented by every analyzed expression node.
type Typed interface {
	Node

	// Type returns the result type of the expression.
	Type() types.Type
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// Program is the root of a syntax tree: the list of global statements.
type Program struct {
	ASTBase

	// The global statements in source order.
	Stmts []Node
}

// Block represents a list of statements with its own scope.
type Block struct {
	ASTBase

	// The statements of the block.
	Stmts []Node
}
