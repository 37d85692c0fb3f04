package ast

// VarDecl represents a variable declaration without an initializer: `T x;`.
type VarDecl struct {
	ASTBase

	Name string
	Type *TypeLabel
}

// VarDef represents a variable definition with an initializer.  Type is nil
// when the type is inferred from the initializer.
type VarDef struct {
	ASTBase

	Name string
	Type *TypeLabel
	Init Node
}

// Assignment represents an assignment statement.  Op is `=` or a compound
// operator such as `+=`.
type Assignment struct {
	ASTBase

	Op       string
	Lhs, Rhs Node
}

// Enumeration of loop control keywords.
const (
	KeywordBreak = "break"
	KeywordNext  = "next"
)

// KeywordStmt represents a single keyword control flow statement (eg. `break`).
type KeywordStmt struct {
	ASTBase

	Keyword string
}

// ReturnStmt represents a return statement.  Value is nil for a bare return.
type ReturnStmt struct {
	ASTBase

	Value Node
}

// -----------------------------------------------------------------------------

// IfStmt represents an if/unless statement with its elsif and else branches.
type IfStmt struct {
	ASTBase

	Cond   Node
	Body   *Block
	Unless bool

	Elsifs []*Elsif

	// The (optional) else branch.
	Else *Block
}

// Elsif is a single elsif branch.
type Elsif struct {
	ASTBase

	Cond Node
	Body *Block
}

// WhileLoop represents a while or until loop.  If Infinite is set, the loop
// has no condition.
type WhileLoop struct {
	ASTBase

	Cond     Node
	Body     *Block
	Until    bool
	Infinite bool
}

// ForLoop represents a for loop over its iterator expressions, binding each
// iteration's values to the payload names.
type ForLoop struct {
	ASTBase

	Iters    []Node
	Payloads []string
	Body     *Block
}

// -----------------------------------------------------------------------------

// FuncArg is a single parameter in a function signature.
type FuncArg struct {
	ASTBase

	Name string
	Type *TypeLabel

	// The (optional) default value.
	Default Node
}

// Signature is the part of a function shared by its declaration and its
// definition.
type Signature struct {
	Name string
	Args []*FuncArg

	// The return type; nil means void.
	ReturnType *TypeLabel

	Variadic bool
	Foreign  bool
}

// FuncDecl represents a function declaration (a prototype).
type FuncDecl struct {
	ASTBase
	Signature
}

// FuncDef represents a function definition.
type FuncDef struct {
	ASTBase
	Signature

	Body *Block
}
