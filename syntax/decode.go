package syntax

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"tzc/ast"
	"tzc/report"
)

// ReadTree reads a syntax tree from its s-expression form: a single
// `(program ...)` list.
func ReadTree(input string) (*ast.Program, error) {
	d, err := ReadDatum(input)
	if err != nil {
		return nil, err
	}

	return Decode(d)
}

// Decode converts a `(program ...)` datum into a syntax tree.
func Decode(d *Datum) (*ast.Program, error) {
	if d.Head() != "program" {
		return nil, errorAt(d, "expected (program ...)")
	}

	stmts, err := decodeStmts(d.Items[1:])
	if err != nil {
		return nil, err
	}

	return &ast.Program{ASTBase: ast.NewASTBaseOn(spanOf(d)), Stmts: stmts}, nil
}

// errorAt builds a decoding error at the position of d.
func errorAt(d *Datum, format string, args ...interface{}) error {
	return fmt.Errorf("%d:%d: %s", d.Line, d.Col, fmt.Sprintf(format, args...))
}

// spanOf returns the source span of a form.  The `line`/`col` metadata (and
// optionally `end-line`/`end-col`), 1-based, give the position in the
// original source; without it the span is the position of the form in the
// tree text itself.
func spanOf(d *Datum) *report.TextSpan {
	line, col := d.Line, d.Col
	if v, ok := metaInt(d, "line"); ok {
		line = v
	}
	if v, ok := metaInt(d, "col"); ok {
		col = v
	}

	endLine, endCol := line, col
	if v, ok := metaInt(d, "end-line"); ok {
		endLine = v
	}
	if v, ok := metaInt(d, "end-col"); ok {
		endCol = v
	}

	return &report.TextSpan{
		StartLine: line - 1,
		StartCol:  col - 1,
		EndLine:   endLine - 1,
		EndCol:    endCol - 1,
	}
}

func metaInt(d *Datum, key string) (int, bool) {
	v, ok := d.Meta(key)
	if !ok || v.Kind != DatumInteger {
		return 0, false
	}

	n, err := strconv.Atoi(v.Text)
	return n, err == nil
}

func metaFlag(d *Datum, key string) bool {
	v, ok := d.Meta(key)
	return ok && v.IsSymbol("true")
}

func base(d *Datum) ast.ASTBase {
	return ast.NewASTBaseOn(spanOf(d))
}

// expectArgs checks that form d has exactly n items after its head.
func expectArgs(d *Datum, n int) error {
	if len(d.Items)-1 != n {
		return errorAt(d, "(%s ...) takes %d operands, got %d", d.Head(), n, len(d.Items)-1)
	}

	return nil
}

func expectSymbol(d *Datum, what string) (string, error) {
	if d.Kind != DatumSymbol {
		return "", errorAt(d, "expected %s symbol", what)
	}

	return d.Text, nil
}

func expectString(d *Datum, what string) (string, error) {
	if d.Kind != DatumString {
		return "", errorAt(d, "expected %s string", what)
	}

	return d.Text, nil
}

func expectInteger(d *Datum) (int64, error) {
	if d.Kind != DatumInteger {
		return 0, errorAt(d, "expected integer")
	}

	v, err := strconv.ParseInt(d.Text, 10, 64)
	if err != nil {
		return 0, errorAt(d, "integer %s out of range", d.Text)
	}

	return v, nil
}

// -----------------------------------------------------------------------------

func decodeStmts(ds []*Datum) ([]ast.Node, error) {
	stmts := make([]ast.Node, 0, len(ds))
	for _, d := range ds {
		stmt, err := decodeStmt(d)
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func decodeBlock(d *Datum) (*ast.Block, error) {
	if d.Head() != "block" {
		return nil, errorAt(d, "expected (block ...)")
	}

	stmts, err := decodeStmts(d.Items[1:])
	if err != nil {
		return nil, err
	}

	return &ast.Block{ASTBase: base(d), Stmts: stmts}, nil
}

func decodeStmt(d *Datum) (ast.Node, error) {
	switch d.Head() {
	case "decl":
		if err := expectArgs(d, 2); err != nil {
			return nil, err
		}

		name, err := expectSymbol(d.Items[1], "variable name")
		if err != nil {
			return nil, err
		}

		typ, err := decodeType(d.Items[2])
		if err != nil {
			return nil, err
		}

		return &ast.VarDecl{ASTBase: base(d), Name: name, Type: typ}, nil
	case "let":
		return decodeLet(d)
	case "assign":
		if err := expectArgs(d, 3); err != nil {
			return nil, err
		}

		op, err := expectString(d.Items[1], "operator")
		if err != nil {
			return nil, err
		}

		lhs, err := decodeExpr(d.Items[2])
		if err != nil {
			return nil, err
		}

		rhs, err := decodeExpr(d.Items[3])
		if err != nil {
			return nil, err
		}

		return &ast.Assignment{ASTBase: base(d), Op: op, Lhs: lhs, Rhs: rhs}, nil
	case "return":
		if len(d.Items) == 1 {
			return &ast.ReturnStmt{ASTBase: base(d)}, nil
		} else if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		value, err := decodeExpr(d.Items[1])
		if err != nil {
			return nil, err
		}

		return &ast.ReturnStmt{ASTBase: base(d), Value: value}, nil
	case "if", "unless":
		return decodeIf(d)
	case "while", "until":
		if err := expectArgs(d, 2); err != nil {
			return nil, err
		}

		cond, err := decodeExpr(d.Items[1])
		if err != nil {
			return nil, err
		}

		body, err := decodeBlock(d.Items[2])
		if err != nil {
			return nil, err
		}

		return &ast.WhileLoop{ASTBase: base(d), Cond: cond, Body: body, Until: d.Head() == "until"}, nil
	case "loop":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		body, err := decodeBlock(d.Items[1])
		if err != nil {
			return nil, err
		}

		return &ast.WhileLoop{ASTBase: base(d), Body: body, Infinite: true}, nil
	case "for":
		return decodeFor(d)
	case "fn-decl", "fn":
		return decodeFunc(d)
	default:
		return decodeExpr(d)
	}
}

func decodeLet(d *Datum) (ast.Node, error) {
	if len(d.Items) != 3 && len(d.Items) != 4 {
		return nil, errorAt(d, "(let ...) takes a name, an optional type and a value")
	}

	name, err := expectSymbol(d.Items[1], "variable name")
	if err != nil {
		return nil, err
	}

	vd := &ast.VarDef{ASTBase: base(d), Name: name}
	if len(d.Items) == 4 {
		if vd.Type, err = decodeType(d.Items[2]); err != nil {
			return nil, err
		}
	}

	if vd.Init, err = decodeExpr(d.Items[len(d.Items)-1]); err != nil {
		return nil, err
	}

	return vd, nil
}

func decodeIf(d *Datum) (ast.Node, error) {
	if len(d.Items) < 3 {
		return nil, errorAt(d, "(%s ...) takes a condition and a block", d.Head())
	}

	cond, err := decodeExpr(d.Items[1])
	if err != nil {
		return nil, err
	}

	body, err := decodeBlock(d.Items[2])
	if err != nil {
		return nil, err
	}

	is := &ast.IfStmt{ASTBase: base(d), Cond: cond, Body: body, Unless: d.Head() == "unless"}
	for i, clause := range d.Items[3:] {
		switch clause.Head() {
		case "elsif":
			if is.Else != nil {
				return nil, errorAt(clause, "elsif after else")
			} else if err := expectArgs(clause, 2); err != nil {
				return nil, err
			}

			econd, err := decodeExpr(clause.Items[1])
			if err != nil {
				return nil, err
			}

			ebody, err := decodeBlock(clause.Items[2])
			if err != nil {
				return nil, err
			}

			is.Elsifs = append(is.Elsifs, &ast.Elsif{ASTBase: base(clause), Cond: econd, Body: ebody})
		case "else":
			if i != len(d.Items)-4 {
				return nil, errorAt(clause, "else must be the last clause")
			} else if err := expectArgs(clause, 1); err != nil {
				return nil, err
			}

			if is.Else, err = decodeBlock(clause.Items[1]); err != nil {
				return nil, err
			}
		default:
			return nil, errorAt(clause, "expected (elsif ...) or (else ...)")
		}
	}

	return is, nil
}

func decodeFor(d *Datum) (ast.Node, error) {
	if err := expectArgs(d, 3); err != nil {
		return nil, err
	}

	iterList, payloadList := d.Items[1], d.Items[2]
	if iterList.Kind != DatumArray || payloadList.Kind != DatumArray {
		return nil, errorAt(d, "(for [iter...] [payload...] (block ...)) expected")
	}

	fl := &ast.ForLoop{ASTBase: base(d)}
	for _, item := range iterList.Items {
		iter, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}

		fl.Iters = append(fl.Iters, iter)
	}

	for _, item := range payloadList.Items {
		name, err := expectSymbol(item, "payload name")
		if err != nil {
			return nil, err
		}

		fl.Payloads = append(fl.Payloads, name)
	}

	body, err := decodeBlock(d.Items[3])
	if err != nil {
		return nil, err
	}

	fl.Body = body
	return fl, nil
}

// decodeFunc decodes `(fn-decl name (args ...) [T])` and
// `(fn name (args ...) [T] (block ...))`.
func decodeFunc(d *Datum) (ast.Node, error) {
	isDef := d.Head() == "fn"

	minItems := 3
	if isDef {
		minItems = 4
	}

	if len(d.Items) != minItems && len(d.Items) != minItems+1 {
		return nil, errorAt(d, "malformed (%s ...)", d.Head())
	}

	name, err := expectSymbol(d.Items[1], "function name")
	if err != nil {
		return nil, err
	}

	sig := ast.Signature{
		Name:     name,
		Variadic: metaFlag(d, "variadic"),
		Foreign:  metaFlag(d, "foreign"),
	}

	if sig.Args, err = decodeArgs(d.Items[2]); err != nil {
		return nil, err
	}

	if len(d.Items) == minItems+1 {
		if sig.ReturnType, err = decodeType(d.Items[3]); err != nil {
			return nil, err
		}
	}

	if !isDef {
		return &ast.FuncDecl{ASTBase: base(d), Signature: sig}, nil
	}

	body, err := decodeBlock(d.Items[len(d.Items)-1])
	if err != nil {
		return nil, err
	}

	return &ast.FuncDef{ASTBase: base(d), Signature: sig, Body: body}, nil
}

func decodeArgs(d *Datum) ([]*ast.FuncArg, error) {
	if d.Head() != "args" {
		return nil, errorAt(d, "expected (args ...)")
	}

	var args []*ast.FuncArg
	for _, ad := range d.Items[1:] {
		if ad.Head() != "arg" || (len(ad.Items) != 3 && len(ad.Items) != 4) {
			return nil, errorAt(ad, "expected (arg name type [default])")
		}

		name, err := expectSymbol(ad.Items[1], "argument name")
		if err != nil {
			return nil, err
		}

		arg := &ast.FuncArg{ASTBase: base(ad), Name: name}
		if arg.Type, err = decodeType(ad.Items[2]); err != nil {
			return nil, err
		}

		if len(ad.Items) == 4 {
			if arg.Default, err = decodeExpr(ad.Items[3]); err != nil {
				return nil, err
			}
		}

		args = append(args, arg)
	}

	return args, nil
}

// decodeType decodes a type label: a base type symbol or `(ptr T)`.
func decodeType(d *Datum) (*ast.TypeLabel, error) {
	inner, err := decodeTypeInner(d)
	if err != nil {
		return nil, err
	}

	return &ast.TypeLabel{ASTBase: base(d), Inner: inner}, nil
}

func decodeTypeInner(d *Datum) (ast.Node, error) {
	if d.Kind == DatumSymbol {
		return &ast.Ident{ASTBase: base(d), Name: d.Text}, nil
	}

	if d.Head() != "ptr" {
		return nil, errorAt(d, "expected type")
	} else if err := expectArgs(d, 1); err != nil {
		return nil, err
	}

	elem, err := decodeTypeInner(d.Items[1])
	if err != nil {
		return nil, err
	}

	return &ast.PointerLabel{ASTBase: base(d), Elem: elem}, nil
}

// -----------------------------------------------------------------------------

func decodeExprs(ds []*Datum) ([]ast.Node, error) {
	exprs := make([]ast.Node, 0, len(ds))
	for _, d := range ds {
		expr, err := decodeExpr(d)
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, expr)
	}

	return exprs, nil
}

func decodeExpr(d *Datum) (ast.Node, error) {
	if d.Kind != DatumList {
		return nil, errorAt(d, "expected expression form")
	}

	switch d.Head() {
	case "int":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		v, err := expectInteger(d.Items[1])
		if err != nil {
			return nil, err
		}

		return &ast.IntLit{ASTBase: base(d), Value: v}, nil
	case "float":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		text := d.Items[1].Text
		if k := d.Items[1].Kind; k != DatumString && k != DatumInteger {
			return nil, errorAt(d.Items[1], "expected float text")
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errorAt(d.Items[1], "invalid float %q", text)
		}

		return &ast.FloatLit{ASTBase: base(d), Value: v}, nil
	case "char":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		text, err := expectString(d.Items[1], "char")
		if err != nil {
			return nil, err
		} else if utf8.RuneCountInString(text) != 1 {
			return nil, errorAt(d.Items[1], "char literal must be exactly one character")
		}

		r, _ := utf8.DecodeRuneInString(text)
		return &ast.CharLit{ASTBase: base(d), Value: r}, nil
	case "bool":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		switch {
		case d.Items[1].IsSymbol("true"):
			return &ast.BoolLit{ASTBase: base(d), Value: true}, nil
		case d.Items[1].IsSymbol("false"):
			return &ast.BoolLit{ASTBase: base(d), Value: false}, nil
		default:
			return nil, errorAt(d.Items[1], "expected true or false")
		}
	case "string":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		text, err := expectString(d.Items[1], "string literal")
		if err != nil {
			return nil, err
		}

		return &ast.StringLit{ASTBase: base(d), Value: text}, nil
	case "ident":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		name, err := expectSymbol(d.Items[1], "identifier")
		if err != nil {
			return nil, err
		}

		return &ast.Ident{ASTBase: base(d), Name: name}, nil
	case "unary":
		if err := expectArgs(d, 2); err != nil {
			return nil, err
		}

		op, err := expectString(d.Items[1], "operator")
		if err != nil {
			return nil, err
		}

		operand, err := decodeExpr(d.Items[2])
		if err != nil {
			return nil, err
		}

		return &ast.UnaryOp{ASTBase: base(d), Op: op, Operand: operand}, nil
	case "deref":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		ptr, err := decodeExpr(d.Items[1])
		if err != nil {
			return nil, err
		}

		return &ast.Deref{ASTBase: base(d), Ptr: ptr}, nil
	case "binary":
		if err := expectArgs(d, 3); err != nil {
			return nil, err
		}

		op, err := expectString(d.Items[1], "operator")
		if err != nil {
			return nil, err
		}

		operands, err := decodeExprs(d.Items[2:])
		if err != nil {
			return nil, err
		}

		return &ast.BinaryOp{ASTBase: base(d), Op: op, Lhs: operands[0], Rhs: operands[1]}, nil
	case "paren":
		if err := expectArgs(d, 1); err != nil {
			return nil, err
		}

		inner, err := decodeExpr(d.Items[1])
		if err != nil {
			return nil, err
		}

		return &ast.Paren{ASTBase: base(d), Inner: inner}, nil
	case "cast":
		if err := expectArgs(d, 2); err != nil {
			return nil, err
		}

		src, err := decodeExpr(d.Items[1])
		if err != nil {
			return nil, err
		}

		dest, err := decodeType(d.Items[2])
		if err != nil {
			return nil, err
		}

		return &ast.TypeCast{ASTBase: base(d), Src: src, Dest: dest}, nil
	case "if-expr", "unless-expr":
		if err := expectArgs(d, 3); err != nil {
			return nil, err
		}

		operands, err := decodeExprs(d.Items[1:])
		if err != nil {
			return nil, err
		}

		return &ast.CondExpr{
			ASTBase: base(d),
			Cond:    operands[0],
			Then:    operands[1],
			Else:    operands[2],
			Unless:  d.Head() == "unless-expr",
		}, nil
	case "call":
		if len(d.Items) < 2 {
			return nil, errorAt(d, "(call ...) requires a function name")
		}

		name, err := expectSymbol(d.Items[1], "function name")
		if err != nil {
			return nil, err
		}

		args, err := decodeExprs(d.Items[2:])
		if err != nil {
			return nil, err
		}

		return &ast.Call{ASTBase: base(d), Func: name, Args: args}, nil
	case "range":
		if err := expectArgs(d, 2); err != nil {
			return nil, err
		}

		start, err := expectInteger(d.Items[1])
		if err != nil {
			return nil, err
		}

		end, err := expectInteger(d.Items[2])
		if err != nil {
			return nil, err
		}

		return &ast.Range{ASTBase: base(d), Start: start, End: end}, nil
	case "break":
		if err := expectArgs(d, 0); err != nil {
			return nil, err
		}

		return &ast.KeywordStmt{ASTBase: base(d), Keyword: ast.KeywordBreak}, nil
	case "next":
		if err := expectArgs(d, 0); err != nil {
			return nil, err
		}

		return &ast.KeywordStmt{ASTBase: base(d), Keyword: ast.KeywordNext}, nil
	default:
		return nil, errorAt(d, "unknown form (%s ...)", d.Head())
	}
}
