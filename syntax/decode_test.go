package syntax

import (
	"testing"

	"github.com/nalgeon/be"

	"tzc/ast"
)

func TestDecodeFunctions(t *testing.T) {
	prog, err := ReadTree(`
(program
  (fn-decl ^{variadic: true, foreign: true} printf (args (arg fmt (ptr u8))) i32)
  (fn add (args (arg a i32) (arg b i32 (int 1))) i32
    (block (return (binary "+" (ident a) (ident b)))))
  (fn main (args) (block)))`)
	be.Err(t, err, nil)
	be.Equal(t, len(prog.Stmts), 3)

	decl, ok := prog.Stmts[0].(*ast.FuncDecl)
	be.True(t, ok)
	be.Equal(t, decl.Name, "printf")
	be.True(t, decl.Variadic)
	be.True(t, decl.Foreign)
	be.Equal(t, len(decl.Args), 1)

	ptr, ok := decl.Args[0].Type.Inner.(*ast.PointerLabel)
	be.True(t, ok)
	be.Equal(t, ptr.Elem.(*ast.Ident).Name, "u8")

	add, ok := prog.Stmts[1].(*ast.FuncDef)
	be.True(t, ok)
	be.True(t, !add.Variadic)
	be.Equal(t, add.ReturnType.Inner.(*ast.Ident).Name, "i32")
	be.Equal(t, add.Args[1].Default.(*ast.IntLit).Value, int64(1))

	ret, ok := add.Body.Stmts[0].(*ast.ReturnStmt)
	be.True(t, ok)
	be.Equal(t, ret.Value.(*ast.BinaryOp).Op, "+")

	main, ok := prog.Stmts[2].(*ast.FuncDef)
	be.True(t, ok)
	be.True(t, main.ReturnType == nil)
	be.Equal(t, len(main.Body.Stmts), 0)
}

func TestDecodeStatements(t *testing.T) {
	prog, err := ReadTree(`
(program
  (decl x i32)
  (let y (int 5))
  (let z i64 (ident y))
  (assign "+=" (ident x) (int 2))
  (if (bool true) (block (break))
    (elsif (bool false) (block (next)))
    (else (block)))
  (until (bool true) (block))
  (loop (block))
  (for [(range 1 10)] [i] (block)))`)
	be.Err(t, err, nil)
	be.Equal(t, len(prog.Stmts), 8)

	_, ok := prog.Stmts[0].(*ast.VarDecl)
	be.True(t, ok)

	y := prog.Stmts[1].(*ast.VarDef)
	be.True(t, y.Type == nil)

	z := prog.Stmts[2].(*ast.VarDef)
	be.Equal(t, z.Type.Inner.(*ast.Ident).Name, "i64")

	as := prog.Stmts[3].(*ast.Assignment)
	be.Equal(t, as.Op, "+=")

	is := prog.Stmts[4].(*ast.IfStmt)
	be.True(t, !is.Unless)
	be.Equal(t, len(is.Elsifs), 1)
	be.True(t, is.Else != nil)
	be.Equal(t, is.Body.Stmts[0].(*ast.KeywordStmt).Keyword, ast.KeywordBreak)

	until := prog.Stmts[5].(*ast.WhileLoop)
	be.True(t, until.Until)
	be.True(t, !until.Infinite)

	loop := prog.Stmts[6].(*ast.WhileLoop)
	be.True(t, loop.Infinite)
	be.True(t, loop.Cond == nil)

	fl := prog.Stmts[7].(*ast.ForLoop)
	be.Equal(t, len(fl.Iters), 1)
	be.Equal(t, fl.Payloads[0], "i")
	be.Equal(t, fl.Iters[0].(*ast.Range).End, int64(10))
}

func TestDecodeExpressions(t *testing.T) {
	prog, err := ReadTree(`
(program
  (let a (float "2.5"))
  (let b (char "c"))
  (let c (string "hi"))
  (let d (unary "&" (ident a)))
  (let e (deref (ident d)))
  (let f (cast (paren (ident a)) f64))
  (let g (unless-expr (bool true) (int 1) (int 2)))
  (let h (call add (int 1))))`)
	be.Err(t, err, nil)

	init := func(i int) ast.Node {
		return prog.Stmts[i].(*ast.VarDef).Init
	}

	be.Equal(t, init(0).(*ast.FloatLit).Value, 2.5)
	be.Equal(t, init(1).(*ast.CharLit).Value, 'c')
	be.Equal(t, init(2).(*ast.StringLit).Value, "hi")
	be.Equal(t, init(3).(*ast.UnaryOp).Op, "&")

	_, ok := init(4).(*ast.Deref)
	be.True(t, ok)

	cast := init(5).(*ast.TypeCast)
	_, ok = cast.Src.(*ast.Paren)
	be.True(t, ok)

	be.True(t, init(6).(*ast.CondExpr).Unless)

	call := init(7).(*ast.Call)
	be.Equal(t, call.Func, "add")
	be.Equal(t, len(call.Args), 1)
}

func TestDecodeSpans(t *testing.T) {
	prog, err := ReadTree("(program\n  (decl ^{line: 4, col: 2, end-col: 8} x i32)\n  (decl y i32))")
	be.Err(t, err, nil)

	span := prog.Stmts[0].Span()
	be.Equal(t, span.StartLine, 3)
	be.Equal(t, span.StartCol, 1)
	be.Equal(t, span.EndCol, 7)

	// Without metadata the span is the position in the tree text.
	span = prog.Stmts[1].Span()
	be.Equal(t, span.StartLine, 2)
	be.Equal(t, span.StartCol, 2)
}

func TestDecodeErrors(t *testing.T) {
	inputs := []string{
		"(block)",
		"(program (frobnicate))",
		"(program (int))",
		"(program (int 99999999999999999999))",
		"(program (char \"ab\"))",
		"(program (bool maybe))",
		"(program (let x))",
		"(program (if (bool true) (block) (else (block)) (elsif (bool true) (block))))",
		"(program (for (range 1 2) [i] (block)))",
		"(program (fn f (args (arg x)) (block)))",
		"(program (decl x (ref i32)))",
		"(program ident)",
	}

	for _, input := range inputs {
		_, err := ReadTree(input)
		be.True(t, err != nil)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	input := `(program
  (fn-decl ^{variadic: true} printf (args (arg fmt (ptr u8))) i32)
  (fn main (args) i32
    (block
      (let x (binary "*" (int 3) (paren (unary "-" (int 2)))))
      (if (binary "==" (ident x) (int 0)) (block (return (int 1))) (else (block)))
      (while (bool true) (block (break)))
      (for [(range 1 3)] [i] (block (call printf (string "%d") (ident i))))
      (return (cast (ident x) i32)))))`

	prog, err := ReadTree(input)
	be.Err(t, err, nil)

	want, err := ReadDatum(input)
	be.Err(t, err, nil)
	be.Equal(t, Encode(prog).String(), want.String())
}
