package syntax

import (
	"fmt"
	"strconv"

	"tzc/ast"
	"tzc/types"
	"tzc/util"
)

// Encode renders a tree, analyzed or not, in s-expression form.  Syntax nodes
// encode as the forms ReadTree accepts; analyzed nodes carry their result
// types: eg. `(value i8 (int 5))`.
func Encode(node ast.Node) *Datum {
	switch v := node.(type) {
	case nil:
		return Symbol("nil")
	case *ast.Program:
		return List(append([]*Datum{Symbol("program")}, encodeAll(v.Stmts)...)...)
	case *ast.Block:
		return encodeBlock(v)

	// Literals and syntax expressions.
	case *ast.IntLit:
		return List(Symbol("int"), Integer(v.Value))
	case *ast.FloatLit:
		return List(Symbol("float"), String(strconv.FormatFloat(v.Value, 'g', -1, 64)))
	case *ast.CharLit:
		return List(Symbol("char"), String(string(v.Value)))
	case *ast.BoolLit:
		return List(Symbol("bool"), Symbol(strconv.FormatBool(v.Value)))
	case *ast.StringLit:
		return List(Symbol("string"), String(v.Value))
	case *ast.Ident:
		return List(Symbol("ident"), Symbol(v.Name))
	case *ast.UnaryOp:
		return List(Symbol("unary"), String(v.Op), Encode(v.Operand))
	case *ast.Deref:
		return List(Symbol("deref"), Encode(v.Ptr))
	case *ast.BinaryOp:
		return List(Symbol("binary"), String(v.Op), Encode(v.Lhs), Encode(v.Rhs))
	case *ast.Paren:
		return List(Symbol("paren"), Encode(v.Inner))
	case *ast.TypeCast:
		return List(Symbol("cast"), Encode(v.Src), encodeLabel(v.Dest.Inner))
	case *ast.CondExpr:
		head := "if-expr"
		if v.Unless {
			head = "unless-expr"
		}

		return List(Symbol(head), Encode(v.Cond), Encode(v.Then), Encode(v.Else))
	case *ast.Call:
		return List(append([]*Datum{Symbol("call"), Symbol(v.Func)}, encodeAll(v.Args)...)...)
	case *ast.Range:
		return List(Symbol("range"), Integer(v.Start), Integer(v.End))
	case *ast.KeywordStmt:
		return List(Symbol(v.Keyword))

	// Syntax statements.
	case *ast.VarDecl:
		return List(Symbol("decl"), Symbol(v.Name), encodeLabel(v.Type.Inner))
	case *ast.VarDef:
		if v.Type == nil {
			return List(Symbol("let"), Symbol(v.Name), Encode(v.Init))
		}

		return List(Symbol("let"), Symbol(v.Name), encodeLabel(v.Type.Inner), Encode(v.Init))
	case *ast.Assignment:
		return List(Symbol("assign"), String(v.Op), Encode(v.Lhs), Encode(v.Rhs))
	case *ast.ReturnStmt:
		if v.Value == nil {
			return List(Symbol("return"))
		}

		return List(Symbol("return"), Encode(v.Value))
	case *ast.IfStmt:
		return encodeIf(v.Unless, v.Cond, v.Body, v.Elsifs, v.Else)
	case *ast.WhileLoop:
		return encodeWhile(v.Infinite, v.Until, v.Cond, v.Body)
	case *ast.ForLoop:
		payloads := make([]*Datum, len(v.Payloads))
		for i, name := range v.Payloads {
			payloads[i] = Symbol(name)
		}

		return List(Symbol("for"), Array(encodeAll(v.Iters)...), Array(payloads...), encodeBlock(v.Body))
	case *ast.FuncDecl:
		return encodeSignature("fn-decl", &v.Signature, nil)
	case *ast.FuncDef:
		return encodeSignature("fn", &v.Signature, v.Body)

	// Analyzed nodes.
	case *ast.Value:
		return List(Symbol("value"), EncodeType(v.Result), Encode(v.Lit))
	case *ast.Operation:
		if v.Lhs == nil {
			return List(Symbol("op"), EncodeType(v.Result), String(v.Op), Encode(v.Rhs))
		}

		return List(Symbol("op"), EncodeType(v.Result), String(v.Op), Encode(v.Lhs), Encode(v.Rhs))
	case *ast.Cast:
		head := "cast"
		if v.Implicit {
			head = "implicit-cast"
		}

		return List(Symbol(head), EncodeType(v.Result), Encode(v.Src))
	case *ast.CondValue:
		head := "if-value"
		if v.Unless {
			head = "unless-value"
		}

		return List(Symbol(head), EncodeType(v.Result), Encode(v.Cond), Encode(v.Then), Encode(v.Else))
	case *ast.FuncCall:
		items := []*Datum{Symbol("call"), EncodeType(v.Type()), Symbol(v.Func.Name)}
		return List(append(items, encodeAll(v.Args)...)...)
	case *ast.RangeValue:
		return List(Symbol("range"), EncodeType(v.Result), Integer(v.Start), Integer(v.End))
	case *ast.Var:
		return encodeVariable(v.Sym)
	case *ast.Func:
		return encodeFunction(v.Fn, v.Declaration)
	case *ast.If:
		return encodeIf(v.Unless, v.Cond, v.Body, v.Elsifs, v.Else)
	case *ast.While:
		return encodeWhile(v.Infinite, v.Until, v.Cond, v.Body)
	case *ast.For:
		return List(Symbol("for"), Encode(v.Range), encodeVariable(v.Iter), encodeBlock(v.Body))
	default:
		return Symbol(fmt.Sprintf("unknown-%T", node))
	}
}

// EncodeType renders a type as a base type symbol wrapped in one `(ptr ...)`
// per level of indirection.
func EncodeType(typ types.Type) *Datum {
	d := Symbol(typ.Name)
	for i := 0; i < typ.PointerDepth; i++ {
		d = List(Symbol("ptr"), d)
	}

	return d
}

func encodeAll(nodes []ast.Node) []*Datum {
	return util.Map(nodes, Encode)
}

func encodeBlock(b *ast.Block) *Datum {
	return List(append([]*Datum{Symbol("block")}, encodeAll(b.Stmts)...)...)
}

func encodeLabel(inner ast.Node) *Datum {
	switch v := inner.(type) {
	case *ast.Ident:
		return Symbol(v.Name)
	case *ast.PointerLabel:
		return List(Symbol("ptr"), encodeLabel(v.Elem))
	default:
		return Encode(inner)
	}
}

func encodeIf(unless bool, cond ast.Node, body *ast.Block, elsifs []*ast.Elsif, elseBlock *ast.Block) *Datum {
	head := "if"
	if unless {
		head = "unless"
	}

	items := []*Datum{Symbol(head), Encode(cond), encodeBlock(body)}
	for _, elsif := range elsifs {
		items = append(items, List(Symbol("elsif"), Encode(elsif.Cond), encodeBlock(elsif.Body)))
	}

	if elseBlock != nil {
		items = append(items, List(Symbol("else"), encodeBlock(elseBlock)))
	}

	return List(items...)
}

func encodeWhile(infinite, until bool, cond ast.Node, body *ast.Block) *Datum {
	switch {
	case infinite:
		return List(Symbol("loop"), encodeBlock(body))
	case until:
		return List(Symbol("until"), Encode(cond), encodeBlock(body))
	default:
		return List(Symbol("while"), Encode(cond), encodeBlock(body))
	}
}

func encodeFlags(d *Datum, variadic, foreign bool) *Datum {
	if variadic {
		d.MetaKeys = append(d.MetaKeys, "variadic")
		d.MetaItems = append(d.MetaItems, Symbol("true"))
	}

	if foreign {
		d.MetaKeys = append(d.MetaKeys, "foreign")
		d.MetaItems = append(d.MetaItems, Symbol("true"))
	}

	return d
}

func encodeSignature(head string, sig *ast.Signature, body *ast.Block) *Datum {
	args := []*Datum{Symbol("args")}
	for _, arg := range sig.Args {
		ad := List(Symbol("arg"), Symbol(arg.Name), encodeLabel(arg.Type.Inner))
		if arg.Default != nil {
			ad.Items = append(ad.Items, Encode(arg.Default))
		}

		args = append(args, ad)
	}

	items := []*Datum{Symbol(head), Symbol(sig.Name), List(args...)}
	if sig.ReturnType != nil {
		items = append(items, encodeLabel(sig.ReturnType.Inner))
	}

	if body != nil {
		items = append(items, encodeBlock(body))
	}

	return encodeFlags(List(items...), sig.Variadic, sig.Foreign)
}

// encodeVariable renders `(var name T [value])`.
func encodeVariable(sym *ast.Variable) *Datum {
	d := List(Symbol("var"), Symbol(sym.Name), EncodeType(sym.Type))
	if sym.Value != nil {
		d.Items = append(d.Items, Encode(sym.Value))
	}

	return d
}

// encodeFunction renders `(function name T (params ...) [(block ...)])`, or
// `(function-decl ...)` for a prototype.
func encodeFunction(fn *ast.Function, declaration bool) *Datum {
	params := []*Datum{Symbol("params")}
	for _, arg := range fn.Args {
		pd := List(Symbol("param"), Symbol(arg.Name), EncodeType(arg.Type))
		if arg.Default != nil {
			pd.Items = append(pd.Items, Encode(arg.Default))
		}

		params = append(params, pd)
	}

	head := "function"
	if declaration {
		head = "function-decl"
	}

	items := []*Datum{Symbol(head), Symbol(fn.Name), EncodeType(fn.ReturnType), List(params...)}
	if !declaration && fn.Body != nil {
		items = append(items, encodeBlock(fn.Body))
	}

	return encodeFlags(List(items...), fn.Variadic, fn.Foreign)
}
