package walk

import (
	"tzc/ast"
	"tzc/report"
)

// walkCall walks a call, binding its arguments to the callee's parameters.
// The callee is queued for analysis every time it is called.
func (w *Walker) walkCall(call *ast.Call) (ast.Node, error) {
	fn, ok := w.funcStore.Get(call.Func)
	if !ok {
		return nil, w.error(report.KindUnknownFunction, call.Span(), "call to unknown function %s", call.Func)
	}

	declared, provided := len(fn.Args), len(call.Args)

	limit := declared
	if fn.Variadic {
		limit = max(provided, declared)
	}

	if provided > limit {
		return nil, w.error(
			report.KindArgumentCount,
			call.Span(),
			"too many arguments in call to %s: expected %d, got %d",
			fn.Name,
			declared,
			provided,
		)
	}

	args := make([]ast.Node, 0, limit)
	for i, arg := range call.Args {
		analyzed, err := w.walkExpr(arg)
		if err != nil {
			return nil, err
		}

		// Variadic overflow arguments are passed as is.
		if i < declared {
			if analyzed, err = w.implicitCast(analyzed, fn.Args[i].Type); err != nil {
				return nil, err
			}
		}

		args = append(args, analyzed)
	}

	for i := provided; i < limit; i++ {
		if fn.Args[i].Default == nil {
			return nil, w.error(
				report.KindArgumentCount,
				call.Span(),
				"function %s requires %d arguments, got %d",
				fn.Name,
				requiredArgs(fn),
				provided,
			)
		}

		args = append(args, fn.Args[i].Default)
	}

	w.queue.Push(fn.Name)

	return &ast.FuncCall{ASTBase: ast.NewASTBaseOn(call.Span()), Func: fn, Args: args}, nil
}

// requiredArgs returns the number of arguments a call to fn must provide:
// the index one past the last parameter without a default.
func requiredArgs(fn *ast.Function) int {
	for i := len(fn.Args) - 1; i > -1; i-- {
		if fn.Args[i].Default == nil {
			return i + 1
		}
	}

	return 0
}
