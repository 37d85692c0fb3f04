package walk

import (
	"tzc/ast"
	"tzc/report"
)

// walkIfStmt walks an if/unless statement with all of its branches.
func (w *Walker) walkIfStmt(ifStmt *ast.IfStmt) (ast.Node, error) {
	cond, err := w.walkCondition(ifStmt.Cond, "if/unless expects a bool operation")
	if err != nil {
		return nil, err
	}

	if err := w.walkBlock(ifStmt.Body); err != nil {
		return nil, err
	}

	for _, elsif := range ifStmt.Elsifs {
		if elsif.Cond, err = w.walkCondition(elsif.Cond, "elsif expects a bool operation"); err != nil {
			return nil, err
		}

		if err := w.walkBlock(elsif.Body); err != nil {
			return nil, err
		}
	}

	if ifStmt.Else != nil {
		if err := w.walkBlock(ifStmt.Else); err != nil {
			return nil, err
		}
	}

	return &ast.If{
		ASTBase: ast.NewASTBaseOn(ifStmt.Span()),
		Cond:    cond,
		Body:    ifStmt.Body,
		Unless:  ifStmt.Unless,
		Elsifs:  ifStmt.Elsifs,
		Else:    ifStmt.Else,
	}, nil
}

// walkWhileLoop walks a while, until or infinite loop.
func (w *Walker) walkWhileLoop(loop *ast.WhileLoop) (ast.Node, error) {
	var cond ast.Node
	if !loop.Infinite {
		var err error
		if cond, err = w.walkCondition(loop.Cond, "while/until expects a bool operation"); err != nil {
			return nil, err
		}
	}

	if err := w.walkBlock(loop.Body); err != nil {
		return nil, err
	}

	return &ast.While{
		ASTBase:  ast.NewASTBaseOn(loop.Span()),
		Cond:     cond,
		Body:     loop.Body,
		Until:    loop.Until,
		Infinite: loop.Infinite,
	}, nil
}

// walkForLoop walks a for loop.  Only a single range with a single capture
// variable can be iterated over.
func (w *Walker) walkForLoop(loop *ast.ForLoop) (ast.Node, error) {
	if len(loop.Iters) != 1 {
		return nil, w.error(report.KindForLoop, loop.Span(), "for loop can (rn) take only range")
	}

	rng, ok := loop.Iters[0].(*ast.Range)
	if !ok {
		return nil, w.error(report.KindForLoop, loop.Iters[0].Span(), "for loop can (rn) take only range")
	}

	if len(loop.Payloads) != 1 {
		return nil, w.error(report.KindForLoop, loop.Span(), "range has only 1 payload")
	}

	if rng.Start >= rng.End {
		return nil, w.error(
			report.KindForLoop,
			rng.Span(),
			"invalid range: start must be lower than end, got %d..%d",
			rng.Start,
			rng.End,
		)
	}

	rv, err := w.walkRange(rng)
	if err != nil {
		return nil, err
	}

	iter := &ast.Variable{Name: loop.Payloads[0], Type: rv.Result, DefSpan: loop.Span()}

	// The body frame is seeded with the capture variable.
	w.pushScope()
	w.defineFresh(iter)
	err = w.walkStmts(loop.Body.Stmts)
	w.popScope()

	if err != nil {
		return nil, err
	}

	return &ast.For{
		ASTBase: ast.NewASTBaseOn(loop.Span()),
		Range:   rv,
		Iter:    iter,
		Body:    loop.Body,
	}, nil
}
