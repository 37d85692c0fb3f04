package walk

import (
	"tzc/ast"
	"tzc/common"
	"tzc/report"
	"tzc/types"
)

// Enumeration of the analysis states.  Analysis always moves forward through
// them in order.
const (
	stateInit = iota
	stateGlobals
	stateMainBody
	stateDrainQueue
	stateDone
)

// Analysis is the result of analyzing a program.
type Analysis struct {
	// The program with every semantic node replaced by its analyzed form.
	Program *ast.Program

	// The function records in the order they were first seen.
	Functions []*ast.Function

	// The narrowing warnings collected during analysis.
	Warnings []*report.CompileError
}

// Analyze performs semantic analysis on a program for a target.  The returned
// analysis is never nil: on error it holds the warnings collected before
// analysis stopped.
func Analyze(prog *ast.Program, target types.Target) (*Analysis, error) {
	return NewWalker(target).Analyze(prog)
}

// Analyze runs the analysis state machine over a program.
func (w *Walker) Analyze(prog *ast.Program) (*Analysis, error) {
	var err error
	for state := stateInit; state != stateDone && err == nil; state++ {
		switch state {
		case stateInit:
			w.seedBuiltins()
		case stateGlobals:
			err = w.walkGlobals(prog)
		case stateMainBody:
			err = w.walkMain()
		case stateDrainQueue:
			err = w.drainQueue()
		}
	}

	return &Analysis{Program: prog, Functions: w.funcOrder, Warnings: w.warnings}, err
}

// seedBuiltins fills the type store and pushes the global frame.
func (w *Walker) seedBuiltins() {
	for _, typ := range types.Builtins(w.target) {
		w.typeStore.Set(typ.Name, typ)
	}

	w.pushScope()
}

// walkGlobals walks every top-level statement in source order.
func (w *Walker) walkGlobals(prog *ast.Program) error {
	for i, stmt := range prog.Stmts {
		analyzed, err := w.walkGlobal(stmt)
		if err != nil {
			return err
		}

		prog.Stmts[i] = analyzed
	}

	return nil
}

// walkMain analyzes the body of the entry point.
func (w *Walker) walkMain() error {
	mainFn, ok := w.funcStore.Get(common.EntryFuncName)
	if !ok {
		return w.error(report.KindMissingEntrypoint, nil, "entrypoint is missing function %s", common.EntryFuncName)
	}

	if mainFn.Body == nil {
		return w.error(
			report.KindMissingEntrypoint,
			mainFn.DefSpan,
			"entrypoint function %s is declared but never defined",
			common.EntryFuncName,
		)
	}

	return w.walkFuncBody(mainFn)
}

// drainQueue analyzes the body of every called function.  Analyzing a body
// may queue more functions: the loop runs until no unchecked function is
// left.
func (w *Walker) drainQueue() error {
	for {
		name, ok := w.queue.Pop()
		if !ok {
			return nil
		}

		fn, ok := w.funcStore.Get(name)
		if !ok {
			return w.error(report.KindInternal, nil, "queued function %s is not in the function store", name)
		} else if fn.Checked {
			continue
		}

		if err := w.walkFuncBody(fn); err != nil {
			return err
		}
	}
}

// walkFuncBody analyzes a function's body in a frame seeded with its
// parameters and marks the function checked.  Functions without a body are
// only marked checked.
func (w *Walker) walkFuncBody(fn *ast.Function) error {
	if fn.Body == nil {
		fn.Checked = true
		return nil
	}

	w.pushScope()
	defer w.popScope()

	for _, arg := range fn.Args {
		w.defineFresh(&ast.Variable{
			Name:          arg.Name,
			Type:          arg.Type,
			Value:         arg.Default,
			IsDeclaration: arg.Default == nil,
			DefSpan:       fn.DefSpan,
		})
	}

	w.enclosingFunc = fn
	defer func() { w.enclosingFunc = nil }()

	if err := w.walkStmts(fn.Body.Stmts); err != nil {
		return err
	}

	fn.Checked = true
	return nil
}
