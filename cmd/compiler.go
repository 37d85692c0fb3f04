package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kr/pretty"

	"tzc/common"
	"tzc/mods"
	"tzc/report"
	"tzc/syntax"
	"tzc/types"
	"tzc/walk"
)

// Compiler represents the state of one compilation: a single syntax tree
// analyzed for a single target.
type Compiler struct {
	// treeAbsPath is the absolute path to the syntax tree file.
	treeAbsPath string

	// reprPath is the path to the tree file displayed to the user.
	reprPath string

	// mod is the module the tree belongs to.  It is nil if there is no module
	// file, in which case the default target is used.
	mod *mods.Module

	// analysis is the result of the last run of Analyze.
	analysis *walk.Analysis
}

// NewCompiler creates a new compiler for the tree at treePath.  If modDir is
// empty, the module file is looked up in the directory of the tree file: a
// missing module file there is not an error.
func NewCompiler(treePath, modDir string) (*Compiler, error) {
	treeAbsPath, err := filepath.Abs(treePath)
	if err != nil {
		return nil, fmt.Errorf("error calculating absolute path: %w", err)
	}

	c := &Compiler{treeAbsPath: treeAbsPath, reprPath: filepath.Base(treeAbsPath)}

	if modDir == "" {
		modDir = filepath.Dir(treeAbsPath)

		_, err := os.Stat(filepath.Join(modDir, common.ModuleFileName))
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
	}

	if c.mod, err = mods.LoadModule(modDir); err != nil {
		return nil, err
	}

	c.reprPath = fmt.Sprintf("[%s] %s", c.mod.Name, c.reprPath)
	report.ReportInfo("Module", fmt.Sprintf("%s (pointer size %d)", c.mod.Name, c.mod.Target.PointerSize))
	for _, warning := range c.mod.Warnings {
		report.ReportModuleWarning(c.mod.Name, warning)
	}

	return c, nil
}

// Target returns the target the tree is analyzed for.
func (c *Compiler) Target() types.Target {
	if c.mod == nil {
		return types.DefaultTarget
	}

	return c.mod.Target
}

// Analyze reads and analyzes the syntax tree, reporting all warnings and the
// fatal error if there is one.  It returns whether the tree is free of errors.
func (c *Compiler) Analyze() bool {
	report.ReportBeginPhase("Analyzing")

	buff, err := os.ReadFile(c.treeAbsPath)
	if err != nil {
		report.ReportStdError(c.reprPath, err)
		return false
	}

	prog, err := syntax.ReadTree(string(buff))
	if err != nil {
		report.ReportStdError(c.reprPath, err)
		return false
	}

	c.analysis, err = walk.Analyze(prog, c.Target())
	if err != nil {
		if kind, ok := report.KindOf(err); ok && kind == report.KindInternal {
			report.ReportICE("%s", err.Error())
		}

		report.ReportError(c.reprPath, c.treeAbsPath, err)
	} else {
		report.ReportEndPhase()
	}

	// the phase spinner is stopped before any warnings are displayed
	for _, warning := range c.analysis.Warnings {
		report.ReportCompileWarning(c.reprPath, c.treeAbsPath, warning.Span, warning.Kind, warning.Message)
	}

	if err != nil {
		return false
	}

	if c.mod != nil && c.mod.WarningsAsErrors && len(c.analysis.Warnings) > 0 {
		report.ReportStdError(c.reprPath, fmt.Errorf("%d warnings treated as errors", len(c.analysis.Warnings)))
		return false
	}

	return true
}

// Dump writes the analyzed tree to w: as s-expressions, or as Go values if
// asGo is set.  Analyze must be run before this.
func (c *Compiler) Dump(w io.Writer, asGo bool) {
	if asGo {
		pretty.Fprintf(w, "%# v\n", c.analysis.Program)
	} else {
		fmt.Fprintln(w, syntax.Encode(c.analysis.Program).String())
	}
}
