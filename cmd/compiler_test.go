package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"tzc/common"
	"tzc/report"
	"tzc/types"
)

func TestMain(m *testing.M) {
	report.InitReporter(report.LogLevelSilent)
	os.Exit(m.Run())
}

func writeTree(t *testing.T, dir, tree string) string {
	t.Helper()

	path := filepath.Join(dir, "main"+common.TreeFileExt)
	be.Err(t, os.WriteFile(path, []byte(tree), 0644), nil)

	return path
}

func TestCompilerWithoutModule(t *testing.T) {
	path := writeTree(t, t.TempDir(), `(program (fn main (args) (block (let x (int 5)))))`)

	c, err := NewCompiler(path, "")
	be.Err(t, err, nil)
	be.Equal(t, c.Target(), types.DefaultTarget)
	be.True(t, c.Analyze())

	var sb strings.Builder
	c.Dump(&sb, false)
	be.Equal(t, sb.String(), "(program (function main void (params) (block (var x i8 (value i8 (int 5))))))\n")

	sb.Reset()
	c.Dump(&sb, true)
	be.True(t, strings.Contains(sb.String(), "ast.Program"))
}

func TestCompilerUsesModuleTarget(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(`
[module]
name = "small"
tz-version = "`+common.Version+`"

[target]
pointer-size = 4
`), 0644)
	be.Err(t, err, nil)

	path := writeTree(t, dir, `(program (fn main (args) (block (let s (unary "sizeof" (int 1))))))`)

	c, err := NewCompiler(path, "")
	be.Err(t, err, nil)
	be.Equal(t, c.Target().PointerSize, 4)
	be.True(t, c.Analyze())

	var sb strings.Builder
	c.Dump(&sb, false)
	be.True(t, strings.Contains(sb.String(), "(var s usize"))
}

func TestCompilerReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeTree(t, dir, `(program (fn main (args) (block (if (int 1) (block)))))`)

	c, err := NewCompiler(path, "")
	be.Err(t, err, nil)
	be.True(t, !c.Analyze())
	be.True(t, report.AnyErrors())
}

func TestCompilerWarningsAsErrors(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(`
[module]
name = "strict"
tz-version = "`+common.Version+`"

[analysis]
warnings-as-errors = true
`), 0644)
	be.Err(t, err, nil)

	path := writeTree(t, t.TempDir(), `(program (fn main (args) (block (let b i8 (int 1000)))))`)

	c, err := NewCompiler(path, dir)
	be.Err(t, err, nil)
	be.True(t, !c.Analyze())
	be.Equal(t, len(c.analysis.Warnings), 1)
}

func TestCompilerBadTree(t *testing.T) {
	path := writeTree(t, t.TempDir(), `(program (fn main`)

	c, err := NewCompiler(path, "")
	be.Err(t, err, nil)
	be.True(t, !c.Analyze())
}

func TestCompilerBadModuleDir(t *testing.T) {
	path := writeTree(t, t.TempDir(), `(program)`)

	_, err := NewCompiler(path, t.TempDir())
	be.True(t, err != nil)
}
