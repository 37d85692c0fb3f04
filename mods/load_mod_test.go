package mods

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"tzc/common"
	"tzc/types"
)

func writeModuleFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(content), 0644)
	be.Err(t, err, nil)

	return dir
}

func TestInitThenLoad(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, InitModule("hello", dir), nil)

	mod, err := LoadModule(dir)
	be.Err(t, err, nil)
	be.Equal(t, mod.Name, "hello")
	be.Equal(t, mod.Target, types.DefaultTarget)
	be.True(t, !mod.WarningsAsErrors)
	be.Equal(t, len(mod.Warnings), 0)
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, InitModule("hello", dir), nil)

	err := InitModule("again", dir)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "already exists"))
}

func TestInitInvalidName(t *testing.T) {
	err := InitModule("9lives", t.TempDir())
	be.True(t, err != nil)
}

func TestLoadPartialTarget(t *testing.T) {
	dir := writeModuleFile(t, `
[module]
name = "small"
tz-version = "0.0.1"

[target]
pointer-size = 4
long = 4

[analysis]
warnings-as-errors = true
`)

	mod, err := LoadModule(dir)
	be.Err(t, err, nil)
	be.Equal(t, mod.Target.PointerSize, 4)
	be.Equal(t, mod.Target.Long, 4)
	be.Equal(t, mod.Target.Int, types.DefaultTarget.Int)
	be.True(t, mod.WarningsAsErrors)

	be.Equal(t, len(mod.Warnings), 1)
	be.True(t, strings.Contains(mod.Warnings[0], "does not match current tzc version"))
}

func TestLoadInvalidModules(t *testing.T) {
	files := map[string]string{
		"missing name":     "[module]\ntz-version = \"0.1.0\"\n",
		"invalid name":     "[module]\nname = \"a-b\"\n",
		"bad pointer size": "[module]\nname = \"a\"\n[target]\npointer-size = 2\n",
		"negative size":    "[module]\nname = \"a\"\n[target]\nint = -4\n",
		"bad toml":         "[module\n",
	}

	for name, content := range files {
		if _, err := LoadModule(writeModuleFile(t, content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadModule(t.TempDir())
	be.True(t, err != nil)
}
