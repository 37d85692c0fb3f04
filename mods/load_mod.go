package mods

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"tzc/common"
	"tzc/types"
	"tzc/util"
)

// Module is a loaded and validated Tanzanite module.
type Module struct {
	// The name of the module.
	Name string

	// The absolute path to the module directory.
	AbsPath string

	// The target the module is analyzed for.
	Target types.Target

	// Whether warnings should fail a check.
	WarningsAsErrors bool

	// The non-fatal problems found in the module file.
	Warnings []string
}

// tomlModule represents a module file as it is encoded in TOML.
type tomlModule struct {
	Module   tomlModuleInfo `toml:"module"`
	Target   tomlTarget     `toml:"target"`
	Analysis tomlAnalysis   `toml:"analysis"`
}

type tomlModuleInfo struct {
	Name      string `toml:"name"`
	TzVersion string `toml:"tz-version"`
}

type tomlTarget struct {
	PointerSize int `toml:"pointer-size"`
	Char        int `toml:"char"`
	Short       int `toml:"short"`
	Int         int `toml:"int"`
	Long        int `toml:"long"`
	SizeT       int `toml:"size-t"`
	Float       int `toml:"float"`
	Double      int `toml:"double"`
}

type tomlAnalysis struct {
	WarningsAsErrors bool `toml:"warnings-as-errors"`
}

// LoadModule loads and validates the module in the directory dir.
func LoadModule(dir string) (*Module, error) {
	abspath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	buff, err := os.ReadFile(filepath.Join(abspath, common.ModuleFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open module file at `%s`: %w", abspath, err)
	}

	tomlMod := &tomlModule{}
	if err := toml.Unmarshal(buff, tomlMod); err != nil {
		return nil, fmt.Errorf("error parsing module file at `%s`: %w", abspath, err)
	}

	mod := &Module{AbsPath: abspath}
	if err := validateModule(mod, tomlMod); err != nil {
		return nil, err
	}

	return mod, nil
}

// validateModule checks that the module file contents are valid and moves
// them over to the module.
func validateModule(mod *Module, tomlMod *tomlModule) error {
	if tomlMod.Module.Name == "" {
		return fmt.Errorf("module at `%s`: missing module name", mod.AbsPath)
	}

	if !util.IsValidIdentifier(tomlMod.Module.Name) {
		return fmt.Errorf("module at `%s`: module name must be a valid identifier", mod.AbsPath)
	}

	if tomlMod.Module.TzVersion != common.Version {
		mod.Warnings = append(mod.Warnings, fmt.Sprintf(
			"version of module `%s` (v%s) does not match current tzc version (v%s)",
			tomlMod.Module.Name,
			tomlMod.Module.TzVersion,
			common.Version,
		))
	}

	target := tomlMod.Target.toTarget()
	if err := target.Validate(); err != nil {
		return fmt.Errorf("module `%s`: invalid target: %w", tomlMod.Module.Name, err)
	}

	mod.Name = tomlMod.Module.Name
	mod.Target = target
	mod.WarningsAsErrors = tomlMod.Analysis.WarningsAsErrors

	return nil
}

// toTarget converts the target table to a target.  Sizes that are not given
// take their value from the default target.
func (tt tomlTarget) toTarget() types.Target {
	pick := func(size, dflt int) int {
		if size == 0 {
			return dflt
		}

		return size
	}

	dt := types.DefaultTarget
	return types.Target{
		PointerSize: pick(tt.PointerSize, dt.PointerSize),
		Char:        pick(tt.Char, dt.Char),
		Short:       pick(tt.Short, dt.Short),
		Int:         pick(tt.Int, dt.Int),
		Long:        pick(tt.Long, dt.Long),
		SizeT:       pick(tt.SizeT, dt.SizeT),
		Float:       pick(tt.Float, dt.Float),
		Double:      pick(tt.Double, dt.Double),
	}
}

// -----------------------------------------------------------------------------

// InitModule creates a new module file named name in the directory dir.  It
// fails if the directory already holds a module file.
func InitModule(name, dir string) error {
	if !util.IsValidIdentifier(name) {
		return fmt.Errorf("module name `%s` must be a valid identifier", name)
	}

	path := filepath.Join(dir, common.ModuleFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("module file already exists at `%s`", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	dt := types.DefaultTarget
	buff, err := toml.Marshal(tomlModule{
		Module: tomlModuleInfo{Name: name, TzVersion: common.Version},
		Target: tomlTarget{
			PointerSize: dt.PointerSize,
			Char:        dt.Char,
			Short:       dt.Short,
			Int:         dt.Int,
			Long:        dt.Long,
			SizeT:       dt.SizeT,
			Float:       dt.Float,
			Double:      dt.Double,
		},
	})
	if err != nil {
		return fmt.Errorf("error encoding module file: %w", err)
	}

	return os.WriteFile(path, buff, 0644)
}
