package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"tzc/common"
	"tzc/mods"
	"tzc/report"
)

// Execute is the main entry point for the `tzc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("tzc", "tzc checks Tanzanite syntax trees", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "analyze a syntax tree and report errors", true)
	checkCmd.AddPrimaryArg("tree-path", "the path to the syntax tree file", true)
	checkCmd.AddStringArg("module", "m", "the directory of the module file to use", false)

	dumpCmd := cli.AddSubcommand("dump", "analyze a syntax tree and print the annotated tree", true)
	dumpCmd.AddPrimaryArg("tree-path", "the path to the syntax tree file", true)
	dumpCmd.AddStringArg("module", "m", "the directory of the module file to use", false)
	dumpCmd.AddFlag("go", "g", "print the tree as Go values instead of s-expressions")

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-name", "the name of the new module", true)

	cli.AddSubcommand("version", "print the tzc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	level, err := report.ParseLogLevel(result.Arguments["loglevel"].(string))
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	report.InitReporter(level)

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult)
	case "dump":
		execDumpCommand(subResult)
	case "mod":
		execModCommand(subResult)
	case "version":
		report.PrintInfoMessage("tzc Version", common.Version)
	}
}

// execCheckCommand executes the check subcommand.
func execCheckCommand(result *olive.ArgParseResult) {
	c := newCompilerFromArgs(result)

	ok := c.Analyze()

	report.ReportCompilationFinished()
	if !ok {
		os.Exit(1)
	}
}

// execDumpCommand executes the dump subcommand.
func execDumpCommand(result *olive.ArgParseResult) {
	c := newCompilerFromArgs(result)

	if !c.Analyze() {
		os.Exit(1)
	}

	c.Dump(os.Stdout, result.HasFlag("go"))
}

// newCompilerFromArgs creates a compiler from the primary argument and the
// module argument of a subcommand.
func newCompilerFromArgs(result *olive.ArgParseResult) *Compiler {
	treePath, _ := result.PrimaryArg()

	modDir := ""
	if modArgVal, ok := result.Arguments["module"]; ok {
		modDir = modArgVal.(string)
	}

	c, err := NewCompiler(treePath, modDir)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	return c
}

// execModCommand executes the `mod` subcommand and its subcommands.
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return
	}

	switch subcmdName {
	case "init":
		modName, _ := subResult.PrimaryArg()
		if err := mods.InitModule(modName, workDir); err != nil {
			report.PrintErrorMessage("Module Init Error", err)
			os.Exit(1)
		}

		report.PrintInfoMessage("Module Created", modName)
	}
}
