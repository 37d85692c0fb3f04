package common

// Version is the current tzc version as a string.
const Version string = "0.1.0"

// ModuleFileName is the name for Tanzanite module files.
const ModuleFileName string = "tz-mod.toml"

// TreeFileExt is the file extension for a syntax tree file.
const TreeFileExt string = ".tzt"

// EntryFuncName is the name of the function analysis starts from.
const EntryFuncName string = "main"
