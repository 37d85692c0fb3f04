package types

import (
	"fmt"
	"math"
)

// Names of the builtin types the analyzer refers to directly.
const (
	BoolTypeName  = "bool"
	VoidTypeName  = "void"
	USizeTypeName = "usize"
	CharTypeName  = "u8"
)

// Target describes the sizes of the host-native C types and of pointers on
// the compilation target.
type Target struct {
	PointerSize int
	Char        int
	Short       int
	Int         int
	Long        int
	SizeT       int
	Float       int
	Double      int
}

// DefaultTarget is a 64-bit LP64 target.
var DefaultTarget = Target{
	PointerSize: 8,
	Char:        1,
	Short:       2,
	Int:         4,
	Long:        8,
	SizeT:       8,
	Float:       4,
	Double:      8,
}

// Validate checks that every size in the target is usable.
func (tg Target) Validate() error {
	if tg.PointerSize != 4 && tg.PointerSize != 8 {
		return fmt.Errorf("pointer size must be 4 or 8, not %d", tg.PointerSize)
	}

	sizes := []struct {
		name string
		size int
	}{
		{"char", tg.Char},
		{"short", tg.Short},
		{"int", tg.Int},
		{"long", tg.Long},
		{"size_t", tg.SizeT},
		{"float", tg.Float},
		{"double", tg.Double},
	}

	for _, s := range sizes {
		if s.size <= 0 {
			return fmt.Errorf("size of %s must be positive, not %d", s.name, s.size)
		}
	}

	return nil
}

// Builtins returns the builtin type table for the given target in a fixed
// order.  All builtins have pointer depth zero.
func Builtins(tg Target) []Type {
	return []Type{
		{Name: BoolTypeName, Size: 1},
		{Name: "i8", Size: 1},
		{Name: "u8", Size: 1},
		{Name: "i16", Size: 2},
		{Name: "u16", Size: 2},
		{Name: "i32", Size: 4},
		{Name: "u32", Size: 4},
		{Name: "i64", Size: 8},
		{Name: "u64", Size: 8},
		{Name: "f32", Size: 4},
		{Name: "f64", Size: 8},
		{Name: "isize", Size: tg.PointerSize},
		{Name: USizeTypeName, Size: tg.PointerSize},
		{Name: VoidTypeName, Size: 0},
		{Name: "char", Size: tg.Char},
		{Name: "short", Size: tg.Short},
		{Name: "int", Size: tg.Int},
		{Name: "long", Size: tg.Long},
		{Name: "size_t", Size: tg.SizeT},
		{Name: "float", Size: tg.Float},
		{Name: "double", Size: tg.Double},
	}
}

// -----------------------------------------------------------------------------

// IntLiteralType returns the name of the narrowest signed integer type that
// can hold v.
func IntLiteralType(v int64) string {
	if v >= 0 {
		switch {
		case v <= math.MaxInt8:
			return "i8"
		case v <= math.MaxInt16:
			return "i16"
		case v <= math.MaxInt32:
			return "i32"
		default:
			return "i64"
		}
	}

	switch {
	case v >= math.MinInt8:
		return "i8"
	case v >= math.MinInt16:
		return "i16"
	case v >= math.MinInt32:
		return "i32"
	default:
		return "i64"
	}
}

// FloatLiteralType returns the name of the narrowest floating-point type whose
// range covers v.
func FloatLiteralType(v float64) string {
	if v >= 0 {
		if v <= math.MaxFloat32 {
			return "f32"
		}
	} else if v >= -math.MaxFloat32 {
		return "f32"
	}

	return "f64"
}
