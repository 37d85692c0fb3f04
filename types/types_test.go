package types

import (
	"math"
	"testing"

	"github.com/nalgeon/be"
)

func TestIntLiteralType(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{0, "i8"},
		{5, "i8"},
		{127, "i8"},
		{128, "i16"},
		{-128, "i8"},
		{-129, "i16"},
		{32767, "i16"},
		{32768, "i32"},
		{-32769, "i32"},
		{math.MaxInt32, "i32"},
		{math.MaxInt32 + 1, "i64"},
		{math.MinInt32, "i32"},
		{math.MinInt32 - 1, "i64"},
		{math.MaxInt64, "i64"},
		{math.MinInt64, "i64"},
	}

	for _, test := range tests {
		be.Equal(t, IntLiteralType(test.value), test.want)
	}
}

func TestFloatLiteralType(t *testing.T) {
	be.Equal(t, FloatLiteralType(0), "f32")
	be.Equal(t, FloatLiteralType(2.5), "f32")
	be.Equal(t, FloatLiteralType(-2.5), "f32")
	be.Equal(t, FloatLiteralType(math.MaxFloat32), "f32")
	be.Equal(t, FloatLiteralType(1e300), "f64")
	be.Equal(t, FloatLiteralType(-1e300), "f64")
}

func TestWiden(t *testing.T) {
	i8 := Type{Name: "i8", Size: 1}
	i32 := Type{Name: "i32", Size: 4}
	u32 := Type{Name: "u32", Size: 4}

	be.Equal(t, Widen(i8, i32), i32)
	be.Equal(t, Widen(i32, i8), i32)

	// Ties keep the second operand.
	be.Equal(t, Widen(i32, u32), u32)
	be.Equal(t, Widen(u32, i32), i32)
}

func TestCoerce(t *testing.T) {
	i8 := Type{Name: "i8", Size: 1}
	i64 := Type{Name: "i64", Size: 8}

	got, narrowed := Coerce(i8, i64)
	be.Equal(t, got, i64)
	be.True(t, !narrowed)

	got, narrowed = Coerce(i64, i8)
	be.Equal(t, got, i8)
	be.True(t, narrowed)

	got, narrowed = Coerce(i8, i8)
	be.Equal(t, got, i8)
	be.True(t, !narrowed)
}

func TestTypeRepr(t *testing.T) {
	u8 := Type{Name: "u8", Size: 1}
	be.Equal(t, u8.Repr(), "u8")
	be.Equal(t, u8.Ref().Ref().Repr(), "u8**")
	be.Equal(t, u8.Ref().Deref(), u8)
	be.Equal(t, u8.Ref().Size, 1)
	be.True(t, u8.Ref().IsPointer())
	be.True(t, Type{Name: "bool", Size: 1}.IsBool())
	be.True(t, !Type{Name: "bool", PointerDepth: 1, Size: 1}.IsBool())
}

func TestBuiltins(t *testing.T) {
	seen := map[string]int{}
	for _, typ := range Builtins(DefaultTarget) {
		_, dup := seen[typ.Name]
		be.True(t, !dup)
		be.Equal(t, typ.PointerDepth, 0)
		seen[typ.Name] = typ.Size
	}

	be.Equal(t, seen["i8"], 1)
	be.Equal(t, seen["u64"], 8)
	be.Equal(t, seen["void"], 0)
	be.Equal(t, seen["usize"], 8)
	be.Equal(t, seen["int"], 4)

	small := DefaultTarget
	small.PointerSize = 4
	small.Long = 4
	for _, typ := range Builtins(small) {
		if typ.Name == "isize" || typ.Name == "long" {
			be.Equal(t, typ.Size, 4)
		}
	}
}

func TestTargetValidate(t *testing.T) {
	be.Err(t, DefaultTarget.Validate(), nil)

	bad := DefaultTarget
	bad.PointerSize = 3
	be.True(t, bad.Validate() != nil)

	bad = DefaultTarget
	bad.Double = 0
	be.True(t, bad.Validate() != nil)
}
