package types

import "strings"

// Type represents a Tanzanite data type: a named base type with zero or more
// levels of pointer indirection.  Types are plain values: deriving a pointer
// type from a stored type copies it.
type Type struct {
	// The name of the base type: eg. `i32`.
	Name string

	// The number of pointer indirections: `i32**` has depth 2.
	PointerDepth int

	// The byte size of the base type.  Pointer depth does not change it.
	Size int
}

// Repr returns the representative string for this type: eg. `u8*`.
func (t Type) Repr() string {
	return t.Name + strings.Repeat("*", t.PointerDepth)
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return t.Repr()
}

// WithDepth returns a copy of this type with the given pointer depth.
func (t Type) WithDepth(depth int) Type {
	t.PointerDepth = depth
	return t
}

// Ref returns the type of a pointer to this type.
func (t Type) Ref() Type {
	return t.WithDepth(t.PointerDepth + 1)
}

// Deref returns the type this pointer type points to.  The caller must ensure
// the pointer depth is positive.
func (t Type) Deref() Type {
	return t.WithDepth(t.PointerDepth - 1)
}

// IsPointer returns whether this type has any pointer indirection.
func (t Type) IsPointer() bool {
	return t.PointerDepth > 0
}

// IsBool returns whether this type is the (non-pointer) boolean type.
func (t Type) IsBool() bool {
	return t.Name == BoolTypeName && t.PointerDepth == 0
}

// Equals returns whether two types have the same name and pointer depth.
func Equals(a, b Type) bool {
	return a.Name == b.Name && a.PointerDepth == b.PointerDepth
}

// -----------------------------------------------------------------------------

// Widen returns whichever of two types has the larger byte size.  Ties keep
// the second type.  Pointer depth is not considered.
func Widen(a, b Type) Type {
	if a.Size > b.Size {
		return a
	}

	return b
}

// Coerce converts a value of type current to type target.  The result is
// always target; narrowed reports whether the conversion loses width, in
// which case the caller should warn about truncation.
func Coerce(current, target Type) (result Type, narrowed bool) {
	return target, current.Size > target.Size
}
