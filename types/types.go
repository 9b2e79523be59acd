package types

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"
)

// Type represents a semantic fiddle data type.  The set of implementations is
// closed: a type is either an IntType or a UnitType.  Code that matches over
// types switches over that closed set so that adding a new type surfaces as a
// compile error in every match site rather than a runtime default case.
type Type interface {
	// Equal returns whether this type is equal to the other type.
	Equal(other Type) bool

	// Repr returns the representative string for this type.
	Repr() string

	// Lower returns the LLVM IR type corresponding to this type.
	Lower() lltypes.Type
}

// -----------------------------------------------------------------------------

// IntType represents a fixed-width integer type.
type IntType struct {
	// The width of the integer in bits: one of 8, 16, 32, or 64.
	Width int

	// Whether the integer is signed.
	Signed bool
}

func (it IntType) Equal(other Type) bool {
	if oit, ok := other.(IntType); ok {
		return it == oit
	}

	return false
}

func (it IntType) Repr() string {
	if it.Signed {
		return fmt.Sprintf("i%d", it.Width)
	}

	return fmt.Sprintf("u%d", it.Width)
}

func (it IntType) Lower() lltypes.Type {
	switch it.Width {
	case 8:
		return lltypes.I8
	case 16:
		return lltypes.I16
	case 32:
		return lltypes.I32
	default:
		return lltypes.I64
	}
}

// -----------------------------------------------------------------------------

// UnitType represents the unit type: the type of expressions that yield no
// usable value.  It lowers to LLVM void.
type UnitType struct{}

func (ut UnitType) Equal(other Type) bool {
	_, ok := other.(UnitType)
	return ok
}

func (ut UnitType) Repr() string {
	return "unit"
}

func (ut UnitType) Lower() lltypes.Type {
	return lltypes.Void
}
