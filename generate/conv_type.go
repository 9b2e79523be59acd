package generate

import (
	"fiddle/ast"
	"fiddle/report"
	"fiddle/types"
)

// resolveType resolves surface type syntax to a semantic type.  It is a pure
// function called while declaring prototypes.  Unrecognized type names are
// user errors; an unrecognized syntax variant is a front-end bug and reports
// as an ICE.
func resolveType(texpr ast.TypeExpr) (types.Type, error) {
	switch v := texpr.(type) {
	case *ast.TypeName:
		switch v.Name {
		case "i8":
			return types.IntType{Width: 8, Signed: true}, nil
		case "i16":
			return types.IntType{Width: 16, Signed: true}, nil
		case "i32":
			return types.IntType{Width: 32, Signed: true}, nil
		case "i64":
			return types.IntType{Width: 64, Signed: true}, nil
		default:
			return nil, report.UnknownType(v.Span(), v.Name)
		}
	case *ast.UnitTypeExpr:
		return types.UnitType{}, nil
	default:
		return nil, report.ICE("unrecognized type syntax %T", texpr)
	}
}
