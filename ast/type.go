package ast

// TypeExpr represents surface type syntax as written in the source text.  The
// variant set is closed: a type expression is a TypeName or a UnitTypeExpr.
// Resolution to a semantic type happens during prototype declaration.
type TypeExpr interface {
	ASTNode
}

// TypeName is a named type such as `i32`.
type TypeName struct {
	ASTBase

	Name string
}

// UnitTypeExpr is the written form of the unit type, eg. `()`.
type UnitTypeExpr struct {
	ASTBase
}
