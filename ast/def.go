package ast

// Module is the root of a parsed fiddle source unit: a named, ordered
// sequence of function definitions.  It is produced by the front end and
// consumed exactly once by the lowering pass.
type Module struct {
	Name  string
	Funcs []*FuncDef
}

// FuncDef is an AST node for a function definition: a prototype together
// with a body expression.
type FuncDef struct {
	ASTBase

	Proto *FuncProto
	Body  Expr
}

// FuncProto is a function's externally visible signature.  Parameter names
// and parameter types are parallel slices: the front end guarantees they have
// the same length.  Names are not required to be unique within a module; a
// later definition silently shadows an earlier one of the same name.
type FuncProto struct {
	ASTBase

	Name       string
	ParamNames []string
	ParamTypes []TypeExpr
	ReturnType TypeExpr
}
