package ast

// Expr represents an expression, simple or complex.  All expression nodes
// implement the `Expr` interface.  The variant set is closed: an expression
// is an IntLit, an Identifier, a BinaryOp, a Call, or a Block.  Expressions
// are immutable once parsed and owned by their enclosing function definition
// or parent expression.
type Expr interface {
	ASTNode
}

// IntLit is an integer literal expression.
type IntLit struct {
	ASTBase

	// The literal's value.  Values outside the 32-bit range wrap modulo 2^32
	// when lowered.
	Value int64
}

// Identifier is a reference to a named value: a function parameter or a
// module-level function.
type Identifier struct {
	ASTBase

	Name string
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ASTBase

	// The operator symbol, eg. `+`.
	Op string

	Lhs, Rhs Expr
}

// Call is a function call expression.  The callee is itself an expression so
// that calls through arbitrary lowered values parse uniformly.
type Call struct {
	ASTBase

	Func Expr
	Args []Expr
}

// Block is an ordered sequence of expressions.  The block's value is the
// value of its last expression.
type Block struct {
	ASTBase

	Exprs []Expr
}
