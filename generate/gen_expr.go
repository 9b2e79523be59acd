package generate

import (
	"fiddle/ast"
	"fiddle/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr lowers an expression.  It takes the basic block to append onto and
// the scope to resolve identifiers against, and returns the value the
// expression lowers to.  On failure no instruction is emitted for the failing
// expression and the error propagates unchanged.
func (g *Generator) genExpr(block *ir.Block, scope *Scope, expr ast.Expr) (value.Value, error) {
	switch v := expr.(type) {
	case *ast.IntLit:
		// Literals are fixed 32-bit constants equal to the value mod 2^32.
		// TODO(width): adapt literal width to the expected type once the
		// checker assigns expected types to literals.
		return constant.NewInt(lltypes.I32, int64(uint32(v.Value))), nil
	case *ast.Identifier:
		val, ok := scope.Lookup(v.Name)
		if !ok {
			return nil, report.UnresolvedIdentifier(v.Span(), v.Name)
		}

		return val, nil
	case *ast.BinaryOp:
		return g.genBinaryOp(block, scope, v)
	case *ast.Call:
		return g.genCall(block, scope, v)
	case *ast.Block:
		return g.genBlock(block, scope, v)
	default:
		return nil, report.ICE("lowering not supported for AST node %T", expr)
	}
}

// genBinaryOp lowers a binary operator application.  Operands are lowered
// left to right before the operator is dispatched.
func (g *Generator) genBinaryOp(block *ir.Block, scope *Scope, bop *ast.BinaryOp) (value.Value, error) {
	lhs, err := g.genExpr(block, scope, bop.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := g.genExpr(block, scope, bop.Rhs)
	if err != nil {
		return nil, err
	}

	switch bop.Op {
	case "+":
		return block.NewAdd(lhs, rhs), nil
	case "-":
		return block.NewSub(lhs, rhs), nil
	case "*":
		return block.NewMul(lhs, rhs), nil
	case "/":
		return block.NewSDiv(lhs, rhs), nil
	default:
		return nil, report.UnsupportedOperator(bop.Span(), bop.Op)
	}
}

// genCall lowers a function call.  The callee is lowered first, then the
// arguments left to right.  The argument count is checked against the
// callee's declared signature; argument type checking is left to a future
// checking pass.
func (g *Generator) genCall(block *ir.Block, scope *Scope, call *ast.Call) (value.Value, error) {
	callee, err := g.genExpr(block, scope, call.Func)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(call.Args))
	for i, argExpr := range call.Args {
		args[i], err = g.genExpr(block, scope, argExpr)
		if err != nil {
			return nil, err
		}
	}

	llFunc, ok := callee.(*ir.Func)
	if !ok {
		return nil, report.Raise(report.ErrNotCallable, call.Span(), "", "called value is not a function")
	}

	if len(args) != len(llFunc.Params) {
		return nil, report.Raise(
			report.ErrWrongArgCount,
			call.Span(),
			llFunc.Name(),
			"function `%s` takes %d arguments but was given %d",
			llFunc.Name(), len(llFunc.Params), len(args),
		)
	}

	return block.NewCall(llFunc, args...), nil
}

// genBlock lowers a block expression: each sub-expression in order onto the
// same basic block, yielding the last sub-expression's value.  An empty block
// yields the zero value of the module's default integer type.
// TODO(width): drop the default once blocks carry inferred types.
func (g *Generator) genBlock(block *ir.Block, scope *Scope, b *ast.Block) (value.Value, error) {
	var result value.Value = constant.NewInt(g.defaultIntType, 0)

	for _, expr := range b.Exprs {
		val, err := g.genExpr(block, scope, expr)
		if err != nil {
			return nil, err
		}

		result = val
	}

	return result, nil
}
