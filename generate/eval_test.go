package generate

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"
)

// evalFunc executes a lowered function on the given integer arguments by
// walking its entry block.  It understands exactly the instruction set the
// lowering pass emits, which keeps the tests honest: anything else in the
// block is a test failure, not something to silently skip.
func evalFunc(t *testing.T, fn *ir.Func, args ...int64) int64 {
	t.Helper()

	if len(fn.Blocks) != 1 {
		t.Fatalf("function %s has %d blocks, want 1", fn.Name(), len(fn.Blocks))
	}

	if len(args) != len(fn.Params) {
		t.Fatalf("function %s called with %d arguments for %d parameters", fn.Name(), len(args), len(fn.Params))
	}

	vals := make(map[value.Value]int64)
	for i, param := range fn.Params {
		vals[param] = args[i]
	}

	operand := func(v value.Value) int64 {
		if c, ok := v.(*constant.Int); ok {
			return c.X.Int64()
		}

		res, ok := vals[v]
		if !ok {
			t.Fatalf("function %s uses undefined value %s", fn.Name(), v.Ident())
		}

		return res
	}

	entry := fn.Blocks[0]
	for _, inst := range entry.Insts {
		switch v := inst.(type) {
		case *ir.InstAdd:
			vals[v] = operand(v.X) + operand(v.Y)
		case *ir.InstSub:
			vals[v] = operand(v.X) - operand(v.Y)
		case *ir.InstMul:
			vals[v] = operand(v.X) * operand(v.Y)
		case *ir.InstSDiv:
			vals[v] = operand(v.X) / operand(v.Y)
		case *ir.InstCall:
			callee, ok := v.Callee.(*ir.Func)
			if !ok {
				t.Fatalf("function %s calls a non-function value", fn.Name())
			}

			callArgs := make([]int64, len(v.Args))
			for i, arg := range v.Args {
				callArgs[i] = operand(arg)
			}

			vals[v] = evalFunc(t, callee, callArgs...)
		default:
			t.Fatalf("function %s contains unexpected instruction %T", fn.Name(), inst)
		}
	}

	ret, ok := entry.Term.(*ir.TermRet)
	if !ok {
		t.Fatalf("function %s is not terminated by ret", fn.Name())
	}

	if ret.X == nil {
		return 0
	}

	return operand(ret.X)
}
