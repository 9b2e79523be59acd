// Package verify checks lowered LLVM IR for structural well-formedness:
// every block terminated, every operand defined before use, declared
// argument and return types respected.  It reports findings as messages
// rather than errors so that a caller can decide how fatal they are; for the
// lowering pass any finding is an internal compiler error.
package verify

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Module checks every defined function in a module.  An empty slice means the
// module is well-formed.
func Module(mod *ir.Module) []string {
	var msgs []string

	for _, fn := range mod.Funcs {
		msgs = append(msgs, Func(fn)...)
	}

	return msgs
}

// Func checks a single function.  Declarations (functions with no body) are
// trivially well-formed.  An empty slice means the function is well-formed.
func Func(fn *ir.Func) []string {
	var msgs []string

	// defined holds every value usable as an operand so far: parameters up
	// front, then each instruction as it is passed in emission order.
	defined := make(map[value.Value]struct{})
	for _, param := range fn.Params {
		defined[param] = struct{}{}
	}

	for _, block := range fn.Blocks {
		for _, inst := range block.Insts {
			msgs = append(msgs, checkInst(fn, defined, inst)...)

			if val, ok := inst.(value.Value); ok {
				defined[val] = struct{}{}
			}
		}

		if block.Term == nil {
			msgs = append(msgs, fmt.Sprintf("function %s: block %s has no terminator", fn.Name(), block.Name()))
			continue
		}

		msgs = append(msgs, checkTerm(fn, defined, block.Term)...)
	}

	return msgs
}

// checkInst checks a single instruction's operands against the set of values
// defined before it.
func checkInst(fn *ir.Func, defined map[value.Value]struct{}, inst ir.Instruction) []string {
	switch v := inst.(type) {
	case *ir.InstAdd:
		return checkOperands(fn, defined, v.X, v.Y)
	case *ir.InstSub:
		return checkOperands(fn, defined, v.X, v.Y)
	case *ir.InstMul:
		return checkOperands(fn, defined, v.X, v.Y)
	case *ir.InstSDiv:
		return checkOperands(fn, defined, v.X, v.Y)
	case *ir.InstCall:
		msgs := checkOperands(fn, defined, append([]value.Value{v.Callee}, v.Args...)...)

		// The declared signature of a direct callee must match the call site.
		if callee, ok := v.Callee.(*ir.Func); ok {
			if !callee.Sig.Variadic && len(v.Args) != len(callee.Sig.Params) {
				msgs = append(msgs, fmt.Sprintf(
					"function %s: call to %s passes %d arguments for %d parameters",
					fn.Name(), callee.Name(), len(v.Args), len(callee.Sig.Params),
				))
			}
		}

		return msgs
	default:
		// Instructions outside the emitted set carry no operand model here.
		return nil
	}
}

// checkTerm checks a block terminator.  Only returns are emitted by the
// lowering pass; a return's operand must be defined and must match the
// function's declared return type.
func checkTerm(fn *ir.Func, defined map[value.Value]struct{}, term ir.Terminator) []string {
	ret, ok := term.(*ir.TermRet)
	if !ok {
		return nil
	}

	isVoid := fn.Sig.RetType.Equal(types.Void)

	if ret.X == nil {
		if !isVoid {
			return []string{fmt.Sprintf("function %s: ret carries no value for return type %s", fn.Name(), fn.Sig.RetType)}
		}

		return nil
	}

	if isVoid {
		return []string{fmt.Sprintf("function %s: ret carries a value for a void return type", fn.Name())}
	}

	msgs := checkOperands(fn, defined, ret.X)
	if !ret.X.Type().Equal(fn.Sig.RetType) {
		msgs = append(msgs, fmt.Sprintf(
			"function %s: ret value type %s does not match return type %s",
			fn.Name(), ret.X.Type(), fn.Sig.RetType,
		))
	}

	return msgs
}

// checkOperands checks that each operand is usable at the current point:
// constants (function references included) always are, parameters must belong
// to the function, and instruction results must have been emitted earlier.
func checkOperands(fn *ir.Func, defined map[value.Value]struct{}, operands ...value.Value) []string {
	var msgs []string

	for _, operand := range operands {
		if operand == nil {
			msgs = append(msgs, fmt.Sprintf("function %s: instruction has a missing operand", fn.Name()))
			continue
		}

		if _, ok := operand.(constant.Constant); ok {
			continue
		}

		if _, ok := defined[operand]; !ok {
			msgs = append(msgs, fmt.Sprintf("function %s: value %s used before definition", fn.Name(), operand.Ident()))
		}
	}

	return msgs
}
