package generate

import (
	"strings"

	"fiddle/ast"
	"fiddle/report"
	"fiddle/verify"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
)

// genProto resolves a prototype's parameter and return types and creates the
// corresponding function declaration in the LLVM module.  The body is not
// touched here: declaring all prototypes first is what makes forward and
// mutual references between functions work.
func (g *Generator) genProto(proto *ast.FuncProto) (*ir.Func, error) {
	if len(proto.ParamNames) != len(proto.ParamTypes) {
		return nil, report.ICE("function `%s` has %d parameter names but %d parameter types",
			proto.Name, len(proto.ParamNames), len(proto.ParamTypes))
	}

	rtType, err := resolveType(proto.ReturnType)
	if err != nil {
		return nil, err
	}

	params := make([]*ir.Param, len(proto.ParamNames))
	for i, name := range proto.ParamNames {
		paramType, err := resolveType(proto.ParamTypes[i])
		if err != nil {
			return nil, err
		}

		params[i] = ir.NewParam(name, paramType.Lower())
	}

	llFunc := g.mod.NewFunc(proto.Name, rtType.Lower(), params...)
	llFunc.Linkage = enum.LinkageExternal
	return llFunc, nil
}

// genFuncBody lowers a function's body into its already declared prototype.
// The parameters are bound in a fresh scope frame layered over the module
// scope; dropping the frame on exit restores the enclosing scope whether or
// not lowering succeeded.
func (g *Generator) genFuncBody(fn *ast.FuncDef, llFunc *ir.Func) error {
	entry := llFunc.NewBlock("entry")

	fnScope := NewScope(g.moduleScope)
	for i, name := range fn.Proto.ParamNames {
		fnScope.Define(name, llFunc.Params[i])
	}

	result, err := g.genExpr(entry, fnScope, fn.Body)
	if err != nil {
		return err
	}

	// A unit function discards the body's result and returns void.
	if llFunc.Sig.RetType.Equal(lltypes.Void) {
		result = nil
	}

	entry.NewRet(result)

	// Local structural verification.  The prototype and body are both fully
	// lowered, so any ill-formedness here was produced by the lowering logic.
	if msgs := verify.Func(llFunc); len(msgs) > 0 {
		return report.ICE("function `%s` failed verification: %s", llFunc.Name(), strings.Join(msgs, "; "))
	}

	return nil
}
