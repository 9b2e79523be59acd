package generate

import (
	"strings"

	"fiddle/ast"
	"fiddle/profile"
	"fiddle/report"
	"fiddle/verify"

	"github.com/llir/llvm/ir"
	lltypes "github.com/llir/llvm/ir/types"
)

// Enumeration of the phases a generator moves through.  Transitions only ever
// move forward: a generator is single-use.
const (
	phaseUnstarted = iota
	phaseDeclaring
	phaseLoweringBodies
	phaseVerified
	phaseFailed
)

// Generator is responsible for lowering a parsed fiddle module into LLVM IR.
// Lowering is a two-phase pass: all function prototypes are declared before
// any body is lowered so that functions may reference each other regardless
// of definition order.  A generator lowers exactly one module; the produced
// module is owned by the caller once Generate returns and is not mutated
// afterwards.
type Generator struct {
	// prof is the build profile targeting the lowered module.
	prof *profile.Profile

	// rep is the reporter lowering messages are displayed through.
	rep *report.Reporter

	// mod is the LLVM module being generated.
	mod *ir.Module

	// moduleScope is the root scope frame holding one binding per declared
	// prototype.  It is fully populated before any body is lowered and
	// read-only from then on.
	moduleScope *Scope

	// protos maps each function definition to its declared prototype.
	protos map[*ast.FuncDef]*ir.Func

	// defaultIntType is the LLVM type given to values which have no other
	// type to take, such as the result of an empty block.
	defaultIntType *lltypes.IntType

	// phase is the generator's position in the lowering pass.  It must be one
	// of the enumerated phases above.
	phase int
}

// NewGenerator creates a new generator for lowering one module.  A nil
// profile selects the default profile; a nil reporter silences all display
// output (errors are still returned).
func NewGenerator(prof *profile.Profile, rep *report.Reporter) *Generator {
	if prof == nil {
		prof = profile.DefaultProfile()
	}

	if rep == nil {
		rep = report.NewReporter(report.LogLevelSilent)
	}

	return &Generator{
		prof:           prof,
		rep:            rep,
		moduleScope:    NewScope(nil),
		protos:         make(map[*ast.FuncDef]*ir.Func),
		defaultIntType: lltypes.NewInt(uint64(prof.DefaultIntWidth)),
	}
}

// Generate lowers the given module into a structurally verified LLVM module.
// On failure, no module is returned: IR emitted before the failure must not
// be treated as valid output.
func (g *Generator) Generate(astMod *ast.Module) (*ir.Module, error) {
	// A generator is single-use: reuse does not disturb whichever terminal
	// state the first pass reached.
	if g.phase != phaseUnstarted {
		err := report.ICE("generator for module `%s` used more than once", astMod.Name)
		g.rep.ReportICE(err)
		return nil, err
	}

	g.mod = ir.NewModule()
	g.mod.SourceFilename = astMod.Name
	g.mod.TargetTriple = g.prof.TargetTriple
	g.mod.DataLayout = g.prof.DataLayout

	// Phase 1: declare every prototype at module scope.  Duplicate names
	// silently overwrite earlier declarations; the most recent wins.
	g.phase = phaseDeclaring
	g.rep.ReportVerbose("Declaring", astMod.Name)

	for _, fn := range astMod.Funcs {
		llFunc, err := g.genProto(fn.Proto)
		if err != nil {
			return nil, g.fail(err)
		}

		g.moduleScope.Define(fn.Proto.Name, llFunc)
		g.protos[fn] = llFunc
	}

	// Phase 2: lower every body against the fully populated module scope.
	g.phase = phaseLoweringBodies
	g.rep.ReportVerbose("Lowering", astMod.Name)

	for _, fn := range astMod.Funcs {
		if err := g.genFuncBody(fn, g.protos[fn]); err != nil {
			return nil, g.fail(err)
		}
	}

	// Whole-module structural verification.  A failure here is a bug in the
	// lowering logic itself, never a user error.
	g.rep.ReportVerbose("Verifying", astMod.Name)
	if msgs := verify.Module(g.mod); len(msgs) > 0 {
		return nil, g.fail(report.ICE("module `%s` failed verification: %s", astMod.Name, strings.Join(msgs, "; ")))
	}

	g.phase = phaseVerified
	return g.mod, nil
}

// fail moves the generator into its terminal failed state and reports the
// error before handing it back for propagation.
func (g *Generator) fail(err error) error {
	g.phase = phaseFailed

	if _, ok := err.(*report.InternalError); ok {
		g.rep.ReportICE(err)
	} else {
		g.rep.ReportError(err)
	}

	return err
}
