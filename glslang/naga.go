package glslang

import (
	"github.com/gogpu/naga"
)

// NagaCompiler is a pure-Go Compiler backed by gogpu/naga. Its input
// dialect is WGSL rather than GLSL, which suits hosts that ship no
// native front-end and author their shaders for it; hosts with a
// glslang build plug in their own Compiler instead. The stage tag is
// redundant for naga, whose entry points declare their own stage, but
// it is validated so a mis-tagged container still fails structurally.
type NagaCompiler struct {
	Options naga.CompileOptions
}

func NewNagaCompiler() *NagaCompiler {
	return &NagaCompiler{Options: naga.DefaultOptions()}
}

// Compile accepts the limits for interface parity; naga's validator
// has no limit knobs to feed them into.
func (c *NagaCompiler) Compile(source []byte, stage Stage, limits ResourceLimits) ([]uint32, error) {
	if stage.FlagBits() == 0 {
		return nil, &CompileError{Stage: stage, Err: errUnknownStage}
	}
	spirv, err := naga.CompileWithOptions(string(source), c.Options)
	if err != nil {
		return nil, &CompileError{Stage: stage, Err: err}
	}
	words, err := BytesToWords(spirv)
	if err != nil {
		return nil, &CompileError{Stage: stage, Err: err}
	}
	return words, nil
}

var errUnknownStage = errStage("unknown pipeline stage")

type errStage string

func (e errStage) Error() string { return string(e) }
