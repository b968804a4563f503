// Package glslang is the boundary to the GLSL-to-SPIR-V back-end the
// shader layer invokes. The back-end itself is an external
// collaborator: this package defines the stage vocabulary, the fixed
// resource limits every compile runs under, and the Compiler
// interface, plus a pure-Go implementation backed by gogpu/naga for
// hosts without a native front-end.
package glslang

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Stage is the pipeline stage a shader is compiled for.
type Stage int

const (
	StageVertex Stage = iota
	StageTessControl
	StageTessEvaluation
	StageGeometry
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageTessControl:
		return "TessControl"
	case StageTessEvaluation:
		return "TessEvaluation"
	case StageGeometry:
		return "Geometry"
	case StageFragment:
		return "Fragment"
	case StageCompute:
		return "Compute"
	default:
		return "Unknown"
	}
}

// StageFromFlagBits maps a single-bit VkShaderStageFlagBits value,
// the tag carried in word 2 of a GLSL container, to a Stage. Multi-bit
// or unknown values report false.
func StageFromFlagBits(bits vk.ShaderStageFlagBits) (Stage, bool) {
	switch bits {
	case vk.ShaderStageVertexBit:
		return StageVertex, true
	case vk.ShaderStageTessellationControlBit:
		return StageTessControl, true
	case vk.ShaderStageTessellationEvaluationBit:
		return StageTessEvaluation, true
	case vk.ShaderStageGeometryBit:
		return StageGeometry, true
	case vk.ShaderStageFragmentBit:
		return StageFragment, true
	case vk.ShaderStageComputeBit:
		return StageCompute, true
	default:
		return 0, false
	}
}

// FlagBits is the inverse of StageFromFlagBits.
func (s Stage) FlagBits() vk.ShaderStageFlagBits {
	switch s {
	case StageVertex:
		return vk.ShaderStageVertexBit
	case StageTessControl:
		return vk.ShaderStageTessellationControlBit
	case StageTessEvaluation:
		return vk.ShaderStageTessellationEvaluationBit
	case StageGeometry:
		return vk.ShaderStageGeometryBit
	case StageFragment:
		return vk.ShaderStageFragmentBit
	case StageCompute:
		return vk.ShaderStageComputeBit
	default:
		return 0
	}
}

// Compiler lowers shader source to a SPIR-V word stream. The layer
// passes the same resource limits on every call and treats any
// error as structural failure; it never inspects the message beyond
// logging it.
type Compiler interface {
	Compile(source []byte, stage Stage, limits ResourceLimits) ([]uint32, error)
}

// CompileError wraps a back-end failure with the stage it happened
// on, so the layer's log line names the shader kind.
type CompileError struct {
	Stage Stage
	Err   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %v", e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
