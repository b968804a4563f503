package glslang

// ResourceLimits is the resource ceiling set handed to the front-end.
// It is a compile-time constant: every CreateShaderModule compile runs
// under the same generous limits, so there is no per-call knob to
// leave undertested.
type ResourceLimits struct {
	MaxLights                                 int
	MaxClipPlanes                             int
	MaxTextureUnits                           int
	MaxTextureCoords                          int
	MaxVertexAttribs                          int
	MaxVertexUniformComponents                int
	MaxVaryingFloats                          int
	MaxVertexTextureImageUnits                int
	MaxCombinedTextureImageUnits              int
	MaxTextureImageUnits                      int
	MaxFragmentUniformComponents              int
	MaxDrawBuffers                            int
	MaxVertexUniformVectors                   int
	MaxVaryingVectors                         int
	MaxFragmentUniformVectors                 int
	MaxVertexOutputVectors                    int
	MaxFragmentInputVectors                   int
	MinProgramTexelOffset                     int
	MaxProgramTexelOffset                     int
	MaxClipDistances                          int
	MaxComputeWorkGroupCountX                 int
	MaxComputeWorkGroupCountY                 int
	MaxComputeWorkGroupCountZ                 int
	MaxComputeWorkGroupSizeX                  int
	MaxComputeWorkGroupSizeY                  int
	MaxComputeWorkGroupSizeZ                  int
	MaxComputeUniformComponents               int
	MaxComputeTextureImageUnits               int
	MaxComputeImageUniforms                   int
	MaxComputeAtomicCounters                  int
	MaxComputeAtomicCounterBuffers            int
	MaxVaryingComponents                      int
	MaxVertexOutputComponents                 int
	MaxGeometryInputComponents                int
	MaxGeometryOutputComponents               int
	MaxFragmentInputComponents                int
	MaxImageUnits                             int
	MaxCombinedImageUnitsAndFragmentOutputs   int
	MaxCombinedShaderOutputResources          int
	MaxImageSamples                           int
	MaxVertexImageUniforms                    int
	MaxTessControlImageUniforms               int
	MaxTessEvaluationImageUniforms            int
	MaxGeometryImageUniforms                  int
	MaxFragmentImageUniforms                  int
	MaxCombinedImageUniforms                  int
	MaxGeometryTextureImageUnits              int
	MaxGeometryOutputVertices                 int
	MaxGeometryTotalOutputComponents          int
	MaxGeometryUniformComponents              int
	MaxGeometryVaryingComponents              int
	MaxTessControlInputComponents             int
	MaxTessControlOutputComponents            int
	MaxTessControlTextureImageUnits           int
	MaxTessControlUniformComponents           int
	MaxTessControlTotalOutputComponents       int
	MaxTessEvaluationInputComponents          int
	MaxTessEvaluationOutputComponents         int
	MaxTessEvaluationTextureImageUnits        int
	MaxTessEvaluationUniformComponents        int
	MaxTessPatchComponents                    int
	MaxPatchVertices                          int
	MaxTessGenLevel                           int
	MaxViewports                              int
	MaxVertexAtomicCounters                   int
	MaxTessControlAtomicCounters              int
	MaxTessEvaluationAtomicCounters           int
	MaxGeometryAtomicCounters                 int
	MaxFragmentAtomicCounters                 int
	MaxCombinedAtomicCounters                 int
	MaxAtomicCounterBindings                  int
	MaxVertexAtomicCounterBuffers             int
	MaxTessControlAtomicCounterBuffers        int
	MaxTessEvaluationAtomicCounterBuffers     int
	MaxGeometryAtomicCounterBuffers           int
	MaxFragmentAtomicCounterBuffers           int
	MaxCombinedAtomicCounterBuffers           int
	MaxAtomicCounterBufferSize                int
	MaxTransformFeedbackBuffers               int
	MaxTransformFeedbackInterleavedComponents int
	MaxCullDistances                          int
	MaxCombinedClipAndCullDistances           int
	MaxSamples                                int
}

// DefaultResourceLimits mirrors the generous defaults the reference
// front-end ships with.
var DefaultResourceLimits = ResourceLimits{
	MaxLights:                                 32,
	MaxClipPlanes:                             6,
	MaxTextureUnits:                           32,
	MaxTextureCoords:                          32,
	MaxVertexAttribs:                          64,
	MaxVertexUniformComponents:                4096,
	MaxVaryingFloats:                          64,
	MaxVertexTextureImageUnits:                32,
	MaxCombinedTextureImageUnits:              80,
	MaxTextureImageUnits:                      32,
	MaxFragmentUniformComponents:              4096,
	MaxDrawBuffers:                            32,
	MaxVertexUniformVectors:                   128,
	MaxVaryingVectors:                         8,
	MaxFragmentUniformVectors:                 16,
	MaxVertexOutputVectors:                    16,
	MaxFragmentInputVectors:                   15,
	MinProgramTexelOffset:                     -8,
	MaxProgramTexelOffset:                     7,
	MaxClipDistances:                          8,
	MaxComputeWorkGroupCountX:                 65535,
	MaxComputeWorkGroupCountY:                 65535,
	MaxComputeWorkGroupCountZ:                 65535,
	MaxComputeWorkGroupSizeX:                  1024,
	MaxComputeWorkGroupSizeY:                  1024,
	MaxComputeWorkGroupSizeZ:                  64,
	MaxComputeUniformComponents:               1024,
	MaxComputeTextureImageUnits:               16,
	MaxComputeImageUniforms:                   8,
	MaxComputeAtomicCounters:                  8,
	MaxComputeAtomicCounterBuffers:            1,
	MaxVaryingComponents:                      60,
	MaxVertexOutputComponents:                 64,
	MaxGeometryInputComponents:                64,
	MaxGeometryOutputComponents:               128,
	MaxFragmentInputComponents:                128,
	MaxImageUnits:                             8,
	MaxCombinedImageUnitsAndFragmentOutputs:   8,
	MaxCombinedShaderOutputResources:          8,
	MaxImageSamples:                           0,
	MaxVertexImageUniforms:                    0,
	MaxTessControlImageUniforms:               0,
	MaxTessEvaluationImageUniforms:            0,
	MaxGeometryImageUniforms:                  0,
	MaxFragmentImageUniforms:                  8,
	MaxCombinedImageUniforms:                  8,
	MaxGeometryTextureImageUnits:              16,
	MaxGeometryOutputVertices:                 256,
	MaxGeometryTotalOutputComponents:          1024,
	MaxGeometryUniformComponents:              1024,
	MaxGeometryVaryingComponents:              64,
	MaxTessControlInputComponents:             128,
	MaxTessControlOutputComponents:            128,
	MaxTessControlTextureImageUnits:           16,
	MaxTessControlUniformComponents:           1024,
	MaxTessControlTotalOutputComponents:       4096,
	MaxTessEvaluationInputComponents:          128,
	MaxTessEvaluationOutputComponents:         128,
	MaxTessEvaluationTextureImageUnits:        16,
	MaxTessEvaluationUniformComponents:        1024,
	MaxTessPatchComponents:                    120,
	MaxPatchVertices:                          32,
	MaxTessGenLevel:                           64,
	MaxViewports:                              16,
	MaxVertexAtomicCounters:                   0,
	MaxTessControlAtomicCounters:              0,
	MaxTessEvaluationAtomicCounters:           0,
	MaxGeometryAtomicCounters:                 0,
	MaxFragmentAtomicCounters:                 8,
	MaxCombinedAtomicCounters:                 8,
	MaxAtomicCounterBindings:                  1,
	MaxVertexAtomicCounterBuffers:             0,
	MaxTessControlAtomicCounterBuffers:        0,
	MaxTessEvaluationAtomicCounterBuffers:     0,
	MaxGeometryAtomicCounterBuffers:           0,
	MaxFragmentAtomicCounterBuffers:           1,
	MaxCombinedAtomicCounterBuffers:           1,
	MaxAtomicCounterBufferSize:                16384,
	MaxTransformFeedbackBuffers:               4,
	MaxTransformFeedbackInterleavedComponents: 64,
	MaxCullDistances:                          8,
	MaxCombinedClipAndCullDistances:           8,
	MaxSamples:                                4,
}
