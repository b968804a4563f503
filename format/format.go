// Package format translates between the GL enum namespace texture
// containers use and Vulkan formats, and carries the per-format block
// metadata needed to size image data. All lookups are pure functions
// over fixed tables; anything not tabulated yields vk.FormatUndefined
// or a zero FormatSize rather than an error.
package format

import (
	vk "github.com/vulkan-go/vulkan"
)

// fromGLTable is the two-level (type, format) lookup. The outer key
// is the GL pixel type, the inner the channel layout. Packed types
// tabulate only the layouts they define.
var fromGLTable = map[GLEnum]map[GLEnum]vk.Format{
	GLUnsignedByte: {
		GLRed:          vk.FormatR8Unorm,
		GLRG:           vk.FormatR8g8Unorm,
		GLRGB:          vk.FormatR8g8b8Unorm,
		GLBGR:          vk.FormatB8g8r8Unorm,
		GLRGBA:         vk.FormatR8g8b8a8Unorm,
		GLBGRA:         vk.FormatB8g8r8a8Unorm,
		GLRedInteger:   vk.FormatR8Uint,
		GLRGInteger:    vk.FormatR8g8Uint,
		GLRGBInteger:   vk.FormatR8g8b8Uint,
		GLBGRInteger:   vk.FormatB8g8r8Uint,
		GLRGBAInteger:  vk.FormatR8g8b8a8Uint,
		GLBGRAInteger:  vk.FormatB8g8r8a8Uint,
		GLStencilIndex: vk.FormatS8Uint,
	},
	GLByte: {
		GLRed:         vk.FormatR8Snorm,
		GLRG:          vk.FormatR8g8Snorm,
		GLRGB:         vk.FormatR8g8b8Snorm,
		GLBGR:         vk.FormatB8g8r8Snorm,
		GLRGBA:        vk.FormatR8g8b8a8Snorm,
		GLBGRA:        vk.FormatB8g8r8a8Snorm,
		GLRedInteger:  vk.FormatR8Sint,
		GLRGInteger:   vk.FormatR8g8Sint,
		GLRGBInteger:  vk.FormatR8g8b8Sint,
		GLBGRInteger:  vk.FormatB8g8r8Sint,
		GLRGBAInteger: vk.FormatR8g8b8a8Sint,
		GLBGRAInteger: vk.FormatB8g8r8a8Sint,
	},
	GLUnsignedShort: {
		GLRed:            vk.FormatR16Unorm,
		GLRG:             vk.FormatR16g16Unorm,
		GLRGB:            vk.FormatR16g16b16Unorm,
		GLRGBA:           vk.FormatR16g16b16a16Unorm,
		GLRedInteger:     vk.FormatR16Uint,
		GLRGInteger:      vk.FormatR16g16Uint,
		GLRGBInteger:     vk.FormatR16g16b16Uint,
		GLRGBAInteger:    vk.FormatR16g16b16a16Uint,
		GLDepthComponent: vk.FormatD16Unorm,
	},
	GLShort: {
		GLRed:         vk.FormatR16Snorm,
		GLRG:          vk.FormatR16g16Snorm,
		GLRGB:         vk.FormatR16g16b16Snorm,
		GLRGBA:        vk.FormatR16g16b16a16Snorm,
		GLRedInteger:  vk.FormatR16Sint,
		GLRGInteger:   vk.FormatR16g16Sint,
		GLRGBInteger:  vk.FormatR16g16b16Sint,
		GLRGBAInteger: vk.FormatR16g16b16a16Sint,
	},
	GLUnsignedInt: {
		GLRedInteger:     vk.FormatR32Uint,
		GLRGInteger:      vk.FormatR32g32Uint,
		GLRGBInteger:     vk.FormatR32g32b32Uint,
		GLRGBAInteger:    vk.FormatR32g32b32a32Uint,
		GLDepthComponent: vk.FormatX8D24UnormPack32,
	},
	GLInt: {
		GLRedInteger:  vk.FormatR32Sint,
		GLRGInteger:   vk.FormatR32g32Sint,
		GLRGBInteger:  vk.FormatR32g32b32Sint,
		GLRGBAInteger: vk.FormatR32g32b32a32Sint,
	},
	GLHalfFloat: {
		GLRed:  vk.FormatR16Sfloat,
		GLRG:   vk.FormatR16g16Sfloat,
		GLRGB:  vk.FormatR16g16b16Sfloat,
		GLRGBA: vk.FormatR16g16b16a16Sfloat,
	},
	GLFloat: {
		GLRed:            vk.FormatR32Sfloat,
		GLRG:             vk.FormatR32g32Sfloat,
		GLRGB:            vk.FormatR32g32b32Sfloat,
		GLRGBA:           vk.FormatR32g32b32a32Sfloat,
		GLDepthComponent: vk.FormatD32Sfloat,
	},
	GLUnsignedShort565: {
		GLRGB: vk.FormatR5g6b5UnormPack16,
	},
	GLUnsignedShort4444: {
		GLRGBA: vk.FormatR4g4b4a4UnormPack16,
	},
	GLUnsignedShort5551: {
		GLRGBA: vk.FormatR5g5b5a1UnormPack16,
	},
	GLUnsignedInt2101010Rev: {
		GLRGBA: vk.FormatA2b10g10r10UnormPack32,
	},
	GLUnsignedInt248: {
		GLDepthStencil: vk.FormatD24UnormS8Uint,
	},
}

// FromGL maps a GL (format, type) pair to the Vulkan format with the
// same texel layout. Unsupported combinations yield
// vk.FormatUndefined.
func FromGL(glFormat, glType GLEnum) vk.Format {
	return fromGLTable[glType][glFormat]
}

type typeCountKey struct {
	glType     GLEnum
	components int
}

// fromGLTypeTable serves descriptors that give only an element type
// and an arity; the layout is assumed R, RG, RGB, RGBA in order.
var fromGLTypeTable = map[typeCountKey]vk.Format{
	{GLUnsignedByte, 1}: vk.FormatR8Unorm,
	{GLUnsignedByte, 2}: vk.FormatR8g8Unorm,
	{GLUnsignedByte, 3}: vk.FormatR8g8b8Unorm,
	{GLUnsignedByte, 4}: vk.FormatR8g8b8a8Unorm,

	{GLByte, 1}: vk.FormatR8Snorm,
	{GLByte, 2}: vk.FormatR8g8Snorm,
	{GLByte, 3}: vk.FormatR8g8b8Snorm,
	{GLByte, 4}: vk.FormatR8g8b8a8Snorm,

	{GLUnsignedShort, 1}: vk.FormatR16Unorm,
	{GLUnsignedShort, 2}: vk.FormatR16g16Unorm,
	{GLUnsignedShort, 3}: vk.FormatR16g16b16Unorm,
	{GLUnsignedShort, 4}: vk.FormatR16g16b16a16Unorm,

	{GLShort, 1}: vk.FormatR16Snorm,
	{GLShort, 2}: vk.FormatR16g16Snorm,
	{GLShort, 3}: vk.FormatR16g16b16Snorm,
	{GLShort, 4}: vk.FormatR16g16b16a16Snorm,

	{GLUnsignedInt, 1}: vk.FormatR32Uint,
	{GLUnsignedInt, 2}: vk.FormatR32g32Uint,
	{GLUnsignedInt, 3}: vk.FormatR32g32b32Uint,
	{GLUnsignedInt, 4}: vk.FormatR32g32b32a32Uint,

	{GLInt, 1}: vk.FormatR32Sint,
	{GLInt, 2}: vk.FormatR32g32Sint,
	{GLInt, 3}: vk.FormatR32g32b32Sint,
	{GLInt, 4}: vk.FormatR32g32b32a32Sint,

	{GLHalfFloat, 1}: vk.FormatR16Sfloat,
	{GLHalfFloat, 2}: vk.FormatR16g16Sfloat,
	{GLHalfFloat, 3}: vk.FormatR16g16b16Sfloat,
	{GLHalfFloat, 4}: vk.FormatR16g16b16a16Sfloat,

	{GLFloat, 1}: vk.FormatR32Sfloat,
	{GLFloat, 2}: vk.FormatR32g32Sfloat,
	{GLFloat, 3}: vk.FormatR32g32b32Sfloat,
	{GLFloat, 4}: vk.FormatR32g32b32a32Sfloat,
}

// FromGLType maps an element type and component count to a Vulkan
// format.
func FromGLType(glType GLEnum, components int) vk.Format {
	return fromGLTypeTable[typeCountKey{glType, components}]
}

// fromInternalFormatTable covers the sized, packed and compressed
// internal formats a container may declare.
var fromInternalFormatTable = map[GLEnum]vk.Format{
	GLR8:          vk.FormatR8Unorm,
	GLRG8:         vk.FormatR8g8Unorm,
	GLRGB8:        vk.FormatR8g8b8Unorm,
	GLRGBA8:       vk.FormatR8g8b8a8Unorm,
	GLR8Snorm:     vk.FormatR8Snorm,
	GLRG8Snorm:    vk.FormatR8g8Snorm,
	GLRGB8Snorm:   vk.FormatR8g8b8Snorm,
	GLRGBA8Snorm:  vk.FormatR8g8b8a8Snorm,
	GLR8UI:        vk.FormatR8Uint,
	GLRG8UI:       vk.FormatR8g8Uint,
	GLRGB8UI:      vk.FormatR8g8b8Uint,
	GLRGBA8UI:     vk.FormatR8g8b8a8Uint,
	GLR8I:         vk.FormatR8Sint,
	GLRG8I:        vk.FormatR8g8Sint,
	GLRGB8I:       vk.FormatR8g8b8Sint,
	GLRGBA8I:      vk.FormatR8g8b8a8Sint,
	GLSRGB8:       vk.FormatR8g8b8Srgb,
	GLSRGB8Alpha8: vk.FormatR8g8b8a8Srgb,

	GLR16:      vk.FormatR16Unorm,
	GLRG16:     vk.FormatR16g16Unorm,
	GLRGBA16:   vk.FormatR16g16b16a16Unorm,
	GLR16F:     vk.FormatR16Sfloat,
	GLRG16F:    vk.FormatR16g16Sfloat,
	GLRGB16F:   vk.FormatR16g16b16Sfloat,
	GLRGBA16F:  vk.FormatR16g16b16a16Sfloat,
	GLR16UI:    vk.FormatR16Uint,
	GLRG16UI:   vk.FormatR16g16Uint,
	GLRGB16UI:  vk.FormatR16g16b16Uint,
	GLRGBA16UI: vk.FormatR16g16b16a16Uint,
	GLR16I:     vk.FormatR16Sint,
	GLRG16I:    vk.FormatR16g16Sint,
	GLRGB16I:   vk.FormatR16g16b16Sint,
	GLRGBA16I:  vk.FormatR16g16b16a16Sint,

	GLR32F:     vk.FormatR32Sfloat,
	GLRG32F:    vk.FormatR32g32Sfloat,
	GLRGB32F:   vk.FormatR32g32b32Sfloat,
	GLRGBA32F:  vk.FormatR32g32b32a32Sfloat,
	GLR32UI:    vk.FormatR32Uint,
	GLRG32UI:   vk.FormatR32g32Uint,
	GLRGB32UI:  vk.FormatR32g32b32Uint,
	GLRGBA32UI: vk.FormatR32g32b32a32Uint,
	GLR32I:     vk.FormatR32Sint,
	GLRG32I:    vk.FormatR32g32Sint,
	GLRGB32I:   vk.FormatR32g32b32Sint,
	GLRGBA32I:  vk.FormatR32g32b32a32Sint,

	GLRGB565:  vk.FormatR5g6b5UnormPack16,
	GLRGBA4:   vk.FormatR4g4b4a4UnormPack16,
	GLRGB5A1:  vk.FormatR5g5b5a1UnormPack16,
	GLRGB10A2: vk.FormatA2b10g10r10UnormPack32,

	GLDepthComponent16:  vk.FormatD16Unorm,
	GLDepthComponent24:  vk.FormatX8D24UnormPack32,
	GLDepthComponent32F: vk.FormatD32Sfloat,
	GLDepth24Stencil8:   vk.FormatD24UnormS8Uint,
	GLDepth32FStencil8:  vk.FormatD32SfloatS8Uint,
	GLStencilIndex8:     vk.FormatS8Uint,

	GLCompressedRGBS3TCDXT1:       vk.FormatBc1RgbUnormBlock,
	GLCompressedRGBAS3TCDXT1:      vk.FormatBc1RgbaUnormBlock,
	GLCompressedRGBAS3TCDXT3:      vk.FormatBc2UnormBlock,
	GLCompressedRGBAS3TCDXT5:      vk.FormatBc3UnormBlock,
	GLCompressedSRGBS3TCDXT1:      vk.FormatBc1RgbSrgbBlock,
	GLCompressedSRGBAlphaS3TCDXT1: vk.FormatBc1RgbaSrgbBlock,
	GLCompressedSRGBAlphaS3TCDXT3: vk.FormatBc2SrgbBlock,
	GLCompressedSRGBAlphaS3TCDXT5: vk.FormatBc3SrgbBlock,

	GLCompressedRedRGTC1:       vk.FormatBc4UnormBlock,
	GLCompressedSignedRedRGTC1: vk.FormatBc4SnormBlock,
	GLCompressedRGRGTC2:        vk.FormatBc5UnormBlock,
	GLCompressedSignedRGRGTC2:  vk.FormatBc5SnormBlock,

	GLCompressedRGBABPTCUnorm:        vk.FormatBc7UnormBlock,
	GLCompressedSRGBAlphaBPTCUnorm:   vk.FormatBc7SrgbBlock,
	GLCompressedRGBBPTCSignedFloat:   vk.FormatBc6hSfloatBlock,
	GLCompressedRGBBPTCUnsignedFloat: vk.FormatBc6hUfloatBlock,

	GLCompressedR11EAC:             vk.FormatEacR11UnormBlock,
	GLCompressedSignedR11EAC:       vk.FormatEacR11SnormBlock,
	GLCompressedRG11EAC:            vk.FormatEacR11g11UnormBlock,
	GLCompressedSignedRG11EAC:      vk.FormatEacR11g11SnormBlock,
	GLCompressedRGB8ETC2:           vk.FormatEtc2R8g8b8UnormBlock,
	GLCompressedSRGB8ETC2:          vk.FormatEtc2R8g8b8SrgbBlock,
	GLCompressedRGB8A1ETC2:         vk.FormatEtc2R8g8b8a1UnormBlock,
	GLCompressedSRGB8A1ETC2:        vk.FormatEtc2R8g8b8a1SrgbBlock,
	GLCompressedRGBA8ETC2EAC:       vk.FormatEtc2R8g8b8a8UnormBlock,
	GLCompressedSRGB8Alpha8ETC2EAC: vk.FormatEtc2R8g8b8a8SrgbBlock,

	GLCompressedRGBAASTC4x4:   vk.FormatAstc4x4UnormBlock,
	GLCompressedRGBAASTC5x4:   vk.FormatAstc5x4UnormBlock,
	GLCompressedRGBAASTC5x5:   vk.FormatAstc5x5UnormBlock,
	GLCompressedRGBAASTC6x5:   vk.FormatAstc6x5UnormBlock,
	GLCompressedRGBAASTC6x6:   vk.FormatAstc6x6UnormBlock,
	GLCompressedRGBAASTC8x5:   vk.FormatAstc8x5UnormBlock,
	GLCompressedRGBAASTC8x6:   vk.FormatAstc8x6UnormBlock,
	GLCompressedRGBAASTC8x8:   vk.FormatAstc8x8UnormBlock,
	GLCompressedRGBAASTC10x5:  vk.FormatAstc10x5UnormBlock,
	GLCompressedRGBAASTC10x6:  vk.FormatAstc10x6UnormBlock,
	GLCompressedRGBAASTC10x8:  vk.FormatAstc10x8UnormBlock,
	GLCompressedRGBAASTC10x10: vk.FormatAstc10x10UnormBlock,
	GLCompressedRGBAASTC12x10: vk.FormatAstc12x10UnormBlock,
	GLCompressedRGBAASTC12x12: vk.FormatAstc12x12UnormBlock,

	GLCompressedSRGBASTC4x4:   vk.FormatAstc4x4SrgbBlock,
	GLCompressedSRGBASTC5x4:   vk.FormatAstc5x4SrgbBlock,
	GLCompressedSRGBASTC5x5:   vk.FormatAstc5x5SrgbBlock,
	GLCompressedSRGBASTC6x5:   vk.FormatAstc6x5SrgbBlock,
	GLCompressedSRGBASTC6x6:   vk.FormatAstc6x6SrgbBlock,
	GLCompressedSRGBASTC8x5:   vk.FormatAstc8x5SrgbBlock,
	GLCompressedSRGBASTC8x6:   vk.FormatAstc8x6SrgbBlock,
	GLCompressedSRGBASTC8x8:   vk.FormatAstc8x8SrgbBlock,
	GLCompressedSRGBASTC10x5:  vk.FormatAstc10x5SrgbBlock,
	GLCompressedSRGBASTC10x6:  vk.FormatAstc10x6SrgbBlock,
	GLCompressedSRGBASTC10x8:  vk.FormatAstc10x8SrgbBlock,
	GLCompressedSRGBASTC10x10: vk.FormatAstc10x10SrgbBlock,
	GLCompressedSRGBASTC12x10: vk.FormatAstc12x10SrgbBlock,
	GLCompressedSRGBASTC12x12: vk.FormatAstc12x12SrgbBlock,
}

// FromGLInternalFormat maps a sized, packed or compressed GL internal
// format to the Vulkan format.
func FromGLInternalFormat(internalFormat GLEnum) vk.Format {
	return fromInternalFormatTable[internalFormat]
}
