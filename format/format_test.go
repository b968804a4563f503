package format

import (
	"fmt"
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestFromGL(t *testing.T) {
	cases := []struct {
		glFormat, glType GLEnum
		want             vk.Format
	}{
		{GLRGBA, GLUnsignedByte, vk.FormatR8g8b8a8Unorm},
		{GLBGRA, GLUnsignedByte, vk.FormatB8g8r8a8Unorm},
		{GLRGB, GLUnsignedShort565, vk.FormatR5g6b5UnormPack16},
		{GLRGBA, GLFloat, vk.FormatR32g32b32a32Sfloat},
		{GLDepthStencil, GLUnsignedInt248, vk.FormatD24UnormS8Uint},
		{GLRGBA, GLUnsignedInt248, vk.FormatUndefined},
		{GLRed, GLEnum(0xffff), vk.FormatUndefined},
	}
	for _, tc := range cases {
		if got := FromGL(tc.glFormat, tc.glType); got != tc.want {
			t.Errorf("FromGL(%#04x, %#04x) = %d, want %d",
				uint32(tc.glFormat), uint32(tc.glType), got, tc.want)
		}
	}
}

func TestFromGLType(t *testing.T) {
	cases := []struct {
		glType     GLEnum
		components int
		want       vk.Format
	}{
		{GLUnsignedByte, 4, vk.FormatR8g8b8a8Unorm},
		{GLFloat, 3, vk.FormatR32g32b32Sfloat},
		{GLHalfFloat, 2, vk.FormatR16g16Sfloat},
		{GLUnsignedByte, 5, vk.FormatUndefined},
		{GLUnsignedShort565, 3, vk.FormatUndefined},
	}
	for _, tc := range cases {
		if got := FromGLType(tc.glType, tc.components); got != tc.want {
			t.Errorf("FromGLType(%#04x, %d) = %d, want %d",
				uint32(tc.glType), tc.components, got, tc.want)
		}
	}
}

func TestFromGLInternalFormat(t *testing.T) {
	cases := []struct {
		internal GLEnum
		want     vk.Format
	}{
		{GLRGBA8, vk.FormatR8g8b8a8Unorm},
		{GLSRGB8Alpha8, vk.FormatR8g8b8a8Srgb},
		{GLCompressedRGBAS3TCDXT1, vk.FormatBc1RgbaUnormBlock},
		{GLCompressedRGBA8ETC2EAC, vk.FormatEtc2R8g8b8a8UnormBlock},
		{GLCompressedSRGBASTC8x8, vk.FormatAstc8x8SrgbBlock},
		{GLDepth32FStencil8, vk.FormatD32SfloatS8Uint},
		{GLEnum(0x1234), vk.FormatUndefined},
	}
	for _, tc := range cases {
		if got := FromGLInternalFormat(tc.internal); got != tc.want {
			t.Errorf("FromGLInternalFormat(%#04x) = %d, want %d", uint32(tc.internal), got, tc.want)
		}
	}
}

func TestSizeOf(t *testing.T) {
	rgba := SizeOf(vk.FormatR8g8b8a8Unorm)
	if rgba.Flags != 0 || rgba.BlockSize != 4 || rgba.BlockWidth != 1 || rgba.BlockHeight != 1 || rgba.BlockDepth != 1 {
		t.Errorf("unexpected size for R8G8B8A8: %+v", rgba)
	}

	bc1 := SizeOf(vk.FormatBc1RgbaUnormBlock)
	if bc1.Flags != Compressed || bc1.BlockSize != 8 || bc1.BlockWidth != 4 || bc1.BlockHeight != 4 || bc1.BlockDepth != 1 {
		t.Errorf("unexpected size for BC1: %+v", bc1)
	}

	packed := SizeOf(vk.FormatR5g6b5UnormPack16)
	if packed.Flags != Packed || packed.BlockSize != 2 {
		t.Errorf("unexpected size for R5G6B5: %+v", packed)
	}

	if SizeOf(vk.FormatUndefined) != (FormatSize{}) {
		t.Errorf("untabulated format has a size")
	}
}

func TestLevelSize(t *testing.T) {
	cases := []struct {
		format  vk.Format
		w, h, d uint32
		want    uint64
	}{
		{vk.FormatR8g8b8a8Unorm, 16, 16, 1, 1024},
		{vk.FormatR8g8b8a8Unorm, 1, 1, 1, 4},
		{vk.FormatBc1RgbaUnormBlock, 16, 16, 1, 128},
		// Partial blocks round up to whole ones.
		{vk.FormatBc1RgbaUnormBlock, 1, 1, 1, 8},
		{vk.FormatBc1RgbaUnormBlock, 5, 5, 1, 32},
		{vk.FormatAstc8x5UnormBlock, 8, 5, 1, 16},
		{vk.FormatAstc8x5UnormBlock, 9, 6, 1, 64},
		// Depth multiplies uncompressed sizes.
		{vk.FormatR32Sfloat, 4, 4, 4, 256},
		{vk.FormatUndefined, 4, 4, 1, 0},
	}
	for _, tc := range cases {
		if got := LevelSize(tc.format, tc.w, tc.h, tc.d); got != tc.want {
			t.Errorf("LevelSize(%d, %dx%dx%d) = %d, want %d",
				tc.format, tc.w, tc.h, tc.d, got, tc.want)
		}
	}
}

// Every format the translation tables can produce must carry size
// metadata with sane block geometry.
func TestTranslationTablesHaveSizes(t *testing.T) {
	check := func(f vk.Format, origin string) {
		fs := SizeOf(f)
		if fs.BlockSize == 0 {
			t.Errorf("%s: format %d has no size entry", origin, f)
			return
		}
		if fs.BlockWidth < 1 || fs.BlockHeight < 1 || fs.BlockDepth < 1 {
			t.Errorf("%s: format %d has degenerate block %+v", origin, f, fs)
		}
		if fs.Flags&Compressed != 0 && fs.BlockWidth == 1 && fs.BlockHeight == 1 {
			t.Errorf("compressed format %d has a 1x1 block", f)
		}
	}
	for glType, inner := range fromGLTable {
		for glFormat, f := range inner {
			check(f, fmt.Sprintf("fromGLTable %#04x/%#04x", uint32(glType), uint32(glFormat)))
		}
	}
	for key, f := range fromGLTypeTable {
		check(f, fmt.Sprintf("fromGLTypeTable %#04x x%d", uint32(key.glType), key.components))
	}
	for internal, f := range fromInternalFormatTable {
		check(f, fmt.Sprintf("fromInternalFormatTable %#04x", uint32(internal)))
	}
}
