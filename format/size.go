package format

import (
	vk "github.com/vulkan-go/vulkan"
)

// FormatSizeFlags mark packed and block-compressed formats.
type FormatSizeFlags uint32

const (
	Packed FormatSizeFlags = 1 << iota
	Compressed
)

// FormatSize describes one format's block geometry. Uncompressed
// formats have 1x1x1 blocks whose size is the pixel size; compressed
// formats carry their codec's block dimensions. The zero value means
// the format is not tabulated.
type FormatSize struct {
	Flags       FormatSizeFlags
	BlockSize   uint32
	BlockWidth  uint32
	BlockHeight uint32
	BlockDepth  uint32
}

func pixel(bytes uint32) FormatSize {
	return FormatSize{BlockSize: bytes, BlockWidth: 1, BlockHeight: 1, BlockDepth: 1}
}

func packed(bytes uint32) FormatSize {
	return FormatSize{Flags: Packed, BlockSize: bytes, BlockWidth: 1, BlockHeight: 1, BlockDepth: 1}
}

func block(bytes, w, h uint32) FormatSize {
	return FormatSize{Flags: Compressed, BlockSize: bytes, BlockWidth: w, BlockHeight: h, BlockDepth: 1}
}

var formatSizeTable = map[vk.Format]FormatSize{
	vk.FormatR8Unorm: pixel(1), vk.FormatR8Snorm: pixel(1),
	vk.FormatR8Uint: pixel(1), vk.FormatR8Sint: pixel(1), vk.FormatR8Srgb: pixel(1),
	vk.FormatR8g8Unorm: pixel(2), vk.FormatR8g8Snorm: pixel(2),
	vk.FormatR8g8Uint: pixel(2), vk.FormatR8g8Sint: pixel(2),
	vk.FormatR8g8b8Unorm: pixel(3), vk.FormatR8g8b8Snorm: pixel(3),
	vk.FormatR8g8b8Uint: pixel(3), vk.FormatR8g8b8Sint: pixel(3), vk.FormatR8g8b8Srgb: pixel(3),
	vk.FormatB8g8r8Unorm: pixel(3), vk.FormatB8g8r8Snorm: pixel(3),
	vk.FormatB8g8r8Uint: pixel(3), vk.FormatB8g8r8Sint: pixel(3),
	vk.FormatR8g8b8a8Unorm: pixel(4), vk.FormatR8g8b8a8Snorm: pixel(4),
	vk.FormatR8g8b8a8Uint: pixel(4), vk.FormatR8g8b8a8Sint: pixel(4), vk.FormatR8g8b8a8Srgb: pixel(4),
	vk.FormatB8g8r8a8Unorm: pixel(4), vk.FormatB8g8r8a8Snorm: pixel(4),
	vk.FormatB8g8r8a8Uint: pixel(4), vk.FormatB8g8r8a8Sint: pixel(4), vk.FormatB8g8r8a8Srgb: pixel(4),

	vk.FormatR16Unorm: pixel(2), vk.FormatR16Snorm: pixel(2),
	vk.FormatR16Uint: pixel(2), vk.FormatR16Sint: pixel(2), vk.FormatR16Sfloat: pixel(2),
	vk.FormatR16g16Unorm: pixel(4), vk.FormatR16g16Snorm: pixel(4),
	vk.FormatR16g16Uint: pixel(4), vk.FormatR16g16Sint: pixel(4), vk.FormatR16g16Sfloat: pixel(4),
	vk.FormatR16g16b16Unorm: pixel(6), vk.FormatR16g16b16Snorm: pixel(6),
	vk.FormatR16g16b16Uint: pixel(6), vk.FormatR16g16b16Sint: pixel(6), vk.FormatR16g16b16Sfloat: pixel(6),
	vk.FormatR16g16b16a16Unorm: pixel(8), vk.FormatR16g16b16a16Snorm: pixel(8),
	vk.FormatR16g16b16a16Uint: pixel(8), vk.FormatR16g16b16a16Sint: pixel(8), vk.FormatR16g16b16a16Sfloat: pixel(8),

	vk.FormatR32Uint: pixel(4), vk.FormatR32Sint: pixel(4), vk.FormatR32Sfloat: pixel(4),
	vk.FormatR32g32Uint: pixel(8), vk.FormatR32g32Sint: pixel(8), vk.FormatR32g32Sfloat: pixel(8),
	vk.FormatR32g32b32Uint: pixel(12), vk.FormatR32g32b32Sint: pixel(12), vk.FormatR32g32b32Sfloat: pixel(12),
	vk.FormatR32g32b32a32Uint: pixel(16), vk.FormatR32g32b32a32Sint: pixel(16), vk.FormatR32g32b32a32Sfloat: pixel(16),

	vk.FormatR5g6b5UnormPack16:      packed(2),
	vk.FormatR4g4b4a4UnormPack16:    packed(2),
	vk.FormatR5g5b5a1UnormPack16:    packed(2),
	vk.FormatA2b10g10r10UnormPack32: packed(4),

	vk.FormatD16Unorm:         pixel(2),
	vk.FormatX8D24UnormPack32: packed(4),
	vk.FormatD32Sfloat:        pixel(4),
	vk.FormatS8Uint:           pixel(1),
	vk.FormatD16UnormS8Uint:   pixel(3),
	vk.FormatD24UnormS8Uint:   pixel(4),
	vk.FormatD32SfloatS8Uint:  pixel(5),

	vk.FormatBc1RgbUnormBlock: block(8, 4, 4), vk.FormatBc1RgbSrgbBlock: block(8, 4, 4),
	vk.FormatBc1RgbaUnormBlock: block(8, 4, 4), vk.FormatBc1RgbaSrgbBlock: block(8, 4, 4),
	vk.FormatBc2UnormBlock: block(16, 4, 4), vk.FormatBc2SrgbBlock: block(16, 4, 4),
	vk.FormatBc3UnormBlock: block(16, 4, 4), vk.FormatBc3SrgbBlock: block(16, 4, 4),
	vk.FormatBc4UnormBlock: block(8, 4, 4), vk.FormatBc4SnormBlock: block(8, 4, 4),
	vk.FormatBc5UnormBlock: block(16, 4, 4), vk.FormatBc5SnormBlock: block(16, 4, 4),
	vk.FormatBc6hUfloatBlock: block(16, 4, 4), vk.FormatBc6hSfloatBlock: block(16, 4, 4),
	vk.FormatBc7UnormBlock: block(16, 4, 4), vk.FormatBc7SrgbBlock: block(16, 4, 4),

	vk.FormatEtc2R8g8b8UnormBlock: block(8, 4, 4), vk.FormatEtc2R8g8b8SrgbBlock: block(8, 4, 4),
	vk.FormatEtc2R8g8b8a1UnormBlock: block(8, 4, 4), vk.FormatEtc2R8g8b8a1SrgbBlock: block(8, 4, 4),
	vk.FormatEtc2R8g8b8a8UnormBlock: block(16, 4, 4), vk.FormatEtc2R8g8b8a8SrgbBlock: block(16, 4, 4),
	vk.FormatEacR11UnormBlock: block(8, 4, 4), vk.FormatEacR11SnormBlock: block(8, 4, 4),
	vk.FormatEacR11g11UnormBlock: block(16, 4, 4), vk.FormatEacR11g11SnormBlock: block(16, 4, 4),

	vk.FormatAstc4x4UnormBlock: block(16, 4, 4), vk.FormatAstc4x4SrgbBlock: block(16, 4, 4),
	vk.FormatAstc5x4UnormBlock: block(16, 5, 4), vk.FormatAstc5x4SrgbBlock: block(16, 5, 4),
	vk.FormatAstc5x5UnormBlock: block(16, 5, 5), vk.FormatAstc5x5SrgbBlock: block(16, 5, 5),
	vk.FormatAstc6x5UnormBlock: block(16, 6, 5), vk.FormatAstc6x5SrgbBlock: block(16, 6, 5),
	vk.FormatAstc6x6UnormBlock: block(16, 6, 6), vk.FormatAstc6x6SrgbBlock: block(16, 6, 6),
	vk.FormatAstc8x5UnormBlock: block(16, 8, 5), vk.FormatAstc8x5SrgbBlock: block(16, 8, 5),
	vk.FormatAstc8x6UnormBlock: block(16, 8, 6), vk.FormatAstc8x6SrgbBlock: block(16, 8, 6),
	vk.FormatAstc8x8UnormBlock: block(16, 8, 8), vk.FormatAstc8x8SrgbBlock: block(16, 8, 8),
	vk.FormatAstc10x5UnormBlock: block(16, 10, 5), vk.FormatAstc10x5SrgbBlock: block(16, 10, 5),
	vk.FormatAstc10x6UnormBlock: block(16, 10, 6), vk.FormatAstc10x6SrgbBlock: block(16, 10, 6),
	vk.FormatAstc10x8UnormBlock: block(16, 10, 8), vk.FormatAstc10x8SrgbBlock: block(16, 10, 8),
	vk.FormatAstc10x10UnormBlock: block(16, 10, 10), vk.FormatAstc10x10SrgbBlock: block(16, 10, 10),
	vk.FormatAstc12x10UnormBlock: block(16, 12, 10), vk.FormatAstc12x10SrgbBlock: block(16, 12, 10),
	vk.FormatAstc12x12UnormBlock: block(16, 12, 12), vk.FormatAstc12x12SrgbBlock: block(16, 12, 12),
}

// SizeOf returns the block tuple for a format, zero-initialised for
// anything not tabulated.
func SizeOf(f vk.Format) FormatSize {
	return formatSizeTable[f]
}

// LevelSize computes the byte size of one image level: block-aligned
// extents divided into blocks, times the block size. Zero for formats
// without a size entry.
func LevelSize(f vk.Format, width, height, depth uint32) uint64 {
	fs := formatSizeTable[f]
	if fs.BlockSize == 0 {
		return 0
	}
	if depth == 0 {
		depth = 1
	}
	bx := uint64(alignUp(width, fs.BlockWidth) / fs.BlockWidth)
	by := uint64(alignUp(height, fs.BlockHeight) / fs.BlockHeight)
	bz := uint64(alignUp(depth, fs.BlockDepth) / fs.BlockDepth)
	return bx * by * bz * uint64(fs.BlockSize)
}

func alignUp(v, a uint32) uint32 {
	if v == 0 {
		return a
	}
	return (v + a - 1) / a * a
}
