package ktx

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers/base64"
	"github.com/celer/vklayers/format"
)

// buildHeader lays down the identifier and 13 header words in the
// given byte order.
func buildHeader(order binary.ByteOrder, words [13]uint32) []byte {
	data := make([]byte, headerSize)
	copy(data, identifier[:])
	for i, w := range words {
		order.PutUint32(data[12+4*i:], w)
	}
	return data
}

func rgba4x4Words() [13]uint32 {
	return [13]uint32{
		endiannessNative,
		uint32(format.GLUnsignedByte), // glType
		1,                             // glTypeSize
		uint32(format.GLRGBA),         // glFormat
		uint32(format.GLRGBA8),        // glInternalFormat
		uint32(format.GLRGBA),         // glBaseInternalFormat
		4, 4, 0,                       // extent
		0, // array elements
		1, // faces
		2, // mip levels
		0, // key/value bytes
	}
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader(buildHeader(binary.LittleEndian, rgba4x4Words()))
	require.NoError(t, err)
	assert.Equal(t, format.GLRGBA8, h.GLInternalFormat)
	assert.Equal(t, uint32(4), h.PixelWidth)
	assert.Equal(t, uint32(4), h.PixelHeight)
	assert.Equal(t, uint32(2), h.NumberOfMipmapLevels)
	assert.Equal(t, vk.FormatR8g8b8a8Unorm, h.Format())
}

func TestParseHeaderByteSwapped(t *testing.T) {
	// A big-endian writer stores the same words; every field must come
	// out byte-swapped to host order.
	h, err := ParseHeader(buildHeader(binary.BigEndian, rgba4x4Words()))
	require.NoError(t, err)
	assert.Equal(t, format.GLRGBA8, h.GLInternalFormat)
	assert.Equal(t, uint32(4), h.PixelWidth)
	assert.Equal(t, uint32(2), h.NumberOfMipmapLevels)
}

func TestParseHeaderRejects(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		_, err := ParseHeader(buildHeader(binary.LittleEndian, rgba4x4Words())[:20])
		assert.Error(t, err)
	})
	t.Run("bad identifier", func(t *testing.T) {
		data := buildHeader(binary.LittleEndian, rgba4x4Words())
		data[0] = 'K'
		_, err := ParseHeader(data)
		assert.Error(t, err)
	})
	t.Run("bad endianness word", func(t *testing.T) {
		words := rgba4x4Words()
		words[0] = 0xdeadbeef
		_, err := ParseHeader(buildHeader(binary.LittleEndian, words))
		assert.Error(t, err)
	})
	t.Run("zero width", func(t *testing.T) {
		words := rgba4x4Words()
		words[6] = 0
		_, err := ParseHeader(buildHeader(binary.LittleEndian, words))
		assert.Error(t, err)
	})
	t.Run("bad face count", func(t *testing.T) {
		words := rgba4x4Words()
		words[10] = 3
		_, err := ParseHeader(buildHeader(binary.LittleEndian, words))
		assert.Error(t, err)
	})
}

func TestHeaderFormatFallsBackToFormatType(t *testing.T) {
	words := rgba4x4Words()
	words[4] = 0 // no internal format tabulated
	h, err := ParseHeader(buildHeader(binary.LittleEndian, words))
	require.NoError(t, err)
	assert.Equal(t, vk.FormatR8g8b8a8Unorm, h.Format())
}

func TestLevels(t *testing.T) {
	h, err := ParseHeader(buildHeader(binary.LittleEndian, rgba4x4Words()))
	require.NoError(t, err)

	levels, err := h.Levels()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	// Each level's data follows its 4-byte imageSize word.
	assert.Equal(t, uint64(headerSize+4), levels[0].Offset)
	assert.Equal(t, uint64(4*4*4), levels[0].Size)
	assert.Equal(t, uint32(4), levels[0].Width)

	assert.Equal(t, levels[0].Offset+levels[0].Size+4, levels[1].Offset)
	assert.Equal(t, uint64(2*2*4), levels[1].Size)
	assert.Equal(t, uint32(2), levels[1].Width)
	assert.Equal(t, uint32(2), levels[1].Height)
}

func TestLevelsCubeMap(t *testing.T) {
	words := rgba4x4Words()
	words[10] = 6 // faces
	words[11] = 1 // single level
	h, err := ParseHeader(buildHeader(binary.LittleEndian, words))
	require.NoError(t, err)

	levels, err := h.Levels()
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, uint64(6*4*4*4), levels[0].Size)
}

func TestLevelsCompressed(t *testing.T) {
	words := rgba4x4Words()
	words[1] = 0 // compressed: no type
	words[3] = 0
	words[4] = uint32(format.GLCompressedRGBAS3TCDXT1)
	words[6], words[7] = 8, 8
	words[11] = 1
	h, err := ParseHeader(buildHeader(binary.LittleEndian, words))
	require.NoError(t, err)

	levels, err := h.Levels()
	require.NoError(t, err)
	// 8x8 BC1 is a 2x2 grid of 8-byte blocks.
	assert.Equal(t, uint64(32), levels[0].Size)
}

func TestLevelsUnknownFormat(t *testing.T) {
	words := rgba4x4Words()
	words[1], words[3], words[4] = 0, 0, 0x9999
	h, err := ParseHeader(buildHeader(binary.LittleEndian, words))
	require.NoError(t, err)
	_, err = h.Levels()
	assert.Error(t, err)
}

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("hello ktx")
	uri := "data:application/octet-stream;base64," + string(base64.Encode(payload))
	got, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeDataURIRejects(t *testing.T) {
	for _, uri := range []string{
		"http://example.com/tex.ktx",
		"data:application/octet-stream",
		"data:text/plain,plain-payload",
	} {
		_, err := DecodeDataURI(uri)
		assert.Error(t, err, "uri %q", uri)
	}
}
