// Package ktx reads KTX 1.1 texture containers far enough to hand a
// Vulkan loader what it needs: the resolved vk.Format and the offset
// and size of every image level. It does not decode texel data.
package ktx

import (
	"encoding/binary"
	"fmt"
	"strings"

	units "github.com/docker/go-units"
	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vklayers/base64"
	"github.com/celer/vklayers/format"
)

// identifier is the fixed 12-byte magic at the start of every KTX 1.1
// file.
var identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

const (
	headerSize = 12 + 13*4

	// The endianness word as written by a same-endian encoder; the
	// byte-swapped value means every following word needs swapping.
	endiannessNative  = 0x04030201
	endiannessSwapped = 0x01020304
)

// Header is the fixed portion of a KTX 1.1 file, byte-swapped to host
// order if needed.
type Header struct {
	Endianness            uint32
	GLType                format.GLEnum
	GLTypeSize            uint32
	GLFormat              format.GLEnum
	GLInternalFormat      format.GLEnum
	GLBaseInternalFormat  format.GLEnum
	PixelWidth            uint32
	PixelHeight           uint32
	PixelDepth            uint32
	NumberOfArrayElements uint32
	NumberOfFaces         uint32
	NumberOfMipmapLevels  uint32
	BytesOfKeyValueData   uint32
}

// Level locates one mip level's data within the file.
type Level struct {
	Index  int
	Width  uint32
	Height uint32
	Depth  uint32
	Offset uint64
	Size   uint64
}

// ParseHeader validates the identifier and decodes the header words.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < headerSize {
		return h, fmt.Errorf("ktx: file too small: %s, need at least %s",
			units.HumanSize(float64(len(data))), units.HumanSize(float64(headerSize)))
	}
	for i := range identifier {
		if data[i] != identifier[i] {
			return h, fmt.Errorf("ktx: invalid identifier byte %d: got %#02x", i, data[i])
		}
	}

	word := func(i int) uint32 {
		return binary.LittleEndian.Uint32(data[12+4*i:])
	}
	h.Endianness = word(0)
	swap := false
	switch h.Endianness {
	case endiannessNative:
	case endiannessSwapped:
		swap = true
	default:
		return h, fmt.Errorf("ktx: invalid endianness word %#08x", h.Endianness)
	}
	rd := func(i int) uint32 {
		v := word(i)
		if swap {
			v = v<<24 | v>>24 | (v&0xff00)<<8 | (v>>8)&0xff00
		}
		return v
	}

	h.GLType = format.GLEnum(rd(1))
	h.GLTypeSize = rd(2)
	h.GLFormat = format.GLEnum(rd(3))
	h.GLInternalFormat = format.GLEnum(rd(4))
	h.GLBaseInternalFormat = format.GLEnum(rd(5))
	h.PixelWidth = rd(6)
	h.PixelHeight = rd(7)
	h.PixelDepth = rd(8)
	h.NumberOfArrayElements = rd(9)
	h.NumberOfFaces = rd(10)
	h.NumberOfMipmapLevels = rd(11)
	h.BytesOfKeyValueData = rd(12)

	if h.PixelWidth == 0 {
		return h, fmt.Errorf("ktx: zero pixel width")
	}
	if h.NumberOfFaces != 1 && h.NumberOfFaces != 6 {
		return h, fmt.Errorf("ktx: face count must be 1 or 6, got %d", h.NumberOfFaces)
	}
	return h, nil
}

// Format resolves the header's GL description to a Vulkan format:
// the internal format when it is tabulated, otherwise the
// format/type pair.
func (h Header) Format() vk.Format {
	if f := format.FromGLInternalFormat(h.GLInternalFormat); f != vk.FormatUndefined {
		return f
	}
	return format.FromGL(h.GLFormat, h.GLType)
}

// Levels computes the location of every mip level's image data. Each
// level in the file is preceded by a 4-byte imageSize word, which the
// offsets skip. A format the tables cannot size yields an error.
func (h Header) Levels() ([]Level, error) {
	f := h.Format()
	if f == vk.FormatUndefined {
		return nil, fmt.Errorf("ktx: no Vulkan format for internalformat %#04x type %#04x format %#04x",
			uint32(h.GLInternalFormat), uint32(h.GLType), uint32(h.GLFormat))
	}
	count := int(h.NumberOfMipmapLevels)
	if count == 0 {
		count = 1
	}
	layers := h.NumberOfArrayElements
	if layers == 0 {
		layers = 1
	}

	w, hgt, d := h.PixelWidth, max32(h.PixelHeight, 1), max32(h.PixelDepth, 1)
	offset := uint64(headerSize) + uint64(h.BytesOfKeyValueData)
	levels := make([]Level, 0, count)
	for i := 0; i < count; i++ {
		one := format.LevelSize(f, w, hgt, d)
		if one == 0 {
			return nil, fmt.Errorf("ktx: no size metadata for format %d", f)
		}
		size := one * uint64(layers) * uint64(h.NumberOfFaces)
		offset += 4 // imageSize word
		levels = append(levels, Level{
			Index: i, Width: w, Height: hgt, Depth: d,
			Offset: offset, Size: size,
		})
		offset += alignUp64(size, 4)
		w, hgt, d = max32(w/2, 1), max32(hgt/2, 1), max32(d/2, 1)
	}
	return levels, nil
}

const dataURIPrefix = "data:"

// DecodeDataURI extracts the payload of a base64 data URI, the form
// embedded textures arrive in. The media type is ignored.
func DecodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, fmt.Errorf("ktx: not a data URI")
	}
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("ktx: data URI has no payload")
	}
	if !strings.HasSuffix(uri[:comma], ";base64") {
		return nil, fmt.Errorf("ktx: data URI payload is not base64")
	}
	return base64.Decode([]byte(uri[comma+1:])), nil
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func alignUp64(v, a uint64) uint64 {
	return (v + a - 1) / a * a
}
