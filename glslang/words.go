package glslang

import (
	"fmt"
)

// SPIR-V word streams are little-endian byte sequences as the Vulkan
// spec prescribes for shader-module payloads.

// BytesToWords reinterprets a little-endian byte stream as SPIR-V
// words. The length must be a multiple of four.
func BytesToWords(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("SPIR-V byte length %d is not a multiple of 4", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = uint32(data[4*i]) |
			uint32(data[4*i+1])<<8 |
			uint32(data[4*i+2])<<16 |
			uint32(data[4*i+3])<<24
	}
	return words, nil
}

// SwapWords byte-swaps every word in place and returns the slice. A
// stream whose magic word reads back byte-reversed was produced on a
// host of the other endianness.
func SwapWords(words []uint32) []uint32 {
	for i, w := range words {
		words[i] = w<<24 | w>>24 | (w&0xff00)<<8 | (w>>8)&0xff00
	}
	return words
}

// WordsToBytes is the inverse of BytesToWords.
func WordsToBytes(words []uint32) []byte {
	data := make([]byte, 4*len(words))
	for i, w := range words {
		data[4*i] = byte(w)
		data[4*i+1] = byte(w >> 8)
		data[4*i+2] = byte(w >> 16)
		data[4*i+3] = byte(w >> 24)
	}
	return data
}
