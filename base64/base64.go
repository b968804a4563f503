// Package base64 implements the fixed-alphabet base64 coding the KTX
// embedded-payload path requires. It differs from the standard
// library's on purpose: decoding never fails, mapping bytes outside
// the alphabet to zero through a 256-entry table, and the size
// queries are part of the contract.
package base64

// Alphabet is the standard encoding alphabet; '=' pads incomplete
// final groups.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const pad = '='

var decodeTable [256]byte

func init() {
	for i := range Alphabet {
		decodeTable[Alphabet[i]] = byte(i)
	}
}

// EncodeSize returns the encoded length of n input bytes: four
// characters per started triple.
func EncodeSize(n int) int {
	return (n + 2) / 3 * 4
}

// DecodeSize returns the decoded length of an encoded buffer: three
// bytes per four characters, rounded down, minus up to two trailing
// pad characters.
func DecodeSize(buf []byte) int {
	return len(buf)*3/4 - padCount(buf)
}

func padCount(buf []byte) int {
	n := 0
	for i := len(buf) - 1; i >= 0 && n < 2; i-- {
		if buf[i] != pad {
			break
		}
		n++
	}
	return n
}

// Encode returns the base64 encoding of src. Each 24 input bits
// become four 6-bit alphabet indices; a final group of one or two
// bytes emits two or three characters followed by two or one pads.
func Encode(src []byte) []byte {
	dst := make([]byte, 0, EncodeSize(len(src)))
	for len(src) >= 3 {
		v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		dst = append(dst,
			Alphabet[v>>18&0x3f], Alphabet[v>>12&0x3f],
			Alphabet[v>>6&0x3f], Alphabet[v&0x3f])
		src = src[3:]
	}
	switch len(src) {
	case 1:
		v := uint32(src[0]) << 16
		dst = append(dst, Alphabet[v>>18&0x3f], Alphabet[v>>12&0x3f], pad, pad)
	case 2:
		v := uint32(src[0])<<16 | uint32(src[1])<<8
		dst = append(dst, Alphabet[v>>18&0x3f], Alphabet[v>>12&0x3f], Alphabet[v>>6&0x3f], pad)
	}
	return dst
}

// Decode returns the bytes encoded in src. Characters outside the
// alphabet, pads included, contribute zero bits; the output length
// comes from DecodeSize, so trailing pads shorten the final triple
// and a ragged tail of two or three characters yields its one or two
// bytes.
func Decode(src []byte) []byte {
	n := DecodeSize(src)
	if n <= 0 {
		return nil
	}
	dst := make([]byte, 0, n)
	i := 0
	for ; i+4 <= len(src); i += 4 {
		v := uint32(decodeTable[src[i]])<<18 |
			uint32(decodeTable[src[i+1]])<<12 |
			uint32(decodeTable[src[i+2]])<<6 |
			uint32(decodeTable[src[i+3]])
		dst = append(dst, byte(v>>16), byte(v>>8), byte(v))
	}
	switch len(src) - i {
	case 2:
		v := uint32(decodeTable[src[i]])<<18 | uint32(decodeTable[src[i+1]])<<12
		dst = append(dst, byte(v>>16))
	case 3:
		v := uint32(decodeTable[src[i]])<<18 |
			uint32(decodeTable[src[i+1]])<<12 |
			uint32(decodeTable[src[i+2]])<<6
		dst = append(dst, byte(v>>16), byte(v>>8))
	}
	return dst[:n]
}
