package tagscan

import "encoding/binary"

// getBit reports whether bit n (0 = least significant) is set in b.
func getBit(b byte, n uint) bool {
	x := byte(1 << n)
	return b&x == x
}

// be32 decodes a big-endian uint32 from the first 4 bytes of b. Callers
// must check len(b) >= 4 first.
func be32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// le32 decodes a little-endian uint32 from the first 4 bytes of b.
func le32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// le16 decodes a little-endian uint16 from the first 2 bytes of b.
func le16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// le64 decodes a little-endian uint64 from the first 8 bytes of b.
func le64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// be64 decodes a big-endian uint64 from the first 8 bytes of b.
func be64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// beUint decodes an n-byte (n<=8) big-endian unsigned integer.
func beUint(b []byte) uint64 {
	var n uint64
	for _, x := range b {
		n = n<<8 | uint64(x)
	}
	return n
}

// synchsafe decodes a 4-byte ID3v2 "synchsafe" integer: each byte carries
// 7 payload bits with the top bit required to be zero. ok is false if any
// byte has its top bit set, which the caller must treat as a malformed
// header.
func synchsafe(b []byte) (n uint32, ok bool) {
	if len(b) != 4 {
		return 0, false
	}
	for _, x := range b {
		if x&0x80 != 0 {
			return 0, false
		}
		n = n<<7 | uint32(x)
	}
	return n, true
}

// sevenBitChunked decodes a 7-bit-per-byte chunked integer without
// requiring the top bit to be clear (the encoding of ID3v2.2's 3-byte
// frame sizes, which the format defines as plain 7-bit chunks rather than
// a synchsafe integer with a validity requirement). No strategy in this
// package calls it: they read tag headers only, never frames.
func sevenBitChunked(b []byte) uint32 {
	var n uint32
	for _, x := range b {
		n = n<<7 | uint32(x&0x7f)
	}
	return n
}

// ebmlVLI reads one EBML variable-length integer starting at b[0]. It
// returns the decoded value, the number of bytes consumed, and ok=false if
// b is empty or the leading byte is 0x00 (no length marker bit found in a
// single byte, which this decoder does not support beyond 8 bytes).
// keepMarker controls whether the leading length-marker bit is kept as
// part of the value: element IDs keep it (it's part of the ID), sizes
// strip it (VLI payload only).
func ebmlVLI(b []byte, keepMarker bool) (value uint64, width int, ok bool) {
	if len(b) == 0 {
		return 0, 0, false
	}
	first := b[0]
	if first == 0 {
		return 0, 0, false
	}
	width = 1
	mask := byte(0x80)
	for mask != 0 && first&mask == 0 {
		width++
		mask >>= 1
	}
	if width > 8 || len(b) < width {
		return 0, 0, false
	}
	var payload byte
	if keepMarker {
		payload = first
	} else {
		payload = first &^ mask
	}
	value = uint64(payload)
	for i := 1; i < width; i++ {
		value = value<<8 | uint64(b[i])
	}
	return value, width, true
}

// ebmlAllOnes reports whether a decoded VLI value is the format's
// "unknown size" sentinel (all payload bits set to 1), which callers must
// treat as "unbounded" rather than a literal size.
func ebmlAllOnes(value uint64, width int) bool {
	bits := uint(7 * width)
	if bits >= 64 {
		return value == ^uint64(0)
	}
	return value == (uint64(1)<<bits)-1
}
