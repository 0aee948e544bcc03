package tagscan

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeTempFile writes data to a new file inside t.TempDir() and returns
// its path. Tests build synthetic byte layouts in memory rather than
// relying on checked-in binary fixtures.
func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func be32b(n uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, n)
	return b
}

func le32b(n uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)
	return b
}

func le16b(n uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, n)
	return b
}

func le64b(n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

func be64b(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// synchsafeBytes encodes n as a 4-byte ID3v2 synchsafe integer.
func synchsafeBytes(n uint32) []byte {
	return []byte{
		byte((n >> 21) & 0x7f),
		byte((n >> 14) & 0x7f),
		byte((n >> 7) & 0x7f),
		byte(n & 0x7f),
	}
}

// pad returns b followed by enough zero bytes to reach length n.
func pad(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

// filler returns n arbitrary (but deterministic, non-zero) bytes, useful
// for filler audio data that must not itself look like a tag signature.
func filler(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(0x55 + i%7)
	}
	return out
}
