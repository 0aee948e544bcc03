package tagscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildASFObject(guid []byte, payload []byte) []byte {
	b := make([]byte, 24)
	copy(b[0:16], guid)
	copy(b[16:24], le64b(uint64(24+len(payload))))
	return append(b, payload...)
}

func buildASFFile(objects ...[]byte) []byte {
	var body []byte
	for _, o := range objects {
		body = append(body, o...)
	}
	headerObjectSize := uint64(30 + len(body))
	top := make([]byte, 30)
	copy(top[0:16], asfHeaderGUID)
	copy(top[16:24], le64b(headerObjectSize))
	copy(top[24:28], le32b(uint32(len(objects))))
	return append(top, body...)
}

func TestASFContentDescAndExtContentDesc(t *testing.T) {
	cd := buildASFObject(asfContentDescGUID, filler(20))
	ext := buildASFObject(asfExtContentDescGUID, filler(40))
	other := buildASFObject([]byte("0123456789ABCDEF"), filler(8))

	file := buildASFFile(cd, other, ext)
	path := writeTempFile(t, "tagged.asf", file)

	regions, err := Detect(path, CustomScanMust(t, ASFContentDesc, ASFExtContentDesc))
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, Region{Format: ASFContentDesc, Offset: 30, Size: 24 + 20}, regions[0])
	assert.Equal(t, Region{Format: ASFExtContentDesc, Offset: 30 + uint64(len(cd)) + uint64(len(other)), Size: 24 + 40}, regions[1])
}

func TestASFWithoutDescObjectsYieldsEmpty(t *testing.T) {
	other := buildASFObject([]byte("0123456789ABCDEF"), filler(8))
	file := buildASFFile(other)
	path := writeTempFile(t, "notags.asf", file)

	regions, err := Detect(path, CustomScanMust(t, ASFContentDesc, ASFExtContentDesc))
	require.NoError(t, err)
	assert.Empty(t, regions)
}
