package tagscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMP4Atom returns a basic-size (32-bit) atom: size(4BE)+type(4)+body.
func buildMP4Atom(kind string, body []byte) []byte {
	b := make([]byte, 8)
	copy(b[4:8], kind)
	copy(b[0:4], be32b(uint32(8+len(body))))
	return append(b, body...)
}

func TestMP4LocatesIlstUnderMoovUdtaMeta(t *testing.T) {
	ilst := buildMP4Atom("ilst", filler(40))
	metaBody := append([]byte{0, 0, 0, 0}, ilst...) // version+flags then children
	meta := buildMP4Atom("meta", metaBody)
	udta := buildMP4Atom("udta", meta)
	moov := buildMP4Atom("moov", udta)

	data := buildMP4Atom("ftyp", []byte("isom"))
	data = append(data, moov...)
	data = append(data, filler(200)...) // mdat

	path := writeTempFile(t, "clip.mp4", data)
	regions, err := Detect(path, CustomScanMust(t, MP4))
	require.NoError(t, err)
	require.Len(t, regions, 1)

	ftypSize := int64(8 + len("isom"))
	udtaOffset := ftypSize + 8 // moov header
	metaOffset := udtaOffset + 8 // udta header
	ilstOffset := metaOffset + 8 + 4 // meta header + version/flags

	assert.EqualValues(t, ilstOffset, regions[0].Offset)
	assert.EqualValues(t, 8+40, regions[0].Size)
	assert.Equal(t, MP4, regions[0].Format)
}

func TestMP4WithoutIlstYieldsNoRegion(t *testing.T) {
	moov := buildMP4Atom("moov", buildMP4Atom("udta", filler(20)))
	data := buildMP4Atom("ftyp", []byte("isom"))
	data = append(data, moov...)

	path := writeTempFile(t, "noilst.mp4", data)
	regions, err := Detect(path, CustomScanMust(t, MP4))
	require.NoError(t, err)
	assert.Empty(t, regions)
}
