package tagscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFLACApplicationMultipleBlocks(t *testing.T) {
	data := []byte("fLaC")
	data = append(data, buildFLACBlockHeader(0, false, 10)...) // STREAMINFO
	data = append(data, filler(10)...)
	data = append(data, buildFLACBlockHeader(2, false, 16)...) // APPLICATION #1
	data = append(data, filler(16)...)
	data = append(data, buildFLACBlockHeader(4, false, 8)...) // VORBIS_COMMENT
	data = append(data, filler(8)...)
	data = append(data, buildFLACBlockHeader(2, true, 12)...) // APPLICATION #2, last block
	data = append(data, filler(12)...)
	data = append(data, filler(500)...)

	path := writeTempFile(t, "multiapp.flac", data)
	regions, err := Detect(path, CustomScanMust(t, FLACApplication))
	require.NoError(t, err)

	require.Len(t, regions, 2)
	assert.Equal(t, Region{Format: FLACApplication, Offset: 18, Size: 20}, regions[0])
	assert.Equal(t, Region{Format: FLACApplication, Offset: 50, Size: 16}, regions[1])
}

func TestFLACApplicationNoneYieldsEmpty(t *testing.T) {
	data := []byte("fLaC")
	data = append(data, buildFLACBlockHeader(0, true, 10)...)
	data = append(data, filler(10)...)

	path := writeTempFile(t, "noapp.flac", data)
	regions, err := Detect(path, CustomScanMust(t, FLACApplication))
	require.NoError(t, err)
	assert.Empty(t, regions)
}
