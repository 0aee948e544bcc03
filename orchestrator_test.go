package tagscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCustomScanFiltersOutOtherFormats is seed scenario S6: a file carries
// both ID3v2.3 and APEv2; CustomScan([ID3v2.3]) must return only the
// ID3v2.3 region even though the APE strategy would otherwise also fire.
func TestCustomScanFiltersOutOtherFormats(t *testing.T) {
	id3 := append(buildID3v2Header(3, 50), filler(50)...)
	ape := buildAPEHeader(2000, 100)

	data := append([]byte{}, id3...)
	data = append(data, filler(300)...)
	data = append(data, ape...)

	path := writeTempFile(t, "both.mp3", data)

	regions, err := Detect(path, CustomScanMust(t, ID3v2_3))
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, ID3v2_3, regions[0].Format)
}

// TestUnknownExtensionFallsBackToFullScan is seed scenario S7.
func TestUnknownExtensionFallsBackToFullScan(t *testing.T) {
	id3 := append(buildID3v2Header(3, 50), filler(50)...)
	data := append(append([]byte{}, id3...), filler(500)...)

	pathMystery := writeTempFile(t, "mystery.xyz", data)
	pathFull := writeTempFile(t, "same.bin", data)

	got, err := Detect(pathMystery, ComfortScan())
	require.NoError(t, err)
	want, err := Detect(pathFull, FullScan())
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

// TestDetectIsDeterministic is property 1.
func TestDetectIsDeterministic(t *testing.T) {
	id3 := append(buildID3v2Header(3, 20), filler(20)...)
	data := append(append([]byte{}, id3...), buildID3v1("T", "A", "Al", "2024", "", 1, 0)...)
	path := writeTempFile(t, "repeat.mp3", data)

	first, err := Detect(path, FullScan())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Detect(path, FullScan())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSingleStrategyInvariant is property 2: requesting multiple formats
// served by the same strategy must still invoke it (and thus produce its
// regions) only once, never duplicated.
func TestSingleStrategyInvariant(t *testing.T) {
	id3 := append(buildID3v2Header(3, 15), filler(15)...)
	data := append(append([]byte{}, id3...), filler(200)...)
	path := writeTempFile(t, "dup.mp3", data)

	regions, err := Detect(path, CustomScanMust(t, ID3v2_3, ID3v2_4, ID3v2_2))
	require.NoError(t, err)
	assert.Len(t, regions, 1, "one id3v2Strategy invocation must not produce duplicated regions")
}

// TestFormatFilterSoundness is property 4.
func TestFormatFilterSoundness(t *testing.T) {
	id3 := append(buildID3v2Header(3, 20), filler(20)...)
	ape := buildAPEHeader(2000, 30)
	data := append(append([]byte{}, id3...), filler(100)...)
	data = append(data, ape...)

	path := writeTempFile(t, "mixed.mp3", data)
	targets := []Format{ID3v2_3}
	regions, err := Detect(path, CustomScanMust(t, targets...))
	require.NoError(t, err)
	for _, r := range regions {
		assert.Contains(t, targets, r.Format)
	}
}

// TestBoundsSoundness is property 5.
func TestBoundsSoundness(t *testing.T) {
	id3 := append(buildID3v2Header(3, 20), filler(20)...)
	data := append(append([]byte{}, id3...), buildID3v1("T", "A", "Al", "2024", "", 1, 0)...)
	path := writeTempFile(t, "bounds.mp3", data)

	regions, err := Detect(path, FullScan())
	require.NoError(t, err)
	require.NotEmpty(t, regions)
	length := uint64(len(data))
	for _, r := range regions {
		assert.LessOrEqual(t, r.Offset+r.Size, length)
	}
}

// TestOverlappingTailRegionsAreDistinct documents the Open Question
// decision: an ID3v1.1 tag preceded by an APEv2 footer at the very end of
// the file produces two separate regions, never merged.
func TestOverlappingTailRegionsAreDistinct(t *testing.T) {
	id3 := buildID3v1("T", "A", "Al", "2024", "", 1, 0)
	ape := buildAPEHeader(2000, 100)

	data := append(filler(1000), ape...)
	data = append(data, id3...)

	path := writeTempFile(t, "tailstack.mp3", data)
	regions, err := Detect(path, CustomScanMust(t, APEv2, APEv1, ID3v1_1, ID3v1))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	length := uint64(len(data))
	assert.Equal(t, Region{Format: APEv2, Offset: length - 128 - 100, Size: 100}, regions[0])
	assert.Equal(t, Region{Format: ID3v1_1, Offset: length - 128, Size: 128}, regions[1])
}

// TestFailureIsolation is property 6: a malformed header that a strategy
// must reject (instead of returning a region for) does not prevent a
// later strategy in the same scan from still running and reporting.
func TestFailureIsolation(t *testing.T) {
	badID3 := []byte{'I', 'D', '3', 3, 0, 0, 0x80, 0x00, 0x00, 0x00} // invalid synchsafe
	data := append(append([]byte{}, badID3...), filler(100)...)
	data = append(data, buildID3v1("T", "A", "Al", "2024", "", 1, 0)...)

	path := writeTempFile(t, "partiallybad.mp3", data)
	regions, err := Detect(path, CustomScanMust(t, ID3v2_3, ID3v1_1, ID3v1))
	require.NoError(t, err, "a rejected header must not surface as an error")
	require.Len(t, regions, 1)
	assert.Equal(t, ID3v1_1, regions[0].Format)
}
