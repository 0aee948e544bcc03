package tagscan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullScanAndComfortScanModes(t *testing.T) {
	assert.Equal(t, FullScanMode, FullScan().Mode())
	assert.Equal(t, ComfortScanMode, ComfortScan().Mode())
	assert.Nil(t, FullScan().CustomFormats())
	assert.Nil(t, ComfortScan().CustomFormats())
}

func TestCustomScanRejectsEmptyOrNilList(t *testing.T) {
	_, err := CustomScan(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = CustomScan([]Format{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestCustomScanDefensiveCopies(t *testing.T) {
	formats := []Format{ID3v2_3, APEv2}
	cfg, err := CustomScan(formats)
	require.NoError(t, err)
	assert.Equal(t, CustomScanMode, cfg.Mode())

	formats[0] = TTAMetadata // mutate caller's slice after construction
	assert.Equal(t, []Format{ID3v2_3, APEv2}, cfg.CustomFormats())

	returned := cfg.CustomFormats()
	returned[0] = TTAMetadata // mutate returned slice
	assert.Equal(t, []Format{ID3v2_3, APEv2}, cfg.CustomFormats())
}
