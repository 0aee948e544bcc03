package tagscan

import (
	"os"

	"github.com/scanlib/tagscan/internal/tlog"
)

// id3v2Strategy detects the ID3v2.2/.3/.4 header at the start of the file.
// It reads only the ten-byte header (never the frames inside it) and
// trusts nothing about the declared size until it has been validated
// against the remaining file length — a corrupt synchsafe size must not
// crash the walk, per the synchsafe landmine design note.
type id3v2Strategy struct{}

func (id3v2Strategy) supportedFormats() []Format {
	return []Format{ID3v2_2, ID3v2_3, ID3v2_4}
}

func (id3v2Strategy) canDetect(bufs FileBuffers) bool {
	h := bufs.Head
	if len(h) < 4 {
		return false
	}
	if h[0] != 'I' || h[1] != 'D' || h[2] != '3' {
		return false
	}
	switch h[3] {
	case 2, 3, 4:
		return true
	default:
		return false
	}
}

func (id3v2Strategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	if length < 10 {
		return nil
	}
	h := bufs.Head
	if len(h) < 10 {
		var err error
		h, err = readAt(f, 0, 10)
		if err != nil {
			tlog.Errorf("id3v2: reading header: %v", err)
			return nil
		}
	}

	var format Format
	switch h[3] {
	case 2:
		format = ID3v2_2
	case 3:
		format = ID3v2_3
	case 4:
		format = ID3v2_4
	default:
		return nil
	}

	flags := h[5]
	footerPresent := format == ID3v2_4 && getBit(flags, 4)

	size, ok := synchsafe(h[6:10])
	if !ok {
		tlog.Warnf("id3v2: malformed synchsafe size, skipping")
		return nil
	}

	total := uint64(10) + uint64(size)
	if footerPresent {
		total += 10
	}

	r := Region{Format: format, Offset: 0, Size: total}
	if !fits(r.Offset, r.Size, uint64(length)) {
		tlog.Warnf("id3v2: declared size %d exceeds file length %d", total, length)
		return nil
	}
	return []Region{r}
}

// id3v2TotalSizeAt reads and validates an ID3v2 header located at an
// arbitrary offset (rather than offset 0), returning its total on-disk
// size. Used by container formats (DSF, TTA) that embed an ID3v2 block
// away from the start of the file.
func id3v2TotalSizeAt(f *os.File, offset int64, length int64) (uint64, bool) {
	if offset < 0 || offset+10 > length {
		return 0, false
	}
	h, err := readAt(f, offset, 10)
	if err != nil {
		return 0, false
	}
	if h[0] != 'I' || h[1] != 'D' || h[2] != '3' {
		return 0, false
	}
	switch h[3] {
	case 2, 3, 4:
	default:
		return 0, false
	}
	footerPresent := h[3] == 4 && getBit(h[5], 4)
	size, ok := synchsafe(h[6:10])
	if !ok {
		return 0, false
	}
	total := uint64(10) + uint64(size)
	if footerPresent {
		total += 10
	}
	return total, true
}
