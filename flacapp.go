package tagscan

import (
	"bytes"
	"os"

	"github.com/scanlib/tagscan/internal/tlog"
)

// flacAppStrategy reports every FLAC APPLICATION block (type 2) in a FLAC
// stream. Unlike vorbisStrategy it does not stop at the first match: a
// stream may carry more than one APPLICATION block.
type flacAppStrategy struct{}

func (flacAppStrategy) supportedFormats() []Format {
	return []Format{FLACApplication}
}

func (flacAppStrategy) canDetect(bufs FileBuffers) bool {
	return len(bufs.Head) >= 4 && bytes.Equal(bufs.Head[:4], []byte("fLaC"))
}

func (flacAppStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	const applicationBlockType = 2
	var out []Region
	pos := int64(4)
	for pos+4 <= length {
		hdr, err := readAt(f, pos, 4)
		if err != nil {
			tlog.Errorf("flacapp: reading FLAC block header at %d: %v", pos, err)
			return out
		}
		last := getBit(hdr[0], 7)
		blockType := hdr[0] &^ (1 << 7)
		blockLen := int64(beUint(hdr[1:4]))

		if blockType == applicationBlockType {
			total := uint64(4) + uint64(blockLen)
			r := Region{Format: FLACApplication, Offset: uint64(pos), Size: total}
			if fits(r.Offset, r.Size, uint64(length)) {
				out = append(out, r)
			} else {
				tlog.Warnf("flacapp: block size %d at %d exceeds file length %d", total, pos, length)
			}
		}

		if last {
			break
		}
		pos += 4 + blockLen
	}
	return out
}
