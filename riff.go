package tagscan

import (
	"bytes"
	"io"
	"os"

	"github.com/scanlib/tagscan/internal/tlog"
)

// riffStrategy walks a RIFF/WAVE container looking for a LIST/INFO chunk
// (RIFF-INFO) and a bext chunk (Broadcast Wave, versioned BWFv0/1/2 by a
// 16-bit version field inside the chunk payload).
type riffStrategy struct{}

func (riffStrategy) supportedFormats() []Format {
	return []Format{RIFFInfo, BWFv0, BWFv1, BWFv2}
}

func (riffStrategy) canDetect(bufs FileBuffers) bool {
	h := bufs.Head
	return len(h) >= 12 && bytes.Equal(h[:4], []byte("RIFF")) && bytes.Equal(h[8:12], []byte("WAVE"))
}

func riffChunkReader(f *os.File) (chunkHeader, bool, error) {
	b := make([]byte, 8)
	if _, err := io.ReadFull(f, b); err != nil {
		return chunkHeader{}, false, nil
	}
	return chunkHeader{id: string(b[0:4]), headerSize: 8, dataSize: int64(le32(b[4:8]))}, true, nil
}

// bextVersionOffset is the byte offset, within a bext chunk's payload, of
// the 16-bit little-endian version field that distinguishes BWFv0/1/2.
const bextVersionOffset = 254

func (riffStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	var out []Region

	walkChunks(f, 12, length, 2, riffChunkReader, func(h chunkHeader, contentOffset int64) (bool, error) {
		chunkStart := contentOffset - h.headerSize
		total := h.headerSize + h.dataSize

		switch h.id {
		case "LIST":
			if h.dataSize < 4 {
				return false, nil
			}
			inner, err := readAt(f, contentOffset, 4)
			if err != nil || !bytes.Equal(inner, []byte("INFO")) {
				return false, nil
			}
			r := Region{Format: RIFFInfo, Offset: uint64(chunkStart), Size: uint64(total)}
			if fits(r.Offset, r.Size, uint64(length)) {
				out = append(out, r)
			}
		case "bext":
			if h.dataSize < bextVersionOffset+2 {
				tlog.Warnf("riff: bext chunk too short for version field")
				return false, nil
			}
			verBytes, err := readAt(f, contentOffset+bextVersionOffset, 2)
			if err != nil {
				tlog.Errorf("riff: reading bext version: %v", err)
				return false, nil
			}
			format, ok := bwfFormatForVersion(le16(verBytes))
			if !ok {
				return false, nil
			}
			r := Region{Format: format, Offset: uint64(chunkStart), Size: uint64(total)}
			if fits(r.Offset, r.Size, uint64(length)) {
				out = append(out, r)
			}
		}
		return false, nil
	})

	return out
}

func bwfFormatForVersion(v uint16) (Format, bool) {
	switch v {
	case 0:
		return BWFv0, true
	case 1:
		return BWFv1, true
	case 2:
		return BWFv2, true
	default:
		return "", false
	}
}
