package tagscan

import (
	"bytes"
	"io"
	"os"
)

// asfHeaderGUID, asfContentDescGUID, and asfExtContentDescGUID are the
// on-disk (mixed-endian) byte representations of the well-known ASF object
// GUIDs, as they appear in the file rather than in their textual form.
var (
	asfHeaderGUID          = []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C}
	asfContentDescGUID     = []byte{0x33, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C}
	asfExtContentDescGUID  = []byte{0x40, 0xA4, 0xD0, 0xD2, 0x07, 0xE3, 0xD2, 0x11, 0x97, 0xF0, 0x00, 0xA0, 0xC9, 0x5E, 0xA8, 0x50}
	asfTopLevelHeaderSize  = int64(30) // guid(16)+size(8)+numObjects(4)+reserved(2)
	asfObjectHeaderSize    = int64(24) // guid(16)+size(8)
)

// asfStrategy walks the top-level ASF Header Object's children looking for
// the Content Description Object and the Extended Content Description
// Object.
type asfStrategy struct{}

func (asfStrategy) supportedFormats() []Format {
	return []Format{ASFContentDesc, ASFExtContentDesc}
}

func (asfStrategy) canDetect(bufs FileBuffers) bool {
	return len(bufs.Head) >= 16 && bytes.Equal(bufs.Head[:16], asfHeaderGUID)
}

func asfObjectReader(f *os.File) (chunkHeader, bool, error) {
	b := make([]byte, asfObjectHeaderSize)
	if _, err := io.ReadFull(f, b); err != nil {
		return chunkHeader{}, false, nil
	}
	guid := string(b[0:16])
	size := int64(le64(b[16:24]))
	return chunkHeader{id: guid, headerSize: asfObjectHeaderSize, dataSize: size - asfObjectHeaderSize}, true, nil
}

func (asfStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	top, err := readAt(f, 0, int(asfTopLevelHeaderSize))
	if err != nil {
		return nil
	}
	headerObjectSize := int64(le64(top[16:24]))
	end := headerObjectSize
	if end > length {
		end = length
	}
	if end <= asfTopLevelHeaderSize {
		return nil
	}

	var out []Region
	walkChunks(f, asfTopLevelHeaderSize, end, 0, asfObjectReader, func(h chunkHeader, contentOffset int64) (bool, error) {
		var format Format
		switch h.id {
		case string(asfContentDescGUID):
			format = ASFContentDesc
		case string(asfExtContentDescGUID):
			format = ASFExtContentDesc
		default:
			return false, nil
		}
		objStart := contentOffset - h.headerSize
		total := h.headerSize + h.dataSize
		r := Region{Format: format, Offset: uint64(objStart), Size: uint64(total)}
		if fits(r.Offset, r.Size, uint64(length)) {
			out = append(out, r)
		}
		return false, nil
	})
	return out
}
