package tagscan

import (
	"bytes"
	"io"
	"os"
)

// aiffStrategy walks an AIFF/AIFC container's big-endian chunks and reports
// each metadata chunk — NAME, AUTH, "(c) ", ANNO — as its own region,
// rather than one bounding region across all of them.
type aiffStrategy struct{}

func (aiffStrategy) supportedFormats() []Format {
	return []Format{AIFFMetadata}
}

func (aiffStrategy) canDetect(bufs FileBuffers) bool {
	h := bufs.Head
	if len(h) < 12 || !bytes.Equal(h[:4], []byte("FORM")) {
		return false
	}
	return bytes.Equal(h[8:12], []byte("AIFF")) || bytes.Equal(h[8:12], []byte("AIFC"))
}

func aiffChunkReader(f *os.File) (chunkHeader, bool, error) {
	b := make([]byte, 8)
	if _, err := io.ReadFull(f, b); err != nil {
		return chunkHeader{}, false, nil
	}
	return chunkHeader{id: string(b[0:4]), headerSize: 8, dataSize: int64(be32(b[4:8]))}, true, nil
}

var aiffMetadataChunkIDs = map[string]bool{
	"NAME": true,
	"AUTH": true,
	"(c) ": true,
	"ANNO": true,
}

func (aiffStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	var out []Region

	walkChunks(f, 12, length, 2, aiffChunkReader, func(h chunkHeader, contentOffset int64) (bool, error) {
		if !aiffMetadataChunkIDs[h.id] {
			return false, nil
		}
		chunkStart := contentOffset - h.headerSize
		total := h.headerSize + h.dataSize
		r := Region{Format: AIFFMetadata, Offset: uint64(chunkStart), Size: uint64(total)}
		if fits(r.Offset, r.Size, uint64(length)) {
			out = append(out, r)
		}
		return false, nil
	})

	return out
}
