package tagscan

import (
	"bytes"
	"os"
)

// ttaStrategy detects TTA's native metadata block. TTA audio data is
// followed, when present, by an ID3v2-shaped metadata block rather than
// one with its own bespoke signature; the strategy scans the tail buffer
// for the "ID3" preamble and validates it the same way id3v2Strategy does,
// reporting it under the TTAMetadata format rather than an ID3v2 variant
// since this block is scoped to the TTA container.
type ttaStrategy struct{}

func (ttaStrategy) supportedFormats() []Format {
	return []Format{TTAMetadata}
}

func (ttaStrategy) canDetect(bufs FileBuffers) bool {
	return len(bufs.Head) >= 4 && bytes.Equal(bufs.Head[:4], []byte("TTA1"))
}

func (ttaStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	tail := bufs.Tail
	idx := bytes.Index(tail, []byte("ID3"))
	if idx < 0 {
		return nil
	}
	tailStart := length - int64(len(tail))
	offset := tailStart + int64(idx)

	total, ok := id3v2TotalSizeAt(f, offset, length)
	if !ok {
		return nil
	}
	r := Region{Format: TTAMetadata, Offset: uint64(offset), Size: total}
	if !fits(r.Offset, r.Size, uint64(length)) {
		return nil
	}
	return []Region{r}
}
