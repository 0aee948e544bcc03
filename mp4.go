package tagscan

import (
	"bytes"
	"io"
	"os"

	"github.com/scanlib/tagscan/internal/tlog"
)

// mp4Strategy locates the `ilst` atom nested under moov/udta/meta, which is
// where iTunes-style MP4 metadata lives. It never decodes the atom's
// contents — only its offset and size.
type mp4Strategy struct{}

func (mp4Strategy) supportedFormats() []Format {
	return []Format{MP4}
}

func (mp4Strategy) canDetect(bufs FileBuffers) bool {
	h := bufs.Head
	return len(h) >= 8 && bytes.Equal(h[4:8], []byte("ftyp"))
}

// mp4AtomHeader reads one MP4 atom header at the file's current position:
// size(4 BE) + type(4); size==1 means a 64-bit extended size follows
// immediately after the type.
func mp4AtomHeader(f *os.File) (chunkHeader, bool, error) {
	b := make([]byte, 8)
	if _, err := io.ReadFull(f, b); err != nil {
		return chunkHeader{}, false, nil
	}
	size := int64(be32(b[:4]))
	id := string(b[4:8])
	headerSize := int64(8)
	if size == 1 {
		ext := make([]byte, 8)
		if _, err := io.ReadFull(f, ext); err != nil {
			return chunkHeader{}, false, nil
		}
		size = int64(be64(ext))
		headerSize = 16
	}
	if size == 0 {
		// Atom extends to EOF; not meaningful for our bounded walk.
		return chunkHeader{}, false, nil
	}
	return chunkHeader{id: id, headerSize: headerSize, dataSize: size - headerSize}, true, nil
}

func (mp4Strategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	found, ok := findMP4Atom(f, 0, length, []string{"moov", "udta", "meta", "ilst"})
	if !ok {
		return nil
	}
	r := Region{Format: MP4, Offset: uint64(found.offset), Size: uint64(found.size)}
	if !fits(r.Offset, r.Size, uint64(length)) {
		tlog.Warnf("mp4: ilst region %d+%d exceeds file length %d", found.offset, found.size, length)
		return nil
	}
	return []Region{r}
}

type mp4Found struct {
	offset int64
	size   int64
}

// findMP4Atom descends the given path of atom names, one level per walk,
// returning the final atom's full extent (header included). "meta" atoms
// carry a 4-byte version/flags field before their children; every other
// container atom in this path nests children immediately.
func findMP4Atom(f *os.File, start, end int64, path []string) (mp4Found, bool) {
	if len(path) == 0 {
		return mp4Found{}, false
	}
	target := path[0]
	var result mp4Found
	var hit bool

	walkChunks(f, start, end, 0, mp4AtomHeader, func(h chunkHeader, contentOffset int64) (bool, error) {
		if h.id != target {
			return false, nil
		}
		atomStart := contentOffset - h.headerSize
		atomSize := h.headerSize + h.dataSize

		if len(path) == 1 {
			result = mp4Found{offset: atomStart, size: atomSize}
			hit = true
			return true, nil
		}

		childStart := contentOffset
		if target == "meta" {
			childStart += 4 // version + flags
		}
		childEnd := contentOffset + h.dataSize
		if found, ok := findMP4Atom(f, childStart, childEnd, path[1:]); ok {
			result = found
			hit = true
		}
		return true, nil
	})

	return result, hit
}
