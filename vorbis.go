package tagscan

import (
	"bytes"
	"os"

	"github.com/scanlib/tagscan/internal/tlog"
)

// vorbisStrategy locates the Vorbis comment block, which is carried
// differently depending on container: a FLAC stream stores it as one
// metadata block among several; an OGG stream splits it across one or more
// contiguous logical pages following the identification page.
type vorbisStrategy struct{}

func (vorbisStrategy) supportedFormats() []Format {
	return []Format{VorbisComment}
}

func (vorbisStrategy) canDetect(bufs FileBuffers) bool {
	h := bufs.Head
	if len(h) < 4 {
		return false
	}
	return bytes.Equal(h[:4], []byte("fLaC")) || bytes.Equal(h[:4], []byte("OggS"))
}

func (vorbisStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	h := bufs.Head
	if len(h) < 4 {
		return nil
	}
	switch {
	case bytes.Equal(h[:4], []byte("fLaC")):
		return flacVorbisRegion(f, length)
	case bytes.Equal(h[:4], []byte("OggS")):
		return oggVorbisRegion(f, length)
	default:
		return nil
	}
}

// flacVorbisRegion walks FLAC metadata blocks starting at offset 4, each
// headed by {last_flag:1, type:7, size:24-big-endian}, stopping at the
// first VORBIS_COMMENT block (type 4) or at the last-metadata-block flag.
func flacVorbisRegion(f *os.File, length int64) []Region {
	const flacBlockTypeVorbisComment = 4
	pos := int64(4)
	for pos+4 <= length {
		hdr, err := readAt(f, pos, 4)
		if err != nil {
			tlog.Errorf("vorbis: reading FLAC block header at %d: %v", pos, err)
			return nil
		}
		last := getBit(hdr[0], 7)
		blockType := hdr[0] &^ (1 << 7)
		blockLen := int64(beUint(hdr[1:4]))

		if blockType == flacBlockTypeVorbisComment {
			total := uint64(4) + uint64(blockLen)
			r := Region{Format: VorbisComment, Offset: uint64(pos), Size: total}
			if !fits(r.Offset, r.Size, uint64(length)) {
				tlog.Warnf("vorbis: FLAC comment block size %d exceeds file length %d", total, length)
				return nil
			}
			return []Region{r}
		}

		if last {
			return nil
		}
		pos += 4 + blockLen
	}
	return nil
}

// oggPageHeader is the fixed 27-byte prefix of an OGG page plus its
// variable-length segment table, reduced to what the walk needs: the
// header's total size and the page's payload (data) size.
type oggPageHeader struct {
	continuation bool
	headerSize   int64
	dataSize     int64
}

// oggPageAt reads the OGG page header located at offset, returning ok=false
// if it isn't a valid page (bad capture pattern, truncated segment table).
func oggPageAt(f *os.File, offset int64) (oggPageHeader, bool) {
	fixed, err := readAt(f, offset, 27)
	if err != nil {
		return oggPageHeader{}, false
	}
	if !bytes.Equal(fixed[:4], []byte("OggS")) {
		return oggPageHeader{}, false
	}
	headerTypeFlag := fixed[5]
	pageSegments := int(fixed[26])

	segments, err := readAt(f, offset+27, pageSegments)
	if err != nil {
		return oggPageHeader{}, false
	}
	var dataSize int64
	for _, s := range segments {
		dataSize += int64(s)
	}
	return oggPageHeader{
		continuation: headerTypeFlag&0x1 != 0,
		headerSize:   27 + int64(pageSegments),
		dataSize:     dataSize,
	}, true
}

// oggVorbisRegion locates the comment packet's pages: the identification
// header occupies the first logical page in its entirety; the comment
// packet begins on the next page and may continue (via the continuation
// flag) across further pages before the setup header or first audio page
// begins. The region spans every page carrying the comment packet.
func oggVorbisRegion(f *os.File, length int64) []Region {
	idPage, ok := oggPageAt(f, 0)
	if !ok {
		tlog.Warnf("vorbis: malformed OGG identification page")
		return nil
	}

	start := idPage.headerSize + idPage.dataSize
	pos := start
	var total int64
	first := true
	for {
		page, ok := oggPageAt(f, pos)
		if !ok {
			break
		}
		if !first && !page.continuation {
			break
		}
		first = false
		size := page.headerSize + page.dataSize
		total += size
		pos += size
	}
	if total == 0 {
		return nil
	}

	r := Region{Format: VorbisComment, Offset: uint64(start), Size: uint64(total)}
	if !fits(r.Offset, r.Size, uint64(length)) {
		tlog.Warnf("vorbis: OGG comment region size %d exceeds file length %d", total, length)
		return nil
	}
	return []Region{r}
}
