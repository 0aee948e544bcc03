package tagscan

import (
	"bytes"
	"os"
	"strconv"

	"github.com/scanlib/tagscan/internal/tlog"
)

// lyrics3Strategy detects the tail-anchored Lyrics3v1 and Lyrics3v2 tags.
// Both sit immediately before a trailing ID3v1 footer when one is present,
// so the search base is L-128 rather than L in that case.
type lyrics3Strategy struct{}

const (
	lyrics3BeginMarker = "LYRICSBEGIN"
	lyrics3V1EndMarker = "LYRICSEND"
	lyrics3V2EndMarker = "LYRICS200"
	lyrics3V1MaxSize   = 5100
)

func (lyrics3Strategy) supportedFormats() []Format {
	return []Format{Lyrics3v1, Lyrics3v2}
}

func (lyrics3Strategy) canDetect(bufs FileBuffers) bool {
	t := bufs.Tail
	return bytes.Contains(t, []byte(lyrics3V1EndMarker)) || bytes.Contains(t, []byte(lyrics3V2EndMarker))
}

func (s lyrics3Strategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	base := length
	if length >= 128 {
		if footer, err := readAt(f, length-128, 3); err == nil && bytes.Equal(footer, []byte("TAG")) {
			base = length - 128
		}
	}

	var out []Region
	if r, ok := lyrics3v1Region(f, base, length); ok {
		out = append(out, r)
	}
	if r, ok := lyrics3v2Region(f, base, length); ok {
		out = append(out, r)
	}
	return out
}

func lyrics3v1Region(f *os.File, base, length int64) (Region, bool) {
	endOffset := base - int64(len(lyrics3V1EndMarker))
	if endOffset < 0 {
		return Region{}, false
	}
	marker, err := readAt(f, endOffset, len(lyrics3V1EndMarker))
	if err != nil || !bytes.Equal(marker, []byte(lyrics3V1EndMarker)) {
		return Region{}, false
	}

	window := int64(lyrics3V1MaxSize + len(lyrics3BeginMarker))
	searchStart := endOffset - window
	if searchStart < 0 {
		searchStart = 0
	}
	chunk, err := readAt(f, searchStart, int(endOffset-searchStart))
	if err != nil {
		tlog.Errorf("lyrics3: reading v1 search window: %v", err)
		return Region{}, false
	}
	beginIdx := bytes.Index(chunk, []byte(lyrics3BeginMarker))
	if beginIdx < 0 {
		return Region{}, false
	}

	beginOffset := searchStart + int64(beginIdx)
	end := endOffset + int64(len(lyrics3V1EndMarker))
	total := end - beginOffset
	r := Region{Format: Lyrics3v1, Offset: uint64(beginOffset), Size: uint64(total)}
	if !fits(r.Offset, r.Size, uint64(length)) {
		return Region{}, false
	}
	return r, true
}

func lyrics3v2Region(f *os.File, base, length int64) (Region, bool) {
	endOffset := base - int64(len(lyrics3V2EndMarker))
	if endOffset < 0 {
		return Region{}, false
	}
	marker, err := readAt(f, endOffset, len(lyrics3V2EndMarker))
	if err != nil || !bytes.Equal(marker, []byte(lyrics3V2EndMarker)) {
		return Region{}, false
	}

	sizeFieldOffset := endOffset - 6
	if sizeFieldOffset < 0 {
		return Region{}, false
	}
	sizeBytes, err := readAt(f, sizeFieldOffset, 6)
	if err != nil {
		tlog.Errorf("lyrics3: reading v2 size field: %v", err)
		return Region{}, false
	}
	payloadSize, err := strconv.Atoi(string(bytes.TrimSpace(sizeBytes)))
	if err != nil || payloadSize < 0 {
		tlog.Warnf("lyrics3: malformed v2 size field %q", sizeBytes)
		return Region{}, false
	}

	total := int64(len(lyrics3BeginMarker)) + int64(payloadSize) + 6 + int64(len(lyrics3V2EndMarker))
	end := endOffset + int64(len(lyrics3V2EndMarker))
	beginOffset := end - total
	if beginOffset < 0 {
		return Region{}, false
	}

	begin, err := readAt(f, beginOffset, len(lyrics3BeginMarker))
	if err != nil || !bytes.Equal(begin, []byte(lyrics3BeginMarker)) {
		tlog.Warnf("lyrics3: v2 size field did not align with begin marker")
		return Region{}, false
	}

	r := Region{Format: Lyrics3v2, Offset: uint64(beginOffset), Size: uint64(total)}
	if !fits(r.Offset, r.Size, uint64(length)) {
		return Region{}, false
	}
	return r, true
}
