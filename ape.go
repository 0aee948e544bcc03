package tagscan

import (
	"bytes"
	"os"

	"github.com/scanlib/tagscan/internal/tlog"
)

// apePreamble is the fixed 8-byte APE tag identifier ("APETAGEX").
var apePreamble = []byte("APETAGEX")

const apeHeaderSize = 32

// apeStrategy detects an APEv1/v2 header or footer, which can appear at
// either end of the file: a footer-only tag at the tail (the common case),
// or a header+footer pair bracketing the item data, which can itself sit
// at the head of the file (e.g. ahead of raw PCM) or at the tail (ahead of
// a trailing ID3v1 footer).
type apeStrategy struct{}

func (apeStrategy) supportedFormats() []Format {
	return []Format{APEv1, APEv2}
}

func (apeStrategy) canDetect(bufs FileBuffers) bool {
	return apePreambleAt(bufs.Head, 0) || apePreambleAtTail(bufs.Tail) ||
		apePreambleAt(bufs.Tail, len(bufs.Tail)-apeHeaderSize-128)
}

func apePreambleAt(b []byte, offset int) bool {
	if offset < 0 || offset+apeHeaderSize > len(b) {
		return false
	}
	return bytes.Equal(b[offset:offset+8], apePreamble)
}

func apePreambleAtTail(tail []byte) bool {
	if len(tail) < apeHeaderSize {
		return false
	}
	return bytes.Equal(tail[len(tail)-apeHeaderSize:len(tail)-apeHeaderSize+8], apePreamble)
}

func (apeStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	var out []Region

	// Tail-anchored tag: either a footer (most common) or, when an ID3v1
	// tag follows it, positioned just before that trailing 128 bytes.
	if r, ok := apeAtTail(f, bufs, length); ok {
		out = append(out, r)
	}

	// Head-anchored tag: a header at offset 0, payload following it.
	if r, ok := apeAtHead(f, bufs, length); ok {
		out = append(out, r)
	}

	return out
}

func apeAtHead(f *os.File, bufs FileBuffers, length int64) (Region, bool) {
	if !apePreambleAt(bufs.Head, 0) {
		return Region{}, false
	}
	hdr := bufs.Head[:apeHeaderSize]
	format, payloadSize, ok := parseAPEHeader(hdr)
	if !ok {
		tlog.Warnf("ape: malformed head header")
		return Region{}, false
	}
	total := uint64(apeHeaderSize) + uint64(payloadSize)
	r := Region{Format: format, Offset: 0, Size: total}
	if !fits(r.Offset, r.Size, uint64(length)) {
		tlog.Warnf("ape: head tag size %d exceeds file length %d", total, length)
		return Region{}, false
	}
	return r, true
}

// apeAtTail looks for a footer in the last 32 bytes of the file, or (if an
// ID3v1 footer trails it) the 32 bytes immediately before that. The APE
// "size" field, per format, already counts the footer's own 32 bytes, so
// the region's total size is the field value itself, not field+32 — that
// +32 only applies to a separately-present header (see apeAtHead).
func apeAtTail(f *os.File, bufs FileBuffers, length int64) (Region, bool) {
	candidates := []int64{length - apeHeaderSize, length - apeHeaderSize - 128}
	for _, footerOffset := range candidates {
		if footerOffset < 0 {
			continue
		}
		footer, err := readAt(f, footerOffset, apeHeaderSize)
		if err != nil {
			continue
		}
		if !bytes.Equal(footer[:8], apePreamble) {
			continue
		}
		format, payloadSize, ok := parseAPEHeader(footer)
		if !ok {
			tlog.Warnf("ape: malformed tail footer")
			continue
		}
		end := uint64(footerOffset) + uint64(apeHeaderSize)
		total := uint64(payloadSize)
		if total > end {
			tlog.Warnf("ape: tail tag size %d exceeds available offset %d", total, end)
			continue
		}
		start := end - total
		r := Region{Format: format, Offset: start, Size: total}
		if !fits(r.Offset, r.Size, uint64(length)) {
			continue
		}
		return r, true
	}
	return Region{}, false
}

// parseAPEHeader decodes the 32-byte APE preamble+fixed-header block:
// "APETAGEX"(8) + version(4 LE) + size(4 LE) + item_count(4 LE) +
// flags(4 LE) + reserved(8). size counts the item data plus the footer but
// not a header, so a tail footer's region is exactly size bytes and a head
// header's region is size plus apeHeaderSize.
func parseAPEHeader(b []byte) (format Format, payloadSize uint32, ok bool) {
	if len(b) < apeHeaderSize {
		return "", 0, false
	}
	version := le32(b[8:12])
	payloadSize = le32(b[12:16])
	switch version {
	case 2000:
		return APEv2, payloadSize, true
	case 1000:
		return APEv1, payloadSize, true
	default:
		return "", 0, false
	}
}
