package tagscan

import (
	"io"
	"os"
)

// chunkHeader is one length-prefixed record as read by walkChunks: a
// fixed-width type tag plus a declared payload size. RIFF, AIFF, MP4, and
// ASF all describe their containers this way, differing only in id width,
// size width, and endianness — walkChunks factors the "read header,
// validate size, invoke callback, advance" loop shared by all of them, per
// the chunk-walker design note.
type chunkHeader struct {
	id         string
	headerSize int64
	dataSize   int64 // payload size, not including id/size fields
}

// chunkVisitor is called once per chunk found by walkChunks. Returning
// stop=true ends the walk early (e.g. once the sought chunk is found);
// returning an error also ends the walk, and is swallowed by the caller
// per the "no strategy error ever propagates" rule.
type chunkVisitor func(h chunkHeader, contentOffset int64) (stop bool, err error)

// chunkReader reads one chunk header at the current file position and
// returns it, or ok=false at a clean end of data.
type chunkReader func(f *os.File) (h chunkHeader, ok bool, err error)

// walkChunks repeatedly invokes read at the current position, then visit,
// advancing by headerSize+dataSize (rounded up to align if align>0) until
// read reports no more chunks, visit asks to stop, end is reached, or a
// size would run past end. It never returns an error to its caller: a
// malformed or truncated container simply ends the walk, matching the
// "no strategy may abort the scan" rule.
func walkChunks(f *os.File, start, end int64, align int64, read chunkReader, visit chunkVisitor) {
	pos := start
	for pos < end {
		if _, err := f.Seek(pos, io.SeekStart); err != nil {
			return
		}
		h, ok, err := read(f)
		if err != nil || !ok {
			return
		}
		if h.headerSize < 0 || h.dataSize < 0 {
			return
		}
		contentOffset := pos + h.headerSize
		if contentOffset > end {
			return
		}
		if contentOffset+h.dataSize > end {
			// Walks with align 2 (RIFF/WAV and AIFF) tolerate a 4-byte
			// shortage in the final chunk (common padding bug); every
			// other walk stops.
			if end-(contentOffset+h.dataSize) != -4 || align != 2 {
				return
			}
		}

		stop, verr := visit(h, contentOffset)
		if verr != nil || stop {
			return
		}

		advance := h.headerSize + h.dataSize
		if align > 0 && advance%align != 0 {
			advance += align - advance%align
		}
		if advance <= 0 {
			return
		}
		pos += advance
	}
}
