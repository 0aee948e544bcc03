package tagscan

import "os"

// EBML element IDs relevant to locating the Tags element, in their
// canonical (marker-bit-included) numeric form.
const (
	ebmlIDHeader  = 0x1A45DFA3
	ebmlIDDocType = 0x4282
	ebmlIDSegment = 0x18538067
	ebmlIDTags    = 0x1254C367
)

// matroskaStrategy reads the EBML header far enough to learn DocType
// (matroska vs webm), then walks to the Segment element and reports every
// direct-child Tags element inside it.
type matroskaStrategy struct{}

func (matroskaStrategy) supportedFormats() []Format {
	return []Format{MatroskaTags, WebMTags}
}

func (matroskaStrategy) canDetect(bufs FileBuffers) bool {
	h := bufs.Head
	return len(h) >= 4 && h[0] == 0x1A && h[1] == 0x45 && h[2] == 0xDF && h[3] == 0xA3
}

// ebmlElement is one decoded (id, size) pair plus the byte ranges derived
// from it.
type ebmlElement struct {
	id            uint64
	start         int64
	headerSize    int64
	dataSize      int64
	contentOffset int64
}

// walkEBML decodes one EBML element at a time between start and end,
// calling visit for each; visit returns true to stop the walk. Unlike
// walkChunks this does not take a fixed-width header reader, because an
// EBML element's id and size fields are each independently
// variable-length.
func walkEBML(f *os.File, start, end int64, visit func(ebmlElement) bool) {
	pos := start
	for pos < end {
		peekLen := int64(12)
		if end-pos < peekLen {
			peekLen = end - pos
		}
		if peekLen <= 0 {
			return
		}
		peek, err := readAt(f, pos, int(peekLen))
		if err != nil {
			return
		}
		id, idWidth, ok := ebmlVLI(peek, true)
		if !ok || idWidth >= len(peek) {
			return
		}
		size, sizeWidth, ok := ebmlVLI(peek[idWidth:], false)
		if !ok {
			return
		}

		headerSize := int64(idWidth + sizeWidth)
		contentOffset := pos + headerSize
		dataSize := int64(size)
		if ebmlAllOnes(size, sizeWidth) {
			dataSize = end - contentOffset // unknown size: consumes rest of parent
		}
		if contentOffset+dataSize > end {
			return
		}

		if visit(ebmlElement{id: id, start: pos, headerSize: headerSize, dataSize: dataSize, contentOffset: contentOffset}) {
			return
		}

		advance := headerSize + dataSize
		if advance <= 0 {
			return
		}
		pos += advance
	}
}

func (matroskaStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	var header ebmlElement
	var found bool
	walkEBML(f, 0, length, func(e ebmlElement) bool {
		if e.id == ebmlIDHeader {
			header = e
			found = true
		}
		return true
	})
	if !found {
		return nil
	}

	format := MatroskaTags
	walkEBML(f, header.contentOffset, header.contentOffset+header.dataSize, func(e ebmlElement) bool {
		if e.id != ebmlIDDocType {
			return false
		}
		docType, err := readAt(f, e.contentOffset, int(e.dataSize))
		if err == nil && string(docType) == "webm" {
			format = WebMTags
		}
		return true
	})

	var segment ebmlElement
	var haveSegment bool
	walkEBML(f, header.start+header.headerSize+header.dataSize, length, func(e ebmlElement) bool {
		if e.id == ebmlIDSegment {
			segment = e
			haveSegment = true
			return true
		}
		return false
	})
	if !haveSegment {
		return nil
	}

	var out []Region
	segEnd := segment.contentOffset + segment.dataSize
	if segEnd > length {
		segEnd = length
	}
	walkEBML(f, segment.contentOffset, segEnd, func(e ebmlElement) bool {
		if e.id != ebmlIDTags {
			return false
		}
		total := e.headerSize + e.dataSize
		r := Region{Format: format, Offset: uint64(e.start), Size: uint64(total)}
		if fits(r.Offset, r.Size, uint64(length)) {
			out = append(out, r)
		}
		return false
	})

	return out
}
