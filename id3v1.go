package tagscan

import "os"

// id3v1Strategy detects the fixed 128-byte ID3v1 / ID3v1.1 footer. The two
// versions share a layout; they differ only in whether byte 125 of the
// footer is a zero-padding byte followed by a non-zero track number (v1.1)
// or is itself part of the comment field (v1).
type id3v1Strategy struct{}

func (id3v1Strategy) supportedFormats() []Format {
	return []Format{ID3v1, ID3v1_1}
}

func (id3v1Strategy) canDetect(bufs FileBuffers) bool {
	return hasID3v1Tag(bufs.Tail)
}

// hasID3v1Tag reports whether the last 128 bytes of tail begin with the
// "TAG" preamble. It reports false when tail is shorter than 128 bytes.
func hasID3v1Tag(tail []byte) bool {
	if len(tail) < 128 {
		return false
	}
	t := tail[len(tail)-128:]
	return t[0] == 'T' && t[1] == 'A' && t[2] == 'G'
}

func (id3v1Strategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	if length < 128 {
		return nil
	}
	offset := length - 128
	footer, err := readAt(f, offset, 128)
	if err != nil {
		return nil
	}
	if footer[0] != 'T' || footer[1] != 'A' || footer[2] != 'G' {
		return nil
	}

	format := ID3v1
	if footer[125] == 0 && footer[126] != 0 {
		format = ID3v1_1
	}

	r := Region{Format: format, Offset: uint64(offset), Size: 128}
	if !fits(r.Offset, r.Size, uint64(length)) {
		return nil
	}
	return []Region{r}
}
