package tagscan

import (
	"bytes"
	"os"
)

// wavpackStrategy iterates WavPack's 32-byte block headers and, within
// each block, the sub-blocks they contain looking for ones whose ID marks
// them as metadata (as opposed to audio payload).
type wavpackStrategy struct{}

const (
	wavpackBlockHeaderSize   = 32
	wavpackMinBlockSize      = wavpackBlockHeaderSize
	wavpackMaxBlockSize      = 10 * 1024 * 1024
	wavpackMaxSubBlocks      = 10000
	wavpackLargeFileBound    = 100 * 1024 * 1024
	wavpackLargeFileMaxBlock = 100
)

func (wavpackStrategy) supportedFormats() []Format {
	return []Format{WavPackNative}
}

func (wavpackStrategy) canDetect(bufs FileBuffers) bool {
	return len(bufs.Head) >= 4 && bytes.Equal(bufs.Head[:4], []byte("wvpk"))
}

// wavpackMetadataSubBlockID reports whether a sub-block's low 7 bits of ID
// mark it as metadata rather than audio data.
func wavpackMetadataSubBlockID(id byte) bool {
	low := id & 0x7f
	return (low >= 0x21 && low <= 0x26) || (low >= 0x28 && low <= 0x2B)
}

func (wavpackStrategy) detect(f *os.File, bufs FileBuffers, length int64) []Region {
	var out []Region

	maxBlocks := -1
	if length > wavpackLargeFileBound {
		maxBlocks = wavpackLargeFileMaxBlock
	}

	pos := int64(0)
	blockCount := 0
	subBlockCount := 0

	for pos+wavpackBlockHeaderSize <= length {
		hdr, err := readAt(f, pos, wavpackBlockHeaderSize)
		if err != nil {
			break
		}
		if !bytes.Equal(hdr[:4], []byte("wvpk")) {
			break
		}
		ckSize := int64(le32(hdr[4:8]))
		blockTotal := ckSize + 8
		if blockTotal < wavpackMinBlockSize || blockTotal > wavpackMaxBlockSize {
			break
		}
		if pos+blockTotal > length {
			break
		}

		blockCount++
		if maxBlocks > 0 && blockCount > maxBlocks {
			break
		}

		subPos := pos + wavpackBlockHeaderSize
		blockEnd := pos + blockTotal
		for subPos < blockEnd {
			if subBlockCount >= wavpackMaxSubBlocks {
				return out
			}

			idByte, err := readAt(f, subPos, 1)
			if err != nil {
				break
			}
			id := idByte[0]
			large := getBit(id, 7)

			var sizeWord uint32
			var sizeFieldLen int64
			if large {
				szb, err := readAt(f, subPos+1, 3)
				if err != nil {
					break
				}
				sizeWord = uint32(szb[0]) | uint32(szb[1])<<8 | uint32(szb[2])<<16
				sizeFieldLen = 3
			} else {
				szb, err := readAt(f, subPos+1, 1)
				if err != nil {
					break
				}
				sizeWord = uint32(szb[0])
				sizeFieldLen = 1
			}

			subHeaderSize := int64(1) + sizeFieldLen
			payloadSize := int64(sizeWord) * 2
			subTotal := subHeaderSize + payloadSize
			if subTotal <= 0 || subPos+subTotal > blockEnd {
				break
			}

			subBlockCount++
			if wavpackMetadataSubBlockID(id) {
				r := Region{Format: WavPackNative, Offset: uint64(subPos), Size: uint64(subTotal)}
				if fits(r.Offset, r.Size, uint64(length)) {
					out = append(out, r)
				}
			}
			subPos += subTotal
		}

		pos += blockTotal
	}

	return out
}
