package tagscan

import "strings"

// fullScanOrder is the canonical order used for FullScan and as the
// fallback for ComfortScan on an unrecognized extension. The order favors
// the most common and highest-confidence formats first: it is observable
// in returned region order and is exercised directly by tests.
var fullScanOrder = []Format{
	ID3v2_3, ID3v2_4, ID3v1, ID3v1_1, ID3v2_2,
	VorbisComment,
	MP4,
	APEv2, APEv1,
	ASFContentDesc, ASFExtContentDesc,
	RIFFInfo,
	BWFv2, BWFv1, BWFv0,
	FLACApplication,
	MatroskaTags, WebMTags,
	DSFMetadata, DFFMetadata,
	WavPackNative,
	TTAMetadata,
	AIFFMetadata,
	Lyrics3v2, Lyrics3v1,
}

// comfortScanOrders maps a lowercased, dot-free filename extension to the
// order of formats conventional for files of that type. Looked up by
// ComfortScanPriority; never mutated after package initialization.
var comfortScanOrders = map[string][]Format{
	"mp3": {
		ID3v2_3, ID3v2_4, ID3v2_2, APEv2, APEv1, ID3v1_1, ID3v1, Lyrics3v2, Lyrics3v1,
	},
	"wav": {
		RIFFInfo, BWFv2, BWFv1, BWFv0,
	},
	"ogg":  {VorbisComment},
	"spx":  {VorbisComment},
	"opus": {VorbisComment},
	"flac": {
		VorbisComment, FLACApplication,
	},
	"mp4": {MP4},
	"m4a": {MP4},
	"m4v": {MP4},
	"aiff": {
		AIFFMetadata, ID3v2_3, ID3v2_4,
	},
	"aif": {
		AIFFMetadata, ID3v2_3, ID3v2_4,
	},
	"ape": {
		APEv2, APEv1, ID3v1_1, ID3v1,
	},
	"wv":  {WavPackNative, APEv2, APEv1},
	"mpc": {APEv2, APEv1},
	"wma": {
		ASFContentDesc, ASFExtContentDesc,
	},
	"asf": {
		ASFContentDesc, ASFExtContentDesc,
	},
	"wmv": {
		ASFContentDesc, ASFExtContentDesc,
	},
	"mkv":  {MatroskaTags},
	"mka":  {MatroskaTags},
	"mks":  {MatroskaTags},
	"webm": {WebMTags},
	"dsf":  {DSFMetadata, ID3v2_3, ID3v2_4},
	"dff":  {DFFMetadata},
	"dsd":  {DSFMetadata, DFFMetadata},
	"tta":  {TTAMetadata, ID3v1_1, ID3v1, APEv2, APEv1},
	"ofr":  {APEv2, APEv1},
	"shn":  {ID3v1_1, ID3v1},
}

// FullScanPriority returns the canonical full-scan format order. The
// returned slice is a defensive copy of the package-level table.
func FullScanPriority() []Format {
	cp := make([]Format, len(fullScanOrder))
	copy(cp, fullScanOrder)
	return cp
}

// ComfortScanPriority returns the format order conventional for the given
// filename extension (with or without a leading dot; case-insensitive).
// An unrecognized extension falls back to FullScanPriority, so that
// ComfortScanPriority(unknown) == FullScanPriority() always holds. The
// returned slice is a defensive copy.
func ComfortScanPriority(extension string) []Format {
	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	order, ok := comfortScanOrders[ext]
	if !ok {
		return FullScanPriority()
	}
	cp := make([]Format, len(order))
	copy(cp, order)
	return cp
}
