package tagscan

// Format is an enumeration of the on-disk metadata tag formats this
// package can locate. The string value of each constant is its stable
// display name, used in logs and in test expectations.
type Format string

const (
	ID3v1              Format = "ID3v1"
	ID3v1_1            Format = "ID3v1.1"
	ID3v2_2            Format = "ID3v2.2"
	ID3v2_3            Format = "ID3v2.3"
	ID3v2_4            Format = "ID3v2.4"
	APEv1              Format = "APEv1"
	APEv2              Format = "APEv2"
	VorbisComment      Format = "VorbisComment"
	MP4                Format = "MP4"
	RIFFInfo           Format = "RIFF-INFO"
	BWFv0              Format = "BWFv0"
	BWFv1              Format = "BWFv1"
	BWFv2              Format = "BWFv2"
	AIFFMetadata       Format = "AIFF-Metadata"
	Lyrics3v1          Format = "Lyrics3v1"
	Lyrics3v2          Format = "Lyrics3v2"
	ASFContentDesc     Format = "ASF Content Description"
	ASFExtContentDesc  Format = "ASF Extended Content Description"
	FLACApplication    Format = "FLAC Application"
	MatroskaTags       Format = "Matroska Tags"
	WebMTags           Format = "WebM Tags"
	DSFMetadata        Format = "DSF Metadata"
	DFFMetadata        Format = "DFF Metadata"
	TTAMetadata        Format = "TTA Metadata"
	WavPackNative      Format = "WavPack Native"
)

// String returns the stable display name for f.
func (f Format) String() string {
	return string(f)
}

// allFormats is the closed enumeration, used by tests to check injectivity
// of the display strings and by the registry to make sure every format has
// a strategy.
var allFormats = []Format{
	ID3v1, ID3v1_1, ID3v2_2, ID3v2_3, ID3v2_4,
	APEv1, APEv2,
	VorbisComment,
	MP4,
	RIFFInfo, BWFv0, BWFv1, BWFv2,
	AIFFMetadata,
	Lyrics3v1, Lyrics3v2,
	ASFContentDesc, ASFExtContentDesc,
	FLACApplication,
	MatroskaTags, WebMTags,
	DSFMetadata, DFFMetadata,
	TTAMetadata,
	WavPackNative,
}
