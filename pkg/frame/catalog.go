package frame

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func makeRaw(p PixFormat, o PixOrder, l PixLayout, pixSize uint32, d DataLayout, padLow, le bool, dataSize uint32) RawFormat {
	return RawFormat{
		PixFormat:        p,
		PixOrder:         o,
		PixLayout:        l,
		PixSize:          pixSize,
		DataLayout:       d,
		DataPadLow:       padLow,
		DataLittleEndian: le,
		DataSize:         dataSize,
	}
}

// Well-known raw formats.
var (
	Raw8        = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	Raw10Packed = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 10, DataLayoutPacked, false, true, 10)
	Raw10       = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 10, DataLayoutPacked, true, true, 16)
	Raw12Packed = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 12, DataLayoutPacked, false, true, 12)
	Raw12       = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 12, DataLayoutPacked, true, true, 16)
	Raw14Packed = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 14, DataLayoutPacked, false, true, 14)
	Raw14       = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 14, DataLayoutPacked, true, true, 16)
	Raw16       = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 16, DataLayoutPacked, false, true, 16)
	Raw16BE     = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 16, DataLayoutPacked, false, false, 16)
	Raw32       = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 32, DataLayoutPacked, false, true, 32)
	Raw32BE     = makeRaw(PixFormatRaw, PixOrderA, PixLayoutLinear, 32, DataLayoutPacked, false, false, 32)

	Gray   = makeRaw(PixFormatGray, PixOrderA, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	Gray16 = makeRaw(PixFormatGray, PixOrderA, PixLayoutLinear, 16, DataLayoutPacked, false, true, 16)

	I420           = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 8, DataLayoutPlanar, false, false, 8)
	I420P10LE      = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutPlanar, false, true, 16)
	I420P10BE      = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutPlanar, false, false, 16)
	I420P10LEHigh  = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutPlanar, true, true, 16)
	I420P10BEHigh  = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutPlanar, true, false, 16)
	YV12           = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 8, DataLayoutPlanar, false, false, 8)
	YV12P10LE      = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutPlanar, false, true, 16)
	YV12P10BE      = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutPlanar, false, false, 16)
	YV12P10LEHigh  = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutPlanar, true, true, 16)
	YV12P10BEHigh  = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutPlanar, true, false, 16)
	NV12           = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 8, DataLayoutSemiPlanar, false, false, 8)
	NV12P10Packed  = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutSemiPlanar, false, false, 10)
	NV12P10LE      = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutSemiPlanar, false, true, 16)
	NV12P10BE      = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutSemiPlanar, false, false, 16)
	NV12P10LEHigh  = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutSemiPlanar, true, true, 16)
	NV12P10BEHigh  = makeRaw(PixFormatYUV420, PixOrderYUV, PixLayoutLinear, 10, DataLayoutSemiPlanar, true, false, 16)
	NV21           = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 8, DataLayoutSemiPlanar, false, false, 8)
	NV21P10Packed  = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutSemiPlanar, false, false, 10)
	NV21P10LE      = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutSemiPlanar, false, true, 16)
	NV21P10BE      = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutSemiPlanar, false, false, 16)
	NV21P10LEHigh  = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutSemiPlanar, true, true, 16)
	NV21P10BEHigh  = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutLinear, 10, DataLayoutSemiPlanar, true, false, 16)
	NV16           = makeRaw(PixFormatYUV422, PixOrderYUV, PixLayoutLinear, 8, DataLayoutSemiPlanar, false, false, 8)
	YUYV           = makeRaw(PixFormatYUV422, PixOrderYUYV, PixLayoutLinear, 8, DataLayoutInterleaved, false, false, 8)
	YVYU           = makeRaw(PixFormatYUV422, PixOrderYVYU, PixLayoutLinear, 8, DataLayoutInterleaved, false, false, 8)
	I444           = makeRaw(PixFormatYUV444, PixOrderYUV, PixLayoutLinear, 8, DataLayoutPlanar, false, false, 8)
	NV21HiSiTile   = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutHiSiTile64x16, 8, DataLayoutSemiPlanar, false, false, 8)
	NV21HiSiTileC  = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutHiSiTile64x16Compressed, 8, DataLayoutSemiPlanar, false, false, 8)
	NV21HiSiTile10 = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutHiSiTile64x16, 10, DataLayoutSemiPlanar, false, false, 10)
	// NV21HiSiTileC10 is the compressed variant of NV21HiSiTile10.
	NV21HiSiTileC10 = makeRaw(PixFormatYUV420, PixOrderYVU, PixLayoutHiSiTile64x16Compressed, 10, DataLayoutSemiPlanar, false, false, 10)

	RGB  = makeRaw(PixFormatRGB24, PixOrderRGB, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	BGR  = makeRaw(PixFormatRGB24, PixOrderBGR, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	RGBA = makeRaw(PixFormatRGBA32, PixOrderRGBA, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	BGRA = makeRaw(PixFormatRGBA32, PixOrderBGRA, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	ABGR = makeRaw(PixFormatRGBA32, PixOrderABGR, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)

	BayerRGGB = makeRaw(PixFormatBayer, PixOrderRGGB, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	BayerBGGR = makeRaw(PixFormatBayer, PixOrderBGGR, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	BayerGRBG = makeRaw(PixFormatBayer, PixOrderGRBG, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)
	BayerGBRG = makeRaw(PixFormatBayer, PixOrderGBRG, PixLayoutLinear, 8, DataLayoutPacked, false, false, 8)

	MMALOpaque = makeRaw(PixFormatUnknown, PixOrderUnknown, PixLayoutUnknown, 8, DataLayoutOpaque, false, false, 8)
)

// Well-known coded formats.
var (
	H264RawNALU    = CodedFormat{Encoding: EncodingH264, DataFormat: CodedDataFormatRawNALU}
	H264ByteStream = CodedFormat{Encoding: EncodingH264, DataFormat: CodedDataFormatByteStream}
	H264AVCC       = CodedFormat{Encoding: EncodingH264, DataFormat: CodedDataFormatAVCC}
	H265RawNALU    = CodedFormat{Encoding: EncodingH265, DataFormat: CodedDataFormatRawNALU}
	H265ByteStream = CodedFormat{Encoding: EncodingH265, DataFormat: CodedDataFormatByteStream}
	H265HVCC       = CodedFormat{Encoding: EncodingH265, DataFormat: CodedDataFormatHVCC}
	JPEGJFIF       = CodedFormat{Encoding: EncodingJPEG, DataFormat: CodedDataFormatJFIF}
)

type namedRawFormat struct {
	name   string
	format RawFormat
}

type namedCodedFormat struct {
	name   string
	format CodedFormat
}

// Catalog maps names to formats. A Catalog is never modified once built
// and is safe for concurrent use.
type Catalog struct {
	raw   []namedRawFormat
	coded []namedCodedFormat
}

var defaultCatalog = &Catalog{
	raw:   defaultRawFormats(),
	coded: defaultCodedFormats(),
}

// DefaultCatalog returns the catalog of well-known formats.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func defaultRawFormats() []namedRawFormat {
	formats := []namedRawFormat{
		{"raw8", Raw8},
		{"raw10_packed", Raw10Packed},
		{"raw10", Raw10},
		{"raw12_packed", Raw12Packed},
		{"raw12", Raw12},
		{"raw14_packed", Raw14Packed},
		{"raw14", Raw14},
		{"raw16", Raw16},
		{"raw16_be", Raw16BE},
		{"raw32", Raw32},
		{"raw32_be", Raw32BE},
		{"gray", Gray},
		{"gray16", Gray16},
		{"i420", I420},
		{"i420_10_16le", I420P10LE},
		{"i420_10_16be", I420P10BE},
		{"i420_10_16le_high", I420P10LEHigh},
		{"i420_10_16be_high", I420P10BEHigh},
		{"yv12", YV12},
		{"yv12_10_16le", YV12P10LE},
		{"yv12_10_16be", YV12P10BE},
		{"yv12_10_16le_high", YV12P10LEHigh},
		{"yv12_10_16be_high", YV12P10BEHigh},
		{"nv12", NV12},
		{"nv12_10_packed", NV12P10Packed},
		{"nv12_10_16le", NV12P10LE},
		{"nv12_10_16be", NV12P10BE},
		{"nv12_10_16le_high", NV12P10LEHigh},
		{"nv12_10_16be_high", NV12P10BEHigh},
		{"nv21", NV21},
		{"nv21_10_packed", NV21P10Packed},
		{"nv21_10_16le", NV21P10LE},
		{"nv21_10_16be", NV21P10BE},
		{"nv21_10_16le_high", NV21P10LEHigh},
		{"nv21_10_16be_high", NV21P10BEHigh},
		{"nv16", NV16},
		{"yuyv", YUYV},
		{"yvyu", YVYU},
		{"i444", I444},
		{"rgb", RGB},
		{"bgr", BGR},
		{"rgba", RGBA},
		{"bgra", BGRA},
		{"abgr", ABGR},
		{"bayer_rggb", BayerRGGB},
		{"bayer_bggr", BayerBGGR},
		{"bayer_grbg", BayerGRBG},
		{"bayer_gbrg", BayerGBRG},
	}

	bayer := []struct {
		name  string
		order PixOrder
	}{
		{"rggb", PixOrderRGGB},
		{"bggr", PixOrderBGGR},
		{"grbg", PixOrderGRBG},
		{"gbrg", PixOrderGBRG},
	}
	for _, bits := range []uint32{10, 12, 14} {
		for _, b := range bayer {
			formats = append(formats,
				namedRawFormat{
					fmt.Sprintf("bayer_%s_%d_packed", b.name, bits),
					makeRaw(PixFormatBayer, b.order, PixLayoutLinear, bits, DataLayoutPacked, false, true, bits),
				},
				namedRawFormat{
					fmt.Sprintf("bayer_%s_%d", b.name, bits),
					makeRaw(PixFormatBayer, b.order, PixLayoutLinear, bits, DataLayoutPacked, true, true, 16),
				},
			)
		}
	}

	return append(formats,
		namedRawFormat{"nv21_hisi_tiled", NV21HiSiTile},
		namedRawFormat{"nv21_hisi_tiled_compressed", NV21HiSiTileC},
		namedRawFormat{"nv21_hisi_tiled_10_packed", NV21HiSiTile10},
		namedRawFormat{"nv21_hisi_tiled_compressed_10_packed", NV21HiSiTileC10},
		namedRawFormat{"mmal_opaque", MMALOpaque},
	)
}

func defaultCodedFormats() []namedCodedFormat {
	return []namedCodedFormat{
		{"h264_raw_nalu", H264RawNALU},
		{"h264_byte_stream", H264ByteStream},
		{"h264_avcc", H264AVCC},
		{"h265_raw_nalu", H265RawNALU},
		{"h265_byte_stream", H265ByteStream},
		{"h265_hvcc", H265HVCC},
		{"jpeg_jfif", JPEGJFIF},
	}
}

// RawFormat looks up a raw format by name, ignoring case.
func (c *Catalog) RawFormat(name string) (RawFormat, bool) {
	for _, n := range c.raw {
		if strings.EqualFold(n.name, name) {
			return n.format, true
		}
	}
	return RawFormat{}, false
}

// RawFormatName returns the name of f. The first registered name wins.
func (c *Catalog) RawFormatName(f RawFormat) (string, bool) {
	for _, n := range c.raw {
		if n.format == f {
			return n.name, true
		}
	}
	return "", false
}

// RawFormats returns the raw formats of the catalog, in registration order.
func (c *Catalog) RawFormats() []RawFormat {
	formats := make([]RawFormat, 0, len(c.raw))
	for _, n := range c.raw {
		formats = append(formats, n.format)
	}
	return formats
}

// CodedFormat looks up a coded format by name, ignoring case.
func (c *Catalog) CodedFormat(name string) (CodedFormat, bool) {
	for _, n := range c.coded {
		if strings.EqualFold(n.name, name) {
			return n.format, true
		}
	}
	return CodedFormat{}, false
}

// CodedFormatName returns the name of f.
func (c *Catalog) CodedFormatName(f CodedFormat) (string, bool) {
	for _, n := range c.coded {
		if n.format == f {
			return n.name, true
		}
	}
	return "", false
}

// With returns a new catalog made of c plus the given named formats.
// Names already present in c are shadowed.
func (c *Catalog) With(raw map[string]RawFormat, coded map[string]CodedFormat) (*Catalog, error) {
	out := &Catalog{}
	for _, name := range sortedKeys(raw) {
		f := raw[name]
		if !f.IsValid() {
			return nil, fmt.Errorf("%w: raw format %q", ErrInvalidFormat, name)
		}
		out.raw = append(out.raw, namedRawFormat{name, f})
	}
	for _, name := range sortedKeys(coded) {
		f := coded[name]
		if !f.IsValid() {
			return nil, fmt.Errorf("%w: coded format %q", ErrInvalidFormat, name)
		}
		out.coded = append(out.coded, namedCodedFormat{name, f})
	}
	// New entries come first so that they shadow existing ones.
	for _, n := range c.raw {
		if _, ok := raw[n.name]; !ok {
			out.raw = append(out.raw, n)
		}
	}
	for _, n := range c.coded {
		if _, ok := coded[n.name]; !ok {
			out.coded = append(out.coded, n)
		}
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
