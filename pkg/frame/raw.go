// Package frame describes video frame formats: raw pixel layouts with their
// validity rules and plane geometry, coded bitstream formats, and the
// format and frame information records that travel with them.
package frame

// MaxPlaneCount is the maximum number of planes of a raw frame.
const MaxPlaneCount = 4

// PixFormat is the colour model of a raw format.
type PixFormat int

const (
	// PixFormatUnknown is an unspecified pixel format, also used for raw
	// sensor data.
	PixFormatUnknown PixFormat = iota
	PixFormatYUV420
	PixFormatYUV422
	PixFormatYUV444
	PixFormatGray
	PixFormatRGB24
	PixFormatRGBA32
	PixFormatBayer
	PixFormatDepth
	PixFormatDepthFloat

	pixFormatCount
)

// PixFormatRaw is an alias of PixFormatUnknown
const PixFormatRaw = PixFormatUnknown

// PixOrder is the order of the components of a pixel, as a permutation of
// up to four components named A, B, C and D.
type PixOrder int

const (
	PixOrderUnknown PixOrder = iota
	PixOrderABCD
	PixOrderABDC
	PixOrderACBD
	PixOrderACDB
	PixOrderADBC
	PixOrderADCB
	PixOrderBACD
	PixOrderBADC
	PixOrderBCAD
	PixOrderBCDA
	PixOrderBDAC
	PixOrderBDCA
	PixOrderCABD
	PixOrderCADB
	PixOrderCBAD
	PixOrderCBDA
	PixOrderCDAB
	PixOrderCDBA
	PixOrderDABC
	PixOrderDACB
	PixOrderDBAC
	PixOrderDBCA
	PixOrderDCAB
	PixOrderDCBA
)

// Order aliases
const (
	PixOrderA  = PixOrderABCD
	PixOrderAB = PixOrderABCD
	PixOrderBA = PixOrderBACD

	PixOrderABC = PixOrderABCD
	PixOrderACB = PixOrderACBD
	PixOrderBAC = PixOrderBACD
	PixOrderBCA = PixOrderBCAD
	PixOrderCAB = PixOrderCABD
	PixOrderCBA = PixOrderCBAD

	PixOrderRGB  = PixOrderABCD
	PixOrderBGR  = PixOrderCBAD
	PixOrderRGBA = PixOrderABCD
	PixOrderBGRA = PixOrderCBAD
	PixOrderABGR = PixOrderDCBA

	PixOrderYUV  = PixOrderABCD
	PixOrderYVU  = PixOrderACBD
	PixOrderYUYV = PixOrderABCD
	PixOrderYVYU = PixOrderACBD

	PixOrderRGGB = PixOrderABCD
	PixOrderGRBG = PixOrderBADC
	PixOrderGBRG = PixOrderCDAB
	PixOrderBGGR = PixOrderDCBA
)

// PixLayout is the spatial arrangement of pixels.
type PixLayout int

const (
	PixLayoutUnknown PixLayout = iota
	// PixLayoutLinear stores pixels row after row.
	PixLayoutLinear
	// PixLayoutHiSiTile64x16 is the HiSilicon 64x16 tiled layout.
	PixLayoutHiSiTile64x16
	// PixLayoutHiSiTile64x16Compressed is the compressed variant of
	// PixLayoutHiSiTile64x16.
	PixLayoutHiSiTile64x16Compressed
)

// DataLayout is the arrangement of the components in memory.
type DataLayout int

const (
	DataLayoutUnknown DataLayout = iota
	// DataLayoutPacked stores all components of a pixel together in one plane.
	DataLayoutPacked
	// DataLayoutPlanar stores every component in its own plane.
	DataLayoutPlanar
	// DataLayoutSemiPlanar stores luma in one plane and interleaved chroma
	// in a second one.
	DataLayoutSemiPlanar
	// DataLayoutInterleaved stores subsampled components interleaved in one
	// plane (YUYV).
	DataLayoutInterleaved
	// DataLayoutOpaque is an implementation specific layout.
	DataLayoutOpaque
)

// RawFormat describes how a raw frame is stored in memory.
//
// RawFormat is a comparable value; two formats are equal when all the
// fields are equal.
type RawFormat struct {
	PixFormat PixFormat
	PixOrder  PixOrder
	PixLayout PixLayout
	// PixSize is the number of significant bits of a sample.
	PixSize uint32

	DataLayout DataLayout
	// DataPadLow is true when the padding bits of a sample are the low
	// order bits.
	DataPadLow       bool
	DataLittleEndian bool
	// DataSize is the number of bits a sample occupies, padding included.
	DataSize uint32
}

// Intersect reports whether f is valid and present in caps.
func (f RawFormat) Intersect(caps []RawFormat) bool {
	if !f.IsValid() {
		return false
	}
	for _, c := range caps {
		if c == f {
			return true
		}
	}
	return false
}
