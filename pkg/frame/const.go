package frame

import "fmt"

// Format is a FourCC style shorthand for a well-known frame format.
type Format string

const (
	// YUV Formats

	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatYV12 https://www.fourcc.org/pixel-format/yuv-yv12/
	FormatYV12 Format = "YV12"
	// FormatI444 is a YUV format without sub-sampling
	FormatI444 Format = "I444"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
	// FormatNV16 is the 4:2:2 variant of NV12
	FormatNV16 Format = "NV16"
	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = "YUY2"
	// FormatYVYU https://www.fourcc.org/pixel-format/yuv-yvyu/
	FormatYVYU Format = "YVYU"

	// RGB Formats

	// FormatRGB24 is packed 8-bit RGB
	FormatRGB24 Format = "RGB24"
	// FormatBGR24 is packed 8-bit BGR
	FormatBGR24 Format = "BGR24"
	// FormatRGBA is packed 8-bit RGBA
	FormatRGBA Format = "RGBA"
	// FormatBGRA is packed 8-bit BGRA
	FormatBGRA Format = "BGRA"
	// FormatABGR is packed 8-bit ABGR
	FormatABGR Format = "ABGR"

	// Single channel Formats

	// FormatGREY is 8-bit luma only
	FormatGREY Format = "GREY"
	// FormatZ16 is 16-bit depth
	FormatZ16 Format = "Z16"

	// Compressed Formats

	// FormatMJPEG https://www.fourcc.org/mjpg/
	FormatMJPEG Format = "MJPEG"
	// FormatH264 is an H.264 byte stream
	FormatH264 Format = "H264"
	// FormatH265 is an H.265 byte stream
	FormatH265 Format = "H265"
)

// YUV aliases

// FormatYUYV is an alias of FormatYUY2
const FormatYUYV = FormatYUY2

var rawFormats = map[Format]RawFormat{
	FormatI420:  I420,
	FormatYV12:  YV12,
	FormatI444:  I444,
	FormatNV12:  NV12,
	FormatNV21:  NV21,
	FormatNV16:  NV16,
	FormatYUY2:  YUYV,
	FormatYVYU:  YVYU,
	FormatRGB24: RGB,
	FormatBGR24: BGR,
	FormatRGBA:  RGBA,
	FormatBGRA:  BGRA,
	FormatABGR:  ABGR,
	FormatGREY:  Gray,
	FormatZ16:   Gray16,
}

var codedFormats = map[Format]CodedFormat{
	FormatMJPEG: JPEGJFIF,
	FormatH264:  H264ByteStream,
	FormatH265:  H265ByteStream,
}

// RawFormat returns the raw format described by f.
func (f Format) RawFormat() (RawFormat, error) {
	if raw, ok := rawFormats[f]; ok {
		return raw, nil
	}
	if _, ok := codedFormats[f]; ok {
		return RawFormat{}, fmt.Errorf("%s: %w", f, ErrCompressedFormat)
	}
	return RawFormat{}, fmt.Errorf("%s is not supported: %w", f, ErrInvalidFormat)
}

// CodedFormat returns the coded format described by f.
func (f Format) CodedFormat() (CodedFormat, bool) {
	coded, ok := codedFormats[f]
	return coded, ok
}

// IsCompressed reports whether f names a coded format.
func (f Format) IsCompressed() bool {
	_, ok := codedFormats[f]
	return ok
}
