// Package v4l2 maps Video4Linux2 pixel formats to frame formats.
// Reference: https://www.kernel.org/doc/html/latest/userspace-api/media/v4l/pixfmt.html
package v4l2

import (
	"fmt"
	"strings"

	"github.com/pion/videodefs/internal/logging"
	"github.com/pion/videodefs/pkg/frame"
)

var logger = logging.NewLogger("v4l2")

// FourCC is a V4L2 pixel format code: four characters packed in little
// endian order.
type FourCC uint32

func fourcc(a, b, c, d byte) FourCC {
	return FourCC(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// V4L2_PIX_FMT_* codes, named after the kernel headers.
var (
	PixFmtYUYV   = fourcc('Y', 'U', 'Y', 'V')
	PixFmtYVYU   = fourcc('Y', 'V', 'Y', 'U')
	PixFmtUYVY   = fourcc('U', 'Y', 'V', 'Y')
	PixFmtNV12   = fourcc('N', 'V', '1', '2')
	PixFmtNV21   = fourcc('N', 'V', '2', '1')
	PixFmtNV16   = fourcc('N', 'V', '1', '6')
	PixFmtYUV420 = fourcc('Y', 'U', '1', '2')
	PixFmtYVU420 = fourcc('Y', 'V', '1', '2')
	PixFmtYUV444 = fourcc('Y', 'U', '2', '4')

	PixFmtGREY = fourcc('G', 'R', 'E', 'Y')
	PixFmtY10  = fourcc('Y', '1', '0', ' ')
	PixFmtY12  = fourcc('Y', '1', '2', ' ')
	PixFmtY16  = fourcc('Y', '1', '6', ' ')
	PixFmtZ16  = fourcc('Z', '1', '6', ' ')

	// RGB formats are named after the little endian word, the byte order
	// in memory is reversed for the 32-bit ones.
	PixFmtRGB24  = fourcc('R', 'G', 'B', '3')
	PixFmtBGR24  = fourcc('B', 'G', 'R', '3')
	PixFmtRGBA32 = fourcc('A', 'B', '2', '4')
	PixFmtABGR32 = fourcc('A', 'R', '2', '4')
	PixFmtBGRA32 = fourcc('R', 'A', '2', '4')

	PixFmtSBGGR8  = fourcc('B', 'A', '8', '1')
	PixFmtSGBRG8  = fourcc('G', 'B', 'R', 'G')
	PixFmtSGRBG8  = fourcc('G', 'R', 'B', 'G')
	PixFmtSRGGB8  = fourcc('R', 'G', 'G', 'B')
	PixFmtSBGGR10 = fourcc('B', 'G', '1', '0')
	PixFmtSGBRG10 = fourcc('G', 'B', '1', '0')
	PixFmtSGRBG10 = fourcc('B', 'A', '1', '0')
	PixFmtSRGGB10 = fourcc('R', 'G', '1', '0')
	PixFmtSBGGR12 = fourcc('B', 'G', '1', '2')
	PixFmtSGBRG12 = fourcc('G', 'B', '1', '2')
	PixFmtSGRBG12 = fourcc('B', 'A', '1', '2')
	PixFmtSRGGB12 = fourcc('R', 'G', '1', '2')
	PixFmtSBGGR16 = fourcc('B', 'Y', 'R', '2')
	PixFmtSGBRG16 = fourcc('G', 'B', '1', '6')
	PixFmtSGRBG16 = fourcc('G', 'R', '1', '6')
	PixFmtSRGGB16 = fourcc('R', 'G', '1', '6')

	PixFmtMJPEG = fourcc('M', 'J', 'P', 'G')
	PixFmtJPEG  = fourcc('J', 'P', 'E', 'G')
	PixFmtH264  = fourcc('H', '2', '6', '4')
	PixFmtHEVC  = fourcc('H', 'E', 'V', 'C')
)

// lsb16 is a sample of the given size in the low bits of a little endian
// 16-bit word.
func lsb16(f frame.RawFormat, size uint32) frame.RawFormat {
	f.PixSize = size
	f.DataPadLow = false
	f.DataLittleEndian = true
	f.DataSize = 16
	return f
}

var rawFormats = []struct {
	fourcc FourCC
	format frame.RawFormat
}{
	{PixFmtYUYV, frame.YUYV},
	{PixFmtYVYU, frame.YVYU},
	{PixFmtNV12, frame.NV12},
	{PixFmtNV21, frame.NV21},
	{PixFmtNV16, frame.NV16},
	{PixFmtYUV420, frame.I420},
	{PixFmtYVU420, frame.YV12},
	{PixFmtYUV444, frame.I444},

	{PixFmtGREY, frame.Gray},
	{PixFmtY10, lsb16(frame.Gray, 10)},
	{PixFmtY12, lsb16(frame.Gray, 12)},
	{PixFmtY16, frame.Gray16},
	{PixFmtZ16, frame.Gray16},

	{PixFmtRGB24, frame.RGB},
	{PixFmtBGR24, frame.BGR},
	{PixFmtRGBA32, frame.RGBA},
	{PixFmtABGR32, frame.BGRA},
	{PixFmtBGRA32, frame.ABGR},

	{PixFmtSBGGR8, frame.BayerBGGR},
	{PixFmtSGBRG8, frame.BayerGBRG},
	{PixFmtSGRBG8, frame.BayerGRBG},
	{PixFmtSRGGB8, frame.BayerRGGB},
	{PixFmtSBGGR10, lsb16(frame.BayerBGGR, 10)},
	{PixFmtSGBRG10, lsb16(frame.BayerGBRG, 10)},
	{PixFmtSGRBG10, lsb16(frame.BayerGRBG, 10)},
	{PixFmtSRGGB10, lsb16(frame.BayerRGGB, 10)},
	{PixFmtSBGGR12, lsb16(frame.BayerBGGR, 12)},
	{PixFmtSGBRG12, lsb16(frame.BayerGBRG, 12)},
	{PixFmtSGRBG12, lsb16(frame.BayerGRBG, 12)},
	{PixFmtSRGGB12, lsb16(frame.BayerRGGB, 12)},
	{PixFmtSBGGR16, lsb16(frame.BayerBGGR, 16)},
	{PixFmtSGBRG16, lsb16(frame.BayerGBRG, 16)},
	{PixFmtSGRBG16, lsb16(frame.BayerGRBG, 16)},
	{PixFmtSRGGB16, lsb16(frame.BayerRGGB, 16)},
}

var codedFormats = []struct {
	fourcc FourCC
	format frame.CodedFormat
}{
	{PixFmtMJPEG, frame.JPEGJFIF},
	{PixFmtJPEG, frame.JPEGJFIF},
	{PixFmtH264, frame.H264ByteStream},
	{PixFmtHEVC, frame.H265ByteStream},
}

// String returns the four characters of f, e.g. "YUYV".
func (f FourCC) String() string { return FourCCString(uint32(f)) }

// FourCCString returns the four characters packed in v. Trailing spaces
// are kept and non printable characters are replaced by '?'.
func FourCCString(v uint32) string {
	b := make([]byte, 4)
	for i := range b {
		c := byte(v >> (8 * i))
		if c < ' ' || c > '~' {
			c = '?'
		}
		b[i] = c
	}
	return string(b)
}

// ParseFourCC packs s, which must be one to four characters long. Short
// codes are padded with spaces.
func ParseFourCC(s string) (FourCC, error) {
	if len(s) == 0 || len(s) > 4 {
		return 0, fmt.Errorf("%w: illegal FourCC %q", frame.ErrInvalidArgument, s)
	}
	s += strings.Repeat(" ", 4-len(s))
	return fourcc(s[0], s[1], s[2], s[3]), nil
}

// RawFormat returns the raw format of f.
func RawFormat(f FourCC) (frame.RawFormat, error) {
	for _, r := range rawFormats {
		if r.fourcc == f {
			return r.format, nil
		}
	}
	if _, ok := CodedFormat(f); ok {
		return frame.RawFormat{}, fmt.Errorf("%s: %w", f, frame.ErrCompressedFormat)
	}
	return frame.RawFormat{}, fmt.Errorf("%s is not supported: %w", f, frame.ErrInvalidFormat)
}

// CodedFormat returns the coded format of f.
func CodedFormat(f FourCC) (frame.CodedFormat, bool) {
	for _, c := range codedFormats {
		if c.fourcc == f {
			return c.format, true
		}
	}
	return frame.CodedFormat{}, false
}

// FromRawFormat returns the pixel format code storing f. When several
// codes share a layout the first one of the table wins.
func FromRawFormat(f frame.RawFormat) (FourCC, error) {
	for _, r := range rawFormats {
		if r.format == f {
			return r.fourcc, nil
		}
	}
	return 0, fmt.Errorf("%v has no V4L2 pixel format: %w", f, frame.ErrInvalidFormat)
}

// FromCodedFormat returns the pixel format code of f.
func FromCodedFormat(f frame.CodedFormat) (FourCC, error) {
	for _, c := range codedFormats {
		if c.format == f {
			return c.fourcc, nil
		}
	}
	return 0, fmt.Errorf("%v has no V4L2 pixel format: %w", f, frame.ErrInvalidFormat)
}

// FrameSize returns the size of a frame of format f, or an error when f
// is compressed or unknown.
func FrameSize(f FourCC, width, height uint32) (uint64, error) {
	raw, err := RawFormat(f)
	if err != nil {
		return 0, err
	}
	return frame.CalcRawContiguousFrameSize(raw, frame.Dim{Width: width, Height: height}, nil)
}
