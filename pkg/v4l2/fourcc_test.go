package v4l2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/videodefs/pkg/frame"
)

func TestFourCCString(t *testing.T) {
	assert.Equal(t, "YUYV", PixFmtYUYV.String())
	assert.Equal(t, "Y16 ", PixFmtY16.String())
	assert.Equal(t, "BA81", PixFmtSBGGR8.String())
	assert.Equal(t, "????", FourCC(0).String())
	assert.Equal(t, "MJPG", FourCCString(0x47504a4d))

	f, err := ParseFourCC("Y16")
	require.NoError(t, err)
	assert.Equal(t, PixFmtY16, f)

	f, err = ParseFourCC("NV12")
	require.NoError(t, err)
	assert.Equal(t, PixFmtNV12, f)

	for _, s := range []string{"", "NV12M"} {
		_, err := ParseFourCC(s)
		assert.ErrorIs(t, err, frame.ErrInvalidArgument, s)
	}
}

func TestRawFormat(t *testing.T) {
	for _, r := range rawFormats {
		assert.True(t, r.format.IsValid(), r.fourcc.String())

		f, err := RawFormat(r.fourcc)
		require.NoError(t, err)
		assert.Equal(t, r.format, f)
	}

	f, err := RawFormat(PixFmtYUV420)
	require.NoError(t, err)
	assert.Equal(t, frame.I420, f)

	f, err = RawFormat(PixFmtABGR32)
	require.NoError(t, err)
	assert.Equal(t, frame.BGRA, f)

	f, err = RawFormat(PixFmtSRGGB10)
	require.NoError(t, err)
	assert.Equal(t, frame.RawFormat{
		PixFormat:        frame.PixFormatBayer,
		PixOrder:         frame.PixOrderRGGB,
		PixLayout:        frame.PixLayoutLinear,
		PixSize:          10,
		DataLayout:       frame.DataLayoutPacked,
		DataLittleEndian: true,
		DataSize:         16,
	}, f)

	_, err = RawFormat(PixFmtMJPEG)
	assert.ErrorIs(t, err, frame.ErrCompressedFormat)

	_, err = RawFormat(PixFmtUYVY)
	assert.ErrorIs(t, err, frame.ErrInvalidFormat)
}

func TestFromRawFormat(t *testing.T) {
	for _, r := range rawFormats {
		c, err := FromRawFormat(r.format)
		require.NoError(t, err)
		if r.fourcc == PixFmtZ16 {
			assert.Equal(t, PixFmtY16, c)
			continue
		}
		assert.Equal(t, r.fourcc, c)
	}

	_, err := FromRawFormat(frame.NV12P10LE)
	assert.ErrorIs(t, err, frame.ErrInvalidFormat)
}

func TestCodedFormat(t *testing.T) {
	f, ok := CodedFormat(PixFmtMJPEG)
	require.True(t, ok)
	assert.Equal(t, frame.JPEGJFIF, f)

	f, ok = CodedFormat(PixFmtHEVC)
	require.True(t, ok)
	assert.Equal(t, frame.H265ByteStream, f)

	_, ok = CodedFormat(PixFmtNV12)
	assert.False(t, ok)

	c, err := FromCodedFormat(frame.JPEGJFIF)
	require.NoError(t, err)
	assert.Equal(t, PixFmtMJPEG, c)

	_, err = FromCodedFormat(frame.H264AVCC)
	assert.ErrorIs(t, err, frame.ErrInvalidFormat)
}

func TestFrameSize(t *testing.T) {
	cases := map[string]struct {
		fourcc FourCC
		width  uint32
		height uint32
		size   uint64
	}{
		"YUYV":    {PixFmtYUYV, 640, 480, 640 * 480 * 2},
		"NV12":    {PixFmtNV12, 1920, 1080, 1920 * 1080 * 3 / 2},
		"YU12":    {PixFmtYUV420, 1280, 720, 1280 * 720 * 3 / 2},
		"GREY":    {PixFmtGREY, 640, 480, 640 * 480},
		"Y10":     {PixFmtY10, 640, 480, 640 * 480 * 2},
		"RGB3":    {PixFmtRGB24, 640, 480, 640 * 480 * 3},
		"AB24":    {PixFmtRGBA32, 640, 480, 640 * 480 * 4},
		"BA81":    {PixFmtSBGGR8, 640, 480, 640 * 480},
		"SRGGB12": {PixFmtSRGGB12, 640, 480, 640 * 480 * 2},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			size, err := FrameSize(c.fourcc, c.width, c.height)
			require.NoError(t, err)
			assert.Equal(t, c.size, size)
		})
	}

	_, err := FrameSize(PixFmtH264, 640, 480)
	assert.ErrorIs(t, err, frame.ErrCompressedFormat)
	_, err = FrameSize(PixFmtNV12, 0, 480)
	assert.Error(t, err)
}
