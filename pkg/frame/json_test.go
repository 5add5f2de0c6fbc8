package frame

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/videodefs/pkg/colorspace"
)

func TestRawFormatJSON(t *testing.T) {
	b, err := json.Marshal(NV12P10LEHigh)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"pix_format": "YUV420",
		"pix_order": "ABCD",
		"pix_layout": "LINEAR",
		"pix_size": 10,
		"data_layout": "SEMI_PLANAR",
		"data_pad_low": true,
		"data_little_endian": true,
		"data_size": 16
	}`, string(b))

	var f RawFormat
	require.NoError(t, json.Unmarshal(b, &f))
	assert.Equal(t, NV12P10LEHigh, f)

	require.NoError(t, json.Unmarshal([]byte(`"yv12"`), &f))
	assert.Equal(t, YV12, f)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &f))
}

func TestCodedFormatJSON(t *testing.T) {
	b, err := json.Marshal(H265HVCC)
	require.NoError(t, err)
	assert.JSONEq(t, `{"encoding": "H265", "data_format": "AVCC"}`, string(b))

	var f CodedFormat
	require.NoError(t, json.Unmarshal(b, &f))
	assert.Equal(t, H265HVCC, f)

	require.NoError(t, json.Unmarshal([]byte(` "h264_byte_stream"`), &f))
	assert.Equal(t, H264ByteStream, f)
}

func TestFormatInfoJSON(t *testing.T) {
	info := FormatInfo{
		Framerate:  Frac{Num: 30, Den: 1},
		Color:      testColor,
		Resolution: res1920x1080,
		SAR:        Dim{Width: 1, Height: 1},
	}

	b, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"framerate": {"num": 30, "den": 1},
		"bit_depth": 10,
		"full_range": false,
		"color_primaries": "BT2020",
		"transfer_function": "PQ",
		"matrix_coefs": "BT2020_NON_CST",
		"dynamic_range": "HDR10",
		"tone_mapping": "STANDARD",
		"resolution": {"width": 1920, "height": 1080},
		"sar": {"width": 1, "height": 1}
	}`, string(b))

	var parsed FormatInfo
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, info, parsed)

	t.Run("HDR", func(t *testing.T) {
		hdr := info
		hdr.MDCV = MDCV{
			DisplayPrimaries:             colorspace.ColorPrimariesDisplayP3,
			DisplayPrimariesValue:        colorspace.ColorPrimariesDisplayP3.Value(),
			MaxDisplayMasteringLuminance: 1000,
			MinDisplayMasteringLuminance: 0.5,
		}
		hdr.CLL = CLL{MaxCLL: 1000, MaxFALL: 400}

		b, err := json.Marshal(hdr)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(b, &raw))
		assert.JSONEq(t, `{
			"display_primaries": "DISPLAY_P3",
			"max_display_mastering_luminance": 1000,
			"min_display_mastering_luminance": 0.5
		}`, string(raw["mdcv"]))
		assert.JSONEq(t, `{"max_cll": 1000, "max_fall": 400}`, string(raw["cll"]))

		var parsed FormatInfo
		require.NoError(t, json.Unmarshal(b, &parsed))
		assert.Equal(t, hdr, parsed)
	})

	t.Run("CustomPrimaries", func(t *testing.T) {
		custom := info
		custom.MDCV = MDCV{
			DisplayPrimariesValue: colorspace.PrimariesValue{
				Green:      colorspace.Chromaticity{X: 0.25, Y: 0.75},
				Blue:       colorspace.Chromaticity{X: 0.125, Y: 0.0625},
				Red:        colorspace.Chromaticity{X: 0.75, Y: 0.25},
				WhitePoint: colorspace.Chromaticity{X: 0.3125, Y: 0.3125},
			},
			MaxDisplayMasteringLuminance: 600,
			MinDisplayMasteringLuminance: 0.25,
		}

		b, err := json.Marshal(custom)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(b, &raw))
		assert.JSONEq(t, `{
			"display_primaries": "UNKNOWN",
			"color_primaries": [
				{"x": 0.25, "y": 0.75},
				{"x": 0.125, "y": 0.0625},
				{"x": 0.75, "y": 0.25}
			],
			"white_point": {"x": 0.3125, "y": 0.3125},
			"max_display_mastering_luminance": 600,
			"min_display_mastering_luminance": 0.25
		}`, string(raw["mdcv"]))

		var parsed FormatInfo
		require.NoError(t, json.Unmarshal(b, &parsed))
		assert.Equal(t, custom, parsed)
	})

	t.Run("BadMDCV", func(t *testing.T) {
		var parsed FormatInfo
		err := json.Unmarshal([]byte(`{"mdcv": {"color_primaries": [{"x": 1, "y": 1}]}}`), &parsed)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestFrameInfoJSON(t *testing.T) {
	info := FrameInfo{
		Timestamp:        90000,
		Timescale:        90000,
		CaptureTimestamp: 1234567,
		Index:            12,
		Flags:            FrameFlagSilent | FrameFlagNotMapped,
		Color:            testColor,
		Resolution:       res1280x720,
		SAR:              Dim{Width: 4, Height: 3},
	}

	b, err := info.JSON(true)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"timestamp": 90000,
		"timescale": 90000,
		"capture_timestamp": 1234567,
		"index": 12,
		"flags": 33
	}`, string(b))

	var parsed FrameInfo
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, FrameInfo{
		Timestamp:        90000,
		Timescale:        90000,
		CaptureTimestamp: 1234567,
		Index:            12,
		Flags:            FrameFlagSilent | FrameFlagNotMapped,
	}, parsed)

	b, err = json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"timestamp": 90000,
		"timescale": 90000,
		"capture_timestamp": 1234567,
		"index": 12,
		"flags": 33,
		"bit_depth": 10,
		"full_range": false,
		"color_primaries": "BT2020",
		"transfer_function": "PQ",
		"matrix_coefs": "BT2020_NON_CST",
		"dynamic_range": "HDR10",
		"tone_mapping": "STANDARD",
		"resolution": {"width": 1280, "height": 720},
		"sar": {"width": 4, "height": 3}
	}`, string(b))

	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, info, parsed)
}
