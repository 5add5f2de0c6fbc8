package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/videodefs/pkg/colorspace"
)

func TestDim(t *testing.T) {
	assert.True(t, Dim{}.IsNull())
	assert.True(t, Dim{Width: 1920}.IsNull())
	assert.False(t, res1920x1080.IsNull())

	assert.True(t, res1920x1080.IsAligned(Dim{Width: 16, Height: 8}))
	assert.False(t, res1920x1080.IsAligned(Dim{Width: 16, Height: 16}))
	assert.True(t, res1920x1080.IsAligned(Dim{Width: 128}))
	assert.True(t, res1920x1080.IsAligned(Dim{}))
}

func TestFrac(t *testing.T) {
	ntsc := Frac{Num: 30000, Den: 1001}
	assert.False(t, ntsc.IsNull())
	assert.True(t, Frac{Num: 30}.IsNull())

	assert.Negative(t, ntsc.Diff(Frac{Num: 30, Den: 1}))
	assert.Positive(t, ntsc.Diff(Frac{Num: 29, Den: 1}))
	assert.Zero(t, Frac{Num: 60, Den: 2}.Diff(Frac{Num: 30, Den: 1}))
	assert.InDelta(t, 29.97, ntsc.Float64(), 1e-2)
	assert.Zero(t, Frac{}.Float64())
}

func TestRectFit(t *testing.T) {
	bounds := Rect{Left: 0, Top: 0, Width: 1920, Height: 1080}

	assert.True(t, Rect{Left: 0, Top: 0, Width: 1920, Height: 1080}.Fit(bounds))
	assert.True(t, Rect{Left: 100, Top: 100, Width: 640, Height: 480}.Fit(bounds))
	assert.False(t, Rect{Left: 1800, Top: 0, Width: 640, Height: 480}.Fit(bounds))
	assert.False(t, Rect{Left: 0, Top: 1000, Width: 640, Height: 480}.Fit(bounds))

	// Centered.
	assert.True(t, Rect{Left: -1, Top: -1, Width: 1280, Height: 720}.Fit(bounds))
	assert.False(t, Rect{Left: -1, Top: -1, Width: 2560, Height: 720}.Fit(bounds))

	inner := Rect{Left: 100, Top: 100, Width: 400, Height: 400}
	assert.False(t, Rect{Left: 50, Top: 150, Width: 100, Height: 100}.Fit(inner))
	assert.True(t, Rect{Left: 150, Top: 150, Width: 100, Height: 100}.Fit(inner))
	assert.False(t, inner.Fit(Rect{Left: -1, Width: 1000, Height: 1000}))
}

func TestRectAlign(t *testing.T) {
	r := Rect{Left: 10, Top: 6, Width: 100, Height: 50}
	a := Rect{Left: 8, Top: 4, Width: 16, Height: 16}

	assert.False(t, r.IsAligned(a))
	assert.True(t, r.IsAligned(Rect{Left: 2, Top: 2, Width: 4, Height: 2}))

	cases := map[string]struct {
		lower, enlarge bool
		want           Rect
	}{
		"Upper":        {false, false, Rect{Left: 16, Top: 8, Width: 112, Height: 64}},
		"UpperEnlarge": {false, true, Rect{Left: 16, Top: 8, Width: 96, Height: 48}},
		"Lower":        {true, false, Rect{Left: 8, Top: 4, Width: 112, Height: 64}},
		"LowerEnlarge": {true, true, Rect{Left: 8, Top: 4, Width: 112, Height: 64}},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			got := r.Align(a, c.lower, c.enlarge)
			assert.Equal(t, c.want, got)
			assert.True(t, got.IsAligned(a))
		})
	}

	t.Run("Centered", func(t *testing.T) {
		got := Rect{Left: -1, Top: 3, Width: 99, Height: 10}.Align(a, true, true)
		assert.Equal(t, Rect{Left: -1, Top: 0, Width: 112, Height: 16}, got)
	})

	t.Run("NoConstraint", func(t *testing.T) {
		assert.Equal(t, r, r.Align(Rect{}, true, true))
	})
}

func TestFrameFlag(t *testing.T) {
	f := FrameFlagDataError | FrameFlagSilent
	assert.True(t, f.Has(FrameFlagSilent))
	assert.False(t, f.Has(FrameFlagSilent|FrameFlagUsesLTR))
	assert.Equal(t, "DATA_ERROR|SILENT", f.String())
	assert.Equal(t, "NONE", FrameFlag(0).String())
	assert.Equal(t, "USES_LTR|UNKNOWN", (FrameFlagUsesLTR | 1<<40).String())
	assert.Equal(t, FrameFlag(64), FrameFlagUsesLTR)
}

func TestFrameType(t *testing.T) {
	assert.Equal(t, "CODED", FrameTypeCoded.String())
	assert.Equal(t, "UNKNOWN", FrameTypeUnknown.String())
	assert.Equal(t, FrameTypeRaw, ParseFrameType("raw"))
}

var testColor = Color{
	BitDepth:         10,
	FullRange:        false,
	ColorPrimaries:   colorspace.ColorPrimariesBT2020,
	TransferFunction: colorspace.TransferFunctionPQ,
	MatrixCoefs:      colorspace.MatrixCoefsBT2020NonCst,
	DynamicRange:     colorspace.DynamicRangeHDR10,
	ToneMapping:      colorspace.ToneMappingStandard,
}

func TestInfoConversion(t *testing.T) {
	format := FormatInfo{
		Framerate:  Frac{Num: 30, Den: 1},
		Color:      testColor,
		Resolution: res1920x1080,
		SAR:        Dim{Width: 1, Height: 1},
		CLL:        CLL{MaxCLL: 1000, MaxFALL: 400},
	}

	frame := format.FrameInfo()
	assert.Equal(t, FrameInfo{Color: testColor, Resolution: res1920x1080, SAR: Dim{Width: 1, Height: 1}}, frame)

	frame.Timestamp = 42
	back := frame.FormatInfo()
	assert.Equal(t, FormatInfo{Color: testColor, Resolution: res1920x1080, SAR: Dim{Width: 1, Height: 1}}, back)
}

func TestMDCV(t *testing.T) {
	m := MDCV{
		DisplayPrimaries:             colorspace.ColorPrimariesDisplayP3,
		MaxDisplayMasteringLuminance: 1000,
		MinDisplayMasteringLuminance: 0.005,
	}
	assert.True(t, m.IsSet())
	assert.Equal(t, colorspace.ColorPrimariesDisplayP3, m.Primaries())

	m.MinDisplayMasteringLuminance = 0
	assert.False(t, m.IsSet())

	byValue := MDCV{
		DisplayPrimariesValue:        colorspace.ColorPrimariesBT2020.Value(),
		MaxDisplayMasteringLuminance: 1000,
		MinDisplayMasteringLuminance: 0.01,
	}
	assert.True(t, byValue.IsSet())
	assert.Equal(t, colorspace.ColorPrimariesBT2020, byValue.Primaries())

	byValue.DisplayPrimariesValue.Red.Y = 0
	assert.False(t, byValue.IsSet())

	assert.False(t, CLL{MaxCLL: 1000}.IsSet())
}

func TestRawFrameGeometry(t *testing.T) {
	f := RawFrame{
		Format:      NV12,
		Info:        FrameInfo{Resolution: res1920x1080},
		PlaneStride: [MaxPlaneCount]uint64{2048, 2048},
	}
	g, err := f.Geometry()
	require.NoError(t, err)
	assert.Equal(t, planes(
		[]uint64{2048, 2048},
		[]uint64{1080, 540},
		[]uint64{2211840, 1105920},
	), g)

	f.PlaneStride[1] = 1024
	_, err = f.Geometry()
	assert.ErrorIs(t, err, ErrConstraintViolated)
}
