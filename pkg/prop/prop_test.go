package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/videodefs/pkg/frame"
)

func TestCompareMatch(t *testing.T) {
	testDataSet := map[string]struct {
		a     VideoConstraints
		b     Video
		match bool
	}{
		"IntIdealUnmatch":         {VideoConstraints{Width: Int(30)}, Video{Width: 50}, true},
		"IntIdealMatch":           {VideoConstraints{Width: Int(30)}, Video{Width: 30}, true},
		"IntExactUnmatch":         {VideoConstraints{Width: IntExact(30)}, Video{Width: 50}, false},
		"IntExactMatch":           {VideoConstraints{Width: IntExact(30)}, Video{Width: 30}, true},
		"IntOneOfUnmatch":         {VideoConstraints{Height: IntOneOf{480, 720}}, Video{Height: 1080}, false},
		"IntOneOfMatch":           {VideoConstraints{Height: IntOneOf{480, 720}}, Video{Height: 720}, true},
		"IntRangeUnmatch":         {VideoConstraints{Width: IntRanged{Min: 30, Max: 40}}, Video{Width: 50}, false},
		"IntRangeMatch":           {VideoConstraints{Width: IntRanged{Min: 30, Max: 40}}, Video{Width: 35}, true},
		"FloatExactUnmatch":       {VideoConstraints{FrameRate: FloatExact(30)}, Video{FrameRate: 29.97}, false},
		"FloatRangedMatch":        {VideoConstraints{FrameRate: FloatRanged{Min: 15, Max: 30}}, Video{FrameRate: 29.97}, true},
		"FloatOneOfUnmatch":       {VideoConstraints{FrameRate: FloatOneOf{25, 50}}, Video{FrameRate: 30}, false},
		"BoolExactUnmatch":        {VideoConstraints{FullRange: BoolExact(true)}, Video{FullRange: false}, false},
		"BoolExactMatch":          {VideoConstraints{FullRange: BoolExact(true)}, Video{FullRange: true}, true},
		"BoolIdealUnmatch":        {VideoConstraints{FullRange: Bool(true)}, Video{FullRange: false}, true},
		"FrameFormatIdealUnmatch": {VideoConstraints{FrameFormat: FrameFormat(frame.NV12)}, Video{FrameFormat: frame.I420}, true},
		"FrameFormatIdealInvalid": {VideoConstraints{FrameFormat: FrameFormat(frame.NV12)}, Video{}, false},
		"FrameFormatExactUnmatch": {VideoConstraints{FrameFormat: FrameFormatExact(frame.NV12)}, Video{FrameFormat: frame.NV21}, false},
		"FrameFormatExactMatch":   {VideoConstraints{FrameFormat: FrameFormatExact(frame.NV12)}, Video{FrameFormat: frame.NV12}, true},
		"FrameFormatExactInvalid": {VideoConstraints{FrameFormat: FrameFormatExact(frame.RawFormat{})}, Video{}, false},
		"FrameFormatOneOfMatch": {
			VideoConstraints{FrameFormat: FrameFormatOneOf{frame.YUYV, frame.YVYU}},
			Video{FrameFormat: frame.YUYV},
			true,
		},
		"FrameFormatOneOfUnmatch": {
			VideoConstraints{FrameFormat: FrameFormatOneOf{frame.YUYV, frame.YVYU}},
			Video{FrameFormat: frame.I420},
			false,
		},
		"NoConstraints": {VideoConstraints{}, Video{Width: 640}, true},
	}

	for name, testData := range testDataSet {
		testData := testData
		t.Run(name, func(t *testing.T) {
			_, match := testData.a.Compare(testData.b)
			assert.Equal(t, testData.match, match)
		})
	}
}

func TestCompareDistance(t *testing.T) {
	c := VideoConstraints{Width: Int(1280), Height: Int(720)}

	exact, ok := c.Compare(Video{Width: 1280, Height: 720})
	require.True(t, ok)
	assert.Zero(t, exact)

	near, _ := c.Compare(Video{Width: 1920, Height: 1080})
	far, _ := c.Compare(Video{Width: 320, Height: 240})
	assert.Less(t, near, far)
	assert.InDelta(t, 2./3, near, 1e-9)

	dist, ok := IntRanged{Min: 10, Max: 30, Ideal: 20}.Compare(15)
	require.True(t, ok)
	assert.InDelta(t, 0.5, dist, 1e-9)

	dist, ok = FloatRanged{Ideal: 30}.Compare(60)
	require.True(t, ok)
	assert.Zero(t, dist)
}

func TestSelect(t *testing.T) {
	caps := []Video{
		{Width: 640, Height: 480, FrameRate: 30, FrameFormat: frame.YUYV},
		{Width: 1280, Height: 720, FrameRate: 30, FrameFormat: frame.YUYV},
		{Width: 1280, Height: 720, FrameRate: 30, FrameFormat: frame.NV12},
		{Width: 1920, Height: 1080, FrameRate: 15, FrameFormat: frame.NV12},
		{Width: 1920, Height: 1080, FrameRate: 30},
	}

	t.Run("Ideal", func(t *testing.T) {
		v, err := Select(caps, VideoConstraints{
			Width:       Int(1280),
			Height:      Int(720),
			FrameFormat: FrameFormat(frame.NV12),
		})
		require.NoError(t, err)
		assert.Equal(t, caps[2], v)
	})

	t.Run("Tie", func(t *testing.T) {
		v, err := Select(caps, VideoConstraints{Width: Int(1280)})
		require.NoError(t, err)
		assert.Equal(t, caps[1], v)
	})

	t.Run("SkipsInvalidFormat", func(t *testing.T) {
		v, err := Select(caps, VideoConstraints{
			Width:       IntExact(1920),
			FrameRate:   Float(30),
			FrameFormat: FrameFormat(frame.I420),
		})
		require.NoError(t, err)
		assert.Equal(t, caps[3], v)
	})

	t.Run("ConstraintValues", func(t *testing.T) {
		v, err := Select(caps, VideoConstraints{
			Width:     IntExact(640),
			FullRange: Bool(true),
		})
		require.NoError(t, err)
		// FullRange comes from the capability.
		assert.Equal(t, caps[0], v)

		v, err = Select([]Video{{Width: 640}}, VideoConstraints{
			Height:    Int(480),
			FrameRate: Float(30),
		})
		require.NoError(t, err)
		assert.Equal(t, Video{Width: 640, Height: 480, FrameRate: 30}, v)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, err := Select(caps, VideoConstraints{FrameFormat: FrameFormatExact(frame.I420)})
		assert.ErrorIs(t, err, ErrNoMatch)

		_, err = Select(nil, VideoConstraints{})
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}

func TestConstraintValue(t *testing.T) {
	v := VideoConstraints{
		Width:       IntRanged{Min: 320, Max: 1920, Ideal: 1280},
		Height:      IntOneOf{720},
		FrameRate:   FloatExact(25),
		FrameFormat: FrameFormatOneOf{frame.NV12},
		FullRange:   BoolExact(true),
	}.Value()
	assert.Equal(t, Video{Width: 1280, FrameRate: 25, FullRange: true}, v)
}

func TestConstraintString(t *testing.T) {
	assert.Equal(t, "30 (ideal)", Int(30).String())
	assert.Equal(t, "480,720 (one of values)", IntOneOf{480, 720}.String())
	assert.Equal(t, "10 - 20 (range), 15 (ideal)", IntRanged{10, 20, 15}.String())
	assert.Equal(t, "29.97 (exact)", FloatExact(29.97).String())
	assert.Equal(t, "true (ideal)", Bool(true).String())
	assert.Equal(t, "nv12 (exact)", FrameFormatExact(frame.NV12).String())
	assert.Equal(t, "i420,yuyv (one of values)", FrameFormatOneOf{frame.I420, frame.YUYV}.String())
}

func TestMergeWithZero(t *testing.T) {
	a := Video{Width: 30, FrameFormat: frame.NV12}
	a.Merge(Video{Height: 100})

	assert.Equal(t, Video{Width: 30, Height: 100, FrameFormat: frame.NV12}, a)
}

func TestMergeWithSameField(t *testing.T) {
	a := Video{Width: 30, FullRange: true, FrameFormat: frame.NV12}
	a.Merge(Video{Width: 100, FrameFormat: frame.Gray})

	assert.Equal(t, Video{Width: 100, FrameFormat: frame.Gray}, a)
}
