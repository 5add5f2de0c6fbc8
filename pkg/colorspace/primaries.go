package colorspace

import "math"

// Chromaticity is a CIE 1931 xy coordinate.
type Chromaticity struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// PrimariesValue holds the chromaticity of the primaries and of the white
// point of a colour space.
type PrimariesValue struct {
	Green, Blue, Red Chromaticity
	WhitePoint       Chromaticity
}

var (
	whiteD65  = Chromaticity{0.3127, 0.3290}
	white6300 = Chromaticity{0.3140, 0.3510}
)

var primariesValues = [colorPrimariesCount]PrimariesValue{
	ColorPrimariesBT601_525: {
		Green:      Chromaticity{0.310, 0.595},
		Blue:       Chromaticity{0.155, 0.070},
		Red:        Chromaticity{0.630, 0.340},
		WhitePoint: whiteD65,
	},
	ColorPrimariesBT601_625: {
		Green:      Chromaticity{0.290, 0.600},
		Blue:       Chromaticity{0.150, 0.060},
		Red:        Chromaticity{0.640, 0.330},
		WhitePoint: whiteD65,
	},
	ColorPrimariesBT709: {
		Green:      Chromaticity{0.300, 0.600},
		Blue:       Chromaticity{0.150, 0.060},
		Red:        Chromaticity{0.640, 0.330},
		WhitePoint: whiteD65,
	},
	ColorPrimariesBT2020: {
		Green:      Chromaticity{0.170, 0.797},
		Blue:       Chromaticity{0.131, 0.046},
		Red:        Chromaticity{0.708, 0.292},
		WhitePoint: whiteD65,
	},
	ColorPrimariesDCIP3: {
		Green:      Chromaticity{0.265, 0.690},
		Blue:       Chromaticity{0.150, 0.060},
		Red:        Chromaticity{0.680, 0.320},
		WhitePoint: white6300,
	},
	ColorPrimariesDisplayP3: {
		Green:      Chromaticity{0.265, 0.690},
		Blue:       Chromaticity{0.150, 0.060},
		Red:        Chromaticity{0.680, 0.320},
		WhitePoint: whiteD65,
	},
}

// Value returns the chromaticities of c; the zero value if c is unknown.
func (c ColorPrimaries) Value() PrimariesValue {
	if c < 0 || c >= colorPrimariesCount {
		return PrimariesValue{}
	}
	return primariesValues[c]
}

func round(v, scale float32) float32 {
	return float32(math.Round(float64(v*scale))) / scale
}

func (p PrimariesValue) rounded() PrimariesValue {
	r := func(c Chromaticity) Chromaticity {
		return Chromaticity{round(c.X, 1000), round(c.Y, 1000)}
	}
	return PrimariesValue{
		Green: r(p.Green),
		Blue:  r(p.Blue),
		Red:   r(p.Red),
		WhitePoint: Chromaticity{
			round(p.WhitePoint.X, 10000),
			round(p.WhitePoint.Y, 10000),
		},
	}
}

// ColorPrimariesFromValue returns the primaries matching v, comparing the
// primaries to 10^-3 and the white point to 10^-4.
func ColorPrimariesFromValue(v PrimariesValue) ColorPrimaries {
	r := v.rounded()
	for c := ColorPrimariesUnknown + 1; c < colorPrimariesCount; c++ {
		if primariesValues[c] == r {
			return c
		}
	}
	return ColorPrimariesUnknown
}
