package frame

// planeRatio scales the natural stride and scanline of every plane.
type planeRatio struct {
	strideMul, strideDiv [MaxPlaneCount]uint64
	heightMul, heightDiv [MaxPlaneCount]uint64
}

var identityRatio = planeRatio{
	strideMul: [MaxPlaneCount]uint64{1, 1, 1, 1},
	strideDiv: [MaxPlaneCount]uint64{1, 1, 1, 1},
	heightMul: [MaxPlaneCount]uint64{1, 1, 1, 1},
	heightDiv: [MaxPlaneCount]uint64{1, 1, 1, 1},
}

func (r planeRatio) withStride(mul, div [MaxPlaneCount]uint64) planeRatio {
	r.strideMul, r.strideDiv = mul, div
	return r
}

func (r planeRatio) withHeight(mul, div [MaxPlaneCount]uint64) planeRatio {
	r.heightMul, r.heightDiv = mul, div
	return r
}

// pixFormatRule holds everything the validity model and the geometry
// calculator know about a pixel format.
type pixFormatRule struct {
	components int
	// orders and layouts are the accepted values; nil accepts anything.
	orders  []PixOrder
	layouts []DataLayout
	// maxPixSize and pixSize bound PixSize when nonzero.
	maxPixSize uint32
	pixSize    uint32
	// planarPlanes is the plane count of the planar layout.
	planarPlanes int
	semiPlanar   bool
	// ratios overrides the identity ratio for a data layout.
	ratios map[DataLayout]planeRatio
}

var (
	yuvOrders = []PixOrder{PixOrderYUV, PixOrderYVU}

	ratioHalfChroma = identityRatio.withStride(
		[MaxPlaneCount]uint64{1, 1, 1, 1},
		[MaxPlaneCount]uint64{1, 2, 2, 1},
	)
	ratioYUV420Planar = ratioHalfChroma.withHeight(
		[MaxPlaneCount]uint64{1, 1, 1, 1},
		[MaxPlaneCount]uint64{1, 2, 2, 1},
	)
	ratioYUV420SemiPlanar = identityRatio.withHeight(
		[MaxPlaneCount]uint64{1, 1, 1, 1},
		[MaxPlaneCount]uint64{1, 2, 1, 1},
	)
	ratioYUV444SemiPlanar = identityRatio.withStride(
		[MaxPlaneCount]uint64{1, 2, 1, 1},
		[MaxPlaneCount]uint64{1, 1, 1, 1},
	)
	// Two samples per pixel: luma plus one alternating chroma sample.
	ratioYUV422Interleaved = identityRatio.withStride(
		[MaxPlaneCount]uint64{2, 1, 1, 1},
		[MaxPlaneCount]uint64{1, 1, 1, 1},
	)
)

var pixFormatRules = map[PixFormat]pixFormatRule{
	PixFormatUnknown: {
		components:   1,
		planarPlanes: 1,
	},
	PixFormatYUV420: {
		components:   3,
		orders:       yuvOrders,
		layouts:      []DataLayout{DataLayoutPlanar, DataLayoutSemiPlanar},
		planarPlanes: 3,
		semiPlanar:   true,
		ratios: map[DataLayout]planeRatio{
			DataLayoutPlanar:     ratioYUV420Planar,
			DataLayoutSemiPlanar: ratioYUV420SemiPlanar,
		},
	},
	PixFormatYUV422: {
		components:   3,
		orders:       yuvOrders,
		layouts:      []DataLayout{DataLayoutInterleaved, DataLayoutPlanar, DataLayoutSemiPlanar},
		planarPlanes: 3,
		semiPlanar:   true,
		ratios: map[DataLayout]planeRatio{
			DataLayoutPlanar:      ratioHalfChroma,
			DataLayoutInterleaved: ratioYUV422Interleaved,
		},
	},
	PixFormatYUV444: {
		components:   3,
		orders:       yuvOrders,
		layouts:      []DataLayout{DataLayoutPlanar, DataLayoutSemiPlanar},
		planarPlanes: 3,
		semiPlanar:   true,
		ratios: map[DataLayout]planeRatio{
			DataLayoutSemiPlanar: ratioYUV444SemiPlanar,
		},
	},
	PixFormatGray: {
		components:   1,
		orders:       []PixOrder{PixOrderA},
		layouts:      []DataLayout{DataLayoutPacked},
		maxPixSize:   16,
		planarPlanes: 1,
	},
	PixFormatRGB24: {
		components:   3,
		orders:       []PixOrder{PixOrderRGB, PixOrderBGR},
		layouts:      []DataLayout{DataLayoutPacked, DataLayoutPlanar},
		pixSize:      8,
		planarPlanes: 3,
	},
	PixFormatRGBA32: {
		components:   4,
		orders:       []PixOrder{PixOrderRGBA, PixOrderABGR, PixOrderBGRA},
		layouts:      []DataLayout{DataLayoutPacked, DataLayoutPlanar},
		pixSize:      8,
		planarPlanes: 4,
	},
	PixFormatBayer: {
		components:   1,
		orders:       []PixOrder{PixOrderRGGB, PixOrderGRBG, PixOrderGBRG, PixOrderBGGR},
		layouts:      []DataLayout{DataLayoutPacked, DataLayoutPlanar},
		maxPixSize:   16,
		planarPlanes: 4,
	},
	PixFormatDepth: {
		components:   1,
		orders:       []PixOrder{PixOrderA},
		layouts:      []DataLayout{DataLayoutPacked},
		pixSize:      32,
		planarPlanes: 1,
	},
	PixFormatDepthFloat: {
		components:   1,
		orders:       []PixOrder{PixOrderA},
		layouts:      []DataLayout{DataLayoutPacked},
		pixSize:      32,
		planarPlanes: 1,
	},
}

// IsValid reports whether the combination of the fields of f describes a
// legal format.
func (f RawFormat) IsValid() bool {
	if f.PixOrder < PixOrderUnknown || f.PixOrder > PixOrderDCBA {
		return false
	}
	if f.DataLayout < DataLayoutUnknown || f.DataLayout > DataLayoutOpaque {
		return false
	}
	if f.PixLayout < PixLayoutUnknown || f.PixLayout > PixLayoutHiSiTile64x16Compressed {
		return false
	}
	if f.PixSize == 0 || f.DataSize == 0 || f.PixSize > f.DataSize {
		return false
	}

	rule, ok := pixFormatRules[f.PixFormat]
	if !ok {
		return false
	}
	if rule.orders != nil && !containsOrder(rule.orders, f.PixOrder) {
		return false
	}
	if rule.layouts != nil && !containsLayout(rule.layouts, f.DataLayout) {
		return false
	}
	if rule.maxPixSize != 0 && f.PixSize > rule.maxPixSize {
		return false
	}
	if rule.pixSize != 0 && f.PixSize != rule.pixSize {
		return false
	}
	return true
}

// PlaneCount returns the number of planes a frame of format f occupies, or
// 0 when the data layout cannot be used with the pixel format.
func (f RawFormat) PlaneCount() int {
	rule, ok := pixFormatRules[f.PixFormat]
	switch f.DataLayout {
	case DataLayoutUnknown, DataLayoutPacked, DataLayoutInterleaved, DataLayoutOpaque:
		return 1
	case DataLayoutPlanar:
		if !ok {
			return 1
		}
		return rule.planarPlanes
	case DataLayoutSemiPlanar:
		if ok && rule.semiPlanar {
			return 2
		}
		return 0
	default:
		return 0
	}
}

// ComponentCount returns the number of components of a pixel.
func (p PixFormat) ComponentCount() int {
	if rule, ok := pixFormatRules[p]; ok {
		return rule.components
	}
	return 1
}

// ratio returns the stride and scanline scaling of every plane of f.
func (f RawFormat) ratio(planeCount int) planeRatio {
	rule := pixFormatRules[f.PixFormat]
	if r, ok := rule.ratios[f.DataLayout]; ok {
		return r
	}
	r := identityRatio
	if planeCount == 1 {
		r.strideMul[0] = uint64(f.PixFormat.ComponentCount())
	}
	return r
}

func containsOrder(orders []PixOrder, o PixOrder) bool {
	for _, oo := range orders {
		if oo == o {
			return true
		}
	}
	return false
}

func containsLayout(layouts []DataLayout, l DataLayout) bool {
	for _, ll := range layouts {
		if ll == l {
			return true
		}
	}
	return false
}
