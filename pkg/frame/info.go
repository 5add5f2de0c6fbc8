package frame

import (
	"strings"

	"github.com/pion/videodefs/pkg/colorspace"
)

// Dim is a width and a height, in pixels unless stated otherwise.
type Dim struct {
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// IsNull reports whether one of the components is zero.
func (d Dim) IsNull() bool {
	return d.Width == 0 || d.Height == 0
}

// IsAligned reports whether each component of d is a multiple of the
// matching component of a. A zero component of a is not checked.
func (d Dim) IsAligned(a Dim) bool {
	return isAligned(uint64(d.Width), uint64(a.Width)) &&
		isAligned(uint64(d.Height), uint64(a.Height))
}

func isAligned(x, a uint64) bool {
	return a == 0 || x%a == 0
}

// Rect is a rectangle. A negative Left or Top means the rectangle is
// centered on that axis.
type Rect struct {
	Left   int32  `json:"left" yaml:"left"`
	Top    int32  `json:"top" yaml:"top"`
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// Fit reports whether r lies inside bounds. bounds can not be centered.
func (r Rect) Fit(bounds Rect) bool {
	if bounds.Left < 0 || bounds.Top < 0 {
		return false
	}
	return fitAxis(r.Left, r.Width, bounds.Left, bounds.Width) &&
		fitAxis(r.Top, r.Height, bounds.Top, bounds.Height)
}

func fitAxis(start int32, length uint32, boundStart int32, boundLength uint32) bool {
	if start < 0 {
		return length <= boundLength
	}
	return start >= boundStart &&
		int64(start)+int64(length) <= int64(boundStart)+int64(boundLength)
}

// IsAligned reports whether each component of r is a multiple of the
// matching component of a. A zero component of a is not checked.
func (r Rect) IsAligned(a Rect) bool {
	return isAlignedSigned(r.Left, a.Left) &&
		isAlignedSigned(r.Top, a.Top) &&
		isAligned(uint64(r.Width), uint64(a.Width)) &&
		isAligned(uint64(r.Height), uint64(a.Height))
}

func isAlignedSigned(x, a int32) bool {
	return a == 0 || x%a == 0
}

// Align returns r with each component aligned on the matching component of
// a. The origin moves to the next lower multiple if alignLower is set, to
// the next upper one otherwise; with enlarge, the size compensates the
// origin move so that the opposite edge stays in place. Sizes are always
// rounded up. Centered axes keep their origin.
func (r Rect) Align(a Rect, alignLower, enlarge bool) Rect {
	r.Left, r.Width = alignAxis(r.Left, r.Width, a.Left, alignLower, enlarge)
	r.Top, r.Height = alignAxis(r.Top, r.Height, a.Top, alignLower, enlarge)
	if a.Width > 0 {
		r.Width = uint32(align(uint64(r.Width), uint64(a.Width)))
	}
	if a.Height > 0 {
		r.Height = uint32(align(uint64(r.Height), uint64(a.Height)))
	}
	return r
}

func alignAxis(start int32, length uint32, a int32, alignLower, enlarge bool) (int32, uint32) {
	if a <= 0 || start < 0 {
		return start, length
	}
	diff := int64(align(uint64(start), uint64(a))) - int64(start)
	if alignLower && diff != 0 {
		diff -= int64(a)
	}
	start += int32(diff)
	if enlarge {
		length = uint32(int64(length) - diff)
	}
	return start, length
}

// Frac is a fraction, typically a frame rate.
type Frac struct {
	Num uint32 `json:"num" yaml:"num"`
	Den uint32 `json:"den" yaml:"den"`
}

// IsNull reports whether one of the terms is zero.
func (f Frac) IsNull() bool {
	return f.Num == 0 || f.Den == 0
}

// Diff compares f to g; the result is negative if f < g, zero if they are
// equal and positive if f > g.
func (f Frac) Diff(g Frac) int64 {
	return int64(f.Num)*int64(g.Den) - int64(f.Den)*int64(g.Num)
}

// Float64 returns the value of f, 0 if f is null.
func (f Frac) Float64() float64 {
	if f.IsNull() {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}

// FrameType tells whether a frame is raw or coded.
type FrameType int

const (
	FrameTypeUnknown FrameType = iota
	FrameTypeRaw
	FrameTypeCoded
)

var frameTypeNames = []enumName[FrameType]{
	{FrameTypeRaw, "RAW"},
	{FrameTypeCoded, "CODED"},
}

func (t FrameType) String() string {
	if s, ok := nameOf(frameTypeNames, t); ok {
		return s
	}
	return unknownName
}

// ParseFrameType returns the frame type named s, ignoring case.
func ParseFrameType(s string) FrameType { return valueOf(frameTypeNames, "frame type", s) }

// FrameFlag is a bit set of frame properties.
type FrameFlag uint64

const (
	// FrameFlagNotMapped is set when the frame data is not mapped in
	// memory.
	FrameFlagNotMapped FrameFlag = 1 << iota
	// FrameFlagDataError is set when the frame data is corrupted.
	FrameFlagDataError
	// FrameFlagNoCacheInvalidate is set when the CPU cache of the frame
	// buffer does not need invalidating.
	FrameFlagNoCacheInvalidate
	// FrameFlagNoCacheClean is set when the CPU cache of the frame buffer
	// does not need cleaning.
	FrameFlagNoCacheClean
	// FrameFlagVisualError is set when the frame has visible errors.
	FrameFlagVisualError
	// FrameFlagSilent is set on frames that must not be displayed.
	FrameFlagSilent
	// FrameFlagUsesLTR is set when the frame refers to a long-term
	// reference frame.
	FrameFlagUsesLTR
)

var frameFlagNames = []enumName[FrameFlag]{
	{FrameFlagNotMapped, "NOT_MAPPED"},
	{FrameFlagDataError, "DATA_ERROR"},
	{FrameFlagNoCacheInvalidate, "NO_CACHE_INVALIDATE"},
	{FrameFlagNoCacheClean, "NO_CACHE_CLEAN"},
	{FrameFlagVisualError, "VISUAL_ERROR"},
	{FrameFlagSilent, "SILENT"},
	{FrameFlagUsesLTR, "USES_LTR"},
}

// Has reports whether all the flags of g are set in f.
func (f FrameFlag) Has(g FrameFlag) bool {
	return f&g == g
}

// String returns the names of the set flags separated by '|', or "NONE".
func (f FrameFlag) String() string {
	if f == 0 {
		return "NONE"
	}
	var names []string
	for _, n := range frameFlagNames {
		if f.Has(n.value) {
			names = append(names, n.name)
			f &^= n.value
		}
	}
	if f != 0 {
		names = append(names, unknownName)
	}
	return strings.Join(names, "|")
}

// Color is the colour description shared by format and frame information.
type Color struct {
	BitDepth         uint32                      `json:"bit_depth" yaml:"bit_depth"`
	FullRange        bool                        `json:"full_range" yaml:"full_range"`
	ColorPrimaries   colorspace.ColorPrimaries   `json:"color_primaries" yaml:"color_primaries"`
	TransferFunction colorspace.TransferFunction `json:"transfer_function" yaml:"transfer_function"`
	MatrixCoefs      colorspace.MatrixCoefs      `json:"matrix_coefs" yaml:"matrix_coefs"`
	DynamicRange     colorspace.DynamicRange     `json:"dynamic_range" yaml:"dynamic_range"`
	ToneMapping      colorspace.ToneMapping      `json:"tone_mapping" yaml:"tone_mapping"`
}

// MDCV is the mastering display colour volume (SMPTE ST 2086).
type MDCV struct {
	// DisplayPrimaries is Unknown when only DisplayPrimariesValue is known.
	DisplayPrimaries      colorspace.ColorPrimaries
	DisplayPrimariesValue colorspace.PrimariesValue
	// Luminances in cd/m², 0 if unknown.
	MaxDisplayMasteringLuminance float32
	MinDisplayMasteringLuminance float32
}

// IsSet reports whether the primaries and both luminances are known.
func (m MDCV) IsSet() bool {
	if m.MaxDisplayMasteringLuminance == 0 || m.MinDisplayMasteringLuminance == 0 {
		return false
	}
	if m.DisplayPrimaries != colorspace.ColorPrimariesUnknown {
		return true
	}
	v := m.DisplayPrimariesValue
	for _, c := range []colorspace.Chromaticity{v.Green, v.Blue, v.Red, v.WhitePoint} {
		if c.X == 0 || c.Y == 0 {
			return false
		}
	}
	return true
}

// Primaries returns DisplayPrimaries, or the primaries matching
// DisplayPrimariesValue if it is unknown.
func (m MDCV) Primaries() colorspace.ColorPrimaries {
	if m.DisplayPrimaries != colorspace.ColorPrimariesUnknown {
		return m.DisplayPrimaries
	}
	return colorspace.ColorPrimariesFromValue(m.DisplayPrimariesValue)
}

// CLL is the content light level, in cd/m², 0 if unknown.
type CLL struct {
	MaxCLL  uint32 `json:"max_cll" yaml:"max_cll"`
	MaxFALL uint32 `json:"max_fall" yaml:"max_fall"`
}

// IsSet reports whether both levels are known.
func (c CLL) IsSet() bool {
	return c.MaxCLL != 0 && c.MaxFALL != 0
}

// FormatInfo describes a video stream, raw or coded.
type FormatInfo struct {
	Framerate Frac
	Color
	Resolution Dim
	// SAR is the sample aspect ratio; 1:1 for square pixels.
	SAR  Dim
	MDCV MDCV
	CLL  CLL
}

// FrameInfo describes a single frame.
type FrameInfo struct {
	// Timestamp is in Timescale units.
	Timestamp uint64
	// Timescale is in Hz.
	Timescale uint32
	// CaptureTimestamp is the capture time in microseconds on the
	// monotonic clock of the capturing system.
	CaptureTimestamp uint64
	Index            uint32
	Flags            FrameFlag
	Color
	Resolution Dim
	SAR        Dim
}

// FrameInfo returns the frame information matching i. Fields that only
// exist in FrameInfo are zero.
func (i FormatInfo) FrameInfo() FrameInfo {
	return FrameInfo{
		Color:      i.Color,
		Resolution: i.Resolution,
		SAR:        i.SAR,
	}
}

// FormatInfo returns the format information matching i. Fields that only
// exist in FormatInfo are zero.
func (i FrameInfo) FormatInfo() FormatInfo {
	return FormatInfo{
		Color:      i.Color,
		Resolution: i.Resolution,
		SAR:        i.SAR,
	}
}

// RawFrame is the metadata of a raw frame.
type RawFrame struct {
	Format      RawFormat
	Info        FrameInfo
	PlaneStride [MaxPlaneCount]uint64
}

// Geometry returns the plane layout of f, using its strides as minimums.
func (f RawFrame) Geometry() (PlaneGeometry, error) {
	return CalcRawFrameSize(f.Format, f.Info.Resolution, &PlaneOptions{Stride: f.PlaneStride})
}

// CodedFrame is the metadata of a coded frame.
type CodedFrame struct {
	Format CodedFormat
	Info   FrameInfo
	Type   CodedFrameType
}
