// Package colorspace describes the colour properties of video frames:
// primaries, transfer functions, matrix coefficients, dynamic range and tone
// mapping, with their H.264/H.265 VUI codes and conversion constants.
package colorspace

import (
	"strings"

	"github.com/pion/videodefs/internal/logging"
)

var logger = logging.NewLogger("colorspace")

// ColorPrimaries identifies the chromaticity of the RGB primaries and of
// the white point.
type ColorPrimaries int

const (
	ColorPrimariesUnknown ColorPrimaries = iota
	// ColorPrimariesBT601_525 is Rec. ITU-R BT.601-7 525-line.
	ColorPrimariesBT601_525
	// ColorPrimariesBT601_625 is Rec. ITU-R BT.601-7 625-line.
	ColorPrimariesBT601_625
	// ColorPrimariesBT709 is Rec. ITU-R BT.709-6, also IEC 61966-2-1 sRGB.
	ColorPrimariesBT709
	// ColorPrimariesBT2020 is Rec. ITU-R BT.2020-2, also BT.2100.
	ColorPrimariesBT2020
	// ColorPrimariesDCIP3 is SMPTE RP 431-2.
	ColorPrimariesDCIP3
	// ColorPrimariesDisplayP3 is SMPTE EG 432-1.
	ColorPrimariesDisplayP3

	colorPrimariesCount
)

// Primaries aliases
const (
	ColorPrimariesSRGB   = ColorPrimariesBT709
	ColorPrimariesBT2100 = ColorPrimariesBT2020
)

// TransferFunction is the opto-electronic transfer characteristic.
type TransferFunction int

const (
	TransferFunctionUnknown TransferFunction = iota
	TransferFunctionBT601
	TransferFunctionBT709
	TransferFunctionBT2020
	// TransferFunctionPQ is SMPTE ST 2084 perceptual quantization.
	TransferFunctionPQ
	// TransferFunctionHLG is BT.2100 hybrid log-gamma.
	TransferFunctionHLG
	TransferFunctionSRGB
)

// MatrixCoefs are the coefficients deriving luma and chroma from RGB.
type MatrixCoefs int

const (
	MatrixCoefsUnknown MatrixCoefs = iota
	// MatrixCoefsIdentity is used for RGB (sRGB) content.
	MatrixCoefsIdentity
	MatrixCoefsBT601_525
	MatrixCoefsBT601_625
	MatrixCoefsBT709
	// MatrixCoefsBT2020NonCst is the BT.2020 non-constant luminance system,
	// also BT.2100.
	MatrixCoefsBT2020NonCst
	// MatrixCoefsBT2020Cst is the BT.2020 constant luminance system.
	MatrixCoefsBT2020Cst

	matrixCoefsCount
)

// Matrix aliases
const (
	MatrixCoefsSRGB   = MatrixCoefsIdentity
	MatrixCoefsBT2100 = MatrixCoefsBT2020NonCst
)

// DynamicRange of the content.
type DynamicRange int

const (
	DynamicRangeUnknown DynamicRange = iota
	DynamicRangeSDR
	// DynamicRangeHDR8 is 8-bit HDR.
	DynamicRangeHDR8
	// DynamicRangeHDR10 is 10-bit HDR10 (PQ, BT.2020).
	DynamicRangeHDR10
)

// ToneMapping of the content.
type ToneMapping int

const (
	ToneMappingUnknown ToneMapping = iota
	ToneMappingStandard
	// ToneMappingPLog is a logarithmic tone mapping.
	ToneMappingPLog
)

const unknownName = "UNKNOWN"

type enumName[T comparable] struct {
	value T
	name  string
}

func nameOf[T comparable](names []enumName[T], v T) string {
	for _, n := range names {
		if n.value == v {
			return n.name
		}
	}
	return unknownName
}

func valueOf[T comparable](names []enumName[T], kind, s string) T {
	var zero T
	for _, n := range names {
		if strings.EqualFold(n.name, s) {
			return n.value
		}
	}
	if !strings.EqualFold(s, unknownName) {
		logger.Warnf("unknown %s '%s'", kind, s)
	}
	return zero
}

var colorPrimariesNames = []enumName[ColorPrimaries]{
	{ColorPrimariesBT601_525, "BT601_525"},
	{ColorPrimariesBT601_625, "BT601_625"},
	{ColorPrimariesBT709, "BT709"},
	{ColorPrimariesBT2020, "BT2020"},
	{ColorPrimariesDCIP3, "DCI_P3"},
	{ColorPrimariesDisplayP3, "DISPLAY_P3"},
	{ColorPrimariesSRGB, "SRGB"},
	{ColorPrimariesBT2100, "BT2100"},
}

var transferFunctionNames = []enumName[TransferFunction]{
	{TransferFunctionBT601, "BT601"},
	{TransferFunctionBT709, "BT709"},
	{TransferFunctionBT2020, "BT2020"},
	{TransferFunctionPQ, "PQ"},
	{TransferFunctionHLG, "HLG"},
	{TransferFunctionSRGB, "SRGB"},
}

var matrixCoefsNames = []enumName[MatrixCoefs]{
	{MatrixCoefsIdentity, "IDENTITY"},
	{MatrixCoefsBT601_525, "BT601_525"},
	{MatrixCoefsBT601_625, "BT601_625"},
	{MatrixCoefsBT709, "BT709"},
	{MatrixCoefsBT2020NonCst, "BT2020_NON_CST"},
	{MatrixCoefsBT2020Cst, "BT2020_CST"},
	{MatrixCoefsSRGB, "SRGB"},
	{MatrixCoefsBT2100, "BT2100"},
}

var dynamicRangeNames = []enumName[DynamicRange]{
	{DynamicRangeSDR, "SDR"},
	{DynamicRangeHDR8, "HDR8"},
	{DynamicRangeHDR10, "HDR10"},
}

var toneMappingNames = []enumName[ToneMapping]{
	{ToneMappingStandard, "STANDARD"},
	{ToneMappingPLog, "P_LOG"},
}

func (c ColorPrimaries) String() string { return nameOf(colorPrimariesNames, c) }

// ParseColorPrimaries returns the primaries named s, ignoring case.
func ParseColorPrimaries(s string) ColorPrimaries {
	return valueOf(colorPrimariesNames, "color primaries", s)
}

func (t TransferFunction) String() string { return nameOf(transferFunctionNames, t) }

// ParseTransferFunction returns the transfer function named s, ignoring case.
func ParseTransferFunction(s string) TransferFunction {
	return valueOf(transferFunctionNames, "transfer function", s)
}

func (m MatrixCoefs) String() string { return nameOf(matrixCoefsNames, m) }

// ParseMatrixCoefs returns the matrix coefficients named s, ignoring case.
func ParseMatrixCoefs(s string) MatrixCoefs {
	return valueOf(matrixCoefsNames, "matrix coefs", s)
}

func (d DynamicRange) String() string { return nameOf(dynamicRangeNames, d) }

// ParseDynamicRange returns the dynamic range named s, ignoring case.
func ParseDynamicRange(s string) DynamicRange {
	return valueOf(dynamicRangeNames, "dynamic range", s)
}

func (t ToneMapping) String() string { return nameOf(toneMappingNames, t) }

// ParseToneMapping returns the tone mapping named s, ignoring case.
func ParseToneMapping(s string) ToneMapping {
	return valueOf(toneMappingNames, "tone mapping", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorPrimaries) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorPrimaries) UnmarshalText(b []byte) error {
	*c = ParseColorPrimaries(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t TransferFunction) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TransferFunction) UnmarshalText(b []byte) error {
	*t = ParseTransferFunction(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m MatrixCoefs) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MatrixCoefs) UnmarshalText(b []byte) error {
	*m = ParseMatrixCoefs(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d DynamicRange) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DynamicRange) UnmarshalText(b []byte) error {
	*d = ParseDynamicRange(string(b))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t ToneMapping) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ToneMapping) UnmarshalText(b []byte) error {
	*t = ParseToneMapping(string(b))
	return nil
}
