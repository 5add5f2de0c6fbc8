package colorspace

// Rec. ITU-T H.273 code points, shared by the H.264 and H.265 VUI.

// H273Unspecified is the code of an unspecified property.
const H273Unspecified = 2

var colorPrimariesCodes = map[ColorPrimaries]uint32{
	ColorPrimariesBT601_525: 6,
	ColorPrimariesBT601_625: 5,
	ColorPrimariesBT709:     1,
	ColorPrimariesBT2020:    9,
	ColorPrimariesDCIP3:     11,
	ColorPrimariesDisplayP3: 12,
}

var transferFunctionCodes = map[TransferFunction]uint32{
	TransferFunctionBT601:  6,
	TransferFunctionBT709:  1,
	TransferFunctionBT2020: 14,
	TransferFunctionPQ:     16,
	TransferFunctionHLG:    18,
	TransferFunctionSRGB:   13,
}

var matrixCoefsCodes = map[MatrixCoefs]uint32{
	MatrixCoefsIdentity:     0,
	MatrixCoefsBT601_525:    6,
	MatrixCoefsBT601_625:    5,
	MatrixCoefsBT709:        1,
	MatrixCoefsBT2020NonCst: 9,
	MatrixCoefsBT2020Cst:    10,
}

func toCode[T comparable](codes map[T]uint32, v T) uint32 {
	if c, ok := codes[v]; ok {
		return c
	}
	return H273Unspecified
}

func fromCode[T comparable](codes map[T]uint32, code uint32) T {
	var zero T
	for v, c := range codes {
		if c == code {
			return v
		}
	}
	return zero
}

// ColorPrimariesFromH273 maps a colour_primaries code.
func ColorPrimariesFromH273(code uint32) ColorPrimaries {
	return fromCode(colorPrimariesCodes, code)
}

// H273 returns the colour_primaries code of c.
func (c ColorPrimaries) H273() uint32 { return toCode(colorPrimariesCodes, c) }

// TransferFunctionFromH273 maps a transfer_characteristics code.
func TransferFunctionFromH273(code uint32) TransferFunction {
	// 10-bit and 12-bit BT.2020 share one transfer function.
	if code == 15 {
		return TransferFunctionBT2020
	}
	return fromCode(transferFunctionCodes, code)
}

// H273 returns the transfer_characteristics code of t.
func (t TransferFunction) H273() uint32 { return toCode(transferFunctionCodes, t) }

// MatrixCoefsFromH273 maps a matrix_coefficients code.
func MatrixCoefsFromH273(code uint32) MatrixCoefs {
	return fromCode(matrixCoefsCodes, code)
}

// H273 returns the matrix_coefficients code of m.
func (m MatrixCoefs) H273() uint32 { return toCode(matrixCoefsCodes, m) }

// ColorPrimariesFromH264 maps an H.264 VUI colour_primaries code.
func ColorPrimariesFromH264(code uint32) ColorPrimaries { return ColorPrimariesFromH273(code) }

// ColorPrimariesFromH265 maps an H.265 VUI colour_primaries code.
func ColorPrimariesFromH265(code uint32) ColorPrimaries { return ColorPrimariesFromH273(code) }

// TransferFunctionFromH264 maps an H.264 VUI transfer_characteristics code.
func TransferFunctionFromH264(code uint32) TransferFunction { return TransferFunctionFromH273(code) }

// TransferFunctionFromH265 maps an H.265 VUI transfer_characteristics code.
func TransferFunctionFromH265(code uint32) TransferFunction { return TransferFunctionFromH273(code) }

// MatrixCoefsFromH264 maps an H.264 VUI matrix_coefficients code.
func MatrixCoefsFromH264(code uint32) MatrixCoefs { return MatrixCoefsFromH273(code) }

// MatrixCoefsFromH265 maps an H.265 VUI matrix_coeffs code.
func MatrixCoefsFromH265(code uint32) MatrixCoefs { return MatrixCoefsFromH273(code) }
