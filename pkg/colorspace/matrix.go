package colorspace

// Mat3 is a 3x3 matrix in column-major order, as used by OpenGL.
type Mat3 [9]float32

// Vec3 is a 3 component vector.
type Vec3 [3]float32

// Identity3 is the 3x3 identity matrix.
var Identity3 = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Linear light gamut conversion matrices (Rec. ITU-R BT.2087, Rep. ITU-R
// BT.2407). No tone mapping is done: BT.2020 to BT.709 results may fall out
// of [0, 1].
var (
	BT709ToBT2020 = Mat3{
		0.6274, 0.0691, 0.0164,
		0.3293, 0.9195, 0.0880,
		0.0433, 0.0114, 0.8956,
	}
	BT2020ToBT709 = Mat3{
		1.6605, -0.1246, -0.0182,
		-0.5876, 1.1329, -0.1006,
		-0.0728, -0.0083, 1.1187,
	}
)

type lumaCoefs struct {
	kr, kb float32
}

// Digital representation of 8-bit limited range video.
const (
	lumaMin     = 16
	lumaMax     = 235
	lumaRange   = lumaMax - lumaMin
	chromaMin   = 16
	chromaZero  = 128
	chromaMax   = 240
	chromaRange = chromaMax - chromaMin
)

var matrixLumaCoefs = map[MatrixCoefs]lumaCoefs{
	MatrixCoefsBT601_525:    {0.299, 0.114},
	MatrixCoefsBT601_625:    {0.299, 0.114},
	MatrixCoefsBT709:        {0.2126, 0.0722},
	MatrixCoefsBT2020NonCst: {0.2627, 0.0593},
	MatrixCoefsBT2020Cst:    {0.2627, 0.0593},
}

// Tables indexed by matrix coefficients then by full range.
var (
	rgbToYUVMatrix [matrixCoefsCount][2]Mat3
	yuvToRGBMatrix [matrixCoefsCount][2]Mat3
	normOffset     [matrixCoefsCount][2]Vec3
)

func init() {
	rgbToYUVMatrix[MatrixCoefsIdentity] = [2]Mat3{Identity3, Identity3}
	yuvToRGBMatrix[MatrixCoefsIdentity] = [2]Mat3{Identity3, Identity3}

	for m, k := range matrixLumaCoefs {
		kr, kb := k.kr, k.kb
		kg := 1 - kb - kr

		// Row-major forms, see Rec. ITU-T H.273 8.3.
		rgbToYUV := [3][3]float32{
			{kr, kg, kb},
			{-kr / (2 * (1 - kb)), -kg / (2 * (1 - kb)), 0.5},
			{0.5, -kg / (2 * (1 - kr)), -kb / (2 * (1 - kr))},
		}
		yuvToRGB := [3][3]float32{
			{1, 0, 2 * (1 - kr)},
			{1, -2 * kb / kg * (1 - kb), -2 * kr / kg * (1 - kr)},
			{1, 2 * (1 - kb), 0},
		}

		limitedRGB := [3]float32{lumaRange / 255., chromaRange / 255., chromaRange / 255.}
		for fullRange := 0; fullRange < 2; fullRange++ {
			var fwd, inv Mat3
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					f, i := rgbToYUV[row][col], yuvToRGB[row][col]
					if fullRange == 0 {
						// Output rows of the forward matrix and input
						// columns of the inverse one are rescaled.
						f *= limitedRGB[row]
						i /= limitedRGB[col]
					}
					fwd[col*3+row] = f
					inv[col*3+row] = i
				}
			}
			rgbToYUVMatrix[m][fullRange] = fwd
			yuvToRGBMatrix[m][fullRange] = inv

			lumaOffset := float32(0)
			if fullRange == 0 {
				lumaOffset = -lumaMin / 255.
			}
			normOffset[m][fullRange] = Vec3{lumaOffset, -chromaZero / 255., -chromaZero / 255.}
		}
	}
}

func rangeIndex(fullRange bool) int {
	if fullRange {
		return 1
	}
	return 0
}

func (m MatrixCoefs) valid() bool {
	return m >= 0 && m < matrixCoefsCount
}

// RGBToYUVMatrix returns the matrix converting normalized RGB to YUV:
// YUV = mat * RGB - off. Unknown coefficients yield the zero matrix.
func RGBToYUVMatrix(m MatrixCoefs, fullRange bool) Mat3 {
	if !m.valid() {
		return Mat3{}
	}
	return rgbToYUVMatrix[m][rangeIndex(fullRange)]
}

// RGBToYUVOffset returns the offset subtracted after RGBToYUVMatrix.
func RGBToYUVOffset(m MatrixCoefs, fullRange bool) Vec3 {
	if !m.valid() {
		return Vec3{}
	}
	return normOffset[m][rangeIndex(fullRange)]
}

// YUVToRGBMatrix returns the matrix converting normalized YUV to RGB:
// RGB = mat * (YUV + off).
func YUVToRGBMatrix(m MatrixCoefs, fullRange bool) Mat3 {
	if !m.valid() {
		return Mat3{}
	}
	return yuvToRGBMatrix[m][rangeIndex(fullRange)]
}

// YUVToRGBOffset returns the offset added before YUVToRGBMatrix.
func YUVToRGBOffset(m MatrixCoefs, fullRange bool) Vec3 {
	return RGBToYUVOffset(m, fullRange)
}
