package frame

import (
	"fmt"
	"math/bits"
)

// PlaneGeometry is the memory layout of the planes of a raw frame. Entries
// past the plane count of the format are zero.
type PlaneGeometry struct {
	Stride   [MaxPlaneCount]uint64
	Scanline [MaxPlaneCount]uint64
	Size     [MaxPlaneCount]uint64
}

// ContiguousSize returns the size of a buffer holding all the planes back
// to back. It saturates at the maximum uint64.
func (g PlaneGeometry) ContiguousSize() uint64 {
	size, _ := g.contiguousSize()
	return size
}

func (g PlaneGeometry) contiguousSize() (uint64, error) {
	var size, carry uint64
	for _, s := range g.Size {
		size, carry = bits.Add64(size, s, 0)
		if carry != 0 {
			return ^uint64(0), fmt.Errorf("%w: contiguous size", ErrOverflow)
		}
	}
	return size, nil
}

// PlaneOptions are the per-plane constraints of a frame size computation.
// A zero entry means no constraint.
type PlaneOptions struct {
	// Stride and Scanline are minimum values; they may only enlarge the
	// natural layout of a plane.
	Stride   [MaxPlaneCount]uint64
	Scanline [MaxPlaneCount]uint64

	StrideAlign   [MaxPlaneCount]uint32
	ScanlineAlign [MaxPlaneCount]uint32
	SizeAlign     [MaxPlaneCount]uint32
}

// CalcRawFrameSize computes the stride, scanline count and size of every
// plane of a frame of format f and resolution res. opts may be nil.
func CalcRawFrameSize(f RawFormat, res Dim, opts *PlaneOptions) (PlaneGeometry, error) {
	var g PlaneGeometry

	if res.Width == 0 || res.Height == 0 {
		return g, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, res.Width, res.Height)
	}
	if !f.IsValid() {
		return g, fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
	planeCount := f.PlaneCount()
	if planeCount == 0 {
		return g, fmt.Errorf("%w: %s has no plane", ErrInvalidFormat, f)
	}
	if opts == nil {
		opts = &PlaneOptions{}
	}

	r := f.ratio(planeCount)
	for i := 0; i < planeCount; i++ {
		stride, err := naturalStride(f, res.Width, r.strideMul[i], r.strideDiv[i])
		if err != nil {
			return PlaneGeometry{}, fmt.Errorf("plane %d stride: %w", i, err)
		}
		stride, err = fit(stride, opts.Stride[i], opts.StrideAlign[i])
		if err != nil {
			return PlaneGeometry{}, fmt.Errorf("plane %d stride: %w", i, err)
		}

		scanline := uint64(res.Height) * r.heightMul[i] / r.heightDiv[i]
		scanline, err = fit(scanline, opts.Scanline[i], opts.ScanlineAlign[i])
		if err != nil {
			return PlaneGeometry{}, fmt.Errorf("plane %d scanline: %w", i, err)
		}

		size, err := mul(stride, scanline)
		if err != nil {
			return PlaneGeometry{}, fmt.Errorf("plane %d size: %w", i, err)
		}
		if a := opts.SizeAlign[i]; a != 0 {
			if size, err = alignChecked(size, uint64(a)); err != nil {
				return PlaneGeometry{}, fmt.Errorf("plane %d size: %w", i, err)
			}
		}

		g.Stride[i] = stride
		g.Scanline[i] = scanline
		g.Size[i] = size
	}

	return g, nil
}

// CalcRawContiguousFrameSize returns the size of a buffer holding all the
// planes of a frame back to back.
func CalcRawContiguousFrameSize(f RawFormat, res Dim, opts *PlaneOptions) (uint64, error) {
	g, err := CalcRawFrameSize(f, res, opts)
	if err != nil {
		return 0, err
	}
	size, err := g.contiguousSize()
	if err != nil {
		return 0, err
	}
	return size, nil
}

// naturalStride is width*dataSize/8 scaled by mul/div.
func naturalStride(f RawFormat, width uint32, m, div uint64) (uint64, error) {
	bitsWide, err := mul(uint64(width), uint64(f.DataSize))
	if err != nil {
		return 0, err
	}
	stride, err := mul(bitsWide/8, m)
	if err != nil {
		return 0, err
	}
	return stride / div, nil
}

// fit applies a caller minimum then an alignment to a natural value.
func fit(natural, minimum uint64, alignment uint32) (uint64, error) {
	v := natural
	if minimum != 0 {
		if minimum < natural {
			return 0, fmt.Errorf("%w: %d is smaller than %d", ErrConstraintViolated, minimum, natural)
		}
		v = minimum
	}
	if alignment != 0 {
		return alignChecked(v, uint64(alignment))
	}
	return v, nil
}

func mul(x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, x, y)
	}
	return lo, nil
}

// alignChecked rounds x up to a multiple of a, which must be nonzero.
func alignChecked(x, a uint64) (uint64, error) {
	sum, carry := bits.Add64(x, a-1, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d aligned to %d", ErrOverflow, x, a)
	}
	if a&(a-1) == 0 {
		return sum &^ (a - 1), nil
	}
	return sum / a * a, nil
}

// align rounds x up to a multiple of a. x and a are 32-bit values.
func align(x, a uint64) uint64 {
	v, _ := alignChecked(x, a)
	return v
}

// FrameSize returns the number of bytes a tightly packed frame of the given
// format and resolution occupies.
func FrameSize(f Format, width, height int) (uint64, error) {
	raw, err := f.RawFormat()
	if err != nil {
		return 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, width, height)
	}
	return CalcRawContiguousFrameSize(raw, Dim{Width: uint32(width), Height: uint32(height)}, nil)
}
