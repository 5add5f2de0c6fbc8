package frame

import "errors"

var (
	// ErrInvalidFormat is returned when a format cannot be laid out in memory.
	ErrInvalidFormat = errors.New("frame: invalid format")
	// ErrConstraintViolated is returned when a caller supplied stride or
	// scanline is smaller than the one the format requires.
	ErrConstraintViolated = errors.New("frame: constraint violated")
	// ErrOverflow is returned when a plane does not fit in 64 bits.
	ErrOverflow = errors.New("frame: size overflows uint64")
	// ErrInvalidResolution is returned for a resolution with a zero dimension.
	ErrInvalidResolution = errors.New("frame: invalid resolution")
	// ErrInvalidArgument is returned by parsers on malformed input.
	ErrInvalidArgument = errors.New("frame: invalid argument")
	// ErrCompressedFormat is returned when a raw layout is requested for a
	// compressed FourCC.
	ErrCompressedFormat = errors.New("frame: compressed format has no fixed size")
)
