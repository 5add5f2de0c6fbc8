package prop

import (
	"fmt"
	"strings"

	"github.com/pion/videodefs/pkg/frame"
)

// FrameFormatConstraint is an interface to represent frame format constraint.
// Invalid raw formats never satisfy any FrameFormatConstraint.
type FrameFormatConstraint interface {
	Compare(frame.RawFormat) (float64, bool)
	Value() (frame.RawFormat, bool)
}

// FrameFormat specifies expected frame format.
// Any valid value may be selected, but matched value takes priority.
type FrameFormat frame.RawFormat

// Compare implements FrameFormatConstraint.
func (f FrameFormat) Compare(a frame.RawFormat) (float64, bool) {
	if !a.IsValid() {
		return 1.0, false
	}
	if frame.RawFormat(f) == a {
		return 0.0, true
	}
	return 1.0, true
}

// Value implements FrameFormatConstraint.
func (f FrameFormat) Value() (frame.RawFormat, bool) { return frame.RawFormat(f), true }

// String implements Stringify
func (f FrameFormat) String() string {
	return fmt.Sprintf("%s (ideal)", frame.RawFormat(f))
}

// FrameFormatExact specifies exact frame format.
type FrameFormatExact frame.RawFormat

// Compare implements FrameFormatConstraint.
func (f FrameFormatExact) Compare(a frame.RawFormat) (float64, bool) {
	if a.Intersect([]frame.RawFormat{frame.RawFormat(f)}) {
		return 0.0, true
	}
	return 1.0, false
}

// Value implements FrameFormatConstraint.
func (f FrameFormatExact) Value() (frame.RawFormat, bool) { return frame.RawFormat(f), true }

// String implements Stringify
func (f FrameFormatExact) String() string {
	return fmt.Sprintf("%s (exact)", frame.RawFormat(f))
}

// FrameFormatOneOf specifies list of expected frame format.
type FrameFormatOneOf []frame.RawFormat

// Compare implements FrameFormatConstraint.
func (f FrameFormatOneOf) Compare(a frame.RawFormat) (float64, bool) {
	if a.Intersect(f) {
		return 0.0, true
	}
	return 1.0, false
}

// Value implements FrameFormatConstraint.
func (FrameFormatOneOf) Value() (frame.RawFormat, bool) { return frame.RawFormat{}, false }

// String implements Stringify
func (f FrameFormatOneOf) String() string {
	opts := make([]string, 0, len(f))
	for _, v := range f {
		opts = append(opts, v.String())
	}
	return fmt.Sprintf("%s (one of values)", strings.Join(opts, ","))
}
