package prop

import (
	"fmt"
	"strings"
)

// FloatConstraint is an interface to represent float value constraint.
type FloatConstraint interface {
	Compare(float32) (float64, bool)
	Value() (float32, bool)
}

// Float specifies ideal float value.
// Any value may be selected, but closest value takes priority.
type Float float32

// Compare implements FloatConstraint.
func (f Float) Compare(a float32) (float64, bool) { return idealDistance(float32(f), a), true }

// Value implements FloatConstraint.
func (f Float) Value() (float32, bool) { return float32(f), true }

// String implements Stringify
func (f Float) String() string {
	return fmt.Sprintf("%.2f (ideal)", f)
}

// FloatExact specifies exact float value.
type FloatExact float32

// Compare implements FloatConstraint.
func (f FloatExact) Compare(a float32) (float64, bool) { return exactDistance(float32(f), a) }

// Value implements FloatConstraint.
func (f FloatExact) Value() (float32, bool) { return float32(f), true }

// String implements Stringify
func (f FloatExact) String() string {
	return fmt.Sprintf("%.2f (exact)", f)
}

// FloatOneOf specifies list of expected float values.
type FloatOneOf []float32

// Compare implements FloatConstraint.
func (f FloatOneOf) Compare(a float32) (float64, bool) { return oneOfDistance(f, a) }

// Value implements FloatConstraint.
func (FloatOneOf) Value() (float32, bool) { return 0, false }

// String implements Stringify
func (f FloatOneOf) String() string {
	opts := make([]string, 0, len(f))
	for _, v := range f {
		opts = append(opts, fmt.Sprintf("%.2f", v))
	}
	return fmt.Sprintf("%s (one of values)", strings.Join(opts, ","))
}

// FloatRanged specifies range of expected float value.
// If Ideal is non-zero, closest value to Ideal takes priority.
type FloatRanged struct {
	Min   float32
	Max   float32
	Ideal float32
}

// Compare implements FloatConstraint.
func (f FloatRanged) Compare(a float32) (float64, bool) {
	return rangedDistance(f.Min, f.Max, f.Ideal, a)
}

// Value implements FloatConstraint.
func (f FloatRanged) Value() (float32, bool) { return f.Ideal, f.Ideal != 0 }

// String implements Stringify
func (f FloatRanged) String() string {
	return fmt.Sprintf("%.2f - %.2f (range), %.2f (ideal)", f.Min, f.Max, f.Ideal)
}
