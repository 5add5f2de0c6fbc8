package prop

import (
	"fmt"
	"strings"
)

// IntConstraint is an interface to represent integer value constraint.
type IntConstraint interface {
	Compare(int) (float64, bool)
	Value() (int, bool)
}

// Int specifies ideal int value.
// Any value may be selected, but closest value takes priority.
type Int int

// Compare implements IntConstraint.
func (i Int) Compare(a int) (float64, bool) { return idealDistance(int(i), a), true }

// Value implements IntConstraint.
func (i Int) Value() (int, bool) { return int(i), true }

// String implements Stringify
func (i Int) String() string {
	return fmt.Sprintf("%d (ideal)", int(i))
}

// IntExact specifies exact int value.
type IntExact int

// Compare implements IntConstraint.
func (i IntExact) Compare(a int) (float64, bool) { return exactDistance(int(i), a) }

// Value implements IntConstraint.
func (i IntExact) Value() (int, bool) { return int(i), true }

// String implements Stringify
func (i IntExact) String() string {
	return fmt.Sprintf("%d (exact)", int(i))
}

// IntOneOf specifies list of expected int values.
type IntOneOf []int

// Compare implements IntConstraint.
func (i IntOneOf) Compare(a int) (float64, bool) { return oneOfDistance(i, a) }

// Value implements IntConstraint.
func (IntOneOf) Value() (int, bool) { return 0, false }

// String implements Stringify
func (i IntOneOf) String() string {
	opts := make([]string, 0, len(i))
	for _, v := range i {
		opts = append(opts, fmt.Sprint(v))
	}
	return fmt.Sprintf("%s (one of values)", strings.Join(opts, ","))
}

// IntRanged specifies range of expected int value.
// If Ideal is non-zero, closest value to Ideal takes priority.
type IntRanged struct {
	Min   int
	Max   int
	Ideal int
}

// Compare implements IntConstraint.
func (i IntRanged) Compare(a int) (float64, bool) {
	return rangedDistance(i.Min, i.Max, i.Ideal, a)
}

// Value implements IntConstraint.
func (i IntRanged) Value() (int, bool) { return i.Ideal, i.Ideal != 0 }

// String implements Stringify
func (i IntRanged) String() string {
	return fmt.Sprintf("%d - %d (range), %d (ideal)", i.Min, i.Max, i.Ideal)
}
