package prop

import "math"

type number interface {
	~int | ~float32
}

func idealDistance[T number](ideal, a T) float64 {
	if a == ideal {
		return 0.0
	}
	return math.Abs(float64(a)-float64(ideal)) / math.Max(math.Abs(float64(a)), math.Abs(float64(ideal)))
}

func exactDistance[T comparable](want, a T) (float64, bool) {
	if want == a {
		return 0.0, true
	}
	return 1.0, false
}

func oneOfDistance[T comparable](opts []T, a T) (float64, bool) {
	for _, o := range opts {
		if o == a {
			return 0.0, true
		}
	}
	return 1.0, false
}

// rangedDistance treats a zero bound or ideal as unset.
func rangedDistance[T number](lo, hi, ideal, a T) (float64, bool) {
	if lo != 0 && lo > a {
		return 1.0, false
	}
	if hi != 0 && hi < a {
		return 1.0, false
	}
	if ideal == 0 {
		// Every value in range is evenly acceptable.
		return 0.0, true
	}
	switch {
	case a == ideal:
		return 0.0, true
	case a < ideal:
		if lo == 0 {
			return 0.0, true
		}
		return float64(ideal-a) / float64(ideal-lo), true
	default:
		if hi == 0 {
			return 0.0, true
		}
		return float64(a-ideal) / float64(hi-ideal), true
	}
}
