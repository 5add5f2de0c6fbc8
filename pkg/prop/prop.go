// Package prop matches video capabilities against constraints using the
// fitness distance of https://w3c.github.io/mediacapture-main/#dfn-fitness-distance.
package prop

import (
	"errors"
	"math"
	"reflect"

	"github.com/pion/videodefs/pkg/frame"
)

// ErrNoMatch is returned by Select when no capability satisfies the constraints.
var ErrNoMatch = errors.New("failed to find a capability that fits the constraints")

// Video represents a video's properties
type Video struct {
	Width, Height int
	FrameRate     float32
	FrameFormat   frame.RawFormat
	FullRange     bool
}

// Merge merges all the field values from o to p, except zero values.
// Booleans are always merged. FrameFormat is merged as a whole.
func (p *Video) Merge(o Video) {
	rp := reflect.ValueOf(p).Elem()
	ro := reflect.ValueOf(o)

	for i := 0; i < rp.NumField(); i++ {
		fieldB := ro.Field(i)
		if fieldB.IsZero() && fieldB.Kind() != reflect.Bool {
			continue
		}
		rp.Field(i).Set(fieldB)
	}
}

// VideoConstraints holds one optional constraint per Video property.
// A nil constraint accepts any value.
type VideoConstraints struct {
	Width, Height IntConstraint
	FrameRate     FloatConstraint
	FrameFormat   FrameFormatConstraint
	FullRange     BoolConstraint
}

// Compare returns the fitness distance of v; ok is false when a
// required constraint is not satisfied.
func (c VideoConstraints) Compare(v Video) (dist float64, ok bool) {
	ok = true
	add := func(d float64, match bool) {
		dist += d
		ok = ok && match
	}
	if c.Width != nil {
		add(c.Width.Compare(v.Width))
	}
	if c.Height != nil {
		add(c.Height.Compare(v.Height))
	}
	if c.FrameRate != nil {
		add(c.FrameRate.Compare(v.FrameRate))
	}
	if c.FrameFormat != nil {
		add(c.FrameFormat.Compare(v.FrameFormat))
	}
	if c.FullRange != nil {
		add(c.FullRange.Compare(v.FullRange))
	}
	return dist, ok
}

// Value returns the properties the constraints name a concrete value for.
func (c VideoConstraints) Value() Video {
	var v Video
	if c.Width != nil {
		v.Width, _ = c.Width.Value()
	}
	if c.Height != nil {
		v.Height, _ = c.Height.Value()
	}
	if c.FrameRate != nil {
		v.FrameRate, _ = c.FrameRate.Value()
	}
	if c.FrameFormat != nil {
		if f, ok := c.FrameFormat.Value(); ok {
			v.FrameFormat = f
		}
	}
	if c.FullRange != nil {
		v.FullRange = c.FullRange.Value()
	}
	return v
}

// Select implements the SelectSettings algorithm over caps: the
// capability with the smallest fitness distance is merged onto the
// constraint values. Ties keep the earliest capability.
// Reference: https://w3c.github.io/mediacapture-main/#dfn-selectsettings
func Select(caps []Video, constraints VideoConstraints) (Video, error) {
	best := -1
	minFitnessDist := math.Inf(1)
	for i, p := range caps {
		fitnessDist, ok := constraints.Compare(p)
		if ok && fitnessDist < minFitnessDist {
			minFitnessDist = fitnessDist
			best = i
		}
	}
	if best < 0 {
		return Video{}, ErrNoMatch
	}

	v := constraints.Value()
	v.Merge(caps[best])
	return v, nil
}
