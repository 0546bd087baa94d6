// Package compare measures how faithfully a rendered target reproduces the
// colors of a source design. Every source color is matched against its
// perceptually closest target color and classified by CIEDE2000 distance.
package compare

import (
	"math"

	"github.com/KeleWarg/design-theme-library-sub003/colorspace"
	"github.com/KeleWarg/design-theme-library-sub003/deltae"
)

// Status classifies how close a source color is to its best target match.
type Status string

const (
	// StatusMatch is not perceptible to a human observer under normal viewing.
	StatusMatch Status = "match"
	// StatusSimilar is perceptible only under close side-by-side comparison.
	StatusSimilar Status = "similar"
	// StatusDifferent is a visible difference within the matchable range.
	StatusDifferent Status = "different"
	// StatusMissing means no target color is an acceptable counterpart.
	StatusMissing Status = "missing"
)

// LocatedColor is a color sample tied back to where it was taken from.
// Region is opaque payload supplied by the extractor; the comparator carries
// it through untouched and never inspects it.
type LocatedColor struct {
	ID     string
	RGB    colorspace.RGB
	Region interface{}
}

// ColorDelta is the comparison result for a single source color.
// Target is nil when Status is StatusMissing. DeltaE is +Inf when the
// target set was empty.
type ColorDelta struct {
	Source LocatedColor
	Target *LocatedColor
	DeltaE float64
	Status Status
}

// Thresholds are the ΔE boundaries separating the classification statuses.
// A best match at or below Match is a match, at or below Similar is similar,
// at or below Missing is different, and anything beyond Missing is treated
// as having no counterpart at all.
type Thresholds struct {
	Match   float64
	Similar float64
	Missing float64
}

// DefaultThresholds are the standard classification boundaries. The Missing
// cutoff of 30 is policy, not color science; override it where a looser or
// stricter notion of "present in the render" is wanted.
var DefaultThresholds = Thresholds{Match: 1, Similar: 5, Missing: 30}

// Colors compares every source color against the target set with the
// default thresholds and unity CIEDE2000 weights.
func Colors(source, target []LocatedColor) []ColorDelta {
	return ColorsWithin(source, target, DefaultThresholds, nil)
}

// ColorsWithin is Colors with explicit thresholds and CIEDE2000 weights.
//
// Each source color is matched independently: the scan is O(n·m) and the
// same target may be the best match for several sources. Output order
// follows source order, one record per source color. On an exact ΔE tie the
// earliest target wins.
func ColorsWithin(source, target []LocatedColor, th Thresholds, klch *deltae.KLCh) []ColorDelta {
	deltas := make([]ColorDelta, 0, len(source))

	targetLabs := make([]colorspace.Lab, len(target))
	for i, t := range target {
		targetLabs[i] = t.RGB.ToLab()
	}

	for _, src := range source {
		srcLab := src.RGB.ToLab()

		best := -1
		bestDelta := math.Inf(1)
		for i := range target {
			d := deltae.CIE2000(srcLab, targetLabs[i], klch)
			if d < bestDelta {
				best = i
				bestDelta = d
			}
		}

		delta := ColorDelta{Source: src, DeltaE: bestDelta}
		if best < 0 || bestDelta > th.Missing {
			delta.Status = StatusMissing
		} else {
			matched := target[best]
			delta.Target = &matched
			delta.Status = classify(bestDelta, th)
		}
		deltas = append(deltas, delta)
	}

	return deltas
}

// classify maps a ΔE value inside the matchable range to a status.
func classify(d float64, th Thresholds) Status {
	switch {
	case d <= th.Match:
		return StatusMatch
	case d <= th.Similar:
		return StatusSimilar
	default:
		return StatusDifferent
	}
}

// Summary counts delta records by status.
type Summary struct {
	Match     int
	Similar   int
	Different int
	Missing   int
}

// Summarize tallies a comparison result.
func Summarize(deltas []ColorDelta) Summary {
	var s Summary
	for _, d := range deltas {
		switch d.Status {
		case StatusMatch:
			s.Match++
		case StatusSimilar:
			s.Similar++
		case StatusDifferent:
			s.Different++
		case StatusMissing:
			s.Missing++
		}
	}
	return s
}

// Pass reports whether every source color was at least similar to something
// in the target.
func (s Summary) Pass() bool {
	return s.Different == 0 && s.Missing == 0
}
