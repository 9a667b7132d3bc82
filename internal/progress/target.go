package progress

import (
	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
)

// Standard percent-met levels.
const (
	PercentLevel50 = 50.0
	PercentLevel67 = 66.66
)

// Target compares observed change with the change a trajectory expects.
// A Target built from fewer than two ratings, or from a first score above
// MaxTargetIntake, is not applicable and reports zero values.
type Target struct {
	applicable bool
	first      float64
	last       float64
	value      float64
}

// TargetResult is the rounded view of a Target.
type TargetResult struct {
	ExpectedChange float64
	Met            bool
	MetPercent     float64
	MetPercent50   bool
	MetPercent67   bool
	Value          float64
}

// MeetingTarget evaluates the trajectory at the latest meeting. c should be
// the table selected for the series' meeting count.
func MeetingTarget(s Series, c algorithm.Coefficients) (Target, error) {
	return newTarget(s, func(first float64) float64 {
		return NewTrajectory(first, s.Count(), c).ValueAt(s.Count())
	})
}

// FixedTarget evaluates the short-term trajectory at its plateau. c should
// be the short-term table.
func FixedTarget(s Series, c algorithm.Coefficients) (Target, error) {
	return newTarget(s, func(first float64) float64 {
		return NewTrajectory(first, s.Count(), c).Ceiling()
	})
}

// newTarget returns a not-applicable target for an intake above
// MaxTargetIntake before any score is validated.
func newTarget(s Series, value func(first float64) float64) (Target, error) {
	if f, ok := s.First(); ok && s.Count() >= 2 && f.Score > MaxTargetIntake {
		return Target{}, nil
	}
	first, last, ok, err := firstLast(s)
	if err != nil {
		return Target{}, err
	}
	if !ok {
		return Target{}, nil
	}
	return Target{
		applicable: true,
		first:      first,
		last:       last,
		value:      value(first),
	}, nil
}

// Applicable reports whether the target has a meaningful value.
func (t Target) Applicable() bool {
	return t.applicable
}

// Value is the expected score.
func (t Target) Value() float64 {
	return t.value
}

// ExpectedChange is the expected score minus the first score.
func (t Target) ExpectedChange() float64 {
	if !t.applicable {
		return 0
	}
	return t.value - t.first
}

// Met reports whether the last score reached the expected score.
func (t Target) Met() bool {
	return t.applicable && t.last >= t.value
}

// MetPercent is the observed change as a share of the expected change,
// clamped to [0, 100].
func (t Target) MetPercent() float64 {
	expected := t.ExpectedChange()
	if expected <= 0 {
		return 0
	}
	pct := (t.last - t.first) / expected * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// MetPercentAt reports whether at least p percent of the expected change
// was achieved.
func (t Target) MetPercentAt(p float64) (bool, error) {
	if !(p >= 0 && p <= 100) {
		return false, model.Invalidf("percent %g must be between 0 and 100", p)
	}
	expected := t.ExpectedChange()
	if expected <= 0 {
		return false, nil
	}
	return (t.last-t.first)/expected >= p/100, nil
}

// Result returns the target rounded to two decimals.
func (t Target) Result() TargetResult {
	met50, _ := t.MetPercentAt(PercentLevel50)
	met67, _ := t.MetPercentAt(PercentLevel67)
	return TargetResult{
		ExpectedChange: Round(t.ExpectedChange(), 2),
		Met:            t.Met(),
		MetPercent:     Round(t.MetPercent(), 2),
		MetPercent50:   met50,
		MetPercent67:   met67,
		Value:          Round(t.value, 2),
	}
}
