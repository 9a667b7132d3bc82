package progress

import "github.com/verte-zerg/orsprogress/internal/algorithm"

// ValidityResult groups the flags that question whether a series is usable.
type ValidityResult struct {
	ClinicalCutoff     CutoffResult
	SawtoothPattern    SawtoothResult
	FirstRatingAbove32 bool
	ZeroOrOneMeetings  bool
}

// EvaluateValidity composes the cutoff, sawtooth and count checks.
func EvaluateValidity(s Series, c algorithm.Coefficients) (ValidityResult, error) {
	cutoff, err := EvaluateCutoff(s, c)
	if err != nil {
		return ValidityResult{}, err
	}
	above := false
	if first, ok := s.First(); ok {
		above = first.Score > MaxTargetIntake
	}
	return ValidityResult{
		ClinicalCutoff:     cutoff,
		SawtoothPattern:    DetectSawtooth(s.Scores()),
		FirstRatingAbove32: above,
		ZeroOrOneMeetings:  s.Count() < 2,
	}, nil
}
