package progress

import (
	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
)

// CutoffResult compares the intake score with the clinical cutoff.
// FirstRatingScore is nil for an empty series.
type CutoffResult struct {
	Value            float64
	FirstRatingScore *float64
	IsAbove          bool
}

// EvaluateCutoff reports whether the first score is above the cutoff.
func EvaluateCutoff(s Series, c algorithm.Coefficients) (CutoffResult, error) {
	res := CutoffResult{Value: c.ClinicalCutoff}
	first, ok := s.First()
	if !ok {
		return res, nil
	}
	if err := model.ValidateScore(first.Score); err != nil {
		return CutoffResult{}, err
	}
	score := first.Score
	res.FirstRatingScore = &score
	res.IsAbove = score > c.ClinicalCutoff
	return res, nil
}
