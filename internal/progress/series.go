package progress

import "github.com/verte-zerg/orsprogress/internal/model"

// Series is the read surface of a rating series.
type Series interface {
	Count() int
	First() (model.Rating, bool)
	Last() (model.Rating, bool)
	Item(i int) (model.Rating, error)
	Scores() []float64
}

// MaxTargetIntake is the highest first score for which a target applies.
const MaxTargetIntake = 32.0

// firstLast returns validated first and last scores. ok is false when the
// series has fewer than two ratings.
func firstLast(s Series) (first, last float64, ok bool, err error) {
	if s.Count() < 2 {
		return 0, 0, false, nil
	}
	f, _ := s.First()
	l, _ := s.Last()
	if err := model.ValidateScore(f.Score); err != nil {
		return 0, 0, false, err
	}
	if err := model.ValidateScore(l.Score); err != nil {
		return 0, 0, false, err
	}
	return f.Score, l.Score, true, nil
}
