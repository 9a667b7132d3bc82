// Package ratings holds the ordered rating series for one rater.
package ratings

import (
	"github.com/verte-zerg/orsprogress/internal/model"
)

// Series is an ordered list of ratings, oldest first. The zero value is an
// empty, writable series.
type Series struct {
	items    []model.Rating
	readOnly bool
}

// FromRatings builds a series from existing ratings after validating each score.
func FromRatings(items []model.Rating) (*Series, error) {
	s := &Series{}
	for _, r := range items {
		if err := s.AddRating(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FromScores builds a series from bare scores.
func FromScores(scores ...float64) (*Series, error) {
	s := &Series{}
	if err := s.AddScores(scores...); err != nil {
		return nil, err
	}
	return s, nil
}

// Add appends a rating built from its parts.
func (s *Series) Add(id *int64, dateCompleted *string, score float64) error {
	r, err := model.NewRating(id, dateCompleted, score)
	if err != nil {
		return err
	}
	return s.AddRating(r)
}

// AddRating appends an existing rating.
func (s *Series) AddRating(r model.Rating) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if err := model.ValidateScore(r.Score); err != nil {
		return err
	}
	s.items = append(s.items, r)
	return nil
}

// AddScores appends ratings without ids or dates. Either every score is
// added or none is.
func (s *Series) AddScores(scores ...float64) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	for _, score := range scores {
		if err := model.ValidateScore(score); err != nil {
			return err
		}
	}
	for _, score := range scores {
		s.items = append(s.items, model.Rating{Score: score})
	}
	return nil
}

// Clear removes every rating.
func (s *Series) Clear() error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	s.items = nil
	return nil
}

// RemoveAt deletes the rating at index i and keeps the remaining order.
func (s *Series) RemoveAt(i int) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(s.items) {
		return model.Invalidf("rating index %d out of range [0, %d)", i, len(s.items))
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Lock makes the series read-only. It cannot be unlocked.
func (s *Series) Lock() {
	s.readOnly = true
}

// ReadOnly reports whether the series has been locked.
func (s *Series) ReadOnly() bool {
	return s.readOnly
}

// Count returns the number of ratings.
func (s *Series) Count() int {
	return len(s.items)
}

// First returns the oldest rating.
func (s *Series) First() (model.Rating, bool) {
	if len(s.items) == 0 {
		return model.Rating{}, false
	}
	return s.items[0], true
}

// Last returns the most recent rating.
func (s *Series) Last() (model.Rating, bool) {
	if len(s.items) == 0 {
		return model.Rating{}, false
	}
	return s.items[len(s.items)-1], true
}

// Item returns the rating at index i.
func (s *Series) Item(i int) (model.Rating, error) {
	if i < 0 || i >= len(s.items) {
		return model.Rating{}, model.Invalidf("rating index %d out of range [0, %d)", i, len(s.items))
	}
	return s.items[i], nil
}

// Items returns a copy of the ratings in order.
func (s *Series) Items() []model.Rating {
	out := make([]model.Rating, len(s.items))
	copy(out, s.items)
	return out
}

// Scores returns the scores in order.
func (s *Series) Scores() []float64 {
	out := make([]float64, len(s.items))
	for i, r := range s.items {
		out[i] = r.Score
	}
	return out
}

func (s *Series) checkWritable() error {
	if s.readOnly {
		return model.Invalidf("rating series is read-only")
	}
	return nil
}
