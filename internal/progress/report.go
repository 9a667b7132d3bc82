package progress

import (
	"fmt"

	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
)

// Report is the full set of progress indicators for one rater.
type Report struct {
	Rater              model.Rater
	Ratings            []model.Rating
	RatingsCount       int
	FirstRating        model.Rating
	LastRating         model.Rating
	RatingChange       float64
	EffectSize         float64
	Algorithm          algorithm.Coefficients
	AlgorithmShortTerm algorithm.Coefficients
	EtrMeetingTarget   TargetResult
	EtrTarget          TargetResult
	Milestones         MilestonesResult
	ValidityIndicators ValidityResult
	Exclusions         ExclusionsResult
}

// Engine computes reports against a coefficient provider.
type Engine struct {
	provider algorithm.Provider
}

// NewEngine returns an Engine backed by provider.
func NewEngine(provider algorithm.Provider) *Engine {
	return &Engine{provider: provider}
}

// Compute builds a report with the built-in coefficient tables.
func Compute(rater model.Rater, s Series) (Report, error) {
	return NewEngine(algorithm.Default()).Compute(rater, s)
}

// Compute builds the report for rater. The series must hold at least one
// rating and every score must be within bounds.
func (e *Engine) Compute(rater model.Rater, s Series) (Report, error) {
	first, ok := s.First()
	if !ok {
		return Report{}, model.Invalidf("at least one rating is required")
	}
	last, _ := s.Last()
	if err := model.ValidateScore(first.Score); err != nil {
		return Report{}, fmt.Errorf("first rating: %w", err)
	}
	if err := model.ValidateScore(last.Score); err != nil {
		return Report{}, fmt.Errorf("last rating: %w", err)
	}

	count := s.Count()
	actual, err := e.provider.Lookup(rater.AgeGroup, count)
	if err != nil {
		return Report{}, err
	}
	shortTerm, err := e.provider.LookupShortTerm(rater.AgeGroup)
	if err != nil {
		return Report{}, err
	}

	change := Round(last.Score-first.Score, 1)

	meetingTarget, err := MeetingTarget(s, actual)
	if err != nil {
		return Report{}, err
	}
	fixedTarget, err := FixedTarget(s, shortTerm)
	if err != nil {
		return Report{}, err
	}
	validity, err := EvaluateValidity(s, actual)
	if err != nil {
		return Report{}, err
	}
	milestones, err := EvaluateMilestones(s, actual)
	if err != nil {
		return Report{}, err
	}

	items := make([]model.Rating, count)
	for i := range items {
		if items[i], err = s.Item(i); err != nil {
			return Report{}, err
		}
	}

	return Report{
		Rater:              rater,
		Ratings:            items,
		RatingsCount:       count,
		FirstRating:        first,
		LastRating:         last,
		RatingChange:       change,
		EffectSize:         Round(change/actual.StandardDeviation, 2),
		Algorithm:          actual,
		AlgorithmShortTerm: shortTerm,
		EtrMeetingTarget:   meetingTarget.Result(),
		EtrTarget:          fixedTarget.Result(),
		Milestones:         milestones,
		ValidityIndicators: validity,
		Exclusions:         Exclude(rater.ExcludeFromStats, validity.FirstRatingAbove32, validity.ZeroOrOneMeetings),
	}, nil
}

// Path computes the expected trajectory for rater over a planned number of
// meetings.
func (e *Engine) Path(rater model.Rater, firstScore float64, meetings int) (PathResult, error) {
	if meetings < 1 {
		return PathResult{}, model.Invalidf("meetings must be greater than 0, got %d", meetings)
	}
	c, err := e.provider.Lookup(rater.AgeGroup, meetings)
	if err != nil {
		return PathResult{}, err
	}
	return Path(firstScore, meetings, c)
}
