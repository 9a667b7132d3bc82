package progress

import (
	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
)

// PathResult is the expected score at every meeting of a course of
// treatment. Values[0] is the intake score.
type PathResult struct {
	AgeGroup       model.AgeGroup
	FirstScore     float64
	Meetings       int
	Version        string
	ClinicalCutoff float64
	Values         []float64
}

// Path computes the expected trajectory for a planned number of meetings.
// The path covers at least the table's maximum meetings; values after
// intake are rounded to one decimal.
func Path(firstScore float64, meetings int, c algorithm.Coefficients) (PathResult, error) {
	if meetings < 1 {
		return PathResult{}, model.Invalidf("meetings must be greater than 0, got %d", meetings)
	}
	if err := model.ValidateScore(firstScore); err != nil {
		return PathResult{}, err
	}
	length := meetings
	if c.MaxMeetings > length {
		length = c.MaxMeetings
	}
	t := NewTrajectory(firstScore, length, c)
	values := make([]float64, length)
	values[0] = firstScore
	for k := 1; k < length; k++ {
		values[k] = Round(t.step(k), 1)
	}
	return PathResult{
		AgeGroup:       c.AgeGroup,
		FirstScore:     firstScore,
		Meetings:       meetings,
		Version:        c.Version,
		ClinicalCutoff: c.ClinicalCutoff,
		Values:         values,
	}, nil
}
