package progress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
)

func TestComputeFullSeries(t *testing.T) {
	rater := model.Rater{AgeGroup: model.Adolescent}
	report, err := Compute(rater, series(t, withTail(20.1, 26.0)...))
	require.NoError(t, err)

	assert.Equal(t, 9, report.RatingsCount)
	assert.Len(t, report.Ratings, 9)
	assert.Equal(t, 12.1, report.FirstRating.Score)
	assert.Equal(t, 26.0, report.LastRating.Score)
	assert.Equal(t, 13.9, report.RatingChange)
	assert.Equal(t, 1.91, report.EffectSize)

	assert.Equal(t, algorithm.LongTerm, report.Algorithm.Term)
	assert.Equal(t, algorithm.ShortTerm, report.AlgorithmShortTerm.Term)

	assert.True(t, report.EtrMeetingTarget.Met)
	assert.Equal(t, 100.0, report.EtrMeetingTarget.MetPercent)
	assert.Equal(t, 12.87, report.EtrTarget.ExpectedChange)
	assert.True(t, report.EtrTarget.Met)

	assert.Equal(t, MilestonesResult{RCMet: true, RCOrCSCMet: true}, report.Milestones)
	assert.Equal(t, 2, report.ValidityIndicators.SawtoothPattern.DirectionChanges)
	assert.False(t, report.ValidityIndicators.SawtoothPattern.Has)
	assert.True(t, report.Exclusions.Included)
}

func TestComputeSingleRating(t *testing.T) {
	report, err := Compute(model.Rater{AgeGroup: model.Adult}, series(t, 20.1))
	require.NoError(t, err)
	assert.Equal(t, 1, report.RatingsCount)
	assert.Equal(t, 0.0, report.RatingChange)
	assert.Equal(t, 0.0, report.EffectSize)
	assert.Equal(t, TargetResult{}, report.EtrMeetingTarget)
	assert.Equal(t, TargetResult{}, report.EtrTarget)
	assert.Equal(t, MilestonesResult{}, report.Milestones)
	assert.True(t, report.ValidityIndicators.ZeroOrOneMeetings)
	assert.True(t, report.Exclusions.Excluded)
	assert.False(t, report.Exclusions.Included)
	assert.Equal(t, algorithm.ShortTerm, report.Algorithm.Term)
}

func TestComputeHighIntakeIsExcluded(t *testing.T) {
	report, err := Compute(model.Rater{AgeGroup: model.Child}, series(t, 33, 36))
	require.NoError(t, err)
	assert.True(t, report.ValidityIndicators.FirstRatingAbove32)
	assert.True(t, report.ValidityIndicators.ClinicalCutoff.IsAbove)
	assert.Equal(t, TargetResult{}, report.EtrTarget)
	assert.True(t, report.Exclusions.FirstRatingAbove32)
	assert.True(t, report.Exclusions.Excluded)
}

func TestComputeUserExcluded(t *testing.T) {
	report, err := Compute(model.Rater{AgeGroup: model.Adult, ExcludeFromStats: true}, series(t, 15, 22))
	require.NoError(t, err)
	assert.True(t, report.Exclusions.UserExcluded)
	assert.True(t, report.Exclusions.Excluded)
	assert.Equal(t, 7.0, report.RatingChange)
	assert.Equal(t, 1.06, report.EffectSize)
}

func TestComputeRejectsEmptySeries(t *testing.T) {
	_, err := Compute(model.Rater{AgeGroup: model.Adult}, series(t))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestComputeRejectsUnknownAgeGroup(t *testing.T) {
	_, err := Compute(model.Rater{AgeGroup: model.AgeGroup(0)}, series(t, 10, 20))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

type badSeries struct {
	scores []float64
}

func (b badSeries) Count() int { return len(b.scores) }

func (b badSeries) First() (model.Rating, bool) {
	if len(b.scores) == 0 {
		return model.Rating{}, false
	}
	return model.Rating{Score: b.scores[0]}, true
}

func (b badSeries) Last() (model.Rating, bool) {
	if len(b.scores) == 0 {
		return model.Rating{}, false
	}
	return model.Rating{Score: b.scores[len(b.scores)-1]}, true
}

func (b badSeries) Item(i int) (model.Rating, error) {
	if i < 0 || i >= len(b.scores) {
		return model.Rating{}, model.Invalidf("index %d", i)
	}
	return model.Rating{Score: b.scores[i]}, nil
}

func (b badSeries) Scores() []float64 { return b.scores }

func TestComputeRevalidatesScores(t *testing.T) {
	rater := model.Rater{AgeGroup: model.Adult}
	_, err := Compute(rater, badSeries{scores: []float64{-1, 20}})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = Compute(rater, badSeries{scores: []float64{10, 45}})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = MeetingTarget(badSeries{scores: []float64{10, 45}}, table(t, model.Adult, 2))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = EvaluateMilestones(badSeries{scores: []float64{50, 20}}, table(t, model.Adult, 2))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = EvaluateCutoff(badSeries{scores: []float64{50}}, table(t, model.Adult, 1))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

type recordingProvider struct {
	mu      sync.Mutex
	lookups []int
	short   int
}

func (p *recordingProvider) Lookup(age model.AgeGroup, meetingCount int) (algorithm.Coefficients, error) {
	p.mu.Lock()
	p.lookups = append(p.lookups, meetingCount)
	p.mu.Unlock()
	return algorithm.Default().Lookup(age, meetingCount)
}

func (p *recordingProvider) LookupShortTerm(age model.AgeGroup) (algorithm.Coefficients, error) {
	p.mu.Lock()
	p.short++
	p.mu.Unlock()
	return algorithm.Default().LookupShortTerm(age)
}

func TestEngineLooksUpActualAndShortTermTables(t *testing.T) {
	p := &recordingProvider{}
	engine := NewEngine(p)
	_, err := engine.Compute(model.Rater{AgeGroup: model.Adult}, series(t, 10, 12, 14))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, p.lookups)
	assert.Equal(t, 1, p.short)
}

func TestEngineIsSafeForConcurrentUse(t *testing.T) {
	engine := NewEngine(algorithm.Default())
	s := series(t, withTail(20.1, 21.0)...)
	s.Lock()
	want, err := engine.Compute(model.Rater{AgeGroup: model.Adolescent}, s)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Report, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.Compute(model.Rater{AgeGroup: model.Adolescent}, s)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
