package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
)

func TestPathShortTermIsPaddedToMaxMeetings(t *testing.T) {
	engine := NewEngine(algorithm.Default())
	path, err := engine.Path(model.Rater{AgeGroup: model.Adolescent}, 19.2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, path.Meetings)
	assert.Equal(t, []float64{19.2, 22.9, 25.4, 26.9, 27.8, 28.2, 28.3, 28.3}, path.Values)
	assert.Equal(t, model.Adolescent, path.AgeGroup)
	assert.NotEmpty(t, path.Version)
}

func TestPathLongTerm(t *testing.T) {
	engine := NewEngine(algorithm.Default())
	path, err := engine.Path(model.Rater{AgeGroup: model.Adolescent}, 19.2, 12)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		19.2, 21.5, 23.4, 24.9, 26.1, 27.0, 27.7, 28.1, 28.4, 28.6,
		28.6, 28.6, 28.6, 28.6, 28.6, 28.6, 28.6, 28.6,
	}, path.Values)

	path, err = engine.Path(model.Rater{AgeGroup: model.Child}, 10, 9)
	require.NoError(t, err)
	assert.Len(t, path.Values, 18)
	assert.Equal(t, 14.6, path.Values[1])
	assert.Equal(t, 25.7, path.Values[17])
}

func TestPathLongerThanTable(t *testing.T) {
	path, err := Path(20, 25, table(t, model.Adult, 25))
	require.NoError(t, err)
	assert.Len(t, path.Values, 25)
	assert.Equal(t, path.Values[11], path.Values[24])
}

func TestPathAdult(t *testing.T) {
	path, err := Path(15, 1, table(t, model.Adult, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{15, 18.8, 21.4, 23.1, 24.0, 24.4, 24.6, 24.6}, path.Values)
	assert.Equal(t, 25.0, path.ClinicalCutoff)
	assert.Equal(t, "2015 ST Adult", path.Version)
}

func TestPathRejectsInvalidInput(t *testing.T) {
	engine := NewEngine(algorithm.Default())
	_, err := engine.Path(model.Rater{AgeGroup: model.Adult}, 19.2, 0)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = engine.Path(model.Rater{AgeGroup: model.Adult}, 41, 4)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = engine.Path(model.Rater{AgeGroup: model.AgeGroup(5)}, 19.2, 4)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
