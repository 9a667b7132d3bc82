package progress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/ratings"
)

func series(t *testing.T, scores ...float64) *ratings.Series {
	t.Helper()
	s, err := ratings.FromScores(scores...)
	require.NoError(t, err)
	return s
}

func table(t *testing.T, age model.AgeGroup, meetings int) algorithm.Coefficients {
	t.Helper()
	c, err := algorithm.Default().Lookup(age, meetings)
	require.NoError(t, err)
	return c
}

func shortTerm(t *testing.T, age model.AgeGroup) algorithm.Coefficients {
	t.Helper()
	c, err := algorithm.Default().LookupShortTerm(age)
	require.NoError(t, err)
	return c
}

var intakeScores = []float64{12.1, 3.2, 9.7, 6.7, 8.9, 9.1, 10.2}

func withTail(tail ...float64) []float64 {
	out := append([]float64{}, intakeScores...)
	return append(out, tail...)
}
