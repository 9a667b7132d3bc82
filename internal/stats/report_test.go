package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/progress"
	"github.com/verte-zerg/orsprogress/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "ors.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func addRater(t *testing.T, st *store.Store, label string, rater model.Rater, scores ...float64) string {
	t.Helper()
	ctx := context.Background()
	id, err := st.CreateRater(ctx, label, rater)
	require.NoError(t, err)
	for _, score := range scores {
		_, err := st.AddRating(ctx, id, nil, score)
		require.NoError(t, err)
	}
	return id
}

func TestBuildCohort(t *testing.T) {
	st := openStore(t)
	addRater(t, st, "alpha", model.Rater{AgeGroup: model.Adult}, 15, 22)
	addRater(t, st, "beta", model.Rater{AgeGroup: model.Adult}, 20)
	emptyID := addRater(t, st, "gamma", model.Rater{AgeGroup: model.Child})

	cohort, err := BuildCohort(context.Background(), st, progress.NewEngine(algorithm.Default()))
	require.NoError(t, err)

	require.Len(t, cohort.Entries, 2)
	labels := []string{cohort.Entries[0].Record.Label, cohort.Entries[1].Record.Label}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, labels)
	require.Len(t, cohort.Skipped, 1)
	assert.Equal(t, emptyID, cohort.Skipped[0].RaterID)
	assert.Equal(t, "gamma", cohort.Skipped[0].Label)
	assert.Equal(t, 2, cohort.Summary.Raters)
	assert.Equal(t, 1, cohort.Summary.Included)
	assert.InDelta(t, 7.0, cohort.Summary.MeanRatingChange, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, RenderCohort(&buf, cohort, RenderOptions{}))
	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "excluded: zero or one meetings")
	assert.Contains(t, out, "Skipped")
	assert.Contains(t, out, "gamma ("+emptyID+")")
	assert.Contains(t, out, "Summary")
}

func TestBuildCohortEmptyStore(t *testing.T) {
	cohort, err := BuildCohort(context.Background(), openStore(t), progress.NewEngine(algorithm.Default()))
	require.NoError(t, err)
	assert.Empty(t, cohort.Entries)
	assert.Equal(t, Summary{}, cohort.Summary)

	var buf bytes.Buffer
	require.NoError(t, RenderCohort(&buf, cohort, RenderOptions{}))
	assert.Contains(t, buf.String(), "No raters with ratings.")
}

func TestRenderReport(t *testing.T) {
	r := compute(t, model.Rater{AgeGroup: model.Adult}, 15, 22)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, RenderOptions{}))
	out := buf.String()
	assert.Contains(t, out, "ORS progress report")
	assert.Contains(t, out, "Rater: Adult, included")
	assert.Contains(t, out, "Algorithm: 2015 ST Adult (cutoff 25.0, RCI 5.0, SD 6.63)")
	assert.Contains(t, out, "Rating change       7.0")
	assert.Contains(t, out, "Effect size         1.06")
	assert.Contains(t, out, "24.55 (expected change 9.55, 73.30% met, 66.66% level met)")
	assert.Contains(t, out, "18.80 (expected change 3.80, 100.00% met, met)")
	assert.Contains(t, out, "Milestone           RC")
	assert.Contains(t, out, "intake 15.0 at or below 25.0")
	assert.Contains(t, out, "not flagged (1 direction changes)")
	assert.NotContains(t, out, "Legend:")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderReportNotApplicableTargets(t *testing.T) {
	r := compute(t, model.Rater{AgeGroup: model.Child}, 12)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, RenderOptions{}))
	out := buf.String()
	assert.Contains(t, out, "ETR target          n/a")
	assert.Contains(t, out, "excluded: zero or one meetings")
}

func TestRenderReportWithPlot(t *testing.T) {
	r := compute(t, model.Rater{AgeGroup: model.Adult}, 15, 22)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, RenderOptions{Width: 20, Height: 5, Plot: true}))
	out := buf.String()
	assert.Contains(t, out, "Expected treatment response, 2015 ST Adult, intake 15.0")
	assert.Contains(t, out, "ETR (solid)")
	assert.Contains(t, out, "Observed (dashed)")
	assert.Contains(t, out, "cutoff 25.0 (dotted)")
	assert.Contains(t, out, "meetings 1-8")
}

func TestRenderPathWithoutObserved(t *testing.T) {
	path, err := progress.NewEngine(algorithm.Default()).Path(model.Rater{AgeGroup: model.Child}, 10, 12)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderPath(&buf, path, nil, RenderOptions{Width: 30, Height: 6}))
	out := buf.String()
	assert.Contains(t, out, "2015 LT Child")
	assert.Contains(t, out, "cutoff 32.0")
	assert.False(t, strings.Contains(out, "Observed"))
	assert.Contains(t, out, "meetings 1-18")
}
