package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/orsprogress/internal/export"
	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/progress"
	"github.com/verte-zerg/orsprogress/internal/store"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// RenderOptions controls text rendering.
type RenderOptions struct {
	Width      int
	Height     int
	ForceColor bool
	Plot       bool
}

// Skipped records a stored rater that could not be reported on.
type Skipped struct {
	RaterID string
	Label   string
	Reason  string
}

// Entry is one rater's report within a cohort.
type Entry struct {
	Record store.RaterRecord
	Report progress.Report
}

// Cohort contains every stored rater's report plus the summary.
type Cohort struct {
	Entries []Entry
	Skipped []Skipped
	Summary Summary
}

// BuildCohort loads every rater from st and computes its report. Raters
// without ratings or with invalid data are skipped and listed.
func BuildCohort(ctx context.Context, st *store.Store, engine *progress.Engine) (Cohort, error) {
	records, err := st.ListRaters(ctx)
	if err != nil {
		return Cohort{}, err
	}
	var cohort Cohort
	reports := make([]progress.Report, 0, len(records))
	for _, rec := range records {
		_, series, err := st.LoadSeries(ctx, rec.ID)
		if err != nil {
			return Cohort{}, err
		}
		report, err := engine.Compute(rec.Rater, series)
		if err != nil {
			if errors.Is(err, model.ErrInvalidInput) {
				cohort.Skipped = append(cohort.Skipped, Skipped{RaterID: rec.ID, Label: rec.Label, Reason: err.Error()})
				continue
			}
			return Cohort{}, fmt.Errorf("failed to compute report for rater %s: %w", rec.ID, err)
		}
		cohort.Entries = append(cohort.Entries, Entry{Record: rec, Report: report})
		reports = append(reports, report)
	}
	cohort.Summary = Summarize(reports)
	return cohort, nil
}

// RenderCohort writes a per-rater table followed by the cohort summary.
func RenderCohort(w io.Writer, c Cohort, opts RenderOptions) error {
	useColor := shouldUseColor(w, opts.ForceColor)
	lines := []string{styled(headingStyle, "Raters", useColor)}
	if len(c.Entries) == 0 {
		lines = append(lines, styled(mutedStyle, "No raters with ratings.", useColor))
	} else {
		rows := make([][]string, 0, len(c.Entries))
		for _, e := range c.Entries {
			r := e.Report
			rows = append(rows, []string{
				e.Record.Label,
				r.Rater.AgeGroup.String(),
				strconv.Itoa(r.RatingsCount),
				export.Fixed(r.RatingChange, 1),
				export.Fixed(r.EffectSize, 2),
				milestoneLabel(r.Milestones),
				exclusionLabel(r.Exclusions),
			})
		}
		lines = append(lines, formatTable(
			[]string{"Label", "Age group", "Ratings", "Change", "ES", "Milestone", "Status"},
			rows,
			map[int]bool{2: true, 3: true, 4: true},
		)...)
	}
	if len(c.Skipped) > 0 {
		lines = append(lines, "", styled(headingStyle, "Skipped", useColor))
		for _, s := range c.Skipped {
			lines = append(lines, fmt.Sprintf("%s (%s): %s", s.Label, s.RaterID, s.Reason))
		}
	}
	lines = append(lines, "", styled(headingStyle, "Summary", useColor))
	if err := writeLines(w, lines); err != nil {
		return err
	}
	return RenderSummary(w, c.Summary)
}

// RenderReport writes a single rater's report. With opts.Plot set the
// expected trajectory is plotted against the observed scores.
func RenderReport(w io.Writer, r progress.Report, opts RenderOptions) error {
	useColor := shouldUseColor(w, opts.ForceColor)
	a := r.Algorithm
	lines := []string{
		styled(headingStyle, "ORS progress report", useColor),
		fmt.Sprintf("Rater: %s, %s", r.Rater.AgeGroup, exclusionLabel(r.Exclusions)),
		fmt.Sprintf("Algorithm: %s (cutoff %s, RCI %s, SD %s)",
			a.Version, export.Fixed(a.ClinicalCutoff, 1), export.Fixed(a.ReliableChangeIndex, 1), export.Fixed(a.StandardDeviation, 2)),
		"",
		styled(headingStyle, "Ratings", useColor),
	}
	lines = append(lines, formatTable([]string{"#", "ID", "Date", "Score"}, ratingRows(r.Ratings), map[int]bool{0: true, 1: true, 3: true})...)
	lines = append(lines, "", styled(headingStyle, "Indicators", useColor))
	lines = append(lines, formatTable([]string{"Indicator", "Value"}, indicatorRows(r), nil)...)
	if err := writeLines(w, lines); err != nil {
		return err
	}
	if !opts.Plot || r.RatingsCount == 0 {
		return nil
	}
	path, err := progress.Path(r.FirstRating.Score, r.RatingsCount, r.Algorithm)
	if err != nil {
		return err
	}
	actual := make([]float64, len(r.Ratings))
	for i, rating := range r.Ratings {
		actual[i] = rating.Score
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return RenderPath(w, path, actual, opts)
}

// RenderPath plots the expected trajectory and, when given, the observed
// scores on the ORS scale with the clinical cutoff as a reference line.
func RenderPath(w io.Writer, path progress.PathResult, actual []float64, opts RenderOptions) error {
	series := []Series{{Name: "ETR", Values: path.Values}}
	if len(actual) > 0 {
		series = append(series, Series{Name: "Observed", Values: actual})
	}
	title := fmt.Sprintf("Expected treatment response, %s, intake %s", path.Version, export.Fixed(path.FirstScore, 1))
	return PlotSeries(w, styled(headingStyle, title, shouldUseColor(w, opts.ForceColor)), series, PlotOptions{
		Width:  opts.Width,
		Height: opts.Height,
		References: []Reference{
			{Name: "cutoff " + export.Fixed(path.ClinicalCutoff, 1), Value: path.ClinicalCutoff},
		},
		ForceColor: opts.ForceColor,
	})
}

func ratingRows(items []model.Rating) [][]string {
	rows := make([][]string, len(items))
	for i, r := range items {
		id, date := "-", "-"
		if r.ID != nil {
			id = strconv.FormatInt(*r.ID, 10)
		}
		if r.DateCompleted != nil {
			date = *r.DateCompleted
		}
		rows[i] = []string{strconv.Itoa(i + 1), id, date, export.Fixed(r.Score, 1)}
	}
	return rows
}

func indicatorRows(r progress.Report) [][]string {
	v := r.ValidityIndicators
	applicable := !v.ZeroOrOneMeetings && !v.FirstRatingAbove32
	return [][]string{
		{"Rating change", export.Fixed(r.RatingChange, 1)},
		{"Effect size", export.Fixed(r.EffectSize, 2)},
		{"ETR target", targetCell(r.EtrTarget, applicable)},
		{"ETR meeting target", targetCell(r.EtrMeetingTarget, applicable)},
		{"Milestone", milestoneLabel(r.Milestones)},
		{"Clinical cutoff", cutoffCell(v.ClinicalCutoff)},
		{"Sawtooth", sawtoothCell(v.SawtoothPattern)},
		{"Status", exclusionLabel(r.Exclusions)},
	}
}

func targetCell(t progress.TargetResult, applicable bool) string {
	if !applicable {
		return "n/a"
	}
	status := "not met"
	switch {
	case t.Met:
		status = "met"
	case t.MetPercent67:
		status = "66.66% level met"
	case t.MetPercent50:
		status = "50% level met"
	}
	return fmt.Sprintf("%s (expected change %s, %s%% met, %s)",
		export.Fixed(t.Value, 2), export.Fixed(t.ExpectedChange, 2), export.Fixed(t.MetPercent, 2), status)
}

func milestoneLabel(m progress.MilestonesResult) string {
	switch {
	case m.CSCMet:
		return "CSC"
	case m.RCMet:
		return "RC"
	default:
		return "none"
	}
}

func cutoffCell(c progress.CutoffResult) string {
	if c.FirstRatingScore == nil {
		return export.Fixed(c.Value, 1)
	}
	side := "at or below"
	if c.IsAbove {
		side = "above"
	}
	return fmt.Sprintf("intake %s %s %s", export.Fixed(*c.FirstRatingScore, 1), side, export.Fixed(c.Value, 1))
}

func sawtoothCell(s progress.SawtoothResult) string {
	if s.Has {
		return fmt.Sprintf("flagged (%d direction changes, %d teeth)", s.DirectionChanges, s.Teeth)
	}
	return fmt.Sprintf("not flagged (%d direction changes)", s.DirectionChanges)
}

func exclusionLabel(e progress.ExclusionsResult) string {
	if e.Included {
		return "included"
	}
	var reasons []string
	if e.UserExcluded {
		reasons = append(reasons, "by user")
	}
	if e.FirstRatingAbove32 {
		reasons = append(reasons, "first rating above 32")
	}
	if e.ZeroOrOneMeetings {
		reasons = append(reasons, "zero or one meetings")
	}
	return "excluded: " + strings.Join(reasons, ", ")
}

func styled(style lipgloss.Style, text string, useColor bool) string {
	if !useColor {
		return text
	}
	return style.Render(text)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
