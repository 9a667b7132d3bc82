package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/orsprogress/internal/export"
	"github.com/verte-zerg/orsprogress/internal/progress"
)

// Summary aggregates a cohort of reports. Counts cover every report;
// means and rates cover included reports only. Rates are percentages.
type Summary struct {
	Raters               int
	Included             int
	Excluded             int
	UserExcluded         int
	FirstRatingAbove32   int
	ZeroOrOneMeetings    int
	SawtoothFlagged      int
	MeanRatingChange     float64
	MeanEffectSize       float64
	RCRate               float64
	CSCRate              float64
	RCOrCSCRate          float64
	EtrTargetMetRate     float64
	EtrMtgTargetMetRate  float64
	MeanEtrTargetPercent float64
}

// Summarize computes cohort statistics for reports.
func Summarize(reports []progress.Report) Summary {
	var s Summary
	var change, effect, percent float64
	var rc, csc, either, fixedMet, mtgMet int
	for _, r := range reports {
		s.Raters++
		ex := r.Exclusions
		if ex.UserExcluded {
			s.UserExcluded++
		}
		if ex.FirstRatingAbove32 {
			s.FirstRatingAbove32++
		}
		if ex.ZeroOrOneMeetings {
			s.ZeroOrOneMeetings++
		}
		if !ex.Included {
			s.Excluded++
			continue
		}
		s.Included++
		if r.ValidityIndicators.SawtoothPattern.Has {
			s.SawtoothFlagged++
		}
		change += r.RatingChange
		effect += r.EffectSize
		percent += r.EtrTarget.MetPercent
		if r.Milestones.RCMet {
			rc++
		}
		if r.Milestones.CSCMet {
			csc++
		}
		if r.Milestones.RCOrCSCMet {
			either++
		}
		if r.EtrTarget.Met {
			fixedMet++
		}
		if r.EtrMeetingTarget.Met {
			mtgMet++
		}
	}
	if s.Included == 0 {
		return s
	}
	n := float64(s.Included)
	s.MeanRatingChange = progress.Round(change/n, 2)
	s.MeanEffectSize = progress.Round(effect/n, 2)
	s.MeanEtrTargetPercent = progress.Round(percent/n, 2)
	s.RCRate = rate(rc, s.Included)
	s.CSCRate = rate(csc, s.Included)
	s.RCOrCSCRate = rate(either, s.Included)
	s.EtrTargetMetRate = rate(fixedMet, s.Included)
	s.EtrMtgTargetMetRate = rate(mtgMet, s.Included)
	return s
}

func rate(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return progress.Round(float64(count)/float64(total)*100, 2)
}

// RenderSummary writes the cohort summary as an aligned table.
func RenderSummary(w io.Writer, s Summary) error {
	rows := [][]string{
		{"Raters", fmt.Sprintf("%d", s.Raters)},
		{"Included", fmt.Sprintf("%d", s.Included)},
		{"Excluded", fmt.Sprintf("%d", s.Excluded)},
		{"  by user", fmt.Sprintf("%d", s.UserExcluded)},
		{"  first rating above 32", fmt.Sprintf("%d", s.FirstRatingAbove32)},
		{"  zero or one meetings", fmt.Sprintf("%d", s.ZeroOrOneMeetings)},
	}
	if s.Included > 0 {
		rows = append(rows,
			[]string{"Mean rating change", export.Fixed(s.MeanRatingChange, 2)},
			[]string{"Mean effect size", export.Fixed(s.MeanEffectSize, 2)},
			[]string{"Reliable change", percentCell(s.RCRate)},
			[]string{"Clinically significant change", percentCell(s.CSCRate)},
			[]string{"RC or CSC", percentCell(s.RCOrCSCRate)},
			[]string{"ETR target met", percentCell(s.EtrTargetMetRate)},
			[]string{"ETR meeting target met", percentCell(s.EtrMtgTargetMetRate)},
			[]string{"Mean ETR target met", percentCell(s.MeanEtrTargetPercent)},
			[]string{"Sawtooth flagged", fmt.Sprintf("%d", s.SawtoothFlagged)},
		)
	}
	for _, line := range formatTable([]string{"Metric", "Value"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func percentCell(v float64) string {
	return export.Fixed(v, 2) + "%"
}
