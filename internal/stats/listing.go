package stats

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/verte-zerg/orsprogress/internal/export"
	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/progress"
	"github.com/verte-zerg/orsprogress/internal/store"
)

// RenderRaters writes stored raters as a table.
func RenderRaters(w io.Writer, records []store.RaterRecord) error {
	rows := make([][]string, len(records))
	for i, rec := range records {
		excluded := "no"
		if rec.Rater.ExcludeFromStats {
			excluded = "yes"
		}
		rows[i] = []string{rec.ID, rec.Label, rec.Rater.AgeGroup.String(), excluded, rec.CreatedAt.Local().Format(time.DateOnly)}
	}
	return writeLines(w, formatTable([]string{"ID", "Label", "Age group", "Excluded", "Created"}, rows, nil))
}

// RenderRatings writes ratings in order with their position.
func RenderRatings(w io.Writer, items []model.Rating) error {
	return writeLines(w, formatTable([]string{"#", "ID", "Date", "Score"}, ratingRows(items), map[int]bool{0: true, 1: true, 3: true}))
}

// RenderPathValues writes the expected score for every meeting.
func RenderPathValues(w io.Writer, path progress.PathResult) error {
	header := fmt.Sprintf("%s, intake %s, %d planned meetings", path.Version, export.Fixed(path.FirstScore, 1), path.Meetings)
	rows := make([][]string, len(path.Values))
	for i, v := range path.Values {
		rows[i] = []string{strconv.Itoa(i + 1), export.Fixed(v, 1)}
	}
	lines := append([]string{header}, formatTable([]string{"Meeting", "Expected"}, rows, map[int]bool{0: true, 1: true})...)
	return writeLines(w, lines)
}
