// Package ratingfile loads ratings from plain-text files.
//
// Each non-blank line holds either a bare score or "id,date,score". Lines
// starting with '#' are comments. Empty id or date fields are allowed.
package ratingfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/verte-zerg/orsprogress/internal/model"
)

// Load reads ratings from the provided file path.
func Load(path string) ([]model.Rating, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only rating file.
			_ = cerr
		}
	}()
	return Parse(file)
}

// Parse reads ratings from r.
func Parse(r io.Reader) ([]model.Rating, error) {
	var items []model.Rating
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rating, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		items = append(items, rating)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("rating file is empty")
	}
	return items, nil
}

func parseLine(line string) (model.Rating, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	switch len(fields) {
	case 1:
		score, err := parseScore(fields[0])
		if err != nil {
			return model.Rating{}, err
		}
		return model.NewRating(nil, nil, score)
	case 3:
		var id *int64
		if fields[0] != "" {
			v, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return model.Rating{}, fmt.Errorf("invalid id %q", fields[0])
			}
			id = &v
		}
		var date *string
		if fields[1] != "" {
			d := fields[1]
			date = &d
		}
		score, err := parseScore(fields[2])
		if err != nil {
			return model.Rating{}, err
		}
		return model.NewRating(id, date, score)
	default:
		return model.Rating{}, fmt.Errorf("expected \"score\" or \"id,date,score\", got %d fields", len(fields))
	}
}

func parseScore(value string) (float64, error) {
	score, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", value)
	}
	return score, nil
}

// ParseScores splits a comma or whitespace separated list of scores.
func ParseScores(value string) ([]float64, error) {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
	if len(parts) == 0 {
		return nil, fmt.Errorf("no scores given")
	}
	scores := make([]float64, 0, len(parts))
	for _, p := range parts {
		score, err := parseScore(p)
		if err != nil {
			return nil, err
		}
		if err := model.ValidateScore(score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, nil
}
