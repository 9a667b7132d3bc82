package algorithm

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/orsprogress/internal/model"
)

type tableFile struct {
	Tables []tableEntry `toml:"table"`
}

type tableEntry struct {
	Version             string  `toml:"version"`
	AgeGroup            string  `toml:"age-group"`
	Term                string  `toml:"term"`
	ClinicalCutoff      float64 `toml:"clinical-cutoff"`
	ReliableChangeIndex float64 `toml:"reliable-change-index"`
	StandardDeviation   float64 `toml:"standard-deviation"`
	MinMeetings         int     `toml:"min-meetings"`
	MaxMeetings         int     `toml:"max-meetings"`
	FlattenMeeting      int     `toml:"flatten-meeting"`
	InterceptMean       float64 `toml:"intercept-mean"`
	LinearMean          float64 `toml:"linear-mean"`
	QuadraticMean       float64 `toml:"quadratic-mean"`
	CubicMean           float64 `toml:"cubic-mean"`
	Intake              float64 `toml:"intake"`
	LinearByIntake      float64 `toml:"linear-by-intake"`
	QuadraticByIntake   float64 `toml:"quadratic-by-intake"`
	CubicByIntake       float64 `toml:"cubic-by-intake"`
}

// LoadTables reads [[table]] entries from a TOML file.
func LoadTables(path string) ([]Coefficients, error) {
	var file tableFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode coefficient tables: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, model.Invalidf("%s: unknown coefficient table key %q", path, undecoded[0].String())
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("coefficient table file %s has no [[table]] entries", path)
	}
	out := make([]Coefficients, 0, len(file.Tables))
	for i, e := range file.Tables {
		age, err := model.ParseAgeGroup(e.AgeGroup)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i+1, err)
		}
		term, err := ParseTerm(e.Term)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i+1, err)
		}
		version := e.Version
		if version == "" {
			version = fmt.Sprintf("custom %s %s", term, age)
		}
		out = append(out, Coefficients{
			Version:             version,
			AgeGroup:            age,
			Term:                term,
			ClinicalCutoff:      e.ClinicalCutoff,
			ReliableChangeIndex: e.ReliableChangeIndex,
			StandardDeviation:   e.StandardDeviation,
			MinMeetings:         e.MinMeetings,
			MaxMeetings:         e.MaxMeetings,
			FlattenMeeting:      e.FlattenMeeting,
			InterceptMean:       e.InterceptMean,
			LinearMean:          e.LinearMean,
			QuadraticMean:       e.QuadraticMean,
			CubicMean:           e.CubicMean,
			Intake:              e.Intake,
			LinearByIntake:      e.LinearByIntake,
			QuadraticByIntake:   e.QuadraticByIntake,
			CubicByIntake:       e.CubicByIntake,
		})
	}
	return out, nil
}

// LoadProvider returns the built-in provider for an empty path, otherwise a
// provider backed by the tables in the file.
func LoadProvider(path string) (*TableProvider, error) {
	if path == "" {
		return Default(), nil
	}
	tables, err := LoadTables(path)
	if err != nil {
		return nil, err
	}
	p, err := NewTableProvider(tables)
	if err != nil {
		return nil, fmt.Errorf("invalid coefficient tables in %s: %w", path, err)
	}
	return p, nil
}
