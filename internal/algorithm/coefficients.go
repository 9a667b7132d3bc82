// Package algorithm provides the fitted coefficient tables behind the
// expected treatment response.
package algorithm

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/orsprogress/internal/model"
)

// SRSClinicalCutoff is the Session Rating Scale cutoff reported with every
// algorithm summary.
const SRSClinicalCutoff = 36.0

// Term distinguishes the short-term and long-term tables.
type Term int

// Table terms.
const (
	ShortTerm Term = iota
	LongTerm
)

func (t Term) String() string {
	if t == LongTerm {
		return "LT"
	}
	return "ST"
}

// ParseTerm accepts "short"/"st" or "long"/"lt".
func ParseTerm(value string) (Term, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "short", "st":
		return ShortTerm, nil
	case "long", "lt":
		return LongTerm, nil
	default:
		return 0, model.Invalidf("unknown table term %q", value)
	}
}

// Coefficients is one fitted table for an age group and term.
type Coefficients struct {
	Version             string
	AgeGroup            model.AgeGroup
	Term                Term
	ClinicalCutoff      float64
	ReliableChangeIndex float64
	StandardDeviation   float64
	MinMeetings         int
	MaxMeetings         int
	FlattenMeeting      int
	InterceptMean       float64
	LinearMean          float64
	QuadraticMean       float64
	CubicMean           float64
	Intake              float64
	LinearByIntake      float64
	QuadraticByIntake   float64
	CubicByIntake       float64
}

// Validate checks the structural constraints every table must satisfy.
func (c Coefficients) Validate() error {
	if !c.AgeGroup.Valid() {
		return model.Invalidf("table %q: unknown age group %d", c.Version, int(c.AgeGroup))
	}
	if c.FlattenMeeting < 1 {
		return model.Invalidf("table %q: flatten meeting must be >= 1", c.Version)
	}
	if c.FlattenMeeting > c.MaxMeetings {
		return model.Invalidf("table %q: flatten meeting %d exceeds max meetings %d", c.Version, c.FlattenMeeting, c.MaxMeetings)
	}
	if c.MinMeetings > c.MaxMeetings {
		return model.Invalidf("table %q: min meetings %d exceeds max meetings %d", c.Version, c.MinMeetings, c.MaxMeetings)
	}
	if c.StandardDeviation <= 0 {
		return model.Invalidf("table %q: standard deviation must be > 0", c.Version)
	}
	return nil
}

// Provider resolves the coefficient table for a rater.
type Provider interface {
	// Lookup selects by meeting count; 0 selects the short-term table.
	Lookup(age model.AgeGroup, meetingCount int) (Coefficients, error)
	LookupShortTerm(age model.AgeGroup) (Coefficients, error)
}

type tablePair struct {
	short Coefficients
	long  Coefficients
}

// TableProvider serves lookups from an in-memory set of tables.
type TableProvider struct {
	byAge map[model.AgeGroup]tablePair
}

// NewTableProvider requires exactly one short-term and one long-term table
// for every age group, with the short-term meetings ending before the
// long-term ones start.
func NewTableProvider(tables []Coefficients) (*TableProvider, error) {
	type seen struct{ short, long bool }
	pairs := map[model.AgeGroup]tablePair{}
	flags := map[model.AgeGroup]seen{}
	for _, c := range tables {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		pair := pairs[c.AgeGroup]
		f := flags[c.AgeGroup]
		switch c.Term {
		case ShortTerm:
			if f.short {
				return nil, model.Invalidf("duplicate short-term table for %s", c.AgeGroup)
			}
			pair.short, f.short = c, true
		case LongTerm:
			if f.long {
				return nil, model.Invalidf("duplicate long-term table for %s", c.AgeGroup)
			}
			pair.long, f.long = c, true
		default:
			return nil, model.Invalidf("table %q: unknown term %d", c.Version, int(c.Term))
		}
		pairs[c.AgeGroup] = pair
		flags[c.AgeGroup] = f
	}
	for _, age := range model.AgeGroups {
		f := flags[age]
		if !f.short || !f.long {
			return nil, model.Invalidf("missing short-term or long-term table for %s", age)
		}
		if pair := pairs[age]; pair.short.MaxMeetings >= pair.long.MinMeetings {
			return nil, model.Invalidf("%s: short-term max meetings %d overlaps long-term min meetings %d",
				age, pair.short.MaxMeetings, pair.long.MinMeetings)
		}
	}
	return &TableProvider{byAge: pairs}, nil
}

// Lookup returns the short-term table for meeting counts up to the short-term
// maximum (including 0 and negatives) and the long-term table beyond it.
func (p *TableProvider) Lookup(age model.AgeGroup, meetingCount int) (Coefficients, error) {
	pair, err := p.pair(age)
	if err != nil {
		return Coefficients{}, err
	}
	if meetingCount <= pair.short.MaxMeetings {
		return pair.short, nil
	}
	return pair.long, nil
}

// LookupShortTerm returns the short-term table for the age group.
func (p *TableProvider) LookupShortTerm(age model.AgeGroup) (Coefficients, error) {
	pair, err := p.pair(age)
	if err != nil {
		return Coefficients{}, err
	}
	return pair.short, nil
}

// Tables returns every table ordered by age group, short-term first.
func (p *TableProvider) Tables() []Coefficients {
	out := make([]Coefficients, 0, len(p.byAge)*2)
	for _, age := range model.AgeGroups {
		pair := p.byAge[age]
		out = append(out, pair.short, pair.long)
	}
	return out
}

func (p *TableProvider) pair(age model.AgeGroup) (tablePair, error) {
	pair, ok := p.byAge[age]
	if !ok {
		return tablePair{}, model.Invalidf("no coefficient tables for age group %s", age)
	}
	return pair, nil
}

func tableVersion(age model.AgeGroup, term Term) string {
	return fmt.Sprintf("2015 %s %s", term, age)
}
