// Package export renders progress reports as flat maps, JSON and YAML.
// Numeric fields are paired with fixed-precision display strings.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/progress"
)

// Document is the serialized form of a progress report.
type Document struct {
	Rater                RaterDoc      `json:"rater" yaml:"rater"`
	Ratings              []RatingDoc   `json:"ratings" yaml:"ratings"`
	RatingsCount         int           `json:"ratingsCount" yaml:"ratingsCount"`
	FirstRating          RatingDoc     `json:"firstRating" yaml:"firstRating"`
	LastRating           RatingDoc     `json:"lastRating" yaml:"lastRating"`
	RatingChange         float64       `json:"ratingChange" yaml:"ratingChange"`
	RatingChangeAsString string        `json:"ratingChangeAsString" yaml:"ratingChangeAsString"`
	EffectSize           float64       `json:"effectSize" yaml:"effectSize"`
	EffectSizeAsString   string        `json:"effectSizeAsString" yaml:"effectSizeAsString"`
	Algorithm            AlgorithmDoc  `json:"algorithm" yaml:"algorithm"`
	AlgorithmShortTerm   AlgorithmDoc  `json:"algorithmShortTerm" yaml:"algorithmShortTerm"`
	EtrMtgTarget         TargetDoc     `json:"etrMtgTarget" yaml:"etrMtgTarget"`
	EtrTarget            TargetDoc     `json:"etrTarget" yaml:"etrTarget"`
	Milestones           MilestonesDoc `json:"milestones" yaml:"milestones"`
	ValidityIndicators   ValidityDoc   `json:"validityIndicators" yaml:"validityIndicators"`
	Exclusions           ExclusionsDoc `json:"exclusions" yaml:"exclusions"`
}

// RaterDoc is the serialized rater.
type RaterDoc struct {
	AgeGroup         int    `json:"ageGroup" yaml:"ageGroup"`
	AgeGroupAsString string `json:"ageGroupAsString" yaml:"ageGroupAsString"`
	ExcludeFromStats bool   `json:"excludeFromStats" yaml:"excludeFromStats"`
}

// RatingDoc is one serialized rating.
type RatingDoc struct {
	ID            *int64  `json:"id" yaml:"id"`
	DateCompleted *string `json:"dateCompleted" yaml:"dateCompleted"`
	Score         float64 `json:"score" yaml:"score"`
	ScoreAsString string  `json:"scoreAsString" yaml:"scoreAsString"`
}

// AlgorithmDoc summarizes the coefficient table used for a report.
type AlgorithmDoc struct {
	Version                     string  `json:"version" yaml:"version"`
	ClinicalCutoff              float64 `json:"clinicalCutoff" yaml:"clinicalCutoff"`
	ClinicalCutoffAsString      string  `json:"clinicalCutoffAsString" yaml:"clinicalCutoffAsString"`
	ReliableChangeIndex         float64 `json:"reliableChangeIndex" yaml:"reliableChangeIndex"`
	ReliableChangeIndexAsString string  `json:"reliableChangeIndexAsString" yaml:"reliableChangeIndexAsString"`
	StandardDeviation           float64 `json:"standardDeviation" yaml:"standardDeviation"`
	StandardDeviationAsString   string  `json:"standardDeviationAsString" yaml:"standardDeviationAsString"`
	SRSClinicalCutoff           float64 `json:"srsClinicalCutoff" yaml:"srsClinicalCutoff"`
	SRSClinicalCutoffAsString   string  `json:"srsClinicalCutoffAsString" yaml:"srsClinicalCutoffAsString"`
}

// TargetDoc is a serialized target result.
type TargetDoc struct {
	ExpectedChange         float64 `json:"expectedChange" yaml:"expectedChange"`
	ExpectedChangeAsString string  `json:"expectedChangeAsString" yaml:"expectedChangeAsString"`
	Met                    bool    `json:"met" yaml:"met"`
	MetPercent             float64 `json:"metPercent" yaml:"metPercent"`
	MetPercentAsString     string  `json:"metPercentAsString" yaml:"metPercentAsString"`
	MetPercent50           bool    `json:"metPercent50" yaml:"metPercent50"`
	MetPercent67           bool    `json:"metPercent67" yaml:"metPercent67"`
	Value                  float64 `json:"value" yaml:"value"`
	ValueAsString          string  `json:"valueAsString" yaml:"valueAsString"`
}

// MilestonesDoc is the serialized milestone classification.
type MilestonesDoc struct {
	CSCMet     bool `json:"cscMet" yaml:"cscMet"`
	RCMet      bool `json:"rcMet" yaml:"rcMet"`
	RCOrCSCMet bool `json:"rcOrCscMet" yaml:"rcOrCscMet"`
}

// CutoffDoc is the serialized clinical cutoff indicator.
type CutoffDoc struct {
	Value            float64  `json:"value" yaml:"value"`
	FirstRatingScore *float64 `json:"firstRatingScore" yaml:"firstRatingScore"`
	IsAbove          bool     `json:"isAbove" yaml:"isAbove"`
}

// SawtoothDoc is the serialized sawtooth pattern.
type SawtoothDoc struct {
	DirectionChanges int  `json:"directionChanges" yaml:"directionChanges"`
	Has              bool `json:"has" yaml:"has"`
	Teeth            int  `json:"teeth" yaml:"teeth"`
}

// ValidityDoc is the serialized validity indicators.
type ValidityDoc struct {
	ClinicalCutoff     CutoffDoc   `json:"clinicalCutoff" yaml:"clinicalCutoff"`
	SawtoothPattern    SawtoothDoc `json:"sawtoothPattern" yaml:"sawtoothPattern"`
	FirstRatingAbove32 bool        `json:"firstRatingAbove32" yaml:"firstRatingAbove32"`
	ZeroOrOneMeetings  bool        `json:"zeroOrOneMeetings" yaml:"zeroOrOneMeetings"`
}

// ExclusionsDoc is the serialized exclusion decision.
type ExclusionsDoc struct {
	Excluded           bool `json:"excluded" yaml:"excluded"`
	UserExcluded       bool `json:"userExcluded" yaml:"userExcluded"`
	FirstRatingAbove32 bool `json:"firstRatingAbove32" yaml:"firstRatingAbove32"`
	ZeroOrOneMeetings  bool `json:"zeroOrOneMeetings" yaml:"zeroOrOneMeetings"`
	Included           bool `json:"included" yaml:"included"`
}

// PathDocument is the serialized expected trajectory.
type PathDocument struct {
	AgeGroup       int       `json:"raterAgeGroup" yaml:"raterAgeGroup"`
	Version        string    `json:"version" yaml:"version"`
	FirstScore     float64   `json:"firstRatingScore" yaml:"firstRatingScore"`
	Meetings       int       `json:"meetings" yaml:"meetings"`
	ClinicalCutoff float64   `json:"clinicalCutoff" yaml:"clinicalCutoff"`
	Values         []float64 `json:"values" yaml:"values"`
	ValuesAsString []string  `json:"valuesAsString" yaml:"valuesAsString"`
}

// FromReport converts a report into its serialized form.
func FromReport(r progress.Report) Document {
	items := make([]RatingDoc, len(r.Ratings))
	for i, rating := range r.Ratings {
		items[i] = ratingDoc(rating)
	}
	v := r.ValidityIndicators
	return Document{
		Rater: RaterDoc{
			AgeGroup:         int(r.Rater.AgeGroup),
			AgeGroupAsString: r.Rater.AgeGroup.String(),
			ExcludeFromStats: r.Rater.ExcludeFromStats,
		},
		Ratings:              items,
		RatingsCount:         r.RatingsCount,
		FirstRating:          ratingDoc(r.FirstRating),
		LastRating:           ratingDoc(r.LastRating),
		RatingChange:         r.RatingChange,
		RatingChangeAsString: Fixed(r.RatingChange, 1),
		EffectSize:           r.EffectSize,
		EffectSizeAsString:   Fixed(r.EffectSize, 2),
		Algorithm:            algorithmDoc(r.Algorithm),
		AlgorithmShortTerm:   algorithmDoc(r.AlgorithmShortTerm),
		EtrMtgTarget:         targetDoc(r.EtrMeetingTarget),
		EtrTarget:            targetDoc(r.EtrTarget),
		Milestones: MilestonesDoc{
			CSCMet:     r.Milestones.CSCMet,
			RCMet:      r.Milestones.RCMet,
			RCOrCSCMet: r.Milestones.RCOrCSCMet,
		},
		ValidityIndicators: ValidityDoc{
			ClinicalCutoff: CutoffDoc{
				Value:            v.ClinicalCutoff.Value,
				FirstRatingScore: v.ClinicalCutoff.FirstRatingScore,
				IsAbove:          v.ClinicalCutoff.IsAbove,
			},
			SawtoothPattern: SawtoothDoc{
				DirectionChanges: v.SawtoothPattern.DirectionChanges,
				Has:              v.SawtoothPattern.Has,
				Teeth:            v.SawtoothPattern.Teeth,
			},
			FirstRatingAbove32: v.FirstRatingAbove32,
			ZeroOrOneMeetings:  v.ZeroOrOneMeetings,
		},
		Exclusions: ExclusionsDoc{
			Excluded:           r.Exclusions.Excluded,
			UserExcluded:       r.Exclusions.UserExcluded,
			FirstRatingAbove32: r.Exclusions.FirstRatingAbove32,
			ZeroOrOneMeetings:  r.Exclusions.ZeroOrOneMeetings,
			Included:           r.Exclusions.Included,
		},
	}
}

// FromPath converts an expected trajectory into its serialized form.
func FromPath(p progress.PathResult) PathDocument {
	values := make([]float64, len(p.Values))
	copy(values, p.Values)
	strs := make([]string, len(p.Values))
	for i, v := range p.Values {
		strs[i] = Fixed(v, 1)
	}
	return PathDocument{
		AgeGroup:       int(p.AgeGroup),
		Version:        p.Version,
		FirstScore:     p.FirstScore,
		Meetings:       p.Meetings,
		ClinicalCutoff: p.ClinicalCutoff,
		Values:         values,
		ValuesAsString: strs,
	}
}

// Fixed formats v with exactly places decimals, rounding half away from zero.
func Fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

func ratingDoc(r model.Rating) RatingDoc {
	return RatingDoc{
		ID:            r.ID,
		DateCompleted: r.DateCompleted,
		Score:         r.Score,
		ScoreAsString: Fixed(r.Score, 1),
	}
}

func algorithmDoc(c algorithm.Coefficients) AlgorithmDoc {
	return AlgorithmDoc{
		Version:                     c.Version,
		ClinicalCutoff:              c.ClinicalCutoff,
		ClinicalCutoffAsString:      Fixed(c.ClinicalCutoff, 1),
		ReliableChangeIndex:         c.ReliableChangeIndex,
		ReliableChangeIndexAsString: Fixed(c.ReliableChangeIndex, 2),
		StandardDeviation:           c.StandardDeviation,
		StandardDeviationAsString:   Fixed(c.StandardDeviation, 2),
		SRSClinicalCutoff:           algorithm.SRSClinicalCutoff,
		SRSClinicalCutoffAsString:   Fixed(algorithm.SRSClinicalCutoff, 1),
	}
}

func targetDoc(t progress.TargetResult) TargetDoc {
	return TargetDoc{
		ExpectedChange:         t.ExpectedChange,
		ExpectedChangeAsString: Fixed(t.ExpectedChange, 2),
		Met:                    t.Met,
		MetPercent:             t.MetPercent,
		MetPercentAsString:     Fixed(t.MetPercent, 2),
		MetPercent50:           t.MetPercent50,
		MetPercent67:           t.MetPercent67,
		Value:                  t.Value,
		ValueAsString:          Fixed(t.Value, 2),
	}
}
