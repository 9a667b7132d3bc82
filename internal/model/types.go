// Package model defines shared data structures.
package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Score bounds for a single ORS rating.
const (
	MinScore = 0.0
	MaxScore = 40.0
)

// AgeGroup selects the coefficient tables used for a rater.
type AgeGroup int

// Known age groups.
const (
	Adolescent AgeGroup = 1
	Adult      AgeGroup = 2
	Child      AgeGroup = 3
)

// AgeGroups lists every supported age group in numeric order.
var AgeGroups = []AgeGroup{Adolescent, Adult, Child}

// Valid reports whether the age group is one of the known groups.
func (a AgeGroup) Valid() bool {
	return a >= Adolescent && a <= Child
}

func (a AgeGroup) String() string {
	switch a {
	case Adolescent:
		return "Adolescent"
	case Adult:
		return "Adult"
	case Child:
		return "Child"
	default:
		return fmt.Sprintf("AgeGroup(%d)", int(a))
	}
}

// ParseAgeGroup accepts an age group name (case-insensitive) or its number.
func ParseAgeGroup(value string) (AgeGroup, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if n, err := strconv.Atoi(v); err == nil {
		age := AgeGroup(n)
		if !age.Valid() {
			return 0, Invalidf("unknown age group %d", n)
		}
		return age, nil
	}
	for _, age := range AgeGroups {
		if strings.ToLower(age.String()) == v {
			return age, nil
		}
	}
	return 0, Invalidf("unknown age group %q", value)
}

// Rater is the person completing the ratings.
type Rater struct {
	AgeGroup         AgeGroup
	ExcludeFromStats bool
}

// NewRater validates the age group and returns a Rater.
func NewRater(age AgeGroup, excludeFromStats bool) (Rater, error) {
	if !age.Valid() {
		return Rater{}, Invalidf("unknown age group %d", int(age))
	}
	return Rater{AgeGroup: age, ExcludeFromStats: excludeFromStats}, nil
}

// Rating is one completed ORS rating.
type Rating struct {
	ID            *int64
	DateCompleted *string
	Score         float64
}

// NewRating validates the score and returns a Rating.
func NewRating(id *int64, dateCompleted *string, score float64) (Rating, error) {
	if err := ValidateScore(score); err != nil {
		return Rating{}, err
	}
	return Rating{ID: id, DateCompleted: dateCompleted, Score: score}, nil
}

// ValidateScore checks that a score lies within [MinScore, MaxScore].
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < MinScore || score > MaxScore {
		return Invalidf("score %g must be between %g and %g", score, MinScore, MaxScore)
	}
	return nil
}
