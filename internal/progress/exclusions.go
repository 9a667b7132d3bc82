package progress

// ExclusionsResult records why a rater is left out of aggregate statistics.
type ExclusionsResult struct {
	Excluded           bool
	UserExcluded       bool
	FirstRatingAbove32 bool
	ZeroOrOneMeetings  bool
	Included           bool
}

// Exclude combines the user flag with the validity flags.
func Exclude(userExcluded, firstRatingAbove32, zeroOrOneMeetings bool) ExclusionsResult {
	excluded := userExcluded || firstRatingAbove32 || zeroOrOneMeetings
	return ExclusionsResult{
		Excluded:           excluded,
		UserExcluded:       userExcluded,
		FirstRatingAbove32: firstRatingAbove32,
		ZeroOrOneMeetings:  zeroOrOneMeetings,
		Included:           !excluded,
	}
}
