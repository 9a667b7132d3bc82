package progress

import "github.com/verte-zerg/orsprogress/internal/algorithm"

// MilestonesResult classifies the change between first and last rating.
// CSC and RC are never both set.
type MilestonesResult struct {
	CSCMet     bool
	RCMet      bool
	RCOrCSCMet bool
}

// EvaluateMilestones checks reliable change and clinically significant
// change. CSC requires reliable change that crosses the cutoff from at or
// below to above, and replaces RC when present.
func EvaluateMilestones(s Series, c algorithm.Coefficients) (MilestonesResult, error) {
	first, last, ok, err := firstLast(s)
	if err != nil || !ok {
		return MilestonesResult{}, err
	}
	reliable := last-first >= c.ReliableChangeIndex
	csc := reliable && first <= c.ClinicalCutoff && last > c.ClinicalCutoff
	rc := reliable && !csc
	return MilestonesResult{
		CSCMet:     csc,
		RCMet:      rc,
		RCOrCSCMet: rc || csc,
	}, nil
}
