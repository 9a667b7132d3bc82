package progress

import "github.com/verte-zerg/orsprogress/internal/algorithm"

// Intake scores are centered on this value before the intake terms apply.
const interceptCenter = 20.0

// Trajectory is the expected treatment response for one first score.
type Trajectory struct {
	firstScore float64
	meetings   int
	coeffs     algorithm.Coefficients
}

// NewTrajectory builds a trajectory defined for meetings 1..meetings.
func NewTrajectory(firstScore float64, meetings int, c algorithm.Coefficients) Trajectory {
	return Trajectory{firstScore: firstScore, meetings: meetings, coeffs: c}
}

// ValueAt returns the expected score at a 1-based meeting. Meeting 1 is the
// intake score itself; meetings outside 1..meetings return 0. The plateau
// starts at meeting FlattenMeeting+1, so ValueAt(FlattenMeeting+1+k) equals
// Ceiling for every k >= 0.
func (t Trajectory) ValueAt(meeting int) float64 {
	if meeting < 1 || meeting > t.meetings {
		return 0
	}
	if meeting == 1 {
		return t.firstScore
	}
	return t.step(meeting - 1)
}

// Ceiling is the plateau value, reached at meeting FlattenMeeting+1 since
// meeting 1 is the intake.
func (t Trajectory) Ceiling() float64 {
	return t.step(t.coeffs.FlattenMeeting)
}

// step evaluates the cubic at i steps after intake, held flat past the
// flatten meeting.
func (t Trajectory) step(i int) float64 {
	if i > t.coeffs.FlattenMeeting {
		i = t.coeffs.FlattenMeeting
	}
	c := t.firstScore - interceptCenter
	k := t.coeffs
	intercept := k.InterceptMean + k.Intake*c
	linear := k.LinearMean + k.LinearByIntake*c
	quadratic := k.QuadraticMean + k.QuadraticByIntake*c
	cubic := k.CubicMean + k.CubicByIntake*c
	x := float64(i)
	return intercept + linear*x + quadratic*x*x + cubic*x*x*x
}
