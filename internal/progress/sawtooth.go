package progress

// Sawtooth thresholds.
const (
	// PointChange is the smallest step that counts as a swing.
	PointChange = 6.0
	// DirectionChanges is the number of swings that marks a sawtooth.
	DirectionChanges = 4
)

// SawtoothResult describes large alternating swings in a series.
type SawtoothResult struct {
	DirectionChanges int
	Has              bool
	Teeth            int
}

type direction int

const (
	directionNone direction = iota
	directionUp
	directionDown
)

// DetectSawtooth counts direction changes between consecutive swings of at
// least PointChange. Smaller steps are skipped and do not reset direction.
func DetectSawtooth(scores []float64) SawtoothResult {
	dir := directionNone
	changes := 0
	for i := 0; i+1 < len(scores); i++ {
		delta := scores[i+1] - scores[i]
		if delta < 0 {
			if -delta < PointChange {
				continue
			}
			if dir != directionDown {
				changes++
				dir = directionDown
			}
			continue
		}
		if delta < PointChange {
			continue
		}
		if dir != directionUp {
			changes++
			dir = directionUp
		}
	}
	teeth := changes - 1
	if teeth < 0 {
		teeth = 0
	}
	return SawtoothResult{
		DirectionChanges: changes,
		Has:              len(scores) >= DirectionChanges+1 && changes >= DirectionChanges,
		Teeth:            teeth,
	}
}
