// Package simulate builds synthetic rating series.
package simulate

import (
	"math"
	"math/rand"
	"time"

	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/progress"
)

// Generator produces randomized rating series.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed, or with the current time when
// seed is 0.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// AlongTrajectory follows the expected trajectory with uniform noise of at
// most noise points. The intake score is kept exactly.
func (g *Generator) AlongTrajectory(t progress.Trajectory, meetings int, noise float64) []float64 {
	if meetings <= 0 {
		return nil
	}
	scores := make([]float64, meetings)
	scores[0] = t.ValueAt(1)
	for m := 2; m <= meetings; m++ {
		v := t.ValueAt(m)
		if noise > 0 {
			v += (g.rnd.Float64()*2 - 1) * noise
		}
		scores[m-1] = clampScore(v)
	}
	return scores
}

// Sawtooth alternates around start by amplitude, with a little jitter that
// never shrinks a swing.
func (g *Generator) Sawtooth(start, amplitude float64, meetings int) []float64 {
	if meetings <= 0 {
		return nil
	}
	scores := make([]float64, meetings)
	for i := range scores {
		v := start
		if i%2 == 1 {
			v += amplitude + g.rnd.Float64()
		}
		scores[i] = clampScore(v)
	}
	return scores
}

func clampScore(v float64) float64 {
	v = math.Max(model.MinScore, math.Min(model.MaxScore, v))
	return progress.Round(v, 1)
}
