package burst

import (
	"math"
	"math/rand/v2"
)

// Particle is one decorative spark. Angle is in radians, Magnitude is the
// distance from the button in grid cells.
type Particle struct {
	ID        int
	Angle     float64
	Magnitude float64
}

// Spread returns n particles evenly spaced around the circle starting at
// offset. jitter is a fraction of the spacing clamped below one half, so
// neighbouring angles never cross or coincide. rng may be nil when jitter is 0.
func Spread(n int, magnitude, jitter float64, offset int, rng *rand.Rand) []Particle {
	if n <= 0 {
		return nil
	}
	spacing := 2 * math.Pi / float64(n)
	jitter = math.Max(0, math.Min(jitter, maxJitter))

	particles := make([]Particle, n)
	for i := range particles {
		angle := spacing * float64(i)
		if jitter > 0 && rng != nil {
			angle += (rng.Float64()*2 - 1) * jitter * spacing
		}
		particles[i] = Particle{ID: offset + i, Angle: angle, Magnitude: magnitude}
	}
	return particles
}

// maxJitter keeps displaced neighbours strictly apart.
const maxJitter = 0.49

// Position maps a particle to column and row offsets on a character grid.
// Rows are halved because terminal cells are about twice as tall as wide.
func (p Particle) Position() (dx, dy int) {
	dx = int(math.Round(math.Cos(p.Angle) * p.Magnitude))
	dy = int(math.Round(math.Sin(p.Angle) * p.Magnitude / 2))
	return dx, dy
}
