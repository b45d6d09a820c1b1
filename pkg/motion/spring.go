package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FrameRate is the frame rate cosmetic transitions animate at.
const FrameRate = 30

// FrameInterval is the delay between animation frames.
var FrameInterval = time.Second / FrameRate

const settleEpsilon = 0.01

// Spring animates a scalar toward a target with a damped harmonic spring.
type Spring struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

// NewSpring creates a spring stepping at FrameRate.
func NewSpring(frequency, damping float64) Spring {
	return Spring{spring: harmonica.NewSpring(harmonica.FPS(FrameRate), frequency, damping)}
}

// Kick jumps to from and starts moving toward to.
func (s *Spring) Kick(from, to float64) {
	s.position = from
	s.velocity = 0
	s.target = to
}

// Step advances one frame and returns the new position.
func (s *Spring) Step() float64 {
	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
	return s.position
}

// Snap ends the animation at the target.
func (s *Spring) Snap() {
	s.position = s.target
	s.velocity = 0
}

// Value returns the current position.
func (s Spring) Value() float64 {
	return s.position
}

// Settled reports whether the spring has come to rest.
func (s Spring) Settled() bool {
	return math.Abs(s.position-s.target) < settleEpsilon && math.Abs(s.velocity) < settleEpsilon
}
