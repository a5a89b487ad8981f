package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// track is the drawn horizontal offset of the carousel strip. With
// animation off it follows SetOffset exactly; with animation on it eases
// toward the target on a critically damped spring that settles within the
// transition duration.
type track struct {
	spring   harmonica.Spring
	offset   float64
	vel      float64
	target   float64
	animated bool
}

func newTrack(fps int, transition time.Duration) *track {
	// e^(-wt)(1+wt) at wt=6 leaves under 2% of the distance.
	freq := 6 / transition.Seconds()
	return &track{spring: harmonica.NewSpring(harmonica.FPS(fps), freq, 1.0)}
}

func (t *track) SetOffset(x float64) {
	t.target = x
	if !t.animated {
		t.offset, t.vel = x, 0
	}
}

// SetAnimated(false) lands an in-flight transition on its target.
func (t *track) SetAnimated(on bool) {
	if !on {
		t.offset, t.vel = t.target, 0
	}
	t.animated = on
}

// Step advances one frame.
func (t *track) Step() {
	if !t.animated || t.offset == t.target {
		return
	}
	t.offset, t.vel = t.spring.Update(t.offset, t.vel, t.target)
	if math.Abs(t.offset-t.target) < 0.01 && math.Abs(t.vel) < 0.01 {
		t.offset, t.vel = t.target, 0
	}
}

func (t *track) Offset() float64 { return t.offset }
func (t *track) Target() float64 { return t.target }
