package carousel

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidParams is wrapped by Params.Validate.
var ErrInvalidParams = errors.New("invalid carousel params")

// Params holds every tuning value of the carousel. None of them change while
// a controller is mounted.
type Params struct {
	PanelWidth  float64
	Gap         float64
	BufferCount int

	// SnapBias is subtracted from the centre before rounding to an index.
	// PanelWidth/2 makes PositionToIndex pick the panel whose visual centre
	// is nearest to the viewport centre.
	SnapBias float64

	Friction    float64 // per-frame velocity multiplier
	MinVelocity float64 // momentum stops below this, px/frame

	WheelGain  float64
	LineHeight float64 // px per wheel line
	PageHeight float64 // px per wheel page
	WheelIdle  time.Duration

	DragThreshold float64
	DragGain      float64

	FlickBase   float64
	FlickStack  float64
	MaxStacks   int
	StackWindow time.Duration

	ClickImpulse float64
	ClickBoost   float64
	ClickReverse float64
	ClickWindow  time.Duration

	EdgeFraction       float64
	TransitionDuration time.Duration
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		PanelWidth:  280,
		Gap:         30,
		BufferCount: 3,
		SnapBias:    140,

		Friction:    0.92,
		MinVelocity: 0.1,

		WheelGain:  0.12,
		LineHeight: 20,
		PageHeight: 200,
		WheelIdle:  150 * time.Millisecond,

		DragThreshold: 5,
		DragGain:      0.7,

		// 14 px/frame coasts ~174px at 0.92 friction: past half a pitch,
		// short of one and a half.
		FlickBase:   14,
		FlickStack:  8,
		MaxStacks:   3,
		StackWindow: 260 * time.Millisecond,

		ClickImpulse: 14,
		ClickBoost:   1.5,
		ClickReverse: 0.5,
		ClickWindow:  300 * time.Millisecond,

		EdgeFraction:       0.2,
		TransitionDuration: 300 * time.Millisecond,
	}
}

// Pitch is panel width plus gap.
func (p Params) Pitch() float64 { return p.PanelWidth + p.Gap }

// MaxFlickVelocity is the largest speed a flick can produce.
func (p Params) MaxFlickVelocity() float64 {
	return p.FlickBase + float64(p.MaxStacks)*p.FlickStack
}

// Validate reports the first out-of-range field.
func (p Params) Validate() error {
	switch {
	case p.PanelWidth <= 0:
		return fmt.Errorf("%w: panel width %v must be positive", ErrInvalidParams, p.PanelWidth)
	case p.Gap < 0:
		return fmt.Errorf("%w: gap %v must not be negative", ErrInvalidParams, p.Gap)
	case p.BufferCount < 1:
		return fmt.Errorf("%w: buffer count %d must be at least 1", ErrInvalidParams, p.BufferCount)
	case p.SnapBias < 0 || p.SnapBias >= p.Pitch()/2+p.PanelWidth/2:
		return fmt.Errorf("%w: snap bias %v out of range", ErrInvalidParams, p.SnapBias)
	case p.Friction <= 0 || p.Friction >= 1:
		return fmt.Errorf("%w: friction %v must be in (0,1)", ErrInvalidParams, p.Friction)
	case p.MinVelocity <= 0:
		return fmt.Errorf("%w: min velocity %v must be positive", ErrInvalidParams, p.MinVelocity)
	case p.DragGain <= 0:
		return fmt.Errorf("%w: drag gain %v must be positive", ErrInvalidParams, p.DragGain)
	case p.DragThreshold < 0:
		return fmt.Errorf("%w: drag threshold %v must not be negative", ErrInvalidParams, p.DragThreshold)
	case p.FlickBase <= 0 || p.FlickStack < 0 || p.MaxStacks < 0:
		return fmt.Errorf("%w: flick base/stack/max must be positive", ErrInvalidParams)
	case p.ClickImpulse <= 0 || p.ClickBoost <= 0 || p.ClickReverse < 0:
		return fmt.Errorf("%w: click impulse/boost/reverse out of range", ErrInvalidParams)
	case p.EdgeFraction < 0 || p.EdgeFraction > 0.5:
		return fmt.Errorf("%w: edge fraction %v must be in [0,0.5]", ErrInvalidParams, p.EdgeFraction)
	case p.WheelIdle <= 0 || p.TransitionDuration <= 0:
		return fmt.Errorf("%w: wheel idle and transition durations must be positive", ErrInvalidParams)
	}
	return nil
}
