package carousel

import (
	"math"
	"time"
)

// Controller owns the motion state of one mounted carousel. It is not safe
// for concurrent use; every method must be called from the frame loop.
type Controller struct {
	params Params
	layout Layout
	sched  *Scheduler

	surface  Surface
	viewport float64

	position float64
	velocity float64
	animated bool
	center   int
	overlay  Overlay

	momentum  *Loop
	wheelIdle *Timer
	settle    *Timer

	// pointer
	pressed       bool
	dragging      bool
	pressX        float64
	lastX         float64
	pressAt       time.Time
	dragOrigin    float64
	suppressClick bool

	flickStacks int
	flickDir    int
	flickAt     time.Time
	nudgeAt     time.Time
}

// New creates an unmounted controller for count panels.
func New(p Params, count int, sched *Scheduler) *Controller {
	c := &Controller{
		params: p,
		layout: NewLayout(p, count),
		sched:  sched,
	}
	c.momentum = sched.NewLoop(c.frame)
	return c
}

// State is a read-only snapshot of the controller.
type State struct {
	Position    float64
	Velocity    float64
	Viewport    float64
	Center      int
	OverlayOpen bool
	OverlayAt   int
	Moving      bool
	Dragging    bool
	Animated    bool
	Stacks      int
}

func (c *Controller) State() State {
	idx, open := c.overlay.IsOpen()
	return State{
		Position:    c.position,
		Velocity:    c.velocity,
		Viewport:    c.viewport,
		Center:      c.center,
		OverlayOpen: open,
		OverlayAt:   idx,
		Moving:      c.momentum.Running(),
		Dragging:    c.dragging,
		Animated:    c.animated,
		Stacks:      c.flickStacks,
	}
}

func (c *Controller) Layout() Layout   { return c.layout }
func (c *Controller) Position() float64 { return c.position }
func (c *Controller) Velocity() float64 { return c.velocity }

// CenterIndex is the panel published by the last snap, in [0, N).
func (c *Controller) CenterIndex() int { return c.center }

// Overlay returns the overlay state.
func (c *Controller) Overlay() (index int, open bool) { return c.overlay.IsOpen() }

// Moving reports whether momentum is running or a drag is in progress.
func (c *Controller) Moving() bool { return c.momentum.Running() || c.dragging }

// Mount attaches the surface and centres panel 0. A zero width defers the
// placement to the first Resize with a positive width.
func (c *Controller) Mount(s Surface, width float64) {
	c.surface = s
	c.center = 0
	c.viewport = 0
	c.velocity = 0
	c.overlay.close()
	c.setAnimated(false)
	c.Resize(width)
}

// Unmount cancels all pending work and detaches the surface. Every method is
// a no-op afterwards until the next Mount.
func (c *Controller) Unmount() {
	c.sched.Stop()
	c.wheelIdle, c.settle = nil, nil
	c.surface = nil
	c.pressed, c.dragging, c.suppressClick = false, false, false
	c.velocity = 0
}

func (c *Controller) ready() bool {
	return c.surface != nil && c.viewport > 0 && c.layout.Count > 0
}

// Resize re-lays out for a new viewport width without animation, keeping
// the same point of the track under the viewport centre.
func (c *Controller) Resize(width float64) {
	if c.surface == nil || width <= 0 || c.layout.Count == 0 {
		return
	}
	c.setAnimated(false)
	if c.viewport <= 0 {
		c.viewport = width
		c.position = c.layout.IndexToPosition(c.center, width)
		c.render()
		return
	}
	shift := (c.viewport - width) / 2
	c.viewport = width
	c.position += shift
	c.dragOrigin += shift
	c.dragOrigin += c.correctLoop()
	c.render()
}

// CloseOverlay closes the overlay if open.
func (c *Controller) CloseOverlay() bool {
	return c.overlay.close()
}

// OpenCenter opens the overlay on the centred panel when at rest.
func (c *Controller) OpenCenter() bool {
	if !c.ready() || c.Moving() {
		return false
	}
	idx := c.layout.Wrap(c.layout.PositionToIndex(c.position, c.viewport))
	if !c.overlay.openAt(idx, c.layout.Count) {
		return false
	}
	c.center = idx
	return true
}

func (c *Controller) render() {
	if c.surface != nil {
		c.surface.SetOffset(c.position)
	}
}

func (c *Controller) setAnimated(on bool) {
	c.animated = on
	if c.surface != nil {
		c.surface.SetAnimated(on)
	}
}

// correctLoop teleports the position by whole real-sequence widths until
// it is back near the buffer zone. It returns the shift applied.
func (c *Controller) correctLoop() float64 {
	if c.layout.Count == 0 {
		return 0
	}
	threshold := c.viewport / 2
	lo := c.layout.BufferWidth() - threshold
	hi := c.layout.BufferWidth() + c.layout.RealWidth() - threshold
	span := c.layout.RealWidth()

	var shift float64
	for c.position+shift < lo {
		shift += span
	}
	for c.position+shift > hi {
		shift -= span
	}
	if shift == 0 {
		return 0
	}

	prev := c.animated
	c.setAnimated(false)
	c.position += shift
	c.render()
	c.setAnimated(prev)
	return shift
}

// snapToNearest eases to the canonical offset of the nearest panel and
// publishes it as the centre.
func (c *Controller) snapToNearest() {
	if !c.ready() {
		return
	}
	raw := c.layout.PositionToIndex(c.position, c.viewport)
	c.setAnimated(true)
	c.position = c.layout.IndexToPosition(raw, c.viewport)
	c.render()
	c.center = c.layout.Wrap(raw)

	c.settle.Stop()
	c.settle = c.sched.AfterFunc(c.params.TransitionDuration, func() {
		c.settle = nil
		c.setAnimated(false)
	})
}

// kick closes the overlay and starts momentum if it is not running.
func (c *Controller) kick() {
	c.overlay.close()
	c.momentum.Start()
}

// frame is one momentum step.
func (c *Controller) frame() bool {
	if !c.ready() {
		c.velocity = 0
		return false
	}
	c.setAnimated(false)
	c.position += c.velocity
	c.velocity *= c.params.Friction
	c.correctLoop()
	c.render()
	if math.Abs(c.velocity) > c.params.MinVelocity {
		return true
	}
	c.velocity = 0
	c.snapToNearest()
	return false
}
