package carousel

import "math"

// Wheel turns a wheel step into a velocity impulse and re-arms the idle
// timer that settles the strip once scrolling stops.
func (c *Controller) Wheel(ev WheelEvent) {
	if !c.ready() || c.dragging {
		return
	}
	c.velocity += ev.pixels(c.params) * c.params.WheelGain
	c.kick()

	c.wheelIdle.Stop()
	c.wheelIdle = c.sched.AfterFunc(c.params.WheelIdle, func() {
		c.wheelIdle = nil
		if !c.momentum.Running() {
			c.snapToNearest()
		}
	})
}

// PointerDown records the press. Nothing moves until PointerMove crosses
// the drag threshold.
func (c *Controller) PointerDown(x float64) {
	if !c.ready() {
		return
	}
	c.pressed = true
	c.dragging = false
	c.suppressClick = false
	c.pressX, c.lastX = x, x
	c.pressAt = c.sched.Now()
	c.dragOrigin = c.position
}

// PointerMove drags the strip once the press has moved far enough to not
// be a click.
func (c *Controller) PointerMove(x float64) {
	if !c.pressed || !c.ready() {
		return
	}
	c.lastX = x
	dx := x - c.pressX
	if !c.dragging {
		if math.Abs(dx) <= c.params.DragThreshold {
			return
		}
		c.beginDrag(dx)
	}
	c.position = c.dragOrigin - dx*c.params.DragGain
	c.dragOrigin += c.correctLoop()
	c.render()
}

func (c *Controller) beginDrag(dx float64) {
	c.dragging = true
	if c.momentum.Stop() {
		// carry on from where momentum left the strip
		c.dragOrigin = c.position + dx*c.params.DragGain
	}
	c.velocity = 0
	c.wheelIdle.Stop()
	c.wheelIdle = nil
	c.overlay.close()
	c.setAnimated(false)
}

// PointerUp ends a press. A press that never dragged is a tap and settles
// in place; a drag becomes a flick.
func (c *Controller) PointerUp(x float64) {
	if !c.pressed {
		return
	}
	c.pressed = false
	if !c.ready() {
		c.dragging = false
		return
	}
	if !c.dragging {
		if c.momentum.Stop() {
			c.velocity = 0
			c.suppressClick = true
		}
		c.snapToNearest()
		return
	}
	c.dragging = false
	c.suppressClick = true

	dir := sign(c.position - c.dragOrigin)
	if dir == 0 {
		c.snapToNearest()
		return
	}
	c.flick(dir)
}

// PointerCancel ends a press without producing a click.
func (c *Controller) PointerCancel() {
	if !c.pressed {
		return
	}
	c.PointerUp(c.lastX)
	c.suppressClick = true
}

// flick launches momentum in dir. Flicks that start within StackWindow of
// the previous one in the same direction stack extra speed, up to
// MaxStacks.
func (c *Controller) flick(dir int) {
	if dir == c.flickDir && !c.flickAt.IsZero() && c.pressAt.Sub(c.flickAt) <= c.params.StackWindow {
		c.flickStacks = min(c.flickStacks+1, c.params.MaxStacks)
	} else {
		c.flickStacks = 0
	}
	c.flickDir = dir
	c.flickAt = c.sched.Now()

	c.velocity = float64(dir) * (c.params.FlickBase + float64(c.flickStacks)*c.params.FlickStack)
	c.kick()
}

// Click opens the overlay from the centre zone or navigates from an edge
// zone. Clicks that end a drag are ignored.
func (c *Controller) Click(x float64) {
	if c.suppressClick {
		c.suppressClick = false
		return
	}
	if !c.ready() || c.dragging {
		return
	}
	vw := c.viewport
	edge := c.edgeFraction()
	switch {
	case x < edge*vw:
		c.Nudge(-1)
	case x > vw*(1-edge):
		c.Nudge(1)
	default:
		c.OpenCenter()
	}
}

// edgeFraction is the share of the viewport on each side that navigates.
// With the overlay open it matches the space beside the overlay.
func (c *Controller) edgeFraction() float64 {
	if _, open := c.overlay.IsOpen(); open && c.surface != nil {
		if w := c.surface.OverlayWidth(); w > 0 {
			f := (c.viewport - w) / 2 / c.viewport
			return math.Max(0, math.Min(0.5, f))
		}
	}
	return c.params.EdgeFraction
}

// Nudge pushes the strip one panel toward dir (+1 next, -1 previous).
// Nudges in quick succession are boosted so repeated taps build speed.
func (c *Controller) Nudge(dir int) {
	if !c.ready() || c.dragging || dir == 0 {
		return
	}
	dir = sign(float64(dir))
	now := c.sched.Now()
	impulse := c.params.ClickImpulse
	if !c.nudgeAt.IsZero() && now.Sub(c.nudgeAt) <= c.params.ClickWindow {
		impulse *= c.params.ClickBoost
	}
	c.nudgeAt = now

	if c.velocity*float64(dir) < 0 {
		c.velocity *= c.params.ClickReverse
	}
	c.velocity += float64(dir) * impulse
	c.kick()
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
