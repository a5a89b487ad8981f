package carousel

// DeltaMode is the unit of a wheel delta.
type DeltaMode int

const (
	DeltaPixel DeltaMode = iota
	DeltaLine
	DeltaPage
)

// WheelEvent is one wheel notch or trackpad scroll step. Positive DeltaY
// moves toward higher panel indices.
type WheelEvent struct {
	DeltaY float64
	Mode   DeltaMode
}

// pixels converts the delta to pixels.
func (e WheelEvent) pixels(p Params) float64 {
	switch e.Mode {
	case DeltaLine:
		return e.DeltaY * p.LineHeight
	case DeltaPage:
		return e.DeltaY * p.PageHeight
	}
	return e.DeltaY
}

// InputPort is what the UI layer drives. All x coordinates are relative to
// the viewport's left edge.
type InputPort interface {
	Wheel(ev WheelEvent)
	PointerDown(x float64)
	PointerMove(x float64)
	PointerUp(x float64)
	PointerCancel()
	Click(x float64)
	Resize(width float64)
}

// Surface is where the controller projects its position.
type Surface interface {
	// SetOffset translates the track so world position x is at the
	// viewport's left edge.
	SetOffset(x float64)
	// SetAnimated switches eased transitions on or off for later offsets.
	// Switching off finishes any transition in flight.
	SetAnimated(on bool)
	// OverlayWidth is the on-screen width of the open overlay, or 0 when
	// unknown.
	OverlayWidth() float64
}

var _ InputPort = (*Controller)(nil)
