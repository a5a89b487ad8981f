package ui

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/panelreel/internal/carousel"
	"github.com/depeter/panelreel/internal/config"
	"github.com/depeter/panelreel/internal/panels"
)

type fakeInput struct {
	x, y    int
	mouse   bool
	keys    map[ebiten.Key]bool
	wheelY  float64
	focused bool
}

func installInput(t *testing.T) *fakeInput {
	t.Helper()
	in := &fakeInput{keys: map[ebiten.Key]bool{}, focused: true}
	restore := SetInputForTest(
		func() (int, int) { return in.x, in.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && in.mouse },
		func(k ebiten.Key) bool { return in.keys[k] },
		func() (float64, float64) { return 0, in.wheelY },
		func() bool { return in.focused },
	)
	t.Cleanup(restore)
	return in
}

type screenRig struct {
	t   *testing.T
	s   *CarouselScreen
	in  *fakeInput
	now time.Time
	mid int // y inside the strip
}

func newScreenRig(t *testing.T) *screenRig {
	t.Helper()
	in := installInput(t)
	ps, err := panels.Static{Labels: config.DefaultLabels}.Load(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	r := &screenRig{t: t, in: in, now: time.Unix(1_700_000_000, 0)}
	r.s = NewCarouselScreen(ps, carousel.DefaultParams(), nil, DefaultKeys())
	r.s.sched.SetClock(func() time.Time { return r.now })

	sm := NewScreenManager()
	sm.SetSize(800, 720)
	sm.Push(r.s)
	top, h := r.s.strip()
	r.mid = int(top + h/2)
	return r
}

func (r *screenRig) frame() {
	r.t.Helper()
	r.now = r.now.Add(16 * time.Millisecond)
	if _, err := r.s.Update(); err != nil {
		r.t.Fatalf("Update: %v", err)
	}
	UpdateInputState()
}

func (r *screenRig) settle() {
	r.t.Helper()
	for i := 0; i < 600 && (r.s.ctrl.Moving() || r.s.sched.Pending() > 0); i++ {
		r.frame()
	}
	if r.s.ctrl.Moving() {
		r.t.Fatalf("still moving after 600 frames")
	}
}

func (r *screenRig) click(x, y int) {
	r.t.Helper()
	r.in.x, r.in.y, r.in.mouse = x, y, true
	r.frame()
	r.in.mouse = false
	r.frame()
}

func (r *screenRig) press(k ebiten.Key) {
	r.t.Helper()
	r.in.keys[k] = true
	r.frame()
	delete(r.in.keys, k)
	r.frame()
}

func TestScreenMountsCentred(t *testing.T) {
	r := newScreenRig(t)
	c := r.s.Controller()
	if c.Position() != 670 || r.s.track.Offset() != 670 {
		t.Fatalf("position=%v drawn=%v want 670", c.Position(), r.s.track.Offset())
	}
	if c.CenterIndex() != 0 {
		t.Fatalf("center=%d want 0", c.CenterIndex())
	}
}

func TestScreenCenterClickOpensAndCloseButtonCloses(t *testing.T) {
	r := newScreenRig(t)
	r.click(400, r.mid)
	idx, open := r.s.Controller().Overlay()
	if !open || idx != 0 {
		t.Fatalf("overlay=(%d,%v) want open(0)", idx, open)
	}
	if w := r.s.OverlayWidth(); w != 480 {
		t.Fatalf("overlay width=%v want 480", w)
	}

	cx, cy, cw, ch := r.s.closeRect()
	r.click(int(cx+cw/2), int(cy+ch/2))
	if _, open := r.s.Controller().Overlay(); open {
		t.Fatalf("close button did not close the overlay")
	}
}

func TestScreenIgnoresPressesOffTheStrip(t *testing.T) {
	r := newScreenRig(t)
	r.click(400, 5)
	if _, open := r.s.Controller().Overlay(); open {
		t.Fatalf("click above the strip opened the overlay")
	}
	r.click(50, 5)
	if r.s.Controller().Moving() {
		t.Fatalf("click above the strip navigated")
	}
}

func TestScreenDragKeepsCaptureOffTheStrip(t *testing.T) {
	r := newScreenRig(t)
	c := r.s.Controller()
	r.in.x, r.in.y, r.in.mouse = 500, r.mid, true
	r.frame()
	r.in.x, r.in.y = 300, 2 // dragged left and out of the strip
	r.frame()
	if !c.State().Dragging {
		t.Fatalf("drag not captured outside the strip")
	}
	if want := 670 + 200*0.7; c.Position() != want {
		t.Fatalf("position=%v want %v", c.Position(), want)
	}
	r.in.mouse = false
	r.frame()
	r.settle()
	if c.CenterIndex() != 1 {
		t.Fatalf("center=%d want 1", c.CenterIndex())
	}
	if _, open := c.Overlay(); open {
		t.Fatalf("drag release opened the overlay")
	}
}

func TestScreenFocusLossCancelsPress(t *testing.T) {
	r := newScreenRig(t)
	r.in.x, r.in.y, r.in.mouse = 400, r.mid, true
	r.frame()
	r.in.focused = false
	r.frame()
	r.in.mouse, r.in.focused = false, true
	r.frame()
	if _, open := r.s.Controller().Overlay(); open {
		t.Fatalf("cancelled press produced a click")
	}
}

func TestScreenEdgeClickNavigates(t *testing.T) {
	r := newScreenRig(t)
	r.click(780, r.mid)
	if v := r.s.Controller().Velocity(); v <= 0 {
		t.Fatalf("velocity=%v want forward impulse", v)
	}
	r.settle()
	if got := r.s.Controller().CenterIndex(); got != 1 {
		t.Fatalf("center=%d want 1", got)
	}
}

func TestScreenKeys(t *testing.T) {
	r := newScreenRig(t)
	c := r.s.Controller()

	r.press(ebiten.KeyEnter)
	if _, open := c.Overlay(); !open {
		t.Fatalf("Enter did not open the overlay")
	}
	r.press(ebiten.KeyEscape)
	if _, open := c.Overlay(); open {
		t.Fatalf("Escape did not close the overlay")
	}

	r.press(ebiten.KeyArrowLeft)
	if c.Velocity() >= 0 {
		t.Fatalf("left arrow velocity=%v want negative", c.Velocity())
	}
	r.settle()
	if c.CenterIndex() != 4 {
		t.Fatalf("center=%d want 4", c.CenterIndex())
	}
}

func TestScreenWheel(t *testing.T) {
	r := newScreenRig(t)
	r.in.x, r.in.y, r.in.wheelY = 400, r.mid, -1 // one notch down
	r.frame()
	r.in.wheelY = 0
	// 3 lines * 20px * 0.12, then one frame of friction
	if got, want := r.s.Controller().Velocity(), 7.2*0.92; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("velocity=%v want %v", got, want)
	}

	r.settle()
	r.in.y = 5
	r.in.wheelY = -1
	r.frame()
	if r.s.Controller().Velocity() != 0 {
		t.Fatalf("wheel off the strip moved the carousel")
	}
}

func TestScreenResizeKeepsCentre(t *testing.T) {
	r := newScreenRig(t)
	r.s.Resize(1000, 720)
	if got := r.s.Controller().Position(); got != 570 {
		t.Fatalf("position=%v want 570", got)
	}
	if r.s.track.Offset() != 570 {
		t.Fatalf("drawn offset=%v want 570", r.s.track.Offset())
	}
}

func TestScreenEdgeZoneFollowsOverlay(t *testing.T) {
	r := newScreenRig(t)
	r.s.Resize(1000, 720)
	if z := r.s.edgeZone(); z != 200 {
		t.Fatalf("closed edge zone=%v want 200", z)
	}
	r.click(500, r.mid)
	if _, open := r.s.Controller().Overlay(); !open {
		t.Fatalf("overlay did not open")
	}
	if z := r.s.edgeZone(); z != 220 {
		t.Fatalf("open edge zone=%v want 220", z)
	}
	// 230 is on the overlay, which covers the centre zone
	r.click(230, r.mid)
	if _, open := r.s.Controller().Overlay(); !open || r.s.Controller().Moving() {
		t.Fatalf("click on the overlay navigated")
	}
	// 210 is beside it
	r.click(210, r.mid)
	if _, open := r.s.Controller().Overlay(); open || r.s.Controller().Velocity() >= 0 {
		t.Fatalf("click beside the overlay did not close it and go back")
	}
}

func TestScreenExitStopsEverything(t *testing.T) {
	r := newScreenRig(t)
	r.click(780, r.mid)
	r.s.OnExit()
	if r.s.sched.Pending() != 0 || r.s.Controller().Moving() {
		t.Fatalf("work survived OnExit")
	}
	before := r.s.track.Offset()
	r.frame()
	r.frame()
	if r.s.track.Offset() != before {
		t.Fatalf("surface changed after OnExit")
	}
}

func TestScreenDebugLines(t *testing.T) {
	r := newScreenRig(t)
	lines := r.s.DebugLines()
	if len(lines) != 6 || lines[len(lines)-1] != "overlay: closed" {
		t.Fatalf("lines=%q", lines)
	}
}
