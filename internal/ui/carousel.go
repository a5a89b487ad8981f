package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/panelreel/internal/cache"
	"github.com/depeter/panelreel/internal/carousel"
	"github.com/depeter/panelreel/internal/constants"
	"github.com/depeter/panelreel/internal/panels"
)

// Keys are the carousel key bindings.
type Keys struct {
	Previous ebiten.Key
	Next     ebiten.Key
	Open     ebiten.Key
	Close    ebiten.Key
}

func DefaultKeys() Keys {
	return Keys{
		Previous: ebiten.KeyArrowLeft,
		Next:     ebiten.KeyArrowRight,
		Open:     ebiten.KeyEnter,
		Close:    ebiten.KeyEscape,
	}
}

// CarouselScreen shows the looping panel strip. It translates ebiten input
// into controller calls and is the controller's rendering surface.
type CarouselScreen struct {
	ctrl   *carousel.Controller
	sched  *carousel.Scheduler
	params carousel.Params
	panels []panels.Panel
	images *cache.ImageCache // nil when no panel has artwork
	keys   Keys
	track  *track

	ptr       pointer
	capturing bool // the press started on the strip
	closing   bool // the press started on the overlay close button

	width, height int
}

var _ carousel.Surface = (*CarouselScreen)(nil)

func NewCarouselScreen(ps []panels.Panel, p carousel.Params, images *cache.ImageCache, keys Keys) *CarouselScreen {
	sched := carousel.NewScheduler()
	return &CarouselScreen{
		ctrl:   carousel.New(p, len(ps), sched),
		sched:  sched,
		params: p,
		panels: ps,
		images: images,
		keys:   keys,
		track:  newTrack(constants.TPS, p.TransitionDuration),
	}
}

func (s *CarouselScreen) Name() string { return "Carousel" }

func (s *CarouselScreen) OnEnter() {
	s.ctrl.Mount(s, float64(s.width))
}

func (s *CarouselScreen) OnExit() {
	s.ctrl.Unmount()
	s.capturing, s.closing = false, false
}

func (s *CarouselScreen) Resize(width, height int) {
	s.width, s.height = width, height
	s.ctrl.Resize(float64(width))
}

// Controller exposes the controller for the debug overlay and tests.
func (s *CarouselScreen) Controller() *carousel.Controller { return s.ctrl }

// SetOffset implements carousel.Surface.
func (s *CarouselScreen) SetOffset(x float64) { s.track.SetOffset(x) }

// SetAnimated implements carousel.Surface.
func (s *CarouselScreen) SetAnimated(on bool) { s.track.SetAnimated(on) }

// OverlayWidth implements carousel.Surface.
func (s *CarouselScreen) OverlayWidth() float64 {
	return min(OverlayMaxWidth, float64(s.width)*OverlayMaxRatio)
}

// strip is the vertical band the panels occupy. It is also the hit area
// for pointer and wheel input.
func (s *CarouselScreen) strip() (y, h float64) {
	h = s.params.PanelWidth * PanelHeightRatio
	if limit := float64(s.height) - 2*TrackMargin; h > limit {
		h = max(limit, 0)
	}
	return (float64(s.height) - h) / 2, h
}

func (s *CarouselScreen) onStrip(x, y int) bool {
	top, h := s.strip()
	return PointInRect(x, y, 0, top, float64(s.width), h)
}

func (s *CarouselScreen) overlayRect() (x, y, w, h float64) {
	top, sh := s.strip()
	w = s.OverlayWidth()
	return (float64(s.width) - w) / 2, top - OverlayPadding, w, sh + 2*OverlayPadding
}

func (s *CarouselScreen) closeRect() (x, y, w, h float64) {
	ox, oy, ow, _ := s.overlayRect()
	return ox + ow - CloseButtonSize - 10, oy + 10, CloseButtonSize, CloseButtonSize
}

func (s *CarouselScreen) overClose(x, y int) bool {
	if _, open := s.ctrl.Overlay(); !open {
		return false
	}
	cx, cy, cw, ch := s.closeRect()
	return PointInRect(x, y, cx, cy, cw, ch)
}

func (s *CarouselScreen) Update() (*ScreenTransition, error) {
	s.handlePointer()
	s.handleWheel()
	s.handleKeys()

	s.sched.Tick()
	s.track.Step()
	return nil, nil
}

func (s *CarouselScreen) handlePointer() {
	ev, x, y := s.ptr.poll()
	switch ev {
	case pointerPress:
		if s.overClose(x, y) {
			s.closing = true
			return
		}
		if !s.onStrip(x, y) {
			return
		}
		s.capturing = true
		s.ctrl.PointerDown(float64(x))

	case pointerMove:
		if s.capturing {
			s.ctrl.PointerMove(float64(x))
		}

	case pointerRelease:
		if s.closing {
			s.closing = false
			if s.overClose(x, y) {
				s.ctrl.CloseOverlay()
			}
			return
		}
		if !s.capturing {
			return
		}
		s.capturing = false
		s.ctrl.PointerUp(float64(x))
		if s.onStrip(x, y) {
			s.ctrl.Click(float64(x))
		}

	case pointerLost:
		s.closing = false
		if s.capturing {
			s.capturing = false
			s.ctrl.PointerCancel()
		}
	}
}

func (s *CarouselScreen) handleWheel() {
	_, dy := wheel()
	if dy == 0 {
		return
	}
	if x, y := cursorPosition(); !s.onStrip(x, y) {
		return
	}
	// ebiten reports scrolling down as negative
	s.ctrl.Wheel(carousel.WheelEvent{DeltaY: -dy * WheelLinesPerTick, Mode: carousel.DeltaLine})
}

func (s *CarouselScreen) handleKeys() {
	if keyRepeating(s.keys.Previous) {
		s.ctrl.Nudge(-1)
	}
	if keyRepeating(s.keys.Next) {
		s.ctrl.Nudge(1)
	}
	if KeyJustPressed(s.keys.Open) && !IsModifierPressed() {
		s.ctrl.OpenCenter()
	}
	if KeyJustPressed(s.keys.Close) {
		s.ctrl.CloseOverlay()
	}
}

func (s *CarouselScreen) Draw(dst *ebiten.Image) {
	if len(s.panels) == 0 {
		DrawTextCentered(dst, "No panels to show", float64(s.width)/2, float64(s.height)/2, FontSizeHeading, ColorTextSecondary)
		return
	}

	l := s.ctrl.Layout()
	top, h := s.strip()
	off := s.track.Offset()
	center := s.ctrl.CenterIndex()

	for slot := 0; slot < l.Slots(); slot++ {
		x := l.SlotX(slot) - off
		if x+l.PanelWidth < 0 || x > float64(s.width) {
			continue
		}
		idx := l.SlotPanel(slot)
		s.drawPanel(dst, s.panels[idx], x, top, l.PanelWidth, h, idx == center)
	}

	s.drawEdgeHints(dst, top, h)
	DrawTextCentered(dst, fmt.Sprintf("%d / %d", center+1, len(s.panels)),
		float64(s.width)/2, top+h+TrackMargin/2, FontSizeSmall, ColorTextMuted)

	s.drawOverlay(dst)
}

// drawEdgeHints marks the edge click zones while the cursor hovers one.
func (s *CarouselScreen) drawEdgeHints(dst *ebiten.Image, top, h float64) {
	x, y := cursorPosition()
	if s.ptr.down || !s.onStrip(x, y) {
		return
	}
	zone := s.edgeZone()
	cy := float32(top + h/2)
	switch {
	case float64(x) < zone:
		drawChevron(dst, float32(zone/2), cy, 18, -1, ColorText)
	case float64(x) > float64(s.width)-zone:
		drawChevron(dst, float32(float64(s.width)-zone/2), cy, 18, 1, ColorText)
	}
}

// edgeZone is the width of each navigation zone, matching the controller's
// hit test.
func (s *CarouselScreen) edgeZone() float64 {
	w := float64(s.width)
	if _, open := s.ctrl.Overlay(); open {
		return max(0, (w-s.OverlayWidth())/2)
	}
	return w * s.params.EdgeFraction
}

func (s *CarouselScreen) drawPanel(dst *ebiten.Image, p panels.Panel, x, y, w, h float64, focused bool) {
	if focused {
		pad := float32(PanelFocusPad)
		vector.StrokeRect(dst, float32(x)-pad, float32(y)-pad, float32(w)+2*pad, float32(h)+2*pad, 3, ColorFocusBorder, true)
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorSurface, true)

	if img := s.artwork(p); img != nil {
		drawFitted(dst, img, x, y, w, h)
		vector.DrawFilledRect(dst, float32(x), float32(y+h-48), float32(w), 48, ColorOverlay, false)
	}

	clr := ColorTextSecondary
	if focused {
		clr = ColorText
	}
	label := FitText(p.Label, w-24, FontSizeBody)
	DrawTextCentered(dst, label, x+w/2, y+h-24, FontSizeBody, clr)
}

func (s *CarouselScreen) drawOverlay(dst *ebiten.Image) {
	idx, open := s.ctrl.Overlay()
	if !open {
		return
	}
	p := s.panels[idx]
	ox, oy, ow, oh := s.overlayRect()

	vector.DrawFilledRect(dst, float32(ox), float32(oy), float32(ow), float32(oh), ColorSurfaceHover, true)
	vector.StrokeRect(dst, float32(ox), float32(oy), float32(ow), float32(oh), 2, ColorAccent, true)

	cx, cy, cw, ch := s.closeRect()
	vector.DrawFilledRect(dst, float32(cx), float32(cy), float32(cw), float32(ch), ColorSurface, true)
	drawCloseIcon(dst, float32(cx+cw/2), float32(cy+ch/2), float32(cw/4), ColorText)

	x := ox + OverlayPadding
	y := oy + OverlayPadding
	inner := ow - 2*OverlayPadding
	if img := s.artwork(p); img != nil {
		thumb := inner * 0.35
		drawFitted(dst, img, x, y, thumb, thumb*PanelHeightRatio)
		x += thumb + OverlayPadding
		inner -= thumb + OverlayPadding
	}

	DrawText(dst, FitText(p.Label, inner-CloseButtonSize, FontSizeTitle), x, y, FontSizeTitle, ColorText)
	y += FontSizeTitle * 1.6
	DrawText(dst, fmt.Sprintf("Panel %d of %d", idx+1, len(s.panels)), x, y, FontSizeSmall, ColorTextMuted)
	y += FontSizeSmall * 2
	if p.Detail != "" {
		DrawTextWrapped(dst, p.Detail, x, y, inner, oy+oh-OverlayPadding-y, FontSizeBody, ColorTextSecondary)
	}
}

func (s *CarouselScreen) artwork(p panels.Panel) *ebiten.Image {
	if s.images == nil || p.ImageURL == "" {
		return nil
	}
	if img := s.images.Get(p.ImageURL); img != nil {
		return img
	}
	s.images.Request(p.ImageURL)
	return nil
}

// drawFitted draws img scaled to cover the w×h box, cropping the overflow.
func drawFitted(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := max(w/iw, h/ih)
	sw, sh := w/scale, h/scale
	x0 := b.Min.X + int((iw-sw)/2)
	y0 := b.Min.Y + int((ih-sh)/2)
	sub := img.SubImage(image.Rect(x0, y0, x0+int(sw), y0+int(sh))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, op)
}

func (s *CarouselScreen) DebugLines() []string {
	st := s.ctrl.State()
	lines := []string{
		fmt.Sprintf("position: %.1f  velocity: %.2f", st.Position, st.Velocity),
		fmt.Sprintf("viewport: %.0f  center: %d", st.Viewport, st.Center),
		fmt.Sprintf("moving: %v  dragging: %v  animated: %v", st.Moving, st.Dragging, st.Animated),
		fmt.Sprintf("flick stacks: %d  timers: %d", st.Stacks, s.sched.Pending()),
		fmt.Sprintf("drawn offset: %.1f", s.track.Offset()),
	}
	if st.OverlayOpen {
		lines = append(lines, fmt.Sprintf("overlay: open(%d)", st.OverlayAt))
	} else {
		lines = append(lines, "overlay: closed")
	}
	return lines
}
