package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay flips the overlay when key goes down.
func ToggleDebugOverlay(key ebiten.Key) {
	if KeyJustPressed(key) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the current screen's debug lines if visible.
func DrawDebugOverlay(dst *ebiten.Image, s Screen) {
	if !debugOverlayVisible || s == nil {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
		panelW  = 340.0
	)

	lines := []string{fmt.Sprintf("screen: %s  tps: %.0f", s.Name(), ebiten.ActualTPS())}
	if dl, ok := s.(DebugLiner); ok {
		lines = append(lines, dl.DebugLines()...)
	}

	panelH := float64(len(lines)+1)*lineH + padY*2
	px := float64(dst.Bounds().Dx()) - panelW - marginR
	py := marginT
	vector.DrawFilledRect(dst, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(dst, "Debug", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, l := range lines {
		DrawText(dst, l, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
