package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawCloseIcon draws an X centred at (cx, cy) with the given half size.
func drawCloseIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy-r, cx+r, cy+r, 2, clr, true)
	vector.StrokeLine(dst, cx-r, cy+r, cx+r, cy-r, 2, clr, true)
}

// drawChevron draws a chevron pointing left (dir < 0) or right.
func drawChevron(dst *ebiten.Image, cx, cy, r float32, dir int, clr color.Color) {
	if dir == 0 {
		return
	}
	d := float32(dir)
	vector.StrokeLine(dst, cx-d*r/2, cy-r, cx+d*r/2, cy, 3, clr, true)
	vector.StrokeLine(dst, cx+d*r/2, cy, cx-d*r/2, cy+r, 3, clr, true)
}
