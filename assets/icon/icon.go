package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	primary    = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	accent     = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	darkBG     = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	sidePanel  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	glow       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0x50}
	arrowColor = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xC0}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	drawStrip(img, s)
	drawArrows(img, s)
	return img
}

// drawStrip draws three panels with the middle one raised and outlined,
// the side ones cut off by the icon edge like a looping strip.
func drawStrip(img *image.RGBA, s float64) {
	panelW := s * 0.34
	panelH := s * 0.56
	gap := s * 0.06
	top := (s - panelH) / 2
	mid := (s - panelW) / 2

	for _, dx := range []float64{-1, 1} {
		x := mid + dx*(panelW+gap)
		fillRoundedRect(img, x, top+s*0.05, panelW, panelH-s*0.10, s*0.05, sidePanel)
	}

	fillCircle(img, s/2, s/2, panelH*0.62, glow)
	fillRoundedRect(img, mid-s*0.025, top-s*0.025, panelW+s*0.05, panelH+s*0.05, s*0.06, primary)
	fillRoundedRect(img, mid, top, panelW, panelH, s*0.05, accent)

	// label bar on the centre panel
	fillRoundedRect(img, mid+panelW*0.15, top+panelH*0.72, panelW*0.7, panelH*0.08, s*0.015, arrowColor)
}

// drawArrows draws small chevrons under the strip hinting at motion.
func drawArrows(img *image.RGBA, s float64) {
	y := s * 0.90
	size := s * 0.05
	for _, c := range []struct{ x, dir float64 }{{s * 0.30, -1}, {s * 0.70, 1}} {
		steps := int(size*2) + 1
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			// two strokes meeting at the tip
			tipX := c.x + c.dir*size
			fillCircle(img, tipX-c.dir*size*2*t, y-size+size*t, s*0.012, arrowColor)
			fillCircle(img, tipX-c.dir*size*2*t, y+size-size*t, s*0.012, arrowColor)
		}
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
