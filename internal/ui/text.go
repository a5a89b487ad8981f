package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  = make(map[float64]*text.GoTextFace)
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	clear(fontFaces)
	return nil
}

func face(size float64) *text.GoTextFace {
	if f, ok := fontFaces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: fontSource, Size: size}
	fontFaces[size] = f
	return f
}

func DrawText(dst *ebiten.Image, txt string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face(size), op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, face(size), 0)
}

// FitText shortens txt with an ellipsis until it fits maxWidth.
func FitText(txt string, maxWidth, size float64) string {
	if w, _ := MeasureText(txt, size); w <= maxWidth {
		return txt
	}
	r := []rune(txt)
	for len(r) > 0 {
		r = r[:len(r)-1]
		s := strings.TrimRight(string(r), " ") + "…"
		if w, _ := MeasureText(s, size); w <= maxWidth {
			return s
		}
	}
	return ""
}

// DrawTextWrapped draws word-wrapped text and returns the height used.
// Lines past maxHeight are dropped.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth, maxHeight, size float64, clr color.Color) float64 {
	lineHeight := size * 1.4
	words := strings.Fields(txt)
	if len(words) == 0 {
		return 0
	}

	cy := y
	emit := func(line string) bool {
		if cy+lineHeight-y > maxHeight {
			return false
		}
		DrawText(dst, line, x, cy, size, clr)
		cy += lineHeight
		return true
	}

	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if w, _ := MeasureText(candidate, size); w > maxWidth {
			if !emit(line) {
				return cy - y
			}
			line = word
		} else {
			line = candidate
		}
	}
	emit(line)
	return cy - y
}
