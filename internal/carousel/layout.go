package carousel

import "math"

// Layout is the fixed geometry of one carousel: Count real panels of equal
// width, padded on both sides by Buffer duplicated panels.
type Layout struct {
	PanelWidth float64
	Gap        float64
	Buffer     int
	Count      int
	SnapBias   float64
}

// NewLayout builds the geometry for count panels.
func NewLayout(p Params, count int) Layout {
	return Layout{
		PanelWidth: p.PanelWidth,
		Gap:        p.Gap,
		Buffer:     p.BufferCount,
		Count:      count,
		SnapBias:   p.SnapBias,
	}
}

func (l Layout) Pitch() float64       { return l.PanelWidth + l.Gap }
func (l Layout) BufferWidth() float64 { return float64(l.Buffer) * l.Pitch() }
func (l Layout) RealWidth() float64   { return float64(l.Count) * l.Pitch() }

// Slots is the length of the rendered sequence.
func (l Layout) Slots() int {
	if l.Count == 0 {
		return 0
	}
	return l.Count + 2*l.Buffer
}

// IndexToPosition returns the track offset that centres panel index in a
// viewport of the given width. index may lie outside [0, Count); the result
// then points into the buffer.
func (l Layout) IndexToPosition(index int, viewport float64) float64 {
	full := l.Pitch()
	return l.BufferWidth() + float64(index)*full - viewport/2 + full/2 - l.Gap/2
}

// PositionToIndex returns the unwrapped index of the panel nearest to the
// viewport centre. Halves round up so that the result shifts by exactly N
// when the position shifts by one real width.
func (l Layout) PositionToIndex(position, viewport float64) int {
	center := position + viewport/2 - l.BufferWidth() - l.SnapBias
	return int(math.Floor(center/l.Pitch() + 0.5))
}

// Wrap maps any index into [0, Count).
func (l Layout) Wrap(index int) int {
	if l.Count <= 0 {
		return 0
	}
	return ((index % l.Count) + l.Count) % l.Count
}

// SlotPanel returns the real panel shown in rendered slot.
func (l Layout) SlotPanel(slot int) int {
	return l.Wrap(slot - l.Buffer)
}

// SlotX is the left edge of a rendered slot in world coordinates.
func (l Layout) SlotX(slot int) float64 {
	return float64(slot) * l.Pitch()
}

// Rendered lays out items as buffer trailing items, all items, then buffer
// leading items.
func Rendered[T any](items []T, buffer int) []T {
	n := len(items)
	if n == 0 {
		return nil
	}
	l := Layout{Buffer: buffer, Count: n}
	out := make([]T, l.Slots())
	for i := range out {
		out[i] = items[l.SlotPanel(i)]
	}
	return out
}
