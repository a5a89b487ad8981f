package carousel

// Overlay is the detail overlay state: closed, or open on one panel.
type Overlay struct {
	open  bool
	index int
}

// IsOpen reports whether the overlay is open and on which panel.
func (o Overlay) IsOpen() (index int, open bool) {
	return o.index, o.open
}

func (o *Overlay) openAt(index, count int) bool {
	if o.open || index < 0 || index >= count {
		return false
	}
	o.open = true
	o.index = index
	return true
}

func (o *Overlay) close() bool {
	if !o.open {
		return false
	}
	o.open = false
	o.index = 0
	return true
}
