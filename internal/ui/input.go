package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyPressed         = ebiten.IsKeyPressed
	wheel                = ebiten.Wheel
	appendTouchIDs       = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
	isFocused            = ebiten.IsFocused
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals. Touch input is disabled while replaced.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	wh func() (float64, float64),
	focused func() bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyPressed
	oldWheel := wheel
	oldTouch := appendTouchIDs
	oldFocused := isFocused
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	isKeyPressed = key
	wheel = wh
	appendTouchIDs = func(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
	isFocused = focused
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyPressed = oldKey
		wheel = oldWheel
		appendTouchIDs = oldTouch
		isFocused = oldFocused
		keyHoldFrames = make(map[ebiten.Key]int)
	}
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if isKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 6  // frames between repeats (~100ms at 60fps)
)

// KeyJustPressed reports a key that went down since the last UpdateInputState.
func KeyJustPressed(key ebiten.Key) bool {
	return isKeyPressed(key) && keyHoldFrames[key] == 0
}

func keyRepeating(key ebiten.Key) bool {
	if !isKeyPressed(key) {
		return false
	}
	frames := keyHoldFrames[key]
	if frames == 0 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return isKeyPressed(ebiten.KeyAlt) ||
		isKeyPressed(ebiten.KeyControl) ||
		isKeyPressed(ebiten.KeyShift) ||
		isKeyPressed(ebiten.KeyMeta)
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

type pointerEvent int

const (
	pointerNone pointerEvent = iota
	pointerPress
	pointerMove
	pointerRelease
	// pointerLost is a press that ended without a release, e.g. the window
	// lost focus.
	pointerLost
)

// pointer folds the left mouse button and the first touch into one
// captured pointer. Once pressed it keeps reporting moves wherever the
// cursor goes until release.
type pointer struct {
	down  bool
	touch bool
	id    ebiten.TouchID
	x, y  int
}

func (p *pointer) poll() (pointerEvent, int, int) {
	if !p.down {
		if ids := appendTouchIDs(nil); len(ids) > 0 {
			p.down, p.touch, p.id = true, true, ids[0]
			p.x, p.y = touchPosition(p.id)
			return pointerPress, p.x, p.y
		}
		if isMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.down, p.touch = true, false
			p.x, p.y = cursorPosition()
			return pointerPress, p.x, p.y
		}
		return pointerNone, 0, 0
	}

	if !isFocused() {
		p.down = false
		return pointerLost, p.x, p.y
	}

	var (
		held bool
		x, y int
	)
	if p.touch {
		for _, id := range appendTouchIDs(nil) {
			if id == p.id {
				held = true
				x, y = touchPosition(id)
				break
			}
		}
	} else if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		held = true
		x, y = cursorPosition()
	}

	if !held {
		p.down = false
		if !p.touch {
			p.x, p.y = cursorPosition()
		}
		return pointerRelease, p.x, p.y
	}
	if x == p.x && y == p.y {
		return pointerNone, x, y
	}
	p.x, p.y = x, y
	return pointerMove, x, y
}
