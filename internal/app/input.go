package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/panelreel/internal/config"
	"github.com/depeter/panelreel/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"f1":        ebiten.KeyF1,
	"f11":       ebiten.KeyF11,
	"f12":       ebiten.KeyF12,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

type keybinds struct {
	carousel   ui.Keys
	fullscreen ebiten.Key
	debug      ebiten.Key
}

// parseKeybinds resolves every binding, keeping the default for names it
// does not know. The returned error lists those names.
func parseKeybinds(kb config.KeybindConfig) (keybinds, error) {
	b := keybinds{
		carousel:   ui.DefaultKeys(),
		fullscreen: ebiten.KeyF,
		debug:      ebiten.KeyF12,
	}
	var errs []error
	bind := func(field, name string, dst *ebiten.Key) {
		if name == "" {
			return
		}
		k, ok := parseKey(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: unknown key %q", field, name))
			return
		}
		*dst = k
	}
	bind("previous", kb.Previous, &b.carousel.Previous)
	bind("next", kb.Next, &b.carousel.Next)
	bind("open", kb.Open, &b.carousel.Open)
	bind("close", kb.Close, &b.carousel.Close)
	bind("fullscreen", kb.Fullscreen, &b.fullscreen)
	bind("debug_overlay", kb.DebugOverlay, &b.debug)
	return b, errors.Join(errs...)
}
