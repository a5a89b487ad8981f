package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/depeter/panelreel/internal/carousel"
)

func TestDefaultsMatchCarouselParams(t *testing.T) {
	cfg := DefaultConfig()
	if got, want := cfg.Carousel.Params(), carousel.DefaultParams(); got != want {
		t.Fatalf("params=%+v\nwant %+v", got, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "panelreel", "config.toml"); got != want {
		t.Fatalf("path=%q want %q", got, want)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Panels.Labels) != 5 || cfg.Panels.Source != SourceStatic {
		t.Fatalf("panels=%+v", cfg.Panels)
	}
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[carousel]
friction = 0.9
wheel_idle_ms = 200

[panels]
labels = ["one", "two", "three"]

[keybinds]
next = "d"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	p := cfg.Carousel.Params()
	if p.Friction != 0.9 || p.WheelIdle != 200*time.Millisecond {
		t.Fatalf("friction=%v idle=%v", p.Friction, p.WheelIdle)
	}
	if p.PanelWidth != 280 || p.TransitionDuration != 300*time.Millisecond {
		t.Fatalf("untouched fields lost their defaults: %+v", p)
	}
	if strings.Join(cfg.Panels.Labels, ",") != "one,two,three" {
		t.Fatalf("labels=%v", cfg.Panels.Labels)
	}
	if cfg.Keybinds.Next != "d" || cfg.Keybinds.Previous != "Left" {
		t.Fatalf("keybinds=%+v", cfg.Keybinds)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad params":   "[carousel]\nfriction = 1.5\n",
		"bad source":   "[panels]\nsource = \"ftp\"\n",
		"no server":    "[panels]\nsource = \"jellyfin\"\n",
		"broken toml":  "[carousel\n",
		"bad geometry": "[ui]\nwidth = 0\n",
	}
	for name, data := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatalf("%s: accepted", name)
		}
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[carousel]\nbuffer_count = 0\n"), 0o644)
	if _, err := LoadFile(path); !errors.Is(err, carousel.ErrInvalidParams) {
		t.Fatalf("err=%v want ErrInvalidParams", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Panels.Labels = []string{"x", "y"}
	cfg.Carousel.DragGain = 0.5
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Carousel != cfg.Carousel || strings.Join(got.Panels.Labels, ",") != "x,y" {
		t.Fatalf("round trip lost data: %+v", got)
	}
}
