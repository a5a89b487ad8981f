package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/panelreel/internal/carousel"
	"github.com/depeter/panelreel/internal/constants"
)

type Config struct {
	UI       UIConfig       `toml:"ui"`
	Carousel CarouselConfig `toml:"carousel"`
	Panels   PanelsConfig   `toml:"panels"`
	Jellyfin JellyfinConfig `toml:"jellyfin"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

// CarouselConfig mirrors carousel.Params with durations in milliseconds.
type CarouselConfig struct {
	PanelWidth  float64 `toml:"panel_width"`
	Gap         float64 `toml:"gap"`
	BufferCount int     `toml:"buffer_count"`
	SnapBias    float64 `toml:"snap_bias"`

	Friction    float64 `toml:"friction"`
	MinVelocity float64 `toml:"min_velocity"`

	WheelGain   float64 `toml:"wheel_gain"`
	LineHeight  float64 `toml:"line_height"`
	PageHeight  float64 `toml:"page_height"`
	WheelIdleMS int     `toml:"wheel_idle_ms"`

	DragThreshold float64 `toml:"drag_threshold"`
	DragGain      float64 `toml:"drag_gain"`

	FlickBase     float64 `toml:"flick_base"`
	FlickStack    float64 `toml:"flick_stack"`
	MaxStacks     int     `toml:"max_stacks"`
	StackWindowMS int     `toml:"stack_window_ms"`

	ClickImpulse  float64 `toml:"click_impulse"`
	ClickBoost    float64 `toml:"click_boost"`
	ClickReverse  float64 `toml:"click_reverse"`
	ClickWindowMS int     `toml:"click_window_ms"`

	EdgeFraction float64 `toml:"edge_fraction"`
	TransitionMS int     `toml:"transition_ms"`
}

// PanelsConfig selects where panel content comes from.
type PanelsConfig struct {
	Source  string   `toml:"source"` // "static" or "jellyfin"
	Labels  []string `toml:"labels"`
	Library string   `toml:"library"` // jellyfin library name, empty = first
	Limit   int      `toml:"limit"`
}

type JellyfinConfig struct {
	URL    string `toml:"url"`
	Token  string `toml:"token"`
	UserID string `toml:"user_id"`
}

type KeybindConfig struct {
	Previous     string `toml:"previous"`
	Next         string `toml:"next"`
	Open         string `toml:"open"`
	Close        string `toml:"close"`
	Fullscreen   string `toml:"fullscreen"`
	DebugOverlay string `toml:"debug_overlay"`
}

const (
	SourceStatic   = "static"
	SourceJellyfin = "jellyfin"
)

// DefaultLabels are shown when no other source is configured.
var DefaultLabels = []string{
	"The dreamer",
	"The designer",
	"The producer",
	"The developer",
	"The content creator",
}

func DefaultConfig() *Config {
	p := carousel.DefaultParams()
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
		Carousel: CarouselConfig{
			PanelWidth:    p.PanelWidth,
			Gap:           p.Gap,
			BufferCount:   p.BufferCount,
			SnapBias:      p.SnapBias,
			Friction:      p.Friction,
			MinVelocity:   p.MinVelocity,
			WheelGain:     p.WheelGain,
			LineHeight:    p.LineHeight,
			PageHeight:    p.PageHeight,
			WheelIdleMS:   int(p.WheelIdle / time.Millisecond),
			DragThreshold: p.DragThreshold,
			DragGain:      p.DragGain,
			FlickBase:     p.FlickBase,
			FlickStack:    p.FlickStack,
			MaxStacks:     p.MaxStacks,
			StackWindowMS: int(p.StackWindow / time.Millisecond),
			ClickImpulse:  p.ClickImpulse,
			ClickBoost:    p.ClickBoost,
			ClickReverse:  p.ClickReverse,
			ClickWindowMS: int(p.ClickWindow / time.Millisecond),
			EdgeFraction:  p.EdgeFraction,
			TransitionMS:  int(p.TransitionDuration / time.Millisecond),
		},
		Panels: PanelsConfig{
			Source: SourceStatic,
			Labels: append([]string(nil), DefaultLabels...),
			Limit:  20,
		},
		Keybinds: KeybindConfig{
			Previous:     "Left",
			Next:         "Right",
			Open:         "Enter",
			Close:        "Escape",
			Fullscreen:   "F",
			DebugOverlay: "F12",
		},
	}
}

// Params converts the carousel section to controller params.
func (c CarouselConfig) Params() carousel.Params {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return carousel.Params{
		PanelWidth:         c.PanelWidth,
		Gap:                c.Gap,
		BufferCount:        c.BufferCount,
		SnapBias:           c.SnapBias,
		Friction:           c.Friction,
		MinVelocity:        c.MinVelocity,
		WheelGain:          c.WheelGain,
		LineHeight:         c.LineHeight,
		PageHeight:         c.PageHeight,
		WheelIdle:          ms(c.WheelIdleMS),
		DragThreshold:      c.DragThreshold,
		DragGain:           c.DragGain,
		FlickBase:          c.FlickBase,
		FlickStack:         c.FlickStack,
		MaxStacks:          c.MaxStacks,
		StackWindow:        ms(c.StackWindowMS),
		ClickImpulse:       c.ClickImpulse,
		ClickBoost:         c.ClickBoost,
		ClickReverse:       c.ClickReverse,
		ClickWindow:        ms(c.ClickWindowMS),
		EdgeFraction:       c.EdgeFraction,
		TransitionDuration: ms(c.TransitionMS),
	}
}

// Validate checks the parts of the config the program cannot run without.
func (c *Config) Validate() error {
	if err := c.Carousel.Params().Validate(); err != nil {
		return fmt.Errorf("carousel: %w", err)
	}
	switch c.Panels.Source {
	case SourceStatic, "":
	case SourceJellyfin:
		if c.Jellyfin.URL == "" {
			return fmt.Errorf("panels: source %q needs [jellyfin] url", c.Panels.Source)
		}
	default:
		return fmt.Errorf("panels: unknown source %q", c.Panels.Source)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("ui: window size %dx%d must be positive", c.UI.Width, c.UI.Height)
	}
	return nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, constants.ConfigDirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file over the defaults. A missing file is not an
// error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// Labels replace rather than extend the defaults.
	cfg.Panels.Labels = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Panels.Labels) == 0 {
		cfg.Panels.Labels = append([]string(nil), DefaultLabels...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
