package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/panelreel/internal/cache"
	"github.com/depeter/panelreel/internal/config"
	"github.com/depeter/panelreel/internal/panels"
	"github.com/depeter/panelreel/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager

	Width, Height int

	keys       ui.Keys
	fullscreen ebiten.Key
	debug      ebiten.Key
}

// NewGame creates the Game with all dependencies. Unknown key names in the
// config are logged and replaced by their defaults.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache) *Game {
	b, err := parseKeybinds(cfg.Keybinds)
	if err != nil {
		log.Printf("Keybinds: %v", err)
	}
	return &Game{
		Config:     cfg,
		Cache:      imgCache,
		Screens:    ui.NewScreenManager(),
		Width:      cfg.UI.Width,
		Height:     cfg.UI.Height,
		keys:       b.carousel,
		fullscreen: b.fullscreen,
		debug:      b.debug,
	}
}

// Start shows the loading screen for source; the carousel replaces it once
// the panels arrive.
func (g *Game) Start(source panels.Source) {
	params := g.Config.Carousel.Params()
	g.Screens.SetSize(g.Width, g.Height)
	g.Screens.Push(ui.NewLoadingScreen(source, func(ps []panels.Panel) ui.Screen {
		return ui.NewCarouselScreen(ps, params, g.Cache, g.keys)
	}))
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen (works in all modes)
	if ui.KeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	} else if ui.KeyJustPressed(g.fullscreen) && !ui.IsModifierPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	ui.ToggleDebugOverlay(g.debug)

	g.Screens.SetSize(g.Width, g.Height)
	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.Current())
}

// Layout follows the window size so the carousel viewport tracks resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.Width, g.Height = outsideWidth, outsideHeight
	}
	return g.Width, g.Height
}
