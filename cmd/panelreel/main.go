package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/panelreel/assets/icon"
	"github.com/depeter/panelreel/internal/app"
	"github.com/depeter/panelreel/internal/cache"
	"github.com/depeter/panelreel/internal/config"
	"github.com/depeter/panelreel/internal/constants"
	"github.com/depeter/panelreel/internal/panels"
	"github.com/depeter/panelreel/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/panelreel/config.toml)")
	writeConfig := flag.Bool("write-config", false, "write the effective config back to disk and exit")
	flag.Parse()

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *writeConfig {
		if *configPath != "" {
			err = cfg.SaveFile(*configPath)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Artwork cache, only needed when panels come from a server
	var imgCache *cache.ImageCache
	if cfg.Panels.Source == config.SourceJellyfin {
		cacheDir := filepath.Join(os.TempDir(), constants.ConfigDirName, "images")
		if configDir, err := config.ConfigDir(); err == nil {
			cacheDir = filepath.Join(configDir, "cache", "images")
		}
		imgCache, err = cache.NewImageCache(cacheDir, int(cfg.Carousel.PanelWidth))
		if err != nil {
			log.Printf("Artwork disabled: %v", err)
		}
	}

	game := app.NewGame(cfg, imgCache)
	game.Start(panels.FromConfig(cfg))

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(constants.AppName)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constants.TPS)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
